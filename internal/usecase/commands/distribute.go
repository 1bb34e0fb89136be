package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"greenrfq/internal/domain/distribution"
	"greenrfq/internal/domain/entitlement"
	"greenrfq/internal/domain/rfq"
	"greenrfq/internal/domain/scoring"
	"greenrfq/internal/domain/supplier"
	"greenrfq/internal/infra"
	"greenrfq/internal/pkg/clock"
	"greenrfq/internal/pkg/config"
	"greenrfq/internal/pkg/errs"
	"greenrfq/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRFQNotFound         = errs.New("rfq not found")
	ErrRFQNotDistributable = errs.New("rfq cannot be distributed")
)

const candidateLimit = 500

type DistributeInput struct {
	RFQID uuid.UUID
	// UseEntitlements selects subscription-driven wave placement; when
	// false the static tier table applies.
	UseEntitlements bool
	// EnforceQuotas skips candidates whose monthly quota is exhausted
	// and records usage for admitted ones. Wave placement and quota
	// enforcement are independent knobs.
	EnforceQuotas bool
	// Limit caps the candidate pool; non-positive means the default.
	Limit int32
	// DirectInvites are placed in wave 1 with no delay regardless of
	// tier, provided the supplier can receive direct requests.
	DirectInvites []uuid.UUID
}

type DistributeResult struct {
	RFQID          uuid.UUID
	Admitted       int
	SkippedByQuota int
	ShadowCount    int
	WaveBreakdown  map[int32]int
}

type DistributionCommands interface {
	Distribute(ctx context.Context, in DistributeInput) (*DistributeResult, error)
}

type distributionUseCaseImpl struct {
	uow          shared.UnitOfWork
	entitlements EntitlementCommands
	cfg          config.DistributionConfig
	clock        clock.Clock
}

func NewDistributionUseCase(
	uow shared.UnitOfWork,
	entitlements EntitlementCommands,
	cfg config.DistributionConfig,
	clk clock.Clock,
) DistributionCommands {
	return &distributionUseCaseImpl{
		uow:          uow,
		entitlements: entitlements,
		cfg:          cfg,
		clock:        clk,
	}
}

// Distribute selects candidates, scores them, and enqueues one entry per
// supplier in a single transaction. Either every admitted candidate is
// enqueued and the request marked distributed, or nothing changes.
func (uc *distributionUseCaseImpl) Distribute(ctx context.Context, in DistributeInput) (*DistributeResult, error) {
	result := &DistributeResult{
		RFQID:         in.RFQID,
		WaveBreakdown: map[int32]int{},
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		request, err := tx.Reads().RFQByID(ctx, in.RFQID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRFQNotFound
			}
			return err
		}
		if request.Status != rfq.StatusOpen && request.Status != rfq.StatusDistributed {
			return ErrRFQNotDistributable
		}

		limit := in.Limit
		if limit <= 0 {
			limit = candidateLimit
		}
		candidates, err := tx.Reads().CandidateSuppliers(ctx, request.Category, request.Materials, limit)
		if err != nil {
			return err
		}
		if len(candidates) == 0 && len(in.DirectInvites) == 0 {
			slog.Info("no candidate suppliers for request", "rfq_id", in.RFQID)
			return tx.RFQs().UpdateStatus(ctx, tx.DB(), in.RFQID, rfq.StatusDistributed)
		}

		statsBySupplier, err := uc.loadResponseStats(ctx, tx, candidates)
		if err != nil {
			return err
		}

		invited := make(map[uuid.UUID]bool, len(in.DirectInvites))
		for _, id := range in.DirectInvites {
			invited[id] = true
		}
		matched := make(map[uuid.UUID]bool, len(candidates))

		now := uc.clock.Now()
		for _, cand := range candidates {
			matched[cand.ID] = true
			match := scoring.Match(scoring.MatchInput{
				SupplierTier:           cand.Tier,
				SupplierCategories:     cand.Categories,
				SupplierCertifications: cand.Certifications,
				SupplierLocation:       cand.Location,
				RequestCategory:        derefOrEmpty(request.Category),
				RequiredCertifications: request.CertificationsRequired,
				RequestLocation:        request.Location,
			})

			if cand.Tier.IsShadow() {
				admitted, err := uc.enqueueOutreach(ctx, tx, request, cand, match, now)
				if err != nil {
					return err
				}
				if admitted {
					result.ShadowCount++
					result.WaveBreakdown[distribution.OutreachWave().Wave]++
				}
				continue
			}

			ent := uc.resolveForPlacement(ctx, tx, cand.ID, in.UseEntitlements)

			admission := ent.AdmitRFQ()
			if in.EnforceQuotas && !admission.Allowed {
				result.SkippedByQuota++
				continue
			}

			wave := uc.waveFor(cand.Tier, ent, invited[cand.ID], in.UseEntitlements)
			priority := scoring.Priority(scoring.PriorityInput{
				SupplierLocation:  cand.Location,
				ProjectLocation:   request.Location,
				EntitlementTier:   ent.TierCode,
				Tier:              cand.Tier,
				ResponseRate:      statsBySupplier[cand.ID].ResponseRate,
				VerificationScore: float64(cand.VerificationScore),
				MatchScore:        match.Total,
			})

			inserted, err := uc.enqueue(ctx, tx, request, cand, match, priority, wave, supplier.AccessFull, now)
			if err != nil {
				return err
			}
			if !inserted {
				// Entry already progressed past pending; leave it alone.
				continue
			}

			if in.EnforceQuotas {
				if err := uc.recordUsage(ctx, tx, cand.ID, request.ID); err != nil {
					return err
				}
			}

			result.Admitted++
			result.WaveBreakdown[wave.Wave]++
		}

		if err := uc.enqueueUnmatchedInvites(ctx, tx, request, in, matched, now, result); err != nil {
			return err
		}

		return tx.RFQs().UpdateStatus(ctx, tx.DB(), in.RFQID, rfq.StatusDistributed)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("request distributed",
		"rfq_id", in.RFQID,
		"admitted", result.Admitted,
		"skipped_by_quota", result.SkippedByQuota,
		"shadow_outreach", result.ShadowCount)

	return result, nil
}

// enqueueUnmatchedInvites places direct invites that fell outside the
// candidate filter. An invite is a buyer decision, so the filter and
// the quota admission gate do not apply; usage is still recorded.
func (uc *distributionUseCaseImpl) enqueueUnmatchedInvites(
	ctx context.Context,
	tx shared.Tx,
	request *shared.RFQSnapshot,
	in DistributeInput,
	matched map[uuid.UUID]bool,
	now time.Time,
	result *DistributeResult,
) error {
	missing := make([]uuid.UUID, 0, len(in.DirectInvites))
	for _, id := range in.DirectInvites {
		if !matched[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	invitees, err := tx.Reads().SuppliersByIDs(ctx, missing)
	if err != nil {
		return err
	}
	if len(invitees) < len(missing) {
		slog.Warn("some direct invites do not resolve to suppliers",
			"rfq_id", request.ID,
			"invited", len(missing),
			"resolved", len(invitees))
	}

	wave := distribution.WaveAssignment{Wave: 1, Delay: 0, Reason: "direct buyer invite"}
	for _, sup := range invitees {
		if sup.Tier.IsShadow() {
			// Unclaimed profiles only ever get outreach entries.
			continue
		}
		cand := shared.CandidateSnapshot{SupplierSnapshot: sup}

		match := scoring.Match(scoring.MatchInput{
			SupplierTier:           cand.Tier,
			SupplierCategories:     cand.Categories,
			SupplierCertifications: cand.Certifications,
			SupplierLocation:       cand.Location,
			RequestCategory:        derefOrEmpty(request.Category),
			RequiredCertifications: request.CertificationsRequired,
			RequestLocation:        request.Location,
		})
		ent := uc.resolveForPlacement(ctx, tx, cand.ID, in.UseEntitlements)
		priority := scoring.Priority(scoring.PriorityInput{
			SupplierLocation:  cand.Location,
			ProjectLocation:   request.Location,
			EntitlementTier:   ent.TierCode,
			Tier:              cand.Tier,
			VerificationScore: float64(cand.VerificationScore),
			MatchScore:        match.Total,
		})

		inserted, err := uc.enqueue(ctx, tx, request, cand, match, priority, wave, supplier.AccessFull, now)
		if err != nil {
			return err
		}
		if !inserted {
			continue
		}

		if in.EnforceQuotas {
			if err := uc.recordUsage(ctx, tx, cand.ID, request.ID); err != nil {
				return err
			}
		}

		result.Admitted++
		result.WaveBreakdown[wave.Wave]++
	}
	return nil
}

func (uc *distributionUseCaseImpl) recordUsage(ctx context.Context, tx shared.Tx, supplierID, rfqID uuid.UUID) error {
	if err := tx.Subscriptions().IncrementRFQUsage(ctx, tx.DB(), supplierID); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return err
	}
	return tx.Subscriptions().AppendUsageLog(ctx, tx.DB(), supplierID, "rfq_received", &rfqID)
}

// resolveForPlacement reads the subscription inside the distribution
// transaction so quota admission sees committed counters.
func (uc *distributionUseCaseImpl) resolveForPlacement(ctx context.Context, tx shared.Tx, supplierID uuid.UUID, useEntitlements bool) entitlement.Entitlement {
	if !useEntitlements {
		return entitlement.Default(supplierID)
	}

	sub, err := tx.Subscriptions().GetForUpdate(ctx, tx.DB(), supplierID)
	if err != nil || !sub.Active {
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("subscription lookup failed, using free-tier default",
				"supplier_id", supplierID,
				"error", err.Error())
		}
		return entitlement.Default(supplierID)
	}
	return entitlementFromSubscription(*sub)
}

func (uc *distributionUseCaseImpl) waveFor(tier supplier.Tier, ent entitlement.Entitlement, directInvite, useEntitlements bool) distribution.WaveAssignment {
	if directInvite {
		return distribution.WaveAssignment{Wave: 1, Delay: 0, Reason: "direct buyer invite"}
	}
	if !useEntitlements || ent.Source == entitlement.SourceDefault {
		return distribution.FallbackWave(tier)
	}
	return distribution.WaveAssignment{
		Wave:   ent.WaveNumber,
		Delay:  ent.VisibilityDelay,
		Reason: "subscription tier " + ent.TierCode.String(),
	}
}

func (uc *distributionUseCaseImpl) enqueue(
	ctx context.Context,
	tx shared.Tx,
	request *shared.RFQSnapshot,
	cand shared.CandidateSnapshot,
	match scoring.MatchResult,
	priority float64,
	wave distribution.WaveAssignment,
	access supplier.AccessLevel,
	now time.Time,
) (bool, error) {
	breakdown, err := json.Marshal(match.Breakdown)
	if err != nil {
		return false, errs.Wrap(err, "failed to encode score breakdown")
	}

	visibleAt, expiresAt := wave.Window(now, uc.cfg.VisibilityWindow)
	affected, err := tx.Queue().Upsert(ctx, tx.DB(), shared.QueueUpsert{
		RFQID:          request.ID,
		SupplierID:     cand.ID,
		WaveNumber:     wave.Wave,
		VisibleAt:      visibleAt,
		ExpiresAt:      expiresAt,
		AccessLevel:    string(access),
		MatchScore:     match.Total,
		PriorityScore:  priority,
		ScoreBreakdown: breakdown,
		DistanceKm:     match.Distance.DistanceKm,
		TierSnapshot:   cand.Tier.String(),
		WaveReason:     wave.Reason,
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// enqueueOutreach places a shadow candidate in the outreach wave. The
// entry only ever carries a claim prompt, never request content, and
// does not touch any quota.
func (uc *distributionUseCaseImpl) enqueueOutreach(
	ctx context.Context,
	tx shared.Tx,
	request *shared.RFQSnapshot,
	cand shared.CandidateSnapshot,
	match scoring.MatchResult,
	now time.Time,
) (bool, error) {
	priority := scoring.Priority(scoring.PriorityInput{
		SupplierLocation:  cand.Location,
		ProjectLocation:   request.Location,
		Tier:              cand.Tier,
		VerificationScore: float64(cand.VerificationScore),
		MatchScore:        match.Total,
	})
	return uc.enqueue(ctx, tx, request, cand, match, priority, distribution.OutreachWave(), supplier.AccessOutreachOnly, now)
}

func (uc *distributionUseCaseImpl) loadResponseStats(ctx context.Context, tx shared.Tx, candidates []shared.CandidateSnapshot) (map[uuid.UUID]shared.ResponseStatsSnapshot, error) {
	ids := make([]uuid.UUID, 0, len(candidates))
	for _, cand := range candidates {
		if !cand.Tier.IsShadow() {
			ids = append(ids, cand.ID)
		}
	}

	stats, err := tx.Reads().ResponseStatsBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	bySupplier := make(map[uuid.UUID]shared.ResponseStatsSnapshot, len(stats))
	for _, s := range stats {
		bySupplier[s.SupplierID] = s
	}
	return bySupplier, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
