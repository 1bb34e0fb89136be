package commands

import (
	"context"
	"log/slog"
	"time"

	"greenrfq/internal/domain/shadow"
	"greenrfq/internal/infra"
	"greenrfq/internal/infra/notify"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/pkg/clock"
	"greenrfq/internal/pkg/config"
	"greenrfq/internal/pkg/errs"
	"greenrfq/internal/pkg/password"
	"greenrfq/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrShadowNotFound    = errs.New("shadow supplier not found")
	ErrClaimTokenInvalid = errs.New("claim token invalid")
)

const (
	auditTokenIssued       = "token_issued"
	auditTokenValidated    = "token_validated"
	auditCodeVerified      = "code_verified"
	auditCodeRejected      = "code_rejected"
	auditClaimCompleted    = "claim_completed"
	auditOptOut            = "opt_out"
	auditEligibilityDenied = "eligibility_denied"
)

type ClaimTokenResult struct {
	ShadowID uuid.UUID
	// RawToken is returned exactly once; only its hash is stored.
	RawToken  string
	ExpiresAt time.Time
}

// VerificationResult acknowledges that a code was issued. The code
// itself travels over the notification transport to the shadow
// record's address, never through the API.
type VerificationResult struct {
	ShadowID  uuid.UUID
	ExpiresAt time.Time
}

type CompleteClaimInput struct {
	RawToken string
	Code     string
	Email    string
	Password string
	Actor    string
}

type CompleteClaimResult struct {
	ShadowID   uuid.UUID
	SupplierID uuid.UUID
}

type ClaimCommands interface {
	RequestClaim(ctx context.Context, shadowID uuid.UUID, actor string) (*ClaimTokenResult, error)
	StartVerification(ctx context.Context, rawToken string, actor string) (*VerificationResult, error)
	CompleteClaim(ctx context.Context, in CompleteClaimInput) (*CompleteClaimResult, error)
	OptOut(ctx context.Context, shadowID uuid.UUID, reason, actor string) error
}

type claimUseCaseImpl struct {
	uow       shared.UnitOfWork
	transport Notifier
	policy    shadow.RateLimitPolicy
	cfg       config.ClaimConfig
	clock     clock.Clock
}

func NewClaimUseCase(uow shared.UnitOfWork, transport Notifier, cfg config.ClaimConfig, clk clock.Clock) ClaimCommands {
	return &claimUseCaseImpl{
		uow:       uow,
		transport: transport,
		policy: shadow.RateLimitPolicy{
			MaxFailedAttempts: cfg.MaxFailedAttempts,
			LockoutDuration:   cfg.LockoutDuration,
			MaxTokensPerDay:   cfg.MaxTokensPerDay,
		},
		cfg:   cfg,
		clock: clk,
	}
}

// RequestClaim issues a fresh claim token, invalidating any still
// outstanding. Issuance is capped per rolling 24 hours.
func (uc *claimUseCaseImpl) RequestClaim(ctx context.Context, shadowID uuid.UUID, actor string) (*ClaimTokenResult, error) {
	var result *ClaimTokenResult
	var denied error

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		denied = nil
		snap, err := tx.Shadows().GetForUpdate(ctx, tx.DB(), shadowID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrShadowNotFound
			}
			return err
		}

		now := uc.clock.Now()
		issued, err := tx.Shadows().CountTokensIssuedSince(ctx, tx.DB(), shadowID, now.Add(-24*time.Hour))
		if err != nil {
			return err
		}

		if err := uc.policy.CanIssueToken(snap.Record(), issued, now); err != nil {
			// The denial itself is audited, so the tx must commit.
			denied = err
			return tx.Shadows().AppendAudit(ctx, tx.DB(), shadowID, auditEligibilityDenied, actor, false, err.Error())
		}

		if _, err := tx.Shadows().InvalidateActiveTokens(ctx, tx.DB(), shadowID); err != nil {
			return err
		}

		raw, hash, err := shadow.NewClaimToken()
		if err != nil {
			return errs.Wrap(err, "failed to generate claim token")
		}

		expiresAt := now.Add(uc.cfg.TokenExpiry)
		if _, err := tx.Shadows().CreateToken(ctx, tx.DB(), shadowID, hash, expiresAt); err != nil {
			return err
		}
		if err := tx.Shadows().AppendAudit(ctx, tx.DB(), shadowID, auditTokenIssued, actor, true, ""); err != nil {
			return err
		}

		result = &ClaimTokenResult{ShadowID: shadowID, RawToken: raw, ExpiresAt: expiresAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if denied != nil {
		return nil, denied
	}
	return result, nil
}

// StartVerification validates a raw token, moves the record to
// pending_verification, and issues a short-lived 6-digit code. The code
// is delivered to the shadow record's address once the tx commits.
func (uc *claimUseCaseImpl) StartVerification(ctx context.Context, rawToken string, actor string) (*VerificationResult, error) {
	var result *VerificationResult
	var denied error
	var code string
	var recipient *shared.ShadowSnapshot

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		denied = nil
		token, snap, err := uc.lockTokenAndShadow(ctx, tx, rawToken)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := snap.Record().CheckEligibility(now); err != nil {
			denied = err
			return tx.Shadows().AppendAudit(ctx, tx.DB(), snap.ID, auditEligibilityDenied, actor, false, err.Error())
		}
		if err := token.Token().Validate(now); err != nil {
			denied = err
			return uc.recordFailedAttempt(ctx, tx, snap, actor, err)
		}

		if _, err := tx.Shadows().SetPendingVerification(ctx, tx.DB(), snap.ID); err != nil {
			return err
		}

		code, err = shadow.NewVerificationCode()
		if err != nil {
			return errs.Wrap(err, "failed to generate verification code")
		}
		codeExpiry := now.Add(uc.cfg.VerificationExpiry)
		if _, err := tx.Shadows().SetVerificationCode(ctx, tx.DB(), token.ID, code, codeExpiry); err != nil {
			return err
		}
		if err := tx.Shadows().AppendAudit(ctx, tx.DB(), snap.ID, auditTokenValidated, actor, true, ""); err != nil {
			return err
		}

		recipient = snap
		result = &VerificationResult{ShadowID: snap.ID, ExpiresAt: codeExpiry}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if denied != nil {
		return nil, denied
	}

	if err := uc.sendVerificationCode(ctx, recipient, code, result.ExpiresAt); err != nil {
		// The claimant cannot learn the code any other way; re-running
		// the verification step issues a fresh one.
		return nil, errs.Mark(err, ErrNotificationFailed)
	}
	return result, nil
}

func (uc *claimUseCaseImpl) sendVerificationCode(ctx context.Context, snap *shared.ShadowSnapshot, code string, expiresAt time.Time) error {
	if snap.Email == nil {
		return errs.New("shadow record has no delivery address")
	}
	return uc.transport.Send(ctx, notify.Message{
		SupplierID: snap.SupplierID,
		Kind:       notify.KindClaimVerification,
		Recipient:  *snap.Email,
		Subject:    "Your profile claim verification code",
		Body: "Your verification code is " + code +
			". It expires at " + expiresAt.Format("2006-01-02 15:04 MST") + ".",
	})
}

// CompleteClaim checks the verification code, consumes the token, and
// creates the verified supplier account the shadow record links to.
func (uc *claimUseCaseImpl) CompleteClaim(ctx context.Context, in CompleteClaimInput) (*CompleteClaimResult, error) {
	passwordHash, err := password.HashPassword(in.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	var result *CompleteClaimResult
	var denied error

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		denied = nil
		token, snap, err := uc.lockTokenAndShadow(ctx, tx, in.RawToken)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := snap.Record().CheckEligibility(now); err != nil {
			denied = err
			return tx.Shadows().AppendAudit(ctx, tx.DB(), snap.ID, auditCodeRejected, in.Actor, false, err.Error())
		}
		if snap.ClaimedStatus != shadow.StatusPendingVerification {
			denied = shadow.ErrNotPending
			return tx.Shadows().AppendAudit(ctx, tx.DB(), snap.ID, auditCodeRejected, in.Actor, false, shadow.ErrNotPending.Error())
		}
		if err := token.Token().Validate(now); err != nil {
			denied = err
			return uc.recordFailedAttempt(ctx, tx, snap, in.Actor, err)
		}
		if err := token.Token().VerifyCode(in.Code, now); err != nil {
			denied = err
			return uc.recordFailedAttempt(ctx, tx, snap, in.Actor, err)
		}

		consumed, err := tx.Shadows().ConsumeToken(ctx, tx.DB(), token.ID)
		if err != nil {
			return err
		}
		if !consumed {
			return ErrClaimTokenInvalid
		}
		if err := tx.Shadows().AppendAudit(ctx, tx.DB(), snap.ID, auditCodeVerified, in.Actor, true, ""); err != nil {
			return err
		}

		supplierID, err := uc.createClaimedAccount(ctx, tx, snap, in.Email, passwordHash)
		if err != nil {
			return err
		}

		completed, err := tx.Shadows().CompleteClaim(ctx, tx.DB(), snap.ID, supplierID)
		if err != nil {
			return err
		}
		if !completed {
			return ErrClaimTokenInvalid
		}

		if _, err := tx.Shadows().SetProductsVisibility(ctx, tx.DB(), snap.ID, "claimed"); err != nil {
			return err
		}
		if err := tx.Shadows().AppendAudit(ctx, tx.DB(), snap.ID, auditClaimCompleted, in.Actor, true, ""); err != nil {
			return err
		}

		result = &CompleteClaimResult{ShadowID: snap.ID, SupplierID: supplierID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if denied != nil {
		return nil, denied
	}

	slog.Info("shadow supplier claimed",
		"shadow_id", result.ShadowID,
		"supplier_id", result.SupplierID)
	return result, nil
}

// OptOut removes the supplier from distribution and invalidates every
// outstanding token. Ingestion never resurrects an opted-out record.
func (uc *claimUseCaseImpl) OptOut(ctx context.Context, shadowID uuid.UUID, reason, actor string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Shadows().GetForUpdate(ctx, tx.DB(), shadowID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrShadowNotFound
			}
			return err
		}

		applied, err := tx.Shadows().OptOut(ctx, tx.DB(), shadowID, reason)
		if err != nil {
			return err
		}
		if !applied {
			// Already opted out; nothing to change.
			return nil
		}

		if _, err := tx.Shadows().InvalidateActiveTokens(ctx, tx.DB(), shadowID); err != nil {
			return err
		}
		if _, err := tx.Shadows().SetProductsVisibility(ctx, tx.DB(), shadowID, "hidden"); err != nil {
			return err
		}
		return tx.Shadows().AppendAudit(ctx, tx.DB(), shadowID, auditOptOut, actor, true, reason)
	})
}

func (uc *claimUseCaseImpl) lockTokenAndShadow(ctx context.Context, tx shared.Tx, rawToken string) (*shared.ClaimTokenSnapshot, *shared.ShadowSnapshot, error) {
	token, err := tx.Shadows().TokenByHashForUpdate(ctx, tx.DB(), shadow.HashToken(rawToken))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrClaimTokenInvalid
		}
		return nil, nil, err
	}

	snap, err := tx.Shadows().GetForUpdate(ctx, tx.DB(), token.ShadowSupplierID)
	if err != nil {
		return nil, nil, err
	}
	return token, snap, nil
}

// recordFailedAttempt bumps the attempt counter, applying the lockout
// once the limit is hit. Committed even though the claim itself failed.
func (uc *claimUseCaseImpl) recordFailedAttempt(ctx context.Context, tx shared.Tx, snap *shared.ShadowSnapshot, actor string, cause error) error {
	attempts, lockedUntil := uc.policy.NextLockout(snap.ClaimAttempts, uc.clock.Now())
	if err := tx.Shadows().UpdateClaimAttempts(ctx, tx.DB(), snap.ID, attempts, lockedUntil); err != nil {
		return err
	}
	return tx.Shadows().AppendAudit(ctx, tx.DB(), snap.ID, auditCodeRejected, actor, false, cause.Error())
}

func (uc *claimUseCaseImpl) createClaimedAccount(ctx context.Context, tx shared.Tx, snap *shared.ShadowSnapshot, email, passwordHash string) (uuid.UUID, error) {
	placeholder, err := tx.Reads().SupplierByID(ctx, snap.SupplierID)
	if err != nil {
		return uuid.Nil, err
	}

	params := sqlc.CreateSupplierParams{
		CompanyName:       snap.CompanyName,
		ContactEmail:      pgtype.Text{String: email, Valid: true},
		PasswordHash:      pgtype.Text{String: passwordHash, Valid: true},
		Tier:              "claimed",
		Categories:        placeholder.Categories,
		Certifications:    placeholder.Certifications,
		VerificationScore: placeholder.VerificationScore,
		Verified:          true,
	}
	if snap.Phone != nil {
		params.ContactPhone = pgtype.Text{String: *snap.Phone, Valid: true}
	}
	if placeholder.Location != nil {
		params.Latitude = pgtype.Float8{Float64: placeholder.Location.Latitude, Valid: true}
		params.Longitude = pgtype.Float8{Float64: placeholder.Location.Longitude, Valid: true}
	}

	return tx.Suppliers().Create(ctx, tx.DB(), params)
}
