package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"greenrfq/internal/domain/entitlement"
	"greenrfq/internal/infra"
	"greenrfq/internal/pkg/clock"
	"greenrfq/internal/pkg/config"
	"greenrfq/internal/pkg/errs"
	"greenrfq/internal/pkg/ttlcache"
	"greenrfq/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrQuotaExhausted = errs.New("monthly quota exhausted")

// EntitlementCommands resolves what a supplier's subscription allows and
// records consumption against it. Resolve never fails: any lookup
// problem degrades to the free-tier default so distribution keeps
// working through subscription-store trouble.
type EntitlementCommands interface {
	Resolve(ctx context.Context, supplierID uuid.UUID) entitlement.Entitlement
	CanAdmit(ctx context.Context, supplierID uuid.UUID) (entitlement.Admission, error)
	IncrementUsage(ctx context.Context, supplierID uuid.UUID, rfqID uuid.UUID) error
	CanSendOutbound(ctx context.Context, supplierID uuid.UUID) (entitlement.Admission, error)
	IncrementOutboundUsage(ctx context.Context, supplierID uuid.UUID, referenceID *uuid.UUID) error
	ResetMonthlyUsage(ctx context.Context) (int64, error)
}

type entitlementUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache *ttlcache.Cache[uuid.UUID, entitlement.Entitlement]
	clock clock.Clock
}

func NewEntitlementUseCase(uow shared.UnitOfWork, cfg config.DistributionConfig, clk clock.Clock) EntitlementCommands {
	return &entitlementUseCaseImpl{
		uow:   uow,
		cache: ttlcache.New[uuid.UUID, entitlement.Entitlement](cfg.EntitlementCacheTTL, clk),
		clock: clk,
	}
}

func (uc *entitlementUseCaseImpl) Resolve(ctx context.Context, supplierID uuid.UUID) entitlement.Entitlement {
	if cached, ok := uc.cache.Get(supplierID); ok {
		return cached
	}

	sub, err := uc.uow.CommandReads().SubscriptionBySupplier(ctx, supplierID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("entitlement lookup failed, using free-tier default",
				"supplier_id", supplierID,
				"error", err.Error())
		}
		ent := entitlement.Default(supplierID)
		uc.cache.Set(supplierID, ent)
		return ent
	}
	if !sub.Active {
		ent := entitlement.Default(supplierID)
		uc.cache.Set(supplierID, ent)
		return ent
	}

	ent := entitlementFromSubscription(*sub)
	uc.cache.Set(supplierID, ent)
	return ent
}

// CanAdmit reads the authoritative counters, bypassing the cache, so a
// stale entry can never admit past quota.
func (uc *entitlementUseCaseImpl) CanAdmit(ctx context.Context, supplierID uuid.UUID) (entitlement.Admission, error) {
	var admission entitlement.Admission
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sub, err := tx.Subscriptions().GetForUpdate(ctx, tx.DB(), supplierID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				admission = entitlement.Default(supplierID).AdmitRFQ()
				return nil
			}
			return err
		}
		if !sub.Active {
			admission = entitlement.Default(supplierID).AdmitRFQ()
			return nil
		}
		admission = entitlementFromSubscription(*sub).AdmitRFQ()
		return nil
	})
	if err != nil {
		return entitlement.Admission{}, err
	}
	return admission, nil
}

func (uc *entitlementUseCaseImpl) IncrementUsage(ctx context.Context, supplierID uuid.UUID, rfqID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Subscriptions().IncrementRFQUsage(ctx, tx.DB(), supplierID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// No subscription row; usage is tracked in the log only.
				return tx.Subscriptions().AppendUsageLog(ctx, tx.DB(), supplierID, "rfq_received", &rfqID)
			}
			return err
		}
		return tx.Subscriptions().AppendUsageLog(ctx, tx.DB(), supplierID, "rfq_received", &rfqID)
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(supplierID)
	return nil
}

func (uc *entitlementUseCaseImpl) CanSendOutbound(ctx context.Context, supplierID uuid.UUID) (entitlement.Admission, error) {
	var admission entitlement.Admission
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sub, err := tx.Subscriptions().GetForUpdate(ctx, tx.DB(), supplierID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				admission = entitlement.Default(supplierID).AdmitOutbound()
				return nil
			}
			return err
		}
		if !sub.Active {
			admission = entitlement.Default(supplierID).AdmitOutbound()
			return nil
		}
		admission = entitlementFromSubscription(*sub).AdmitOutbound()
		return nil
	})
	if err != nil {
		return entitlement.Admission{}, err
	}
	return admission, nil
}

func (uc *entitlementUseCaseImpl) IncrementOutboundUsage(ctx context.Context, supplierID uuid.UUID, referenceID *uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Subscriptions().IncrementOutboundUsage(ctx, tx.DB(), supplierID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return tx.Subscriptions().AppendUsageLog(ctx, tx.DB(), supplierID, "outbound_message", referenceID)
			}
			return err
		}
		return tx.Subscriptions().AppendUsageLog(ctx, tx.DB(), supplierID, "outbound_message", referenceID)
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(supplierID)
	return nil
}

// ResetMonthlyUsage zeroes counters for rows not yet reset this month.
// Safe to run repeatedly; rows already reset are untouched.
func (uc *entitlementUseCaseImpl) ResetMonthlyUsage(ctx context.Context) (int64, error) {
	var affected int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Subscriptions().ResetAllUsage(ctx, tx.DB())
		if err != nil {
			return err
		}
		affected = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	if affected > 0 {
		uc.cache.Purge()
		slog.Info("monthly usage counters reset", "subscriptions", affected)
	}
	return affected, nil
}

func entitlementFromSubscription(sub shared.SubscriptionSnapshot) entitlement.Entitlement {
	features := map[string]bool{}
	if len(sub.Features) > 0 {
		if err := json.Unmarshal(sub.Features, &features); err != nil {
			slog.Warn("invalid subscription features payload, ignoring",
				"supplier_id", sub.SupplierID,
				"error", err.Error())
			features = map[string]bool{}
		}
	}

	return entitlement.Entitlement{
		SupplierID:           sub.SupplierID,
		TierCode:             sub.TierCode,
		WaveNumber:           sub.WaveNumber,
		VisibilityDelay:      time.Duration(sub.VisibilityDelayMinutes) * time.Minute,
		RFQMonthlyQuota:      sub.RFQMonthlyQuota,
		RFQsUsed:             sub.RFQsUsedThisMonth,
		OutboundMonthlyQuota: sub.OutboundMonthlyQuota,
		OutboundUsed:         sub.OutboundUsedThisMonth,
		Features:             features,
		Source:               entitlement.SourceSubscription,
	}
}
