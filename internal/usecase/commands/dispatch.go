package commands

import (
	"context"
	"log/slog"
	"sync/atomic"

	"greenrfq/internal/domain/distribution"
	"greenrfq/internal/infra"
	"greenrfq/internal/infra/notify"
	"greenrfq/internal/pkg/clock"
	"greenrfq/internal/pkg/config"
	"greenrfq/internal/pkg/errs"
	"greenrfq/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEntryNotFound      = errs.New("queue entry not found")
	ErrEntryExpired       = errs.New("queue entry expired")
	ErrInvalidTransition  = errs.New("invalid queue entry transition")
	ErrNotificationFailed = errs.New("notification delivery failed")
)

// Notifier delivers one notification. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Send(ctx context.Context, msg notify.Message) error
}

type DispatchResult struct {
	Selected int
	Notified int
	Failed   int
}

type DispatchCommands interface {
	// NotifyDue processes at most limit due entries; a non-positive
	// limit falls back to the configured batch size.
	NotifyDue(ctx context.Context, limit int) (*DispatchResult, error)
	SweepExpired(ctx context.Context) (int64, error)
	MarkViewed(ctx context.Context, rfqID, supplierID uuid.UUID) error
	MarkResponded(ctx context.Context, rfqID, supplierID uuid.UUID) error
}

type dispatchUseCaseImpl struct {
	uow       shared.UnitOfWork
	transport Notifier
	cfg       config.DistributionConfig
	clock     clock.Clock
}

func NewDispatchUseCase(
	uow shared.UnitOfWork,
	transport Notifier,
	cfg config.DistributionConfig,
	clk clock.Clock,
) DispatchCommands {
	return &dispatchUseCaseImpl{
		uow:       uow,
		transport: transport,
		cfg:       cfg,
		clock:     clk,
	}
}

// NotifyDue delivers notifications for entries whose visibility time has
// arrived. Each entry is processed in its own transaction: the row is
// locked, re-checked, the transport invoked, and the status advanced
// only on successful delivery. A failed send rolls back and the entry is
// retried on the next tick.
func (uc *dispatchUseCaseImpl) NotifyDue(ctx context.Context, limit int) (*DispatchResult, error) {
	if limit <= 0 {
		limit = uc.cfg.DispatchBatchSize
	}
	due, err := uc.selectDue(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(due) == 0 {
		return &DispatchResult{}, nil
	}

	var notified, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.DispatchConcurrency)
	for _, entry := range due {
		g.Go(func() error {
			if err := uc.notifyOne(gctx, entry.RFQID, entry.SupplierID); err != nil {
				failed.Add(1)
				slog.Warn("notification delivery failed, entry left pending",
					"rfq_id", entry.RFQID,
					"supplier_id", entry.SupplierID,
					"error", err.Error())
				return nil
			}
			notified.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DispatchResult{
		Selected: len(due),
		Notified: int(notified.Load()),
		Failed:   int(failed.Load()),
	}, nil
}

// selectDue snapshots the due entries in a short transaction. Row locks
// are released at commit; notifyOne re-locks and re-checks each entry,
// so a concurrent dispatcher skipping ahead is harmless.
func (uc *dispatchUseCaseImpl) selectDue(ctx context.Context, limit int) ([]shared.QueueEntrySnapshot, error) {
	var due []shared.QueueEntrySnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Queue().SelectDue(ctx, tx.DB(), int32(limit)) // #nosec G115 -- batch size is a small config value
		if err != nil {
			return err
		}
		due = entries
		return nil
	})
	if err != nil {
		return nil, err
	}
	return due, nil
}

func (uc *dispatchUseCaseImpl) notifyOne(ctx context.Context, rfqID, supplierID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry, err := tx.Queue().GetForUpdate(ctx, tx.DB(), rfqID, supplierID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEntryNotFound
			}
			return err
		}
		if entry.Status != distribution.StatusPending {
			// Another dispatcher got here first.
			return nil
		}
		if uc.clock.Now().Before(entry.VisibleAt) {
			return nil
		}

		msg, err := uc.buildMessage(ctx, tx, entry)
		if err != nil {
			return err
		}

		sendCtx, cancel := context.WithTimeout(ctx, uc.cfg.NotifyTimeout)
		defer cancel()
		if err := uc.transport.Send(sendCtx, msg); err != nil {
			return errs.Mark(err, ErrNotificationFailed)
		}

		advanced, err := tx.Queue().MarkNotified(ctx, tx.DB(), rfqID, supplierID)
		if err != nil {
			return err
		}
		if !advanced {
			return ErrInvalidTransition
		}
		return nil
	})
}

// buildMessage shapes the payload by access level. Outreach entries get
// a claim prompt that names neither the buyer nor the request.
func (uc *dispatchUseCaseImpl) buildMessage(ctx context.Context, tx shared.Tx, entry *shared.QueueEntrySnapshot) (notify.Message, error) {
	if entry.AccessLevel == "outreach_only" {
		return notify.Message{
			SupplierID: entry.SupplierID,
			RFQID:      entry.RFQID,
			Kind:       notify.KindClaimPrompt,
			Subject:    "A buyer is looking for suppliers like you",
			Body:       "Claim your free profile to see matching requests and respond to buyers.",
		}, nil
	}

	request, err := tx.Reads().RFQByID(ctx, entry.RFQID)
	if err != nil {
		return notify.Message{}, err
	}
	return notify.Message{
		SupplierID: entry.SupplierID,
		RFQID:      entry.RFQID,
		Kind:       notify.KindRFQAvailable,
		Subject:    "New request for quote: " + request.Title,
		Body:       "A request matching your profile is now visible. Respond before " + entry.ExpiresAt.Format("2006-01-02 15:04 MST") + ".",
	}, nil
}

// SweepExpired moves overdue pending, notified, and viewed entries to
// expired. Responded entries are never touched.
func (uc *dispatchUseCaseImpl) SweepExpired(ctx context.Context) (int64, error) {
	var expired int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Queue().ExpireOverdue(ctx, tx.DB())
		if err != nil {
			return err
		}
		expired = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	if expired > 0 {
		slog.Info("expired overdue queue entries", "count", expired)
	}
	return expired, nil
}

func (uc *dispatchUseCaseImpl) MarkViewed(ctx context.Context, rfqID, supplierID uuid.UUID) error {
	return uc.transition(ctx, rfqID, supplierID, distribution.StatusViewed, func(ctx context.Context, tx shared.Tx) (bool, error) {
		return tx.Queue().MarkViewed(ctx, tx.DB(), rfqID, supplierID)
	})
}

func (uc *dispatchUseCaseImpl) MarkResponded(ctx context.Context, rfqID, supplierID uuid.UUID) error {
	return uc.transition(ctx, rfqID, supplierID, distribution.StatusResponded, func(ctx context.Context, tx shared.Tx) (bool, error) {
		return tx.Queue().MarkResponded(ctx, tx.DB(), rfqID, supplierID)
	})
}

func (uc *dispatchUseCaseImpl) transition(
	ctx context.Context,
	rfqID, supplierID uuid.UUID,
	next distribution.Status,
	apply func(ctx context.Context, tx shared.Tx) (bool, error),
) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry, err := tx.Queue().GetForUpdate(ctx, tx.DB(), rfqID, supplierID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEntryNotFound
			}
			return err
		}
		if !entry.Status.CanTransitionTo(next) {
			return ErrInvalidTransition
		}
		if !uc.clock.Now().Before(entry.ExpiresAt) {
			// Overdue but not yet swept; readers treat it as expired.
			return ErrEntryExpired
		}

		advanced, err := apply(ctx, tx)
		if err != nil {
			return err
		}
		if !advanced {
			return ErrInvalidTransition
		}
		return nil
	})
}
