package commands

import (
	"context"
	"log/slog"
	"time"

	"greenrfq/internal/domain/geo"
	"greenrfq/internal/domain/rfq"
	"greenrfq/internal/infra"
	"greenrfq/internal/pkg/clock"
	"greenrfq/internal/pkg/errs"
	"greenrfq/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSupplierNotFound  = errs.New("supplier not found")
	ErrDuplicateResponse = errs.New("duplicate response for request")
	ErrRFQClosed         = errs.New("rfq is not accepting responses")
	ErrNotVisibleYet     = errs.New("request is not visible to this supplier")
)

// Geocoder resolves a free-form address. Best effort: a nil result with
// a nil error means no location, which degrades to neutral proximity
// scoring.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*geo.Coordinates, error)
}

type CreateRFQInput struct {
	BuyerID                uuid.UUID
	Title                  string
	Description            string
	Category               string
	Materials              []string
	CertificationsRequired []string
	Latitude               *float64
	Longitude              *float64
	ProjectAddress         string
	BudgetMaxCents         *int64
	Deadline               *time.Time
	DirectInvites          []uuid.UUID
	UseEntitlements        bool
}

type CreateRFQResult struct {
	RFQID        uuid.UUID
	Distribution *DistributeResult
}

type SubmitResponseInput struct {
	RFQID        uuid.UUID
	SupplierID   uuid.UUID
	PriceCents   *int64
	LeadTimeDays *int32
	Message      string
}

type SubmitResponseResult struct {
	ResponseID uuid.UUID
}

type RFQCommands interface {
	CreateRFQ(ctx context.Context, in CreateRFQInput) (*CreateRFQResult, error)
	SubmitResponse(ctx context.Context, in SubmitResponseInput) (*SubmitResponseResult, error)
	CloseRFQ(ctx context.Context, rfqID, buyerID uuid.UUID) error
	ArchiveRFQ(ctx context.Context, rfqID, buyerID uuid.UUID) error
}

type rfqUseCaseImpl struct {
	uow          shared.UnitOfWork
	distribution DistributionCommands
	entitlements EntitlementCommands
	geocoder     Geocoder
	clock        clock.Clock
}

func NewRFQUseCase(
	uow shared.UnitOfWork,
	distribution DistributionCommands,
	entitlements EntitlementCommands,
	geocoder Geocoder,
	clk clock.Clock,
) RFQCommands {
	return &rfqUseCaseImpl{
		uow:          uow,
		distribution: distribution,
		entitlements: entitlements,
		geocoder:     geocoder,
		clock:        clk,
	}
}

// CreateRFQ persists a request and immediately distributes it. Missing
// coordinates are geocoded from the project address when possible;
// geocoding failure never blocks creation.
func (uc *rfqUseCaseImpl) CreateRFQ(ctx context.Context, in CreateRFQInput) (*CreateRFQResult, error) {
	location := uc.resolveLocation(ctx, in)

	entity, err := rfq.New(rfq.Spec{
		BuyerID:                in.BuyerID,
		Title:                  in.Title,
		Description:            in.Description,
		Category:               in.Category,
		Materials:              in.Materials,
		CertificationsRequired: in.CertificationsRequired,
		Location:               location,
		ProjectAddress:         in.ProjectAddress,
		BudgetMaxCents:         in.BudgetMaxCents,
		Deadline:               in.Deadline,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var rfqID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.RFQs().Create(ctx, tx.DB(), entity)
		if err != nil {
			return err
		}
		rfqID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	dist, err := uc.distribution.Distribute(ctx, DistributeInput{
		RFQID:           rfqID,
		UseEntitlements: in.UseEntitlements,
		EnforceQuotas:   in.UseEntitlements,
		DirectInvites:   in.DirectInvites,
	})
	if err != nil {
		// The request exists; distribution can be retried.
		slog.Error("distribution failed after rfq creation",
			"rfq_id", rfqID,
			"error", err.Error())
		return &CreateRFQResult{RFQID: rfqID}, nil
	}

	return &CreateRFQResult{RFQID: rfqID, Distribution: dist}, nil
}

// SubmitResponse records a quote and advances the supplier's queue entry
// to responded in the same transaction. A quote counts against the
// supplier's outbound-message quota.
func (uc *rfqUseCaseImpl) SubmitResponse(ctx context.Context, in SubmitResponseInput) (*SubmitResponseResult, error) {
	admission, err := uc.entitlements.CanSendOutbound(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if !admission.Allowed {
		return nil, ErrQuotaExhausted
	}

	var responseID uuid.UUID

	now := uc.clock.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		request, err := tx.Reads().RFQByID(ctx, in.RFQID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRFQNotFound
			}
			return err
		}
		if request.Status != rfq.StatusOpen && request.Status != rfq.StatusDistributed {
			return ErrRFQClosed
		}

		entry, err := tx.Queue().GetForUpdate(ctx, tx.DB(), in.RFQID, in.SupplierID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEntryNotFound
			}
			return err
		}
		if entry.AccessLevel != "full" {
			return ErrNotVisibleYet
		}
		if now.Before(entry.VisibleAt) {
			return ErrNotVisibleYet
		}
		if !now.Before(entry.ExpiresAt) {
			return ErrEntryExpired
		}

		id, err := tx.RFQs().CreateResponse(ctx, tx.DB(), in.RFQID, in.SupplierID, in.PriceCents, in.LeadTimeDays, in.Message)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateResponse
			}
			return err
		}
		responseID = id

		advanced, err := tx.Queue().MarkResponded(ctx, tx.DB(), in.RFQID, in.SupplierID)
		if err != nil {
			return err
		}
		if !advanced {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Usage tracking is best-effort once the quote is committed.
	if err := uc.entitlements.IncrementOutboundUsage(ctx, in.SupplierID, &responseID); err != nil {
		slog.Warn("outbound usage increment failed",
			"supplier_id", in.SupplierID,
			"error", err.Error())
	}

	return &SubmitResponseResult{ResponseID: responseID}, nil
}

func (uc *rfqUseCaseImpl) CloseRFQ(ctx context.Context, rfqID, buyerID uuid.UUID) error {
	return uc.setStatus(ctx, rfqID, buyerID, rfq.StatusClosed)
}

func (uc *rfqUseCaseImpl) ArchiveRFQ(ctx context.Context, rfqID, buyerID uuid.UUID) error {
	return uc.setStatus(ctx, rfqID, buyerID, rfq.StatusArchived)
}

func (uc *rfqUseCaseImpl) setStatus(ctx context.Context, rfqID, buyerID uuid.UUID, status rfq.Status) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		request, err := tx.Reads().RFQByID(ctx, rfqID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRFQNotFound
			}
			return err
		}
		if request.BuyerID != buyerID {
			return ErrRFQNotFound
		}
		return tx.RFQs().UpdateStatus(ctx, tx.DB(), rfqID, status)
	})
}

func (uc *rfqUseCaseImpl) resolveLocation(ctx context.Context, in CreateRFQInput) *geo.Coordinates {
	if in.Latitude != nil && in.Longitude != nil {
		return &geo.Coordinates{Latitude: *in.Latitude, Longitude: *in.Longitude}
	}
	if in.ProjectAddress == "" {
		return nil
	}

	coords, err := uc.geocoder.Geocode(ctx, in.ProjectAddress)
	if err != nil {
		slog.Warn("geocoding failed, proceeding without location",
			"address", in.ProjectAddress,
			"error", err.Error())
		return nil
	}
	return coords
}
