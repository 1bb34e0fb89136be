package commands

import (
	"context"
	"log/slog"
	"strings"

	"greenrfq/internal/infra"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/pkg/errs"
	"greenrfq/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrIngestEmailRequired = errs.New("ingestion record requires an email")
	ErrIngestNameRequired  = errs.New("ingestion record requires a company name")
)

type IngestRecord struct {
	CompanyName    string
	Email          string
	Phone          string
	Website        string
	Source         string
	Categories     []string
	Certifications []string
	Latitude       *float64
	Longitude      *float64
}

type IngestResult struct {
	Created int
	Updated int
	// Skipped counts records refused because the existing entry opted
	// out or already completed a claim.
	Skipped int
}

type IngestionCommands interface {
	Ingest(ctx context.Context, records []IngestRecord) (*IngestResult, error)
}

type ingestionUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewIngestionUseCase(uow shared.UnitOfWork) IngestionCommands {
	return &ingestionUseCaseImpl{uow: uow}
}

// Ingest upserts scraped directory entries keyed by email. Opted-out
// records are never resurrected and claimed records are never
// overwritten by scraper data. Each record commits independently so one
// bad row does not fail a batch.
func (uc *ingestionUseCaseImpl) Ingest(ctx context.Context, records []IngestRecord) (*IngestResult, error) {
	result := &IngestResult{}

	for _, rec := range records {
		if err := uc.ingestOne(ctx, rec, result); err != nil {
			slog.Warn("ingestion record failed",
				"email", rec.Email,
				"error", err.Error())
			result.Skipped++
		}
	}

	slog.Info("ingestion batch finished",
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped)
	return result, nil
}

func (uc *ingestionUseCaseImpl) ingestOne(ctx context.Context, rec IngestRecord, result *IngestResult) error {
	email := strings.ToLower(strings.TrimSpace(rec.Email))
	if email == "" {
		return ErrIngestEmailRequired
	}
	if strings.TrimSpace(rec.CompanyName) == "" {
		return ErrIngestNameRequired
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().ShadowByEmail(ctx, email)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		if existing != nil {
			return uc.refresh(ctx, tx, existing, rec, result)
		}
		return uc.create(ctx, tx, rec, email, result)
	})
}

func (uc *ingestionUseCaseImpl) refresh(ctx context.Context, tx shared.Tx, existing *shared.ShadowSnapshot, rec IngestRecord, result *IngestResult) error {
	updated, err := tx.Shadows().UpdateIngestionFields(ctx, tx.DB(), sqlc.UpdateShadowIngestionFieldsParams{
		ID:          existing.ID,
		CompanyName: strings.TrimSpace(rec.CompanyName),
		Phone:       optionalText(rec.Phone),
		Website:     optionalText(rec.Website),
		Source:      optionalText(rec.Source),
	})
	if err != nil {
		return err
	}
	if !updated {
		// Opt-out guard in the query refused the write.
		result.Skipped++
		return nil
	}
	result.Updated++
	return nil
}

// create inserts the placeholder supplier row the queue references,
// then the shadow record pointing at it.
func (uc *ingestionUseCaseImpl) create(ctx context.Context, tx shared.Tx, rec IngestRecord, email string, result *IngestResult) error {
	params := sqlc.CreateSupplierParams{
		CompanyName:    strings.TrimSpace(rec.CompanyName),
		Tier:           "scraped",
		Categories:     rec.Categories,
		Certifications: rec.Certifications,
	}
	if rec.Latitude != nil && rec.Longitude != nil {
		params.Latitude = pgtype.Float8{Float64: *rec.Latitude, Valid: true}
		params.Longitude = pgtype.Float8{Float64: *rec.Longitude, Valid: true}
	}

	supplierID, err := tx.Suppliers().Create(ctx, tx.DB(), params)
	if err != nil {
		return err
	}

	if _, err := tx.Shadows().Create(ctx, tx.DB(), sqlc.CreateShadowSupplierParams{
		SupplierID:  supplierID,
		CompanyName: strings.TrimSpace(rec.CompanyName),
		Email:       pgtype.Text{String: email, Valid: true},
		Phone:       optionalText(rec.Phone),
		Website:     optionalText(rec.Website),
		Source:      optionalText(rec.Source),
	}); err != nil {
		return err
	}

	result.Created++
	return nil
}

func optionalText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
