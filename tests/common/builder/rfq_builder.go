//go:build unit || e2e

package builder

import (
	"time"

	"greenrfq/internal/domain/geo"
	domrfq "greenrfq/internal/domain/rfq"
	reqdto "greenrfq/internal/handler/dto/request"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/usecase/queries"
	"greenrfq/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RFQBuilder struct {
	ID                     uuid.UUID
	BuyerID                uuid.UUID
	Title                  string
	Description            string
	Category               string
	Materials              []string
	CertificationsRequired []string
	Location               *geo.Coordinates
	ProjectAddress         string
	BudgetMaxCents         *int64
	Deadline               *time.Time
	Status                 domrfq.Status
	CreatedAt              time.Time
}

func NewRFQBuilder() *RFQBuilder {
	budget := int64(5_000_000)
	deadline := time.Now().Add(14 * 24 * time.Hour)
	return &RFQBuilder{
		ID:                     uuid.New(),
		BuyerID:                uuid.New(),
		Title:                  "Reclaimed timber for office fit-out",
		Description:            "Approx. 400 sqm of reclaimed oak flooring.",
		Category:               "timber",
		Materials:              []string{"reclaimed oak", "fsc plywood"},
		CertificationsRequired: []string{"FSC"},
		Location:               &geo.Coordinates{Latitude: 52.37, Longitude: 4.89},
		ProjectAddress:         "Amsterdam, NL",
		BudgetMaxCents:         &budget,
		Deadline:               &deadline,
		Status:                 domrfq.StatusOpen,
		CreatedAt:              time.Now(),
	}
}

func (b *RFQBuilder) With(mutate func(*RFQBuilder)) *RFQBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RFQBuilder) BuildDomain() (*domrfq.RFQ, error) {
	return domrfq.New(domrfq.Spec{
		BuyerID:                b.BuyerID,
		Title:                  b.Title,
		Description:            b.Description,
		Category:               b.Category,
		Materials:              b.Materials,
		CertificationsRequired: b.CertificationsRequired,
		Location:               b.Location,
		ProjectAddress:         b.ProjectAddress,
		BudgetMaxCents:         b.BudgetMaxCents,
		Deadline:               b.Deadline,
	}, b.CreatedAt)
}

func (b *RFQBuilder) BuildSnapshot() *shared.RFQSnapshot {
	description := b.Description
	category := b.Category
	address := b.ProjectAddress
	return &shared.RFQSnapshot{
		ID:                     b.ID,
		BuyerID:                b.BuyerID,
		Title:                  b.Title,
		Description:            &description,
		Category:               &category,
		Materials:              b.Materials,
		CertificationsRequired: b.CertificationsRequired,
		Location:               b.Location,
		ProjectAddress:         &address,
		BudgetMaxCents:         b.BudgetMaxCents,
		Deadline:               b.Deadline,
		Status:                 b.Status,
		CreatedAt:              b.CreatedAt,
	}
}

func (b *RFQBuilder) BuildInfra() sqlc.Rfq {
	row := sqlc.Rfq{
		ID:                     b.ID,
		BuyerID:                b.BuyerID,
		Title:                  b.Title,
		Description:            pgtype.Text{String: b.Description, Valid: b.Description != ""},
		Category:               pgtype.Text{String: b.Category, Valid: b.Category != ""},
		Materials:              b.Materials,
		CertificationsRequired: b.CertificationsRequired,
		ProjectAddress:         pgtype.Text{String: b.ProjectAddress, Valid: b.ProjectAddress != ""},
		Status:                 string(b.Status),
		CreatedAt:              pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:              pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.Location != nil {
		row.Latitude = pgtype.Float8{Float64: b.Location.Latitude, Valid: true}
		row.Longitude = pgtype.Float8{Float64: b.Location.Longitude, Valid: true}
	}
	if b.BudgetMaxCents != nil {
		row.BudgetMaxCents = pgtype.Int8{Int64: *b.BudgetMaxCents, Valid: true}
	}
	if b.Deadline != nil {
		row.Deadline = pgtype.Timestamptz{Time: *b.Deadline, Valid: true}
	}
	return row
}

func (b *RFQBuilder) BuildView() *queries.RFQView {
	description := b.Description
	category := b.Category
	address := b.ProjectAddress
	return &queries.RFQView{
		ID:                     b.ID,
		BuyerID:                b.BuyerID,
		Title:                  b.Title,
		Description:            &description,
		Category:               &category,
		Materials:              b.Materials,
		CertificationsRequired: b.CertificationsRequired,
		ProjectAddress:         &address,
		BudgetMaxCents:         b.BudgetMaxCents,
		Deadline:               b.Deadline,
		Status:                 string(b.Status),
		CreatedAt:              b.CreatedAt,
	}
}

func (b *RFQBuilder) BuildListItem() *queries.RFQListItem {
	category := b.Category
	return &queries.RFQListItem{
		ID:        b.ID,
		Title:     b.Title,
		Category:  &category,
		Status:    string(b.Status),
		Deadline:  b.Deadline,
		CreatedAt: b.CreatedAt,
	}
}

func (b *RFQBuilder) BuildCreateRequestDTO() reqdto.CreateRFQRequest {
	req := reqdto.CreateRFQRequest{
		Title:                  b.Title,
		Description:            b.Description,
		Category:               b.Category,
		Materials:              b.Materials,
		CertificationsRequired: b.CertificationsRequired,
		ProjectAddress:         b.ProjectAddress,
		BudgetMaxCents:         b.BudgetMaxCents,
		Deadline:               b.Deadline,
	}
	if b.Location != nil {
		lat := b.Location.Latitude
		lon := b.Location.Longitude
		req.Latitude = &lat
		req.Longitude = &lon
	}
	return req
}

// Fluent builder methods
func (b *RFQBuilder) WithBuyerID(buyerID uuid.UUID) *RFQBuilder {
	b.BuyerID = buyerID
	return b
}

func (b *RFQBuilder) WithTitle(title string) *RFQBuilder {
	b.Title = title
	return b
}

func (b *RFQBuilder) WithCategory(category string) *RFQBuilder {
	b.Category = category
	return b
}

func (b *RFQBuilder) WithMaterials(materials ...string) *RFQBuilder {
	b.Materials = materials
	return b
}

func (b *RFQBuilder) WithStatus(status domrfq.Status) *RFQBuilder {
	b.Status = status
	return b
}

func (b *RFQBuilder) WithDeadline(deadline time.Time) *RFQBuilder {
	b.Deadline = &deadline
	return b
}

func (b *RFQBuilder) WithoutLocation() *RFQBuilder {
	b.Location = nil
	return b
}

func (b *RFQBuilder) AsClosed() *RFQBuilder {
	b.Status = domrfq.StatusClosed
	return b
}

func (b *RFQBuilder) AsDistributed() *RFQBuilder {
	b.Status = domrfq.StatusDistributed
	return b
}
