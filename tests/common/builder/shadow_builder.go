//go:build unit || e2e

package builder

import (
	"time"

	"greenrfq/internal/domain/shadow"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/usecase/queries"
	"greenrfq/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ShadowBuilder struct {
	ID            uuid.UUID
	SupplierID    uuid.UUID
	CompanyName   string
	Email         string
	Phone         string
	Website       string
	Source        string
	ClaimedStatus shadow.ClaimStatus
	OptOutStatus  shadow.OptOutStatus
	ClaimAttempts int32
	LockedUntil   *time.Time
	CreatedAt     time.Time
}

func NewShadowBuilder() *ShadowBuilder {
	return &ShadowBuilder{
		ID:            uuid.New(),
		SupplierID:    uuid.New(),
		CompanyName:   "EcoCrete Works",
		Email:         "info@ecocrete.example",
		Phone:         "+31 10 555 0199",
		Website:       "https://ecocrete.example",
		Source:        "directory-import",
		ClaimedStatus: shadow.StatusUnclaimed,
		OptOutStatus:  shadow.OptOutActive,
		CreatedAt:     time.Now(),
	}
}

func (b *ShadowBuilder) With(mutate func(*ShadowBuilder)) *ShadowBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ShadowBuilder) BuildSnapshot() *shared.ShadowSnapshot {
	email := b.Email
	phone := b.Phone
	website := b.Website
	source := b.Source
	return &shared.ShadowSnapshot{
		ID:            b.ID,
		SupplierID:    b.SupplierID,
		CompanyName:   b.CompanyName,
		Email:         &email,
		Phone:         &phone,
		Website:       &website,
		Source:        &source,
		ClaimedStatus: b.ClaimedStatus,
		OptOutStatus:  b.OptOutStatus,
		ClaimAttempts: b.ClaimAttempts,
		LockedUntil:   b.LockedUntil,
	}
}

func (b *ShadowBuilder) BuildInfra() sqlc.ShadowSupplier {
	row := sqlc.ShadowSupplier{
		ID:            b.ID,
		SupplierID:    b.SupplierID,
		CompanyName:   b.CompanyName,
		Email:         pgtype.Text{String: b.Email, Valid: b.Email != ""},
		Phone:         pgtype.Text{String: b.Phone, Valid: b.Phone != ""},
		Website:       pgtype.Text{String: b.Website, Valid: b.Website != ""},
		Source:        pgtype.Text{String: b.Source, Valid: b.Source != ""},
		ClaimedStatus: string(b.ClaimedStatus),
		OptOutStatus:  string(b.OptOutStatus),
		ClaimAttempts: b.ClaimAttempts,
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.LockedUntil != nil {
		row.LockedUntil = pgtype.Timestamptz{Time: *b.LockedUntil, Valid: true}
	}
	return row
}

func (b *ShadowBuilder) BuildClaimStatusView() *queries.ClaimStatusView {
	return &queries.ClaimStatusView{
		ShadowID:      b.ID,
		CompanyName:   b.CompanyName,
		ClaimedStatus: string(b.ClaimedStatus),
		OptOutStatus:  string(b.OptOutStatus),
		LockedUntil:   b.LockedUntil,
	}
}

func (b *ShadowBuilder) BuildTokenSnapshot(expiresAt time.Time) *shared.ClaimTokenSnapshot {
	return &shared.ClaimTokenSnapshot{
		ID:               uuid.New(),
		ShadowSupplierID: b.ID,
		Status:           shadow.TokenIssued,
		ExpiresAt:        expiresAt,
		CreatedAt:        b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ShadowBuilder) WithID(id uuid.UUID) *ShadowBuilder {
	b.ID = id
	return b
}

func (b *ShadowBuilder) WithCompanyName(name string) *ShadowBuilder {
	b.CompanyName = name
	return b
}

func (b *ShadowBuilder) WithEmail(email string) *ShadowBuilder {
	b.Email = email
	return b
}

func (b *ShadowBuilder) WithClaimAttempts(n int32) *ShadowBuilder {
	b.ClaimAttempts = n
	return b
}

func (b *ShadowBuilder) AsClaimed() *ShadowBuilder {
	b.ClaimedStatus = shadow.StatusClaimed
	return b
}

func (b *ShadowBuilder) AsPendingVerification() *ShadowBuilder {
	b.ClaimedStatus = shadow.StatusPendingVerification
	return b
}

func (b *ShadowBuilder) AsOptedOut() *ShadowBuilder {
	b.OptOutStatus = shadow.OptOutOptedOut
	return b
}

func (b *ShadowBuilder) AsLockedOut(until time.Time) *ShadowBuilder {
	b.ClaimAttempts = 5
	b.LockedUntil = &until
	return b
}
