package repository

import (
	"context"
	"time"

	"greenrfq/internal/infra"
	"greenrfq/internal/infra/repository/converter"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/internal/pkg/pgconv"
	"greenrfq/internal/usecase/shared"

	"github.com/google/uuid"
)

type ShadowWriteQueries interface {
	GetShadowForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ShadowSupplier, error)
	CreateShadowSupplier(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateShadowSupplierParams) (uuid.UUID, error)
	UpdateShadowIngestionFields(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateShadowIngestionFieldsParams) (int64, error)
	UpdateShadowClaimAttempts(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateShadowClaimAttemptsParams) error
	SetShadowPendingVerification(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	CompleteShadowClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteShadowClaimParams) (int64, error)
	OptOutShadow(ctx context.Context, db sqlc.DBTX, arg sqlc.OptOutShadowParams) (int64, error)
	InvalidateActiveClaimTokens(ctx context.Context, db sqlc.DBTX, shadowSupplierID uuid.UUID) (int64, error)
	CreateClaimToken(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateClaimTokenParams) (uuid.UUID, error)
	GetClaimTokenByHashForUpdate(ctx context.Context, db sqlc.DBTX, tokenHash string) (sqlc.ShadowClaimToken, error)
	ConsumeClaimToken(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	SetVerificationCode(ctx context.Context, db sqlc.DBTX, arg sqlc.SetVerificationCodeParams) (int64, error)
	ClearVerificationCode(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	CountClaimTokensIssuedSince(ctx context.Context, db sqlc.DBTX, arg sqlc.CountClaimTokensIssuedSinceParams) (int64, error)
	InsertClaimAudit(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertClaimAuditParams) error
	UpdateShadowProductsVisibility(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateShadowProductsVisibilityParams) (int64, error)
}

type ShadowRepository struct {
	queries ShadowWriteQueries
	db      sqlc.DBTX
}

func NewShadowRepository(queries ShadowWriteQueries, db sqlc.DBTX) *ShadowRepository {
	return &ShadowRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ShadowRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.ShadowSnapshot, error) {
	row, err := r.queries.GetShadowForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shadow supplier not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get shadow supplier", err)
	}

	return converter.ShadowSnapshotFromRow(row), nil
}

func (r *ShadowRepository) Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateShadowSupplierParams) (uuid.UUID, error) {
	resultID, err := r.queries.CreateShadowSupplier(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create shadow supplier", err)
	}

	return resultID, nil
}

// UpdateIngestionFields refreshes scraped fields. Records that opted out
// are never touched; the guard lives in the query.
func (r *ShadowRepository) UpdateIngestionFields(ctx context.Context, tx sqlc.DBTX, params sqlc.UpdateShadowIngestionFieldsParams) (bool, error) {
	affected, err := r.queries.UpdateShadowIngestionFields(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update shadow ingestion fields", err)
	}

	return affected > 0, nil
}

func (r *ShadowRepository) UpdateClaimAttempts(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, attempts int32, lockedUntil *time.Time) error {
	err := r.queries.UpdateShadowClaimAttempts(ctx, tx, sqlc.UpdateShadowClaimAttemptsParams{
		ID:            id,
		ClaimAttempts: attempts,
		LockedUntil:   pgconv.TimePtrToPgtype(lockedUntil),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update shadow claim attempts", err)
	}

	return nil
}

func (r *ShadowRepository) SetPendingVerification(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	affected, err := r.queries.SetShadowPendingVerification(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to set shadow pending verification", err)
	}

	return affected > 0, nil
}

func (r *ShadowRepository) CompleteClaim(ctx context.Context, tx sqlc.DBTX, id, linkedSupplierID uuid.UUID) (bool, error) {
	affected, err := r.queries.CompleteShadowClaim(ctx, tx, sqlc.CompleteShadowClaimParams{
		ID:               id,
		LinkedSupplierID: uuid.NullUUID{UUID: linkedSupplierID, Valid: true},
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete shadow claim", err)
	}

	return affected > 0, nil
}

func (r *ShadowRepository) OptOut(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string) (bool, error) {
	params := sqlc.OptOutShadowParams{ID: id}
	if reason != "" {
		params.OptOutReason = pgconv.StringToPgtype(reason)
	}

	affected, err := r.queries.OptOutShadow(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to opt out shadow supplier", err)
	}

	return affected > 0, nil
}

func (r *ShadowRepository) InvalidateActiveTokens(ctx context.Context, tx sqlc.DBTX, shadowID uuid.UUID) (int64, error) {
	affected, err := r.queries.InvalidateActiveClaimTokens(ctx, tx, shadowID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to invalidate claim tokens", err)
	}

	return affected, nil
}

func (r *ShadowRepository) CreateToken(ctx context.Context, tx sqlc.DBTX, shadowID uuid.UUID, tokenHash string, expiresAt time.Time) (uuid.UUID, error) {
	resultID, err := r.queries.CreateClaimToken(ctx, tx, sqlc.CreateClaimTokenParams{
		ShadowSupplierID: shadowID,
		TokenHash:        tokenHash,
		ExpiresAt:        pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create claim token", err)
	}

	return resultID, nil
}

func (r *ShadowRepository) TokenByHashForUpdate(ctx context.Context, tx sqlc.DBTX, tokenHash string) (*shared.ClaimTokenSnapshot, error) {
	row, err := r.queries.GetClaimTokenByHashForUpdate(ctx, tx, tokenHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("claim token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get claim token", err)
	}

	return converter.ClaimTokenSnapshotFromRow(row), nil
}

func (r *ShadowRepository) ConsumeToken(ctx context.Context, tx sqlc.DBTX, tokenID uuid.UUID) (bool, error) {
	affected, err := r.queries.ConsumeClaimToken(ctx, tx, tokenID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume claim token", err)
	}

	return affected > 0, nil
}

func (r *ShadowRepository) SetVerificationCode(ctx context.Context, tx sqlc.DBTX, tokenID uuid.UUID, code string, expiresAt time.Time) (bool, error) {
	affected, err := r.queries.SetVerificationCode(ctx, tx, sqlc.SetVerificationCodeParams{
		ID:                    tokenID,
		VerificationCode:      pgconv.StringToPgtype(code),
		VerificationExpiresAt: pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to set verification code", err)
	}

	return affected > 0, nil
}

func (r *ShadowRepository) ClearVerificationCode(ctx context.Context, tx sqlc.DBTX, tokenID uuid.UUID) error {
	if err := r.queries.ClearVerificationCode(ctx, tx, tokenID); err != nil {
		return infra.WrapRepoErr("failed to clear verification code", err)
	}

	return nil
}

func (r *ShadowRepository) CountTokensIssuedSince(ctx context.Context, tx sqlc.DBTX, shadowID uuid.UUID, since time.Time) (int64, error) {
	count, err := r.queries.CountClaimTokensIssuedSince(ctx, tx, sqlc.CountClaimTokensIssuedSinceParams{
		ShadowSupplierID: shadowID,
		CreatedAt:        pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count claim tokens", err)
	}

	return count, nil
}

func (r *ShadowRepository) AppendAudit(ctx context.Context, tx sqlc.DBTX, shadowID uuid.UUID, action, actor string, success bool, reason string) error {
	params := sqlc.InsertClaimAuditParams{
		ShadowSupplierID: shadowID,
		Action:           action,
		Success:          success,
	}
	if actor != "" {
		params.Actor = pgconv.StringToPgtype(actor)
	}
	if reason != "" {
		params.Reason = pgconv.StringToPgtype(reason)
	}

	if err := r.queries.InsertClaimAudit(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to insert claim audit entry", err)
	}

	return nil
}

func (r *ShadowRepository) SetProductsVisibility(ctx context.Context, tx sqlc.DBTX, shadowID uuid.UUID, visibility string) (int64, error) {
	affected, err := r.queries.UpdateShadowProductsVisibility(ctx, tx, sqlc.UpdateShadowProductsVisibilityParams{
		ShadowSupplierID: shadowID,
		Visibility:       visibility,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update shadow product visibility", err)
	}

	return affected, nil
}
