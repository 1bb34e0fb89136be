//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"greenrfq/internal/infra"
	"greenrfq/internal/infra/readstore"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	readstoremock "greenrfq/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestShadowReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	shadowID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockShadowViewQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: shadow found",
			setupMock: func(mock *readstoremock.MockShadowViewQueries, id uuid.UUID) {
				lockedUntil := time.Now().Add(30 * time.Minute)
				row := sqlc.ShadowSupplier{
					ID:            id,
					SupplierID:    uuid.New(),
					CompanyName:   "EcoCrete Works",
					ClaimedStatus: "unclaimed",
					OptOutStatus:  "active",
					LockedUntil:   pgtype.Timestamptz{Time: lockedUntil, Valid: true},
				}
				mock.EXPECT().GetShadowByID(ctx, gomock.Any(), id).Return(row, nil)
			},
			expectedError: false,
		},
		{
			name: "error: shadow not found",
			setupMock: func(mock *readstoremock.MockShadowViewQueries, id uuid.UUID) {
				mock.EXPECT().GetShadowByID(ctx, gomock.Any(), id).Return(sqlc.ShadowSupplier{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockShadowViewQueries, id uuid.UUID) {
				mock.EXPECT().GetShadowByID(ctx, gomock.Any(), id).Return(sqlc.ShadowSupplier{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockShadowViewQueries(ctrl)
			store := readstore.NewShadowReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries, shadowID)

			result, err := store.FindByID(ctx, shadowID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, shadowID, result.ShadowID)
				assert.Equal(t, "unclaimed", result.ClaimedStatus)
				assert.NotNil(t, result.LockedUntil)
			}
		})
	}
}

func TestShadowReadStore_FindAuditBySupplier(t *testing.T) {
	ctx := context.Background()
	shadowID := uuid.New()

	t.Run("success: audit entries in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockShadowViewQueries(ctrl)
		store := readstore.NewShadowReadStore(mockQueries, &mockDBTX{})

		rows := []sqlc.ShadowClaimAuditLog{
			{
				ID:               2,
				ShadowSupplierID: shadowID,
				Action:           "code_rejected",
				Actor:            pgtype.Text{String: "203.0.113.7", Valid: true},
				Success:          false,
				Reason:           pgtype.Text{String: "verification code mismatch", Valid: true},
				CreatedAt:        pgtype.Timestamptz{Time: time.Now(), Valid: true},
			},
			{
				ID:               1,
				ShadowSupplierID: shadowID,
				Action:           "token_issued",
				Actor:            pgtype.Text{String: "203.0.113.7", Valid: true},
				Success:          true,
				CreatedAt:        pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true},
			},
		}
		mockQueries.EXPECT().ListClaimAuditBySupplier(ctx, gomock.Any(),
			sqlc.ListClaimAuditBySupplierParams{ShadowSupplierID: shadowID, Limit: 100}).Return(rows, nil)

		result, err := store.FindAuditBySupplier(ctx, shadowID, 100)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "code_rejected", result[0].Action)
		assert.False(t, result[0].Success)
		require.NotNil(t, result[0].Reason)
		assert.Equal(t, "verification code mismatch", *result[0].Reason)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockShadowViewQueries(ctrl)
		store := readstore.NewShadowReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListClaimAuditBySupplier(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		result, err := store.FindAuditBySupplier(ctx, shadowID, 100)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, result)
	})
}

func TestShadowReadStore_FindProducts(t *testing.T) {
	ctx := context.Background()
	shadowID := uuid.New()

	t.Run("success: products with visibility", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockShadowViewQueries(ctrl)
		store := readstore.NewShadowReadStore(mockQueries, &mockDBTX{})

		rows := []sqlc.ShadowProduct{
			{
				ID:               uuid.New(),
				ShadowSupplierID: shadowID,
				Name:             "Recycled aggregate",
				Category:         pgtype.Text{String: "concrete", Valid: true},
				Visibility:       "visible",
			},
		}
		mockQueries.EXPECT().ListShadowProducts(ctx, gomock.Any(), shadowID).Return(rows, nil)

		result, err := store.FindProducts(ctx, shadowID)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Recycled aggregate", result[0].Name)
		assert.Equal(t, "visible", result[0].Visibility)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockShadowViewQueries(ctrl)
		store := readstore.NewShadowReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListShadowProducts(ctx, gomock.Any(), shadowID).Return(nil, errDBConnectionLost)

		result, err := store.FindProducts(ctx, shadowID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, result)
	})
}
