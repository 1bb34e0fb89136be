//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"greenrfq/internal/domain/supplier"
	"greenrfq/internal/infra"
	"greenrfq/internal/infra/readstore"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	readstoremock "greenrfq/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func TestRFQReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	rfqID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockRFQViewQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: rfq found",
			setupMock: func(mock *readstoremock.MockRFQViewQueries, id uuid.UUID) {
				expectedRow := sqlc.Rfq{
					ID:        id,
					BuyerID:   uuid.New(),
					Title:     "Reclaimed timber for office fit-out",
					Materials: []string{"reclaimed oak"},
					Status:    "open",
					CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
				}
				mock.EXPECT().GetRFQByID(ctx, gomock.Any(), id).Return(expectedRow, nil)
			},
			expectedError: false,
		},
		{
			name: "error: rfq not found",
			setupMock: func(mock *readstoremock.MockRFQViewQueries, id uuid.UUID) {
				mock.EXPECT().GetRFQByID(ctx, gomock.Any(), id).Return(sqlc.Rfq{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockRFQViewQueries, id uuid.UUID) {
				mock.EXPECT().GetRFQByID(ctx, gomock.Any(), id).Return(sqlc.Rfq{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockRFQViewQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewRFQReadStore(mockQueries, mockDB)

			tc.setupMock(mockQueries, rfqID)

			result, actualError := store.FindByID(ctx, rfqID)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Nil(t, result, "result should be nil when error occurs")
			} else {
				assert.NoError(t, actualError)
				require.NotNil(t, result)
				assert.Equal(t, rfqID, result.ID)
			}
		})
	}
}

func TestRFQReadStore_FindByBuyer(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockRFQViewQueries)
		expectedCount int
		expectedError bool
	}{
		{
			name: "success: two rfqs",
			setupMock: func(mock *readstoremock.MockRFQViewQueries) {
				rows := []sqlc.Rfq{
					{ID: uuid.New(), BuyerID: buyerID, Title: "First", Status: "open"},
					{ID: uuid.New(), BuyerID: buyerID, Title: "Second", Status: "closed"},
				}
				mock.EXPECT().ListRFQsByBuyer(ctx, gomock.Any(), sqlc.ListRFQsByBuyerParams{BuyerID: buyerID, Limit: 50}).Return(rows, nil)
			},
			expectedCount: 2,
		},
		{
			name: "success: empty list",
			setupMock: func(mock *readstoremock.MockRFQViewQueries) {
				mock.EXPECT().ListRFQsByBuyer(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.Rfq{}, nil)
			},
			expectedCount: 0,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockRFQViewQueries) {
				mock.EXPECT().ListRFQsByBuyer(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockRFQViewQueries(ctrl)
			store := readstore.NewRFQReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries)

			result, err := store.FindByBuyer(ctx, buyerID, 50)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
				assert.Len(t, result, tc.expectedCount)
			}
		})
	}
}

func TestRFQReadStore_FindResponses(t *testing.T) {
	ctx := context.Background()
	rfqID := uuid.New()

	t.Run("claimed supplier identity passes through intact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockRFQViewQueries(ctrl)
		store := readstore.NewRFQReadStore(mockQueries, &mockDBTX{})

		rows := []sqlc.ListResponsesByRFQRow{
			{
				ID:           uuid.New(),
				RfqID:        rfqID,
				SupplierID:   uuid.New(),
				Message:      "We can deliver in three weeks.",
				CompanyName:  "GreenTimber BV",
				ContactEmail: pgtype.Text{String: "sales@greentimber.example", Valid: true},
				Tier:         "standard",
				Verified:     true,
			},
		}
		mockQueries.EXPECT().ListResponsesByRFQ(ctx, gomock.Any(), rfqID).Return(rows, nil)

		result, err := store.FindResponses(ctx, rfqID)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "GreenTimber BV", result[0].SupplierName)
		require.NotNil(t, result[0].ContactEmail)
		assert.Equal(t, "sales@greentimber.example", *result[0].ContactEmail)
		assert.True(t, result[0].Verified)
	})

	t.Run("scraped supplier identity is anonymized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockRFQViewQueries(ctrl)
		store := readstore.NewRFQReadStore(mockQueries, &mockDBTX{})

		rows := []sqlc.ListResponsesByRFQRow{
			{
				ID:           uuid.New(),
				RfqID:        rfqID,
				SupplierID:   uuid.New(),
				Message:      "Interested.",
				CompanyName:  "EcoCrete Works",
				ContactEmail: pgtype.Text{String: "info@ecocrete.example", Valid: true},
				Tier:         "scraped",
				Verified:     false,
			},
		}
		mockQueries.EXPECT().ListResponsesByRFQ(ctx, gomock.Any(), rfqID).Return(rows, nil)

		result, err := store.FindResponses(ctx, rfqID)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, supplier.AnonymousLabel, result[0].SupplierName)
		assert.Nil(t, result[0].ContactEmail, "contact channels must be withheld for unclaimed suppliers")
		assert.False(t, result[0].Verified)
	})

	t.Run("database error wraps as repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockRFQViewQueries(ctrl)
		store := readstore.NewRFQReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListResponsesByRFQ(ctx, gomock.Any(), rfqID).Return(nil, errDBConnectionLost)

		result, err := store.FindResponses(ctx, rfqID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, result)
	})
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
