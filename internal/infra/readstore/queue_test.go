//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"greenrfq/internal/domain/supplier"
	"greenrfq/internal/infra"
	"greenrfq/internal/infra/readstore"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	readstoremock "greenrfq/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQueueReadStore_FindStatusCounts(t *testing.T) {
	ctx := context.Background()
	rfqID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockQueueViewQueries)
		expectedCount int
		expectedError bool
	}{
		{
			name: "success: counts per wave and status",
			setupMock: func(mock *readstoremock.MockQueueViewQueries) {
				rows := []sqlc.GetQueueStatusCountsRow{
					{WaveNumber: 1, Status: "notified", EntryCount: 5},
					{WaveNumber: 2, Status: "pending", EntryCount: 12},
				}
				mock.EXPECT().GetQueueStatusCounts(ctx, gomock.Any(), rfqID).Return(rows, nil)
			},
			expectedCount: 2,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockQueueViewQueries) {
				mock.EXPECT().GetQueueStatusCounts(ctx, gomock.Any(), rfqID).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockQueueViewQueries(ctrl)
			store := readstore.NewQueueReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries)

			result, err := store.FindStatusCounts(ctx, rfqID)

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

func TestQueueReadStore_FindEntriesByRFQ(t *testing.T) {
	ctx := context.Background()
	rfqID := uuid.New()
	now := time.Now()

	t.Run("breakdown JSON is decoded into components", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockQueueViewQueries(ctrl)
		store := readstore.NewQueueReadStore(mockQueries, &mockDBTX{})

		rows := []sqlc.ListQueueEntriesByRFQRow{
			{
				RfqID:          rfqID,
				SupplierID:     uuid.New(),
				WaveNumber:     1,
				VisibleAt:      pgtype.Timestamptz{Time: now, Valid: true},
				ExpiresAt:      pgtype.Timestamptz{Time: now.Add(48 * time.Hour), Valid: true},
				Status:         "notified",
				AccessLevel:    "full",
				MatchScore:     72.5,
				PriorityScore:  0.64,
				ScoreBreakdown: []byte(`[{"name":"pool","points":35,"max":35,"reason":"category and materials matched"}]`),
				DistanceKm:     pgtype.Float8{Float64: 12.5, Valid: true},
				TierSnapshot:   "standard",
				CompanyName:    "GreenTimber BV",
				Tier:           "standard",
			},
		}
		mockQueries.EXPECT().ListQueueEntriesByRFQ(ctx, gomock.Any(), rfqID).Return(rows, nil)

		result, err := store.FindEntriesByRFQ(ctx, rfqID)
		require.NoError(t, err)
		require.Len(t, result, 1)
		entry := result[0]
		assert.Equal(t, "GreenTimber BV", entry.SupplierName)
		require.Len(t, entry.Breakdown, 1)
		assert.Equal(t, "pool", entry.Breakdown[0].Name)
		assert.InDelta(t, 35.0, entry.Breakdown[0].Points, 0.001)
		require.NotNil(t, entry.DistanceKm)
		assert.InDelta(t, 12.5, *entry.DistanceKm, 0.001)
	})

	t.Run("scraped tier snapshot is anonymized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockQueueViewQueries(ctrl)
		store := readstore.NewQueueReadStore(mockQueries, &mockDBTX{})

		rows := []sqlc.ListQueueEntriesByRFQRow{
			{
				RfqID:        rfqID,
				SupplierID:   uuid.New(),
				WaveNumber:   4,
				VisibleAt:    pgtype.Timestamptz{Time: now, Valid: true},
				ExpiresAt:    pgtype.Timestamptz{Time: now.Add(48 * time.Hour), Valid: true},
				Status:       "pending",
				AccessLevel:  "outreach_only",
				TierSnapshot: "scraped",
				CompanyName:  "EcoCrete Works",
				Tier:         "scraped",
			},
		}
		mockQueries.EXPECT().ListQueueEntriesByRFQ(ctx, gomock.Any(), rfqID).Return(rows, nil)

		result, err := store.FindEntriesByRFQ(ctx, rfqID)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, supplier.AnonymousLabel, result[0].SupplierName)
	})

	t.Run("corrupt breakdown degrades to empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockQueueViewQueries(ctrl)
		store := readstore.NewQueueReadStore(mockQueries, &mockDBTX{})

		rows := []sqlc.ListQueueEntriesByRFQRow{
			{
				RfqID:          rfqID,
				SupplierID:     uuid.New(),
				WaveNumber:     1,
				Status:         "pending",
				AccessLevel:    "full",
				ScoreBreakdown: []byte(`{not json`),
				TierSnapshot:   "standard",
				CompanyName:    "GreenTimber BV",
			},
		}
		mockQueries.EXPECT().ListQueueEntriesByRFQ(ctx, gomock.Any(), rfqID).Return(rows, nil)

		result, err := store.FindEntriesByRFQ(ctx, rfqID)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Empty(t, result[0].Breakdown)
	})
}

func TestQueueReadStore_FindVisibleForSupplier(t *testing.T) {
	ctx := context.Background()
	supplierID := uuid.New()
	now := time.Now()

	t.Run("full access entries carry request content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockQueueViewQueries(ctrl)
		store := readstore.NewQueueReadStore(mockQueries, &mockDBTX{})

		budget := int64(5_000_000)
		rows := []sqlc.ListVisibleEntriesForSupplierRow{
			{
				RfqID:          uuid.New(),
				SupplierID:     supplierID,
				WaveNumber:     1,
				VisibleAt:      pgtype.Timestamptz{Time: now, Valid: true},
				ExpiresAt:      pgtype.Timestamptz{Time: now.Add(48 * time.Hour), Valid: true},
				Status:         "notified",
				AccessLevel:    "full",
				MatchScore:     80,
				Title:          "Reclaimed timber for office fit-out",
				Category:       pgtype.Text{String: "timber", Valid: true},
				Materials:      []string{"reclaimed oak"},
				BudgetMaxCents: pgtype.Int8{Int64: budget, Valid: true},
				RfqStatus:      "distributed",
			},
		}
		mockQueries.EXPECT().ListVisibleEntriesForSupplier(ctx, gomock.Any(),
			sqlc.ListVisibleEntriesForSupplierParams{SupplierID: supplierID, Limit: 50}).Return(rows, nil)

		result, err := store.FindVisibleForSupplier(ctx, supplierID, 50)
		require.NoError(t, err)
		require.Len(t, result, 1)
		item := result[0]
		require.NotNil(t, item.Title)
		assert.Equal(t, "Reclaimed timber for office fit-out", *item.Title)
		require.NotNil(t, item.BudgetMaxCents)
		assert.Equal(t, budget, *item.BudgetMaxCents)
		assert.False(t, item.ClaimPrompt)
	})

	t.Run("outreach-only entries withhold all content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockQueueViewQueries(ctrl)
		store := readstore.NewQueueReadStore(mockQueries, &mockDBTX{})

		rows := []sqlc.ListVisibleEntriesForSupplierRow{
			{
				RfqID:       uuid.New(),
				SupplierID:  supplierID,
				WaveNumber:  4,
				VisibleAt:   pgtype.Timestamptz{Time: now, Valid: true},
				ExpiresAt:   pgtype.Timestamptz{Time: now.Add(48 * time.Hour), Valid: true},
				Status:      "notified",
				AccessLevel: "outreach_only",
				Title:       "Reclaimed timber for office fit-out",
				Materials:   []string{"reclaimed oak"},
			},
		}
		mockQueries.EXPECT().ListVisibleEntriesForSupplier(ctx, gomock.Any(), gomock.Any()).Return(rows, nil)

		result, err := store.FindVisibleForSupplier(ctx, supplierID, 50)
		require.NoError(t, err)
		require.Len(t, result, 1)
		item := result[0]
		assert.Nil(t, item.Title, "outreach-only entries must not leak the title")
		assert.Nil(t, item.Category)
		assert.Empty(t, item.Materials)
		assert.Nil(t, item.BudgetMaxCents)
		assert.True(t, item.ClaimPrompt)
	})

	t.Run("database error wraps as repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockQueueViewQueries(ctrl)
		store := readstore.NewQueueReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListVisibleEntriesForSupplier(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		result, err := store.FindVisibleForSupplier(ctx, supplierID, 50)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, result)
	})
}
