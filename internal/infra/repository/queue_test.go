//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"greenrfq/internal/infra"
	"greenrfq/internal/infra/repository"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/tests/common/builder"
	repositorymock "greenrfq/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Get Queue Entry For Update Tests
// =============================================================================

func TestQueueRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()
	rfqID := uuid.New()
	supplierID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockQueueWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: queue entry locked and returned",
			setupMock: func(mock *repositorymock.MockQueueWriteQueries, tx sqlc.DBTX) {
				row := builder.NewQueueEntryBuilder().
					WithRFQID(rfqID).
					WithSupplierID(supplierID).
					BuildInfra()
				mock.EXPECT().GetQueueEntryForUpdate(ctx, tx, sqlc.GetQueueEntryForUpdateParams{
					RfqID:      rfqID,
					SupplierID: supplierID,
				}).Return(row, nil)
			},
			expectedError: false,
		},
		{
			name: "error: queue entry not found",
			setupMock: func(mock *repositorymock.MockQueueWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetQueueEntryForUpdate(ctx, tx, gomock.Any()).Return(sqlc.DistributionQueue{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockQueueWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetQueueEntryForUpdate(ctx, tx, gomock.Any()).Return(sqlc.DistributionQueue{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockQueueWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewQueueRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			entry, actualError := repo.GetForUpdate(ctx, mockDB, rfqID, supplierID)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Nil(t, entry)
			} else {
				require.NoError(t, actualError)
				require.NotNil(t, entry)
				assert.Equal(t, rfqID, entry.RFQID)
				assert.Equal(t, supplierID, entry.SupplierID)
			}
		})
	}
}

// =============================================================================
// Mark Queue Entry Tests
// =============================================================================

func TestQueueRepository_MarkViewed(t *testing.T) {
	ctx := context.Background()
	rfqID := uuid.New()
	supplierID := uuid.New()

	testCases := []struct {
		name           string
		setupMock      func(*repositorymock.MockQueueWriteQueries, sqlc.DBTX)
		expectedError  bool
		expectKind     infra.RepositoryErrorKind
		expectedMarked bool
	}{
		{
			name: "success: pending entry marked viewed",
			setupMock: func(mock *repositorymock.MockQueueWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().MarkEntryViewed(ctx, tx, sqlc.MarkEntryViewedParams{
					RfqID:      rfqID,
					SupplierID: supplierID,
				}).Return(int64(1), nil)
			},
			expectedMarked: true,
		},
		{
			name: "success: already-responded entry left untouched",
			setupMock: func(mock *repositorymock.MockQueueWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().MarkEntryViewed(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedMarked: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockQueueWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().MarkEntryViewed(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockQueueWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewQueueRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			marked, actualError := repo.MarkViewed(ctx, mockDB, rfqID, supplierID)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, tc.expectedMarked, marked)
			}
		})
	}
}

// =============================================================================
// Expire Overdue Entries Tests
// =============================================================================

func TestQueueRepository_ExpireOverdue(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name            string
		setupMock       func(*repositorymock.MockQueueWriteQueries, sqlc.DBTX)
		expectedError   bool
		expectKind      infra.RepositoryErrorKind
		expectedExpired int64
	}{
		{
			name: "success: overdue entries expired",
			setupMock: func(mock *repositorymock.MockQueueWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ExpireOverdueEntries(ctx, tx).Return(int64(3), nil)
			},
			expectedExpired: 3,
		},
		{
			name: "success: nothing overdue",
			setupMock: func(mock *repositorymock.MockQueueWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ExpireOverdueEntries(ctx, tx).Return(int64(0), nil)
			},
			expectedExpired: 0,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockQueueWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ExpireOverdueEntries(ctx, tx).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockQueueWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewQueueRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			expired, actualError := repo.ExpireOverdue(ctx, mockDB)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, tc.expectedExpired, expired)
			}
		})
	}
}
