//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"greenrfq/internal/domain/rfq"
	"greenrfq/internal/infra"
	"greenrfq/internal/infra/repository"
	sqlc "greenrfq/internal/infra/sqlc/generated"
	"greenrfq/tests/common/builder"
	repositorymock "greenrfq/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create RFQ Tests
// =============================================================================

func TestRFQRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRFQWriteQueries, *rfq.RFQ, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: rfq created successfully",
			setupMock: func(mock *repositorymock.MockRFQWriteQueries, req *rfq.RFQ, tx sqlc.DBTX) {
				mock.EXPECT().CreateRFQ(ctx, tx, gomock.Any()).Return(req.ID(), nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockRFQWriteQueries, req *rfq.RFQ, tx sqlc.DBTX) {
				mock.EXPECT().CreateRFQ(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: duplicate rfq error",
			setupMock: func(mock *repositorymock.MockRFQWriteQueries, req *rfq.RFQ, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateRFQ(ctx, tx, gomock.Any()).Return(uuid.Nil, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRFQWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRFQRepository(mockQueries, mockDB)

			domainRFQ, err := builder.NewRFQBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainRFQ, mockDB)

			rfqID, actualError := repo.Create(ctx, mockDB, domainRFQ)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Equal(t, uuid.Nil, rfqID, "rfqID should be nil when error occurs")
			} else {
				assert.NoError(t, actualError)
				assert.NotEqual(t, uuid.Nil, rfqID)
			}
		})
	}
}

// =============================================================================
// Update RFQ Status Tests
// =============================================================================

func TestRFQRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	rfqID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRFQWriteQueries, uuid.UUID, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: status updated successfully",
			setupMock: func(mock *repositorymock.MockRFQWriteQueries, id uuid.UUID, tx sqlc.DBTX) {
				mock.EXPECT().UpdateRFQStatus(ctx, tx, sqlc.UpdateRFQStatusParams{
					ID:     id,
					Status: string(rfq.StatusDistributed),
				}).Return(int64(1), nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockRFQWriteQueries, id uuid.UUID, tx sqlc.DBTX) {
				mock.EXPECT().UpdateRFQStatus(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: rfq not found",
			setupMock: func(mock *repositorymock.MockRFQWriteQueries, id uuid.UUID, tx sqlc.DBTX) {
				mock.EXPECT().UpdateRFQStatus(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRFQWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRFQRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, rfqID, mockDB)

			actualError := repo.UpdateStatus(ctx, mockDB, rfqID, rfq.StatusDistributed)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Create RFQ Response Tests
// =============================================================================

func TestRFQRepository_CreateResponse(t *testing.T) {
	ctx := context.Background()
	rfqID := uuid.New()
	supplierID := uuid.New()
	responseID := uuid.New()
	priceCents := int64(4_200_000)
	leadTimeDays := int32(21)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRFQWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: response created successfully",
			setupMock: func(mock *repositorymock.MockRFQWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateRFQResponse(ctx, tx, gomock.Any()).Return(responseID, nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockRFQWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateRFQResponse(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: supplier already responded",
			setupMock: func(mock *repositorymock.MockRFQWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateRFQResponse(ctx, tx, gomock.Any()).Return(uuid.Nil, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRFQWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRFQRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			actualID, actualError := repo.CreateResponse(ctx, mockDB, rfqID, supplierID, &priceCents, &leadTimeDays, "We can deliver FSC-certified stock within three weeks.")

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Equal(t, uuid.Nil, actualID, "response ID should be nil when error occurs")
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, responseID, actualID)
			}
		})
	}
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
