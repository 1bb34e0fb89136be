//go:build unit

package rfq_test

import (
	"testing"
	"time"

	"greenrfq/internal/domain/geo"
	"greenrfq/internal/domain/rfq"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func validSpec() rfq.Spec {
	return rfq.Spec{
		BuyerID:                uuid.New(),
		Title:                  "Reclaimed timber for mixed-use project",
		Category:               "timber",
		CertificationsRequired: []string{"FSC"},
		Location:               &geo.Coordinates{Latitude: 47.61, Longitude: -122.33},
	}
}

func TestNew(t *testing.T) {
	r, err := rfq.New(validSpec(), now)
	require.NoError(t, err)
	assert.Equal(t, rfq.StatusOpen, r.Status())
	assert.NotEqual(t, uuid.Nil, r.ID())
	assert.NoError(t, r.CanDistribute())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*rfq.Spec)
		wantErr error
	}{
		{"empty title", func(s *rfq.Spec) { s.Title = "  " }, rfq.ErrTitleRequired},
		{"missing buyer", func(s *rfq.Spec) { s.BuyerID = uuid.Nil }, rfq.ErrBuyerRequired},
		{"latitude out of range", func(s *rfq.Spec) { s.Location = &geo.Coordinates{Latitude: 91} }, rfq.ErrInvalidCoordinates},
		{"longitude out of range", func(s *rfq.Spec) { s.Location = &geo.Coordinates{Longitude: -181} }, rfq.ErrInvalidCoordinates},
		{"past deadline", func(s *rfq.Spec) { d := now.Add(-time.Hour); s.Deadline = &d }, rfq.ErrDeadlineInPast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)
			_, err := rfq.New(spec, now)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCanDistribute(t *testing.T) {
	r := rfq.Reconstruct(
		uuid.New(), uuid.New(), "closed rfq", "", "", nil, nil, nil, "",
		nil, nil, rfq.StatusClosed, now, now,
	)
	assert.ErrorIs(t, r.CanDistribute(), rfq.ErrNotOpen)

	r = rfq.Reconstruct(
		uuid.New(), uuid.New(), "distributed rfq", "", "", nil, nil, nil, "",
		nil, nil, rfq.StatusDistributed, now, now,
	)
	assert.NoError(t, r.CanDistribute(), "re-scoring an already distributed rfq is allowed")
}
