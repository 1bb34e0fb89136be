//go:build unit

package geo_test

import (
	"testing"

	"greenrfq/internal/domain/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	seattle  = geo.Coordinates{Latitude: 47.6062, Longitude: -122.3321}
	portland = geo.Coordinates{Latitude: 45.5152, Longitude: -122.6784}
	tokyo    = geo.Coordinates{Latitude: 35.6762, Longitude: 139.6503}
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name     string
		a, b     geo.Coordinates
		expected float64
		delta    float64
	}{
		{"same point", seattle, seattle, 0, 0.001},
		{"seattle to portland", seattle, portland, 234, 3},
		{"seattle to tokyo", seattle, tokyo, 7712, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, geo.HaversineKm(tt.a, tt.b), tt.delta)
		})
	}
}

func TestScore_Bands(t *testing.T) {
	near := geo.Coordinates{Latitude: 47.61, Longitude: -122.33}
	veryClose := geo.Coordinates{Latitude: 47.60, Longitude: -122.33}

	r := geo.Score(&near, &veryClose)
	require.True(t, r.HasLocation)
	require.NotNil(t, r.DistanceKm)
	assert.Equal(t, 100, r.Score)
	assert.Less(t, *r.DistanceKm, 50.0)

	r = geo.Score(&seattle, &portland)
	assert.Equal(t, 75, r.Score, "234km falls in the 100-250 band")

	r = geo.Score(&seattle, &tokyo)
	assert.Equal(t, 10, r.Score, "beyond 1000km floors at 10")
}

func TestScore_Symmetry(t *testing.T) {
	ab := geo.Score(&seattle, &portland)
	ba := geo.Score(&portland, &seattle)
	assert.Equal(t, ab.Score, ba.Score)
	assert.InDelta(t, *ab.DistanceKm, *ba.DistanceKm, 1e-9)
}

func TestScore_MissingCoordinates(t *testing.T) {
	tests := []struct {
		name string
		a, b *geo.Coordinates
	}{
		{"both nil", nil, nil},
		{"first nil", nil, &seattle},
		{"second nil", &seattle, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := geo.Score(tt.a, tt.b)
			assert.Equal(t, geo.NeutralScore, r.Score)
			assert.False(t, r.HasLocation)
			assert.Nil(t, r.DistanceKm)
		})
	}
}
