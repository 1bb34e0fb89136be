package geo

import "math"

const earthRadiusKm = 6371.0

// NeutralScore is used when either side has no coordinates.
const NeutralScore = 50

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type Result struct {
	Score       int
	DistanceKm  *float64
	HasLocation bool
}

// Score computes a banded proximity score between two optional coordinate
// pairs. Missing coordinates on either side yield the neutral score rather
// than an error.
func Score(a, b *Coordinates) Result {
	if a == nil || b == nil {
		return Result{Score: NeutralScore, HasLocation: false}
	}
	km := HaversineKm(*a, *b)
	return Result{Score: bandScore(km), DistanceKm: &km, HasLocation: true}
}

// HaversineKm returns the great-circle distance in kilometers.
func HaversineKm(a, b Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func bandScore(km float64) int {
	switch {
	case km <= 50:
		return 100
	case km <= 100:
		return 90
	case km <= 250:
		return 75
	case km <= 500:
		return 50
	case km <= 1000:
		return 25
	default:
		return 10
	}
}
