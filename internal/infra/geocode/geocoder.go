package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"greenrfq/internal/domain/geo"
	"greenrfq/internal/pkg/errs"
)

var errGeocodeStatus = errs.New("geocoding request failed")

// NominatimGeocoder queries an OSM Nominatim-compatible endpoint.
type NominatimGeocoder struct {
	baseURL string
	client  *http.Client
}

func NewNominatimGeocoder(baseURL string) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (*geo.Coordinates, error) {
	endpoint := fmt.Sprintf("%s/search?%s", g.baseURL, url.Values{
		"q":      {address},
		"format": {"json"},
		"limit":  {"1"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build geocoding request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "geocoding request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Wrap(errGeocodeStatus, fmt.Sprintf("status %d", resp.StatusCode))
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, errs.Wrap(err, "failed to decode geocoding response")
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, errs.Wrap(err, "invalid latitude in geocoding response")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, errs.Wrap(err, "invalid longitude in geocoding response")
	}

	return &geo.Coordinates{Latitude: lat, Longitude: lon}, nil
}

// NoopGeocoder never resolves. Used when no geocoding endpoint is
// configured; requests fall back to distance-neutral scoring.
type NoopGeocoder struct{}

func NewNoopGeocoder() *NoopGeocoder {
	return &NoopGeocoder{}
}

func (g *NoopGeocoder) Geocode(_ context.Context, address string) (*geo.Coordinates, error) {
	slog.Debug("geocoding skipped, no provider configured", "address", address)
	return nil, nil
}
