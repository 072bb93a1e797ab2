package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	apperrors "placeshare/internal/errors"
)

const defaultBaseURL = "https://us1.locationiq.com/v1/search"

// LocationIQ resolves addresses through the LocationIQ forward-geocoding API.
// The API returns lat/lon as strings; Resolve normalizes them to float64.
type LocationIQ struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewLocationIQ creates a geocoder backed by the public LocationIQ endpoint.
func NewLocationIQ(apiKey string) *LocationIQ {
	return &LocationIQ{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  http.DefaultClient,
	}
}

// NewLocationIQWithBaseURL is used by tests to point at a fake server.
func NewLocationIQWithBaseURL(apiKey, baseURL string, client *http.Client) *LocationIQ {
	if client == nil {
		client = http.DefaultClient
	}
	return &LocationIQ{apiKey: apiKey, baseURL: baseURL, client: client}
}

type searchResult struct {
	Lat    string `json:"lat"`
	Lon    string `json:"lon"`
	Status string `json:"status"`
}

// Resolve looks up an address and returns its coordinates. A lookup that
// yields no usable result maps to ErrNoGeocodeResult; transport failures
// propagate as-is and surface as server errors upstream. No retries.
func (g *LocationIQ) Resolve(ctx context.Context, address string) (Point, error) {
	q := url.Values{}
	q.Set("key", g.apiKey)
	q.Set("q", address)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Point{}, fmt.Errorf("build geocode request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// LocationIQ answers 404 for addresses it cannot match.
		return Point{}, apperrors.ErrNoGeocodeResult
	}
	if resp.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("geocode request: unexpected status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Point{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(results) == 0 || results[0].Status == "ZERO_RESULTS" {
		return Point{}, apperrors.ErrNoGeocodeResult
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Point{}, fmt.Errorf("parse latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Point{}, fmt.Errorf("parse longitude %q: %w", results[0].Lon, err)
	}

	return Point{Lat: lat, Lng: lng}, nil
}
