package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "placeshare/internal/errors"
)

func TestLocationIQ_Resolve(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedPoint Point
		expectedError error
	}{
		{
			name:          "string coordinates are normalized to float64",
			status:        http.StatusOK,
			body:          `[{"lat":"37.4224","lon":"-122.0842","display_name":"Googleplex"}]`,
			expectedPoint: Point{Lat: 37.4224, Lng: -122.0842},
		},
		{
			name:          "empty result set",
			status:        http.StatusOK,
			body:          `[]`,
			expectedError: apperrors.ErrNoGeocodeResult,
		},
		{
			name:          "zero results status",
			status:        http.StatusOK,
			body:          `[{"lat":"","lon":"","status":"ZERO_RESULTS"}]`,
			expectedError: apperrors.ErrNoGeocodeResult,
		},
		{
			name:          "unmatched address answered with 404",
			status:        http.StatusNotFound,
			body:          `{"error":"Unable to geocode"}`,
			expectedError: apperrors.ErrNoGeocodeResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "test-key", r.URL.Query().Get("key"))
				assert.Equal(t, "json", r.URL.Query().Get("format"))
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			g := NewLocationIQWithBaseURL("test-key", srv.URL, srv.Client())
			point, err := g.Resolve(context.Background(), "1600 Amphitheatre Parkway, Mountain View, CA")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.InDelta(t, tt.expectedPoint.Lat, point.Lat, 0.0001)
				assert.InDelta(t, tt.expectedPoint.Lng, point.Lng, 0.0001)
			}
		})
	}
}

func TestLocationIQ_Resolve_ServerErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewLocationIQWithBaseURL("test-key", srv.URL, srv.Client())
	_, err := g.Resolve(context.Background(), "anywhere")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNoGeocodeResult)
}
