package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotrip/pkg/utils"
)

func TestResolveStaticCity(t *testing.T) {
	gs := &GeocodingService{static: staticCityTable()}

	coord, err := gs.Resolve(context.Background(), "Delhi")
	require.NoError(t, err)
	assert.InDelta(t, 28.6139, coord.Latitude, 1e-9)
	assert.InDelta(t, 77.2090, coord.Longitude, 1e-9)
}

func TestResolveNormalizesName(t *testing.T) {
	gs := &GeocodingService{static: staticCityTable()}

	for _, name := range []string{"  goa  ", "GOA", "Goa"} {
		coord, err := gs.Resolve(context.Background(), name)
		require.NoError(t, err, "name %q", name)
		assert.InDelta(t, 15.2993, coord.Latitude, 1e-9)
	}
}

func TestResolveEmptyName(t *testing.T) {
	gs := &GeocodingService{static: staticCityTable()}

	_, err := gs.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, utils.ErrGeocodeNotFound)
}

func TestResolveFallsBackToNominatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "rishikesh", r.URL.Query().Get("q"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"30.0869","lon":"78.2676"}]`))
	}))
	defer server.Close()

	gs := &GeocodingService{
		httpClient: &http.Client{Timeout: 2 * time.Second},
		baseURL:    server.URL,
		static:     staticCityTable(),
	}

	coord, err := gs.Resolve(context.Background(), "Rishikesh")
	require.NoError(t, err)
	assert.InDelta(t, 30.0869, coord.Latitude, 1e-9)
	assert.InDelta(t, 78.2676, coord.Longitude, 1e-9)
}

func TestResolveNominatimNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	gs := &GeocodingService{
		httpClient: &http.Client{Timeout: 2 * time.Second},
		baseURL:    server.URL,
		static:     staticCityTable(),
	}

	_, err := gs.Resolve(context.Background(), "nowhere-at-all")
	assert.ErrorIs(t, err, utils.ErrGeocodeNotFound)
}

func TestResolveNominatimBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer server.Close()

	gs := &GeocodingService{
		httpClient: &http.Client{Timeout: 2 * time.Second},
		baseURL:    server.URL,
		static:     staticCityTable(),
	}

	_, err := gs.Resolve(context.Background(), "somewhere")
	assert.ErrorIs(t, err, utils.ErrGeocodeNotFound)
}
