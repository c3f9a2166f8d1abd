package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gotrip/internal/models/domain_models"
	"gotrip/pkg/config"
	"gotrip/pkg/utils"
)

type GeocodingServiceInterface interface {
	Resolve(ctx context.Context, name string) (domain_models.Coordinate, error)
}

// GeocodingService resolves a city name to coordinates. Lookup order: the
// static table of common cities first (no network round trip), then the
// OpenStreetMap Nominatim API. Consumed once per request; not part of the
// optimization loop.
type GeocodingService struct {
	httpClient *http.Client
	baseURL    string
	static     map[string]domain_models.Coordinate
}

func NewGeocodingService(cfg config.EngineConfig) GeocodingServiceInterface {
	return &GeocodingService{
		httpClient: &http.Client{Timeout: cfg.GeocodeTimeout},
		baseURL:    "https://nominatim.openstreetmap.org",
		static:     staticCityTable(),
	}
}

func (s *GeocodingService) Resolve(ctx context.Context, name string) (domain_models.Coordinate, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return domain_models.Coordinate{}, utils.ErrGeocodeNotFound
	}

	if coord, ok := s.static[key]; ok {
		return coord, nil
	}

	coord, err := s.resolveNominatim(ctx, key)
	if err != nil {
		log.Printf("Geocoding %q failed: %v", name, err)
		return domain_models.Coordinate{}, utils.ErrGeocodeNotFound
	}
	return coord, nil
}

func (s *GeocodingService) resolveNominatim(ctx context.Context, name string) (domain_models.Coordinate, error) {
	u, err := url.Parse(s.baseURL + "/search")
	if err != nil {
		return domain_models.Coordinate{}, err
	}
	q := url.Values{}
	q.Set("q", name)
	q.Set("format", "json")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain_models.Coordinate{}, err
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", "gotrip-planner/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain_models.Coordinate{}, fmt.Errorf("nominatim http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return domain_models.Coordinate{}, fmt.Errorf("nominatim bad status: %s", resp.Status)
	}

	var payload []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain_models.Coordinate{}, fmt.Errorf("nominatim decode: %w", err)
	}
	if len(payload) == 0 {
		return domain_models.Coordinate{}, utils.ErrGeocodeNotFound
	}

	lat, err := strconv.ParseFloat(payload[0].Lat, 64)
	if err != nil {
		return domain_models.Coordinate{}, fmt.Errorf("nominatim latitude %q: %w", payload[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(payload[0].Lon, 64)
	if err != nil {
		return domain_models.Coordinate{}, fmt.Errorf("nominatim longitude %q: %w", payload[0].Lon, err)
	}

	return domain_models.Coordinate{Latitude: lat, Longitude: lon}, nil
}

// staticCityTable covers frequent trip centers so common requests skip the
// external lookup entirely.
func staticCityTable() map[string]domain_models.Coordinate {
	return map[string]domain_models.Coordinate{
		"mumbai":    {Latitude: 19.0760, Longitude: 72.8777},
		"delhi":     {Latitude: 28.6139, Longitude: 77.2090},
		"bangalore": {Latitude: 12.9716, Longitude: 77.5946},
		"bengaluru": {Latitude: 12.9716, Longitude: 77.5946},
		"kolkata":   {Latitude: 22.5726, Longitude: 88.3639},
		"chennai":   {Latitude: 13.0827, Longitude: 80.2707},
		"hyderabad": {Latitude: 17.3850, Longitude: 78.4867},
		"pune":      {Latitude: 18.5204, Longitude: 73.8567},
		"jaipur":    {Latitude: 26.9124, Longitude: 75.7873},
		"goa":       {Latitude: 15.2993, Longitude: 74.1240},
		"manali":    {Latitude: 32.2432, Longitude: 77.1892},
		"shimla":    {Latitude: 31.1048, Longitude: 77.1734},
		"udaipur":   {Latitude: 24.5854, Longitude: 73.7125},
		"kochi":     {Latitude: 9.9312, Longitude: 76.2673},
		"agra":      {Latitude: 27.1767, Longitude: 78.0081},
		"varanasi":  {Latitude: 25.3176, Longitude: 82.9739},
		"mysore":    {Latitude: 12.2958, Longitude: 76.6394},
		"ooty":      {Latitude: 11.4102, Longitude: 76.6955},
	}
}
