package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"gotrip/internal/models/domain_models"
	"gotrip/pkg/config"
)

type WeatherServiceInterface interface {
	// GetForecast returns nil when weather data is unavailable for any
	// reason. Weather is best-effort: the planner proceeds without it.
	GetForecast(ctx context.Context, coord domain_models.Coordinate) *domain_models.Forecast
	IsAdmissible(place domain_models.Place, forecast *domain_models.Forecast) bool
	FilterByWeather(places []domain_models.Place, forecast *domain_models.Forecast) []domain_models.Place
}

// WeatherService fetches a short-term forecast from OpenWeatherMap and
// applies category-specific admissibility rules to it.
type WeatherService struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewWeatherService(cfg config.EngineConfig) WeatherServiceInterface {
	return &WeatherService{
		httpClient: &http.Client{Timeout: cfg.WeatherTimeout},
		apiKey:     cfg.OpenWeatherAPIKey,
		baseURL:    "https://api.openweathermap.org/data/2.5",
	}
}

// openWeatherForecast mirrors the subset of the /forecast payload the
// admissibility rules need.
type openWeatherForecast struct {
	List []struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Clouds struct {
			All float64 `json:"all"`
		} `json:"clouds"`
		Rain struct {
			ThreeHours float64 `json:"3h"`
		} `json:"rain"`
	} `json:"list"`
}

func (s *WeatherService) GetForecast(ctx context.Context, coord domain_models.Coordinate) *domain_models.Forecast {
	if s.apiKey == "" {
		log.Println("No OpenWeatherMap API key configured; skipping weather filter")
		return nil
	}

	u, err := url.Parse(s.baseURL + "/forecast")
	if err != nil {
		return nil
	}
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", coord.Latitude))
	q.Set("lon", fmt.Sprintf("%f", coord.Longitude))
	q.Set("appid", s.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Weather API error: %v; proceeding without weather data", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		log.Printf("Weather API bad status: %s; proceeding without weather data", resp.Status)
		return nil
	}

	var payload openWeatherForecast
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Weather API decode error: %v; proceeding without weather data", err)
		return nil
	}
	if len(payload.List) == 0 {
		return nil
	}

	forecast := &domain_models.Forecast{
		Entries: make([]domain_models.ForecastEntry, 0, len(payload.List)),
	}
	for _, slot := range payload.List {
		forecast.Entries = append(forecast.Entries, domain_models.ForecastEntry{
			PrecipitationMM: slot.Rain.ThreeHours,
			CloudCover:      slot.Clouds.All,
			Temperature:     slot.Main.Temp,
		})
	}
	return forecast
}

// IsAdmissible applies the rule table against the first forecast entry
// (near-term conditions only):
//
//	beach:     out when rain > 5mm/3h or clouds > 80%
//	adventure: out when rain > 10mm/3h or clouds > 90%
//	shopping:  out when temp > 40°C or temp < 5°C
//	others:    always in
//
// A missing forecast admits everything (fail-open).
func (s *WeatherService) IsAdmissible(place domain_models.Place, forecast *domain_models.Forecast) bool {
	current, ok := forecast.Current()
	if !ok {
		return true
	}

	switch place.Category {
	case domain_models.CategoryBeach:
		if current.PrecipitationMM > 5 || current.CloudCover > 80 {
			return false
		}
	case domain_models.CategoryAdventure:
		if current.PrecipitationMM > 10 || current.CloudCover > 90 {
			return false
		}
	case domain_models.CategoryShopping:
		if current.Temperature > 40 || current.Temperature < 5 {
			return false
		}
	}
	return true
}

func (s *WeatherService) FilterByWeather(places []domain_models.Place, forecast *domain_models.Forecast) []domain_models.Place {
	if _, ok := forecast.Current(); !ok {
		return places
	}

	filtered := make([]domain_models.Place, 0, len(places))
	for _, place := range places {
		if s.IsAdmissible(place, forecast) {
			filtered = append(filtered, place)
		} else {
			log.Printf("Weather filter: dropping %s (%s)", place.Name, place.Category)
		}
	}
	return filtered
}
