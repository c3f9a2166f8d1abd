package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"gotrip/internal/models/domain_models"
)

const (
	StrategyRoundRobin = "roundrobin"
	StrategyCluster    = "cluster"
)

type ScoringWeights struct {
	Rating     float64
	Preference float64
	Popularity float64
	Distance   float64
}

// EngineConfig enumerates every weight and per-category default the planning
// engine uses. Validate must pass before the engine is constructed.
type EngineConfig struct {
	Weights       ScoringWeights
	MaxDistanceKM float64 // distance sub-score decays to 0 at this radius

	CostPerCategory  map[domain_models.Category]float64
	VisitMinutes     map[domain_models.Category]int
	DefaultCost      float64 // cost fallback for a category missing from the table
	DefaultVisitMins int

	TimeUtilization  float64 // share of waking hours spendable on visits
	AvgTravelMinutes int     // flat travel allowance between places

	RoadFactor  float64 // great-circle to road distance multiplier
	CostPerKM   float64
	AvgSpeedKMH float64

	DistributorStrategy string
	ClusterRadiusKM     float64
	ClusterDayMinutes   int
	ClusterMaxPerDay    int

	MaxPlacesPerTrip int

	CacheCapacity int
	CacheTTL      time.Duration

	OpenWeatherAPIKey string
	WeatherTimeout    time.Duration
	GeocodeTimeout    time.Duration
}

func Default() EngineConfig {
	return EngineConfig{
		Weights: ScoringWeights{
			Rating:     0.3,
			Preference: 0.4,
			Popularity: 0.1,
			Distance:   0.2,
		},
		MaxDistanceKM: 50,
		CostPerCategory: map[domain_models.Category]float64{
			domain_models.CategoryBeach:     500,
			domain_models.CategoryHistory:   800,
			domain_models.CategoryAdventure: 2000,
			domain_models.CategoryFood:      1500,
			domain_models.CategoryShopping:  3000,
			domain_models.CategoryNature:    600,
			domain_models.CategoryReligious: 300,
			domain_models.CategoryCultural:  700,
		},
		VisitMinutes: map[domain_models.Category]int{
			domain_models.CategoryBeach:     180,
			domain_models.CategoryHistory:   120,
			domain_models.CategoryAdventure: 240,
			domain_models.CategoryFood:      90,
			domain_models.CategoryShopping:  120,
			domain_models.CategoryNature:    150,
			domain_models.CategoryReligious: 60,
			domain_models.CategoryCultural:  100,
		},
		DefaultCost:      1000,
		DefaultVisitMins: 120,

		TimeUtilization:  0.8,
		AvgTravelMinutes: 30,

		RoadFactor:  1.3,
		CostPerKM:   8,
		AvgSpeedKMH: 50,

		DistributorStrategy: StrategyRoundRobin,
		ClusterRadiusKM:     50,
		ClusterDayMinutes:   8 * 60,
		ClusterMaxPerDay:    3,

		MaxPlacesPerTrip: 20,

		CacheCapacity: 128,
		CacheTTL:      15 * time.Minute,

		WeatherTimeout: 5 * time.Second,
		GeocodeTimeout: 10 * time.Second,
	}
}

// Load builds the engine configuration from defaults plus environment
// overrides and validates it.
func Load() (EngineConfig, error) {
	cfg := Default()

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")

	if v := os.Getenv("DISTRIBUTOR_STRATEGY"); v != "" {
		cfg.DistributorStrategy = v
	}
	if v, ok := envFloat("MAX_DISTANCE_KM"); ok {
		cfg.MaxDistanceKM = v
	}
	if v, ok := envInt("MAX_PLACES_PER_TRIP"); ok {
		cfg.MaxPlacesPerTrip = v
	}
	if v, ok := envInt("CATALOG_CACHE_CAPACITY"); ok {
		cfg.CacheCapacity = v
	}
	if v, ok := envInt("CATALOG_CACHE_TTL_SECONDS"); ok {
		cfg.CacheTTL = time.Duration(v) * time.Second
	}
	if v, ok := envFloat("RATING_WEIGHT"); ok {
		cfg.Weights.Rating = v
	}
	if v, ok := envFloat("PREFERENCE_WEIGHT"); ok {
		cfg.Weights.Preference = v
	}
	if v, ok := envFloat("POPULARITY_WEIGHT"); ok {
		cfg.Weights.Popularity = v
	}
	if v, ok := envFloat("DISTANCE_WEIGHT"); ok {
		cfg.Weights.Distance = v
	}

	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}

func (c EngineConfig) Validate() error {
	sum := c.Weights.Rating + c.Weights.Preference + c.Weights.Popularity + c.Weights.Distance
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("config: scoring weights must sum to 1.0, got %v", sum)
	}
	for _, cat := range domain_models.AllCategories() {
		if _, ok := c.CostPerCategory[cat]; !ok {
			return fmt.Errorf("config: missing cost default for category %q", cat)
		}
		if _, ok := c.VisitMinutes[cat]; !ok {
			return fmt.Errorf("config: missing visit duration for category %q", cat)
		}
	}
	if c.MaxDistanceKM <= 0 {
		return fmt.Errorf("config: MaxDistanceKM must be positive, got %v", c.MaxDistanceKM)
	}
	if c.TimeUtilization <= 0 || c.TimeUtilization > 1 {
		return fmt.Errorf("config: TimeUtilization must be in (0,1], got %v", c.TimeUtilization)
	}
	if c.DistributorStrategy != StrategyRoundRobin && c.DistributorStrategy != StrategyCluster {
		return fmt.Errorf("config: unknown distributor strategy %q", c.DistributorStrategy)
	}
	if c.CacheCapacity <= 0 {
		return fmt.Errorf("config: CacheCapacity must be positive, got %d", c.CacheCapacity)
	}
	return nil
}

func envFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
