package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"gotrip/internal/models/domain_models"
	"gotrip/internal/models/request_models"
	"gotrip/internal/models/response_models"
	"gotrip/pkg/config"
	"gotrip/pkg/utils"
)

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, request request_models.PlanTripRequest) (*response_models.TripPlanResponse, error)
}

// PlannerService orchestrates the planning pipeline:
// Fetch → Score → Weather → Select → Distribute → Route → Aggregate.
// Stages run strictly in order, none is retried, and a stage that comes up
// empty short-circuits into an explicit "no plan" error.
type PlannerService struct {
	cfg         config.EngineConfig
	catalog     CatalogServiceInterface
	geocoder    GeocodingServiceInterface
	scorer      ScoringServiceInterface
	selector    SelectorServiceInterface
	distributor DayDistributor
	router      RouteServiceInterface
	weather     WeatherServiceInterface
}

func NewPlannerService(
	cfg config.EngineConfig,
	catalog CatalogServiceInterface,
	geocoder GeocodingServiceInterface,
	scorer ScoringServiceInterface,
	selector SelectorServiceInterface,
	distributor DayDistributor,
	router RouteServiceInterface,
	weather WeatherServiceInterface,
) PlannerServiceInterface {
	return &PlannerService{
		cfg:         cfg,
		catalog:     catalog,
		geocoder:    geocoder,
		scorer:      scorer,
		selector:    selector,
		distributor: distributor,
		router:      router,
		weather:     weather,
	}
}

// plannedTrip carries the validated request parameters through the stages.
type plannedTrip struct {
	startDate   time.Time
	endDate     time.Time
	totalDays   int
	budget      float64
	preferences []domain_models.Category
	cityName    string
	coordinates *domain_models.Coordinate
}

func (p *PlannerService) PlanTrip(ctx context.Context, request request_models.PlanTripRequest) (*response_models.TripPlanResponse, error) {
	trip, err := p.validateRequest(request)
	if err != nil {
		return nil, err
	}

	tripID := uuid.New().String()
	log.Printf("Planning trip %s: %d days, budget %.0f, preferences %v",
		tripID, trip.totalDays, trip.budget, trip.preferences)

	center, err := p.resolveCenter(ctx, trip)
	if err != nil {
		return nil, err
	}

	// Fetch
	places, err := p.catalog.FetchPlaces(ctx, trip.preferences, p.cfg.MaxPlacesPerTrip, &center, p.cfg.MaxDistanceKM)
	if err != nil {
		return nil, fmt.Errorf("%w: catalog fetch: %v", utils.ErrDatabaseError, err)
	}
	if len(places) == 0 {
		return nil, utils.ErrNoCandidates
	}

	// Score
	scored := p.scorer.ScoreAndRank(places, trip.preferences, center)

	// Weather (optional, fail-open)
	forecast := p.weather.GetForecast(ctx, center)
	if forecast != nil {
		admissible := p.weather.FilterByWeather(placesOf(scored), forecast)
		scored = keepScored(scored, admissible)
		if len(scored) == 0 {
			return nil, utils.ErrNoCandidates
		}
	}

	// Select
	selection := p.selector.SelectPlaces(scored, trip.budget, trip.totalDays)
	if len(selection.Places) == 0 {
		return nil, utils.ErrInfeasible
	}

	// Distribute
	groups := p.distributor.Distribute(selection.Places, trip.preferences, trip.totalDays, center)

	// Route + per-day metrics. Each day starts where the previous one
	// ended; day one starts at the trip center.
	days := make([]response_models.DayPlanResponse, 0, trip.totalDays)
	start := center
	totalDistance := 0.0
	totalCost := 0.0
	totalTravelCost := 0.0

	for i, group := range groups {
		route := p.router.OptimizeDay(group, start)
		if len(route.Places) > 0 {
			start = route.Places[len(route.Places)-1].Coordinate()
		}

		dayCost := 0.0
		dayMinutes := 0
		for _, place := range route.Places {
			cost, _ := p.selector.PlaceCost(place)
			dayCost += cost
			dayMinutes += p.selector.VisitMinutes(place) + p.cfg.AvgTravelMinutes
		}
		travelCost := TravelCost(route.DistanceKM*p.cfg.RoadFactor, p.cfg.CostPerKM)

		days = append(days, response_models.DayPlanResponse{
			Day:              i + 1,
			Date:             utils.FormatDate(trip.startDate.AddDate(0, 0, i)),
			Places:           toPlaceResponses(route.Places),
			TotalDistanceKM:  round2(route.DistanceKM),
			TotalTimeMinutes: dayMinutes,
			TotalCost:        dayCost,
			TravelCost:       round2(travelCost),
		})
		totalDistance += route.DistanceKM
		totalCost += dayCost
		totalTravelCost += travelCost
	}

	explanation := p.buildExplanation(len(places), len(selection.Places), selection.DefaultedCosts, trip.totalDays, forecast != nil)

	log.Printf("Trip %s planned: %d places, %.1f km, cost %.0f",
		tripID, len(selection.Places), totalDistance, totalCost)

	return &response_models.TripPlanResponse{
		TripID:             tripID,
		StartDate:          utils.FormatDate(trip.startDate),
		EndDate:            utils.FormatDate(trip.endDate),
		TotalDays:          trip.totalDays,
		TotalDistanceKM:    round2(totalDistance),
		TotalEstimatedCost: totalCost,
		TotalTravelCost:    round2(totalTravelCost),
		Days:               days,
		Explanation:        explanation,
	}, nil
}

// validateRequest checks dates, budget, preferences and location before any
// stage runs. A single-day trip (end_date == start_date) is valid and plans
// as one day; only an end date before the start date is rejected.
func (p *PlannerService) validateRequest(request request_models.PlanTripRequest) (*plannedTrip, error) {
	startDate, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be a calendar date (%s)", utils.ErrInvalidInput, utils.DateLayout)
	}
	endDate, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be a calendar date (%s)", utils.ErrInvalidInput, utils.DateLayout)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", utils.ErrInvalidInput)
	}
	if request.Budget <= 0 {
		return nil, fmt.Errorf("%w: budget must be positive", utils.ErrInvalidInput)
	}
	if len(request.Preferences) == 0 {
		return nil, fmt.Errorf("%w: at least one preference is required", utils.ErrInvalidInput)
	}

	preferences := make([]domain_models.Category, 0, len(request.Preferences))
	for _, raw := range request.Preferences {
		category, ok := domain_models.ParseCategory(raw)
		if !ok {
			return nil, fmt.Errorf("%w: unknown preference category %q", utils.ErrInvalidInput, raw)
		}
		preferences = append(preferences, category)
	}

	trip := &plannedTrip{
		startDate:   startDate,
		endDate:     endDate,
		totalDays:   utils.TotalDays(startDate, endDate),
		budget:      request.Budget,
		preferences: preferences,
		cityName:    request.CityName,
	}

	if request.Latitude != nil && request.Longitude != nil {
		trip.coordinates = &domain_models.Coordinate{
			Latitude:  *request.Latitude,
			Longitude: *request.Longitude,
		}
	} else if request.CityName == "" {
		return nil, fmt.Errorf("%w: either city_name or latitude/longitude is required", utils.ErrInvalidInput)
	}

	return trip, nil
}

func (p *PlannerService) resolveCenter(ctx context.Context, trip *plannedTrip) (domain_models.Coordinate, error) {
	if trip.coordinates != nil {
		return *trip.coordinates, nil
	}
	return p.geocoder.Resolve(ctx, trip.cityName)
}

func (p *PlannerService) buildExplanation(candidates, selected, defaultedCosts, totalDays int, weatherApplied bool) string {
	weatherLine := "skipped (no forecast data)"
	if weatherApplied {
		weatherLine = "applied against the near-term forecast"
	}
	defaultedNote := ""
	if defaultedCosts > 0 {
		defaultedNote = fmt.Sprintf(" (%d costs fell back to category defaults)", defaultedCosts)
	}
	return fmt.Sprintf(
		"1. Scoring: evaluated %d places with weighted factors (rating %.1f, preference %.1f, popularity %.1f, distance %.1f within %.0f km)\n"+
			"2. Weather filter: %s\n"+
			"3. Selection: greedy pass admitted %d places within budget and a %.0f%% time utilization%s\n"+
			"4. Distribution: %s across %d days\n"+
			"5. Routing: nearest-neighbor ordering per day (TSP approximation)",
		candidates,
		p.cfg.Weights.Rating, p.cfg.Weights.Preference, p.cfg.Weights.Popularity, p.cfg.Weights.Distance, p.cfg.MaxDistanceKM,
		weatherLine,
		selected, p.cfg.TimeUtilization*100, defaultedNote,
		p.distributor.Name(), totalDays,
	)
}

func placesOf(scored []domain_models.ScoredPlace) []domain_models.Place {
	places := make([]domain_models.Place, 0, len(scored))
	for _, sp := range scored {
		places = append(places, sp.Place)
	}
	return places
}

// keepScored drops scored entries whose place was filtered out, preserving
// the score ordering of the survivors.
func keepScored(scored []domain_models.ScoredPlace, keep []domain_models.Place) []domain_models.ScoredPlace {
	keptIDs := make(map[string]bool, len(keep))
	for _, place := range keep {
		keptIDs[place.ID] = true
	}
	filtered := make([]domain_models.ScoredPlace, 0, len(keep))
	for _, sp := range scored {
		if keptIDs[sp.Place.ID] {
			filtered = append(filtered, sp)
		}
	}
	return filtered
}

func toPlaceResponses(places []domain_models.Place) []response_models.PlaceResponse {
	out := make([]response_models.PlaceResponse, 0, len(places))
	for _, place := range places {
		out = append(out, response_models.PlaceResponse{
			ID:            place.ID,
			Name:          place.Name,
			Category:      string(place.Category),
			Latitude:      place.Latitude,
			Longitude:     place.Longitude,
			Rating:        place.Rating,
			ReviewCount:   place.ReviewCount,
			EstimatedCost: place.EstimatedCost,
			VisitMinutes:  place.VisitMinutes,
			Description:   place.Description,
			City:          place.City,
			Images:        place.ImageURLs,
		})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
