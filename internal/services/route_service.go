package services

import (
	"gotrip/internal/models/domain_models"
)

// DayRoute is one day's places in visiting order plus the total distance
// walked along that order, starting from the day's start coordinate.
type DayRoute struct {
	Places     []domain_models.Place
	DistanceKM float64
}

type RouteServiceInterface interface {
	OptimizeDay(places []domain_models.Place, start domain_models.Coordinate) DayRoute
}

// RouteService orders a day's places with the nearest-neighbor heuristic:
// repeatedly travel to the closest unvisited place. O(n²), not optimal,
// but deterministic and good enough at the ≤5 places a day this system
// produces. The classic TSP approximation.
type RouteService struct{}

func NewRouteService() RouteServiceInterface {
	return &RouteService{}
}

func (s *RouteService) OptimizeDay(places []domain_models.Place, start domain_models.Coordinate) DayRoute {
	if len(places) == 0 {
		return DayRoute{Places: []domain_models.Place{}}
	}
	// A lone place needs no ordering and counts no travel distance.
	if len(places) == 1 {
		return DayRoute{Places: []domain_models.Place{places[0]}}
	}

	unvisited := make([]domain_models.Place, len(places))
	copy(unvisited, places)

	ordered := make([]domain_models.Place, 0, len(places))
	current := start
	totalKM := 0.0

	for len(unvisited) > 0 {
		// Strict less-than keeps the first-encountered place on ties,
		// which makes the route deterministic for a fixed input order.
		bestIdx := 0
		bestKM := HaversineKM(current, unvisited[0].Coordinate())
		for i := 1; i < len(unvisited); i++ {
			km := HaversineKM(current, unvisited[i].Coordinate())
			if km < bestKM {
				bestKM = km
				bestIdx = i
			}
		}

		next := unvisited[bestIdx]
		ordered = append(ordered, next)
		totalKM += bestKM
		current = next.Coordinate()
		unvisited = append(unvisited[:bestIdx], unvisited[bestIdx+1:]...)
	}

	return DayRoute{Places: ordered, DistanceKM: totalKM}
}
