package services

import (
	"log"

	"gotrip/internal/models/domain_models"
	"gotrip/pkg/config"
)

// Selection is the admitted subset of a selector pass, in the same
// highest-score-first order as the input.
type Selection struct {
	Places            []domain_models.Place
	TotalCost         float64
	TotalVisitMinutes int
	// DefaultedCosts counts places whose cost fell back to the category
	// default because the catalog row had none. Surfaced so the fallback
	// is visible to callers and tests instead of silently applied.
	DefaultedCosts int
}

type SelectorServiceInterface interface {
	SelectPlaces(scored []domain_models.ScoredPlace, budget float64, totalDays int) Selection
	PlaceCost(place domain_models.Place) (float64, bool)
	VisitMinutes(place domain_models.Place) int
}

// SelectorService runs the greedy budget/time knapsack: a single
// left-to-right pass over places already sorted by score. Linear-time and
// deterministic, intentionally not an exact knapsack.
type SelectorService struct {
	cfg config.EngineConfig
}

func NewSelectorService(cfg config.EngineConfig) SelectorServiceInterface {
	return &SelectorService{cfg: cfg}
}

// resolvePlaceCost resolves the cost of one visit. The second return
// reports whether the per-category default was applied.
func resolvePlaceCost(cfg config.EngineConfig, place domain_models.Place) (float64, bool) {
	if place.EstimatedCost > 0 {
		return place.EstimatedCost, false
	}
	if cost, ok := cfg.CostPerCategory[place.Category]; ok {
		return cost, true
	}
	return cfg.DefaultCost, true
}

func resolveVisitMinutes(cfg config.EngineConfig, place domain_models.Place) int {
	if place.VisitMinutes > 0 {
		return place.VisitMinutes
	}
	if minutes, ok := cfg.VisitMinutes[place.Category]; ok {
		return minutes
	}
	return cfg.DefaultVisitMins
}

func (s *SelectorService) PlaceCost(place domain_models.Place) (float64, bool) {
	return resolvePlaceCost(s.cfg, place)
}

func (s *SelectorService) VisitMinutes(place domain_models.Place) int {
	return resolveVisitMinutes(s.cfg, place)
}

// SelectPlaces admits places in score order while both the trip budget and
// the visit-time budget hold. A failing place is skipped, never aborts the
// pass. The time budget is totalDays × 16 waking hours × the utilization
// factor.
func (s *SelectorService) SelectPlaces(
	scored []domain_models.ScoredPlace,
	budget float64,
	totalDays int,
) Selection {
	wakingMinutes := float64(totalDays * 16 * 60)
	timeBudget := int(wakingMinutes * s.cfg.TimeUtilization)

	var selection Selection
	for _, sp := range scored {
		cost, defaulted := s.PlaceCost(sp.Place)
		minutes := s.VisitMinutes(sp.Place)

		if selection.TotalCost+cost > budget {
			continue
		}
		if selection.TotalVisitMinutes+minutes > timeBudget {
			continue
		}

		selection.Places = append(selection.Places, sp.Place)
		selection.TotalCost += cost
		selection.TotalVisitMinutes += minutes
		if defaulted {
			selection.DefaultedCosts++
		}
	}

	log.Printf("Greedy selection: %d/%d places, cost %.0f/%.0f, time %dmin/%dmin",
		len(selection.Places), len(scored), selection.TotalCost, budget,
		selection.TotalVisitMinutes, timeBudget)

	return selection
}
