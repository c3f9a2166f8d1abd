package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotrip/internal/models/domain_models"
	"gotrip/pkg/config"
)

func scoredWithCost(id string, category domain_models.Category, cost, score float64) domain_models.ScoredPlace {
	return domain_models.ScoredPlace{
		Place: domain_models.Place{
			ID:            id,
			Name:          "place-" + id,
			Category:      category,
			EstimatedCost: cost,
		},
		Score: score,
	}
}

func TestSelectPlacesBudgetCoversTopTwo(t *testing.T) {
	selector := NewSelectorService(config.Default())

	// Budget covers exactly the two best-scored places.
	scored := []domain_models.ScoredPlace{
		scoredWithCost("a", domain_models.CategoryFood, 400, 90),
		scoredWithCost("b", domain_models.CategoryHistory, 300, 70),
		scoredWithCost("c", domain_models.CategoryCultural, 500, 50),
	}

	selection := selector.SelectPlaces(scored, 700, 3)
	require.Len(t, selection.Places, 2)
	assert.Equal(t, "a", selection.Places[0].ID)
	assert.Equal(t, "b", selection.Places[1].ID)
	assert.InDelta(t, 700, selection.TotalCost, 1e-9)
}

func TestSelectPlacesNeverExceedsBudget(t *testing.T) {
	selector := NewSelectorService(config.Default())

	scored := []domain_models.ScoredPlace{
		scoredWithCost("a", domain_models.CategoryFood, 900, 95),
		scoredWithCost("b", domain_models.CategoryReligious, 250, 85),
		scoredWithCost("c", domain_models.CategoryHistory, 700, 75),
		scoredWithCost("d", domain_models.CategoryCultural, 100, 65),
		scoredWithCost("e", domain_models.CategoryNature, 450, 55),
	}

	for _, budget := range []float64{100, 500, 1000, 1500, 2400} {
		selection := selector.SelectPlaces(scored, budget, 3)
		assert.LessOrEqual(t, selection.TotalCost, budget, "budget %v", budget)
	}
}

func TestSelectPlacesSkipsAndContinues(t *testing.T) {
	selector := NewSelectorService(config.Default())

	// The second-best place blows the budget; the pass must skip it and
	// still admit the cheaper one after it.
	scored := []domain_models.ScoredPlace{
		scoredWithCost("a", domain_models.CategoryFood, 500, 90),
		scoredWithCost("expensive", domain_models.CategoryShopping, 5000, 80),
		scoredWithCost("c", domain_models.CategoryReligious, 200, 70),
	}

	selection := selector.SelectPlaces(scored, 800, 2)
	require.Len(t, selection.Places, 2)
	assert.Equal(t, "a", selection.Places[0].ID)
	assert.Equal(t, "c", selection.Places[1].ID)
}

func TestSelectPlacesRespectsTimeBudget(t *testing.T) {
	selector := NewSelectorService(config.Default())

	// One day gives 16h × 0.8 = 768 usable minutes. Adventure visits run
	// 240 minutes, so only three fit regardless of money.
	scored := make([]domain_models.ScoredPlace, 0, 6)
	for i := 0; i < 6; i++ {
		scored = append(scored, scoredWithCost(string(rune('a'+i)), domain_models.CategoryAdventure, 10, float64(100-i)))
	}

	selection := selector.SelectPlaces(scored, 100000, 1)
	assert.Len(t, selection.Places, 3)
	assert.Equal(t, 720, selection.TotalVisitMinutes)
}

func TestSelectPlacesDefaultedCostsVisible(t *testing.T) {
	cfg := config.Default()
	selector := NewSelectorService(cfg)

	scored := []domain_models.ScoredPlace{
		scoredWithCost("priced", domain_models.CategoryFood, 500, 90),
		scoredWithCost("unpriced", domain_models.CategoryReligious, 0, 80),
	}

	selection := selector.SelectPlaces(scored, 10000, 2)
	require.Len(t, selection.Places, 2)
	assert.Equal(t, 1, selection.DefaultedCosts)
	assert.InDelta(t, 500+cfg.CostPerCategory[domain_models.CategoryReligious], selection.TotalCost, 1e-9)
}

func TestSelectPlacesEmptyInput(t *testing.T) {
	selector := NewSelectorService(config.Default())
	selection := selector.SelectPlaces(nil, 1000, 2)
	assert.Empty(t, selection.Places)
	assert.Zero(t, selection.TotalCost)
}

func TestPlaceCostResolution(t *testing.T) {
	cfg := config.Default()
	selector := NewSelectorService(cfg)

	priced := domain_models.Place{Category: domain_models.CategoryBeach, EstimatedCost: 750}
	cost, defaulted := selector.PlaceCost(priced)
	assert.InDelta(t, 750, cost, 1e-9)
	assert.False(t, defaulted)

	unpriced := domain_models.Place{Category: domain_models.CategoryBeach}
	cost, defaulted = selector.PlaceCost(unpriced)
	assert.InDelta(t, cfg.CostPerCategory[domain_models.CategoryBeach], cost, 1e-9)
	assert.True(t, defaulted)
}

func TestVisitMinutesResolution(t *testing.T) {
	cfg := config.Default()
	selector := NewSelectorService(cfg)

	explicit := domain_models.Place{Category: domain_models.CategoryBeach, VisitMinutes: 45}
	assert.Equal(t, 45, selector.VisitMinutes(explicit))

	derived := domain_models.Place{Category: domain_models.CategoryBeach}
	assert.Equal(t, cfg.VisitMinutes[domain_models.CategoryBeach], selector.VisitMinutes(derived))
}
