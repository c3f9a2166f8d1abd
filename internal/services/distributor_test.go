package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotrip/internal/models/domain_models"
	"gotrip/pkg/config"
)

func assertPartition(t *testing.T, input []domain_models.Place, groups [][]domain_models.Place) {
	t.Helper()
	seen := make(map[string]int)
	for _, group := range groups {
		for _, place := range group {
			seen[place.ID]++
		}
	}
	require.Len(t, seen, len(input), "every place appears")
	for _, place := range input {
		assert.Equal(t, 1, seen[place.ID], "place %s must appear exactly once", place.ID)
	}
}

func TestRoundRobinDistribute(t *testing.T) {
	d := &RoundRobinDistributor{}

	places := make([]domain_models.Place, 0, 5)
	for i := 0; i < 5; i++ {
		places = append(places, domain_models.Place{ID: fmt.Sprintf("p%d", i), Category: domain_models.CategoryFood})
	}

	groups := d.Distribute(places, nil, 2, delhi)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"p0", "p2", "p4"}, ids(groups[0]))
	assert.Equal(t, []string{"p1", "p3"}, ids(groups[1]))
	assertPartition(t, places, groups)
}

func TestRoundRobinMoreDaysThanPlaces(t *testing.T) {
	d := &RoundRobinDistributor{}
	places := []domain_models.Place{{ID: "only", Category: domain_models.CategoryFood}}

	groups := d.Distribute(places, nil, 3, delhi)
	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 1)
	assert.Empty(t, groups[1])
	assert.Empty(t, groups[2])
}

func TestClusterFullDaySeedKeepsDayAlone(t *testing.T) {
	d := &ClusterDistributor{cfg: config.Default()}

	adventure := domain_models.Place{ID: "adv", Category: domain_models.CategoryAdventure, Latitude: 28.61, Longitude: 77.20}
	food1 := domain_models.Place{ID: "f1", Category: domain_models.CategoryFood, Latitude: 28.62, Longitude: 77.21}
	food2 := domain_models.Place{ID: "f2", Category: domain_models.CategoryFood, Latitude: 28.63, Longitude: 77.22}
	places := []domain_models.Place{adventure, food1, food2}
	prefs := []domain_models.Category{domain_models.CategoryAdventure, domain_models.CategoryFood}

	groups := d.Distribute(places, prefs, 2, delhi)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"adv"}, ids(groups[0]), "a full-day attraction is not combined with other stops")
	assert.Equal(t, []string{"f1", "f2"}, ids(groups[1]))
	assertPartition(t, places, groups)
}

func TestClusterRespectsPerDayCap(t *testing.T) {
	cfg := config.Default()
	d := &ClusterDistributor{cfg: cfg}

	// Five short visits at the same spot: day one takes the cap, day two
	// seeds from the remainder.
	places := make([]domain_models.Place, 0, 5)
	for i := 0; i < 5; i++ {
		places = append(places, domain_models.Place{
			ID: fmt.Sprintf("f%d", i), Category: domain_models.CategoryFood,
			Latitude: 28.61, Longitude: 77.20,
		})
	}
	prefs := []domain_models.Category{domain_models.CategoryFood}

	groups := d.Distribute(places, prefs, 2, delhi)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], cfg.ClusterMaxPerDay)
	assert.Len(t, groups[1], 2)
	assertPartition(t, places, groups)
}

func TestClusterSeedsUnsatisfiedPreferenceFirst(t *testing.T) {
	d := &ClusterDistributor{cfg: config.Default()}

	// Two food places rank above the only beach place, but once food is
	// covered on day one, day two seeds with the beach to close the gap.
	food1 := domain_models.Place{ID: "f1", Category: domain_models.CategoryFood, Latitude: 28.61, Longitude: 77.20}
	food2 := domain_models.Place{ID: "f2", Category: domain_models.CategoryFood, Latitude: 30.00, Longitude: 79.00} // far from f1
	beach := domain_models.Place{ID: "b1", Category: domain_models.CategoryBeach, Latitude: 15.30, Longitude: 74.12}
	places := []domain_models.Place{food1, food2, beach}
	prefs := []domain_models.Category{domain_models.CategoryFood, domain_models.CategoryBeach}

	groups := d.Distribute(places, prefs, 2, delhi)
	require.Len(t, groups, 2)
	require.NotEmpty(t, groups[1])
	assert.Equal(t, "b1", groups[1][0].ID)
	assertPartition(t, places, groups)
}

func TestClusterRadiusExcludesFarPlaces(t *testing.T) {
	d := &ClusterDistributor{cfg: config.Default()}

	near := domain_models.Place{ID: "near", Category: domain_models.CategoryFood, Latitude: 28.61, Longitude: 77.20}
	far := domain_models.Place{ID: "far", Category: domain_models.CategoryFood, Latitude: 19.07, Longitude: 72.87} // ~1150 km away
	places := []domain_models.Place{near, far}
	prefs := []domain_models.Category{domain_models.CategoryFood}

	groups := d.Distribute(places, prefs, 2, delhi)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"near"}, ids(groups[0]))
	assert.Equal(t, []string{"far"}, ids(groups[1]))
}

func TestClusterOverflowStillPartitions(t *testing.T) {
	d := &ClusterDistributor{cfg: config.Default()}

	// More full-day attractions than days: the surplus is dealt out
	// round-robin rather than dropped.
	places := make([]domain_models.Place, 0, 4)
	for i := 0; i < 4; i++ {
		places = append(places, domain_models.Place{
			ID: fmt.Sprintf("a%d", i), Category: domain_models.CategoryAdventure,
			Latitude: 28.61, Longitude: 77.20,
		})
	}
	prefs := []domain_models.Category{domain_models.CategoryAdventure}

	groups := d.Distribute(places, prefs, 2, delhi)
	assertPartition(t, places, groups)
}

func TestNewDayDistributorStrategySelection(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "round-robin", NewDayDistributor(cfg).Name())

	cfg.DistributorStrategy = config.StrategyCluster
	assert.Equal(t, "proximity-clustering", NewDayDistributor(cfg).Name())
}

func ids(places []domain_models.Place) []string {
	out := make([]string, 0, len(places))
	for _, place := range places {
		out = append(out, place.ID)
	}
	return out
}
