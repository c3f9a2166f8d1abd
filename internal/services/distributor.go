package services

import (
	"gotrip/internal/models/domain_models"
	"gotrip/pkg/config"
)

// DayDistributor partitions the selected places into totalDays ordered
// groups. Every selected place lands in exactly one group; groups may be
// empty when there are fewer places than days.
type DayDistributor interface {
	Name() string
	Distribute(places []domain_models.Place, preferences []domain_models.Category, totalDays int, center domain_models.Coordinate) [][]domain_models.Place
}

// NewDayDistributor picks the configured strategy. Round-robin is the
// baseline; proximity clustering is the geography-aware alternative.
func NewDayDistributor(cfg config.EngineConfig) DayDistributor {
	if cfg.DistributorStrategy == config.StrategyCluster {
		return &ClusterDistributor{cfg: cfg}
	}
	return &RoundRobinDistributor{}
}

// RoundRobinDistributor deals place i to day i mod totalDays. Balanced
// counts, ignores geography.
type RoundRobinDistributor struct{}

func (d *RoundRobinDistributor) Name() string { return "round-robin" }

func (d *RoundRobinDistributor) Distribute(
	places []domain_models.Place,
	_ []domain_models.Category,
	totalDays int,
	_ domain_models.Coordinate,
) [][]domain_models.Place {
	groups := make([][]domain_models.Place, totalDays)
	for i, place := range places {
		day := i % totalDays
		groups[day] = append(groups[day], place)
	}
	return groups
}

// ClusterDistributor builds each day around a seed place and grows it with
// nearby short visits. Seeds prefer categories the trip has not covered
// yet; a full-day place keeps its day to itself.
type ClusterDistributor struct {
	cfg config.EngineConfig
}

func (d *ClusterDistributor) Name() string { return "proximity-clustering" }

// fullDay classifies places whose visit duration fills most of a day; they
// are not combined with other stops.
func (d *ClusterDistributor) fullDay(place domain_models.Place) bool {
	return resolveVisitMinutes(d.cfg, place) >= 180
}

func (d *ClusterDistributor) Distribute(
	places []domain_models.Place,
	preferences []domain_models.Category,
	totalDays int,
	_ domain_models.Coordinate,
) [][]domain_models.Place {
	groups := make([][]domain_models.Place, totalDays)

	remaining := make([]domain_models.Place, len(places))
	copy(remaining, places)

	unsatisfied := make(map[domain_models.Category]bool, len(preferences))
	for _, pref := range preferences {
		unsatisfied[pref] = true
	}

	for day := 0; day < totalDays && len(remaining) > 0; day++ {
		// Seed: the best-scored place still closing a preference gap,
		// falling back to the best-scored place overall. Input order is
		// score-descending, so "first match" is "highest score".
		seedIdx := 0
		for i, place := range remaining {
			if unsatisfied[place.Category] {
				seedIdx = i
				break
			}
		}
		seed := remaining[seedIdx]
		remaining = append(remaining[:seedIdx], remaining[seedIdx+1:]...)

		group := []domain_models.Place{seed}
		delete(unsatisfied, seed.Category)
		usedMinutes := resolveVisitMinutes(d.cfg, seed)

		if !d.fullDay(seed) {
			i := 0
			for i < len(remaining) && len(group) < d.cfg.ClusterMaxPerDay {
				candidate := remaining[i]
				km := HaversineKM(seed.Coordinate(), candidate.Coordinate())
				travelMinutes := int(TravelHours(km*d.cfg.RoadFactor, d.cfg.AvgSpeedKMH) * 60)
				minutes := resolveVisitMinutes(d.cfg, candidate) + travelMinutes

				fits := !d.fullDay(candidate) &&
					usedMinutes+minutes <= d.cfg.ClusterDayMinutes &&
					km <= d.cfg.ClusterRadiusKM

				if fits {
					group = append(group, candidate)
					usedMinutes += minutes
					delete(unsatisfied, candidate.Category)
					remaining = append(remaining[:i], remaining[i+1:]...)
				} else {
					i++
				}
			}
		}

		groups[day] = group
	}

	// The output must be a partition of the input: anything the clusters
	// could not absorb is dealt out round-robin rather than dropped.
	for i, place := range remaining {
		day := i % totalDays
		groups[day] = append(groups[day], place)
	}

	return groups
}
