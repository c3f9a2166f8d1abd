package services

import (
	"sort"

	"gotrip/internal/models/domain_models"
	"gotrip/pkg/config"
)

type ScoringServiceInterface interface {
	ScorePlace(place domain_models.Place, preferences []domain_models.Category, center domain_models.Coordinate) float64
	ScoreAndRank(places []domain_models.Place, preferences []domain_models.Category, center domain_models.Coordinate) []domain_models.ScoredPlace
}

// ScoringService ranks places by a composite of rating, preference match,
// popularity and proximity. Pure: no state is retained between calls.
type ScoringService struct {
	cfg config.EngineConfig
}

func NewScoringService(cfg config.EngineConfig) ScoringServiceInterface {
	return &ScoringService{cfg: cfg}
}

// ScorePlace returns a desirability score in [0,100].
//
// Sub-scores, each normalized to [0,100]:
//   - rating:      (rating/5)*100
//   - preference:  100 on a category match, 50 otherwise; partial credit
//     keeps off-preference places viable as filler
//   - popularity:  min(reviews/1000, 1)*100
//   - distance:    linear decay from 100 at 0 km to 0 at MaxDistanceKM
func (s *ScoringService) ScorePlace(
	place domain_models.Place,
	preferences []domain_models.Category,
	center domain_models.Coordinate,
) float64 {
	ratingScore := (place.Rating / 5.0) * 100

	preferenceScore := 50.0
	for _, pref := range preferences {
		if place.Category == pref {
			preferenceScore = 100.0
			break
		}
	}

	popularity := float64(place.ReviewCount) / 1000.0
	if popularity > 1 {
		popularity = 1
	}
	popularityScore := popularity * 100

	distanceScore := 0.0
	distanceKM := HaversineKM(center, place.Coordinate())
	if distanceKM <= s.cfg.MaxDistanceKM {
		distanceScore = ((s.cfg.MaxDistanceKM - distanceKM) / s.cfg.MaxDistanceKM) * 100
	}

	composite := ratingScore*s.cfg.Weights.Rating +
		preferenceScore*s.cfg.Weights.Preference +
		popularityScore*s.cfg.Weights.Popularity +
		distanceScore*s.cfg.Weights.Distance

	if composite > 100 {
		composite = 100
	}
	return composite
}

// ScoreAndRank scores every place and returns them ordered by score
// descending. The sort is stable so equal scores keep their input order,
// which keeps plans reproducible.
func (s *ScoringService) ScoreAndRank(
	places []domain_models.Place,
	preferences []domain_models.Category,
	center domain_models.Coordinate,
) []domain_models.ScoredPlace {
	scored := make([]domain_models.ScoredPlace, 0, len(places))
	for _, place := range places {
		scored = append(scored, domain_models.ScoredPlace{
			Place: place,
			Score: s.ScorePlace(place, preferences, center),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
