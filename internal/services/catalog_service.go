package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"gotrip/internal/models/domain_models"
	"gotrip/internal/repositories"
	"gotrip/pkg/memcache"
)

type CatalogServiceInterface interface {
	// FetchPlaces returns candidates for the given preference categories,
	// optionally restricted to a radius around a center. May return fewer
	// than limit results, or none.
	FetchPlaces(ctx context.Context, preferences []domain_models.Category, limit int, center *domain_models.Coordinate, radiusKM float64) ([]domain_models.Place, error)
}

// CatalogService is the Place Catalog Provider, backed by the place
// repository with a bounded result cache in front to avoid redundant
// catalog hits within a process lifetime.
type CatalogService struct {
	repo  repositories.PlaceRepository
	cache *memcache.PlacesCache
}

func NewCatalogService(repo repositories.PlaceRepository, cache *memcache.PlacesCache) CatalogServiceInterface {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) FetchPlaces(
	ctx context.Context,
	preferences []domain_models.Category,
	limit int,
	center *domain_models.Coordinate,
	radiusKM float64,
) ([]domain_models.Place, error) {
	key := cacheKey(preferences, limit, center, radiusKM)
	if places, ok := s.cache.Get(key); ok {
		return places, nil
	}

	categories := make([]string, 0, len(preferences))
	for _, pref := range preferences {
		categories = append(categories, string(pref))
	}

	var places []domain_models.Place

	if center != nil && radiusKM > 0 {
		minLat, maxLat, minLon, maxLon := boundingBox(*center, radiusKM)
		rows, err := s.repo.ListByCategoriesWithin(ctx, categories, minLat, maxLat, minLon, maxLon, limit)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			place := row.ToDomain()
			// The box over-selects at the corners; cut by true distance.
			if HaversineKM(*center, place.Coordinate()) <= radiusKM {
				places = append(places, place)
			}
		}
	} else {
		rows, err := s.repo.ListByCategories(ctx, categories, limit)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			places = append(places, row.ToDomain())
		}
	}

	log.Printf("Catalog fetch: %d places for %v", len(places), categories)
	s.cache.Set(key, places)
	return places, nil
}

// cacheKey rounds the center to ~1km so nearby requests share an entry,
// and sorts preferences so order does not split the cache.
func cacheKey(preferences []domain_models.Category, limit int, center *domain_models.Coordinate, radiusKM float64) string {
	sorted := make([]string, 0, len(preferences))
	for _, pref := range preferences {
		sorted = append(sorted, string(pref))
	}
	sort.Strings(sorted)

	location := "-"
	if center != nil {
		location = fmt.Sprintf("%.2f,%.2f", center.Latitude, center.Longitude)
	}
	return fmt.Sprintf("%s|%s|r%.0f|n%d", location, strings.Join(sorted, ","), radiusKM, limit)
}

func boundingBox(center domain_models.Coordinate, radiusKM float64) (minLat, maxLat, minLon, maxLon float64) {
	// ~111km per degree of latitude; longitude shrinks with cos(lat).
	latDelta := radiusKM / 111.0
	lonDelta := radiusKM / (111.0 * math.Max(math.Cos(center.Latitude*math.Pi/180), 0.01))
	return center.Latitude - latDelta, center.Latitude + latDelta,
		center.Longitude - lonDelta, center.Longitude + lonDelta
}
