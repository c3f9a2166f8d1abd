package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gotrip/internal/repositories"
	"gotrip/internal/services"
	"gotrip/pkg/config"
	"gotrip/pkg/memcache"
)

var Module = fx.Provide(
	providePlaceRepo, providePlacesCache, provideCatalogService, providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlacesCache(cfg config.EngineConfig) *memcache.PlacesCache {
	return memcache.NewPlacesCache(cfg.CacheCapacity, cfg.CacheTTL)
}

func provideCatalogService(repo repositories.PlaceRepository, cache *memcache.PlacesCache) services.CatalogServiceInterface {
	return services.NewCatalogService(repo, cache)
}

func providePlaceService(repo repositories.PlaceRepository) services.PlaceServiceInterface {
	return services.NewPlaceService(repo)
}
