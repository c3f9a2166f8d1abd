package planner_fx

import (
	"go.uber.org/fx"

	"gotrip/internal/services"
	"gotrip/pkg/config"
)

var Module = fx.Provide(
	provideScoringService,
	provideSelectorService,
	provideDayDistributor,
	provideRouteService,
	providePlannerService,
)

func provideScoringService(cfg config.EngineConfig) services.ScoringServiceInterface {
	return services.NewScoringService(cfg)
}

func provideSelectorService(cfg config.EngineConfig) services.SelectorServiceInterface {
	return services.NewSelectorService(cfg)
}

func provideDayDistributor(cfg config.EngineConfig) services.DayDistributor {
	return services.NewDayDistributor(cfg)
}

func provideRouteService() services.RouteServiceInterface {
	return services.NewRouteService()
}

func providePlannerService(
	cfg config.EngineConfig,
	catalog services.CatalogServiceInterface,
	geocoder services.GeocodingServiceInterface,
	scorer services.ScoringServiceInterface,
	selector services.SelectorServiceInterface,
	distributor services.DayDistributor,
	router services.RouteServiceInterface,
	weather services.WeatherServiceInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(cfg, catalog, geocoder, scorer, selector, distributor, router, weather)
}
