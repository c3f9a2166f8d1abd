package geocoding_fx

import (
	"go.uber.org/fx"

	"gotrip/internal/services"
	"gotrip/pkg/config"
)

var Module = fx.Provide(provideGeocodingService)

func provideGeocodingService(cfg config.EngineConfig) services.GeocodingServiceInterface {
	return services.NewGeocodingService(cfg)
}
