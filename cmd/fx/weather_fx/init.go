package weather_fx

import (
	"go.uber.org/fx"

	"gotrip/internal/services"
	"gotrip/pkg/config"
)

var Module = fx.Provide(provideWeatherService)

func provideWeatherService(cfg config.EngineConfig) services.WeatherServiceInterface {
	return services.NewWeatherService(cfg)
}
