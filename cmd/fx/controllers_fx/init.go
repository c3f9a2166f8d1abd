package controllers_fx

import (
	"go.uber.org/fx"

	"gotrip/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewTripController,
	controllers.NewPlacesController,
	controllers.NewHealthController,
)
