package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"gotrip/cmd/fx/catalog_fx"
	"gotrip/cmd/fx/controllers_fx"
	"gotrip/cmd/fx/db_fx"
	"gotrip/cmd/fx/geocoding_fx"
	"gotrip/cmd/fx/planner_fx"
	"gotrip/cmd/fx/weather_fx"
	"gotrip/internal/api/controllers"
	"gotrip/pkg/config"
	"gotrip/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		catalog_fx.Module,
		geocoding_fx.Module,
		weather_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	placesController *controllers.PlacesController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripController, placesController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	placesController *controllers.PlacesController,
	healthController *controllers.HealthController) {

	r.GET("/", healthController.Info)

	api := r.Group("/api")
	api.GET("/health", healthController.Health)
	api.POST("/trip/plan", tripController.PlanTrip)
	api.GET("/categories", placesController.ListCategories)
	api.GET("/places", placesController.ListPlaces)
	api.GET("/places/:id", placesController.GetPlaceByID)

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.POST("/places", placesController.CreatePlace)
	admin.PUT("/places", placesController.UpdatePlace)
	admin.DELETE("/places/:id", placesController.DeletePlace)
}
