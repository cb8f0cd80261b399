package main

import (
	"log"
	"net/http"

	"freight_tracker/internal/config"
	"freight_tracker/internal/logger"
	"freight_tracker/internal/middleware"
	"freight_tracker/internal/routes"
	"freight_tracker/internal/weather"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	db := config.InitDB()

	// Weather provider with the default snapshot fallback
	provider := weather.WithFallback(
		weather.NewOpenWeatherMap(config.GetEnv("OPENWEATHERMAP_API_TOKEN", "")),
		weather.DefaultSnapshot,
	)

	// Setup Gin router
	r := routes.SetupRouter(db, provider)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.GetEnv("PORT", "8080")
	log.Println("🚀 Server running at " + addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
