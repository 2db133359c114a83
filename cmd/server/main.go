package main

import (
	"log"
	"net/http"

	"armada_api/internal/config"
	"armada_api/internal/logger"
	"armada_api/internal/middleware"
	"armada_api/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Load configuration and connect to the database
	cfg := config.Load()
	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}

	// Setup Gin router
	r, err := routes.SetupRouter(cfg, db)
	if err != nil {
		log.Fatalf("router setup failed: %v", err)
	}

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
