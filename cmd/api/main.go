package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"household-energy-sim/internal/api"
	"household-energy-sim/internal/config"
	"household-energy-sim/internal/data"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
		log.Printf("Loaded config from %s", path)
	}
	profile, err := cfg.LoadProfile()
	if err != nil {
		log.Fatalf("Invalid load profile: %v", err)
	}

	ttl := time.Hour
	if v := os.Getenv("RESULT_CACHE_TTL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("Invalid RESULT_CACHE_TTL %q: %v", v, err)
		}
		ttl = parsed
	}
	cache := data.NewResultCache(ttl)
	defer cache.Close()

	router := api.NewRouter(api.Options{
		UnitCosts:   cfg.UnitCosts,
		LoadProfile: profile,
		Cache:       cache,
	})

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
