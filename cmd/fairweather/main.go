package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fairweather-app/fairweather/internal/activities"
	httpapi "github.com/fairweather-app/fairweather/internal/api/http"
	"github.com/fairweather-app/fairweather/internal/config"
	"github.com/fairweather-app/fairweather/internal/geo"
	"github.com/fairweather-app/fairweather/internal/recommend"
	"github.com/fairweather-app/fairweather/internal/scheduler"
	"github.com/fairweather-app/fairweather/internal/store"
	"github.com/fairweather-app/fairweather/internal/weather"
	"github.com/fairweather-app/fairweather/internal/weather/providers"
)

func main() {
	// Load configuration (reads .env if present).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Geocode configured locations that lack coordinates.
	resolver := geo.NewResolver(cfg.GeocoderAPIKey)
	locations := resolver.Resolve(cfg.Locations)

	// Activity catalog; data-quality warnings are logged here.
	catalog, err := activities.Load()
	if err != nil {
		log.Fatalf("failed to load activity catalog: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Providers with resilience (backoff + circuit breaker). Open-Meteo and
	// its marine API need no key but require geocoded coordinates.
	provs := []weather.Provider{
		providers.NewOpenMeteoProvider(httpClient),
		providers.NewOpenMeteoMarineProvider(httpClient),
	}
	if cfg.OpenWeatherAPIKey != "" {
		provs = append(provs, providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey))
	}
	if cfg.WeatherAPIKey != "" {
		provs = append(provs, providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIKey))
	}

	// Core services: weather orchestration and activity scoring.
	service := weather.NewService(memStore, provs)
	recommender := recommend.NewService(service, catalog)

	// Scheduler that periodically fetches and stores data.
	sched := scheduler.New(locations, cfg.FetchInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "fairweather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "fairweather",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, httpapi.Handlers{
		Weather:   service,
		Recommend: recommender,
		Catalog:   catalog,
		Locations: locations,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
