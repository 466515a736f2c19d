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

	httpapi "github.com/i474232898/weather-city-lookup/internal/api/http"
	"github.com/i474232898/weather-city-lookup/internal/config"
	"github.com/i474232898/weather-city-lookup/internal/scheduler"
	"github.com/i474232898/weather-city-lookup/internal/store"
	"github.com/i474232898/weather-city-lookup/internal/weather"
	"github.com/i474232898/weather-city-lookup/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	geocoder, err := providers.NewGeocoder(httpClient, cfg)
	if err != nil {
		log.Fatalf("failed to configure geocoder: %v", err)
	}
	source, err := providers.NewWeatherSource(httpClient, cfg)
	if err != nil {
		log.Fatalf("failed to configure weather source: %v", err)
	}

	// Saved cities live for the lifetime of the process.
	cities := store.NewCityCollection()

	service := weather.NewService(geocoder, source, cities, weather.NewStatusBoard())
	log.Printf("INFO: lookup service ready (%s, units=%s)", service, cfg.Units)

	sched := scheduler.New(cfg.PresetCities, cfg.ResetInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-city-lookup",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          2*cfg.HTTPTimeout + 5*time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-city-lookup",
			"cities":  service.CityCount(),
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, cfg.Units)

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
