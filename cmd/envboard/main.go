package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/ecowatch/envboard/internal/api/http"
	"github.com/ecowatch/envboard/internal/config"
	"github.com/ecowatch/envboard/internal/dashboard"
	"github.com/ecowatch/envboard/internal/geo"
	"github.com/ecowatch/envboard/internal/observability"
	"github.com/ecowatch/envboard/internal/prefs"
	"github.com/ecowatch/envboard/internal/scheduler"
	"github.com/ecowatch/envboard/internal/sensors"
	"github.com/ecowatch/envboard/internal/session"
	"github.com/ecowatch/envboard/internal/store"
	"github.com/ecowatch/envboard/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// File-backed local store holding the sensor collection, login flag, and
	// theme preference.
	local, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatalf("failed to open local store: %v", err)
	}

	// Shared HTTP client for outbound weather calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey)

	// Optional geocoding fallback for observations without coordinates.
	var resolver geo.Resolver
	if cfg.GeocoderAPIKey != "" {
		resolver = geo.NewGoogleResolver(cfg.GeocoderAPIKey)
	} else {
		log.Println("INFO: no geocoder API key; coordinate fallback disabled")
	}

	metrics := observability.NewMetrics()

	sensorSvc := sensors.New(store.NewSensorStore(local), sensors.NewGenerator(0))
	controller := dashboard.NewController(provider, resolver, sensorSvc, metrics)

	sessions := session.NewManager(local, cfg.Username, cfg.Password)
	themes := prefs.NewThemes(local, cfg.DefaultTheme)

	// Scheduler keeping the selected city's cached weather fresh.
	sched := scheduler.New(controller, cfg.RefreshInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Metrics on a separate listener.
	metricsSrv := observability.NewMetricsServer(cfg.MetricsAddr)
	go func() {
		if err := metricsSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server stopped: %v", err)
		}
	}()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "envboard",
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
			"service": "envboard",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, controller, sessions, themes)

	// Start server with graceful shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
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
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("error during metrics shutdown: %v", err)
	}
}
