package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/voice-weather/internal/api/http"
	"github.com/i474232898/voice-weather/internal/automation"
	"github.com/i474232898/voice-weather/internal/config"
	"github.com/i474232898/voice-weather/internal/events"
	"github.com/i474232898/voice-weather/internal/intent"
	"github.com/i474232898/voice-weather/internal/locale"
	"github.com/i474232898/voice-weather/internal/location"
	"github.com/i474232898/voice-weather/internal/poller"
	"github.com/i474232898/voice-weather/internal/speech"
	"github.com/i474232898/voice-weather/internal/store"
	"github.com/i474232898/voice-weather/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	locales, err := locale.Load()
	if err != nil {
		log.Fatalf("failed to load locales: %v", err)
	}
	if !locales.Supports(cfg.Language) {
		log.Printf("WARN: language %q has no locale table, falling back to en", cfg.Language)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	client := weather.NewClient(httpClient, cfg.RequestsPerSecond, cfg.Burst)
	gateway := weather.NewGateway(client, weather.DefaultBaseURL)

	resolver := location.NewResolver(cfg.GeocoderAPIKey)
	defaults := &location.DefaultCache{}
	if cfg.DefaultPlace != "" {
		defaults.Update(location.Location{Name: cfg.DefaultPlace})
	}

	// In-memory observation history with configured retention.
	history := store.NewMemoryStore(cfg.StoreMaxHistory)

	// Change-detection loop: one named event per changed observation leaf.
	bus := events.NewBus()
	var poll *poller.Poller
	if cfg.DefaultPlace != "" {
		poll = poller.New(gateway, bus, history, cfg.DefaultPlace, cfg.TemperatureUnit, cfg.PollInterval)
		if err := poll.Start(); err != nil {
			log.Fatalf("failed to start poller: %v", err)
		}
		defer poll.Stop()
	} else {
		log.Printf("WARN: no DEFAULT_LOCATION configured, change-detection poller disabled")
	}

	// Flow conditions evaluated against the observation history.
	registry := automation.NewRegistry()
	automation.RegisterBuiltins(registry, history)

	synth := speech.NewSynthesizer(locales, rand.New(rand.NewSource(time.Now().UnixNano())))
	responder := speech.NewResponder(
		intent.NewParser(locales),
		resolver,
		defaults,
		gateway,
		synth,
		speech.LogSpeaker{},
		locales,
		cfg.TemperatureUnit,
		cfg.SpeechTimeout,
	)

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "voice-weather",
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
			"service": "voice-weather",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, responder, history, registry)

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
