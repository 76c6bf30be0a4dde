// Package main is the entrypoint for the Tunebridge gateway.
package main

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/tunebridge/tunebridge/internal/backend"
	"github.com/tunebridge/tunebridge/internal/config"
	"github.com/tunebridge/tunebridge/internal/graph"
	"github.com/tunebridge/tunebridge/internal/handler"
	"github.com/tunebridge/tunebridge/internal/history"
	"github.com/tunebridge/tunebridge/internal/metrics"
	"github.com/tunebridge/tunebridge/internal/middleware"
	"github.com/tunebridge/tunebridge/internal/server"
	"github.com/tunebridge/tunebridge/internal/service"
	"github.com/tunebridge/tunebridge/internal/token"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Backend clients share one transport against the services base URI
	metricsRecorder := metrics.NewInMemory()
	client := backend.New(cfg.ServicesURI, logger, metricsRecorder)
	userClient := backend.NewUserClient(client)
	musicClient := backend.NewMusicClient(client)
	playlistClient := backend.NewPlaylistClient(client)

	// Mediation layer
	verifier := token.NewVerifier(cfg.APISecret)
	recorder := history.NewRecorder(verifier, userClient, logger, metricsRecorder)
	userMediator := service.NewUserMediator(userClient, verifier, logger)
	musicMediator := service.NewMusicMediator(musicClient, recorder, logger)
	playlistMediator := service.NewPlaylistMediator(playlistClient, recorder, verifier, logger)

	// GraphQL schema; a resolver mismatch is a boot failure
	resolver := graph.NewResolver(userMediator, musicMediator, playlistMediator)
	schema, err := graph.ParseSchema(resolver)
	if err != nil {
		logger.Error("failed to parse schema", "error", err)
		os.Exit(1)
	}

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(client)
	metricsHandler := handler.NewMetricsHandler(metricsRecorder)

	// Setup router
	r := setupRouter(h, healthHandler, metricsHandler, schema, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	// Drain fire-and-forget history writes before the process exits
	srv.OnShutdown("history recorder", recorder.Close)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"services_uri", cfg.ServicesURI,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	metricsHandler *handler.MetricsHandler,
	schema *graphql.Schema,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	if origins := cfg.GetCORSAllowedOrigins(); len(origins) > 0 {
		corsCfg := middleware.DefaultCORSConfig()
		corsCfg.AllowedOrigins = origins
		r.Use(middleware.CORS(corsCfg))
	}

	// Health and metrics endpoints (no auth required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)

	// Root info endpoint
	r.Get("/", h.Hello)

	// GraphQL endpoint; the credential middleware carries the raw
	// Authorization header into resolver context
	r.With(middleware.Credential).Handle("/graphql", &relay.Handler{Schema: schema})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
