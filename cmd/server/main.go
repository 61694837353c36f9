package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smsledger/internal/config"
	"smsledger/internal/database"
	"smsledger/internal/handlers"
	"smsledger/internal/middleware"
	"smsledger/internal/repositories"
	"smsledger/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err.Error())
		os.Exit(1)
	}

	// Repositories
	messageRepo := repositories.NewMessageRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	analysisLogger := services.NewAnalysisLogger(slog.Default())

	amountExtractor := services.NewAmountExtractor()
	merchantResolver := services.NewMerchantResolver(services.DefaultAliasTable(), cfg.Engine.FuzzyMaxDistance)
	categoryClassifier := services.NewCategoryClassifier(services.DefaultCategoryKeywords())

	analyzer := services.NewAnalyzerService(amountExtractor, merchantResolver, categoryClassifier, analysisLogger, metrics)
	queryService := services.NewQueryService(analysisLogger, metrics, time.Now)
	tokenService := services.NewTokenService(cfg.Auth.TokenSecret, cfg.Auth.Issuer, cfg.Auth.TokenDuration)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	messageHandler := handlers.NewMessageHandler(messageRepo, analyzer, metrics)
	analysisHandler := handlers.NewAnalysisHandler(messageRepo, analyzer)
	queryHandler := handlers.NewQueryHandler(messageRepo, analyzer, queryService)
	authHandler := handlers.NewAuthHandler(tokenService, cfg.Auth.ProvisioningSecret)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitPerSec*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	// Public endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/api/v1/token", authHandler.IssueToken)

	// Authenticated API
	api := e.Group("/api/v1", middleware.RequireAuth(tokenService))
	api.POST("/messages", messageHandler.IngestMessages)
	api.GET("/messages", messageHandler.ListMessages)
	api.DELETE("/messages", messageHandler.DeleteMessages)
	api.POST("/analyze", analysisHandler.Analyze)
	api.POST("/query", queryHandler.Query)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Starting server", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped unexpectedly", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err.Error())
	}

	slog.Info("Server stopped")
}

// setupLogger installs a JSON slog handler as the default logger.
// Development keeps debug level for easier extraction debugging.
func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
