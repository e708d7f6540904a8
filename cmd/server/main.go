package main

import (
	"context"
	"log"

	"github.com/ShuitaMandhan12/PortfolioSense/adapters/event"
	httpAdapter "github.com/ShuitaMandhan12/PortfolioSense/adapters/http"
	"github.com/ShuitaMandhan12/PortfolioSense/adapters/llm"
	"github.com/ShuitaMandhan12/PortfolioSense/adapters/media_storage"
	"github.com/ShuitaMandhan12/PortfolioSense/adapters/persistence"
	mediaUC "github.com/ShuitaMandhan12/PortfolioSense/internal/application/usecase/media"
	portfolioUC "github.com/ShuitaMandhan12/PortfolioSense/internal/application/usecase/portfolio"
	sessionUC "github.com/ShuitaMandhan12/PortfolioSense/internal/application/usecase/session"
	"github.com/ShuitaMandhan12/PortfolioSense/internal/config"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting PortfolioSense API server...")

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfoliosense-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	portfolioRepo := persistence.NewPostgresPortfolioRepo(dbPool, appLogger)
	sessionRepo := persistence.NewRedisSessionRepo(redisClient, cfg.Session.TTL, appLogger)
	viewCache := persistence.NewRedisViewCache(redisClient, appLogger)

	// Services
	textGenerator, err := llm.NewOpenAITextGenAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize text generator", err)
	}
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Use Cases
	enricher := portfolioUC.NewEnricher(textGenerator, appLogger)
	createPortfolioUseCase := portfolioUC.NewCreatePortfolioUseCase(portfolioRepo, enricher, kafkaClient, appLogger)
	getPortfolioUseCase := portfolioUC.NewGetPortfolioUseCase(portfolioRepo, kafkaClient, appLogger)
	viewPortfolioUseCase := portfolioUC.NewViewPortfolioUseCase(portfolioRepo, viewCache, appLogger)
	sessionUseCase := sessionUC.NewSessionUseCase(sessionRepo, createPortfolioUseCase, appLogger)
	uploadAssetUseCase := mediaUC.NewUploadAssetUseCase(uploader, appLogger)

	// HTTP Handlers
	portfolioHandler := httpAdapter.NewPortfolioHandler(createPortfolioUseCase, getPortfolioUseCase, viewPortfolioUseCase, appLogger)
	sessionHandler := httpAdapter.NewSessionHandler(sessionUseCase, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(uploadAssetUseCase, appLogger)

	router := httpAdapter.NewRouter(portfolioHandler, sessionHandler, mediaHandler, cfg.App.AllowedOrigins, appLogger)

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
