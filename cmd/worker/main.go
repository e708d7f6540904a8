package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ShuitaMandhan12/PortfolioSense/adapters/event"
	"github.com/ShuitaMandhan12/PortfolioSense/adapters/persistence"
	portfolioUC "github.com/ShuitaMandhan12/PortfolioSense/internal/application/usecase/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/internal/config"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting PortfolioSense worker...")

	// Database
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

	// Repositories
	portfolioRepo := persistence.NewPostgresPortfolioRepo(dbPool, appLogger)
	viewCache := persistence.NewRedisViewCache(redisClient, appLogger)

	// Worker Use Case
	processEventUC := portfolioUC.NewProcessPortfolioEventUseCase(portfolioRepo, viewCache, appLogger)

	// Kafka Consumer
	portfolioConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPortfolioEvents,
		GroupID:  "portfolio-processor-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer portfolioConsumer.Close()

	appLogger.Info("Worker listening on topic " + event.TopicPortfolioEvents)

	ctx := context.Background()
	for {
		msg, err := portfolioConsumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read Kafka message", err)
			continue
		}

		var payload event.PortfolioEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Warn("Skipping malformed portfolio event", zap.Error(err))
			continue
		}

		if err := processEventUC.Execute(ctx, payload); err != nil {
			appLogger.Error("Failed to process portfolio event", err,
				zap.String("unique_id", payload.UniqueID),
				zap.String("event_type", payload.EventType))
		}
	}
}
