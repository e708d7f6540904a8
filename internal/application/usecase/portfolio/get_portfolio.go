package portfolio

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ShuitaMandhan12/PortfolioSense/adapters/event"
	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

type GetPortfolioUseCase struct {
	portfolioRepo portfolio.Repository
	kafkaClient   *event.KafkaProducerClient
	logger        logger.Logger
}

func NewGetPortfolioUseCase(repo portfolio.Repository, kafkaClient *event.KafkaProducerClient, log logger.Logger) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{portfolioRepo: repo, kafkaClient: kafkaClient, logger: log}
}

type GetPortfolioInput struct {
	UniqueID string
}

type GetPortfolioOutput struct {
	Portfolio *portfolio.Portfolio
}

func (uc *GetPortfolioUseCase) Execute(ctx context.Context, input GetPortfolioInput) (*GetPortfolioOutput, error) {
	p, err := uc.portfolioRepo.FindByUniqueID(ctx, input.UniqueID)
	if err != nil {
		return nil, fmt.Errorf("get portfolio failed: %w", err)
	}

	if uc.kafkaClient != nil {
		go func() {
			payload := event.ViewEventPayload{
				EventType:  event.ViewEventTypeViewed,
				UniqueID:   p.UniqueID,
				OccurredAt: time.Now().UTC(),
			}
			if err := uc.kafkaClient.PublishViewEvent(context.Background(), payload); err != nil {
				uc.logger.Warn("Failed to publish 'portfolio.viewed' event",
					zap.String("unique_id", p.UniqueID), zap.Error(err))
			}
		}()
	}

	return &GetPortfolioOutput{Portfolio: p}, nil
}
