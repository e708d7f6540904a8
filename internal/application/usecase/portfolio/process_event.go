package portfolio

import (
	"context"
	"fmt"

	"github.com/ShuitaMandhan12/PortfolioSense/adapters/event"
	"github.com/ShuitaMandhan12/PortfolioSense/internal/application/service"
	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

// ProcessPortfolioEventUseCase is the worker-side consumer logic. A
// 'portfolio.created' event warms the view cache so the first visit to the
// shared link is served without touching Postgres.
type ProcessPortfolioEventUseCase struct {
	portfolioRepo portfolio.Repository
	viewCache     service.ViewCache
	logger        logger.Logger
}

func NewProcessPortfolioEventUseCase(repo portfolio.Repository, cache service.ViewCache, log logger.Logger) *ProcessPortfolioEventUseCase {
	return &ProcessPortfolioEventUseCase{portfolioRepo: repo, viewCache: cache, logger: log}
}

func (uc *ProcessPortfolioEventUseCase) Execute(ctx context.Context, payload event.PortfolioEventPayload) error {
	if payload.EventType != event.PortfolioEventTypeCreated {
		return nil
	}

	p, err := uc.portfolioRepo.FindByUniqueID(ctx, payload.UniqueID)
	if err != nil {
		return fmt.Errorf("load portfolio for cache warm: %w", err)
	}

	if err := uc.viewCache.Set(ctx, p.UniqueID, portfolio.NewView(p)); err != nil {
		return fmt.Errorf("warm view cache: %w", err)
	}
	return nil
}
