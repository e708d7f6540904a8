package portfolio

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ShuitaMandhan12/PortfolioSense/internal/application/service"
	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

// ViewPortfolioUseCase serves the fully-defaulted render model. The cache
// is a best-effort layer; any cache trouble falls back to the repository.
type ViewPortfolioUseCase struct {
	portfolioRepo portfolio.Repository
	viewCache     service.ViewCache
	logger        logger.Logger
}

func NewViewPortfolioUseCase(repo portfolio.Repository, cache service.ViewCache, log logger.Logger) *ViewPortfolioUseCase {
	return &ViewPortfolioUseCase{portfolioRepo: repo, viewCache: cache, logger: log}
}

type ViewPortfolioInput struct {
	UniqueID string
}

type ViewPortfolioOutput struct {
	View *portfolio.View
}

func (uc *ViewPortfolioUseCase) Execute(ctx context.Context, input ViewPortfolioInput) (*ViewPortfolioOutput, error) {
	if uc.viewCache != nil {
		if v, ok, err := uc.viewCache.Get(ctx, input.UniqueID); err != nil {
			uc.logger.Warn("View cache read failed", zap.String("unique_id", input.UniqueID), zap.Error(err))
		} else if ok {
			return &ViewPortfolioOutput{View: v}, nil
		}
	}

	p, err := uc.portfolioRepo.FindByUniqueID(ctx, input.UniqueID)
	if err != nil {
		return nil, fmt.Errorf("view portfolio failed: %w", err)
	}

	v := portfolio.NewView(p)

	if uc.viewCache != nil {
		if err := uc.viewCache.Set(ctx, input.UniqueID, v); err != nil {
			uc.logger.Warn("View cache write failed", zap.String("unique_id", input.UniqueID), zap.Error(err))
		}
	}

	return &ViewPortfolioOutput{View: v}, nil
}
