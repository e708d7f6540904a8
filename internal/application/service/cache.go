package service

import (
	"context"

	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/portfolio"
)

// ViewCache holds pre-built render models keyed by portfolio id. A miss is
// not an error; callers rebuild from the repository.
type ViewCache interface {
	Get(ctx context.Context, uniqueID string) (*portfolio.View, bool, error)
	Set(ctx context.Context, uniqueID string, view *portfolio.View) error
}
