package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ShuitaMandhan12/PortfolioSense/internal/application/service"
	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

const viewCacheTTL = time.Hour

type redisViewCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisViewCache(rdb *redis.Client, logger logger.Logger) service.ViewCache {
	return &redisViewCache{rdb: rdb, logger: logger}
}

func viewKey(uniqueID string) string {
	return fmt.Sprintf("portfolioview:%s", uniqueID)
}

func (c *redisViewCache) Get(ctx context.Context, uniqueID string) (*portfolio.View, bool, error) {
	payload, err := c.rdb.Get(ctx, viewKey(uniqueID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	v := &portfolio.View{}
	if err := json.Unmarshal(payload, v); err != nil {
		// A corrupt cache entry is treated as a miss.
		c.logger.Warn("Failed to unmarshal cached view", zap.String("unique_id", uniqueID), zap.Error(err))
		return nil, false, nil
	}
	return v, true, nil
}

func (c *redisViewCache) Set(ctx context.Context, uniqueID string, view *portfolio.View) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, viewKey(uniqueID), payload, viewCacheTTL).Err()
}
