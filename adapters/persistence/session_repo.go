package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/session"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/apperror"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

// Form sessions live in Redis under a TTL; an abandoned form simply
// expires. The whole session is stored as one JSON value since every
// mutation goes through the domain type anyway.
type redisSessionRepo struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisSessionRepo(rdb *redis.Client, ttl time.Duration, logger logger.Logger) session.Repository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisSessionRepo{rdb: rdb, ttl: ttl, logger: logger}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("formsession:%s", id.String())
}

func (r *redisSessionRepo) Save(ctx context.Context, s *session.FormSession) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return apperror.NewInternal("failed to marshal form session", err)
	}
	if err := r.rdb.Set(ctx, sessionKey(s.ID), payload, r.ttl).Err(); err != nil {
		return apperror.NewInternal("failed to store form session", err)
	}
	return nil
}

func (r *redisSessionRepo) FindByID(ctx context.Context, id uuid.UUID) (*session.FormSession, error) {
	payload, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperror.NewNotFound("session", id.String())
		}
		return nil, apperror.NewInternal("failed to load form session", err)
	}

	s := &session.FormSession{}
	if err := json.Unmarshal(payload, s); err != nil {
		return nil, apperror.NewInternal("failed to unmarshal form session", err)
	}
	return s, nil
}

func (r *redisSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		return apperror.NewInternal("failed to delete form session", err)
	}
	return nil
}
