package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/apperror"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

type postgresPortfolioRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPortfolioRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.Repository {
	return &postgresPortfolioRepo{db: db, logger: logger}
}

var psqlPortfolio = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresPortfolioRepo) Save(ctx context.Context, p *portfolio.Portfolio) error {
	documentBytes, err := json.Marshal(p.Profile)
	if err != nil {
		return apperror.NewInternal("failed to marshal portfolio document", err)
	}
	generatedBytes, err := json.Marshal(p.GeneratedContent)
	if err != nil {
		return apperror.NewInternal("failed to marshal generated content", err)
	}

	query, args, err := psqlPortfolio.
		Insert("portfolios").
		Columns("unique_id", "document", "generated_content", "created_at", "updated_at").
		Values(p.UniqueID, documentBytes, generatedBytes, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build portfolio insert", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("portfolio", "unique_id", p.UniqueID)
		}
		return apperror.NewInternal("failed to save portfolio", err)
	}
	return nil
}

func (r *postgresPortfolioRepo) FindByUniqueID(ctx context.Context, uniqueID string) (*portfolio.Portfolio, error) {
	query, args, err := psqlPortfolio.
		Select("unique_id", "document", "generated_content", "created_at", "updated_at").
		From("portfolios").
		Where(sq.Eq{"unique_id": uniqueID}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build portfolio select", err)
	}

	p := &portfolio.Portfolio{}
	var documentBytes, generatedBytes []byte

	err = r.db.QueryRow(ctx, query, args...).Scan(
		&p.UniqueID,
		&documentBytes,
		&generatedBytes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("portfolio", uniqueID)
		}
		return nil, apperror.NewInternal("failed to query portfolio", err)
	}

	// Stored documents may predate the nested shape; decode defaults either way.
	profile, err := portfolio.DecodeStoredProfile(documentBytes)
	if err != nil {
		r.logger.Warn("Failed to decode portfolio document", zap.String("unique_id", uniqueID), zap.Error(err))
		profile = portfolio.NewProfile()
	}
	p.Profile = *profile

	if err := json.Unmarshal(generatedBytes, &p.GeneratedContent); err != nil {
		r.logger.Warn("Failed to unmarshal generated_content", zap.String("unique_id", uniqueID), zap.Error(err))
		p.GeneratedContent = portfolio.GeneratedContent{}
	}

	return p, nil
}
