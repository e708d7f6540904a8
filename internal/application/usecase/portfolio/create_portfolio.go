package portfolio

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ShuitaMandhan12/PortfolioSense/adapters/event"
	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/apperror"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

type CreatePortfolioUseCase struct {
	portfolioRepo portfolio.Repository
	enricher      *Enricher
	kafkaClient   *event.KafkaProducerClient
	logger        logger.Logger
}

func NewCreatePortfolioUseCase(
	repo portfolio.Repository,
	enricher *Enricher,
	kafkaClient *event.KafkaProducerClient,
	log logger.Logger,
) *CreatePortfolioUseCase {
	return &CreatePortfolioUseCase{
		portfolioRepo: repo,
		enricher:      enricher,
		kafkaClient:   kafkaClient,
		logger:        log,
	}
}

type CreatePortfolioInput struct {
	Profile *portfolio.Profile
}

type CreatePortfolioOutput struct {
	Portfolio *portfolio.Portfolio
}

// Execute validates and normalizes the submitted profile, enriches it with
// generated text, and persists it under a fresh short identifier. Each
// submission creates a new portfolio; there is no deduplication by content.
func (uc *CreatePortfolioUseCase) Execute(ctx context.Context, input CreatePortfolioInput) (*CreatePortfolioOutput, error) {
	p := input.Profile
	if p == nil {
		return nil, apperror.NewInvalidInput("profile document is required", nil)
	}

	name := strings.TrimSpace(p.PersonalInfo.FullName)
	if name == "" || p.Skills == nil || p.Projects == nil {
		return nil, apperror.NewInvalidInput("Missing required fields: name, skills, and projects are required", nil)
	}
	p.PersonalInfo.FullName = name

	skills := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		s = strings.TrimSpace(s)
		if s != "" {
			skills = append(skills, s)
		}
	}
	if len(skills) == 0 {
		return nil, apperror.NewInvalidInput("At least one valid skill is required", nil)
	}
	p.Skills = skills
	p.Projects = portfolio.NormalizeProjects(p.Projects)

	enriched := uc.enricher.Execute(ctx, EnrichInput{
		Name:     name,
		Skills:   p.Skills,
		Projects: p.Projects,
	})
	p.Projects = enriched.Projects

	now := time.Now().UTC()
	persisted := &portfolio.Portfolio{
		Profile: *p,
		GeneratedContent: portfolio.GeneratedContent{
			Bio:     enriched.Bio,
			Tagline: enriched.Tagline,
		},
		UniqueID:  portfolio.NewUniqueID(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.portfolioRepo.Save(ctx, persisted)
	if errors.Is(err, apperror.ErrConflict) {
		// Identifiers are random and not pre-checked; a collision gets one
		// retry with a fresh id before giving up.
		persisted.UniqueID = portfolio.NewUniqueID()
		err = uc.portfolioRepo.Save(ctx, persisted)
	}
	if err != nil {
		return nil, err
	}

	if uc.kafkaClient != nil {
		go func() {
			payload := event.PortfolioEventPayload{
				EventType:  event.PortfolioEventTypeCreated,
				UniqueID:   persisted.UniqueID,
				Name:       persisted.PersonalInfo.FullName,
				Skills:     len(persisted.Skills),
				Projects:   len(persisted.Projects),
				OccurredAt: now,
			}
			if err := uc.kafkaClient.PublishPortfolioEvent(context.Background(), payload); err != nil {
				uc.logger.Error("Failed to publish 'portfolio.created' event", err,
					zap.String("unique_id", persisted.UniqueID))
			}
		}()
	}

	return &CreatePortfolioOutput{Portfolio: persisted}, nil
}
