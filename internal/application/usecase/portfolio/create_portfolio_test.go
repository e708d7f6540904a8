package portfolio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/apperror"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

type memPortfolioRepo struct {
	byID          map[string]*portfolio.Portfolio
	savedIDs      []string
	conflictFirst bool
}

func newMemPortfolioRepo() *memPortfolioRepo {
	return &memPortfolioRepo{byID: make(map[string]*portfolio.Portfolio)}
}

func (r *memPortfolioRepo) Save(ctx context.Context, p *portfolio.Portfolio) error {
	r.savedIDs = append(r.savedIDs, p.UniqueID)
	if r.conflictFirst {
		r.conflictFirst = false
		return apperror.NewConflict("portfolio", "unique_id", p.UniqueID)
	}
	if _, exists := r.byID[p.UniqueID]; exists {
		return apperror.NewConflict("portfolio", "unique_id", p.UniqueID)
	}
	cp := *p
	r.byID[p.UniqueID] = &cp
	return nil
}

func (r *memPortfolioRepo) FindByUniqueID(ctx context.Context, uniqueID string) (*portfolio.Portfolio, error) {
	p, ok := r.byID[uniqueID]
	if !ok {
		return nil, apperror.NewNotFound("portfolio", uniqueID)
	}
	return p, nil
}

func newCreateUseCase(repo portfolio.Repository) *CreatePortfolioUseCase {
	log := logger.NewZapLogger("development")
	enricher := NewEnricher(&stubTextGen{err: errors.New("provider down")}, log)
	return NewCreatePortfolioUseCase(repo, enricher, nil, log)
}

func validProfile() *portfolio.Profile {
	p := portfolio.NewProfile()
	p.PersonalInfo.FullName = "Ada Lovelace"
	p.Skills = []string{"OCaml", "Go"}
	p.Projects = []portfolio.Project{{Title: "Engine", Description: "A thing"}}
	return p
}

func TestCreatePortfolio_Success(t *testing.T) {
	repo := newMemPortfolioRepo()
	uc := newCreateUseCase(repo)

	out, err := uc.Execute(context.Background(), CreatePortfolioInput{Profile: validProfile()})
	require.NoError(t, err)

	p := out.Portfolio
	assert.Len(t, p.UniqueID, 8)
	assert.Equal(t, "Ada Lovelace is a skilled OCaml developer with experience in Go.", p.GeneratedContent.Bio)
	assert.Equal(t, "Professional OCaml developer", p.GeneratedContent.Tagline)
	assert.Equal(t, "A thing", p.Projects[0].GeneratedDescription)
	assert.False(t, p.CreatedAt.IsZero())

	stored, err := repo.FindByUniqueID(context.Background(), p.UniqueID)
	require.NoError(t, err)
	assert.Equal(t, p.UniqueID, stored.UniqueID)
}

func TestCreatePortfolio_MissingFields(t *testing.T) {
	uc := newCreateUseCase(newMemPortfolioRepo())

	noName := validProfile()
	noName.PersonalInfo.FullName = "   "
	_, err := uc.Execute(context.Background(), CreatePortfolioInput{Profile: noName})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	noSkills := validProfile()
	noSkills.Skills = nil
	_, err = uc.Execute(context.Background(), CreatePortfolioInput{Profile: noSkills})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	noProjects := validProfile()
	noProjects.Projects = nil
	_, err = uc.Execute(context.Background(), CreatePortfolioInput{Profile: noProjects})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), CreatePortfolioInput{Profile: nil})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestCreatePortfolio_AllSkillsBlank(t *testing.T) {
	uc := newCreateUseCase(newMemPortfolioRepo())

	p := validProfile()
	p.Skills = []string{"  ", ""}
	_, err := uc.Execute(context.Background(), CreatePortfolioInput{Profile: p})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "At least one valid skill is required", appErr.Details)
}

func TestCreatePortfolio_NoDeduplication(t *testing.T) {
	repo := newMemPortfolioRepo()
	uc := newCreateUseCase(repo)

	first, err := uc.Execute(context.Background(), CreatePortfolioInput{Profile: validProfile()})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), CreatePortfolioInput{Profile: validProfile()})
	require.NoError(t, err)

	assert.NotEqual(t, first.Portfolio.UniqueID, second.Portfolio.UniqueID)
	assert.Len(t, repo.byID, 2)
}

func TestCreatePortfolio_RetriesOnceOnIDCollision(t *testing.T) {
	repo := newMemPortfolioRepo()
	repo.conflictFirst = true
	uc := newCreateUseCase(repo)

	out, err := uc.Execute(context.Background(), CreatePortfolioInput{Profile: validProfile()})
	require.NoError(t, err)

	require.Len(t, repo.savedIDs, 2)
	assert.NotEqual(t, repo.savedIDs[0], repo.savedIDs[1])
	assert.Equal(t, repo.savedIDs[1], out.Portfolio.UniqueID)
}

func TestCreatePortfolio_NormalizesBeforeEnrichment(t *testing.T) {
	repo := newMemPortfolioRepo()
	uc := newCreateUseCase(repo)

	p := validProfile()
	p.Skills = []string{" OCaml ", "", "Go"}
	p.Projects = []portfolio.Project{{Title: "  ", Description: "something"}}

	out, err := uc.Execute(context.Background(), CreatePortfolioInput{Profile: p})
	require.NoError(t, err)

	assert.Equal(t, []string{"OCaml", "Go"}, out.Portfolio.Skills)
	assert.Equal(t, "Untitled Project", out.Portfolio.Projects[0].Title)
}
