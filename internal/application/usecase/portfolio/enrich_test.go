package portfolio

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

type stubTextGen struct {
	err error
	fn  func(prompt string) string
}

func (s *stubTextGen) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.fn != nil {
		return s.fn(prompt), nil
	}
	return "generated", nil
}

func TestEnricher_ProviderDown_FallsBack(t *testing.T) {
	enricher := NewEnricher(
		&stubTextGen{err: errors.New("model unavailable")},
		logger.NewZapLogger("development"),
	)

	out := enricher.Execute(context.Background(), EnrichInput{
		Name:   "Ada Lovelace",
		Skills: []string{"OCaml"},
		Projects: []portfolio.Project{
			{Title: "Engine", Description: "A thing"},
			{Title: "Loom"},
		},
	})

	assert.Equal(t, "Ada Lovelace is a skilled OCaml developer with experience in various technologies.", out.Bio)
	assert.Equal(t, "Professional OCaml developer", out.Tagline)
	assert.Equal(t, "A thing", out.Projects[0].GeneratedDescription)
	assert.Equal(t, "No description available", out.Projects[1].GeneratedDescription)
}

func TestEnricher_ProviderUp_UsesGeneratedText(t *testing.T) {
	enricher := NewEnricher(
		&stubTextGen{fn: func(prompt string) string {
			if strings.Contains(prompt, "tagline") {
				return "Building engines before it was cool"
			}
			return "polished text"
		}},
		logger.NewZapLogger("development"),
	)

	out := enricher.Execute(context.Background(), EnrichInput{
		Name:     "Ada Lovelace",
		Skills:   []string{"OCaml", "Go"},
		Projects: []portfolio.Project{{Title: "Engine", Description: "A thing"}},
	})

	assert.Equal(t, "polished text", out.Bio)
	assert.Equal(t, "Building engines before it was cool", out.Tagline)
	assert.Equal(t, "polished text", out.Projects[0].GeneratedDescription)
	// Original description stays alongside the generated one.
	assert.Equal(t, "A thing", out.Projects[0].Description)
}

func TestFallbackBio_SkillWindow(t *testing.T) {
	bio := FallbackBio("Grace", []string{"COBOL", "Fortran", "Assembly", "Lisp"})
	assert.Equal(t, "Grace is a skilled COBOL developer with experience in Fortran, Assembly.", bio)

	assert.Equal(t,
		"Grace is a skilled software developer with experience in various technologies.",
		FallbackBio("Grace", nil))
}

func TestEnricher_EmptyNameGetsPlaceholder(t *testing.T) {
	enricher := NewEnricher(
		&stubTextGen{err: errors.New("down")},
		logger.NewZapLogger("development"),
	)

	out := enricher.Execute(context.Background(), EnrichInput{Skills: []string{"Go"}})

	assert.Equal(t, "The candidate is a skilled Go developer with experience in various technologies.", out.Bio)
}
