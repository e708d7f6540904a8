package portfolio

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ShuitaMandhan12/PortfolioSense/internal/application/service"
	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

// Enricher produces the generated bio, tagline and per-project descriptions.
// Generation is best-effort: every provider call is independent and any
// failure degrades to deterministic template text, never to an error.
type Enricher struct {
	textgen service.TextGenerator
	logger  logger.Logger
}

func NewEnricher(tg service.TextGenerator, log logger.Logger) *Enricher {
	return &Enricher{textgen: tg, logger: log}
}

type EnrichInput struct {
	Name     string
	Skills   []string
	Projects []portfolio.Project
}

type EnrichOutput struct {
	Bio      string
	Tagline  string
	Projects []portfolio.Project
}

func (e *Enricher) Execute(ctx context.Context, input EnrichInput) *EnrichOutput {
	name := input.Name
	if name == "" {
		name = "The candidate"
	}

	out := &EnrichOutput{
		Projects: make([]portfolio.Project, len(input.Projects)),
	}

	var g errgroup.Group

	g.Go(func() error {
		prompt := fmt.Sprintf(
			"Write a 100-word professional bio for %s who is skilled in %s.",
			name, skillList(input.Skills),
		)
		text, err := e.textgen.GenerateText(ctx, prompt)
		if err != nil {
			e.logger.Warn("Bio generation failed, using fallback", zap.Error(err))
			text = FallbackBio(name, input.Skills)
		}
		out.Bio = text
		return nil
	})

	g.Go(func() error {
		prompt := fmt.Sprintf(
			"Create a catchy 5-7 word tagline for %s, a %s developer.",
			name, primarySkill(input.Skills),
		)
		text, err := e.textgen.GenerateText(ctx, prompt)
		if err != nil {
			e.logger.Warn("Tagline generation failed, using fallback", zap.Error(err))
			text = FallbackTagline(input.Skills)
		}
		out.Tagline = text
		return nil
	})

	for i, project := range input.Projects {
		g.Go(func() error {
			prompt := fmt.Sprintf(
				"Rewrite this project description professionally in 2-3 sentences: %q",
				project.Description,
			)
			text, err := e.textgen.GenerateText(ctx, prompt)
			if err != nil {
				e.logger.Warn("Project description generation failed, using fallback",
					zap.String("project", project.Title), zap.Error(err))
				text = FallbackProjectDescription(project)
			}
			enriched := project
			enriched.GeneratedDescription = text
			out.Projects[i] = enriched
			return nil
		})
	}

	// Every goroutine returns nil; Wait only synchronizes.
	_ = g.Wait()

	return out
}

// FallbackBio is the deterministic bio used when generation fails.
func FallbackBio(name string, skills []string) string {
	rest := "various technologies"
	if len(skills) > 1 {
		end := len(skills)
		if end > 3 {
			end = 3
		}
		rest = strings.Join(skills[1:end], ", ")
	}
	return fmt.Sprintf("%s is a skilled %s developer with experience in %s.",
		name, primarySkill(skills), rest)
}

func FallbackTagline(skills []string) string {
	return fmt.Sprintf("Professional %s developer", primarySkill(skills))
}

// FallbackProjectDescription preserves the user's own description.
func FallbackProjectDescription(p portfolio.Project) string {
	if p.Description == "" {
		return "No description available"
	}
	return p.Description
}

func primarySkill(skills []string) string {
	if len(skills) == 0 {
		return "software"
	}
	return skills[0]
}

func skillList(skills []string) string {
	if len(skills) == 0 {
		return "software development"
	}
	return strings.Join(skills, ", ")
}
