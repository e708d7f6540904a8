package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	portfolioUC "github.com/ShuitaMandhan12/PortfolioSense/internal/application/usecase/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/session"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/apperror"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

// SessionUseCase is the session controller: it owns the lifecycle of a form
// session and is the only component allowed to move one into the terminal
// success step, which it does exclusively through a completed submission.
type SessionUseCase struct {
	sessionRepo     session.Repository
	createPortfolio *portfolioUC.CreatePortfolioUseCase
	logger          logger.Logger
}

func NewSessionUseCase(
	repo session.Repository,
	createPortfolio *portfolioUC.CreatePortfolioUseCase,
	log logger.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		sessionRepo:     repo,
		createPortfolio: createPortfolio,
		logger:          log,
	}
}

type SessionOutput struct {
	Session *session.FormSession
}

func (uc *SessionUseCase) ExecuteStart(ctx context.Context) (*SessionOutput, error) {
	s := session.New()
	if err := uc.sessionRepo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("start session failed: %w", err)
	}
	return &SessionOutput{Session: s}, nil
}

func (uc *SessionUseCase) ExecuteGet(ctx context.Context, id uuid.UUID) (*SessionOutput, error) {
	s, err := uc.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SessionOutput{Session: s}, nil
}

type UpdateSectionInput struct {
	SessionID uuid.UUID
	Section   string
	Value     json.RawMessage
}

func (uc *SessionUseCase) ExecuteUpdateSection(ctx context.Context, input UpdateSectionInput) (*SessionOutput, error) {
	s, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := s.UpdateSection(input.Section, input.Value); err != nil {
		switch {
		case errors.Is(err, portfolio.ErrUnknownSection), errors.Is(err, portfolio.ErrNotObject):
			return nil, apperror.NewInvalidInput(err.Error(), err)
		case errors.Is(err, session.ErrAlreadyCompleted):
			return nil, apperror.NewConflict("session", "state", "completed")
		default:
			return nil, apperror.NewInternal("update section failed", err)
		}
	}

	if err := uc.sessionRepo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("persist session failed: %w", err)
	}
	return &SessionOutput{Session: s}, nil
}

func (uc *SessionUseCase) ExecuteAdvance(ctx context.Context, id uuid.UUID) (*SessionOutput, error) {
	s, err := uc.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Advance()
	if err := uc.sessionRepo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("persist session failed: %w", err)
	}
	return &SessionOutput{Session: s}, nil
}

func (uc *SessionUseCase) ExecuteRetreat(ctx context.Context, id uuid.UUID) (*SessionOutput, error) {
	s, err := uc.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Retreat()
	if err := uc.sessionRepo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("persist session failed: %w", err)
	}
	return &SessionOutput{Session: s}, nil
}

type SubmitInput struct {
	SessionID uuid.UUID
	Options   session.OutputOptions
}

type SubmitOutput struct {
	Session   *session.FormSession
	Portfolio *portfolio.Portfolio
}

// ExecuteSubmit runs the one-shot submission for a session. At most one
// submission may be in flight per session; on failure the step and the
// document are preserved so the user can retry without re-entering data.
func (uc *SessionUseCase) ExecuteSubmit(ctx context.Context, input SubmitInput) (*SubmitOutput, error) {
	s, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := s.BeginSubmit(input.Options); err != nil {
		switch {
		case errors.Is(err, session.ErrSubmissionInFlight):
			return nil, apperror.NewConflict("session", "submission", "in flight")
		case errors.Is(err, session.ErrAlreadyCompleted):
			return nil, apperror.NewConflict("session", "state", "completed")
		default:
			return nil, apperror.NewInvalidInput("session is not ready for submission", err)
		}
	}
	if err := uc.sessionRepo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("persist session failed: %w", err)
	}

	profile, err := s.Document.Decode()
	if err != nil {
		uc.failSubmit(ctx, s)
		return nil, apperror.NewInternal("decode profile document failed", err)
	}

	output, err := uc.createPortfolio.Execute(ctx, portfolioUC.CreatePortfolioInput{Profile: profile})
	if err != nil {
		uc.failSubmit(ctx, s)
		return nil, err
	}

	s.Complete(output.Portfolio.UniqueID)
	if err := uc.sessionRepo.Save(ctx, s); err != nil {
		// The portfolio exists; losing the session step is the lesser harm.
		uc.logger.Error("Failed to persist completed session", err, zap.String("session_id", s.ID.String()))
	}

	return &SubmitOutput{Session: s, Portfolio: output.Portfolio}, nil
}

func (uc *SessionUseCase) failSubmit(ctx context.Context, s *session.FormSession) {
	s.FailSubmit()
	if err := uc.sessionRepo.Save(ctx, s); err != nil {
		uc.logger.Error("Failed to persist session after submit failure", err, zap.String("session_id", s.ID.String()))
	}
}

// ExecuteAbandon discards a session entirely. Abandoned sessions would
// expire on their own; this just reclaims the key immediately.
func (uc *SessionUseCase) ExecuteAbandon(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.sessionRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.sessionRepo.Delete(ctx, id)
}

func (uc *SessionUseCase) ExecuteReset(ctx context.Context, id uuid.UUID) (*SessionOutput, error) {
	s, err := uc.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Reset()
	if err := uc.sessionRepo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("persist session failed: %w", err)
	}
	return &SessionOutput{Session: s}, nil
}
