package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/portfolio"
)

// TotalSteps is the number of editing steps in the form. SuccessStep is the
// terminal state entered only when a submission completes; stepping forward
// from the last editing step never reaches it.
const (
	FirstStep   = 1
	TotalSteps  = 12
	SuccessStep = TotalSteps + 1
)

var (
	ErrSubmissionInFlight  = errors.New("a submission is already in flight for this session")
	ErrAlreadyCompleted    = errors.New("session already completed")
	ErrNotAtSubmissionStep = errors.New("session is not at the submission step")
)

// OutputOptions are the user's choices on the final step. They are recorded
// with the session but do not change server-side generation behavior.
type OutputOptions struct {
	SaveAsDraft bool     `json:"saveAsDraft"`
	PublicLink  bool     `json:"publicLink"`
	Formats     []string `json:"formats,omitempty"`
}

// FormSession owns one in-progress profile document and its position in the
// step sequence. It is confined to a single form session; there is no
// cross-session state.
type FormSession struct {
	ID          uuid.UUID           `json:"id"`
	Document    *portfolio.Document `json:"document"`
	Step        int                 `json:"step"`
	Submitting  bool                `json:"submitting"`
	Options     *OutputOptions      `json:"options,omitempty"`
	PortfolioID string              `json:"portfolioId,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func New() *FormSession {
	now := time.Now().UTC()
	return &FormSession{
		ID:        uuid.New(),
		Document:  portfolio.NewDocument(),
		Step:      FirstStep,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateSection runs the document merge protocol. Updates are accepted at
// any editing step, forward or backward, but not after completion.
func (s *FormSession) UpdateSection(name string, value json.RawMessage) error {
	if s.Step == SuccessStep {
		return ErrAlreadyCompleted
	}
	next, err := s.Document.UpdateSection(name, value)
	if err != nil {
		return err
	}
	s.Document = next
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// Advance moves one step forward, clamped at the last editing step.
// Reaching the success step is Complete's exclusive privilege.
func (s *FormSession) Advance() {
	if s.Step < TotalSteps {
		s.Step++
		s.UpdatedAt = time.Now().UTC()
	}
}

// Retreat moves one step back, floored at the first step.
func (s *FormSession) Retreat() {
	if s.Step > FirstStep && s.Step < SuccessStep {
		s.Step--
		s.UpdatedAt = time.Now().UTC()
	}
}

// BeginSubmit marks the session's single in-flight submission. It fails
// when a submission is already pending or the session has completed.
func (s *FormSession) BeginSubmit(opts OutputOptions) error {
	if s.Step == SuccessStep {
		return ErrAlreadyCompleted
	}
	if s.Step != TotalSteps {
		return ErrNotAtSubmissionStep
	}
	if s.Submitting {
		return ErrSubmissionInFlight
	}
	s.Submitting = true
	s.Options = &opts
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// Complete records a successful submission: the session enters the terminal
// step holding the persisted portfolio's identifier.
func (s *FormSession) Complete(portfolioID string) {
	s.Submitting = false
	s.PortfolioID = portfolioID
	s.Step = SuccessStep
	s.UpdatedAt = time.Now().UTC()
}

// FailSubmit clears the in-flight flag after a failed submission. The step
// and the document are left as they were so the user can retry without
// re-entering anything.
func (s *FormSession) FailSubmit() {
	s.Submitting = false
	s.UpdatedAt = time.Now().UTC()
}

// Reset discards the document and starts over at step one. Used by the
// "create another" path after a successful submission.
func (s *FormSession) Reset() {
	s.Document = portfolio.NewDocument()
	s.Step = FirstStep
	s.Submitting = false
	s.Options = nil
	s.PortfolioID = ""
	s.UpdatedAt = time.Now().UTC()
}

type Repository interface {
	Save(ctx context.Context, s *FormSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*FormSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
