package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsAtFirstStep(t *testing.T) {
	s := New()

	assert.Equal(t, FirstStep, s.Step)
	assert.False(t, s.Submitting)
	assert.NotNil(t, s.Document)
	assert.NotEqual(t, "", s.ID.String())
}

func TestAdvance_ClampsAtLastEditingStep(t *testing.T) {
	s := New()

	for i := 0; i < TotalSteps+5; i++ {
		s.Advance()
	}

	assert.Equal(t, TotalSteps, s.Step)
}

func TestRetreat_FloorsAtFirstStep(t *testing.T) {
	s := New()

	s.Retreat()
	assert.Equal(t, FirstStep, s.Step)

	s.Advance()
	s.Advance()
	s.Retreat()
	assert.Equal(t, 2, s.Step)
}

func TestBeginSubmit_OnlyAtLastStep(t *testing.T) {
	s := New()

	err := s.BeginSubmit(OutputOptions{})
	assert.ErrorIs(t, err, ErrNotAtSubmissionStep)

	for s.Step < TotalSteps {
		s.Advance()
	}
	require.NoError(t, s.BeginSubmit(OutputOptions{PublicLink: true}))
	assert.True(t, s.Submitting)

	err = s.BeginSubmit(OutputOptions{})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
}

func TestComplete_EntersSuccessStep(t *testing.T) {
	s := New()
	for s.Step < TotalSteps {
		s.Advance()
	}
	require.NoError(t, s.BeginSubmit(OutputOptions{}))

	s.Complete("abc123de")

	assert.Equal(t, SuccessStep, s.Step)
	assert.Equal(t, "abc123de", s.PortfolioID)
	assert.False(t, s.Submitting)

	// Terminal: navigation and edits are refused.
	s.Advance()
	assert.Equal(t, SuccessStep, s.Step)
	s.Retreat()
	assert.Equal(t, SuccessStep, s.Step)

	err := s.UpdateSection("skills", json.RawMessage(`["Go"]`))
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.ErrorIs(t, s.BeginSubmit(OutputOptions{}), ErrAlreadyCompleted)
}

func TestFailSubmit_PreservesStepAndDocument(t *testing.T) {
	s := New()
	require.NoError(t, s.UpdateSection("skills", json.RawMessage(`["Go"]`)))
	for s.Step < TotalSteps {
		s.Advance()
	}
	require.NoError(t, s.BeginSubmit(OutputOptions{}))

	s.FailSubmit()

	assert.Equal(t, TotalSteps, s.Step)
	assert.False(t, s.Submitting)

	p, err := s.Document.Decode()
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, p.Skills)
}

func TestReset_StartsOver(t *testing.T) {
	s := New()
	require.NoError(t, s.UpdateSection("skills", json.RawMessage(`["Go"]`)))
	for s.Step < TotalSteps {
		s.Advance()
	}
	require.NoError(t, s.BeginSubmit(OutputOptions{}))
	s.Complete("abc123de")

	s.Reset()

	assert.Equal(t, FirstStep, s.Step)
	assert.Empty(t, s.PortfolioID)
	assert.Nil(t, s.Options)

	p, err := s.Document.Decode()
	require.NoError(t, err)
	assert.Empty(t, p.Skills)
}

func TestFormSession_JSONRoundTrip(t *testing.T) {
	s := New()
	require.NoError(t, s.UpdateSection("personalInfo", json.RawMessage(`{"fullName":"Ada"}`)))
	s.Advance()

	payload, err := json.Marshal(s)
	require.NoError(t, err)

	restored := &FormSession{}
	require.NoError(t, json.Unmarshal(payload, restored))

	assert.Equal(t, s.ID, restored.ID)
	assert.Equal(t, 2, restored.Step)

	p, err := restored.Document.Decode()
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.PersonalInfo.FullName)
}
