package service

import (
	"context"
)

// TextGenerator is the outbound port to the text-generation provider. Each
// call is independent; callers decide how a failure degrades.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
