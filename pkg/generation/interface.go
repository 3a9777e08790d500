package generation

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no upstream generation service is set.
var ErrNotConfigured = errors.New("image generation is not configured")

type GeneratorInterface interface {
	// Enabled reports whether an upstream service is configured.
	Enabled() bool

	// GenerateImage submits the prompt to the upstream service and
	// returns the URL of the produced image. The URL is relayed to the
	// client as an external asset reference, nothing is stored here.
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

func NewGenerator() GeneratorInterface {
	return newReqGenerator()
}
