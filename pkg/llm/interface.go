// Package llm is the boundary to the text generation model that rewrites
// campaign descriptions.
package llm

import (
	"context"
	"outreach/pkg/serrors"
)

// Client generates text for a single prompt.
//
//go:generate mockgen -package mockllm -source=interface.go -destination=mock/mockllm.go *
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Unavailable is the Client used when no model is configured.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, string) (string, error) {
	return "", serrors.With(serrors.ErrUnavailable, "description generation is not configured")
}
