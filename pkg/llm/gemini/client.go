// Package gemini implements llm.Client on top of the Google Gen AI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"outreach/pkg/llm"
	"outreach/pkg/serrors"
	"strings"
	"time"

	"google.golang.org/genai"
)

var _ llm.Client = (*Client)(nil)

// DefaultModel is used when Options.Model is empty.
const DefaultModel = "gemini-2.5-flash"

type Options struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the API endpoint, mostly for tests.
	BaseURL    string
	HTTPClient *http.Client
}

// Client generates text with a Gemini model.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// New creates a Gemini backed client.
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create genai client: %w", err)
	}

	return &Client{client: client, model: opts.Model, timeout: opts.Timeout}, nil
}

func classify(err error) error {
	rateLimited := strings.Contains(err.Error(), "RESOURCE_EXHAUSTED")
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		rateLimited = true
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return serrors.Wrap(serrors.ErrTimeout, err, "text generation timed out")
	case rateLimited:
		return serrors.Wrap(serrors.ErrRateLimited, err, "text generation rate limited")
	default:
		return serrors.Wrap(serrors.ErrUpstream, err, "text generation failed")
	}
}

// Generate sends prompt as a single user turn and returns the model's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classify(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", serrors.With(serrors.ErrUpstream, "model returned an empty response")
	}

	return text, nil
}
