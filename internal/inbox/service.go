// Package inbox materializes campaigns into per-contact conversation threads
// and serves the conversations of those threads.
package inbox

import (
	"context"
	"fmt"
	"outreach/internal/config"
	"outreach/pkg/domain"
	"outreach/pkg/serrors"
	"outreach/pkg/storage"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Options tune materialization and conversations.
type Options struct {
	// BatchLimit caps the write operations of a single batch transaction.
	BatchLimit int
	// Concurrency is how many campaigns the maintenance routines process at once.
	Concurrency int
	// MaxAttempts is the retry budget of fan-out and auto-reply jobs.
	MaxAttempts int
	// AutoReplyDelay is how long after a user message the auto reply is posted.
	AutoReplyDelay time.Duration
	AutoReplyText  string
	// AvatarURL is the base of generated profile pictures; the contact ID is appended.
	AvatarURL string
	// MeterProvider receives the inbox instruments. A no-op provider is used when nil.
	MeterProvider metric.MeterProvider
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BatchLimit:     cfg.Inbox.BatchLimit,
		Concurrency:    cfg.Inbox.Concurrency,
		MaxAttempts:    cfg.Worker.MaxAttempts,
		AutoReplyDelay: cfg.Inbox.AutoReplyDelay,
		AutoReplyText:  cfg.Inbox.AutoReplyText,
		AvatarURL:      cfg.Inbox.AvatarURL,
	}
}

const (
	defaultBatchLimit  = 450
	defaultConcurrency = 4
)

type service struct {
	options   Options
	storage   storage.Storage
	telemetry *telemetry
	now       func() time.Time
}

// New creates the inbox service.
func New(storage storage.Storage, options Options) (Service, error) {
	if options.BatchLimit <= 0 {
		options.BatchLimit = defaultBatchLimit
	}
	if options.Concurrency <= 0 {
		options.Concurrency = defaultConcurrency
	}

	t, err := newTelemetry(options.MeterProvider)
	if err != nil {
		return nil, err
	}

	return &service{
		options:   options,
		storage:   storage,
		telemetry: t,
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) campaign(ctx context.Context,
	userID domain.UserID,
	campaignID domain.CampaignID) (*domain.Campaign, error) {
	c, err := s.storage.CampaignByID(ctx, userID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("could not get campaign: %w", err)
	}
	if c == nil {
		return nil, serrors.With(serrors.ErrNotFound, "campaign not found")
	}

	return c, nil
}

func (s *service) avatar(contactID string) string {
	if s.options.AvatarURL == "" {
		return ""
	}

	return s.options.AvatarURL + contactID
}
