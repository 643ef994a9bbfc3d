// Package worker runs the River workers that materialize campaign inboxes
// and post automatic replies.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"outreach/internal/config"
	"outreach/internal/inbox"
	"outreach/pkg/logger"
	"outreach/pkg/serrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

const defaultMaxWorkers = 50

type Options struct {
	// MaxWorkers is the concurrency of the default queue.
	MaxWorkers int
}

func NewOptions(cfg *config.Config) Options {
	return Options{MaxWorkers: cfg.Worker.MaxWorkers}
}

// NewWorkers registers every job kind of the service.
func NewWorkers(inboxSvc inbox.Service) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewFanOutWorker(inboxSvc))
	river.AddWorker(workers, NewAutoReplyWorker(inboxSvc))

	return workers
}

func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	inboxSvc inbox.Service,
	options Options) (*river.Client[pgx.Tx], error) {
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = defaultMaxWorkers
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: NewWorkers(inboxSvc),
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

// jobError maps a service error to a River outcome. Retrying cannot fix a
// missing campaign or invalid input, so those jobs are cancelled.
func jobError(err error, action string) error {
	if errors.Is(err, serrors.ErrNotFound) || errors.Is(err, serrors.ErrBadRequest) {
		return river.JobCancel(err) //nolint: wrapcheck
	}

	return fmt.Errorf("could not %s: %w", action, err)
}
