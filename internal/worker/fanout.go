package worker

import (
	"context"
	"outreach/internal/inbox"
	"outreach/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// FanOutWorker materializes a campaign into its inbox threads.
type FanOutWorker struct {
	river.WorkerDefaults[inbox.FanOutArgs]

	inbox inbox.Service
}

func NewFanOutWorker(inboxSvc inbox.Service) *FanOutWorker {
	return &FanOutWorker{inbox: inboxSvc}
}

func (w *FanOutWorker) Work(ctx context.Context, job *river.Job[inbox.FanOutArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Stringer("campaignID", job.Args.CampaignID),
		zap.String("mode", string(job.Args.Mode)))

	res, err := w.inbox.Materialize(ctx, job.Args.UserID, job.Args.CampaignID, job.Args.Mode)
	if err != nil {
		logger.Error(ctx, "fan-out failed", zap.Error(err), zap.Int("attempt", job.Attempt))

		return jobError(err, "materialize inbox")
	}

	logger.Info(ctx, "fan-out done",
		zap.Int("contacts", res.Contacts),
		zap.Int("created", res.ThreadsCreated),
		zap.Int("updated", res.ThreadsUpdated))

	return nil
}
