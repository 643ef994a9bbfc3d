package worker

import (
	"context"
	"outreach/internal/inbox"
	"outreach/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// AutoReplyWorker posts the scheduled answer to a user message.
type AutoReplyWorker struct {
	river.WorkerDefaults[inbox.AutoReplyArgs]

	inbox inbox.Service
}

func NewAutoReplyWorker(inboxSvc inbox.Service) *AutoReplyWorker {
	return &AutoReplyWorker{inbox: inboxSvc}
}

func (w *AutoReplyWorker) Work(ctx context.Context, job *river.Job[inbox.AutoReplyArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Stringer("campaignID", job.Args.CampaignID),
		zap.String("contactID", job.Args.ContactID))

	if _, err := w.inbox.AutoReply(ctx, job.Args); err != nil {
		logger.Warn(ctx, "auto reply failed", zap.Error(err))

		return jobError(err, "post auto reply")
	}

	return nil
}
