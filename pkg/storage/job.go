package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. When the handle is transactional the
// job only becomes visible once the transaction commits, so a job is never
// run for data that was rolled back.
type JobStorage interface {
	// AddJob inserts a job and reports whether it was added. It returns false
	// when River skipped the insert as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
