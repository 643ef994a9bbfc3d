package inbox

import (
	"outreach/pkg/domain"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// Mode selects how Materialize treats threads that already exist.
type Mode string

const (
	// ModeLaunch overwrites every thread and its seeds.
	ModeLaunch Mode = "launch"
	// ModeRebuild is ModeLaunch run by the migrate routine.
	ModeRebuild Mode = "rebuild"
	// ModeBackfill creates missing threads and rewrites seeds on all of them.
	ModeBackfill Mode = "backfill"
	// ModeResync rewrites seeds of threads whose seed hash is stale and
	// creates missing threads.
	ModeResync Mode = "resync"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeLaunch, ModeRebuild, ModeBackfill, ModeResync:
		return true
	}

	return false
}

// FanOutArgs is the River job that materializes a campaign inbox.
type FanOutArgs struct {
	UserID     domain.UserID     `json:"userId"     river:"unique"`
	CampaignID domain.CampaignID `json:"campaignId" river:"unique"`
	Mode       Mode              `json:"mode"       river:"unique"`

	maxAttempts     int
	uniqueJobPeriod time.Duration
}

// NewFanOutArgs builds fan-out job args carrying the insert options.
func NewFanOutArgs(userID domain.UserID,
	campaignID domain.CampaignID,
	mode Mode,
	maxAttempts int,
	uniquePeriod time.Duration) FanOutArgs {
	return FanOutArgs{
		UserID:          userID,
		CampaignID:      campaignID,
		Mode:            mode,
		maxAttempts:     maxAttempts,
		uniqueJobPeriod: uniquePeriod,
	}
}

func (FanOutArgs) Kind() string { return "InboxFanOutJob" }

// InsertOpts makes launch fan-outs unique per campaign. Other modes are
// never deduplicated: a resync enqueued while another one runs must still
// see the latest campaign content.
func (args FanOutArgs) InsertOpts() river.InsertOpts {
	opts := river.InsertOpts{MaxAttempts: args.maxAttempts}
	if args.Mode == ModeLaunch {
		opts.UniqueOpts = river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		}
	}

	return opts
}

// AutoReplyArgs is the River job posting the automatic answer to a user message.
type AutoReplyArgs struct {
	UserID     domain.UserID     `json:"userId"`
	CampaignID domain.CampaignID `json:"campaignId"`
	ContactID  string            `json:"contactId"`
}

func (AutoReplyArgs) Kind() string { return "InboxAutoReplyJob" }
