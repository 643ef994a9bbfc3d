package storage

import (
	"context"
	"outreach/pkg/domain"
	"time"
)

// InboxStats counts the materialized rows of one campaign inbox.
type InboxStats struct {
	Threads  int64
	Messages int64
}

// MessageKey addresses a message within a campaign inbox.
type MessageKey struct {
	ContactID string
	ID        string
}

// Batch is a group of inbox writes committed in one transaction. Deletes are
// applied before upserts.
type Batch struct {
	CampaignID domain.CampaignID
	// DeleteThreads removes threads by contact ID together with their messages.
	DeleteThreads []string
	// DeleteMessages removes messages of threads that stay.
	DeleteMessages []MessageKey
	// Threads are upserted; an existing thread is overwritten except for its
	// creation time.
	Threads []domain.Thread
	// Messages are upserted by ID. Their thread must exist or be part of the
	// same batch.
	Messages []domain.Message
	// SeedHashes updates the seed hash of existing threads, keyed by contact ID.
	SeedHashes map[string]uint64
	// LastSeed, when set, becomes the last message of the threads in
	// SeedHashes that hold campaign messages only.
	LastSeed *domain.Message
}

// Ops is the number of write operations in the batch.
func (b *Batch) Ops() int {
	return len(b.DeleteThreads) + len(b.DeleteMessages) + len(b.Threads) + len(b.Messages) + len(b.SeedHashes)
}

// Empty reports whether the batch has nothing to write.
func (b *Batch) Empty() bool { return b.Ops() == 0 }

// InboxStorage persists the materialized inbox view. Callers check campaign
// ownership before touching a campaign's inbox.
type InboxStorage interface {
	// UpsertInbox creates or refreshes the inbox metadata of a campaign.
	UpsertInbox(ctx context.Context, inbox domain.Inbox) error
	// InboxByCampaign returns nil when the campaign has no inbox.
	InboxByCampaign(ctx context.Context, campaignID domain.CampaignID) (*domain.Inbox, error)

	// ThreadByID returns nil when the thread does not exist.
	ThreadByID(ctx context.Context, campaignID domain.CampaignID, contactID string) (*domain.Thread, error)
	// CampaignThreads lists the threads of a campaign in creation order.
	CampaignThreads(ctx context.Context, campaignID domain.CampaignID) ([]domain.Thread, error)
	// StoreThread inserts the thread unless it exists and reports whether it was created.
	StoreThread(ctx context.Context, thread domain.Thread) (bool, error)
	// UpdateLastMessage sets the preview of the thread's latest message.
	UpdateLastMessage(ctx context.Context,
		campaignID domain.CampaignID,
		contactID string,
		text string,
		at time.Time) error

	// ThreadMessages lists the messages of a thread in creation order.
	ThreadMessages(ctx context.Context, campaignID domain.CampaignID, contactID string) ([]domain.Message, error)
	// StoreMessage upserts a message by ID.
	StoreMessage(ctx context.Context, message domain.Message) error
	// DeleteMessage removes a message and reports whether it existed.
	DeleteMessage(ctx context.Context, campaignID domain.CampaignID, contactID, messageID string) (bool, error)

	// WriteBatch applies the batch atomically.
	WriteBatch(ctx context.Context, batch Batch) error
	// InboxStats counts the threads and messages of a campaign inbox.
	InboxStats(ctx context.Context, campaignID domain.CampaignID) (InboxStats, error)
	// DeleteInbox removes the metadata, threads and messages of a campaign
	// inbox and returns how many threads and messages were removed.
	DeleteInbox(ctx context.Context, campaignID domain.CampaignID) (InboxStats, error)
}
