package inbox

import (
	"context"
	"outreach/pkg/domain"
)

//go:generate mockgen -package mockinbox -source=interface.go -destination=mock/mockinbox.go *
type Service interface {
	// Materialize writes the threads and seed messages of a campaign.
	Materialize(ctx context.Context,
		userID domain.UserID,
		campaignID domain.CampaignID,
		mode Mode) (MaterializeResult, error)
	Migrate(ctx context.Context, userID domain.UserID) (MigrateResult, error)
	Backfill(ctx context.Context, userID domain.UserID) (BackfillResult, error)
	Cleanup(ctx context.Context, userID domain.UserID) (CleanupResult, error)
	Status(ctx context.Context, userID domain.UserID, campaignID domain.CampaignID) (*Status, error)

	Overview(ctx context.Context, userID domain.UserID) ([]CampaignOverview, error)
	Contacts(ctx context.Context, userID domain.UserID, campaignID domain.CampaignID) ([]domain.Thread, error)
	Messages(ctx context.Context,
		userID domain.UserID,
		campaignID domain.CampaignID,
		contactID string) ([]domain.Message, error)
	Send(ctx context.Context,
		userID domain.UserID,
		campaignID domain.CampaignID,
		contactID string,
		text string) (*domain.Message, error)
	AutoReply(ctx context.Context, args AutoReplyArgs) (*domain.Message, error)
	SaveMessage(ctx context.Context,
		userID domain.UserID,
		campaignID domain.CampaignID,
		contactID string,
		message domain.Message) (*domain.Message, error)
	DeleteMessage(ctx context.Context,
		userID domain.UserID,
		campaignID domain.CampaignID,
		contactID string,
		messageID string) error
}

// MaterializeResult counts what a single materialization wrote.
type MaterializeResult struct {
	Contacts       int
	ThreadsCreated int
	// ThreadsUpdated counts existing threads whose seed messages were rewritten.
	ThreadsUpdated int
	// ThreadsDeleted counts threads of contacts no longer in the campaign.
	ThreadsDeleted int
	Batches        int
}

type MigrateResult struct {
	MigratedCampaigns int `json:"migratedCampaigns"`
	TotalContacts     int `json:"totalContacts"`
}

type BackfillResult struct {
	CampaignsUpdated int `json:"campaignsUpdated"`
	ContactsAdded    int `json:"contactsAdded"`
}

type CleanupResult struct {
	DeletedCampaigns int   `json:"deletedCampaigns"`
	DeletedContacts  int64 `json:"deletedContacts"`
	DeletedMessages  int64 `json:"deletedMessages"`
}

// Status compares a campaign's contact list with its materialized inbox.
type Status struct {
	CampaignContactsInData int             `json:"campaignContactsInData"`
	InboxExists            bool            `json:"inboxExists"`
	ContactsInInbox        int             `json:"contactsInInbox"`
	TotalMessagesInInbox   int64           `json:"totalMessagesInInbox"`
	InboxContacts          []domain.Thread `json:"inboxContacts"`
}

// CampaignOverview is a launched campaign with its contacts as shown in the
// inbox sidebar. Contacts carry their thread ID and a profile picture.
type CampaignOverview struct {
	Campaign domain.Campaign
	Contacts []domain.Contact
}
