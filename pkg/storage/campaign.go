package storage

import (
	"context"
	"outreach/pkg/domain"
	"time"
)

// CampaignCursor is the (created_at, id) position of the last campaign of a
// page. Campaigns sharing a created_at are ordered by id.
type CampaignCursor struct {
	CreatedAt time.Time
	ID        domain.CampaignID
}

// UserCampaigns is a page of campaigns plus the cursor of the next page.
type UserCampaigns struct {
	Campaigns []domain.Campaign
	// NextCursor is nil on the last page.
	NextCursor *CampaignCursor
}

// CampaignStorage persists campaign documents. Every lookup is scoped to the
// owning user; a campaign of another user behaves as missing.
type CampaignStorage interface {
	// StoreCampaign inserts a campaign and returns it with its generated ID
	// and timestamps.
	StoreCampaign(ctx context.Context, campaign domain.Campaign) (*domain.Campaign, error)
	// CampaignByID returns nil when the campaign does not exist.
	CampaignByID(ctx context.Context, userID domain.UserID, ID domain.CampaignID) (*domain.Campaign, error)
	// UserCampaigns lists campaigns positioned after cursor, newest first. A
	// nil cursor starts at the newest campaign and an empty status lists
	// every status.
	UserCampaigns(ctx context.Context,
		userID domain.UserID,
		status domain.CampaignStatus,
		cursor *CampaignCursor,
		limit uint) (UserCampaigns, error)
	// AllUserCampaigns lists every campaign of the user, newest first.
	AllUserCampaigns(ctx context.Context, userID domain.UserID) ([]domain.Campaign, error)
	// LaunchedCampaigns lists campaigns that are launched or carry a launch
	// time, newest first.
	LaunchedCampaigns(ctx context.Context, userID domain.UserID) ([]domain.Campaign, error)
	// MergeCampaign merges the top level keys of patch (a JSON object) into the
	// stored document and returns the result, or nil when not found.
	MergeCampaign(ctx context.Context,
		userID domain.UserID,
		ID domain.CampaignID,
		patch []byte) (*domain.Campaign, error)
	// DeleteCampaign removes the campaign and its inbox. It returns the
	// deleted campaign, or nil when not found.
	DeleteCampaign(ctx context.Context, userID domain.UserID, ID domain.CampaignID) (*domain.Campaign, error)
}
