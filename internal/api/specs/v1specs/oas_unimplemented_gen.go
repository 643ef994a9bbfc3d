// Code generated by ogen, DO NOT EDIT.

package v1specs

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// BackfillInbox implements backfillInbox operation.
//
// Create missing threads and re-seed every launched campaign.
//
// POST /inbox/backfill
func (UnimplementedHandler) BackfillInbox(ctx context.Context) (r *BackfillResult, _ error) {
	return r, ht.ErrNotImplemented
}

// CleanupInbox implements cleanupInbox operation.
//
// Delete every inbox of the user.
//
// POST /inbox/cleanup
func (UnimplementedHandler) CleanupInbox(ctx context.Context) (r *CleanupResult, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateCampaign implements createCampaign operation.
//
// Create a draft campaign.
//
// POST /campaigns
func (UnimplementedHandler) CreateCampaign(ctx context.Context, req *CampaignInput) (r *Campaign, _ error) {
	return r, ht.ErrNotImplemented
}

// DeleteCampaign implements deleteCampaign operation.
//
// Delete a campaign and its inbox.
//
// DELETE /campaigns/{campaignID}
func (UnimplementedHandler) DeleteCampaign(ctx context.Context, params DeleteCampaignParams) error {
	return ht.ErrNotImplemented
}

// DeleteThreadMessage implements deleteThreadMessage operation.
//
// Delete a message.
//
// DELETE /inbox/{campaignID}/contacts/{contactID}/messages/{messageID}
func (UnimplementedHandler) DeleteThreadMessage(ctx context.Context, params DeleteThreadMessageParams) error {
	return ht.ErrNotImplemented
}

// ExtractContacts implements extractContacts operation.
//
// Extract contacts from the uploaded CSV or Excel file.
//
// POST /campaigns/{campaignID}/contacts/extract
func (UnimplementedHandler) ExtractContacts(ctx context.Context, params ExtractContactsParams) (r *ExtractedContacts, _ error) {
	return r, ht.ErrNotImplemented
}

// GenerateDescription implements generateDescription operation.
//
// Rewrite the description with the language model.
//
// POST /campaigns/{campaignID}/description
func (UnimplementedHandler) GenerateDescription(ctx context.Context, req *DescriptionRequest, params GenerateDescriptionParams) (r *DescriptionResult, _ error) {
	return r, ht.ErrNotImplemented
}

// GetCampaign implements getCampaign operation.
//
// Get a campaign.
//
// GET /campaigns/{campaignID}
func (UnimplementedHandler) GetCampaign(ctx context.Context, params GetCampaignParams) (r *Campaign, _ error) {
	return r, ht.ErrNotImplemented
}

// GetCampaignDetails implements getCampaignDetails operation.
//
// Content sent to each contact.
//
// GET /campaigns/{campaignID}/details
func (UnimplementedHandler) GetCampaignDetails(ctx context.Context, params GetCampaignDetailsParams) (r *CampaignDetails, _ error) {
	return r, ht.ErrNotImplemented
}

// GetInboxOverview implements getInboxOverview operation.
//
// Launched campaigns with their contacts.
//
// GET /inbox
func (UnimplementedHandler) GetInboxOverview(ctx context.Context) (r *InboxOverview, _ error) {
	return r, ht.ErrNotImplemented
}

// GetInboxStatus implements getInboxStatus operation.
//
// Compare a campaign's contacts with its stored inbox.
//
// GET /debug/campaigns/{campaignID}/inbox
func (UnimplementedHandler) GetInboxStatus(ctx context.Context, params GetInboxStatusParams) (r *InboxStatus, _ error) {
	return r, ht.ErrNotImplemented
}

// LaunchCampaign implements launchCampaign operation.
//
// Launch a campaign and queue its inbox fan-out.
//
// POST /campaigns/{campaignID}/launch
func (UnimplementedHandler) LaunchCampaign(ctx context.Context, params LaunchCampaignParams) (r *Campaign, _ error) {
	return r, ht.ErrNotImplemented
}

// ListCampaigns implements listCampaigns operation.
//
// List campaigns, newest first.
//
// GET /campaigns
func (UnimplementedHandler) ListCampaigns(ctx context.Context, params ListCampaignsParams) (r *CampaignPage, _ error) {
	return r, ht.ErrNotImplemented
}

// ListInboxContacts implements listInboxContacts operation.
//
// Threads of a campaign.
//
// GET /inbox/{campaignID}/contacts
func (UnimplementedHandler) ListInboxContacts(ctx context.Context, params ListInboxContactsParams) (r *InboxThreads, _ error) {
	return r, ht.ErrNotImplemented
}

// ListThreadMessages implements listThreadMessages operation.
//
// Messages of a thread, oldest first.
//
// GET /inbox/{campaignID}/contacts/{contactID}/messages
func (UnimplementedHandler) ListThreadMessages(ctx context.Context, params ListThreadMessagesParams) (r *ThreadMessages, _ error) {
	return r, ht.ErrNotImplemented
}

// MigrateInbox implements migrateInbox operation.
//
// Materialize inboxes of every launched campaign.
//
// POST /inbox/migrate
func (UnimplementedHandler) MigrateInbox(ctx context.Context) (r *MigrateResult, _ error) {
	return r, ht.ErrNotImplemented
}

// SaveThreadMessage implements saveThreadMessage operation.
//
// Store a message in a thread.
//
// POST /inbox/{campaignID}/contacts/{contactID}/messages
func (UnimplementedHandler) SaveThreadMessage(ctx context.Context, req *MessageInput, params SaveThreadMessageParams) (r *Message, _ error) {
	return r, ht.ErrNotImplemented
}

// SendThreadMessage implements sendThreadMessage operation.
//
// Send a user message and schedule the automatic reply.
//
// POST /inbox/{campaignID}/contacts/{contactID}/send
func (UnimplementedHandler) SendThreadMessage(ctx context.Context, req *SendMessageRequest, params SendThreadMessageParams) (r *Message, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateCampaign implements updateCampaign operation.
//
// Update a campaign; launched campaigns resync their inbox.
//
// PATCH /campaigns/{campaignID}
func (UnimplementedHandler) UpdateCampaign(ctx context.Context, req *CampaignInput, params UpdateCampaignParams) (r *Campaign, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ErrorStatusCode) {
	r = new(ErrorStatusCode)
	return r
}
