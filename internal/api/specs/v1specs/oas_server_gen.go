// Code generated by ogen, DO NOT EDIT.

package v1specs

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// BackfillInbox implements backfillInbox operation.
	//
	// Create missing threads and re-seed every launched campaign.
	//
	// POST /inbox/backfill
	BackfillInbox(ctx context.Context) (*BackfillResult, error)
	// CleanupInbox implements cleanupInbox operation.
	//
	// Delete every inbox of the user.
	//
	// POST /inbox/cleanup
	CleanupInbox(ctx context.Context) (*CleanupResult, error)
	// CreateCampaign implements createCampaign operation.
	//
	// Create a draft campaign.
	//
	// POST /campaigns
	CreateCampaign(ctx context.Context, req *CampaignInput) (*Campaign, error)
	// DeleteCampaign implements deleteCampaign operation.
	//
	// Delete a campaign and its inbox.
	//
	// DELETE /campaigns/{campaignID}
	DeleteCampaign(ctx context.Context, params DeleteCampaignParams) error
	// DeleteThreadMessage implements deleteThreadMessage operation.
	//
	// Delete a message.
	//
	// DELETE /inbox/{campaignID}/contacts/{contactID}/messages/{messageID}
	DeleteThreadMessage(ctx context.Context, params DeleteThreadMessageParams) error
	// ExtractContacts implements extractContacts operation.
	//
	// Extract contacts from the uploaded CSV or Excel file.
	//
	// POST /campaigns/{campaignID}/contacts/extract
	ExtractContacts(ctx context.Context, params ExtractContactsParams) (*ExtractedContacts, error)
	// GenerateDescription implements generateDescription operation.
	//
	// Rewrite the description with the language model.
	//
	// POST /campaigns/{campaignID}/description
	GenerateDescription(ctx context.Context, req *DescriptionRequest, params GenerateDescriptionParams) (*DescriptionResult, error)
	// GetCampaign implements getCampaign operation.
	//
	// Get a campaign.
	//
	// GET /campaigns/{campaignID}
	GetCampaign(ctx context.Context, params GetCampaignParams) (*Campaign, error)
	// GetCampaignDetails implements getCampaignDetails operation.
	//
	// Content sent to each contact.
	//
	// GET /campaigns/{campaignID}/details
	GetCampaignDetails(ctx context.Context, params GetCampaignDetailsParams) (*CampaignDetails, error)
	// GetInboxOverview implements getInboxOverview operation.
	//
	// Launched campaigns with their contacts.
	//
	// GET /inbox
	GetInboxOverview(ctx context.Context) (*InboxOverview, error)
	// GetInboxStatus implements getInboxStatus operation.
	//
	// Compare a campaign's contacts with its stored inbox.
	//
	// GET /debug/campaigns/{campaignID}/inbox
	GetInboxStatus(ctx context.Context, params GetInboxStatusParams) (*InboxStatus, error)
	// LaunchCampaign implements launchCampaign operation.
	//
	// Launch a campaign and queue its inbox fan-out.
	//
	// POST /campaigns/{campaignID}/launch
	LaunchCampaign(ctx context.Context, params LaunchCampaignParams) (*Campaign, error)
	// ListCampaigns implements listCampaigns operation.
	//
	// List campaigns, newest first.
	//
	// GET /campaigns
	ListCampaigns(ctx context.Context, params ListCampaignsParams) (*CampaignPage, error)
	// ListInboxContacts implements listInboxContacts operation.
	//
	// Threads of a campaign.
	//
	// GET /inbox/{campaignID}/contacts
	ListInboxContacts(ctx context.Context, params ListInboxContactsParams) (*InboxThreads, error)
	// ListThreadMessages implements listThreadMessages operation.
	//
	// Messages of a thread, oldest first.
	//
	// GET /inbox/{campaignID}/contacts/{contactID}/messages
	ListThreadMessages(ctx context.Context, params ListThreadMessagesParams) (*ThreadMessages, error)
	// MigrateInbox implements migrateInbox operation.
	//
	// Materialize inboxes of every launched campaign.
	//
	// POST /inbox/migrate
	MigrateInbox(ctx context.Context) (*MigrateResult, error)
	// SaveThreadMessage implements saveThreadMessage operation.
	//
	// Store a message in a thread.
	//
	// POST /inbox/{campaignID}/contacts/{contactID}/messages
	SaveThreadMessage(ctx context.Context, req *MessageInput, params SaveThreadMessageParams) (*Message, error)
	// SendThreadMessage implements sendThreadMessage operation.
	//
	// Send a user message and schedule the automatic reply.
	//
	// POST /inbox/{campaignID}/contacts/{contactID}/send
	SendThreadMessage(ctx context.Context, req *SendMessageRequest, params SendThreadMessageParams) (*Message, error)
	// UpdateCampaign implements updateCampaign operation.
	//
	// Update a campaign; launched campaigns resync their inbox.
	//
	// PATCH /campaigns/{campaignID}
	UpdateCampaign(ctx context.Context, req *CampaignInput, params UpdateCampaignParams) (*Campaign, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
