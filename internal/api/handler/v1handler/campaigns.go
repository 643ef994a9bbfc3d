package v1handler

import (
	"context"
	"outreach/internal/api/specs/v1specs"
	"outreach/pkg/domain"
	"outreach/pkg/llm"
	"strings"

	"github.com/google/uuid"
)

const DefaultLimit = 20

// CreateCampaign stores a new draft campaign.
func (h Handler) CreateCampaign(ctx context.Context, req *v1specs.CampaignInput) (*v1specs.Campaign, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title.Value) == "" {
		return nil, badRequest("title is required")
	}

	c, err := h.deps.Campaigns.Create(ctx, userID, V1SpecsCampaignInputToDraft(req))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainCampaignToV1Specs(c), nil
}

// ListCampaigns returns a page of the caller's campaigns, newest first.
func (h Handler) ListCampaigns(ctx context.Context, params v1specs.ListCampaignsParams) (*v1specs.CampaignPage, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	items, next, err := h.deps.Campaigns.List(ctx,
		userID,
		domain.CampaignStatus(params.Status.Value),
		params.Cursor.Value,
		uint(params.Limit.Or(DefaultLimit))) //nolint: gosec
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	page := &v1specs.CampaignPage{Items: make([]v1specs.Campaign, 0, len(items))}
	for i := range items {
		page.Items = append(page.Items, *DomainCampaignToV1Specs(&items[i]))
	}
	if next != "" {
		page.NextCursor = v1specs.NewOptNilString(next)
	} else {
		page.NextCursor.SetToNull()
	}

	return page, nil
}

// GetCampaign returns a campaign by ID.
func (h Handler) GetCampaign(ctx context.Context, params v1specs.GetCampaignParams) (*v1specs.Campaign, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := h.deps.Campaigns.Get(ctx, userID, domain.CampaignID(params.CampaignID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainCampaignToV1Specs(c), nil
}

// UpdateCampaign applies the fields present in req.
func (h Handler) UpdateCampaign(ctx context.Context,
	req *v1specs.CampaignInput,
	params v1specs.UpdateCampaignParams) (*v1specs.Campaign, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := h.deps.Campaigns.Update(ctx, userID, domain.CampaignID(params.CampaignID), V1SpecsCampaignInputToUpdate(req))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainCampaignToV1Specs(c), nil
}

// DeleteCampaign deletes a campaign together with its inbox.
func (h Handler) DeleteCampaign(ctx context.Context, params v1specs.DeleteCampaignParams) error {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return err
	}

	return h.deps.Campaigns.Delete(ctx, userID, domain.CampaignID(params.CampaignID)) //nolint: wrapcheck
}

func (h Handler) GetCampaignDetails(ctx context.Context,
	params v1specs.GetCampaignDetailsParams) (*v1specs.CampaignDetails, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	d, err := h.deps.Campaigns.Details(ctx, userID, domain.CampaignID(params.CampaignID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.CampaignDetails{
		ID:          uuid.UUID(d.ID),
		Title:       d.Title,
		PreviewText: d.PreviewText,
		AudioUrls: v1specs.CampaignAudio{
			Voice: optString(d.AudioURLs.Voice),
			Calls: optString(d.AudioURLs.Calls),
		},
		Assets: DomainAssetsToV1Specs(d.Assets),
	}, nil
}

// ExtractContacts parses the campaign's uploaded contacts file.
func (h Handler) ExtractContacts(ctx context.Context,
	params v1specs.ExtractContactsParams) (*v1specs.ExtractedContacts, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	found, err := h.deps.Campaigns.ExtractContacts(ctx, userID, domain.CampaignID(params.CampaignID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.ExtractedContacts{
		Count:    len(found),
		Contacts: DomainContactsToV1Specs(found),
	}, nil
}

// GenerateDescription rewrites the campaign description with the language model.
func (h Handler) GenerateDescription(ctx context.Context,
	req *v1specs.DescriptionRequest,
	params v1specs.GenerateDescriptionParams) (*v1specs.DescriptionResult, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	text, err := h.deps.Campaigns.GenerateDescription(ctx, userID, domain.CampaignID(params.CampaignID), llm.DescriptionInput{
		WordLimit: req.WordLimit.Value,
		Tone:      req.Tone.Value,
		Emotion:   req.Emotion.Value,
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.DescriptionResult{AiDescription: text}, nil
}

// LaunchCampaign launches a campaign and queues its inbox fan-out.
func (h Handler) LaunchCampaign(ctx context.Context, params v1specs.LaunchCampaignParams) (*v1specs.Campaign, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := h.deps.Campaigns.Launch(ctx, userID, domain.CampaignID(params.CampaignID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainCampaignToV1Specs(c), nil
}
