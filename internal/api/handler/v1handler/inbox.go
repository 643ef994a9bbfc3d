package v1handler

import (
	"context"
	"outreach/internal/api/specs/v1specs"
	"outreach/pkg/domain"
)

// GetInboxOverview lists launched campaigns with their contacts.
func (h Handler) GetInboxOverview(ctx context.Context) (*v1specs.InboxOverview, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	overview, err := h.deps.Inbox.Overview(ctx, userID)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return domainOverviewToV1Specs(overview), nil
}

func (h Handler) ListInboxContacts(ctx context.Context,
	params v1specs.ListInboxContactsParams) (*v1specs.InboxThreads, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	threads, err := h.deps.Inbox.Contacts(ctx, userID, domain.CampaignID(params.CampaignID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.InboxThreads{Contacts: DomainThreadsToV1Specs(threads)}, nil
}

func (h Handler) ListThreadMessages(ctx context.Context,
	params v1specs.ListThreadMessagesParams) (*v1specs.ThreadMessages, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	msgs, err := h.deps.Inbox.Messages(ctx, userID, domain.CampaignID(params.CampaignID), params.ContactID)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	out := &v1specs.ThreadMessages{Messages: make([]v1specs.Message, 0, len(msgs))}
	for i := range msgs {
		out.Messages = append(out.Messages, *DomainMessageToV1Specs(&msgs[i]))
	}

	return out, nil
}

func (h Handler) SaveThreadMessage(ctx context.Context,
	req *v1specs.MessageInput,
	params v1specs.SaveThreadMessageParams) (*v1specs.Message, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	saved, err := h.deps.Inbox.SaveMessage(ctx,
		userID,
		domain.CampaignID(params.CampaignID),
		params.ContactID,
		V1SpecsMessageInputToDomain(req))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainMessageToV1Specs(saved), nil
}

func (h Handler) DeleteThreadMessage(ctx context.Context, params v1specs.DeleteThreadMessageParams) error {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return err
	}

	return h.deps.Inbox.DeleteMessage(ctx, //nolint: wrapcheck
		userID,
		domain.CampaignID(params.CampaignID),
		params.ContactID,
		params.MessageID)
}

// SendThreadMessage posts a user message and schedules the automatic reply.
func (h Handler) SendThreadMessage(ctx context.Context,
	req *v1specs.SendMessageRequest,
	params v1specs.SendThreadMessageParams) (*v1specs.Message, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := h.deps.Inbox.Send(ctx, userID, domain.CampaignID(params.CampaignID), params.ContactID, req.Message)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainMessageToV1Specs(msg), nil
}

func (h Handler) MigrateInbox(ctx context.Context) (*v1specs.MigrateResult, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	res, err := h.deps.Inbox.Migrate(ctx, userID)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.MigrateResult{
		MigratedCampaigns: res.MigratedCampaigns,
		TotalContacts:     res.TotalContacts,
	}, nil
}

func (h Handler) BackfillInbox(ctx context.Context) (*v1specs.BackfillResult, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	res, err := h.deps.Inbox.Backfill(ctx, userID)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.BackfillResult{
		CampaignsUpdated: res.CampaignsUpdated,
		ContactsAdded:    res.ContactsAdded,
	}, nil
}

func (h Handler) CleanupInbox(ctx context.Context) (*v1specs.CleanupResult, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	res, err := h.deps.Inbox.Cleanup(ctx, userID)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.CleanupResult{
		DeletedCampaigns: res.DeletedCampaigns,
		DeletedContacts:  res.DeletedContacts,
		DeletedMessages:  res.DeletedMessages,
	}, nil
}

// GetInboxStatus compares the campaign's contacts with its stored inbox.
func (h Handler) GetInboxStatus(ctx context.Context, params v1specs.GetInboxStatusParams) (*v1specs.InboxStatus, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	s, err := h.deps.Inbox.Status(ctx, userID, domain.CampaignID(params.CampaignID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.InboxStatus{
		CampaignContactsInData: s.CampaignContactsInData,
		InboxExists:            s.InboxExists,
		ContactsInInbox:        s.ContactsInInbox,
		TotalMessagesInInbox:   s.TotalMessagesInInbox,
		InboxContacts:          DomainThreadsToV1Specs(s.InboxContacts),
	}, nil
}
