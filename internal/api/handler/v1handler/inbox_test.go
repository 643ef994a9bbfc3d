package v1handler_test

import (
	"outreach/internal/api/specs/v1specs"
	"outreach/internal/inbox"
	"outreach/pkg/domain"
	"outreach/pkg/serrors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetInboxOverview(t *testing.T) {
	f := newHandlerFixture(t)
	id := domain.CampaignID(uuid.New())
	launched := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f.inbox.EXPECT().Overview(gomock.Any(), f.userID).Return([]inbox.CampaignOverview{
		{
			Campaign: domain.Campaign{
				ID:          id,
				Title:       "Spring",
				Description: domain.Description{Original: "orig", AIEnhanced: "better"},
				LaunchedAt:  &launched,
			},
			Contacts: []domain.Contact{{ID: "c1", Name: "Ana"}},
		},
		{Campaign: domain.Campaign{ID: domain.CampaignID(uuid.New()), Title: "Legacy"}},
	}, nil)

	res, err := f.h.GetInboxOverview(f.ctx)
	require.NoError(t, err)
	require.Len(t, res.Campaigns, 2)

	got := res.Campaigns[0]
	require.Equal(t, uuid.UUID(id), got.ID)
	require.Equal(t, "better", got.Description)
	require.Equal(t, 1, got.ContactCount)
	require.False(t, got.LaunchedAt.IsNull())
	require.Equal(t, launched, got.LaunchedAt.Value)
	require.Equal(t, "c1", got.Contacts[0].ID.Value)
	require.NotNil(t, got.Assets)

	require.True(t, res.Campaigns[1].LaunchedAt.IsNull())
	require.Empty(t, res.Campaigns[1].Contacts)
}

func TestListInboxContactsAndMessages(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	now := time.Now().UTC()
	f.inbox.EXPECT().Contacts(gomock.Any(), f.userID, domain.CampaignID(id)).
		Return([]domain.Thread{{ContactID: "c1", ContactName: "Ana", LastMessage: "Spring", LastMessageTime: now}}, nil)
	f.inbox.EXPECT().Messages(gomock.Any(), f.userID, domain.CampaignID(id), "c1").
		Return([]domain.Message{{
			ID:      "msg_title",
			Sender:  domain.MessageSenderCampaign,
			Type:    domain.MessageTypeText,
			Content: "Spring",
		}}, nil)

	threads, err := f.h.ListInboxContacts(f.ctx, v1specs.ListInboxContactsParams{CampaignID: id})
	require.NoError(t, err)
	require.Len(t, threads.Contacts, 1)
	require.Equal(t, "Ana", threads.Contacts[0].ContactName)
	require.False(t, threads.Contacts[0].ProfilePic.IsSet())

	msgs, err := f.h.ListThreadMessages(f.ctx, v1specs.ListThreadMessagesParams{CampaignID: id, ContactID: "c1"})
	require.NoError(t, err)
	require.Len(t, msgs.Messages, 1)
	require.Equal(t, "msg_title", msgs.Messages[0].ID)
	require.Equal(t, v1specs.MessageSenderCampaign, msgs.Messages[0].Sender)
	require.Nil(t, msgs.Messages[0].Assets)
}

func TestSendThreadMessage(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	f.inbox.EXPECT().Send(gomock.Any(), f.userID, domain.CampaignID(id), "c1", "hello").
		Return(&domain.Message{ID: "msg_1", Sender: domain.MessageSenderUser, Type: domain.MessageTypeText, Content: "hello"}, nil)

	res, err := f.h.SendThreadMessage(f.ctx,
		&v1specs.SendMessageRequest{Message: "hello"},
		v1specs.SendThreadMessageParams{CampaignID: id, ContactID: "c1"})
	require.NoError(t, err)
	require.Equal(t, "msg_1", res.ID)
	require.Equal(t, v1specs.MessageSenderUser, res.Sender)
}

func TestSaveAndDeleteThreadMessage(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	f.inbox.EXPECT().SaveMessage(gomock.Any(), f.userID, domain.CampaignID(id), "c1", gomock.Any()).
		DoAndReturn(func(_ any, _ domain.UserID, _ domain.CampaignID, _ string, m domain.Message) (*domain.Message, error) {
			require.Equal(t, domain.MessageSenderAI, m.Sender)
			require.Equal(t, "ok", m.Content)
			require.Len(t, m.Assets, 1)
			m.ID = "msg_2"

			return &m, nil
		})
	f.inbox.EXPECT().DeleteMessage(gomock.Any(), f.userID, domain.CampaignID(id), "c1", "msg_2").
		Return(serrors.With(serrors.ErrNotFound, "message not found"))

	saved, err := f.h.SaveThreadMessage(f.ctx, &v1specs.MessageInput{
		Sender:  v1specs.NewOptMessageSender(v1specs.MessageSenderAi),
		Content: v1specs.NewOptString("ok"),
		Assets:  []v1specs.Asset{{URL: "https://cdn.example.com/a.png"}},
	}, v1specs.SaveThreadMessageParams{CampaignID: id, ContactID: "c1"})
	require.NoError(t, err)
	require.Equal(t, "msg_2", saved.ID)

	err = f.h.DeleteThreadMessage(f.ctx, v1specs.DeleteThreadMessageParams{CampaignID: id, ContactID: "c1", MessageID: "msg_2"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, "message not found", f.h.NewError(f.ctx, err).Response.Message)
}

func TestInboxMaintenance(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	f.inbox.EXPECT().Migrate(gomock.Any(), f.userID).
		Return(inbox.MigrateResult{MigratedCampaigns: 2, TotalContacts: 7}, nil)
	f.inbox.EXPECT().Backfill(gomock.Any(), f.userID).
		Return(inbox.BackfillResult{CampaignsUpdated: 1, ContactsAdded: 3}, nil)
	f.inbox.EXPECT().Cleanup(gomock.Any(), f.userID).
		Return(inbox.CleanupResult{DeletedCampaigns: 1, DeletedContacts: 4, DeletedMessages: 16}, nil)
	f.inbox.EXPECT().Status(gomock.Any(), f.userID, domain.CampaignID(id)).
		Return(&inbox.Status{CampaignContactsInData: 3, InboxExists: true, ContactsInInbox: 3, TotalMessagesInInbox: 9}, nil)

	migrated, err := f.h.MigrateInbox(f.ctx)
	require.NoError(t, err)
	require.Equal(t, v1specs.MigrateResult{MigratedCampaigns: 2, TotalContacts: 7}, *migrated)

	backfilled, err := f.h.BackfillInbox(f.ctx)
	require.NoError(t, err)
	require.Equal(t, v1specs.BackfillResult{CampaignsUpdated: 1, ContactsAdded: 3}, *backfilled)

	cleaned, err := f.h.CleanupInbox(f.ctx)
	require.NoError(t, err)
	require.Equal(t, v1specs.CleanupResult{DeletedCampaigns: 1, DeletedContacts: 4, DeletedMessages: 16}, *cleaned)

	status, err := f.h.GetInboxStatus(f.ctx, v1specs.GetInboxStatusParams{CampaignID: id})
	require.NoError(t, err)
	require.True(t, status.InboxExists)
	require.Equal(t, int64(9), status.TotalMessagesInInbox)
	require.NotNil(t, status.InboxContacts)
}
