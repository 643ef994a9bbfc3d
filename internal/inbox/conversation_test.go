package inbox_test

import (
	"context"
	"outreach/internal/inbox"
	"outreach/pkg/domain"
	"outreach/pkg/serrors"
	"outreach/pkg/storage"
	mockstorage "outreach/pkg/storage/mock"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// expectWithTx makes Storage.WithTx run its callback on a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestService_Overview(t *testing.T) {
	_, st, s := newTestService(t, inbox.Options{AvatarURL: "https://i.pravatar.cc/50?u="})
	c := campaignWithContacts(2)
	c.Contacts[1].ProfilePic = "https://cdn.example.com/me.png"
	c.Contacts[1].Name = ""

	st.EXPECT().LaunchedCampaigns(gomock.Any(), c.UserID).Return([]domain.Campaign{c}, nil)

	out, err := s.Overview(context.Background(), c.UserID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, c.ID, out[0].Campaign.ID)
	require.Equal(t, []domain.Contact{
		{ID: "5550000_0", Name: "c0", Phone: "5550000", ProfilePic: "https://i.pravatar.cc/50?u=5550000_0"},
		{ID: "5550001_1", Name: inbox.UnknownContact, Phone: "5550001", ProfilePic: "https://cdn.example.com/me.png"},
	}, out[0].Contacts)
}

func TestService_Contacts_FallsBackToCampaign(t *testing.T) {
	_, st, s := newTestService(t, inbox.Options{})
	c := campaignWithContacts(2)

	st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil)
	st.EXPECT().CampaignThreads(gomock.Any(), c.ID).Return(nil, nil)

	threads, err := s.Contacts(context.Background(), c.UserID, c.ID)
	require.NoError(t, err)
	require.Len(t, threads, 2)
	require.Equal(t, "5550001_1", threads[1].ContactID)
	require.Equal(t, "Hello there", threads[1].LastMessage)
}

func TestService_Messages(t *testing.T) {
	ctx := context.Background()
	c := campaignWithContacts(1)
	contactID := inbox.ContactID(c.Contacts[0], 0)

	t.Run("stored with seeds", func(t *testing.T) {
		_, st, s := newTestService(t, inbox.Options{})
		stored := []domain.Message{{ID: inbox.SeedTitleID}, {ID: "msg_1"}}
		st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil)
		st.EXPECT().ThreadMessages(gomock.Any(), c.ID, contactID).Return(stored, nil)

		msgs, err := s.Messages(ctx, c.UserID, c.ID, contactID)
		require.NoError(t, err)
		require.Equal(t, stored, msgs)
	})

	t.Run("nothing stored", func(t *testing.T) {
		_, st, s := newTestService(t, inbox.Options{})
		st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil)
		st.EXPECT().ThreadMessages(gomock.Any(), c.ID, contactID).Return(nil, nil)

		msgs, err := s.Messages(ctx, c.UserID, c.ID, contactID)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		require.Equal(t, inbox.SeedTitleID, msgs[0].ID)
		require.Equal(t, contactID, msgs[0].ContactID)
	})

	t.Run("stored without seeds", func(t *testing.T) {
		_, st, s := newTestService(t, inbox.Options{})
		old := time.Now().Add(-48 * time.Hour)
		stored := []domain.Message{{ID: "msg_1", Timestamp: old}}
		st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil)
		st.EXPECT().ThreadMessages(gomock.Any(), c.ID, contactID).Return(stored, nil)

		msgs, err := s.Messages(ctx, c.UserID, c.ID, contactID)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		require.Equal(t, inbox.SeedTitleID, msgs[0].ID)
		require.Equal(t, "msg_1", msgs[2].ID)
		require.True(t, msgs[1].Timestamp.Before(old))
	})

	t.Run("campaign of another user", func(t *testing.T) {
		_, st, s := newTestService(t, inbox.Options{})
		st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(nil, nil)

		_, err := s.Messages(ctx, c.UserID, c.ID, contactID)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestService_Send(t *testing.T) {
	ctx := context.Background()
	c := campaignWithContacts(1)

	t.Run("empty text", func(t *testing.T) {
		_, _, s := newTestService(t, inbox.Options{})
		_, err := s.Send(ctx, c.UserID, c.ID, "x_0", "   ")
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("stores and schedules the reply", func(t *testing.T) {
		ctrl, st, s := newTestService(t, inbox.Options{AutoReplyDelay: time.Second, MaxAttempts: 3})
		st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil)

		before := time.Now()
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().StoreThread(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, th domain.Thread) (bool, error) {
					require.Equal(t, "new_0", th.ContactID)
					require.Equal(t, inbox.UnknownContact, th.ContactName)

					return true, nil
				},
			)
			tx.EXPECT().StoreMessage(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, m domain.Message) error {
					require.True(t, strings.HasPrefix(m.ID, "msg_"))
					require.Equal(t, domain.MessageSenderUser, m.Sender)
					require.Equal(t, "hi", m.Content)

					return nil
				},
			)
			tx.EXPECT().UpdateLastMessage(gomock.Any(), c.ID, "new_0", "hi", gomock.Any()).Return(nil)
			tx.EXPECT().AddJob(gomock.Any(), inbox.AutoReplyArgs{
				UserID:     c.UserID,
				CampaignID: c.ID,
				ContactID:  "new_0",
			}, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ river.JobArgs, opts *river.InsertOpts) (bool, error) {
					require.Equal(t, 3, opts.MaxAttempts)
					require.True(t, opts.ScheduledAt.After(before))

					return true, nil
				},
			)
		})

		msg, err := s.Send(ctx, c.UserID, c.ID, "new_0", " hi ")
		require.NoError(t, err)
		require.Equal(t, "hi", msg.Content)
	})
}

func TestService_AutoReply(t *testing.T) {
	ctx := context.Background()
	c := campaignWithContacts(1)
	args := inbox.AutoReplyArgs{UserID: c.UserID, CampaignID: c.ID, ContactID: "a_0"}

	t.Run("thread gone", func(t *testing.T) {
		_, st, s := newTestService(t, inbox.Options{})
		st.EXPECT().ThreadByID(gomock.Any(), c.ID, "a_0").Return(nil, nil)

		_, err := s.AutoReply(ctx, args)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("posts the reply", func(t *testing.T) {
		ctrl, st, s := newTestService(t, inbox.Options{AutoReplyText: "Thanks!"})
		st.EXPECT().ThreadByID(gomock.Any(), c.ID, "a_0").Return(&domain.Thread{ContactID: "a_0"}, nil)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().StoreMessage(gomock.Any(), gomock.Any()).Return(nil)
			tx.EXPECT().UpdateLastMessage(gomock.Any(), c.ID, "a_0", "Thanks!", gomock.Any()).Return(nil)
		})

		msg, err := s.AutoReply(ctx, args)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(msg.ID, "ai_"))
		require.Equal(t, domain.MessageSenderAI, msg.Sender)
	})
}

func TestService_SaveMessage(t *testing.T) {
	ctx := context.Background()
	c := campaignWithContacts(1)

	t.Run("validation", func(t *testing.T) {
		_, _, s := newTestService(t, inbox.Options{})

		_, err := s.SaveMessage(ctx, c.UserID, c.ID, "a_0", domain.Message{})
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		_, err = s.SaveMessage(ctx, c.UserID, c.ID, "a_0", domain.Message{Content: "x", Sender: "robot"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("audio only", func(t *testing.T) {
		ctrl, st, s := newTestService(t, inbox.Options{})
		st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().StoreThread(gomock.Any(), gomock.Any()).Return(false, nil)
			tx.EXPECT().StoreMessage(gomock.Any(), gomock.Any()).Return(nil)
			tx.EXPECT().UpdateLastMessage(gomock.Any(), c.ID, "a_0", "🎙️ Voice message", gomock.Any()).Return(nil)
		})

		msg, err := s.SaveMessage(ctx, c.UserID, c.ID, "a_0", domain.Message{AudioURL: "https://cdn/v.mp3"})
		require.NoError(t, err)
		require.Equal(t, domain.MessageTypeAudio, msg.Type)
		require.Equal(t, domain.MessageSenderUser, msg.Sender)
		require.NotEmpty(t, msg.ID)
	})
}

func TestService_DeleteMessage(t *testing.T) {
	ctx := context.Background()
	c := campaignWithContacts(1)

	_, st, s := newTestService(t, inbox.Options{})
	st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil).Times(2)
	st.EXPECT().DeleteMessage(gomock.Any(), c.ID, "a_0", "msg_1").Return(true, nil)
	st.EXPECT().DeleteMessage(gomock.Any(), c.ID, "a_0", "msg_2").Return(false, nil)

	require.NoError(t, s.DeleteMessage(ctx, c.UserID, c.ID, "a_0", "msg_1"))
	require.ErrorIs(t, s.DeleteMessage(ctx, c.UserID, c.ID, "a_0", "msg_2"), serrors.ErrNotFound)
}

func TestService_Overview_MostRecentLaunchFirst(t *testing.T) {
	_, st, s := newTestService(t, inbox.Options{})
	userID := domain.UserID(uuid.New())
	now := time.Now()
	older, newer := campaignWithContacts(1), campaignWithContacts(1)
	older.CreatedAt = now
	newer.CreatedAt = now.Add(-time.Hour)
	launchedAt := now.Add(time.Minute)
	newer.LaunchedAt = &launchedAt

	st.EXPECT().LaunchedCampaigns(gomock.Any(), userID).Return([]domain.Campaign{older, newer}, nil)

	out, err := s.Overview(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, newer.ID, out[0].Campaign.ID)
	require.Equal(t, older.ID, out[1].Campaign.ID)
}
