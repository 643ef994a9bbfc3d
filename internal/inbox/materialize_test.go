package inbox_test

import (
	"context"
	"errors"
	"fmt"
	"outreach/internal/inbox"
	"outreach/pkg/domain"
	"outreach/pkg/serrors"
	"outreach/pkg/storage"
	mockstorage "outreach/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, opts inbox.Options) (*gomock.Controller, *mockstorage.MockStorage, inbox.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s, err := inbox.New(st, opts)
	require.NoError(t, err)

	return ctrl, st, s
}

func campaignWithContacts(n int) domain.Campaign {
	c := domain.Campaign{
		ID:          domain.CampaignID(uuid.New()),
		UserID:      domain.UserID(uuid.New()),
		Title:       "Launch",
		PreviewText: "Hello there",
		Status:      domain.CampaignStatusLaunched,
	}
	for i := range n {
		c.Contacts = append(c.Contacts, domain.Contact{Name: fmt.Sprintf("c%d", i), Phone: fmt.Sprintf("555%04d", i)})
	}

	return c
}

func TestService_Materialize_BatchesStayUnderLimit(t *testing.T) {
	_, st, s := newTestService(t, inbox.Options{BatchLimit: 50, AvatarURL: "https://avatar/?u="})
	c := campaignWithContacts(100)
	ctx := context.Background()

	st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil)
	st.EXPECT().CampaignThreads(gomock.Any(), c.ID).Return(nil, nil)

	var batches []storage.Batch
	st.EXPECT().WriteBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b storage.Batch) error {
			batches = append(batches, b)

			return nil
		},
	).AnyTimes()
	st.EXPECT().UpsertInbox(gomock.Any(), domain.Inbox{
		CampaignID:    c.ID,
		UserID:        c.UserID,
		TotalContacts: 100,
	}).Return(nil)

	res, err := s.Materialize(ctx, c.UserID, c.ID, inbox.ModeLaunch)
	require.NoError(t, err)
	require.Equal(t, 100, res.ThreadsCreated)
	require.Equal(t, len(batches), res.Batches)

	// 3 writes per contact (thread, title, preview), whole contacts per batch
	require.Len(t, batches, 7)
	threads := 0
	for _, b := range batches {
		require.LessOrEqual(t, b.Ops(), 50)
		require.Equal(t, c.ID, b.CampaignID)
		threads += len(b.Threads)
		require.Len(t, b.Messages, 2*len(b.Threads))
	}
	require.Equal(t, 100, threads)

	first := batches[0].Threads[0]
	require.Equal(t, "5550000_0", first.ContactID)
	require.Equal(t, "https://avatar/?u=5550000_0", first.ProfilePic)
	require.Equal(t, "Hello there", first.LastMessage)
	require.Equal(t, first.ContactID, batches[0].Messages[0].ContactID)
	require.Equal(t, c.ID, batches[0].Messages[0].CampaignID)
}

func TestService_Materialize_Resync(t *testing.T) {
	_, st, s := newTestService(t, inbox.Options{BatchLimit: 450})
	c := campaignWithContacts(3)
	ctx := context.Background()

	current := inbox.SeedHash(inbox.SeedMessages(&c, time.Now()))
	st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil)
	st.EXPECT().CampaignThreads(gomock.Any(), c.ID).Return([]domain.Thread{
		{CampaignID: c.ID, ContactID: inbox.ContactID(c.Contacts[0], 0), SeedHash: current},
		{CampaignID: c.ID, ContactID: inbox.ContactID(c.Contacts[1], 1), SeedHash: current + 1},
	}, nil)
	st.EXPECT().WriteBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b storage.Batch) error {
			// contact 1 gets its seeds rewritten, contact 2 is created
			require.Len(t, b.Threads, 1)
			require.Equal(t, inbox.ContactID(c.Contacts[2], 2), b.Threads[0].ContactID)
			require.Equal(t, map[string]uint64{inbox.ContactID(c.Contacts[1], 1): current}, b.SeedHashes)
			require.Len(t, b.Messages, 4)
			require.Empty(t, b.DeleteThreads)
			require.NotNil(t, b.LastSeed)
			require.Equal(t, inbox.SeedPreviewID, b.LastSeed.ID)

			return nil
		},
	)
	st.EXPECT().UpsertInbox(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.Materialize(ctx, c.UserID, c.ID, inbox.ModeResync)
	require.NoError(t, err)
	require.Equal(t, inbox.MaterializeResult{Contacts: 3, ThreadsCreated: 1, ThreadsUpdated: 1, Batches: 1}, res)
}

func TestService_Materialize_NothingToWrite(t *testing.T) {
	_, st, s := newTestService(t, inbox.Options{})
	c := campaignWithContacts(1)
	ctx := context.Background()

	current := inbox.SeedHash(inbox.SeedMessages(&c, time.Now()))
	st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil)
	st.EXPECT().CampaignThreads(gomock.Any(), c.ID).Return([]domain.Thread{
		{ContactID: inbox.ContactID(c.Contacts[0], 0), SeedHash: current},
	}, nil)
	st.EXPECT().UpsertInbox(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.Materialize(ctx, c.UserID, c.ID, inbox.ModeResync)
	require.NoError(t, err)
	require.Zero(t, res.Batches)
}

func TestService_Materialize_Errors(t *testing.T) {
	ctx := context.Background()
	c := campaignWithContacts(2)

	t.Run("unknown mode", func(t *testing.T) {
		_, _, s := newTestService(t, inbox.Options{})
		_, err := s.Materialize(ctx, c.UserID, c.ID, inbox.Mode("sideways"))
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("campaign not found", func(t *testing.T) {
		_, st, s := newTestService(t, inbox.Options{})
		st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(nil, nil)

		_, err := s.Materialize(ctx, c.UserID, c.ID, inbox.ModeLaunch)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("batch failure stops the fan-out", func(t *testing.T) {
		_, st, s := newTestService(t, inbox.Options{BatchLimit: 3})
		boom := errors.New("boom")
		st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil)
		st.EXPECT().CampaignThreads(gomock.Any(), c.ID).Return(nil, nil)
		st.EXPECT().WriteBatch(gomock.Any(), gomock.Any()).Return(boom)

		_, err := s.Materialize(ctx, c.UserID, c.ID, inbox.ModeLaunch)
		require.ErrorIs(t, err, boom)
	})
}

func TestService_Materialize_ResyncDropsStaleSeeds(t *testing.T) {
	_, st, s := newTestService(t, inbox.Options{BatchLimit: 450})
	c := campaignWithContacts(1)
	ctx := context.Background()
	contactID := inbox.ContactID(c.Contacts[0], 0)

	// the thread was seeded while the campaign still had a voice note and assets
	before := c
	before.AudioURLs.Voice = "https://cdn.example.com/voice.mp3"
	before.Assets = []domain.Asset{{URL: "https://cdn.example.com/a.png", Type: domain.AssetTypeImage}}
	seededWith := inbox.SeedMessages(&before, time.Now())
	require.Len(t, seededWith, 4)

	st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil)
	st.EXPECT().CampaignThreads(gomock.Any(), c.ID).Return([]domain.Thread{
		{CampaignID: c.ID, ContactID: contactID, SeedHash: inbox.SeedHash(seededWith), LastMessage: "📎 1 file(s)"},
	}, nil)
	st.EXPECT().WriteBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b storage.Batch) error {
			require.Empty(t, b.Threads)
			require.Len(t, b.Messages, 2)
			require.ElementsMatch(t, []storage.MessageKey{
				{ContactID: contactID, ID: inbox.SeedAudioID},
				{ContactID: contactID, ID: inbox.SeedAssetsID},
			}, b.DeleteMessages)
			require.Contains(t, b.SeedHashes, contactID)
			require.Equal(t, "Hello there", b.LastSeed.Content)
			require.Equal(t, 5, b.Ops())

			return nil
		},
	)
	st.EXPECT().UpsertInbox(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.Materialize(ctx, c.UserID, c.ID, inbox.ModeResync)
	require.NoError(t, err)
	require.Equal(t, 1, res.ThreadsUpdated)
}

func TestService_Materialize_RemovedContacts(t *testing.T) {
	c := campaignWithContacts(2)
	ctx := context.Background()
	gone := domain.Thread{CampaignID: c.ID, ContactID: "5559999_2"}

	for _, tc := range []struct {
		mode    inbox.Mode
		deleted []string
	}{
		{mode: inbox.ModeResync, deleted: []string{gone.ContactID}},
		{mode: inbox.ModeRebuild, deleted: []string{gone.ContactID}},
		{mode: inbox.ModeBackfill},
	} {
		t.Run(string(tc.mode), func(t *testing.T) {
			_, st, s := newTestService(t, inbox.Options{BatchLimit: 450})
			st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil)
			st.EXPECT().CampaignThreads(gomock.Any(), c.ID).Return([]domain.Thread{gone}, nil)
			st.EXPECT().WriteBatch(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, b storage.Batch) error {
					require.Equal(t, tc.deleted, b.DeleteThreads)
					require.Len(t, b.Threads, 2)

					return nil
				},
			)
			st.EXPECT().UpsertInbox(gomock.Any(), gomock.Any()).Return(nil)

			res, err := s.Materialize(ctx, c.UserID, c.ID, tc.mode)
			require.NoError(t, err)
			require.Equal(t, 2, res.ThreadsCreated)
			require.Equal(t, len(tc.deleted), res.ThreadsDeleted)
		})
	}
}

func TestService_Materialize_ThreadDeletesRespectLimit(t *testing.T) {
	_, st, s := newTestService(t, inbox.Options{BatchLimit: 3})
	c := campaignWithContacts(1)
	ctx := context.Background()

	var removed []domain.Thread
	for i := range 5 {
		removed = append(removed, domain.Thread{CampaignID: c.ID, ContactID: fmt.Sprintf("old_%d", i)})
	}

	st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil)
	st.EXPECT().CampaignThreads(gomock.Any(), c.ID).Return(removed, nil)

	var deleted []string
	st.EXPECT().WriteBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b storage.Batch) error {
			require.LessOrEqual(t, b.Ops(), 3)
			deleted = append(deleted, b.DeleteThreads...)

			return nil
		},
	).Times(3)
	st.EXPECT().UpsertInbox(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.Materialize(ctx, c.UserID, c.ID, inbox.ModeResync)
	require.NoError(t, err)
	require.Equal(t, 5, res.ThreadsDeleted)
	require.Len(t, deleted, 5)
	require.Equal(t, 3, res.Batches)
}
