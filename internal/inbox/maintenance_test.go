package inbox_test

import (
	"context"
	"outreach/internal/inbox"
	"outreach/pkg/domain"
	"outreach/pkg/storage"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Migrate(t *testing.T) {
	_, st, s := newTestService(t, inbox.Options{Concurrency: 2})
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	a, b := campaignWithContacts(2), campaignWithContacts(3)
	empty := campaignWithContacts(0)
	st.EXPECT().LaunchedCampaigns(gomock.Any(), userID).Return([]domain.Campaign{a, b, empty}, nil)
	st.EXPECT().CampaignThreads(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	st.EXPECT().WriteBatch(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	st.EXPECT().UpsertInbox(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	res, err := s.Migrate(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, inbox.MigrateResult{MigratedCampaigns: 2, TotalContacts: 5}, res)
}

func TestService_Backfill_CountsProcessedContacts(t *testing.T) {
	_, st, s := newTestService(t, inbox.Options{})
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	done := campaignWithContacts(1)
	partial := campaignWithContacts(3)
	st.EXPECT().LaunchedCampaigns(gomock.Any(), userID).Return([]domain.Campaign{done, partial}, nil)
	st.EXPECT().CampaignThreads(gomock.Any(), done.ID).Return([]domain.Thread{
		{ContactID: inbox.ContactID(done.Contacts[0], 0)},
	}, nil)
	st.EXPECT().CampaignThreads(gomock.Any(), partial.ID).Return([]domain.Thread{
		{ContactID: inbox.ContactID(partial.Contacts[0], 0)},
	}, nil)

	var (
		mu      sync.Mutex
		created int
	)
	st.EXPECT().WriteBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b storage.Batch) error {
			mu.Lock()
			created += len(b.Threads)
			mu.Unlock()

			return nil
		},
	).Times(2)
	st.EXPECT().UpsertInbox(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	res, err := s.Backfill(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, inbox.BackfillResult{CampaignsUpdated: 2, ContactsAdded: 4}, res)
	require.Equal(t, 2, created)
}

func TestService_Cleanup(t *testing.T) {
	_, st, s := newTestService(t, inbox.Options{})
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	a, b := campaignWithContacts(2), campaignWithContacts(0)
	st.EXPECT().AllUserCampaigns(gomock.Any(), userID).Return([]domain.Campaign{a, b}, nil)
	st.EXPECT().DeleteInbox(gomock.Any(), a.ID).Return(storage.InboxStats{Threads: 2, Messages: 7}, nil)
	st.EXPECT().DeleteInbox(gomock.Any(), b.ID).Return(storage.InboxStats{}, nil)

	res, err := s.Cleanup(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, inbox.CleanupResult{DeletedCampaigns: 2, DeletedContacts: 2, DeletedMessages: 7}, res)
}

func TestService_Status(t *testing.T) {
	_, st, s := newTestService(t, inbox.Options{})
	ctx := context.Background()
	c := campaignWithContacts(4)

	threads := []domain.Thread{{ContactID: "a_0"}, {ContactID: "b_1"}}
	st.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(&c, nil)
	st.EXPECT().InboxByCampaign(gomock.Any(), c.ID).Return(&domain.Inbox{CampaignID: c.ID, TotalContacts: 4}, nil)
	st.EXPECT().CampaignThreads(gomock.Any(), c.ID).Return(threads, nil)
	st.EXPECT().InboxStats(gomock.Any(), c.ID).Return(storage.InboxStats{Threads: 2, Messages: 9}, nil)

	status, err := s.Status(ctx, c.UserID, c.ID)
	require.NoError(t, err)
	require.Equal(t, &inbox.Status{
		CampaignContactsInData: 4,
		InboxExists:            true,
		ContactsInInbox:        2,
		TotalMessagesInInbox:   9,
		InboxContacts:          threads,
	}, status)
}
