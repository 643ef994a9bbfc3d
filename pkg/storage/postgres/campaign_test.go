package postgres_test

import (
	"context"
	"outreach/pkg/domain"
	"outreach/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Campaigns(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	otherUser := domain.UserID(uuid.New())

	stored, err := pgSQL.StoreCampaign(ctx, domain.Campaign{
		UserID:      userID,
		Title:       "Spring sale",
		Description: domain.Description{Original: "20% off"},
		Contacts:    []domain.Contact{{Name: "Ana", Phone: "+15550100"}},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.Equal(t, domain.CampaignStatusDraft, stored.Status)
	require.False(t, stored.CreatedAt.IsZero())

	t.Run("by id is scoped to the user", func(t *testing.T) {
		got, err := pgSQL.CampaignByID(ctx, userID, stored.ID)
		require.NoError(t, err)
		require.Equal(t, "Spring sale", got.Title)
		require.Equal(t, "20% off", got.Description.Original)
		require.Len(t, got.Contacts, 1)

		got, err = pgSQL.CampaignByID(ctx, otherUser, stored.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("merge", func(t *testing.T) {
		got, err := pgSQL.MergeCampaign(ctx, userID, stored.ID,
			[]byte(`{"title":"Summer sale","previewText":"it's hot"}`))
		require.NoError(t, err)
		require.Equal(t, "Summer sale", got.Title)
		require.Equal(t, "it's hot", got.PreviewText)
		require.Equal(t, "20% off", got.Description.Original)
		require.True(t, got.UpdatedAt.After(stored.UpdatedAt) || got.UpdatedAt.Equal(stored.UpdatedAt))

		got, err = pgSQL.MergeCampaign(ctx, otherUser, stored.ID, []byte(`{"title":"x"}`))
		require.NoError(t, err)
		require.Nil(t, got)

		_, err = pgSQL.MergeCampaign(ctx, userID, stored.ID, []byte(`["not","an","object"]`))
		require.ErrorIs(t, err, storage.ErrInvalidPatch)
	})

	t.Run("launched listing follows the document", func(t *testing.T) {
		launched, err := pgSQL.LaunchedCampaigns(ctx, userID)
		require.NoError(t, err)
		require.Empty(t, launched)

		_, err = pgSQL.MergeCampaign(ctx, userID, stored.ID, []byte(`{"status":"launched"}`))
		require.NoError(t, err)

		launched, err = pgSQL.LaunchedCampaigns(ctx, userID)
		require.NoError(t, err)
		require.Len(t, launched, 1)
		require.True(t, launched[0].IsLaunched())
	})
}

func TestPgSQL_UserCampaigns(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	for i := range 5 {
		status := domain.CampaignStatusDraft
		if i%2 == 0 {
			status = domain.CampaignStatusLaunched
		}
		_, err := pgSQL.StoreCampaign(ctx, domain.Campaign{UserID: userID, Title: "c", Status: status})
		require.NoError(t, err)
		// created_at has microsecond precision; keep rows apart for the cursor
		time.Sleep(5 * time.Millisecond)
	}

	page, err := pgSQL.UserCampaigns(ctx, userID, "", nil, 2)
	require.NoError(t, err)
	require.Len(t, page.Campaigns, 2)
	require.NotNil(t, page.NextCursor)
	require.True(t, page.Campaigns[0].CreatedAt.After(page.Campaigns[1].CreatedAt))

	seen := len(page.Campaigns)
	for page.NextCursor != nil {
		page, err = pgSQL.UserCampaigns(ctx, userID, "", page.NextCursor, 2)
		require.NoError(t, err)
		seen += len(page.Campaigns)
	}
	require.Equal(t, 5, seen)

	page, err = pgSQL.UserCampaigns(ctx, userID, domain.CampaignStatusLaunched, nil, 10)
	require.NoError(t, err)
	require.Len(t, page.Campaigns, 3)
	require.Nil(t, page.NextCursor)

	all, err := pgSQL.AllUserCampaigns(ctx, userID)
	require.NoError(t, err)
	require.Len(t, all, 5)
}

func TestPgSQL_UserCampaigns_SameCreatedAt(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	for range 4 {
		_, err := pgSQL.StoreCampaign(ctx, domain.Campaign{UserID: userID, Title: "tie"})
		require.NoError(t, err)
	}
	_, err := pgSQL.DB.ExecContext(ctx, "UPDATE campaigns SET created_at = $1 WHERE user_id = $2",
		time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), uuid.UUID(userID))
	require.NoError(t, err)

	seen := map[domain.CampaignID]bool{}
	var cursor *storage.CampaignCursor
	for {
		page, err := pgSQL.UserCampaigns(ctx, userID, "", cursor, 1)
		require.NoError(t, err)
		for _, c := range page.Campaigns {
			require.False(t, seen[c.ID], "campaign %s listed twice", c.ID)
			seen[c.ID] = true
		}
		if page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}
	require.Len(t, seen, 4)
}

func TestPgSQL_DeleteCampaign(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	c, err := pgSQL.StoreCampaign(ctx, domain.Campaign{UserID: userID, Title: "gone"})
	require.NoError(t, err)
	require.NoError(t, pgSQL.UpsertInbox(ctx, domain.Inbox{CampaignID: c.ID, UserID: userID, TotalContacts: 1}))
	_, err = pgSQL.StoreThread(ctx, domain.Thread{CampaignID: c.ID, ContactID: "a_0", ContactName: "A"})
	require.NoError(t, err)

	deleted, err := pgSQL.DeleteCampaign(ctx, domain.UserID(uuid.New()), c.ID)
	require.NoError(t, err)
	require.Nil(t, deleted)

	deleted, err = pgSQL.DeleteCampaign(ctx, userID, c.ID)
	require.NoError(t, err)
	require.Equal(t, "gone", deleted.Title)

	inbox, err := pgSQL.InboxByCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.Nil(t, inbox)

	stats, err := pgSQL.InboxStats(ctx, c.ID)
	require.NoError(t, err)
	require.Zero(t, stats.Threads)
}
