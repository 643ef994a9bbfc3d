package postgres_test

import (
	"context"
	"outreach/pkg/domain"
	"outreach/pkg/storage"
	"outreach/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func seedCampaign(t *testing.T, pgSQL *postgres.PgSQL) (domain.UserID, domain.CampaignID) {
	t.Helper()

	userID := domain.UserID(uuid.New())
	c, err := pgSQL.StoreCampaign(context.Background(), domain.Campaign{UserID: userID, Title: "inbox"})
	require.NoError(t, err)

	return userID, c.ID
}

func TestPgSQL_WriteBatch(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	_, campaignID := seedCampaign(t, pgSQL)
	now := time.Now().UTC().Truncate(time.Millisecond)

	batch := storage.Batch{
		CampaignID: campaignID,
		Threads: []domain.Thread{
			{CampaignID: campaignID, ContactID: "111_0", ContactName: "Ana", SeedHash: 1, CreatedAt: now},
			{CampaignID: campaignID, ContactID: "222_1", ContactName: "Bob", SeedHash: 1, CreatedAt: now.Add(time.Millisecond)},
		},
		Messages: []domain.Message{
			{CampaignID: campaignID, ContactID: "111_0", ID: "msg_title", Sender: domain.MessageSenderCampaign,
				Content: "Hi", Timestamp: now.Add(-5 * time.Second), CreatedAt: now.Add(-5 * time.Second)},
			{CampaignID: campaignID, ContactID: "111_0", ID: "msg_assets", Sender: domain.MessageSenderCampaign,
				Content: "📎 1 file(s)", Assets: []domain.Asset{{URL: "https://cdn/x.png", Type: domain.AssetTypeImage}},
				Timestamp: now.Add(-2 * time.Second), CreatedAt: now.Add(-2 * time.Second)},
		},
	}
	require.Equal(t, 4, batch.Ops())
	require.NoError(t, pgSQL.WriteBatch(ctx, batch))

	threads, err := pgSQL.CampaignThreads(ctx, campaignID)
	require.NoError(t, err)
	require.Len(t, threads, 2)
	require.Equal(t, "111_0", threads[0].ContactID)

	msgs, err := pgSQL.ThreadMessages(ctx, campaignID, "111_0")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "msg_title", msgs[0].ID)
	require.Equal(t, domain.MessageTypeText, msgs[0].Type)
	require.Len(t, msgs[1].Assets, 1)

	t.Run("rewrite in place", func(t *testing.T) {
		require.NoError(t, pgSQL.WriteBatch(ctx, storage.Batch{
			CampaignID: campaignID,
			Messages: []domain.Message{{
				CampaignID: campaignID, ContactID: "111_0", ID: "msg_title",
				Sender: domain.MessageSenderCampaign, Content: "Hello", Timestamp: now,
			}},
			SeedHashes: map[string]uint64{"111_0": ^uint64(0)},
		}))

		msgs, err := pgSQL.ThreadMessages(ctx, campaignID, "111_0")
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		require.Equal(t, "msg_title", msgs[0].ID)
		require.Equal(t, "Hello", msgs[0].Content)

		thread, err := pgSQL.ThreadByID(ctx, campaignID, "111_0")
		require.NoError(t, err)
		require.Equal(t, ^uint64(0), thread.SeedHash)
	})

	t.Run("failed batch is rolled back", func(t *testing.T) {
		err := pgSQL.WriteBatch(ctx, storage.Batch{
			CampaignID: campaignID,
			Threads:    []domain.Thread{{CampaignID: campaignID, ContactID: "333_2", ContactName: "Cy"}},
			// the thread of this message does not exist
			Messages: []domain.Message{{CampaignID: campaignID, ContactID: "missing", ID: "msg_title",
				Sender: domain.MessageSenderCampaign}},
		})
		require.Error(t, err)

		thread, err := pgSQL.ThreadByID(ctx, campaignID, "333_2")
		require.NoError(t, err)
		require.Nil(t, thread)
	})
}

func TestPgSQL_ThreadsAndMessages(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID, campaignID := seedCampaign(t, pgSQL)

	require.NoError(t, pgSQL.UpsertInbox(ctx, domain.Inbox{CampaignID: campaignID, UserID: userID, TotalContacts: 1}))
	require.NoError(t, pgSQL.UpsertInbox(ctx, domain.Inbox{CampaignID: campaignID, UserID: userID, TotalContacts: 3}))
	inbox, err := pgSQL.InboxByCampaign(ctx, campaignID)
	require.NoError(t, err)
	require.Equal(t, 3, inbox.TotalContacts)

	created, err := pgSQL.StoreThread(ctx, domain.Thread{CampaignID: campaignID, ContactID: "c_0", ContactName: "Unknown"})
	require.NoError(t, err)
	require.True(t, created)
	created, err = pgSQL.StoreThread(ctx, domain.Thread{CampaignID: campaignID, ContactID: "c_0", ContactName: "Other"})
	require.NoError(t, err)
	require.False(t, created)

	at := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, pgSQL.StoreMessage(ctx, domain.Message{
		CampaignID: campaignID, ContactID: "c_0", ID: "msg_1", Sender: domain.MessageSenderUser,
		Content: "hey", Timestamp: at, CreatedAt: at,
	}))
	require.NoError(t, pgSQL.UpdateLastMessage(ctx, campaignID, "c_0", "hey", at))

	thread, err := pgSQL.ThreadByID(ctx, campaignID, "c_0")
	require.NoError(t, err)
	require.Equal(t, "Unknown", thread.ContactName)
	require.Equal(t, "hey", thread.LastMessage)
	require.True(t, at.Equal(thread.LastMessageTime))

	stats, err := pgSQL.InboxStats(ctx, campaignID)
	require.NoError(t, err)
	require.Equal(t, storage.InboxStats{Threads: 1, Messages: 1}, stats)

	deleted, err := pgSQL.DeleteMessage(ctx, campaignID, "c_0", "msg_1")
	require.NoError(t, err)
	require.True(t, deleted)
	deleted, err = pgSQL.DeleteMessage(ctx, campaignID, "c_0", "msg_1")
	require.NoError(t, err)
	require.False(t, deleted)

	require.NoError(t, pgSQL.StoreMessage(ctx, domain.Message{
		CampaignID: campaignID, ContactID: "c_0", ID: "msg_2", Sender: domain.MessageSenderUser, Content: "again",
	}))

	stats, err = pgSQL.DeleteInbox(ctx, campaignID)
	require.NoError(t, err)
	require.Equal(t, storage.InboxStats{Threads: 1, Messages: 1}, stats)

	inbox, err = pgSQL.InboxByCampaign(ctx, campaignID)
	require.NoError(t, err)
	require.Nil(t, inbox)

	campaign, err := pgSQL.CampaignByID(ctx, userID, campaignID)
	require.NoError(t, err)
	require.NotNil(t, campaign)
}

func TestPgSQL_WriteBatch_Deletes(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	_, campaignID := seedCampaign(t, pgSQL)
	now := time.Now().UTC().Truncate(time.Millisecond)

	seed := func(contactID, id, content string, age time.Duration) domain.Message {
		return domain.Message{
			CampaignID: campaignID, ContactID: contactID, ID: id, Sender: domain.MessageSenderCampaign,
			Content: content, Timestamp: now.Add(-age), CreatedAt: now.Add(-age),
		}
	}
	var msgs []domain.Message
	for _, contactID := range []string{"111_0", "222_1", "333_2"} {
		msgs = append(msgs,
			seed(contactID, "msg_title", "Spring", 5*time.Second),
			seed(contactID, "msg_preview", "Half price", 4*time.Second),
			seed(contactID, "msg_audio", "🎙️ Voice message", 3*time.Second),
			seed(contactID, "msg_assets", "📎 1 file(s)", 2*time.Second),
		)
	}
	msgs = append(msgs, domain.Message{
		CampaignID: campaignID, ContactID: "222_1", ID: "msg_user", Sender: domain.MessageSenderUser,
		Content: "is it still on?", Timestamp: now, CreatedAt: now,
	})

	thread := func(contactID string, offset time.Duration, last string) domain.Thread {
		return domain.Thread{
			CampaignID: campaignID, ContactID: contactID, ContactName: contactID,
			LastMessage: last, LastMessageTime: now, SeedHash: 1, CreatedAt: now.Add(offset),
		}
	}
	require.NoError(t, pgSQL.WriteBatch(ctx, storage.Batch{
		CampaignID: campaignID,
		Threads: []domain.Thread{
			thread("111_0", 0, "📎 1 file(s)"),
			thread("222_1", time.Millisecond, "is it still on?"),
			thread("333_2", 2*time.Millisecond, "📎 1 file(s)"),
		},
		Messages: msgs,
	}))

	// the campaign lost its voice note and assets, and contact 333_2
	lastSeed := seed("", "msg_preview", "Half price", 4*time.Second)
	batch := storage.Batch{
		CampaignID:    campaignID,
		DeleteThreads: []string{"333_2"},
		DeleteMessages: []storage.MessageKey{
			{ContactID: "111_0", ID: "msg_audio"},
			{ContactID: "111_0", ID: "msg_assets"},
			{ContactID: "222_1", ID: "msg_audio"},
			{ContactID: "222_1", ID: "msg_assets"},
		},
		Messages: []domain.Message{
			seed("111_0", "msg_title", "Spring", 5*time.Second),
			seed("111_0", "msg_preview", "Half price", 4*time.Second),
			seed("222_1", "msg_title", "Spring", 5*time.Second),
			seed("222_1", "msg_preview", "Half price", 4*time.Second),
		},
		SeedHashes: map[string]uint64{"111_0": 2, "222_1": 2},
		LastSeed:   &lastSeed,
	}
	require.Equal(t, 11, batch.Ops())
	require.NoError(t, pgSQL.WriteBatch(ctx, batch))

	got, err := pgSQL.ThreadMessages(ctx, campaignID, "111_0")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "msg_title", got[0].ID)
	require.Equal(t, "msg_preview", got[1].ID)

	seeded, err := pgSQL.ThreadByID(ctx, campaignID, "111_0")
	require.NoError(t, err)
	require.Equal(t, "Half price", seeded.LastMessage)
	require.True(t, lastSeed.Timestamp.Equal(seeded.LastMessageTime))
	require.Equal(t, uint64(2), seeded.SeedHash)

	// a conversation keeps its own last message
	talking, err := pgSQL.ThreadByID(ctx, campaignID, "222_1")
	require.NoError(t, err)
	require.Equal(t, "is it still on?", talking.LastMessage)

	got, err = pgSQL.ThreadMessages(ctx, campaignID, "222_1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	removed, err := pgSQL.ThreadByID(ctx, campaignID, "333_2")
	require.NoError(t, err)
	require.Nil(t, removed)

	stats, err := pgSQL.InboxStats(ctx, campaignID)
	require.NoError(t, err)
	require.Equal(t, storage.InboxStats{Threads: 2, Messages: 5}, stats)
}
