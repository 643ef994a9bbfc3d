package postgres

import (
	"context"
	"fmt"
	"outreach/pkg/domain"
	"outreach/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	inboxesTable  = "inboxes"
	threadsTable  = "inbox_threads"
	messagesTable = "inbox_messages"
)

func excluded(cols ...string) goqu.Record {
	rec := make(goqu.Record, len(cols))
	for _, c := range cols {
		rec[c] = goqu.L("EXCLUDED." + c)
	}

	return rec
}

func (p *PgSQL) UpsertInbox(ctx context.Context, inbox domain.Inbox) error {
	rec := excluded("user_id", "total_contacts")
	rec["updated_at"] = goqu.L("CURRENT_TIMESTAMP")

	_, err := p.Builder.Insert(inboxesTable).
		Rows(PgInbox{
			CampaignID:    uuid.UUID(inbox.CampaignID),
			UserID:        uuid.UUID(inbox.UserID),
			TotalContacts: inbox.TotalContacts,
		}).
		OnConflict(goqu.DoUpdate("campaign_id", rec)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not upsert inbox in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) InboxByCampaign(ctx context.Context, campaignID domain.CampaignID) (*domain.Inbox, error) {
	var row PgInbox
	found, err := p.Builder.From(inboxesTable).
		Where(goqu.I("campaign_id").Eq(uuid.UUID(campaignID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch inbox: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ThreadByID(ctx context.Context, campaignID domain.CampaignID, contactID string) (*domain.Thread, error) {
	var row PgThread
	found, err := p.Builder.From(threadsTable).
		Where(
			goqu.I("campaign_id").Eq(uuid.UUID(campaignID)),
			goqu.I("contact_id").Eq(contactID),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch thread: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CampaignThreads(ctx context.Context, campaignID domain.CampaignID) ([]domain.Thread, error) {
	var rows []PgThread
	if err := p.Builder.From(threadsTable).
		Where(goqu.I("campaign_id").Eq(uuid.UUID(campaignID))).
		Order(goqu.I("created_at").Asc(), goqu.I("contact_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch campaign threads: %w", err)
	}

	return pgThreadsToDomain(rows), nil
}

func (p *PgSQL) StoreThread(ctx context.Context, thread domain.Thread) (bool, error) {
	var row PgThread
	row.FromDomain(thread)

	res, err := p.Builder.Insert(threadsTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not store thread in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) UpdateLastMessage(ctx context.Context,
	campaignID domain.CampaignID,
	contactID string,
	text string,
	at time.Time) error {
	_, err := p.Builder.Update(threadsTable).
		Set(goqu.Record{
			"last_message":      text,
			"last_message_time": at.UTC(),
		}).Where(
		goqu.I("campaign_id").Eq(uuid.UUID(campaignID)),
		goqu.I("contact_id").Eq(contactID),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update last message in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) ThreadMessages(ctx context.Context,
	campaignID domain.CampaignID,
	contactID string) ([]domain.Message, error) {
	var rows []PgMessage
	if err := p.Builder.From(messagesTable).
		Where(
			goqu.I("campaign_id").Eq(uuid.UUID(campaignID)),
			goqu.I("contact_id").Eq(contactID),
		).
		Order(goqu.I("created_at").Asc(), goqu.I("sent_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch thread messages: %w", err)
	}

	return pgMessagesToDomain(rows)
}

func (p *PgSQL) StoreMessage(ctx context.Context, message domain.Message) error {
	return p.upsertMessages(ctx, []domain.Message{message})
}

func (p *PgSQL) DeleteMessage(ctx context.Context,
	campaignID domain.CampaignID,
	contactID, messageID string) (bool, error) {
	res, err := p.Builder.Delete(messagesTable).
		Where(
			goqu.I("campaign_id").Eq(uuid.UUID(campaignID)),
			goqu.I("contact_id").Eq(contactID),
			goqu.I("id").Eq(messageID),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete message in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

// upsertThreads overwrites existing threads but keeps their created_at.
func (p *PgSQL) upsertThreads(ctx context.Context, threads []domain.Thread) error {
	if len(threads) == 0 {
		return nil
	}

	_, err := p.Builder.Insert(threadsTable).
		Rows(domainThreadsToPg(threads)).
		OnConflict(goqu.DoUpdate("campaign_id, contact_id", excluded(
			"contact_name",
			"contact_phone",
			"profile_pic",
			"last_message",
			"last_message_time",
			"unread_count",
			"seed_hash",
		))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not upsert threads in pg: %w", err)
	}

	return nil
}

// upsertMessages rewrites message content in place. created_at is kept so a
// rewritten message stays where it was in the thread.
func (p *PgSQL) upsertMessages(ctx context.Context, messages []domain.Message) error {
	if len(messages) == 0 {
		return nil
	}

	rows, err := domainMessagesToPg(messages)
	if err != nil {
		return err
	}

	_, err = p.Builder.Insert(messagesTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("campaign_id, contact_id, id", excluded(
			"sender",
			"type",
			"content",
			"audio_url",
			"assets",
			"sent_at",
		))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not upsert messages in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) deleteThreads(ctx context.Context, campaignID domain.CampaignID, contactIDs []string) error {
	if len(contactIDs) == 0 {
		return nil
	}

	if _, err := p.Builder.Delete(threadsTable).
		Where(
			goqu.I("campaign_id").Eq(uuid.UUID(campaignID)),
			goqu.I("contact_id").In(contactIDs),
		).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete threads in pg: %w", err)
	}

	return nil
}

// deleteMessages issues one statement per message ID; seed deletes share
// their IDs across all threads of a campaign.
func (p *PgSQL) deleteMessages(ctx context.Context, campaignID domain.CampaignID, keys []storage.MessageKey) error {
	byID := make(map[string][]string)
	for _, k := range keys {
		byID[k.ID] = append(byID[k.ID], k.ContactID)
	}

	for id, contactIDs := range byID {
		if _, err := p.Builder.Delete(messagesTable).
			Where(
				goqu.I("campaign_id").Eq(uuid.UUID(campaignID)),
				goqu.I("id").Eq(id),
				goqu.I("contact_id").In(contactIDs),
			).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not delete messages in pg: %w", err)
		}
	}

	return nil
}

// refreshLastSeed points threads that never left the seeded state at their
// newest seed message.
func (p *PgSQL) refreshLastSeed(ctx context.Context,
	campaignID domain.CampaignID,
	contactIDs []string,
	seed domain.Message) error {
	if len(contactIDs) == 0 {
		return nil
	}

	if _, err := p.Builder.Update(threadsTable).
		Set(goqu.Record{
			"last_message":      seed.Content,
			"last_message_time": seed.Timestamp.UTC(),
		}).
		Where(
			goqu.I("campaign_id").Eq(uuid.UUID(campaignID)),
			goqu.I("contact_id").In(contactIDs),
			goqu.L(`NOT EXISTS (SELECT 1 FROM `+messagesTable+` m
				WHERE m.campaign_id = `+threadsTable+`.campaign_id
				AND m.contact_id = `+threadsTable+`.contact_id
				AND m.sender <> ?)`, string(domain.MessageSenderCampaign)),
		).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not refresh last message in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) WriteBatch(ctx context.Context, batch storage.Batch) error {
	if batch.Empty() {
		return nil
	}

	return p.atomically(ctx, func(tx *PgSQL) error {
		if err := tx.deleteThreads(ctx, batch.CampaignID, batch.DeleteThreads); err != nil {
			return err
		}
		if err := tx.deleteMessages(ctx, batch.CampaignID, batch.DeleteMessages); err != nil {
			return err
		}
		if err := tx.upsertThreads(ctx, batch.Threads); err != nil {
			return err
		}
		if err := tx.upsertMessages(ctx, batch.Messages); err != nil {
			return err
		}

		reseeded := make([]string, 0, len(batch.SeedHashes))
		for contactID, hash := range batch.SeedHashes {
			if _, err := tx.Builder.Update(threadsTable).
				Set(goqu.Record{"seed_hash": int64(hash)}). //nolint: gosec
				Where(
					goqu.I("campaign_id").Eq(uuid.UUID(batch.CampaignID)),
					goqu.I("contact_id").Eq(contactID),
				).Executor().ExecContext(ctx); err != nil {
				return fmt.Errorf("could not update seed hash in pg: %w", err)
			}
			reseeded = append(reseeded, contactID)
		}

		if batch.LastSeed != nil {
			return tx.refreshLastSeed(ctx, batch.CampaignID, reseeded, *batch.LastSeed)
		}

		return nil
	})
}

func (p *PgSQL) InboxStats(ctx context.Context, campaignID domain.CampaignID) (storage.InboxStats, error) {
	threads, err := p.Builder.From(threadsTable).
		Where(goqu.I("campaign_id").Eq(uuid.UUID(campaignID))).
		CountContext(ctx)
	if err != nil {
		return storage.InboxStats{}, fmt.Errorf("could not count threads: %w", err)
	}

	messages, err := p.Builder.From(messagesTable).
		Where(goqu.I("campaign_id").Eq(uuid.UUID(campaignID))).
		CountContext(ctx)
	if err != nil {
		return storage.InboxStats{}, fmt.Errorf("could not count messages: %w", err)
	}

	return storage.InboxStats{Threads: threads, Messages: messages}, nil
}

// DeleteInbox removes threads (messages cascade) and the inbox metadata of a
// campaign. The campaign itself is kept.
func (p *PgSQL) DeleteInbox(ctx context.Context, campaignID domain.CampaignID) (storage.InboxStats, error) {
	var stats storage.InboxStats
	err := p.atomically(ctx, func(tx *PgSQL) error {
		messages, err := tx.Builder.From(messagesTable).
			Where(goqu.I("campaign_id").Eq(uuid.UUID(campaignID))).
			CountContext(ctx)
		if err != nil {
			return fmt.Errorf("could not count messages: %w", err)
		}

		res, err := tx.Builder.Delete(threadsTable).
			Where(goqu.I("campaign_id").Eq(uuid.UUID(campaignID))).
			Executor().ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("could not delete threads in pg: %w", err)
		}
		threads, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("could not read affected rows: %w", err)
		}

		if _, err := tx.Builder.Delete(inboxesTable).
			Where(goqu.I("campaign_id").Eq(uuid.UUID(campaignID))).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not delete inbox in pg: %w", err)
		}

		stats = storage.InboxStats{Threads: threads, Messages: messages}

		return nil
	})

	return stats, err
}
