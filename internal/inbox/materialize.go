package inbox

import (
	"context"
	"fmt"
	"outreach/pkg/domain"
	"outreach/pkg/logger"
	"outreach/pkg/serrors"
	"outreach/pkg/storage"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// contactWrites are the inbox writes of one contact.
type contactWrites struct {
	contactID string
	// drop removes the thread; nothing else is written.
	drop     bool
	thread   *domain.Thread
	stale    []string
	messages []domain.Message
	seedHash *uint64
}

func (w *contactWrites) ops() int {
	if w.drop {
		return 1
	}

	n := len(w.stale) + len(w.messages)
	if w.thread != nil {
		n++
	}
	if w.seedHash != nil {
		n++
	}

	return n
}

// batcher groups inbox writes so that no transaction exceeds limit operations.
type batcher struct {
	limit   int
	batch   storage.Batch
	flushed int
	write   func(ctx context.Context, b storage.Batch) error
}

func (b *batcher) reset() {
	b.batch = storage.Batch{CampaignID: b.batch.CampaignID, LastSeed: b.batch.LastSeed}
}

// add queues the writes of one contact, flushing first when they would not
// fit. A contact never spans two batches.
func (b *batcher) add(ctx context.Context, w contactWrites) error {
	ops := w.ops()
	if ops == 0 {
		return nil
	}

	if !b.batch.Empty() && b.batch.Ops()+ops > b.limit {
		if err := b.flush(ctx); err != nil {
			return err
		}
	}

	if w.drop {
		b.batch.DeleteThreads = append(b.batch.DeleteThreads, w.contactID)

		return nil
	}
	for _, id := range w.stale {
		b.batch.DeleteMessages = append(b.batch.DeleteMessages, storage.MessageKey{ContactID: w.contactID, ID: id})
	}
	if w.thread != nil {
		b.batch.Threads = append(b.batch.Threads, *w.thread)
	}
	b.batch.Messages = append(b.batch.Messages, w.messages...)
	if w.seedHash != nil {
		if b.batch.SeedHashes == nil {
			b.batch.SeedHashes = make(map[string]uint64)
		}
		b.batch.SeedHashes[w.contactID] = *w.seedHash
	}

	return nil
}

func (b *batcher) flush(ctx context.Context) error {
	if b.batch.Empty() {
		return nil
	}
	if err := b.write(ctx, b.batch); err != nil {
		return fmt.Errorf("could not write inbox batch %d: %w", b.flushed+1, err)
	}
	b.flushed++
	b.reset()

	return nil
}

func (s *service) Materialize(ctx context.Context,
	userID domain.UserID,
	campaignID domain.CampaignID,
	mode Mode) (MaterializeResult, error) {
	if !mode.Valid() {
		return MaterializeResult{}, serrors.With(serrors.ErrBadRequest, "unknown materialize mode %q", mode)
	}

	c, err := s.campaign(ctx, userID, campaignID)
	if err != nil {
		return MaterializeResult{}, err
	}

	return s.materialize(ctx, c, mode)
}

func threadMessages(c *domain.Campaign, contactID string, seeds []domain.Message) []domain.Message {
	msgs := make([]domain.Message, len(seeds))
	for i, m := range seeds {
		m.CampaignID = c.ID
		m.ContactID = contactID
		msgs[i] = m
	}

	return msgs
}

// staleSeedIDs lists the seed IDs the campaign no longer renders.
func staleSeedIDs(seeds []domain.Message) []string {
	current := make(map[string]bool, len(seeds))
	for _, m := range seeds {
		current[m.ID] = true
	}

	var stale []string
	for _, id := range []string{SeedTitleID, SeedPreviewID, SeedAudioID, SeedAssetsID} {
		if !current[id] {
			stale = append(stale, id)
		}
	}

	return stale
}

func (s *service) materialize(ctx context.Context, c *domain.Campaign, mode Mode) (res MaterializeResult, err error) {
	start := time.Now()
	ctx = logger.WithFields(ctx, zap.Stringer("campaignID", c.ID), zap.String("mode", string(mode)))
	ctx, span := s.telemetry.tracer.Start(ctx, "inbox.materialize", trace.WithAttributes(
		attribute.String("campaign.id", c.ID.String()),
		attribute.String("inbox.mode", string(mode)),
	))
	defer func() {
		attrs := metric.WithAttributes(attribute.String("mode", string(mode)))
		s.telemetry.duration.Record(ctx, time.Since(start).Seconds(), attrs)
		span.SetAttributes(
			attribute.Int("inbox.contacts", res.Contacts),
			attribute.Int("inbox.threads_created", res.ThreadsCreated),
			attribute.Int("inbox.threads_updated", res.ThreadsUpdated),
			attribute.Int("inbox.threads_deleted", res.ThreadsDeleted),
			attribute.Int("inbox.batches", res.Batches),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	existing, err := s.storage.CampaignThreads(ctx, c.ID)
	if err != nil {
		return res, fmt.Errorf("could not get campaign threads: %w", err)
	}
	stored := make(map[string]domain.Thread, len(existing))
	for _, t := range existing {
		stored[t.ContactID] = t
	}

	seeds := SeedMessages(c, s.now())
	seedHash := SeedHash(seeds)
	stale := staleSeedIDs(seeds)
	contacts := c.ContactList()
	res.Contacts = len(contacts)

	var threadsWritten, messagesWritten int64
	b := &batcher{
		limit: s.options.BatchLimit,
		batch: storage.Batch{CampaignID: c.ID},
		write: func(ctx context.Context, batch storage.Batch) error {
			if err := s.storage.WriteBatch(ctx, batch); err != nil {
				return err //nolint: wrapcheck
			}
			threadsWritten += int64(len(batch.Threads))
			messagesWritten += int64(len(batch.Messages))
			s.telemetry.batches.Add(ctx, 1)

			return nil
		},
	}
	if n := len(seeds); n > 0 {
		b.batch.LastSeed = &seeds[n-1]
	}

	listed := make(map[string]bool, len(contacts))
	for i, contact := range contacts {
		thread := NewThread(c, contact, i, seeds)
		if thread.ProfilePic == "" {
			thread.ProfilePic = s.avatar(thread.ContactID)
		}
		listed[thread.ContactID] = true
		old, exists := stored[thread.ContactID]
		w := contactWrites{
			contactID: thread.ContactID,
			messages:  threadMessages(c, thread.ContactID, seeds),
		}

		switch {
		case !exists:
			w.thread = &thread
			res.ThreadsCreated++
		case mode == ModeLaunch || mode == ModeRebuild:
			w.thread = &thread
			w.stale = stale
			res.ThreadsUpdated++
		case mode == ModeResync && old.SeedHash == seedHash:
			continue
		default:
			w.stale = stale
			w.seedHash = &seedHash
			res.ThreadsUpdated++
		}
		if err := b.add(ctx, w); err != nil {
			return res, err
		}
	}

	// backfill only adds; the other modes mirror the current contact list
	if mode != ModeBackfill {
		for _, t := range existing {
			if listed[t.ContactID] {
				continue
			}
			if err := b.add(ctx, contactWrites{contactID: t.ContactID, drop: true}); err != nil {
				return res, err
			}
			res.ThreadsDeleted++
		}
	}
	if err := b.flush(ctx); err != nil {
		return res, err
	}
	res.Batches = b.flushed

	modeAttr := metric.WithAttributes(attribute.String("mode", string(mode)))
	s.telemetry.threads.Add(ctx, threadsWritten, modeAttr)
	s.telemetry.messages.Add(ctx, messagesWritten, modeAttr)

	if err := s.storage.UpsertInbox(ctx, domain.Inbox{
		CampaignID:    c.ID,
		UserID:        c.UserID,
		TotalContacts: len(contacts),
	}); err != nil {
		return res, fmt.Errorf("could not upsert inbox: %w", err)
	}

	logger.Info(ctx, "campaign inbox materialized",
		zap.Int("contacts", res.Contacts),
		zap.Int("threadsCreated", res.ThreadsCreated),
		zap.Int("threadsUpdated", res.ThreadsUpdated),
		zap.Int("threadsDeleted", res.ThreadsDeleted),
		zap.Int("batches", res.Batches))

	return res, nil
}
