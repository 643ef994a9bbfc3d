package inbox

import (
	"context"
	"fmt"
	"outreach/pkg/domain"
	"outreach/pkg/logger"
	"outreach/pkg/storage"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// eachCampaign runs fn for every campaign with at most Concurrency calls in
// flight. The first error cancels the remaining calls.
func (s *service) eachCampaign(ctx context.Context,
	campaigns []domain.Campaign,
	fn func(ctx context.Context, c *domain.Campaign) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.options.Concurrency)

	for i := range campaigns {
		c := &campaigns[i]
		g.Go(func() error {
			return fn(ctx, c)
		})
	}

	return g.Wait() //nolint: wrapcheck
}

func withContacts(campaigns []domain.Campaign) []domain.Campaign {
	out := campaigns[:0:0]
	for _, c := range campaigns {
		if len(c.ContactList()) > 0 {
			out = append(out, c)
		}
	}

	return out
}

// Migrate rebuilds the inbox of every launched campaign of the user that
// has contacts.
func (s *service) Migrate(ctx context.Context, userID domain.UserID) (MigrateResult, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("userID", userID))

	launched, err := s.storage.LaunchedCampaigns(ctx, userID)
	if err != nil {
		return MigrateResult{}, fmt.Errorf("could not get launched campaigns: %w", err)
	}

	var (
		mu  sync.Mutex
		res MigrateResult
	)
	err = s.eachCampaign(ctx, withContacts(launched), func(ctx context.Context, c *domain.Campaign) error {
		r, err := s.materialize(ctx, c, ModeRebuild)
		if err != nil {
			return fmt.Errorf("could not migrate campaign %s: %w", c.ID, err)
		}

		mu.Lock()
		res.MigratedCampaigns++
		res.TotalContacts += r.Contacts
		mu.Unlock()

		return nil
	})
	if err != nil {
		return res, err
	}

	logger.Info(ctx, "inbox migrated",
		zap.Int("campaigns", res.MigratedCampaigns),
		zap.Int("contacts", res.TotalContacts))

	return res, nil
}

// Backfill adds the threads missing from the inboxes of launched campaigns
// and re-seeds the existing ones. Every campaign with contacts counts as
// updated and every one of its contacts as added, so a second run reports
// the same totals while creating nothing.
func (s *service) Backfill(ctx context.Context, userID domain.UserID) (BackfillResult, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("userID", userID))

	launched, err := s.storage.LaunchedCampaigns(ctx, userID)
	if err != nil {
		return BackfillResult{}, fmt.Errorf("could not get launched campaigns: %w", err)
	}

	var (
		mu  sync.Mutex
		res BackfillResult
	)
	err = s.eachCampaign(ctx, withContacts(launched), func(ctx context.Context, c *domain.Campaign) error {
		r, err := s.materialize(ctx, c, ModeBackfill)
		if err != nil {
			return fmt.Errorf("could not backfill campaign %s: %w", c.ID, err)
		}

		mu.Lock()
		res.CampaignsUpdated++
		res.ContactsAdded += r.Contacts
		mu.Unlock()

		return nil
	})
	if err != nil {
		return res, err
	}

	logger.Info(ctx, "inbox backfilled",
		zap.Int("campaigns", res.CampaignsUpdated),
		zap.Int("contacts", res.ContactsAdded))

	return res, nil
}

// Cleanup deletes the inbox data of every campaign of the user. Campaigns
// themselves are kept and each one counts as cleaned, inbox or not.
func (s *service) Cleanup(ctx context.Context, userID domain.UserID) (CleanupResult, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("userID", userID))

	campaigns, err := s.storage.AllUserCampaigns(ctx, userID)
	if err != nil {
		return CleanupResult{}, fmt.Errorf("could not get user campaigns: %w", err)
	}

	var (
		mu  sync.Mutex
		res CleanupResult
	)
	err = s.eachCampaign(ctx, campaigns, func(ctx context.Context, c *domain.Campaign) error {
		stats, err := s.storage.DeleteInbox(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("could not delete inbox of campaign %s: %w", c.ID, err)
		}

		mu.Lock()
		res.DeletedCampaigns++
		res.DeletedContacts += stats.Threads
		res.DeletedMessages += stats.Messages
		mu.Unlock()

		return nil
	})
	if err != nil {
		return res, err
	}

	logger.Info(ctx, "inbox cleaned up",
		zap.Int("campaigns", res.DeletedCampaigns),
		zap.Int64("contacts", res.DeletedContacts),
		zap.Int64("messages", res.DeletedMessages))

	return res, nil
}

// Status reads the campaign and its inbox side by side.
func (s *service) Status(ctx context.Context, userID domain.UserID, campaignID domain.CampaignID) (*Status, error) {
	c, err := s.campaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	var (
		inbox   *domain.Inbox
		threads []domain.Thread
		stats   storage.InboxStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if inbox, err = s.storage.InboxByCampaign(gctx, campaignID); err != nil {
			return fmt.Errorf("could not get inbox: %w", err)
		}

		return nil
	})
	g.Go(func() error {
		var err error
		if threads, err = s.storage.CampaignThreads(gctx, campaignID); err != nil {
			return fmt.Errorf("could not get inbox threads: %w", err)
		}

		return nil
	})
	g.Go(func() error {
		var err error
		if stats, err = s.storage.InboxStats(gctx, campaignID); err != nil {
			return fmt.Errorf("could not get inbox stats: %w", err)
		}

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	if threads == nil {
		threads = []domain.Thread{}
	}

	return &Status{
		CampaignContactsInData: len(c.ContactList()),
		InboxExists:            inbox != nil || len(threads) > 0,
		ContactsInInbox:        len(threads),
		TotalMessagesInInbox:   stats.Messages,
		InboxContacts:          threads,
	}, nil
}
