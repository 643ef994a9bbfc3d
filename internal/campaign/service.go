// Package campaign implements authoring of outreach campaigns: editing,
// contact extraction, AI descriptions and the launch that hands a campaign
// over to the inbox fan-out.
package campaign

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"outreach/internal/config"
	"outreach/internal/inbox"
	"outreach/pkg/cdn"
	"outreach/pkg/contacts"
	"outreach/pkg/domain"
	"outreach/pkg/llm"
	"outreach/pkg/logger"
	"outreach/pkg/serrors"
	"outreach/pkg/storage"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Options configure job insertion of the campaign service.
type Options struct {
	// MaxAttempts is the retry budget of the fan-out jobs queued by launches and updates.
	MaxAttempts int
	// LaunchUniquePeriod deduplicates repeated launches of a campaign.
	LaunchUniquePeriod time.Duration
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:        cfg.Worker.MaxAttempts,
		LaunchUniquePeriod: cfg.Campaign.LaunchUniquePeriod,
	}
}

type service struct {
	options Options
	storage storage.Storage
	files   cdn.Fetcher
	llm     llm.Client
	now     func() time.Time
}

// New creates the campaign service.
func New(storage storage.Storage, files cdn.Fetcher, llm llm.Client, options Options) Service {
	return &service{
		options: options,
		storage: storage,
		files:   files,
		llm:     llm,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func notFound() error { return serrors.With(serrors.ErrNotFound, "campaign not found") }

func (s *service) Create(ctx context.Context, userID domain.UserID, draft domain.Campaign) (*domain.Campaign, error) {
	draft.ID = domain.CampaignID{}
	draft.UserID = userID
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Status = domain.CampaignStatusDraft
	draft.LaunchedAt = nil

	c, err := s.storage.StoreCampaign(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("could not create campaign: %w", err)
	}

	return c, nil
}

func (s *service) Get(ctx context.Context, userID domain.UserID, id domain.CampaignID) (*domain.Campaign, error) {
	c, err := s.storage.CampaignByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get campaign: %w", err)
	}
	if c == nil {
		return nil, notFound()
	}

	return c, nil
}

// List pages through the user's campaigns. The cursor is opaque to callers;
// it is the nextCursor returned by a previous call.
func (s *service) List(ctx context.Context,
	userID domain.UserID,
	status domain.CampaignStatus,
	cursor string,
	limit uint) ([]domain.Campaign, string, error) {
	switch status {
	case "", domain.CampaignStatusDraft, domain.CampaignStatusLaunched:
	default:
		return nil, "", serrors.With(serrors.ErrBadRequest, "invalid status %q", status)
	}

	after, err := ParseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	switch {
	case limit == 0:
		limit = defaultPageLimit
	case limit > maxPageLimit:
		limit = maxPageLimit
	}

	page, err := s.storage.UserCampaigns(ctx, userID, status, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not list campaigns: %w", err)
	}

	return page.Campaigns, FormatCursor(page.NextCursor), nil
}

func (s *service) Delete(ctx context.Context, userID domain.UserID, id domain.CampaignID) error {
	c, err := s.storage.DeleteCampaign(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete campaign: %w", err)
	}
	if c == nil {
		return notFound()
	}

	// queued fan-outs of the campaign cancel themselves once it is gone
	logger.Info(ctx, "campaign deleted", zap.Stringer("campaignID", id))

	return nil
}

func updatePatch(c *domain.Campaign, u Update) (*patch, error) {
	p := newPatch()
	if u.Title != nil {
		p.set("title", strings.TrimSpace(*u.Title))
	}
	if u.Description != nil {
		desc := c.Description
		desc.Original = *u.Description
		p.set("description", desc)
	}
	if u.PreviewText != nil {
		p.set("previewText", *u.PreviewText)
	}
	if u.ToneOfVoice != nil {
		p.set("toneOfVoice", *u.ToneOfVoice)
	}
	if u.VoiceTranscript != nil {
		content := c.ChannelContent
		content.Voice.Transcript = *u.VoiceTranscript
		p.set("channelContent", content)
	}
	if u.Channels != nil {
		p.set("channels", *u.Channels)
	}
	if u.Assets != nil {
		p.set("assets", *u.Assets)
	}
	if u.AudioURLs != nil {
		p.set("audioUrls", *u.AudioURLs)
	}
	if u.Onboarding != nil {
		p.set("onboarding", *u.Onboarding)
	}
	if u.Contacts != nil {
		p.set("contacts", *u.Contacts).set("contactCount", len(*u.Contacts))
	}

	switch {
	case u.ContactsFileAction == ContactsFileRemove:
		if u.ContactsFile != nil {
			return nil, serrors.With(serrors.ErrBadRequest, "contactsFile cannot be set while removing it")
		}
		p.null("contactsFile").null("contactsSummary").null("contacts").set("contactCount", 0)
	case u.ContactsFileAction != "":
		return nil, serrors.With(serrors.ErrBadRequest, "unknown contactsFileAction %q", u.ContactsFileAction)
	case u.ContactsFile != nil:
		if strings.TrimSpace(u.ContactsFile.URL) == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "contactsFile.url is required")
		}
		// contacts of the previous file are stale until extracted again
		p.set("contactsFile", *u.ContactsFile).null("contactsSummary")
	}

	return p, nil
}

// Update merges the set fields into the campaign. Launched campaigns get a
// resync fan-out queued in the same transaction.
func (s *service) Update(ctx context.Context,
	userID domain.UserID,
	id domain.CampaignID,
	update Update) (*domain.Campaign, error) {
	var updated *domain.Campaign
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		c, err := tx.CampaignByID(ctx, userID, id)
		if err != nil {
			return fmt.Errorf("could not get campaign: %w", err)
		}
		if c == nil {
			return notFound()
		}

		p, err := updatePatch(c, update)
		if err != nil {
			return err
		}
		if p.empty() {
			return serrors.With(serrors.ErrBadRequest, "nothing to update")
		}

		updated, err = s.merge(ctx, tx, userID, id, p)

		return err
	}); err != nil {
		return nil, fmt.Errorf("could not update campaign: %w", err)
	}

	return updated, nil
}

// merge applies p and queues a resync when the campaign is already in the inbox.
func (s *service) merge(ctx context.Context,
	tx storage.AllStorage,
	userID domain.UserID,
	id domain.CampaignID,
	p *patch) (*domain.Campaign, error) {
	doc, err := p.bytes()
	if err != nil {
		return nil, err
	}

	updated, err := tx.MergeCampaign(ctx, userID, id, doc)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidPatch) {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid campaign update")
		}

		return nil, fmt.Errorf("could not merge campaign: %w", err)
	}
	if updated == nil {
		return nil, notFound()
	}

	if updated.IsLaunched() {
		if _, err := tx.AddJob(ctx,
			inbox.NewFanOutArgs(userID, id, inbox.ModeResync, s.options.MaxAttempts, 0), nil); err != nil {
			return nil, fmt.Errorf("could not queue inbox resync: %w", err)
		}
	}

	return updated, nil
}

func (s *service) ExtractContacts(ctx context.Context,
	userID domain.UserID,
	id domain.CampaignID) ([]domain.Contact, error) {
	c, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if c.ContactsFile == nil || strings.TrimSpace(c.ContactsFile.URL) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "campaign has no contacts file")
	}

	body, err := s.files.Fetch(ctx, c.ContactsFile.URL)
	if err != nil {
		return nil, fmt.Errorf("could not download contacts file: %w", err)
	}

	rows, err := contacts.Parse(c.ContactsFile.URL, bytes.NewReader(body))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not parse contacts file")
	}

	list := contacts.Extract(rows)
	if len(list) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "no phone numbers found in contacts file")
	}

	p := newPatch().
		set("contactsSummary", domain.ContactsSummary{Count: len(list), Items: list}).
		set("contactCount", len(list))
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		_, err := s.merge(ctx, tx, userID, id, p)

		return err
	}); err != nil {
		return nil, fmt.Errorf("could not save contacts: %w", err)
	}

	logger.Info(ctx, "contacts extracted",
		zap.Stringer("campaignID", id),
		zap.Int("rows", len(rows)),
		zap.Int("contacts", len(list)))

	return list, nil
}

func (s *service) GenerateDescription(ctx context.Context,
	userID domain.UserID,
	id domain.CampaignID,
	input llm.DescriptionInput) (string, error) {
	c, err := s.Get(ctx, userID, id)
	if err != nil {
		return "", err
	}

	text, err := s.llm.Generate(ctx, llm.DescriptionPrompt(c, input))
	if err != nil {
		return "", fmt.Errorf("could not generate description: %w", err)
	}

	desc := c.Description
	desc.AIEnhanced = text
	p := newPatch().
		set("aiDescription", text).
		set("previewText", text).
		set("description", desc)
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		_, err := s.merge(ctx, tx, userID, id, p)

		return err
	}); err != nil {
		return "", fmt.Errorf("could not save description: %w", err)
	}

	return text, nil
}

func (s *service) Details(ctx context.Context, userID domain.UserID, id domain.CampaignID) (*Details, error) {
	c, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	d := &Details{
		ID:          c.ID,
		Title:       c.Title,
		PreviewText: c.DetailsPreview(),
		Assets:      c.Assets,
	}
	d.AudioURLs.Voice = c.AudioURLs.Voice
	d.AudioURLs.Calls = c.AudioURLs.Calls
	if d.Assets == nil {
		d.Assets = []domain.Asset{}
	}

	return d, nil
}

// Launch marks the campaign launched, records the inbox metadata and queues
// the fan-out, all in one transaction. A launch repeated within
// LaunchUniquePeriod does not queue a second fan-out.
func (s *service) Launch(ctx context.Context, userID domain.UserID, id domain.CampaignID) (*domain.Campaign, error) {
	var launched *domain.Campaign
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		c, err := tx.CampaignByID(ctx, userID, id)
		if err != nil {
			return fmt.Errorf("could not get campaign: %w", err)
		}
		if c == nil {
			return notFound()
		}

		list := c.ContactList()
		if len(list) == 0 {
			return serrors.With(serrors.ErrBadRequest, "campaign has no contacts to launch")
		}

		doc, err := newPatch().
			set("status", domain.CampaignStatusLaunched).
			set("launchedAt", s.now()).
			bytes()
		if err != nil {
			return err
		}

		launched, err = tx.MergeCampaign(ctx, userID, id, doc)
		if err != nil {
			return fmt.Errorf("could not mark campaign launched: %w", err)
		}
		if launched == nil {
			return notFound()
		}

		if err := tx.UpsertInbox(ctx, domain.Inbox{
			CampaignID:    id,
			UserID:        userID,
			TotalContacts: len(list),
		}); err != nil {
			return fmt.Errorf("could not create inbox: %w", err)
		}

		added, err := tx.AddJob(ctx, inbox.NewFanOutArgs(userID, id, inbox.ModeLaunch,
			s.options.MaxAttempts, s.options.LaunchUniquePeriod), nil)
		if err != nil {
			return fmt.Errorf("could not queue inbox fan-out: %w", err)
		}
		if !added {
			logger.Debug(ctx, "fan-out already queued", zap.Stringer("campaignID", id))
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not launch campaign: %w", err)
	}

	logger.Info(ctx, "campaign launched", zap.Stringer("campaignID", id))

	return launched, nil
}
