package inbox

import (
	"context"
	"fmt"
	"outreach/pkg/domain"
	"outreach/pkg/logger"
	"outreach/pkg/serrors"
	"outreach/pkg/storage"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// Overview lists the launched campaigns of the user, most recently launched
// first, with the contacts derived from each campaign's contact list.
func (s *service) Overview(ctx context.Context, userID domain.UserID) ([]CampaignOverview, error) {
	launched, err := s.storage.LaunchedCampaigns(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get launched campaigns: %w", err)
	}

	out := make([]CampaignOverview, 0, len(launched))
	for _, c := range launched {
		list := c.ContactList()
		contacts := make([]domain.Contact, 0, len(list))
		for i, contact := range list {
			contact.ID = ContactID(contact, i)
			if strings.TrimSpace(contact.Name) == "" {
				contact.Name = UnknownContact
			}
			if contact.ProfilePic == "" {
				contact.ProfilePic = s.avatar(contact.ID)
			}
			contacts = append(contacts, contact)
		}
		out = append(out, CampaignOverview{Campaign: c, Contacts: contacts})
	}
	slices.SortStableFunc(out, func(a, b CampaignOverview) int {
		return launchTime(&b.Campaign).Compare(launchTime(&a.Campaign))
	})

	return out, nil
}

func launchTime(c *domain.Campaign) time.Time {
	if c.LaunchedAt != nil {
		return *c.LaunchedAt
	}

	return c.CreatedAt
}

// Contacts lists the threads of a campaign. Before the first fan-out the
// threads are derived from the campaign without being stored.
func (s *service) Contacts(ctx context.Context,
	userID domain.UserID,
	campaignID domain.CampaignID) ([]domain.Thread, error) {
	c, err := s.campaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	threads, err := s.storage.CampaignThreads(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("could not get campaign threads: %w", err)
	}
	if len(threads) > 0 {
		return threads, nil
	}

	seeds := SeedMessages(c, s.now())
	list := c.ContactList()
	threads = make([]domain.Thread, 0, len(list))
	for i, contact := range list {
		t := NewThread(c, contact, i, seeds)
		if t.ProfilePic == "" {
			t.ProfilePic = s.avatar(t.ContactID)
		}
		threads = append(threads, t)
	}

	return threads, nil
}

// Messages returns the conversation of a thread. Threads that were never
// materialized, or were written before seeding existed, get the seed
// messages generated on the fly.
func (s *service) Messages(ctx context.Context,
	userID domain.UserID,
	campaignID domain.CampaignID,
	contactID string) ([]domain.Message, error) {
	c, err := s.campaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	msgs, err := s.storage.ThreadMessages(ctx, campaignID, contactID)
	if err != nil {
		return nil, fmt.Errorf("could not get thread messages: %w", err)
	}

	hasSeeds := false
	for _, m := range msgs {
		if IsSeedID(m.ID) {
			hasSeeds = true

			break
		}
	}
	if hasSeeds {
		return msgs, nil
	}

	seeds := threadMessages(c, contactID, SeedMessages(c, s.now()))
	if len(msgs) > 0 && len(seeds) > 0 && msgs[0].Timestamp.Before(seeds[0].Timestamp) {
		// keep seeds ahead of stored messages, whatever their age
		base := msgs[0].Timestamp
		for i := range seeds {
			seeds[i].Timestamp = base.Add(time.Duration(i-len(seeds)) * time.Second)
			seeds[i].CreatedAt = seeds[i].Timestamp
		}
	}

	return append(seeds, msgs...), nil
}

func messageID(prefix string, at time.Time) string {
	return prefix + strconv.FormatInt(at.UnixMilli(), 10)
}

func preview(m domain.Message) string {
	switch {
	case m.Content != "":
		return m.Content
	case m.AudioURL != "":
		return voiceMessageText
	case len(m.Assets) > 0:
		return fmt.Sprintf("📎 %d file(s)", len(m.Assets))
	}

	return ""
}

// ensureThread creates an unnamed thread for contactID when it does not exist.
func ensureThread(ctx context.Context, tx storage.AllStorage, campaignID domain.CampaignID, contactID string) error {
	if _, err := tx.StoreThread(ctx, domain.Thread{
		CampaignID:  campaignID,
		ContactID:   contactID,
		ContactName: UnknownContact,
	}); err != nil {
		return fmt.Errorf("could not store thread: %w", err)
	}

	return nil
}

// Send posts a user message to a thread and schedules the automatic reply.
func (s *service) Send(ctx context.Context,
	userID domain.UserID,
	campaignID domain.CampaignID,
	contactID string,
	text string) (*domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "message text is required")
	}
	if _, err := s.campaign(ctx, userID, campaignID); err != nil {
		return nil, err
	}

	now := s.now()
	msg := domain.Message{
		CampaignID: campaignID,
		ContactID:  contactID,
		ID:         messageID("msg_", now),
		Sender:     domain.MessageSenderUser,
		Type:       domain.MessageTypeText,
		Content:    text,
		Timestamp:  now,
		CreatedAt:  now,
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := ensureThread(ctx, tx, campaignID, contactID); err != nil {
			return err
		}
		if err := tx.StoreMessage(ctx, msg); err != nil {
			return fmt.Errorf("could not store message: %w", err)
		}
		if err := tx.UpdateLastMessage(ctx, campaignID, contactID, text, now); err != nil {
			return fmt.Errorf("could not update last message: %w", err)
		}

		if _, err := tx.AddJob(ctx, AutoReplyArgs{
			UserID:     userID,
			CampaignID: campaignID,
			ContactID:  contactID,
		}, &river.InsertOpts{
			MaxAttempts: s.options.MaxAttempts,
			ScheduledAt: now.Add(s.options.AutoReplyDelay),
		}); err != nil {
			return fmt.Errorf("could not add auto reply job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not send message: %w", err)
	}

	return &msg, nil
}

// AutoReply posts the automatic answer to a thread. A thread that is gone,
// for example because its campaign was deleted, is a NOT_FOUND error.
func (s *service) AutoReply(ctx context.Context, args AutoReplyArgs) (*domain.Message, error) {
	thread, err := s.storage.ThreadByID(ctx, args.CampaignID, args.ContactID)
	if err != nil {
		return nil, fmt.Errorf("could not get thread: %w", err)
	}
	if thread == nil {
		return nil, serrors.With(serrors.ErrNotFound, "thread not found")
	}

	now := s.now()
	msg := domain.Message{
		CampaignID: args.CampaignID,
		ContactID:  args.ContactID,
		ID:         messageID("ai_", now),
		Sender:     domain.MessageSenderAI,
		Type:       domain.MessageTypeText,
		Content:    s.options.AutoReplyText,
		Timestamp:  now,
		CreatedAt:  now,
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.StoreMessage(ctx, msg); err != nil {
			return fmt.Errorf("could not store message: %w", err)
		}
		if err := tx.UpdateLastMessage(ctx, args.CampaignID, args.ContactID, msg.Content, now); err != nil {
			return fmt.Errorf("could not update last message: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not post auto reply: %w", err)
	}

	logger.Debug(ctx, "auto reply posted", zap.String("contactID", args.ContactID))

	return &msg, nil
}

// SaveMessage stores a message as given, filling the ID, sender, type and
// timestamps when unset.
func (s *service) SaveMessage(ctx context.Context,
	userID domain.UserID,
	campaignID domain.CampaignID,
	contactID string,
	message domain.Message) (*domain.Message, error) {
	message.Content = strings.TrimSpace(message.Content)
	if message.Content == "" && message.AudioURL == "" && len(message.Assets) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "message has no content")
	}
	switch message.Sender {
	case "":
		message.Sender = domain.MessageSenderUser
	case domain.MessageSenderUser, domain.MessageSenderAI, domain.MessageSenderCampaign:
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown sender %q", message.Sender)
	}
	switch message.Type {
	case "":
		message.Type = domain.MessageTypeText
		if message.AudioURL != "" {
			message.Type = domain.MessageTypeAudio
		}
	case domain.MessageTypeText, domain.MessageTypeAudio:
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown message type %q", message.Type)
	}

	if _, err := s.campaign(ctx, userID, campaignID); err != nil {
		return nil, err
	}

	now := s.now()
	message.CampaignID = campaignID
	message.ContactID = contactID
	if message.ID == "" {
		message.ID = messageID("msg_", now)
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = now
	}
	message.CreatedAt = now

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := ensureThread(ctx, tx, campaignID, contactID); err != nil {
			return err
		}
		if err := tx.StoreMessage(ctx, message); err != nil {
			return fmt.Errorf("could not store message: %w", err)
		}
		if err := tx.UpdateLastMessage(ctx, campaignID, contactID, preview(message), message.Timestamp); err != nil {
			return fmt.Errorf("could not update last message: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not save message: %w", err)
	}

	return &message, nil
}

func (s *service) DeleteMessage(ctx context.Context,
	userID domain.UserID,
	campaignID domain.CampaignID,
	contactID string,
	messageID string) error {
	if _, err := s.campaign(ctx, userID, campaignID); err != nil {
		return err
	}

	deleted, err := s.storage.DeleteMessage(ctx, campaignID, contactID, messageID)
	if err != nil {
		return fmt.Errorf("could not delete message: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "message not found")
	}

	return nil
}
