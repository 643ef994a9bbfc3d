package inbox

import (
	"fmt"
	"outreach/pkg/domain"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Stable IDs of the messages every thread is seeded with.
const (
	SeedTitleID   = "msg_title"
	SeedPreviewID = "msg_preview"
	SeedAudioID   = "msg_audio"
	SeedAssetsID  = "msg_assets"
)

const (
	// UnknownContact names contacts without a name.
	UnknownContact = "Unknown"

	voiceMessageText = "🎙️ Voice message"
)

// IsSeedID reports whether id is one of the seed message IDs.
func IsSeedID(id string) bool {
	switch id {
	case SeedTitleID, SeedPreviewID, SeedAudioID, SeedAssetsID:
		return true
	}

	return false
}

// SeedMessages renders the campaign content as the opening messages of a
// thread, oldest first, timestamped a few seconds before now.
func SeedMessages(c *domain.Campaign, now time.Time) []domain.Message {
	msgs := make([]domain.Message, 0, 4)
	add := func(m domain.Message, age time.Duration) {
		m.Sender = domain.MessageSenderCampaign
		if m.Type == "" {
			m.Type = domain.MessageTypeText
		}
		m.Timestamp = now.Add(-age)
		m.CreatedAt = m.Timestamp
		msgs = append(msgs, m)
	}

	if title := strings.TrimSpace(c.Title); title != "" {
		add(domain.Message{ID: SeedTitleID, Content: title}, 5*time.Second)
	}
	if preview := strings.TrimSpace(c.PreviewSource()); preview != "" {
		add(domain.Message{ID: SeedPreviewID, Content: preview}, 4*time.Second)
	}
	if c.AudioURLs.Voice != "" {
		add(domain.Message{
			ID:       SeedAudioID,
			Type:     domain.MessageTypeAudio,
			Content:  voiceMessageText,
			AudioURL: c.AudioURLs.Voice,
		}, 3*time.Second)
	}
	if n := len(c.Assets); n > 0 {
		add(domain.Message{
			ID:      SeedAssetsID,
			Content: fmt.Sprintf("📎 %d file(s)", n),
			Assets:  c.Assets,
		}, 2*time.Second)
	}

	return msgs
}

// SeedHash fingerprints the content of seed messages. Timestamps are left
// out so re-rendering unchanged content gives the same hash.
func SeedHash(msgs []domain.Message) uint64 {
	d := xxhash.New()
	write := func(s string) {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}

	for _, m := range msgs {
		write(m.ID)
		write(string(m.Sender))
		write(string(m.Type))
		write(m.Content)
		write(m.AudioURL)
		for _, a := range m.Assets {
			write(a.URL)
			write(string(a.Type))
		}
		write("")
	}

	return d.Sum64()
}

func pathSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '+' || r == '-' || r == '.' || r == '_':
			return r
		}

		return '_'
	}, s)
}

// ContactID derives the thread ID of the contact at index in the campaign
// contact list. The index keeps IDs unique when phones repeat.
func ContactID(contact domain.Contact, index int) string {
	base := contact.Phone
	if base == "" {
		base = contact.ID
	}
	if base == "" {
		base = contact.Name
	}
	if base == "" {
		base = "contact"
	}

	return pathSafe(base) + "_" + strconv.Itoa(index)
}

// NewThread builds the thread of a contact seeded with seeds.
func NewThread(c *domain.Campaign, contact domain.Contact, index int, seeds []domain.Message) domain.Thread {
	name := strings.TrimSpace(contact.Name)
	if name == "" {
		name = UnknownContact
	}

	t := domain.Thread{
		CampaignID:   c.ID,
		ContactID:    ContactID(contact, index),
		ContactName:  name,
		ContactPhone: contact.Phone,
		ProfilePic:   contact.ProfilePic,
		SeedHash:     SeedHash(seeds),
	}
	if n := len(seeds); n > 0 {
		last := seeds[n-1]
		t.LastMessage = last.Content
		t.LastMessageTime = last.Timestamp
		// threads of one fan-out share a clock; the offset keeps list order
		t.CreatedAt = seeds[0].Timestamp.Add(time.Duration(index) * time.Microsecond)
	}

	return t
}
