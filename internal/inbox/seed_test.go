package inbox_test

import (
	"outreach/internal/inbox"
	"outreach/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fullCampaign() domain.Campaign {
	return domain.Campaign{
		Title:       "Spring sale",
		Description: domain.Description{Original: "20% off", AIEnhanced: "Save 20% this spring"},
		AudioURLs:   domain.AudioURLs{Voice: "https://cdn.example.com/voice.mp3"},
		Assets: []domain.Asset{
			{URL: "https://cdn.example.com/a.png", Type: domain.AssetTypeImage},
			{URL: "https://cdn.example.com/b.mp4", Type: domain.AssetTypeVideo},
		},
	}
}

func TestSeedMessages_OrderAndContent(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := fullCampaign()

	msgs := inbox.SeedMessages(&c, now)
	require.Len(t, msgs, 4)

	ids := make([]string, len(msgs))
	for i, m := range msgs {
		ids[i] = m.ID
		require.Equal(t, domain.MessageSenderCampaign, m.Sender)
		require.Equal(t, m.Timestamp, m.CreatedAt)
	}
	require.Equal(t, []string{inbox.SeedTitleID, inbox.SeedPreviewID, inbox.SeedAudioID, inbox.SeedAssetsID}, ids)

	require.Equal(t, now.Add(-5*time.Second), msgs[0].Timestamp)
	require.Equal(t, now.Add(-2*time.Second), msgs[3].Timestamp)
	require.Equal(t, "Save 20% this spring", msgs[1].Content)
	require.Equal(t, domain.MessageTypeAudio, msgs[2].Type)
	require.Equal(t, "🎙️ Voice message", msgs[2].Content)
	require.Equal(t, "https://cdn.example.com/voice.mp3", msgs[2].AudioURL)
	require.Equal(t, "📎 2 file(s)", msgs[3].Content)
	require.Len(t, msgs[3].Assets, 2)
}

func TestSeedMessages_OptionalParts(t *testing.T) {
	c := domain.Campaign{Title: "  ", PreviewText: "Only preview"}

	msgs := inbox.SeedMessages(&c, time.Now())
	require.Len(t, msgs, 1)
	require.Equal(t, inbox.SeedPreviewID, msgs[0].ID)

	require.Empty(t, inbox.SeedMessages(&domain.Campaign{}, time.Now()))
}

func TestSeedHash(t *testing.T) {
	c := fullCampaign()
	a := inbox.SeedHash(inbox.SeedMessages(&c, time.Now()))
	b := inbox.SeedHash(inbox.SeedMessages(&c, time.Now().Add(time.Hour)))
	require.Equal(t, a, b, "timestamps must not change the hash")

	c.Assets = c.Assets[:1]
	require.NotEqual(t, a, inbox.SeedHash(inbox.SeedMessages(&c, time.Now())))

	c2 := fullCampaign()
	c2.AudioURLs.Voice = "https://cdn.example.com/other.mp3"
	require.NotEqual(t, a, inbox.SeedHash(inbox.SeedMessages(&c2, time.Now())))
}

func TestContactID(t *testing.T) {
	tests := []struct {
		name    string
		contact domain.Contact
		index   int
		want    string
	}{
		{"phone", domain.Contact{Phone: "+1 (555) 0100", ID: "x", Name: "Ana"}, 0, "+1__555__0100_0"},
		{"id when no phone", domain.Contact{ID: "crm/42", Name: "Ana"}, 3, "crm_42_3"},
		{"name when no phone or id", domain.Contact{Name: "Ana"}, 7, "Ana_7"},
		{"fallback", domain.Contact{}, 1, "contact_1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, inbox.ContactID(tt.contact, tt.index))
		})
	}
}

func TestNewThread(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := fullCampaign()
	seeds := inbox.SeedMessages(&c, now)

	th := inbox.NewThread(&c, domain.Contact{Phone: "5550100"}, 2, seeds)
	require.Equal(t, "5550100_2", th.ContactID)
	require.Equal(t, inbox.UnknownContact, th.ContactName)
	require.Equal(t, "📎 2 file(s)", th.LastMessage)
	require.Equal(t, now.Add(-2*time.Second), th.LastMessageTime)
	require.Equal(t, inbox.SeedHash(seeds), th.SeedHash)

	next := inbox.NewThread(&c, domain.Contact{Phone: "5550101"}, 3, seeds)
	require.True(t, next.CreatedAt.After(th.CreatedAt))
}
