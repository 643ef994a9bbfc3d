package domain_test

import (
	"encoding/json"
	"outreach/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDescription_UnmarshalString(t *testing.T) {
	var c domain.Campaign
	require.NoError(t, json.Unmarshal([]byte(`{"description":"plain text"}`), &c))
	require.Equal(t, "plain text", c.Description.Original)
	require.Empty(t, c.Description.AIEnhanced)
	require.Equal(t, "plain text", c.Description.Text())
}

func TestDescription_UnmarshalObject(t *testing.T) {
	var c domain.Campaign
	require.NoError(t, json.Unmarshal(
		[]byte(`{"description":{"original":"mine","aiEnhanced":"better"}}`), &c))
	require.Equal(t, "mine", c.Description.Original)
	require.Equal(t, "better", c.Description.Text())
}

func TestDescription_UnmarshalRejectsNumbers(t *testing.T) {
	var c domain.Campaign
	require.Error(t, json.Unmarshal([]byte(`{"description":12}`), &c))
}

func TestDescription_RoundTripKeepsObjectShape(t *testing.T) {
	b, err := json.Marshal(domain.Campaign{Description: domain.Description{Original: "o"}})
	require.NoError(t, err)
	require.Contains(t, string(b), `"description":{"original":"o"}`)
}

func TestContact_UnmarshalNumericPhone(t *testing.T) {
	var c domain.Contact
	require.NoError(t, json.Unmarshal([]byte(`{"name":" Ana ","phone":5551234567,"id":7}`), &c))
	require.Equal(t, "Ana", c.Name)
	require.Equal(t, "5551234567", c.Phone)
	require.Equal(t, "7", c.ID)
}

func TestCampaign_ContactList(t *testing.T) {
	summary := &domain.ContactsSummary{Count: 1, Items: []domain.Contact{{Phone: "2"}}}

	c := domain.Campaign{ContactsSummary: summary}
	require.Equal(t, summary.Items, c.ContactList())

	c.Contacts = []domain.Contact{{Phone: "1"}}
	require.Equal(t, "1", c.ContactList()[0].Phone)

	require.Nil(t, (&domain.Campaign{}).ContactList())
}

func TestCampaign_IsLaunched(t *testing.T) {
	require.False(t, (&domain.Campaign{Status: domain.CampaignStatusDraft}).IsLaunched())
	require.True(t, (&domain.Campaign{Status: domain.CampaignStatusLaunched}).IsLaunched())

	now := time.Now()
	require.True(t, (&domain.Campaign{LaunchedAt: &now}).IsLaunched())
}

func TestCampaign_PreviewFallbacks(t *testing.T) {
	c := domain.Campaign{Description: domain.Description{Original: "orig", AIEnhanced: "ai"}}
	require.Equal(t, "ai", c.PreviewSource())
	require.Equal(t, "orig", c.DetailsPreview())

	c.ChannelContent.Voice.Transcript = "spoken"
	require.Equal(t, "spoken", c.DetailsPreview())

	c.PreviewText = "preview"
	require.Equal(t, "preview", c.PreviewSource())
	require.Equal(t, "preview", c.DetailsPreview())
}

func TestCampaignID_TextRoundTrip(t *testing.T) {
	id, err := domain.ParseCampaignID("0b6cfa9f-5d0e-4a53-9a3a-7d6d0f8f2a11")
	require.NoError(t, err)
	require.Equal(t, "0b6cfa9f-5d0e-4a53-9a3a-7d6d0f8f2a11", id.String())

	b, err := json.Marshal(map[string]domain.CampaignID{"id": id})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"0b6cfa9f-5d0e-4a53-9a3a-7d6d0f8f2a11"}`, string(b))

	var got struct {
		ID domain.CampaignID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, id, got.ID)

	_, err = domain.ParseCampaignID("nope")
	require.Error(t, err)
}
