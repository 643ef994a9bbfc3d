package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// CampaignID uniquely identifies a campaign.
type CampaignID uuid.UUID

// String returns the canonical UUID form.
func (c CampaignID) String() string { return uuid.UUID(c).String() }

func (c CampaignID) MarshalText() ([]byte, error) { return uuid.UUID(c).MarshalText() }

func (c *CampaignID) UnmarshalText(b []byte) error { return (*uuid.UUID)(c).UnmarshalText(b) } //nolint: wrapcheck

// ParseCampaignID parses the canonical string form.
func ParseCampaignID(s string) (CampaignID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CampaignID{}, fmt.Errorf("invalid campaign id: %w", err)
	}

	return CampaignID(id), nil
}

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	// CampaignStatusDraft is a campaign that is still being edited.
	CampaignStatusDraft CampaignStatus = "draft"
	// CampaignStatusLaunched is a campaign whose content was fanned out to the inbox.
	CampaignStatusLaunched CampaignStatus = "launched"
)

// Description holds the text written by the user and the optional AI rewrite.
// Older documents stored it as a plain string, which decodes into Original.
type Description struct {
	Original   string `json:"original,omitempty"`
	AIEnhanced string `json:"aiEnhanced,omitempty"`
}

// UnmarshalJSON accepts either a string or an {original, aiEnhanced} object.
func (d *Description) UnmarshalJSON(b []byte) error {
	res := gjson.ParseBytes(b)
	switch {
	case res.Type == gjson.Null:
		return nil
	case res.Type == gjson.String:
		*d = Description{Original: res.String()}
	case res.IsObject():
		*d = Description{
			Original:   res.Get("original").String(),
			AIEnhanced: res.Get("aiEnhanced").String(),
		}
	default:
		return fmt.Errorf("unsupported description value: %s", res.Raw)
	}

	return nil
}

// Text returns the AI enhanced description when present, else the original.
func (d Description) Text() string {
	if d.AIEnhanced != "" {
		return d.AIEnhanced
	}

	return d.Original
}

// TextChannel configures the text message channel.
type TextChannel struct {
	Enabled   bool `json:"enabled"`
	WordLimit int  `json:"wordLimit,omitempty"`
}

// VoiceChannel configures voice notes.
type VoiceChannel struct {
	Enabled            bool `json:"enabled"`
	MaxDurationSeconds int  `json:"maxDurationSeconds,omitempty"`
}

// CallsChannel configures outbound calls.
type CallsChannel struct {
	Enabled                bool `json:"enabled"`
	MaxCallDurationSeconds int  `json:"maxCallDurationSeconds,omitempty"`
}

// Channels groups the delivery channels of a campaign.
type Channels struct {
	Text  TextChannel  `json:"text"`
	Voice VoiceChannel `json:"voice"`
	Calls CallsChannel `json:"calls"`
}

// ChannelContent is the per-channel content authored in the campaign wizard.
type ChannelContent struct {
	Voice struct {
		Transcript string `json:"transcript,omitempty"`
	} `json:"voice"`
}

// AssetType is the media type of an uploaded asset.
type AssetType string

const (
	AssetTypeImage AssetType = "image"
	AssetTypeVideo AssetType = "video"
)

// Asset is a media file hosted on the CDN.
type Asset struct {
	URL      string    `json:"url"`
	PublicID string    `json:"publicId,omitempty"`
	Type     AssetType `json:"type,omitempty"`
}

// AudioURLs points to the recorded voice note and call audio on the CDN.
type AudioURLs struct {
	Voice string `json:"voice,omitempty"`
	Calls string `json:"calls,omitempty"`
}

// ContactsFile is the uploaded spreadsheet the contact list is extracted from.
type ContactsFile struct {
	Name     string `json:"name,omitempty"`
	URL      string `json:"url"`
	PublicID string `json:"publicId,omitempty"`
}

// Contact is a single recipient of a campaign.
type Contact struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	ProfilePic string `json:"profilePic,omitempty"`
}

// UnmarshalJSON decodes a contact leniently: spreadsheet imports
// often stored phone numbers and ids as JSON numbers.
func (c *Contact) UnmarshalJSON(b []byte) error {
	res := gjson.ParseBytes(b)
	if res.Type == gjson.Null {
		return nil
	}
	if !res.IsObject() {
		return fmt.Errorf("unsupported contact value: %s", res.Raw)
	}

	*c = Contact{
		ID:         strings.TrimSpace(res.Get("id").String()),
		Name:       strings.TrimSpace(res.Get("name").String()),
		Phone:      strings.TrimSpace(res.Get("phone").String()),
		ProfilePic: res.Get("profilePic").String(),
	}

	return nil
}

// ContactsSummary is the result of extracting contacts from ContactsFile.
type ContactsSummary struct {
	Count int       `json:"count"`
	Items []Contact `json:"items"`
}

// Onboarding captures the business context collected before the first campaign.
type Onboarding struct {
	BusinessType       string   `json:"businessType,omitempty"`
	TargetAudience     string   `json:"targetAudience,omitempty"`
	BrandStyle         []string `json:"brandStyle,omitempty"`
	ResponsePreference string   `json:"responsePreference,omitempty"`
	Language           string   `json:"language,omitempty"`
	Region             string   `json:"region,omitempty"`
	ComplianceNotes    string   `json:"complianceNotes,omitempty"`
	TermsAccepted      bool     `json:"termsAccepted,omitempty"`
}

// Campaign is a user-authored outreach unit. Everything except the identity
// and timestamps is persisted as a single JSON document.
type Campaign struct {
	ID     CampaignID `json:"-"`
	UserID UserID     `json:"-"`

	Title          string         `json:"title"`
	Description    Description    `json:"description"`
	PreviewText    string         `json:"previewText,omitempty"`
	AIDescription  string         `json:"aiDescription,omitempty"`
	ToneOfVoice    string         `json:"toneOfVoice,omitempty"`
	Channels       Channels       `json:"channels"`
	ChannelContent ChannelContent `json:"channelContent"`
	Assets         []Asset        `json:"assets,omitempty"`
	AudioURLs      AudioURLs      `json:"audioUrls"`
	Onboarding     Onboarding     `json:"onboarding"`

	ContactsFile    *ContactsFile    `json:"contactsFile,omitempty"`
	Contacts        []Contact        `json:"contacts,omitempty"`
	ContactsSummary *ContactsSummary `json:"contactsSummary,omitempty"`
	ContactCount    int              `json:"contactCount,omitempty"`

	Status     CampaignStatus `json:"status"`
	LaunchedAt *time.Time     `json:"launchedAt,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// IsLaunched reports whether the campaign content has been fanned out.
func (c *Campaign) IsLaunched() bool {
	return c.Status == CampaignStatusLaunched || c.LaunchedAt != nil
}

// ContactList returns the explicit contacts when present, else the extracted ones.
func (c *Campaign) ContactList() []Contact {
	if len(c.Contacts) > 0 {
		return c.Contacts
	}
	if c.ContactsSummary != nil {
		return c.ContactsSummary.Items
	}

	return nil
}

// PreviewSource is the text seeded as the preview message of every thread.
func (c *Campaign) PreviewSource() string {
	if c.PreviewText != "" {
		return c.PreviewText
	}

	return c.Description.Text()
}

// DetailsPreview is the preview shown on the campaign details page.
func (c *Campaign) DetailsPreview() string {
	switch {
	case c.PreviewText != "":
		return c.PreviewText
	case c.ChannelContent.Voice.Transcript != "":
		return c.ChannelContent.Voice.Transcript
	default:
		return c.Description.Original
	}
}
