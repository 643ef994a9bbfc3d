package campaign

import (
	"context"
	"outreach/pkg/domain"
	"outreach/pkg/llm"
)

//go:generate mockgen -package mockcampaign -source=interface.go -destination=mock/mockcampaign.go *
type Service interface {
	Create(ctx context.Context, userID domain.UserID, draft domain.Campaign) (*domain.Campaign, error)
	Get(ctx context.Context, userID domain.UserID, ID domain.CampaignID) (*domain.Campaign, error)
	List(ctx context.Context,
		userID domain.UserID,
		status domain.CampaignStatus,
		cursor string,
		limit uint) ([]domain.Campaign, string, error)
	Update(ctx context.Context, userID domain.UserID, ID domain.CampaignID, update Update) (*domain.Campaign, error)
	Delete(ctx context.Context, userID domain.UserID, ID domain.CampaignID) error

	// ExtractContacts parses the uploaded contacts file into the campaign's contact list.
	ExtractContacts(ctx context.Context, userID domain.UserID, ID domain.CampaignID) ([]domain.Contact, error)
	// GenerateDescription rewrites the description with the language model
	// and returns the generated text.
	GenerateDescription(ctx context.Context,
		userID domain.UserID,
		ID domain.CampaignID,
		input llm.DescriptionInput) (string, error)
	Details(ctx context.Context, userID domain.UserID, ID domain.CampaignID) (*Details, error)
	// Launch marks the campaign launched and queues its inbox fan-out.
	Launch(ctx context.Context, userID domain.UserID, ID domain.CampaignID) (*domain.Campaign, error)
}

// ContactsFileRemove is the Update.ContactsFileAction dropping the
// uploaded file together with the contacts extracted from it.
const ContactsFileRemove = "remove"

// Update holds the editable fields of a campaign. Nil fields are left as they are.
type Update struct {
	Title           *string              `json:"title"`
	Description     *string              `json:"description"`
	PreviewText     *string              `json:"previewText"`
	ToneOfVoice     *string              `json:"toneOfVoice"`
	VoiceTranscript *string              `json:"voiceTranscript"`
	Channels        *domain.Channels     `json:"channels"`
	Assets          *[]domain.Asset      `json:"assets"`
	AudioURLs       *domain.AudioURLs    `json:"audioUrls"`
	Onboarding      *domain.Onboarding   `json:"onboarding"`
	ContactsFile    *domain.ContactsFile `json:"contactsFile"`
	Contacts        *[]domain.Contact    `json:"contacts"`

	// ContactsFileAction only accepts ContactsFileRemove.
	ContactsFileAction string `json:"contactsFileAction"`
}

// Details is the content a campaign sends to each contact.
type Details struct {
	ID          domain.CampaignID `json:"id"`
	Title       string            `json:"title"`
	PreviewText string            `json:"previewText"`
	AudioURLs   struct {
		Voice string `json:"voice"`
		Calls string `json:"calls"`
	} `json:"audioUrls"`
	Assets []domain.Asset `json:"assets"`
}
