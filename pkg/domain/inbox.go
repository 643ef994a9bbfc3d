package domain

import "time"

// Inbox is the per-campaign metadata of the materialized conversation view.
type Inbox struct {
	CampaignID    CampaignID
	UserID        UserID
	TotalContacts int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Thread is the conversation with one contact of a campaign.
type Thread struct {
	CampaignID CampaignID `json:"-"`

	ContactID       string    `json:"contactId"`
	ContactName     string    `json:"contactName"`
	ContactPhone    string    `json:"contactPhone"`
	ProfilePic      string    `json:"profilePic,omitempty"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
	UnreadCount     int       `json:"unreadCount"`

	// SeedHash fingerprints the campaign content the thread was seeded with.
	SeedHash uint64 `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// MessageSender is the author of a message.
type MessageSender string

const (
	MessageSenderCampaign MessageSender = "campaign"
	MessageSenderUser     MessageSender = "user"
	MessageSenderAI       MessageSender = "ai"
)

// MessageType is the rendering type of a message.
type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeAudio MessageType = "audio"
)

// Message is a single entry of a thread. IDs are stable strings so that
// seed messages can be rewritten in place.
type Message struct {
	CampaignID CampaignID `json:"-"`
	ContactID  string     `json:"-"`

	ID        string        `json:"id"`
	Sender    MessageSender `json:"sender"`
	Type      MessageType   `json:"type"`
	Content   string        `json:"content"`
	AudioURL  string        `json:"audioUrl,omitempty"`
	Assets    []Asset       `json:"assets,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	CreatedAt time.Time     `json:"createdAt"`
}
