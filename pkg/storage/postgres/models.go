package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"outreach/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// jsonb is the raw text of a jsonb column. It is passed to goqu as a
// driver.Valuer so it renders as a quoted literal and not as a byte list.
type jsonb []byte

func (j jsonb) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}

	return string(j), nil
}

func (j *jsonb) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = jsonb(v)
	default:
		return errors.New("unsupported jsonb source type")
	}

	return nil
}

// PgCampaign is a row of the campaigns table. Everything but identity and
// timestamps lives in Doc; Status is generated from it by the database.
type PgCampaign struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`
	Doc    jsonb     `db:"doc"`
	Status string    `db:"status"  goqu:"skipinsert,skipupdate"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgCampaign) ToDomain() (*domain.Campaign, error) {
	var c domain.Campaign
	if len(p.Doc) > 0 {
		if err := json.Unmarshal(p.Doc, &c); err != nil {
			return nil, fmt.Errorf("could not unmarshal campaign document: %w", err)
		}
	}

	c.ID = domain.CampaignID(p.ID)
	c.UserID = domain.UserID(p.UserID)
	if c.Status == "" {
		c.Status = domain.CampaignStatus(p.Status)
	}
	c.CreatedAt = p.CreatedAt
	c.UpdatedAt = p.UpdatedAt

	return &c, nil
}

func (p *PgCampaign) FromDomain(c domain.Campaign) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("could not marshal campaign document: %w", err)
	}

	*p = PgCampaign{
		ID:        uuid.UUID(c.ID),
		UserID:    uuid.UUID(c.UserID),
		Doc:       doc,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	return nil
}

func pgCampaignsToDomain(rows []PgCampaign) ([]domain.Campaign, error) {
	out := make([]domain.Campaign, 0, len(rows))
	for i := range rows {
		c, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}

	return out, nil
}

type PgInbox struct {
	CampaignID    uuid.UUID `db:"campaign_id"`
	UserID        uuid.UUID `db:"user_id"`
	TotalContacts int       `db:"total_contacts"`
	CreatedAt     time.Time `db:"created_at"     goqu:"skipinsert"`
	UpdatedAt     time.Time `db:"updated_at"     goqu:"skipinsert"`
}

func (p *PgInbox) ToDomain() *domain.Inbox {
	return &domain.Inbox{
		CampaignID:    domain.CampaignID(p.CampaignID),
		UserID:        domain.UserID(p.UserID),
		TotalContacts: p.TotalContacts,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type PgThread struct {
	CampaignID      uuid.UUID `db:"campaign_id"`
	ContactID       string    `db:"contact_id"`
	ContactName     string    `db:"contact_name"`
	ContactPhone    string    `db:"contact_phone"`
	ProfilePic      string    `db:"profile_pic"`
	LastMessage     string    `db:"last_message"`
	LastMessageTime time.Time `db:"last_message_time"`
	UnreadCount     int       `db:"unread_count"`
	// SeedHash stores the unsigned hash bit for bit in a bigint column.
	SeedHash  int64     `db:"seed_hash"`
	CreatedAt time.Time `db:"created_at"`
}

func (p *PgThread) ToDomain() *domain.Thread {
	return &domain.Thread{
		CampaignID:      domain.CampaignID(p.CampaignID),
		ContactID:       p.ContactID,
		ContactName:     p.ContactName,
		ContactPhone:    p.ContactPhone,
		ProfilePic:      p.ProfilePic,
		LastMessage:     p.LastMessage,
		LastMessageTime: p.LastMessageTime,
		UnreadCount:     p.UnreadCount,
		SeedHash:        uint64(p.SeedHash), //nolint: gosec
		CreatedAt:       p.CreatedAt,
	}
}

func (p *PgThread) FromDomain(t domain.Thread) {
	now := time.Now().UTC()
	*p = PgThread{
		CampaignID:      uuid.UUID(t.CampaignID),
		ContactID:       t.ContactID,
		ContactName:     t.ContactName,
		ContactPhone:    t.ContactPhone,
		ProfilePic:      t.ProfilePic,
		LastMessage:     t.LastMessage,
		LastMessageTime: orNow(t.LastMessageTime, now),
		UnreadCount:     t.UnreadCount,
		SeedHash:        int64(t.SeedHash), //nolint: gosec
		CreatedAt:       orNow(t.CreatedAt, now),
	}
}

func domainThreadsToPg(threads []domain.Thread) []PgThread {
	out := make([]PgThread, len(threads))
	for i := range threads {
		out[i].FromDomain(threads[i])
	}

	return out
}

func pgThreadsToDomain(rows []PgThread) []domain.Thread {
	out := make([]domain.Thread, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func orNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}

	return t
}

type PgMessage struct {
	CampaignID uuid.UUID `db:"campaign_id"`
	ContactID  string    `db:"contact_id"`
	ID         string    `db:"id"`
	Sender     string    `db:"sender"`
	Type       string    `db:"type"`
	Content    string    `db:"content"`
	AudioURL   string    `db:"audio_url"`
	Assets     jsonb     `db:"assets"`
	SentAt     time.Time `db:"sent_at"`
	CreatedAt  time.Time `db:"created_at"`
}

func (p *PgMessage) ToDomain() (*domain.Message, error) {
	var assets []domain.Asset
	if len(p.Assets) > 0 {
		if err := json.Unmarshal(p.Assets, &assets); err != nil {
			return nil, fmt.Errorf("could not unmarshal message assets: %w", err)
		}
	}

	return &domain.Message{
		CampaignID: domain.CampaignID(p.CampaignID),
		ContactID:  p.ContactID,
		ID:         p.ID,
		Sender:     domain.MessageSender(p.Sender),
		Type:       domain.MessageType(p.Type),
		Content:    p.Content,
		AudioURL:   p.AudioURL,
		Assets:     assets,
		Timestamp:  p.SentAt,
		CreatedAt:  p.CreatedAt,
	}, nil
}

func (p *PgMessage) FromDomain(m domain.Message) error {
	assets := []byte("[]")
	if len(m.Assets) > 0 {
		b, err := json.Marshal(m.Assets)
		if err != nil {
			return fmt.Errorf("could not marshal message assets: %w", err)
		}
		assets = b
	}

	msgType := m.Type
	if msgType == "" {
		msgType = domain.MessageTypeText
	}

	now := time.Now().UTC()
	*p = PgMessage{
		CampaignID: uuid.UUID(m.CampaignID),
		ContactID:  m.ContactID,
		ID:         m.ID,
		Sender:     string(m.Sender),
		Type:       string(msgType),
		Content:    m.Content,
		AudioURL:   m.AudioURL,
		Assets:     assets,
		SentAt:     orNow(m.Timestamp, now),
		CreatedAt:  orNow(m.CreatedAt, now),
	}

	return nil
}

func domainMessagesToPg(msgs []domain.Message) ([]PgMessage, error) {
	out := make([]PgMessage, len(msgs))
	for i := range msgs {
		if err := out[i].FromDomain(msgs[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgMessagesToDomain(rows []PgMessage) ([]domain.Message, error) {
	out := make([]domain.Message, 0, len(rows))
	for i := range rows {
		m, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}

	return out, nil
}
