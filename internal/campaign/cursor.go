package campaign

import (
	"outreach/pkg/domain"
	"outreach/pkg/serrors"
	"outreach/pkg/storage"
	"strings"
	"time"

	"github.com/google/uuid"
)

// cursorSep joins the two cursor parts. It appears in neither an RFC3339
// timestamp nor a UUID.
const cursorSep = "_"

// FormatCursor renders c as "<RFC3339Nano created_at>_<id>", or "" for nil.
func FormatCursor(c *storage.CampaignCursor) string {
	if c == nil {
		return ""
	}

	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSep + uuid.UUID(c.ID).String()
}

// ParseCursor parses a cursor made by FormatCursor. An empty cursor yields nil.
func ParseCursor(s string) (*storage.CampaignCursor, error) {
	if s == "" {
		return nil, nil //nolint: nilnil
	}

	ts, id, ok := strings.Cut(s, cursorSep)
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid cursor")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}
	campaignID, err := uuid.Parse(id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return &storage.CampaignCursor{CreatedAt: createdAt, ID: domain.CampaignID(campaignID)}, nil
}
