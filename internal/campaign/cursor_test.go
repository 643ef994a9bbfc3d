package campaign_test

import (
	"outreach/internal/campaign"
	"outreach/pkg/domain"
	"outreach/pkg/serrors"
	"outreach/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	c := &storage.CampaignCursor{
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 6000, time.FixedZone("CET", 3600)),
		ID:        domain.CampaignID(uuid.New()),
	}

	s := campaign.FormatCursor(c)
	require.Equal(t, "2026-01-02T02:04:05.000006Z_"+uuid.UUID(c.ID).String(), s)

	parsed, err := campaign.ParseCursor(s)
	require.NoError(t, err)
	require.True(t, c.CreatedAt.Equal(parsed.CreatedAt))
	require.Equal(t, c.ID, parsed.ID)

	require.Empty(t, campaign.FormatCursor(nil))
	parsed, err = campaign.ParseCursor("")
	require.NoError(t, err)
	require.Nil(t, parsed)

	for _, bad := range []string{"2026-01-02T02:04:05Z", "yesterday_" + uuid.NewString(), "2026-01-02T02:04:05Z_nope"} {
		_, err := campaign.ParseCursor(bad)
		require.ErrorIs(t, err, serrors.ErrBadRequest, bad)
	}
}
