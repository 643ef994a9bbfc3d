package campaign_test

import (
	"context"
	"errors"
	"outreach/internal/campaign"
	"outreach/internal/inbox"
	mockcdn "outreach/pkg/cdn/mock"
	"outreach/pkg/domain"
	"outreach/pkg/llm"
	mockllm "outreach/pkg/llm/mock"
	"outreach/pkg/serrors"
	"outreach/pkg/storage"
	mockstorage "outreach/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	ctrl    *gomock.Controller
	storage *mockstorage.MockStorage
	files   *mockcdn.MockFetcher
	llm     *mockllm.MockClient
}

func newTestService(t *testing.T) (*mocks, campaign.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &mocks{
		ctrl:    ctrl,
		storage: mockstorage.NewMockStorage(ctrl),
		files:   mockcdn.NewMockFetcher(ctrl),
		llm:     mockllm.NewMockClient(ctrl),
	}

	return m, campaign.New(m.storage, m.files, m.llm, campaign.Options{
		MaxAttempts:        3,
		LaunchUniquePeriod: time.Minute,
	})
}

// inTx runs the next WithTx callback on a fresh MockAllStorage prepared by fn.
func (m *mocks) inTx(fn func(tx *mockstorage.MockAllStorage)) {
	m.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(m.ctrl)
			fn(tx)

			return cb(tx)
		},
	)
}

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:     domain.CampaignID(uuid.New()),
		UserID: domain.UserID(uuid.New()),
		Title:  "Spring sale",
		Status: domain.CampaignStatusDraft,
	}
}

func TestService_Create(t *testing.T) {
	m, s := newTestService(t)
	userID := domain.UserID(uuid.New())
	launchedAt := time.Now()

	m.storage.EXPECT().StoreCampaign(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c domain.Campaign) (*domain.Campaign, error) {
			require.Equal(t, userID, c.UserID)
			require.Equal(t, "Spring sale", c.Title)
			require.Equal(t, domain.CampaignStatusDraft, c.Status)
			require.Nil(t, c.LaunchedAt)
			c.ID = domain.CampaignID(uuid.New())

			return &c, nil
		},
	)

	c, err := s.Create(context.Background(), userID, domain.Campaign{
		Title:      "  Spring sale ",
		Status:     domain.CampaignStatusLaunched,
		LaunchedAt: &launchedAt,
	})
	require.NoError(t, err)
	require.NotEqual(t, domain.CampaignID{}, c.ID)
}

func TestService_Get(t *testing.T) {
	m, s := newTestService(t)
	c := testCampaign()

	m.storage.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)
	got, err := s.Get(context.Background(), c.UserID, c.ID)
	require.NoError(t, err)
	require.Equal(t, c, got)

	m.storage.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(nil, nil)
	_, err = s.Get(context.Background(), c.UserID, c.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	t.Run("invalid input", func(t *testing.T) {
		_, s := newTestService(t)

		_, _, err := s.List(ctx, userID, "archived", "", 10)
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		_, _, err = s.List(ctx, userID, "", "yesterday", 10)
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		_, _, err = s.List(ctx, userID, "", "2025-03-01T10:00:00Z", 10)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("cursor round trip", func(t *testing.T) {
		m, s := newTestService(t)
		cursor := &storage.CampaignCursor{
			CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 123456000, time.UTC),
			ID:        domain.CampaignID(uuid.MustParse("6f1a4c1e-2b7d-4f6a-9c3e-0d5b8a7e1f20")),
		}
		next := &storage.CampaignCursor{
			CreatedAt: cursor.CreatedAt.Add(-time.Hour),
			ID:        domain.CampaignID(uuid.MustParse("0a9b8c7d-6e5f-4a3b-8c1d-2e3f4a5b6c7d")),
		}

		m.storage.EXPECT().
			UserCampaigns(gomock.Any(), userID, domain.CampaignStatusLaunched, cursor, uint(20)).
			Return(storage.UserCampaigns{
				Campaigns:  []domain.Campaign{*testCampaign()},
				NextCursor: next,
			}, nil)

		list, nextCursor, err := s.List(ctx, userID, domain.CampaignStatusLaunched,
			"2025-03-01T10:00:00.123456Z_6f1a4c1e-2b7d-4f6a-9c3e-0d5b8a7e1f20", 0)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "2025-03-01T09:00:00.123456Z_0a9b8c7d-6e5f-4a3b-8c1d-2e3f4a5b6c7d", nextCursor)
	})

	t.Run("limit capped", func(t *testing.T) {
		m, s := newTestService(t)
		m.storage.EXPECT().
			UserCampaigns(gomock.Any(), userID, domain.CampaignStatus(""), gomock.Nil(), uint(100)).
			Return(storage.UserCampaigns{}, nil)

		_, next, err := s.List(ctx, userID, "", "", 1000)
		require.NoError(t, err)
		require.Empty(t, next)
	})
}

func TestService_Delete(t *testing.T) {
	m, s := newTestService(t)
	c := testCampaign()

	m.storage.EXPECT().DeleteCampaign(gomock.Any(), c.UserID, c.ID).Return(c, nil)
	require.NoError(t, s.Delete(context.Background(), c.UserID, c.ID))

	m.storage.EXPECT().DeleteCampaign(gomock.Any(), c.UserID, c.ID).Return(nil, nil)
	require.ErrorIs(t, s.Delete(context.Background(), c.UserID, c.ID), serrors.ErrNotFound)
}

func ptr[T any](v T) *T { return &v }

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("draft", func(t *testing.T) {
		m, s := newTestService(t)
		c := testCampaign()
		c.Description = domain.Description{Original: "old", AIEnhanced: "shiny"}
		c.ChannelContent.Voice.Transcript = "hi"

		m.inTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)
			tx.EXPECT().MergeCampaign(gomock.Any(), c.UserID, c.ID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.UserID, _ domain.CampaignID, p []byte) (*domain.Campaign, error) {
					doc := gjson.ParseBytes(p)
					require.Equal(t, "New title", doc.Get("title").String())
					require.Equal(t, "new", doc.Get("description.original").String())
					require.Equal(t, "shiny", doc.Get("description.aiEnhanced").String())
					require.Equal(t, "bye", doc.Get("channelContent.voice.transcript").String())
					require.False(t, doc.Get("previewText").Exists())

					return c, nil
				},
			)
		})

		_, err := s.Update(ctx, c.UserID, c.ID, campaign.Update{
			Title:           ptr(" New title "),
			Description:     ptr("new"),
			VoiceTranscript: ptr("bye"),
		})
		require.NoError(t, err)
	})

	t.Run("launched campaign queues resync", func(t *testing.T) {
		m, s := newTestService(t)
		c := testCampaign()
		c.Status = domain.CampaignStatusLaunched

		m.inTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)
			tx.EXPECT().MergeCampaign(gomock.Any(), c.UserID, c.ID, gomock.Any()).Return(c, nil)
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), nil).DoAndReturn(
				func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
					fanOut, ok := args.(inbox.FanOutArgs)
					require.True(t, ok)
					require.Equal(t, inbox.ModeResync, fanOut.Mode)
					require.Equal(t, c.ID, fanOut.CampaignID)
					require.Equal(t, 3, fanOut.InsertOpts().MaxAttempts)

					return true, nil
				},
			)
		})

		_, err := s.Update(ctx, c.UserID, c.ID, campaign.Update{PreviewText: ptr("fresh")})
		require.NoError(t, err)
	})

	t.Run("remove contacts file", func(t *testing.T) {
		m, s := newTestService(t)
		c := testCampaign()

		m.inTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)
			tx.EXPECT().MergeCampaign(gomock.Any(), c.UserID, c.ID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.UserID, _ domain.CampaignID, p []byte) (*domain.Campaign, error) {
					doc := gjson.ParseBytes(p)
					require.Equal(t, gjson.Null, doc.Get("contactsFile").Type)
					require.Equal(t, gjson.Null, doc.Get("contactsSummary").Type)
					require.Equal(t, gjson.Null, doc.Get("contacts").Type)
					require.Equal(t, int64(0), doc.Get("contactCount").Int())

					return c, nil
				},
			)
		})

		_, err := s.Update(ctx, c.UserID, c.ID, campaign.Update{ContactsFileAction: campaign.ContactsFileRemove})
		require.NoError(t, err)
	})

	t.Run("rejected", func(t *testing.T) {
		cases := map[string]campaign.Update{
			"empty":            {},
			"unknown action":   {ContactsFileAction: "archive"},
			"file without url": {ContactsFile: &domain.ContactsFile{Name: "list.csv"}},
		}
		for name, u := range cases {
			t.Run(name, func(t *testing.T) {
				m, s := newTestService(t)
				c := testCampaign()
				m.inTx(func(tx *mockstorage.MockAllStorage) {
					tx.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)
				})

				_, err := s.Update(ctx, c.UserID, c.ID, u)
				require.ErrorIs(t, err, serrors.ErrBadRequest)
			})
		}
	})

	t.Run("not found", func(t *testing.T) {
		m, s := newTestService(t)
		c := testCampaign()
		m.inTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(nil, nil)
		})

		_, err := s.Update(ctx, c.UserID, c.ID, campaign.Update{Title: ptr("x")})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestService_ExtractContacts(t *testing.T) {
	ctx := context.Background()
	const fileURL = "https://cdn.example.com/raw/upload/list.csv"

	t.Run("no file", func(t *testing.T) {
		m, s := newTestService(t)
		c := testCampaign()
		m.storage.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)

		_, err := s.ExtractContacts(ctx, c.UserID, c.ID)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("download failure", func(t *testing.T) {
		m, s := newTestService(t)
		c := testCampaign()
		c.ContactsFile = &domain.ContactsFile{URL: fileURL}
		m.storage.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)
		m.files.EXPECT().Fetch(gomock.Any(), fileURL).Return(nil, serrors.With(serrors.ErrUpstream, "boom"))

		_, err := s.ExtractContacts(ctx, c.UserID, c.ID)
		require.ErrorIs(t, err, serrors.ErrUpstream)
	})

	t.Run("missing file", func(t *testing.T) {
		m, s := newTestService(t)
		c := testCampaign()
		c.ContactsFile = &domain.ContactsFile{URL: fileURL}
		m.storage.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)
		m.files.EXPECT().Fetch(gomock.Any(), fileURL).
			Return(nil, serrors.With(serrors.ErrBadRequest, "file unavailable on CDN"))

		_, err := s.ExtractContacts(ctx, c.UserID, c.ID)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.NotErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("no phone numbers", func(t *testing.T) {
		m, s := newTestService(t)
		c := testCampaign()
		c.ContactsFile = &domain.ContactsFile{URL: fileURL}
		m.storage.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)
		m.files.EXPECT().Fetch(gomock.Any(), fileURL).Return([]byte("Name,City\nAna,Lisbon\n"), nil)

		_, err := s.ExtractContacts(ctx, c.UserID, c.ID)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("saves summary", func(t *testing.T) {
		m, s := newTestService(t)
		c := testCampaign()
		c.ContactsFile = &domain.ContactsFile{URL: fileURL}
		m.storage.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)
		m.files.EXPECT().Fetch(gomock.Any(), fileURL).
			Return([]byte("Name,Phone\nAna,5550100\nBob,5550101\n"), nil)
		m.inTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().MergeCampaign(gomock.Any(), c.UserID, c.ID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.UserID, _ domain.CampaignID, p []byte) (*domain.Campaign, error) {
					doc := gjson.ParseBytes(p)
					require.Equal(t, int64(2), doc.Get("contactCount").Int())
					require.Equal(t, int64(2), doc.Get("contactsSummary.count").Int())
					require.Equal(t, "5550101", doc.Get("contactsSummary.items.1.phone").String())

					return c, nil
				},
			)
		})

		list, err := s.ExtractContacts(ctx, c.UserID, c.ID)
		require.NoError(t, err)
		require.Equal(t, []domain.Contact{
			{Name: "Ana", Phone: "5550100"},
			{Name: "Bob", Phone: "5550101"},
		}, list)
	})
}

func TestService_GenerateDescription(t *testing.T) {
	ctx := context.Background()

	t.Run("saves generated text", func(t *testing.T) {
		m, s := newTestService(t)
		c := testCampaign()
		c.Description.Original = "We sell shoes"

		m.storage.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)
		m.llm.EXPECT().Generate(gomock.Any(), llm.DescriptionPrompt(c, llm.DescriptionInput{WordLimit: 50})).
			Return("Step into spring.", nil)
		m.inTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().MergeCampaign(gomock.Any(), c.UserID, c.ID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.UserID, _ domain.CampaignID, p []byte) (*domain.Campaign, error) {
					doc := gjson.ParseBytes(p)
					require.Equal(t, "Step into spring.", doc.Get("aiDescription").String())
					require.Equal(t, "Step into spring.", doc.Get("previewText").String())
					require.Equal(t, "We sell shoes", doc.Get("description.original").String())
					require.Equal(t, "Step into spring.", doc.Get("description.aiEnhanced").String())

					return c, nil
				},
			)
		})

		text, err := s.GenerateDescription(ctx, c.UserID, c.ID, llm.DescriptionInput{WordLimit: 50})
		require.NoError(t, err)
		require.Equal(t, "Step into spring.", text)
	})

	t.Run("model failure is not saved", func(t *testing.T) {
		m, s := newTestService(t)
		c := testCampaign()
		m.storage.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)
		m.llm.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return("", serrors.Wrap(serrors.ErrRateLimited, errors.New("429"), "slow down"))

		_, err := s.GenerateDescription(ctx, c.UserID, c.ID, llm.DescriptionInput{})
		require.ErrorIs(t, err, serrors.ErrRateLimited)
	})
}

func TestService_Details(t *testing.T) {
	m, s := newTestService(t)
	c := testCampaign()
	c.ChannelContent.Voice.Transcript = "Listen up"
	c.Description.Original = "ignored"
	c.AudioURLs.Voice = "https://cdn/voice.mp3"

	m.storage.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)

	d, err := s.Details(context.Background(), c.UserID, c.ID)
	require.NoError(t, err)
	require.Equal(t, c.ID, d.ID)
	require.Equal(t, "Listen up", d.PreviewText)
	require.Equal(t, "https://cdn/voice.mp3", d.AudioURLs.Voice)
	require.Empty(t, d.AudioURLs.Calls)
	require.NotNil(t, d.Assets)
}

func TestService_Launch(t *testing.T) {
	ctx := context.Background()

	t.Run("no contacts", func(t *testing.T) {
		m, s := newTestService(t)
		c := testCampaign()
		m.inTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)
		})

		_, err := s.Launch(ctx, c.UserID, c.ID)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("launches", func(t *testing.T) {
		m, s := newTestService(t)
		c := testCampaign()
		c.ContactsSummary = &domain.ContactsSummary{Count: 2, Items: []domain.Contact{
			{Name: "Ana", Phone: "5550100"},
			{Name: "Bob", Phone: "5550101"},
		}}
		launched := *c
		launched.Status = domain.CampaignStatusLaunched

		m.inTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)
			tx.EXPECT().MergeCampaign(gomock.Any(), c.UserID, c.ID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.UserID, _ domain.CampaignID, p []byte) (*domain.Campaign, error) {
					doc := gjson.ParseBytes(p)
					require.Equal(t, "launched", doc.Get("status").String())
					require.True(t, doc.Get("launchedAt").Exists())

					return &launched, nil
				},
			)
			tx.EXPECT().UpsertInbox(gomock.Any(), domain.Inbox{
				CampaignID:    c.ID,
				UserID:        c.UserID,
				TotalContacts: 2,
			}).Return(nil)
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), nil).DoAndReturn(
				func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
					fanOut, ok := args.(inbox.FanOutArgs)
					require.True(t, ok)
					require.Equal(t, inbox.ModeLaunch, fanOut.Mode)
					opts := fanOut.InsertOpts()
					require.True(t, opts.UniqueOpts.ByArgs)
					require.Equal(t, time.Minute, opts.UniqueOpts.ByPeriod)

					return false, nil
				},
			)
		})

		got, err := s.Launch(ctx, c.UserID, c.ID)
		require.NoError(t, err)
		require.Equal(t, domain.CampaignStatusLaunched, got.Status)
	})

	t.Run("inbox failure aborts", func(t *testing.T) {
		m, s := newTestService(t)
		c := testCampaign()
		c.Contacts = []domain.Contact{{Phone: "1"}}
		m.inTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().CampaignByID(gomock.Any(), c.UserID, c.ID).Return(c, nil)
			tx.EXPECT().MergeCampaign(gomock.Any(), c.UserID, c.ID, gomock.Any()).Return(c, nil)
			tx.EXPECT().UpsertInbox(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		})

		_, err := s.Launch(ctx, c.UserID, c.ID)
		require.Error(t, err)
	})
}
