package v1handler_test

import (
	"context"
	"outreach/internal/api/handler/v1handler"
	"outreach/internal/api/specs/v1specs"
	"outreach/internal/campaign"
	mockcampaign "outreach/internal/campaign/mock"
	mockinbox "outreach/internal/inbox/mock"
	"outreach/pkg/domain"
	"outreach/pkg/llm"
	"outreach/pkg/serrors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerFixture struct {
	campaigns *mockcampaign.MockService
	inbox     *mockinbox.MockService
	h         *v1handler.Handler
	ctx       context.Context
	userID    domain.UserID
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		campaigns: mockcampaign.NewMockService(ctrl),
		inbox:     mockinbox.NewMockService(ctrl),
		userID:    domain.UserID(uuid.New()),
	}
	f.h = v1handler.New(v1handler.Deps{Campaigns: f.campaigns, Inbox: f.inbox})
	f.ctx = context.WithValue(context.Background(), v1handler.UserIDKey, f.userID)

	return f
}

func TestHandlers_RequireUser(t *testing.T) {
	f := newHandlerFixture(t)
	ctx := context.Background()

	_, err := f.h.GetCampaign(ctx, v1specs.GetCampaignParams{CampaignID: uuid.New()})
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	_, err = f.h.GetInboxOverview(ctx)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	err = f.h.DeleteCampaign(ctx, v1specs.DeleteCampaignParams{CampaignID: uuid.New()})
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestCreateCampaign(t *testing.T) {
	f := newHandlerFixture(t)
	id := domain.CampaignID(uuid.New())

	f.campaigns.EXPECT().Create(gomock.Any(), f.userID, gomock.Any()).
		DoAndReturn(func(_ any, _ domain.UserID, draft domain.Campaign) (*domain.Campaign, error) {
			require.Equal(t, "Spring sale", draft.Title)
			require.Equal(t, "Half price", draft.Description.Original)
			require.Equal(t, []domain.Contact{{Name: "Ana", Phone: "5550100"}}, draft.Contacts)
			require.Equal(t, 1, draft.ContactCount)
			draft.ID = id

			return &draft, nil
		})

	res, err := f.h.CreateCampaign(f.ctx, &v1specs.CampaignInput{
		Title:       v1specs.NewOptString("Spring sale"),
		Description: v1specs.NewOptString("Half price"),
		Contacts:    []v1specs.Contact{{Name: v1specs.NewOptString("Ana"), Phone: v1specs.NewOptString("5550100")}},
	})
	require.NoError(t, err)
	require.Equal(t, uuid.UUID(id), res.ID)
	require.Equal(t, "Spring sale", res.Title)
	require.Equal(t, v1specs.CampaignStatusDraft, res.Status)
}

func TestCreateCampaign_TitleRequired(t *testing.T) {
	f := newHandlerFixture(t)

	_, err := f.h.CreateCampaign(f.ctx, &v1specs.CampaignInput{Title: v1specs.NewOptString("  ")})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	res := f.h.NewError(f.ctx, err)
	require.Equal(t, "title is required", res.Response.Message)
}

func TestListCampaigns(t *testing.T) {
	f := newHandlerFixture(t)
	c := domain.Campaign{ID: domain.CampaignID(uuid.New()), Title: "A", Status: domain.CampaignStatusLaunched}
	cursor := "2026-01-02T03:04:05Z_" + uuid.UUID(c.ID).String()

	f.campaigns.EXPECT().List(gomock.Any(), f.userID, domain.CampaignStatusLaunched, cursor, uint(5)).
		Return([]domain.Campaign{c}, "next-page", nil)

	page, err := f.h.ListCampaigns(f.ctx, v1specs.ListCampaignsParams{
		Status: v1specs.NewOptCampaignStatus(v1specs.CampaignStatusLaunched),
		Cursor: v1specs.NewOptString(cursor),
		Limit:  v1specs.NewOptInt(5),
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, uuid.UUID(c.ID), page.Items[0].ID)

	next, ok := page.NextCursor.Get()
	require.True(t, ok)
	require.Equal(t, "next-page", next)
}

func TestListCampaigns_LastPage(t *testing.T) {
	f := newHandlerFixture(t)
	f.campaigns.EXPECT().List(gomock.Any(), f.userID, domain.CampaignStatus(""), "", uint(v1handler.DefaultLimit)).
		Return(nil, "", nil)

	page, err := f.h.ListCampaigns(f.ctx, v1specs.ListCampaignsParams{})
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.NotNil(t, page.Items)
	require.True(t, page.NextCursor.IsSet())
	require.True(t, page.NextCursor.IsNull())
}

func TestGetCampaign_NotFound(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	f.campaigns.EXPECT().Get(gomock.Any(), f.userID, domain.CampaignID(id)).
		Return(nil, serrors.With(serrors.ErrNotFound, "campaign not found"))

	_, err := f.h.GetCampaign(f.ctx, v1specs.GetCampaignParams{CampaignID: id})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	res := f.h.NewError(f.ctx, err)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, v1specs.Error{Code: "NOT_FOUND", Message: "campaign not found"}, res.Response)
}

func TestUpdateCampaign(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()

	f.campaigns.EXPECT().Update(gomock.Any(), f.userID, domain.CampaignID(id), gomock.Any()).
		DoAndReturn(func(_ any, _ domain.UserID, _ domain.CampaignID, u campaign.Update) (*domain.Campaign, error) {
			require.NotNil(t, u.PreviewText)
			require.Equal(t, "Hi there", *u.PreviewText)
			require.Nil(t, u.Title)
			require.Nil(t, u.Contacts)
			require.NotNil(t, u.Assets)
			require.Empty(t, *u.Assets)
			require.Equal(t, campaign.ContactsFileRemove, u.ContactsFileAction)

			return &domain.Campaign{ID: domain.CampaignID(id), PreviewText: *u.PreviewText}, nil
		})

	res, err := f.h.UpdateCampaign(f.ctx, &v1specs.CampaignInput{
		PreviewText:        v1specs.NewOptString("Hi there"),
		Assets:             []v1specs.Asset{},
		ContactsFileAction: v1specs.NewOptString(campaign.ContactsFileRemove),
	}, v1specs.UpdateCampaignParams{CampaignID: id})
	require.NoError(t, err)
	require.Equal(t, "Hi there", res.PreviewText.Value)
}

func TestDeleteCampaign(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	f.campaigns.EXPECT().Delete(gomock.Any(), f.userID, domain.CampaignID(id)).Return(nil)

	require.NoError(t, f.h.DeleteCampaign(f.ctx, v1specs.DeleteCampaignParams{CampaignID: id}))
}

func TestGetCampaignDetails(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	d := &campaign.Details{ID: domain.CampaignID(id), Title: "Spring", PreviewText: "Hi"}
	d.AudioURLs.Voice = "https://cdn.example.com/v.mp3"
	d.Assets = []domain.Asset{{URL: "https://cdn.example.com/a.png", Type: domain.AssetTypeImage}}
	f.campaigns.EXPECT().Details(gomock.Any(), f.userID, domain.CampaignID(id)).Return(d, nil)

	res, err := f.h.GetCampaignDetails(f.ctx, v1specs.GetCampaignDetailsParams{CampaignID: id})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/v.mp3", res.AudioUrls.Voice.Value)
	require.False(t, res.AudioUrls.Calls.IsSet())
	require.Len(t, res.Assets, 1)
	require.Equal(t, v1specs.AssetTypeImage, res.Assets[0].Type.Value)
}

func TestExtractContacts(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	found := []domain.Contact{{Name: "Ana", Phone: "5550100"}, {Name: "Bob", Phone: "5550101"}}
	f.campaigns.EXPECT().ExtractContacts(gomock.Any(), f.userID, domain.CampaignID(id)).Return(found, nil)

	res, err := f.h.ExtractContacts(f.ctx, v1specs.ExtractContactsParams{CampaignID: id})
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)
	require.Equal(t, "Bob", res.Contacts[1].Name.Value)
	require.False(t, res.Contacts[1].ID.IsSet())
}

func TestGenerateDescription(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	f.campaigns.EXPECT().
		GenerateDescription(gomock.Any(), f.userID, domain.CampaignID(id), llm.DescriptionInput{WordLimit: 50, Tone: "warm"}).
		Return("Shiny", nil)

	res, err := f.h.GenerateDescription(f.ctx, &v1specs.DescriptionRequest{
		WordLimit: v1specs.NewOptInt(50),
		Tone:      v1specs.NewOptString("warm"),
	}, v1specs.GenerateDescriptionParams{CampaignID: id})
	require.NoError(t, err)
	require.Equal(t, "Shiny", res.AiDescription)
}

func TestGenerateDescription_UpstreamFailure(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	f.campaigns.EXPECT().GenerateDescription(gomock.Any(), f.userID, domain.CampaignID(id), llm.DescriptionInput{}).
		Return("", serrors.With(serrors.ErrUpstream, "language model failed"))

	_, err := f.h.GenerateDescription(f.ctx, &v1specs.DescriptionRequest{}, v1specs.GenerateDescriptionParams{CampaignID: id})
	require.Error(t, err)

	res := f.h.NewError(f.ctx, err)
	require.Equal(t, 502, res.StatusCode)
	require.Equal(t, "UPSTREAM", res.Response.Code)
}

func TestLaunchCampaign(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	launched := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f.campaigns.EXPECT().Launch(gomock.Any(), f.userID, domain.CampaignID(id)).
		Return(&domain.Campaign{ID: domain.CampaignID(id), Status: domain.CampaignStatusLaunched, LaunchedAt: &launched}, nil)

	res, err := f.h.LaunchCampaign(f.ctx, v1specs.LaunchCampaignParams{CampaignID: id})
	require.NoError(t, err)
	require.Equal(t, v1specs.CampaignStatusLaunched, res.Status)
	require.Equal(t, launched, res.LaunchedAt.Value)
}
