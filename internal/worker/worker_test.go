package worker_test

import (
	"context"
	"errors"
	"outreach/internal/inbox"
	mockinbox "outreach/internal/inbox/mock"
	"outreach/internal/worker"
	"outreach/pkg/domain"
	"outreach/pkg/logger"
	"outreach/pkg/serrors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob[T river.JobArgs](id int64, args T) *river.Job[T] {
	return &river.Job[T]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   args,
	}
}

func fanOutArgs(mode inbox.Mode) inbox.FanOutArgs {
	return inbox.NewFanOutArgs(domain.UserID(uuid.New()), domain.CampaignID(uuid.New()), mode, 3, 0)
}

func TestFanOutWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockinbox.NewMockService(ctrl)
	w := worker.NewFanOutWorker(svc)

	args := fanOutArgs(inbox.ModeLaunch)
	svc.EXPECT().Materialize(gomock.Any(), args.UserID, args.CampaignID, inbox.ModeLaunch).
		Return(inbox.MaterializeResult{Contacts: 3, ThreadsCreated: 3, Batches: 1}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, args)))
}

func TestFanOutWorker_Work_CancelsOnMissingCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockinbox.NewMockService(ctrl)
	w := worker.NewFanOutWorker(svc)

	args := fanOutArgs(inbox.ModeResync)
	svc.EXPECT().Materialize(gomock.Any(), args.UserID, args.CampaignID, inbox.ModeResync).
		Return(inbox.MaterializeResult{}, serrors.With(serrors.ErrNotFound, "campaign not found"))

	err := w.Work(context.Background(), makeJob(2, args))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestFanOutWorker_Work_RetriesOtherErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockinbox.NewMockService(ctrl)
	w := worker.NewFanOutWorker(svc)

	dbErr := errors.New("connection reset")
	args := fanOutArgs(inbox.ModeLaunch)
	svc.EXPECT().Materialize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(inbox.MaterializeResult{}, dbErr)

	err := w.Work(context.Background(), makeJob(3, args))
	require.ErrorIs(t, err, dbErr)
	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}

func TestAutoReplyWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockinbox.NewMockService(ctrl)
	w := worker.NewAutoReplyWorker(svc)

	args := inbox.AutoReplyArgs{
		UserID:     domain.UserID(uuid.New()),
		CampaignID: domain.CampaignID(uuid.New()),
		ContactID:  "5550100_0",
	}
	svc.EXPECT().AutoReply(gomock.Any(), args).Return(&domain.Message{ID: "ai_1"}, nil)
	require.NoError(t, w.Work(context.Background(), makeJob(4, args)))

	svc.EXPECT().AutoReply(gomock.Any(), args).Return(nil, serrors.With(serrors.ErrNotFound, "thread not found"))
	err := w.Work(context.Background(), makeJob(5, args))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	require.NotNil(t, worker.NewWorkers(mockinbox.NewMockService(ctrl)))
}
