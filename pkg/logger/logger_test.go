package logger_test

import (
	"context"
	"outreach/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetup_Environments(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet_PrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	custom := zap.NewNop()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
	require.NotEqual(t, custom, logger.Get(ctx))
}

func TestWithFields_KeepsLoggerUsable(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := logger.WithFields(context.Background(), zap.String("campaignID", "c1"), zap.Int("contacts", 3))
	require.NotNil(t, logger.Get(ctx))
	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug")
		logger.Info(ctx, "info")
		logger.Warn(ctx, "warn")
		logger.Error(ctx, "error")
	})
}

func TestIsDebug(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()
	require.True(t, logger.IsDebug(ctx))

	cfg := zap.NewProductionConfig()
	info, err := cfg.Build()
	require.NoError(t, err)
	require.False(t, logger.IsDebug(logger.WithLogger(ctx, info)))
}

func TestSetLevel(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	require.NoError(t, logger.SetLevel(""))
	require.True(t, logger.IsDebug(ctx))

	require.NoError(t, logger.SetLevel("warn"))
	require.False(t, logger.IsDebug(ctx))

	require.Error(t, logger.SetLevel("loud"))

	require.NoError(t, logger.SetLevel("debug"))
	require.True(t, logger.IsDebug(ctx))
}
