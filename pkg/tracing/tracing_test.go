package tracing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"outreach/pkg/tracing"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := tracing.Setup(context.Background(), "", "outreach")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_WithEndpoint(t *testing.T) {
	shutdown, err := tracing.Setup(context.Background(), "http://127.0.0.1:4318/v1/traces", "outreach")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
