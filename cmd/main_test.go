package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	require.Equal(t, []string{"-c", "prod.yml"}, configArgs([]string{"-c", "prod.yml", "serve"}))
	require.Equal(t, []string{"-c", "prod.yml"}, configArgs([]string{"serve", "--config", "prod.yml"}))
	require.Equal(t, []string{"-c=prod.yml"}, configArgs([]string{"inbox", "migrate", "-c=prod.yml", "--user", "x"}))
	require.Equal(t, []string{"-c=prod.yml"}, configArgs([]string{"migrate", "--config=prod.yml"}))
	require.Nil(t, configArgs([]string{"jwt", "--subject", "x"}))
	require.Nil(t, configArgs([]string{"serve", "-c"}))
}
