package campaign_test

import (
	"outreach/pkg/logger"
	"testing"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}
