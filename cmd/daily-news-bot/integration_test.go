package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fl196/daily-news-bot/internal/config"
	"github.com/fl196/daily-news-bot/internal/digest"
	"github.com/fl196/daily-news-bot/internal/schedule"
)

func TestConfigToSchedulerIntegration(t *testing.T) {
	t.Setenv("EMAIL_SENDER", "")

	cfgContent := `
email:
  sender_email: bot@example.com
  sender_password: hunter2
  recipient_email: reader@example.com
news:
  api_key: test_api_key
  categories: [national, technology]
scheduler:
  time: "07:00"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfgContent), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	// configured categories resolve against the shared enumeration
	assert.Equal(t, []digest.Category{digest.National, digest.Technology}, cfg.DigestCategories())

	// the configured trigger time produces a valid daily cron spec
	spec, err := schedule.CronSpec(cfg.Scheduler.Time)
	require.NoError(t, err)
	assert.Equal(t, "0 7 * * *", spec)
}

func TestEnvConfigIntegration(t *testing.T) {
	t.Setenv("EMAIL_SENDER", "bot@example.com")
	t.Setenv("EMAIL_PASSWORD", "hunter2")
	t.Setenv("EMAIL_RECIPIENT", "reader@example.com")
	t.Setenv("NEWS_API_KEY", "env_key")

	cfg, err := config.Load("ignored.yaml")
	require.NoError(t, err)

	assert.Equal(t, "email", cfg.Output)
	assert.Equal(t, "07:00", cfg.Scheduler.Time)
	assert.Equal(t, digest.Order, cfg.DigestCategories())
}
