package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fl196/daily-news-bot/internal/digest"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	t.Setenv(envMarker, "") // force the file source
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
email:
  smtp_server: mail.example.com
  smtp_port: 2525
  sender_email: bot@example.com
  sender_password: hunter2
  recipient_email: reader@example.com
news:
  api_key: test_api_key
  categories: [technology, health]
  country: in
  articles_per_category: 3
scheduler:
  time: "06:30"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mail.example.com", cfg.Email.SMTPServer)
	assert.Equal(t, 2525, cfg.Email.SMTPPort)
	assert.Equal(t, "bot@example.com", cfg.Email.SenderEmail)
	assert.Equal(t, "reader@example.com", cfg.Email.RecipientEmail)
	assert.Equal(t, "test_api_key", cfg.News.APIKey)
	assert.Equal(t, 3, cfg.News.ArticlesPerCategory)
	assert.Equal(t, "06:30", cfg.Scheduler.Time)
	assert.Equal(t, "email", cfg.Output)
	assert.Equal(t, []digest.Category{digest.Technology, digest.Health}, cfg.DigestCategories())
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
email:
  sender_email: bot@example.com
  sender_password: hunter2
  recipient_email: reader@example.com
news:
  api_key: test_api_key
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "smtp.gmail.com", cfg.Email.SMTPServer)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, "in", cfg.News.Country)
	assert.Equal(t, 4, cfg.News.ArticlesPerCategory)
	assert.Equal(t, "07:00", cfg.Scheduler.Time)
	assert.Len(t, cfg.News.Categories, len(digest.Order))
	assert.Equal(t, digest.Order, cfg.DigestCategories())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EMAIL_SENDER", "bot@example.com")
	t.Setenv("EMAIL_PASSWORD", "hunter2")
	t.Setenv("EMAIL_RECIPIENT", "reader@example.com")
	t.Setenv("NEWS_API_KEY", "env_api_key")
	t.Setenv("SCHEDULER_TIME", "05:45")

	cfg, err := Load("does-not-exist.yaml")
	require.NoError(t, err, "env source must not touch the file")

	assert.Equal(t, "bot@example.com", cfg.Email.SenderEmail)
	assert.Equal(t, "env_api_key", cfg.News.APIKey)
	assert.Equal(t, "05:45", cfg.Scheduler.Time)
	assert.Equal(t, "smtp.gmail.com", cfg.Email.SMTPServer)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
}

func TestLoadFromEnvMissingRequired(t *testing.T) {
	t.Setenv("EMAIL_SENDER", "bot@example.com")
	t.Setenv("EMAIL_PASSWORD", "")
	t.Setenv("EMAIL_RECIPIENT", "reader@example.com")
	t.Setenv("NEWS_API_KEY", "env_api_key")

	_, err := Load("does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sender_password")
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(envMarker, "")
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "{not yaml: [")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadMissingAPIKey(t *testing.T) {
	path := writeConfig(t, `
email:
  sender_email: bot@example.com
  sender_password: hunter2
  recipient_email: reader@example.com
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")
}

func TestLoadUnknownCategory(t *testing.T) {
	path := writeConfig(t, `
email:
  sender_email: bot@example.com
  sender_password: hunter2
  recipient_email: reader@example.com
news:
  api_key: test_api_key
  categories: [technology, sports]
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown news category "sports"`)
}

func TestLoadStdoutOutputNeedsNoEmail(t *testing.T) {
	path := writeConfig(t, `
output: stdout
news:
  api_key: test_api_key
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "stdout", cfg.Output)
}

func TestEnvVarExpansion(t *testing.T) {
	t.Setenv("TEST_SENDER_PASSWORD", "secret-from-env")
	path := writeConfig(t, `
email:
  sender_email: bot@example.com
  sender_password: ${TEST_SENDER_PASSWORD}
  recipient_email: reader@example.com
news:
  api_key: test_api_key
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-from-env", cfg.Email.SenderPassword)
}
