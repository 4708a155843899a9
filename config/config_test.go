package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://evoxa.co.uk", cfg.BaseURL)
	assert.Equal(t, "users.json", cfg.UsersFile)
	assert.Equal(t, "usage.json", cfg.UsageFile)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, "smtp", cfg.MailProvider)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAIL_PROVIDER", "sendgrid")
	t.Setenv("OPENAI_MODEL", "gpt-4o")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sendgrid", cfg.MailProvider)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
}

func TestLoadRejectsUnknownMailProvider(t *testing.T) {
	t.Setenv("MAIL_PROVIDER", "pigeon")

	_, err := Load()
	assert.Error(t, err)
}
