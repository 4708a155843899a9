package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port    string
	BaseURL string

	UsersFile string
	UsageFile string

	OwnerEmail   string
	MailProvider string // "smtp" or "sendgrid"

	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
	SendGridKey    string

	SlackWebhookURL string

	OpenAIKey   string
	OpenAIModel string
}

// Load reads all settings from the environment. Only the mail and
// completion credentials have no defaults; everything else falls back
// to values that work for local development.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("BASE_URL", "https://evoxa.co.uk")
	v.SetDefault("USERS_FILE", "users.json")
	v.SetDefault("USAGE_FILE", "usage.json")
	v.SetDefault("OWNER_EMAIL", "harshaladari@evoxa.co.uk")
	v.SetDefault("MAIL_PROVIDER", "smtp")
	v.SetDefault("ZOHO_SMTP_PORT", 465)
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")

	cfg := &Config{
		Port:            v.GetString("PORT"),
		BaseURL:         v.GetString("BASE_URL"),
		UsersFile:       v.GetString("USERS_FILE"),
		UsageFile:       v.GetString("USAGE_FILE"),
		OwnerEmail:      v.GetString("OWNER_EMAIL"),
		MailProvider:    v.GetString("MAIL_PROVIDER"),
		SMTPHost:        v.GetString("ZOHO_SMTP_HOST"),
		SMTPPort:        v.GetInt("ZOHO_SMTP_PORT"),
		SenderEmail:     v.GetString("ZOHO_SENDER_EMAIL"),
		SenderPassword:  v.GetString("ZOHO_SENDER_PASSWORD"),
		SendGridKey:     v.GetString("SENDGRID_API_KEY"),
		SlackWebhookURL: v.GetString("SLACK_WEBHOOK_URL"),
		OpenAIKey:       v.GetString("OPENAI_API_KEY"),
		OpenAIModel:     v.GetString("OPENAI_MODEL"),
	}

	if cfg.MailProvider != "smtp" && cfg.MailProvider != "sendgrid" {
		return nil, fmt.Errorf("unknown MAIL_PROVIDER %q", cfg.MailProvider)
	}

	return cfg, nil
}
