package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequire(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
		wantErr  bool
	}{
		{name: "Valor presente", value: "abc", expected: "abc"},
		{name: "Valor com espaços", value: "  abc  ", expected: "abc"},
		{name: "Vazio", value: "", wantErr: true},
		{name: "Apenas espaços", value: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Require("MAILCHIMP_API_KEY", tt.value)

			if tt.wantErr {
				require.Error(t, err)
				var missing *MissingConfigError
				require.True(t, errors.As(err, &missing))
				assert.Equal(t, "MAILCHIMP_API_KEY", missing.Name)
				assert.Equal(t, "missing required configuration: MAILCHIMP_API_KEY", err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		expected string
	}{
		{
			name:     "Mailchimp sem servidor é reportado primeiro",
			validate: Mailchimp{}.Validate,
			expected: "missing required configuration: MAILCHIMP_SERVER",
		},
		{
			name:     "Mailchimp sem chave",
			validate: Mailchimp{Server: "us21"}.Validate,
			expected: "missing required configuration: MAILCHIMP_API_KEY",
		},
		{
			name:     "Mailchimp completo",
			validate: Mailchimp{Server: "us21", APIKey: "k"}.Validate,
		},
		{
			name:     "PostHog sem chave",
			validate: PostHog{ProjectID: "1"}.Validate,
			expected: "missing required configuration: POSTHOG_API_KEY",
		},
		{
			name:     "PostHog sem projeto",
			validate: PostHog{APIKey: "k"}.Validate,
			expected: "missing required configuration: POSTHOG_PROJECT_ID",
		},
		{
			name:     "PostHog sem host usa o padrão",
			validate: PostHog{APIKey: "k", ProjectID: "1"}.Validate,
		},
		{
			name:     "Mail smtp sem senha",
			validate: Mail{User: "a@b.com"}.Validate,
			expected: "missing required configuration: GMAIL_PASSWORD",
		},
		{
			name:     "Mail ses não exige senha",
			validate: Mail{Transport: MailTransportSES, User: "a@b.com", SESRegion: "us-east-1"}.Validate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate()

			if tt.expected == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestMail_To(t *testing.T) {
	assert.Equal(t, "a@b.com", Mail{User: " a@b.com "}.To())
	assert.Equal(t, "c@d.com", Mail{User: "a@b.com", Recipient: "c@d.com"}.To())
}

func TestNewConfig(t *testing.T) {
	t.Setenv("MAILCHIMP_API_KEY", "mc-key")
	t.Setenv("MAILCHIMP_SERVER", "us21")
	t.Setenv("MAILCHIMP_REQUEST_DELAY", "1s")
	t.Setenv("POSTHOG_HOST", "https://eu.posthog.com/")
	t.Setenv("MAIL_TRANSPORT", " SES ")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, "mc-key", cfg.Mailchimp.APIKey)
	assert.Equal(t, "us21", cfg.Mailchimp.Server)
	assert.Equal(t, time.Second, cfg.Mailchimp.RequestDelay)
	assert.Equal(t, 10, cfg.Mailchimp.CampaignLimit)
	assert.Equal(t, 5, cfg.Mailchimp.ReportLimit)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "https://eu.posthog.com", cfg.PostHog.Host)
	assert.Equal(t, MailTransportSES, cfg.Mail.Transport)
	assert.Equal(t, 2525, cfg.Mail.SMTPPort)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.SMTPHost)
	assert.Equal(t, "", cfg.Schedule.CronSchedule)
}
