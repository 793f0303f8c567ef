package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	MailTransportSMTP = "smtp"
	MailTransportSES  = "ses"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	HTTP      HTTP      `mapstructure:",squash"`
	Mailchimp Mailchimp `mapstructure:",squash"`
	PostHog   PostHog   `mapstructure:",squash"`
	Mail      Mail      `mapstructure:",squash"`
	Schedule  Schedule  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type HTTP struct {
	Timeout time.Duration `mapstructure:"http_timeout"`
}

type Mailchimp struct {
	APIKey        string        `mapstructure:"mailchimp_api_key"`
	Server        string        `mapstructure:"mailchimp_server"`
	BaseURL       string        `mapstructure:"mailchimp_base_url"`
	CampaignLimit int           `mapstructure:"mailchimp_campaign_limit"`
	ReportLimit   int           `mapstructure:"mailchimp_report_limit"`
	RequestDelay  time.Duration `mapstructure:"mailchimp_request_delay"`
}

type PostHog struct {
	APIKey    string `mapstructure:"posthog_api_key"`
	ProjectID string `mapstructure:"posthog_project_id"`
	Host      string `mapstructure:"posthog_host"`
}

type Mail struct {
	Transport          string `mapstructure:"mail_transport"`
	User               string `mapstructure:"gmail_user"`
	Password           string `mapstructure:"gmail_password"`
	Recipient          string `mapstructure:"report_recipient"`
	SMTPHost           string `mapstructure:"smtp_host"`
	SMTPPort           int    `mapstructure:"smtp_port"`
	SESRegion          string `mapstructure:"ses_region"`
	SESAccessKeyID     string `mapstructure:"ses_access_key_id"`
	SESSecretAccessKey string `mapstructure:"ses_secret_access_key"`
}

type Schedule struct {
	CronSchedule string `mapstructure:"report_cron"`
}

// Validate garante as credenciais da Mailchimp antes de qualquer requisição
func (m Mailchimp) Validate() error {
	if _, err := Require("MAILCHIMP_SERVER", m.Server); err != nil {
		return err
	}
	_, err := Require("MAILCHIMP_API_KEY", m.APIKey)
	return err
}

// Validate garante as credenciais do PostHog. O host tem valor padrão.
func (p PostHog) Validate() error {
	if _, err := Require("POSTHOG_API_KEY", p.APIKey); err != nil {
		return err
	}
	_, err := Require("POSTHOG_PROJECT_ID", p.ProjectID)
	return err
}

// Validate garante as credenciais de envio para o transporte configurado
func (m Mail) Validate() error {
	if _, err := Require("GMAIL_USER", m.User); err != nil {
		return err
	}

	switch m.Transport {
	case MailTransportSES:
		_, err := Require("SES_REGION", m.SESRegion)
		return err
	default:
		_, err := Require("GMAIL_PASSWORD", m.Password)
		return err
	}
}

// To retorna o destinatário do relatório; sem REPORT_RECIPIENT o relatório vai para a própria conta
func (m Mail) To() string {
	if to := strings.TrimSpace(m.Recipient); to != "" {
		return to
	}
	return strings.TrimSpace(m.User)
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("HTTP_TIMEOUT", "30s")

	viper.SetDefault("MAILCHIMP_API_KEY", "")
	viper.SetDefault("MAILCHIMP_SERVER", "")
	viper.SetDefault("MAILCHIMP_BASE_URL", "") // vazio = https://<server>.api.mailchimp.com/3.0
	viper.SetDefault("MAILCHIMP_CAMPAIGN_LIMIT", 10)
	viper.SetDefault("MAILCHIMP_REPORT_LIMIT", 5)
	viper.SetDefault("MAILCHIMP_REQUEST_DELAY", "200ms") // pausa entre relatórios de campanha

	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_PROJECT_ID", "")
	viper.SetDefault("POSTHOG_HOST", "https://app.posthog.com")

	viper.SetDefault("MAIL_TRANSPORT", MailTransportSMTP)
	viper.SetDefault("GMAIL_USER", "")
	viper.SetDefault("GMAIL_PASSWORD", "")
	viper.SetDefault("REPORT_RECIPIENT", "")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SES_REGION", "us-east-1")
	viper.SetDefault("SES_ACCESS_KEY_ID", "")
	viper.SetDefault("SES_SECRET_ACCESS_KEY", "")

	viper.SetDefault("REPORT_CRON", "") // vazio = execução única
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("config: usando apenas variáveis de ambiente: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("config: erro ao decodificar configuração: %w", err)
	}

	config.PostHog.Host = strings.TrimRight(strings.TrimSpace(config.PostHog.Host), "/")
	if config.PostHog.Host == "" {
		config.PostHog.Host = "https://app.posthog.com"
	}
	config.Mail.Transport = strings.ToLower(strings.TrimSpace(config.Mail.Transport))
	config.Schedule.CronSchedule = strings.TrimSpace(config.Schedule.CronSchedule)

	return config, nil
}

// loadEnvFile carrega um .env opcional do diretório atual ou do diretório pai
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}
}
