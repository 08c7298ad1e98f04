package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env          string `envconfig:"CHARIOT_ENV" default:"development"`
	Port         string `envconfig:"CHARIOT_PORT" default:"8080"`
	DatabasePath string `envconfig:"CHARIOT_DATABASE_PATH" default:"chicchariot.db"`

	LogLevel  string `envconfig:"CHARIOT_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"CHARIOT_LOG_FORMAT" default:"console"`

	AllowedOrigins string `envconfig:"CHARIOT_ALLOWED_ORIGINS" default:"http://localhost:5173"`

	MailgunAPIKey      string `envconfig:"CHARIOT_MAILGUN_API_KEY"`
	MailgunDomain      string `envconfig:"CHARIOT_MAILGUN_DOMAIN"`
	MailgunSenderEmail string `envconfig:"CHARIOT_MAILGUN_SENDER_EMAIL" default:"orders@chicchariot.example"`
	MailgunSenderName  string `envconfig:"CHARIOT_MAILGUN_SENDER_NAME" default:"Chic Chariot"`
	OrderNotifyEmail   string `envconfig:"CHARIOT_ORDER_NOTIFY_EMAIL"`
}

func Load() (*Config, error) {
	// A missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}
