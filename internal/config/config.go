package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BotToken    string `env:"BOT_TOKEN,required"`
	OwnerID     int64  `env:"OWNER_ID"`
	WebhookHost string `env:"WEBHOOK_HOST"`
	Port        string `env:"PORT" envDefault:"8080"`
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	EnableTelemetry bool `env:"ENABLE_TELEMETRY" envDefault:"true"`

	VerifyTTL           time.Duration `env:"VERIFY_TTL" envDefault:"24h"`
	VerifySweepInterval time.Duration `env:"VERIFY_SWEEP_INTERVAL" envDefault:"1m"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Printf("Config loaded. Port: %s, LogLevel: %s", cfg.Port, cfg.LogLevel)
	return cfg, nil
}
