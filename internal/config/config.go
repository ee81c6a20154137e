package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, loaded from environment variables.
// Table names are resolved by the repositories themselves so local compose
// files can override them independently.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	AWSRegion        string `env:"AWS_REGION" envDefault:"us-east-1"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	PayPalClientID  string `env:"PAYPAL_CLIENT_ID"`
	PayPalSecret    string `env:"PAYPAL_CLIENT_SECRET"`
	PayPalWebhookID string `env:"PAYPAL_WEBHOOK_ID"`
	PayPalLive      bool   `env:"PAYPAL_LIVE" envDefault:"false"`

	StreamAPIKey    string `env:"STREAM_API_KEY"`
	StreamAPISecret string `env:"STREAM_API_SECRET"`

	// AdminID is the platform identity used as channel creator and as the
	// sender of system messages.
	AdminID string `env:"ADMIN_ID" envDefault:"serviexpress-admin"`

	ExpirySweepInterval time.Duration `env:"EXPIRY_SWEEP_INTERVAL" envDefault:"1h"`
	QueuePollTimeout    time.Duration `env:"QUEUE_POLL_TIMEOUT" envDefault:"5s"`
	WorkerMaxAttempts   int           `env:"WORKER_MAX_ATTEMPTS" envDefault:"5"`

	PlatformCommissionRate float64 `env:"PLATFORM_COMMISSION_RATE" envDefault:"0.05"`
	PlatformReceiverEmail  string  `env:"PLATFORM_RECEIVER_EMAIL"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
