package config

import "time"

// B2BConfig carries the gateway credentials and transport tuning for the
// Magnit B2B client.
type B2BConfig struct {
	ClientID     string `env:"CLIENT_ID,required"`
	ClientSecret string `env:"CLIENT_SECRET,required"`
	// UseDemo switches the client to the UAT gateway instead of production.
	UseDemo bool `env:"USE_DEMO" envDefault:"false"`
	// PartnerID is required for last-mile claim operations.
	PartnerID string `env:"PARTNER_ID"`

	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// RateLimit is requests per minute allowed against the gateway; zero
	// disables client-side throttling.
	RateLimit int `env:"RATE_LIMIT" envDefault:"0"`
	Burst     int `env:"BURST" envDefault:"1"`
}

// ObservabilityConfig Observability / telemetry configuration
type ObservabilityConfig struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"magnit-b2b-cli"`
	ServiceEnv  string `env:"SERVICE_ENV" envDefault:"Development"`
	// e.g. "http://otel-collector:4317"; empty disables telemetry setup.
	OtelEndpoint string `env:"ENDPOINT"`
	Enabled      bool   `env:"ENABLED" envDefault:"false"`
}

type Config struct {
	Environment string `env:"APP_ENV" envDefault:"Development"`

	B2B           B2BConfig           `envPrefix:"B2B_"`
	Observability ObservabilityConfig `envPrefix:"OTEL_"`
}
