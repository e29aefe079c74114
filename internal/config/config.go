package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime configuration for the opsdesk API service.
type Config struct {
	Addr             string   `env:"ADDR,default=:8080"`
	DBDSN            string   `env:"DB_DSN,required"`
	NATSURL          string   `env:"NATS_URL"`
	OTLPEndpoint     string   `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS,default=http://localhost:5173"`
	OrganizationName string   `env:"ORG_NAME,default=Acme Trading Co"`
	USDToINRRate     float64  `env:"USD_TO_INR_RATE,default=83"`
	ActivityLimit    int      `env:"ACTIVITY_LIMIT,default=10"`
	AuditListLimit   int      `env:"AUDIT_LIST_LIMIT,default=100"`
}

// Load returns a Config populated from environment variables.
func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
