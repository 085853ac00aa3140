package config

import (
	"context"
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Environment holds every tunable the gateway reads at startup.
// Values come from the process environment (see .env loading in main).
type Environment struct {
	Port string `envconfig:"PORT" default:"8081"`

	// Upstream commerce API (catalog, inventory, orders, accounts).
	UpstreamBaseURL string        `envconfig:"UPSTREAM_BASE_URL" default:"http://localhost:8000"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`

	RedisURL string `envconfig:"REDIS_URL" default:"redis://localhost:6379"`

	JWTSecret string        `envconfig:"JWT_SECRET"`
	JWTExpiry time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`

	// Catalog refresh loop.
	CatalogPollInterval time.Duration `envconfig:"CATALOG_POLL_INTERVAL" default:"5s"`

	// Checkout pricing: flat discount applied when the subtotal strictly
	// exceeds the threshold. Amounts are VND.
	DiscountThreshold float64 `envconfig:"DISCOUNT_THRESHOLD" default:"10000000"`
	DiscountAmount    float64 `envconfig:"DISCOUNT_AMOUNT" default:"500000"`

	// Fallback release year when the upstream record has no release date.
	DefaultReleaseYear int `envconfig:"DEFAULT_RELEASE_YEAR" default:"2024"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

var Env Environment

func LoadEnvironment() {
	if err := envconfig.Process("", &Env); err != nil {
		log.Fatalf("❌ Failed to load environment: %v", err)
	}
	log.Printf("✅ Environment loaded (upstream: %s, poll interval: %s)", Env.UpstreamBaseURL, Env.CatalogPollInterval)
}

// WithTimeout returns a context bounded by the upstream timeout. Used by
// controllers for every Redis and upstream round-trip.
func WithTimeout() (context.Context, context.CancelFunc) {
	d := Env.UpstreamTimeout
	if d == 0 {
		d = 10 * time.Second
	}
	return context.WithTimeout(context.Background(), d)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
