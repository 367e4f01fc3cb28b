package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenMinutes = 60
	defaultPort         = "8080"
	defaultCORSOrigins  = "http://localhost:5173"
)

var (
	ErrMissingSecret      = errors.New("TOUCHHUB_SECRET is not set")
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")
)

// Config holds the process configuration read from the environment.
type Config struct {
	Secret         string
	AccessTokenTTL time.Duration
	DatabaseURL    string
	CORSOrigins    []string
	Port           string
	BcryptCost     int
	LogLevel       slog.Level
	OTLPEndpoint   string
}

// LookupFunc matches the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads a .env file when one is present and then builds the Config
// from the process environment.
func Load() (*Config, error) {
	// A missing .env is fine; production sets the variables directly.
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds the Config using lookup to resolve variables.
func FromLookup(lookup LookupFunc) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		Secret:       get("TOUCHHUB_SECRET", ""),
		DatabaseURL:  get("DATABASE_URL", ""),
		Port:         get("PORT", defaultPort),
		CORSOrigins:  splitOrigins(get("CORS_ORIGINS", defaultCORSOrigins)),
		OTLPEndpoint: get("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	minutes, err := strconv.Atoi(get("ACCESS_TOKEN_EXPIRE_MINUTES", strconv.Itoa(defaultTokenMinutes)))
	if err != nil || minutes <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer")
	}
	cfg.AccessTokenTTL = time.Duration(minutes) * time.Minute

	cost, err := strconv.Atoi(get("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost)))
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	cfg.BcryptCost = cost

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// splitOrigins turns a comma separated list into origins without trailing slashes.
func splitOrigins(raw string) []string {
	var origins []string
	for _, p := range strings.Split(raw, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
