// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file if
// one exists), loads them into structured Go types, and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (holiday source,
//     server timeouts, observability).
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: triggers godotenv's autoload feature.
	// If a `.env` file exists, it gets loaded into the process env
	// before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

/*
	`koanf` reads config sources and unmarshals them into structs.

	Key idea in this file:
	- Env vars are read using a prefix: HOLIDAY_
	- Keys are normalized (lowercased, prefix removed)
	- Nesting uses "." in the key. Because most shells refuse dots in
	  variable names, a double underscore is accepted as well:
	    HOLIDAY_SERVER.PORT   -> server.port
	    HOLIDAY_SERVER__PORT  -> server.port
	- Comma separated values become slices:
	    HOLIDAY_HOLIDAYS__STATIC="New Year's Day=2024-01-01,Independence Day=2024-07-04"
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "HOLIDAY_"

// listKeys are the koanf keys whose env value is a comma separated list.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":        true,
	"holidays.static":                    true,
	"observability.health_checks.checks": true,
}

// Config is the root configuration object for the application.
//
// Database and SQLite are pointers because they only matter for the
// matching holiday source. Observability is a pointer because it is
// optional; defaults are injected before the env is applied.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Holidays      HolidaysConfig       `koanf:"holidays" validate:"required"`
	Database      *DatabaseConfig      `koanf:"database"`
	SQLite        *SQLiteConfig        `koanf:"sqlite"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string          `koanf:"port" validate:"required"`
	ReadTimeout        int             `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int             `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int             `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string        `koanf:"cors_allowed_origins" validate:"required"`
	RateLimit          RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig throttles clients per IP address.
type RateLimitConfig struct {
	Enabled           bool    `koanf:"enabled"`
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"required_if=Enabled true,gte=0"`
	Burst             int     `koanf:"burst" validate:"required_if=Enabled true,gte=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// Only required when holidays.source is "postgres".
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// SQLiteConfig points at a SQLite database file holding a holidays table.
// Only required when holidays.source is "sqlite".
type SQLiteConfig struct {
	Path string `koanf:"path" validate:"required"`
}

// DefaultConfig returns the configuration used before any env var is applied.
//
// primary.env has no default on purpose: the environment must be chosen
// explicitly, otherwise validation fails.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Enabled:           false,
				RequestsPerSecond: 20,
				Burst:             40,
			},
		},
		Holidays:      DefaultHolidaysConfig(),
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables on top of
// DefaultConfig, validates it, and returns the resulting config.
//
// Behavior summary:
//   - Loads env vars with prefix HOLIDAY_
//   - Converts env keys into koanf keys using "." nesting
//   - Unmarshals into Config (defaults survive for keys that are not set)
//   - Validates struct tags, then cross-field rules
//   - Overrides observability service name + environment
//
// Unlike a fatal loader it returns the error; the caller decides whether
// to exit.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load env variables")
	}

	mainConfig := DefaultConfig()

	// Unmarshal reads the flat key-value store from koanf and fills
	// mainConfig. "" means "unmarshal everything from the root".
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal main config")
	}

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// Validate runs struct-tag validation and every custom rule.
//
// It also pins observability naming so logs and traces always carry the
// same service name and the primary environment.
func (c *Config) Validate() error {
	validate := validator.New()

	// Validate the entire config struct recursively. Nil pointer blocks
	// (database, sqlite) are skipped here and checked against the
	// selected source below.
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "config validation failed")
	}

	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env

	if err := c.Observability.Validate(); err != nil {
		return errors.Wrap(err, "invalid observability config")
	}

	if err := c.Holidays.Validate(c); err != nil {
		return errors.Wrap(err, "invalid holidays config")
	}

	return nil
}

// envKey maps HOLIDAY_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// envValue normalizes the key and splits list values on commas. Entries
// are trimmed and empty ones dropped.
func envValue(s, v string) (string, interface{}) {
	key := envKey(s)
	if !listKeys[key] {
		return key, v
	}

	items := make([]string, 0, strings.Count(v, ",")+1)
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}
