// Package config handles configuration for the server component,
// including defaults, environment variables, and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

// ErrMissingJWTSecret возвращается, если не задан секрет подписи токенов.
// Без секрета сервер не стартует: это требование конфигурации,
// а не runtime-сюрприз.
var ErrMissingJWTSecret = errors.New("jwt secret is required (set GOSHOP_JWT_SECRET)")

// Config holds runtime settings for the GoShop server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DatabasePath: path to the SQLite database file.
//   - JWTSecret: HMAC secret for signing session tokens (HS256).
//     Rotating it invalidates all outstanding tokens.
//   - TokenTTL: session token lifetime.
//   - AdminEmail / AdminPassword: optional bootstrap admin account,
//     created at startup if no account with that email exists.
type Config struct {
	Addr          string
	DatabasePath  string
	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: JWTSecret has no default on purpose.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabasePath = "goshop.db"
	c.TokenTTL = 7 * 24 * time.Hour
}

// Load builds a Config by applying defaults, then overlaying values
// from environment variables and finally from command-line flags.
// Returns ErrMissingJWTSecret if no signing secret was provided.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := cfg.parseEnv(); err != nil {
		return nil, err
	}
	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

// parseEnv overlays Config fields from environment variables
func (c *Config) parseEnv() error {
	if v := os.Getenv("GOSHOP_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("GOSHOP_DATABASE_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("GOSHOP_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("GOSHOP_TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid GOSHOP_TOKEN_TTL: %w", err)
		}
		c.TokenTTL = ttl
	}
	if v := os.Getenv("GOSHOP_ADMIN_EMAIL"); v != "" {
		c.AdminEmail = v
	}
	if v := os.Getenv("GOSHOP_ADMIN_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	return nil
}

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     HTTP bind address (e.g., ":8080")
//	-d string     SQLite database path
//	-s string     JWT HMAC secret key
//	-t duration   session token TTL (e.g., "168h")
func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("goshop-server", flag.ContinueOnError)

	fs.StringVar(&c.Addr, "a", c.Addr, "address and port to run server")
	fs.StringVar(&c.DatabasePath, "d", c.DatabasePath, "path to SQLite database")
	fs.StringVar(&c.JWTSecret, "s", c.JWTSecret, "JWT signing secret")
	fs.DurationVar(&c.TokenTTL, "t", c.TokenTTL, "session token TTL")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	return nil
}
