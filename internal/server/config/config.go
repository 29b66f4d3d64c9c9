// Package config handles configuration for the server component,
// including defaults, .env and environment overlay, JSON overlay, and
// command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the notekeeper server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the REST endpoint.
//   - DatabaseDSN: postgres:// DSN (pgx) or sqlite:/file:/:memory: (modernc sqlite).
//   - SecretKey: HMAC secret for signing JWTs (HS256).
//   - AccessTokenValidityDuration: bearer token lifetime.
//   - BcryptCost: work factor for password hashes.
//   - CORSAllowedOrigins: browser origins allowed to call the API.
//   - LogLevel / LogFormat: slog level name and "json" or "text".
type Config struct {
	EndpointAddrHTTP            string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	BcryptCost                  int
	CORSAllowedOrigins          []string
	LogLevel                    string
	LogFormat                   string
}

// LoadDefaults populates Config with development defaults. DatabaseDSN and
// SecretKey have none and must be supplied.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.BcryptCost = bcrypt.DefaultCost
	c.CORSAllowedOrigins = []string{"*"}
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// Validate reports missing or out-of-range settings as common.ErrorConfig.
func (c *Config) Validate() error {
	switch {
	case c.SecretKey == "":
		return fmt.Errorf("%w: secret key is required (SECRET_KEY or -s)", common.ErrorConfig)
	case c.DatabaseDSN == "":
		return fmt.Errorf("%w: database DSN is required (DATABASE_URL or -d)", common.ErrorConfig)
	case c.EndpointAddrHTTP == "":
		return fmt.Errorf("%w: listen address is empty", common.ErrorConfig)
	case c.AccessTokenValidityDuration <= 0:
		return fmt.Errorf("%w: access token lifetime must be positive", common.ErrorConfig)
	case c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost:
		return fmt.Errorf("%w: bcrypt cost %d outside [%d, %d]", common.ErrorConfig, c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	case c.LogFormat != "json" && c.LogFormat != "text":
		return fmt.Errorf("%w: log format %q", common.ErrorConfig, c.LogFormat)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the .env file and the environment, an optional JSON file and finally
// command-line flags. The result is validated.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorConfig, err)
	}
	if err := parseJson(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorConfig, err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
