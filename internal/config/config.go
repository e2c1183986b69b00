// Package config loads Snowflake connection settings from the environment.
//
// All settings come from SNOWFLAKE_* environment variables. Account, user,
// and password are mandatory; the rest scope the session and are optional.
// Configuration is read once at startup and is immutable afterwards.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/snowflakedb/gosnowflake"
)

// Config holds the credentials and session options for a Snowflake connection.
type Config struct {
	// Account is the Snowflake account identifier (e.g., "xy12345.eu-west-1").
	Account string

	// User is the login name.
	User string

	// Password is the login password. Never logged.
	Password string

	// Warehouse is the compute warehouse to use for queries. Optional.
	Warehouse string

	// Database is the default database for the session. Optional.
	Database string

	// Schema is the default schema for the session. Optional.
	Schema string

	// Role is the session role. Optional.
	Role string
}

// FromEnv reads the SNOWFLAKE_* environment variables into a Config.
//
// Required variables:
//   - SNOWFLAKE_ACCOUNT
//   - SNOWFLAKE_USER (or legacy SNOWFLAKE_USERNAME)
//   - SNOWFLAKE_PASSWORD
//
// Optional variables:
//   - SNOWFLAKE_WAREHOUSE, SNOWFLAKE_DATABASE, SNOWFLAKE_SCHEMA, SNOWFLAKE_ROLE
//
// Returns an error naming the missing variable if any required value is
// empty. The caller must treat that as fatal and not serve any requests.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Account:   getenv("SNOWFLAKE_ACCOUNT"),
		User:      getenv("SNOWFLAKE_USER"),
		Password:  getenv("SNOWFLAKE_PASSWORD"),
		Warehouse: getenv("SNOWFLAKE_WAREHOUSE"),
		Database:  getenv("SNOWFLAKE_DATABASE"),
		Schema:    getenv("SNOWFLAKE_SCHEMA"),
		Role:      getenv("SNOWFLAKE_ROLE"),
	}

	// Older deployments used SNOWFLAKE_USERNAME.
	if cfg.User == "" {
		cfg.User = getenv("SNOWFLAKE_USERNAME")
	}

	if cfg.Account == "" {
		return nil, fmt.Errorf("SNOWFLAKE_ACCOUNT is not set. Set it to your account identifier (e.g., xy12345.eu-west-1)")
	}
	if cfg.User == "" {
		return nil, fmt.Errorf("SNOWFLAKE_USER is not set. Set it to your Snowflake login name")
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("SNOWFLAKE_PASSWORD is not set. Set it to your Snowflake password")
	}

	return cfg, nil
}

// getenv reads an environment variable with surrounding whitespace trimmed.
func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// SnowflakeConfig maps the Config onto the driver's connection options.
func (c *Config) SnowflakeConfig() gosnowflake.Config {
	return gosnowflake.Config{
		Account:   c.Account,
		User:      c.User,
		Password:  c.Password,
		Warehouse: c.Warehouse,
		Database:  c.Database,
		Schema:    c.Schema,
		Role:      c.Role,
	}
}
