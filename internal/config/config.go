// Package config loads the service configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then an
// optional .env file, then process environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverRemote   = "remote"
)

// Config is the full service configuration.
type Config struct {
	Addr   string      `yaml:"addr"`
	WebDir string      `yaml:"web_dir"`
	Store  StoreConfig `yaml:"store"`
	Log    LogConfig   `yaml:"log"`
	Auth   AuthConfig  `yaml:"auth"`
}

// StoreConfig selects and configures the persistence gateway.
type StoreConfig struct {
	Driver      string      `yaml:"driver"`
	DatabaseURL string      `yaml:"database_url"`
	SQLitePath  string      `yaml:"sqlite_path"`
	Redis       RedisConfig `yaml:"redis"`
	RemoteURL   string      `yaml:"remote_url"`
	RemoteToken string      `yaml:"remote_token"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AuthConfig controls API authentication.
type AuthConfig struct {
	Disabled bool   `yaml:"disabled"`
	APIToken string `yaml:"api_token"`
	// ForwardHeader trusts the Remote-User header. Enable only behind a
	// proxy that strips it from client requests.
	ForwardHeader bool       `yaml:"forward_header"`
	OIDC          OIDCConfig `yaml:"oidc"`
}

// OIDCConfig configures single sign-on. SSO is enabled when Issuer is set.
type OIDCConfig struct {
	Issuer       string `yaml:"issuer"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:   ":8080",
		WebDir: "web",
		Store: StoreConfig{
			Driver:     DriverMemory,
			SQLitePath: "barista.db",
			Redis:      RedisConfig{Addr: "localhost:6379", Prefix: "barista:"},
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// Load builds the configuration. A missing file at path is not an error;
// an empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Addr, "ADDR")
	setString(&c.WebDir, "WEB_DIR")
	setString(&c.Store.Driver, "STORE_DRIVER")
	setString(&c.Store.DatabaseURL, "DATABASE_URL")
	setString(&c.Store.SQLitePath, "SQLITE_PATH")
	setString(&c.Store.Redis.Addr, "REDIS_ADDR")
	setString(&c.Store.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Store.Redis.Prefix, "REDIS_PREFIX")
	setString(&c.Store.RemoteURL, "REMOTE_URL")
	setString(&c.Store.RemoteToken, "REMOTE_TOKEN")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")
	setString(&c.Auth.APIToken, "API_TOKEN")
	setString(&c.Auth.OIDC.Issuer, "OIDC_ISSUER")
	setString(&c.Auth.OIDC.ClientID, "OIDC_CLIENT_ID")
	setString(&c.Auth.OIDC.ClientSecret, "OIDC_CLIENT_SECRET")
	setString(&c.Auth.OIDC.RedirectURL, "OIDC_REDIRECT_URL")

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		c.Store.Redis.DB = n
	}
	if err := setBool(&c.Auth.Disabled, "AUTH_DISABLED"); err != nil {
		return err
	}
	return setBool(&c.Auth.ForwardHeader, "AUTH_FORWARD_HEADER")
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate checks that the selected driver has what it needs.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres store")
		}
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite store")
		}
	case DriverRedis:
		if c.Store.Redis.Addr == "" {
			return errors.New("REDIS_ADDR is required for the redis store")
		}
	case DriverRemote:
		if c.Store.RemoteURL == "" {
			return errors.New("REMOTE_URL is required for the remote store")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Auth.OIDC.Issuer != "" && (c.Auth.OIDC.ClientID == "" || c.Auth.OIDC.RedirectURL == "") {
		return errors.New("OIDC_CLIENT_ID and OIDC_REDIRECT_URL are required when OIDC_ISSUER is set")
	}
	return nil
}
