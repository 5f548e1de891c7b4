package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Store backends understood by Load
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Bridge  BridgeConfig
	Metrics MetricsConfig
	Store   StoreConfig
	Discord DiscordConfig

	// TuningPath points at the tuning.yaml holding scheduler cadences
	TuningPath string `env:"TUNING_PATH" envDefault:"configs/tuning.yaml"`
}

// BridgeConfig holds the host world bridge listener configuration
type BridgeConfig struct {
	Addr string `env:"BRIDGE_ADDR" envDefault:":8765"`
	Path string `env:"BRIDGE_PATH" envDefault:"/v1/host"`
}

// MetricsConfig holds the prometheus endpoint configuration
type MetricsConfig struct {
	Addr string `env:"METRICS_ADDR" envDefault:":9090"` // empty disables the endpoint
}

// StoreConfig selects and configures the class data store
type StoreConfig struct {
	Backend    string `env:"STORE_BACKEND" envDefault:"memory"`
	RedisURL   string `env:"REDIS_URL"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/nexus.db"`
}

// DiscordConfig holds Discord-specific configuration. The admin surface is
// disabled when Token is empty.
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// Enabled reports whether the Discord admin surface should start
func (d DiscordConfig) Enabled() bool {
	return d.Token != ""
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field requirements that struct tags cannot express
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreMemory, StoreSQLite:
	case StoreRedis:
		if c.Store.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when STORE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}

	if c.Store.Backend == StoreSQLite && c.Store.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH is required when STORE_BACKEND=sqlite")
	}

	if c.Discord.Enabled() && c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required when DISCORD_TOKEN is set")
	}

	if c.Bridge.Addr == "" {
		return fmt.Errorf("BRIDGE_ADDR is required")
	}

	return nil
}
