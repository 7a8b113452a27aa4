package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration. Components receive
// their values explicitly at construction; nothing reads this
// package-globally.
type Config struct {
	Source   SourceConfig   `mapstructure:"source"`
	Output   OutputConfig   `mapstructure:"output"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
}

type SourceConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	UserAgent string `mapstructure:"user_agent"`
}

type OutputConfig struct {
	Dir  string `mapstructure:"dir"`
	File string `mapstructure:"file"`
}

type ServerConfig struct {
	Port                   string `mapstructure:"port"`
	RefreshIntervalMinutes int    `mapstructure:"refresh_interval_minutes"`
}

func (s ServerConfig) RefreshInterval() time.Duration {
	return time.Duration(s.RefreshIntervalMinutes) * time.Minute
}

type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Load reads configuration from an optional config file and
// environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("source.base_url", "https://infocar.dgt.es/datex2/v3/dgt/zbe/ControledZonePublication/")
	v.SetDefault("source.user_agent", "")
	v.SetDefault("output.dir", "data")
	v.SetDefault("output.file", "low_emission_zones.geojson")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.refresh_interval_minutes", 360)
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "lez_map")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "lez_map_db")
	v.SetDefault("database.sslmode", "disable")

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: LEZMAP_OUTPUT_DIR → output.dir
	v.SetEnvPrefix("LEZMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and
// sane.
func (c *Config) Validate() error {
	if c.Source.BaseURL == "" {
		return errors.New("config: source.base_url is required")
	}

	if c.Output.Dir == "" {
		return errors.New("config: output.dir is required")
	}

	if c.Output.File == "" {
		return errors.New("config: output.file is required")
	}

	if c.Server.RefreshIntervalMinutes < 1 {
		return errors.New("config: server.refresh_interval_minutes must be positive")
	}

	if c.Database.Enabled && c.Database.DBName == "" {
		return errors.New("config: database.dbname is required when the database is enabled")
	}

	return nil
}
