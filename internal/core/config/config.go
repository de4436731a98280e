package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the top-level application configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Catalog    CatalogConfig    `koanf:"catalog"`
	Popularity PopularityConfig `koanf:"popularity"`
}

type ServerConfig struct {
	Port          int    `koanf:"port"`
	Host          string `koanf:"host"`
	MaxBodySizeMB int    `koanf:"max_body_size_mb"`
	Mode          string `koanf:"mode"` // debug | release
}

type DatabaseConfig struct {
	Type         string `koanf:"type"`
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

// CatalogConfig holds settings for the external product catalog API.
type CatalogConfig struct {
	APIVersion string `koanf:"api_version"`

	// DefinitionPath optionally points at a YAML file overriding the
	// built-in marker metafield definition.
	DefinitionPath string `koanf:"definition_path"`

	TimeoutSeconds int `koanf:"timeout_seconds"`
}

// PopularityConfig holds settings for popularity queries.
type PopularityConfig struct {
	// RankingLimit caps the number of products returned by the rankings API.
	RankingLimit int `koanf:"ranking_limit"`

	// TitleBatchSize is how many product ids go into one catalog title lookup.
	TitleBatchSize int `koanf:"title_batch_size"`
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be > 0")
	}
	if c.Database.MaxIdleConns <= 0 {
		return fmt.Errorf("database.max_idle_conns must be > 0")
	}
	if c.Database.Type != "" && c.Database.Type != "postgres" {
		return fmt.Errorf("unsupported database.type %q", c.Database.Type)
	}

	if strings.TrimSpace(c.Catalog.APIVersion) == "" {
		return fmt.Errorf("catalog.api_version is required")
	}
	if c.Catalog.TimeoutSeconds <= 0 {
		return fmt.Errorf("catalog.timeout_seconds must be > 0")
	}

	if c.Popularity.RankingLimit <= 0 {
		return fmt.Errorf("popularity.ranking_limit must be > 0")
	}
	if c.Popularity.TitleBatchSize <= 0 {
		return fmt.Errorf("popularity.title_batch_size must be > 0")
	}

	return nil
}

// Load parses config from file + env and validates it.
// Env vars use the HERD_ prefix with "__" as the section separator,
// e.g. HERD_DATABASE__DSN overrides database.dsn.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":                 8080,
		"server.host":                 "0.0.0.0",
		"server.max_body_size_mb":     1,
		"server.mode":                 "release",
		"database.type":               "postgres",
		"database.dsn":                "",
		"database.max_open_conns":     25,
		"database.max_idle_conns":     25,
		"database.auto_migrate":       true,
		"catalog.api_version":         "2025-01",
		"catalog.definition_path":     "",
		"catalog.timeout_seconds":     10,
		"popularity.ranking_limit":    10,
		"popularity.title_batch_size": 50,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("HERD_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "HERD_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
