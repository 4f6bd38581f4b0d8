package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"

	"github.com/dyluth/mcobj/internal/statefmt"
	"github.com/dyluth/mcobj/pkg/catalog"
	"github.com/dyluth/mcobj/pkg/store"
)

const (
	// DefaultPath is where the CLI looks for its configuration.
	DefaultPath = "mcobj.yml"

	// DefaultRedisAddr is used when no redis address or URL is configured.
	DefaultRedisAddr = "localhost:6379"

	// DefaultWorld namespaces stored blocks when no world is configured.
	DefaultWorld = "overworld"
)

// McobjConfig represents the top-level mcobj.yml configuration
type McobjConfig struct {
	Version       string            `yaml:"version"`
	DataDirectory string            `yaml:"data_directory,omitempty"`
	Mods          []catalog.ModInfo `yaml:"mods,omitempty"`
	Redis         *RedisConfig      `yaml:"redis,omitempty"`
	Output        string            `yaml:"output,omitempty"`
}

// RedisConfig specifies where block records are stored.
// URL, when set, takes precedence over Addr, Password and DB.
type RedisConfig struct {
	Addr     string `yaml:"addr,omitempty"`
	URL      string `yaml:"url,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
	World    string `yaml:"world,omitempty"`
}

// Default returns the configuration used when no mcobj.yml exists: the
// vanilla catalog under ./data and a local Redis.
func Default() *McobjConfig {
	cfg := &McobjConfig{Version: "1.0"}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("default configuration is invalid: %v", err))
	}
	return cfg
}

// Validate performs strict validation on the configuration and fills in
// defaults for omitted sections.
func (c *McobjConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.DataDirectory == "" {
		c.DataDirectory = catalog.DefaultDataDirectory
	}

	if len(c.Mods) == 0 {
		c.Mods = []catalog.ModInfo{catalog.Vanilla(c.DataDirectory)}
	}

	seen := make(map[string]int)
	for i := range c.Mods {
		mod := &c.Mods[i]
		mod.Namespace = strings.ToLower(strings.TrimSpace(mod.Namespace))
		if mod.Namespace == "" {
			return fmt.Errorf("mods[%d]: namespace is required", i)
		}
		if mod.Directory == "" {
			mod.Directory = c.DataDirectory
		}
		key := mod.VersionedName()
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("duplicate mod '%s' (mods[%d] and mods[%d])", key, prev, i)
		}
		seen[key] = i
	}

	if c.Redis == nil {
		c.Redis = &RedisConfig{}
	}
	if err := c.Redis.Validate(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	format, err := statefmt.ParseOutputFormat(c.Output)
	if err != nil {
		return err
	}
	c.Output = string(format)

	return nil
}

// Validate fills in the redis defaults and checks the remaining fields.
func (r *RedisConfig) Validate() error {
	if r.Addr == "" && r.URL == "" {
		r.Addr = DefaultRedisAddr
	}
	if r.URL != "" {
		if _, err := redis.ParseURL(r.URL); err != nil {
			return fmt.Errorf("invalid url: %w", err)
		}
	}
	if r.DB < 0 {
		return fmt.Errorf("db must be >= 0, got %d", r.DB)
	}
	if r.World == "" {
		r.World = DefaultWorld
	}
	if err := store.ValidateWorld(r.World); err != nil {
		return err
	}
	return nil
}

// Options converts the configuration into go-redis client options.
func (r *RedisConfig) Options() (*redis.Options, error) {
	if r.URL != "" {
		opts, err := redis.ParseURL(r.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{Addr: r.Addr, Password: r.Password, DB: r.DB}, nil
}

// Load reads and validates an mcobj.yml file
func Load(path string) (*McobjConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config McobjConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOrDefault loads path when it exists and falls back to Default otherwise.
// The boolean reports whether a file was read.
func LoadOrDefault(path string) (*McobjConfig, bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), false, nil
		}
		return nil, false, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}
