// Package config loads chempath settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "chempath.yaml"

// Config is the root of chempath.yaml.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Search SearchConfig `yaml:"search"`
	Cache  CacheConfig  `yaml:"cache"`
	HTTP   HTTPConfig   `yaml:"http"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

type SearchConfig struct {
	// MaxVisited bounds every search; 0 disables the bound.
	MaxVisited   int `yaml:"max_visited" validate:"gte=0"`
	ExploreLimit int `yaml:"explore_limit" validate:"gte=1,lte=10000"`
}

type CacheConfig struct {
	Backend string        `yaml:"backend" validate:"oneof=none memory redis"`
	TTL     time.Duration `yaml:"ttl" validate:"gte=0"`
	Redis   RedisConfig   `yaml:"redis"`

	// MaxEntries bounds the memory backend. Redis relies on TTL and its own eviction policy.
	MaxEntries int `yaml:"max_entries" validate:"gte=1"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" validate:"omitempty,hostname_port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"gte=0,lte=15"`
	Prefix   string `yaml:"prefix"`
}

type HTTPConfig struct {
	Port int `yaml:"port" validate:"gte=1,lte=65535"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Search: SearchConfig{MaxVisited: 5000, ExploreLimit: 50},
		Cache: CacheConfig{
			Backend:    "memory",
			TTL:        time.Hour,
			MaxEntries: 10000,
			Redis:      RedisConfig{Addr: "localhost:6379", Prefix: "chempath:path:"},
		},
		HTTP: HTTPConfig{Port: 8080},
	}
}

var validate = validator.New()

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if c.Cache.Backend == "redis" && c.Cache.Redis.Addr == "" {
		return errors.New("invalid config: cache.redis.addr is required when cache.backend is redis")
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load reads path on top of Default. A missing file is not an error and
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Parse(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document omits, and
// validates the result.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg.Validate()
}
