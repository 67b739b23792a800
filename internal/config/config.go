// Package config loads host settings from a YAML file, a .env file and
// SUBMITTALS_* environment variables. Command-line flags are layered on top
// by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/submittals/internal/logging"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SUBMITTALS_"

// DefaultFile is read when no explicit path is given and it exists.
const DefaultFile = "submittals.yaml"

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// RedisConfig configures the Redis session backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// Config holds host configuration.
type Config struct {
	Addr          string        `yaml:"addr"`
	Store         string        `yaml:"store"`
	Redis         RedisConfig   `yaml:"redis"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	TemplateDir   string        `yaml:"template_dir"`
	Managers      []string      `yaml:"managers"`
	LogLevel      string        `yaml:"log_level"`
	Metrics       bool          `yaml:"metrics"`
	EncryptionKey string        `yaml:"encryption_key"`
	MaxUploadSize int64         `yaml:"max_upload_size"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Addr:       ":8080",
		Store:      StoreMemory,
		Redis:      RedisConfig{Addr: "localhost:6379"},
		SessionTTL: 24 * time.Hour,
		LogLevel:   "info",
	}
}

// Load resolves configuration with precedence env > .env > file > defaults.
// An empty path reads DefaultFile when present; an explicit path must exist.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}
	str("ADDR", &c.Addr)
	str("STORE", &c.Store)
	str("REDIS_ADDR", &c.Redis.Addr)
	str("REDIS_PASSWORD", &c.Redis.Password)
	str("REDIS_PREFIX", &c.Redis.Prefix)
	str("TEMPLATE_DIR", &c.TemplateDir)
	str("LOG_LEVEL", &c.LogLevel)
	str("ENCRYPTION_KEY", &c.EncryptionKey)

	if v, ok := lookup("MANAGERS"); ok {
		c.Managers = splitList(v)
	}
	if v, ok := lookup("REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sREDIS_DB: %w", EnvPrefix, err)
		}
		c.Redis.DB = n
	}
	if v, ok := lookup("SESSION_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sSESSION_TTL: %w", EnvPrefix, err)
		}
		c.SessionTTL = d
	}
	if v, ok := lookup("METRICS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sMETRICS: %w", EnvPrefix, err)
		}
		c.Metrics = b
	}
	if v, ok := lookup("MAX_UPLOAD_SIZE"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sMAX_UPLOAD_SIZE: %w", EnvPrefix, err)
		}
		c.MaxUploadSize = n
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("invalid store %q (expected %s or %s)", c.Store, StoreMemory, StoreRedis)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("invalid session_ttl %s", c.SessionTTL)
	}
	if c.MaxUploadSize < 0 {
		return fmt.Errorf("invalid max_upload_size %d", c.MaxUploadSize)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	return strings.TrimSpace(v), ok
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
