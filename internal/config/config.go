// Package config provides layered configuration loading and validation.
// Values come from built-in defaults, then an optional YAML or JSON file, then
// FITFORGE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FITFORGE_SERVER_PORT
const EnvPrefix = "FITFORGE"

// Config is the full application configuration
type Config struct {
	Log         LogConfig         `mapstructure:"log"`
	Vocabulary  VocabularyConfig  `mapstructure:"vocabulary"`
	Analysis    AnalysisConfig    `mapstructure:"analysis"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
	Server      ServerConfig      `mapstructure:"server"`
	Cache       CacheConfig       `mapstructure:"cache"`
	RateLimit   RateLimitConfig   `mapstructure:"rate_limit"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// VocabularyConfig points at replacement skill and synonym assets.
// Empty paths use the embedded defaults.
type VocabularyConfig struct {
	SkillsPath   string `mapstructure:"skills_path"`
	SynonymsPath string `mapstructure:"synonyms_path"`
}

// AnalysisConfig tunes the analyzer
type AnalysisConfig struct {
	KeywordLimit int `mapstructure:"keyword_limit" validate:"min=1,max=500"`
}

// LeaderboardConfig tunes batch ranking
type LeaderboardConfig struct {
	Concurrency int `mapstructure:"concurrency" validate:"min=1,max=64"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Port         int   `mapstructure:"port" validate:"min=1,max=65535"`
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" validate:"min=1024"`
}

// CacheConfig configures the Redis result cache
type CacheConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	RedisAddr     string        `mapstructure:"redis_addr" validate:"required_if=Enabled true"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db" validate:"min=0,max=15"`
	TTL           time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig configures per-client request limiting
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute" validate:"min=1"`
	Burst             int  `mapstructure:"burst" validate:"min=1"`
}

var defaults = map[string]interface{}{
	"log.level":                      "info",
	"log.format":                     "console",
	"vocabulary.skills_path":         "",
	"vocabulary.synonyms_path":       "",
	"analysis.keyword_limit":         30,
	"leaderboard.concurrency":        4,
	"server.port":                    8080,
	"server.max_body_bytes":          1 << 20,
	"cache.enabled":                  false,
	"cache.redis_addr":               "localhost:6379",
	"cache.redis_password":           "",
	"cache.redis_db":                 0,
	"cache.ttl":                      time.Hour,
	"rate_limit.enabled":             true,
	"rate_limit.requests_per_minute": 120,
	"rate_limit.burst":               20,
}

var validate = validator.New()

// Load builds the configuration. path is optional; when set the file must exist.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration, ignoring files and environment
func Default() *Config {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return &cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config error: %w", err)
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("config error: 'cache.ttl' must be positive")
	}

	for name, p := range map[string]string{
		"vocabulary.skills_path":   c.Vocabulary.SkillsPath,
		"vocabulary.synonyms_path": c.Vocabulary.SynonymsPath,
	} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s not found: %s", name, p)
		}
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
