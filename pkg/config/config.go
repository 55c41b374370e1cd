// Package config loads the sunburst configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/sunburst/config.toml
// (~/.config/sunburst/config.toml when XDG_CONFIG_HOME is unset). A missing
// file is not an error: every field falls back to [Default].
//
//	[render]
//	width   = 900
//	hue     = "green"
//	seed    = 7
//	formats = ["svg", "html"]
//
//	[cache]
//	backend = "redis"
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//
// Command-line flags override file values.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sunburst/pkg/cache"
	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/palette"
	"github.com/matzehuels/sunburst/pkg/partition"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// appName names the configuration directory.
const appName = "sunburst"

// FileName is the configuration file name inside the config directory.
const FileName = "config.toml"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the full configuration file.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// RenderConfig holds rendering defaults.
type RenderConfig struct {
	Width   float64  `toml:"width"`
	Height  float64  `toml:"height,omitempty"`
	Hue     string   `toml:"hue"`
	Seed    uint64   `toml:"seed"`
	Epsilon float64  `toml:"epsilon"`
	Formats []string `toml:"formats"`
	Style   string   `toml:"style"`
	Legend  bool     `toml:"legend"`
	Trail   bool     `toml:"trail"`
}

// CacheConfig selects and configures the artifact cache.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir,omitempty"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password,omitempty"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	MaxBodyBytes int64         `toml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Width:   pipeline.DefaultWidth,
			Hue:     palette.DefaultHue,
			Epsilon: partition.DefaultEpsilon,
			Formats: []string{pipeline.FormatSVG},
			Style:   pipeline.DefaultStyle,
			Legend:  true,
		},
		Cache: CacheConfig{
			Backend: BackendFile,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: appName + ":",
			},
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			MaxBodyBytes: 10 << 20,
		},
	}
}

// Path returns the default configuration file path.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, FileName), nil
}

// Load reads the configuration at path on top of [Default]. An empty path
// selects [Path]; a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses TOML data into cfg and validates the result. Keys absent
// from data keep their current values; unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "unknown key %q", undecoded[0].String())
	}
	return cfg.Validate()
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks field values.
func (c Config) Validate() error {
	if err := palette.ValidateHue(c.Render.Hue); err != nil {
		return err
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return err
	}
	if c.Render.Style != "" {
		if err := pipeline.ValidateStyle(c.Render.Style); err != nil {
			return err
		}
	}
	if err := errors.ValidateEpsilon(c.Render.Epsilon); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid cache backend %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.Redis.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "cache.redis.addr is required for the redis backend")
	}
	return nil
}

// Options returns pipeline options seeded from the render section.
func (r RenderConfig) Options() pipeline.Options {
	return pipeline.Options{
		Width:   r.Width,
		Height:  r.Height,
		Hue:     r.Hue,
		Seed:    r.Seed,
		Epsilon: r.Epsilon,
		Formats: append([]string(nil), r.Formats...),
		Style:   r.Style,
		Legend:  r.Legend,
		Trail:   r.Trail,
	}
}

// RedisCacheConfig converts the redis section for [cache.NewRedisCache].
func (c CacheConfig) RedisCacheConfig() cache.RedisConfig {
	return cache.RedisConfig{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
		Prefix:   c.Redis.Prefix,
	}
}
