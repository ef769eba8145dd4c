package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/orrery/internal/orbit"
)

const (
	DefaultAPIURL  = "https://api.le-systeme-solaire.net/rest/bodies/"
	DefaultTimeout = 30 * time.Second
	DefaultFPS     = 60
	DefaultFrames  = 3600
	DefaultAddr    = ":8080"
	EnvPrefix      = "ORRERY"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Catalog CatalogConfig `yaml:"catalog" mapstructure:"catalog"`
	Sim     SimConfig     `yaml:"sim" mapstructure:"sim"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// CatalogConfig chooses where bodies come from. A non-empty File wins over
// the API.
type CatalogConfig struct {
	APIURL            string        `yaml:"api_url" mapstructure:"api_url"`
	File              string        `yaml:"file" mapstructure:"file"`
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

type SimConfig struct {
	Seed          int64     `yaml:"seed" mapstructure:"seed"`
	FPS           int       `yaml:"fps" mapstructure:"fps"`
	Frames        int       `yaml:"frames" mapstructure:"frames"`
	Speeds        []float64 `yaml:"speeds" mapstructure:"speeds"`
	CentralOffset []float64 `yaml:"central_offset" mapstructure:"central_offset"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			APIURL:  DefaultAPIURL,
			Timeout: DefaultTimeout,
		},
		Sim: SimConfig{
			FPS:           DefaultFPS,
			Frames:        DefaultFrames,
			Speeds:        append([]float64(nil), orbit.DefaultSpeeds...),
			CentralOffset: []float64{-20, 0, 0},
		},
		Server: ServerConfig{Addr: DefaultAddr},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load merges defaults, the optional file at path and ORRERY_* environment
// variables, in increasing priority. ORRERY_SIM_FPS overrides sim.fps.
func Load(path string) (*Config, error) {
	return load(path, DefaultConfig())
}

// LoadOver is Load with base in place of the defaults, so a preset can sit
// underneath the file.
func LoadOver(path string, base *Config) (*Config, error) {
	return load(path, base)
}

func load(path string, base *Config) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, base)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("catalog.api_url", c.Catalog.APIURL)
	v.SetDefault("catalog.file", c.Catalog.File)
	v.SetDefault("catalog.timeout", c.Catalog.Timeout)
	v.SetDefault("catalog.requests_per_second", c.Catalog.RequestsPerSecond)
	v.SetDefault("sim.seed", c.Sim.Seed)
	v.SetDefault("sim.fps", c.Sim.FPS)
	v.SetDefault("sim.frames", c.Sim.Frames)
	v.SetDefault("sim.speeds", c.Sim.Speeds)
	v.SetDefault("sim.central_offset", c.Sim.CentralOffset)
	v.SetDefault("server.addr", c.Server.Addr)
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Catalog.File == "" && c.Catalog.APIURL == "" {
		return fmt.Errorf("%w: catalog needs api_url or file", ErrInvalid)
	}
	if c.Catalog.Timeout < 0 {
		return fmt.Errorf("%w: catalog.timeout %s", ErrInvalid, c.Catalog.Timeout)
	}
	if c.Catalog.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: catalog.requests_per_second %g", ErrInvalid, c.Catalog.RequestsPerSecond)
	}
	if c.Sim.FPS <= 0 || c.Sim.FPS > 240 {
		return fmt.Errorf("%w: sim.fps %d outside 1..240", ErrInvalid, c.Sim.FPS)
	}
	if c.Sim.Frames <= 0 {
		return fmt.Errorf("%w: sim.frames %d", ErrInvalid, c.Sim.Frames)
	}
	if len(c.Sim.Speeds) == 0 {
		return fmt.Errorf("%w: sim.speeds is empty", ErrInvalid)
	}
	for i, s := range c.Sim.Speeds {
		if s <= 0 {
			return fmt.Errorf("%w: sim.speeds[%d] = %g", ErrInvalid, i, s)
		}
	}
	if len(c.Sim.CentralOffset) != 3 {
		return fmt.Errorf("%w: sim.central_offset needs 3 values, got %d", ErrInvalid, len(c.Sim.CentralOffset))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, s)
}

// NewLogger builds the process logger from the log section.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
