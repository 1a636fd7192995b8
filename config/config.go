// Package config loads metronav settings from defaults, an optional YAML
// file, METRONAV_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/metronav/dijkstra"
	"github.com/katalvlaran/metronav/logging"
	"github.com/katalvlaran/metronav/metro"
	"github.com/katalvlaran/metronav/network"
)

// ErrInvalid indicates a loaded value failed validation.
var ErrInvalid = errors.New("config: invalid value")

// Name is the base name of the configuration file and the env prefix.
const Name = "metronav"

// Config is the resolved metronav configuration.
type Config struct {
	// Network is a seed YAML path; empty selects the embedded Delhi network.
	Network  string     `mapstructure:"network" yaml:"network"`
	Log      LogConfig  `mapstructure:"log" yaml:"log"`
	Time     TimeConfig `mapstructure:"time" yaml:"time"`
	Strategy string     `mapstructure:"strategy" yaml:"strategy"`
	// By is the default station lookup mode: name, code or index.
	By string `mapstructure:"by" yaml:"by"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// TimeConfig holds the travel-time model in seconds.
type TimeConfig struct {
	Dwell int64 `mapstructure:"dwell" yaml:"dwell"`
	PerKm int64 `mapstructure:"per_km" yaml:"per_km"`
}

// Defaults returns the built-in values keyed by viper path.
func Defaults() map[string]any {
	return map[string]any{
		"network":     "",
		"log.level":   "info",
		"log.format":  logging.FormatText,
		"time.dwell":  dijkstra.DefaultTime.Dwell,
		"time.per_km": dijkstra.DefaultTime.PerKm,
		"strategy":    string(metro.StrategyDijkstra),
		"by":          string(network.ByName),
	}
}

// flagKeys maps command-line flag names to viper keys.
var flagKeys = map[string]string{
	"network":    "network",
	"log-level":  "log.level",
	"log-format": "log.format",
	"dwell":      "time.dwell",
	"per-km":     "time.per_km",
	"strategy":   "strategy",
	"by":         "by",
}

// UserPath returns the per-user configuration file path.
func UserPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: could not get user config directory: %w", err)
	}

	return filepath.Join(dir, Name, Name+".yaml"), nil
}

// Load resolves the configuration. file, when non-empty, must exist; otherwise
// metronav.yaml is searched for in the working directory and the user config
// directory and may be absent. flags may be nil; flags listed in flagKeys
// override file and environment values only when set explicitly.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	var key string
	var value any
	for key, value = range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(Name)
		v.AddConfigPath(".")
		if p, err := UserPath(); err == nil {
			v.AddConfigPath(filepath.Dir(p))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	v.SetEnvPrefix(Name)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		var name string
		for name, key = range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks every enumerated and numeric field.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	if !logging.ValidFormat(c.Log.Format) {
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if err := c.TimeModel().Validate(); err != nil {
		return fmt.Errorf("%w: time: %w", ErrInvalid, err)
	}
	if _, err := metro.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy: %w", ErrInvalid, err)
	}
	if _, err := network.ParseLookup(c.By); err != nil {
		return fmt.Errorf("%w: by: %w", ErrInvalid, err)
	}

	return nil
}

// TimeModel returns the configured travel-time model.
func (c *Config) TimeModel() dijkstra.TimeModel {
	return dijkstra.TimeModel{Dwell: c.Time.Dwell, PerKm: c.Time.PerKm}
}

// YAML encodes c in the configuration file format.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}

	return data, nil
}

// Write stores c as YAML at path, creating parent directories.
func Write(c *Config, path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: could not create config directory %s: %w", filepath.Dir(path), err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}
