package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// TimerConfig holds focus-timer durations in minutes.
type TimerConfig struct {
	FocusMin      int `mapstructure:"focus_min" yaml:"focus_min"`
	ShortBreakMin int `mapstructure:"short_break_min" yaml:"short_break_min"`
	LongBreakMin  int `mapstructure:"long_break_min" yaml:"long_break_min"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
	// WheelThrottleMs bounds how often a scroll gesture may change the
	// displayed calendar month.
	WheelThrottleMs int `mapstructure:"wheel_throttle_ms" yaml:"wheel_throttle_ms"`
}

// Config is the top-level application configuration.
type Config struct {
	// DatabasePath locates the sqlite file holding all task data.
	DatabasePath string        `mapstructure:"database_path" yaml:"database_path"`
	Display      DisplayConfig `mapstructure:"display" yaml:"display"`
	Timer        TimerConfig   `mapstructure:"timer" yaml:"timer"`
}

// DefaultPath returns the default location of the configuration file,
// ~/.config/privatetick/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "privatetick", "config.yaml")
}

// defaultDatabasePath returns the default sqlite file location,
// ~/.local/share/privatetick/privatetick.db.
func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "privatetick.db")
	}
	return filepath.Join(home, ".local", "share", "privatetick", "privatetick.db")
}

// defaultConfig returns a sensible default configuration.
func defaultConfig() *Config {
	return &Config{
		DatabasePath: defaultDatabasePath(),
		Display: DisplayConfig{
			Theme:           "default",
			WheelThrottleMs: 300,
		},
		Timer: TimerConfig{
			FocusMin:      25,
			ShortBreakMin: 5,
			LongBreakMin:  15,
		},
	}
}

// Load reads configuration from the given YAML file path using Viper.
// A missing file yields the default configuration.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("database_path", defaultDatabasePath())
	v.SetDefault("display.theme", "default")
	v.SetDefault("display.wheel_throttle_ms", 300)
	v.SetDefault("timer.focus_min", 25)
	v.SetDefault("timer.short_break_min", 5)
	v.SetDefault("timer.long_break_min", 15)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
