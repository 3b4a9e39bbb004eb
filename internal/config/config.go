package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	renderui "github.com/Fabian1409/seldir/internal/ui/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SELDIR_ACCENT_COLOR.
const EnvPrefix = "SELDIR"

// Config holds application configuration.
type Config struct {
	AccentColor string `mapstructure:"accent_color"`
	ShowHidden  bool   `mapstructure:"show_hidden"`
	Watch       bool   `mapstructure:"watch"`
	LogFile     string `mapstructure:"log_file"`
	LogLevel    string `mapstructure:"log_level"`
}

// NewViper returns a viper instance with defaults and environment
// overrides set up. Flags may be bound to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault("accent_color", renderui.DefaultAccent)
	v.SetDefault("show_hidden", false)
	v.SetDefault("watch", true)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	return v
}

// Load reads the config file and merges it with defaults, environment and
// any flags bound to v. An explicit path (argument or SELDIR_CONFIG) must
// exist; the default location is optional.
func Load(v *viper.Viper, path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if dir := DefaultDir(); dir != "" {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// DefaultDir is $XDG_CONFIG_HOME/seldir, falling back to ~/.config/seldir.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "seldir")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "seldir")
}

// Validate rejects values the application cannot use.
func (c Config) Validate() error {
	if _, err := renderui.ParseColor(c.AccentColor); err != nil {
		return fmt.Errorf("invalid accent_color: %w", err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}
