package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix     = "SAFEOPS_"
	EnvConfigPath = EnvPrefix + "CONFIG"
	DefaultPath   = "~/.safeops/config.yaml"
)

type Config struct {
	DB        DBConfig        `koanf:"db"`
	Display   DisplayConfig   `koanf:"display"`
	Reminders RemindersConfig `koanf:"reminders"`
	Log       LogConfig       `koanf:"log"`
	Telegram  TelegramConfig  `koanf:"telegram"`
}

type DBConfig struct {
	Path string `koanf:"path"`
}

type DisplayConfig struct {
	DateFormat string `koanf:"date_format"` // Go layout used inside reminder descriptions
}

type RemindersConfig struct {
	TrackedWindowDays   int `koanf:"tracked_window_days"`
	RecurringWindowDays int `koanf:"recurring_window_days"`
}

type LogConfig struct {
	Enabled bool   `koanf:"enabled"`
	Level   string `koanf:"level"`
	File    string `koanf:"file"` // empty means stderr
}

type TelegramConfig struct {
	Token  string `koanf:"token"`
	ChatID int64  `koanf:"chat_id"`
}

// Load layers defaults, the YAML file at configPath (if it exists) and
// SAFEOPS_* environment variables, in that order.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = ExpandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.DB.Path = ExpandPath(cfg.DB.Path)
	cfg.Log.File = ExpandPath(cfg.Log.File)

	return &cfg, nil
}

// envKey maps SAFEOPS_REMINDERS_TRACKED_WINDOW_DAYS to
// reminders.tracked_window_days: the first underscore separates the section.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// MaxTrackedWindowDays is the warning threshold for review dates.
const MaxTrackedWindowDays = 30

func (c *Config) Validate() error {
	if c.DB.Path == "" {
		return fmt.Errorf("db.path is required")
	}
	if c.Reminders.TrackedWindowDays <= 0 || c.Reminders.TrackedWindowDays > MaxTrackedWindowDays {
		return fmt.Errorf("reminders.tracked_window_days must be between 1 and %d", MaxTrackedWindowDays)
	}
	if c.Reminders.RecurringWindowDays <= 0 {
		return fmt.Errorf("reminders.recurring_window_days must be positive")
	}
	if strings.TrimSpace(c.Display.DateFormat) == "" {
		return fmt.Errorf("display.date_format is required")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Telegram.Token != "" && c.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram.chat_id is required when telegram.token is set")
	}
	return nil
}

// SlogLevel parses log.level (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: unknown level %q (expected debug, info, warn or error)", c.Log.Level)
	}
	return lvl, nil
}

// TelegramEnabled reports whether notifications can be sent.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.Token != "" && c.Telegram.ChatID != 0
}

// ResolvePath returns the config file to load: the explicit flag value,
// then $SAFEOPS_CONFIG, then the default location.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
