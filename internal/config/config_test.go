package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "02/01/2006", cfg.Display.DateFormat)
	assert.Equal(t, 30, cfg.Reminders.TrackedWindowDays)
	assert.Equal(t, 7, cfg.Reminders.RecurringWindowDays)
	assert.True(t, cfg.Log.Enabled)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.NotContains(t, cfg.DB.Path, "~", "home directory should be expanded")
	assert.False(t, cfg.TelegramEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `db:
  path: /tmp/safeops-test.db
reminders:
  tracked_window_days: 14
display:
  date_format: "2006-01-02"
telegram:
  token: abc
  chat_id: 12345
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/safeops-test.db", cfg.DB.Path)
	assert.Equal(t, 14, cfg.Reminders.TrackedWindowDays)
	assert.Equal(t, 7, cfg.Reminders.RecurringWindowDays, "unset keys keep their defaults")
	assert.Equal(t, "2006-01-02", cfg.Display.DateFormat)
	assert.Equal(t, int64(12345), cfg.Telegram.ChatID)
	assert.True(t, cfg.TelegramEnabled())
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Reminders.TrackedWindowDays)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reminders:\n  recurring_window_days: 3\n"), 0o644))

	t.Setenv("SAFEOPS_REMINDERS_RECURRING_WINDOW_DAYS", "14")
	t.Setenv("SAFEOPS_DB_PATH", "/var/lib/safeops.db")
	t.Setenv("SAFEOPS_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Reminders.RecurringWindowDays)
	assert.Equal(t, "/var/lib/safeops.db", cfg.DB.Path)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "db.path", envKey("SAFEOPS_DB_PATH"))
	assert.Equal(t, "telegram.chat_id", envKey("SAFEOPS_TELEGRAM_CHAT_ID"))
	assert.Equal(t, "display.date_format", envKey("SAFEOPS_DISPLAY_DATE_FORMAT"))
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Reminders.TrackedWindowDays = 0
	assert.ErrorContains(t, cfg.Validate(), "tracked_window_days")

	cfg = base()
	cfg.Reminders.TrackedWindowDays = MaxTrackedWindowDays + 1
	assert.ErrorContains(t, cfg.Validate(), "between 1 and 30")

	cfg = base()
	cfg.Reminders.TrackedWindowDays = MaxTrackedWindowDays
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Reminders.RecurringWindowDays = -1
	assert.ErrorContains(t, cfg.Validate(), "recurring_window_days")

	cfg = base()
	cfg.Log.Level = "loud"
	assert.ErrorContains(t, cfg.Validate(), "log.level")

	cfg = base()
	cfg.Telegram.Token = "abc"
	assert.ErrorContains(t, cfg.Validate(), "chat_id")

	cfg = base()
	cfg.Display.DateFormat = " "
	assert.ErrorContains(t, cfg.Validate(), "date_format")
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultPath, ResolvePath(""))
	assert.Equal(t, "/etc/x.yaml", ResolvePath("/etc/x.yaml"))

	t.Setenv(EnvConfigPath, "/opt/safeops.yaml")
	assert.Equal(t, "/opt/safeops.yaml", ResolvePath(""))
}
