package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"db": map[string]interface{}{
			"path": "~/.safeops/safeops.db",
		},
		"display": map[string]interface{}{
			"date_format": "02/01/2006",
		},
		"reminders": map[string]interface{}{
			"tracked_window_days":   30,
			"recurring_window_days": 7,
		},
		"log": map[string]interface{}{
			"enabled": true,
			"level":   "warn",
			"file":    "",
		},
		"telegram": map[string]interface{}{
			"token":   "",
			"chat_id": 0,
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}
