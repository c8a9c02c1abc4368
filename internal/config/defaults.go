package config

import (
	"os"
	"path/filepath"
	"time"
)

// defaultConfig returns the built-in settings used for anything not set by
// env, flags, or the JSON file. Paths are rooted under the user home so a
// bare `tugasd` run works without any configuration.
func defaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".tugascollecter")

	return &Config{
		Storage: Storage{
			DB: DB{
				DSN: filepath.Join(base, "tugas.db"),
			},
			Files: Files{
				DataDir: filepath.Join(base, "files"),
			},
		},
		Cache: Cache{
			Dir:        filepath.Join(base, "cache"),
			DefaultTTL: time.Hour,
			MaxEntries: 50,
		},
		Notify: Notify{
			DayAnchorHour:  9,
			DueTodayHour:   8,
			MinLead:        5 * time.Minute,
			SettleDelay:    500 * time.Millisecond,
			InterItemDelay: 100 * time.Millisecond,
		},
		Workers: Workers{
			RescheduleInterval: 0,
		},
	}
}
