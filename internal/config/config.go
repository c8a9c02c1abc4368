package config

import (
	"time"
)

// Config is the top-level configuration container for tugascollecter. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Storage holds settings for the durable key-value database and the
	// attachment file tree.
	Storage Storage `envPrefix:"STORAGE_"`

	// Cache holds settings for the TTL cache layer.
	Cache Cache `envPrefix:"CACHE_"`

	// Notify holds timing parameters for the reminder scheduler.
	Notify Notify `envPrefix:"NOTIFY_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// LogToFile routes daemon log output to a file next to the executable
	// instead of stdout, so output survives detached runs.
	// Populated via the LOG_TO_FILE environment variable or the -log-file flag.
	LogToFile bool `env:"LOG_TO_FILE"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of the two durable backends.
type Storage struct {
	// DB holds the key-value database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the attachment file-tree settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds settings for the sqlite file backing the key-value store.
type DB struct {
	// DSN is the path to the sqlite database file. The file is created on
	// first open if it does not exist.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds settings for the attachment directory tree.
type Files struct {
	// DataDir is the base directory under which the attachments/, exports/
	// and temp/ subdirectories are created.
	// Env: STORAGE_FILES_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// Cache holds settings for the TTL cache layer.
type Cache struct {
	// Dir is the directory for file-backed cache entries. It lives outside
	// DataDir so the OS (or a reset) can wipe it without touching user data.
	// Env: CACHE_DIR
	Dir string `env:"DIR"`

	// DefaultTTL is the expiry applied when a caller does not pass an
	// explicit duration (e.g. "1h").
	// Env: CACHE_DEFAULT_TTL
	DefaultTTL time.Duration `env:"DEFAULT_TTL"`

	// MaxEntries caps the number of cache entries; the oldest entries by
	// write time are evicted past the cap.
	// Env: CACHE_MAX_ENTRIES
	MaxEntries int `env:"MAX_ENTRIES"`
}

// Notify holds the timing parameters of the reminder scheduler.
type Notify struct {
	// DayAnchorHour is the local hour (0-23) day-based reminders fire at.
	// Env: NOTIFY_DAY_ANCHOR_HOUR
	DayAnchorHour int `env:"DAY_ANCHOR_HOUR"`

	// DueTodayHour is the local hour the "due today" notification fires at.
	// Env: NOTIFY_DUE_TODAY_HOUR
	DueTodayHour int `env:"DUE_TODAY_HOUR"`

	// MinLead is the floor applied to near-future reminders so nothing
	// fires essentially immediately (e.g. "5m").
	// Env: NOTIFY_MIN_LEAD
	MinLead time.Duration `env:"MIN_LEAD"`

	// SettleDelay is the pause after a process-wide cancel before bulk
	// rescheduling starts, letting cancellation settle on the native layer.
	// Env: NOTIFY_SETTLE_DELAY
	SettleDelay time.Duration `env:"SETTLE_DELAY"`

	// InterItemDelay is the pause between items during a bulk reschedule.
	// Env: NOTIFY_INTER_ITEM_DELAY
	InterItemDelay time.Duration `env:"INTER_ITEM_DELAY"`
}

// Workers holds background worker settings.
type Workers struct {
	// RescheduleInterval is how often the reschedule worker re-runs the
	// bulk reschedule after the startup pass. Zero falls back to the
	// job's built-in default.
	// Env: WORKERS_RESCHEDULE_INTERVAL
	RescheduleInterval time.Duration `env:"RESCHEDULE_INTERVAL"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources
// win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
