package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path for the key-value store
//	-f base directory for attachment files
//	-cache-dir directory for file-backed cache entries
//	-cache-ttl default cache expiry (e.g., "1h", "30m")
//	-cache-max maximum number of cache entries
//	-reschedule-interval bulk reschedule worker interval (0 disables)
//	-log-file write daemon logs to a file next to the executable
//	-c/-config json file path with configs
func ParseFlags() *Config {
	var databasePath string
	var fileStoragePath string
	var cacheDir string
	var cacheTTL time.Duration
	var cacheMax int
	var rescheduleInterval time.Duration
	var logToFile bool
	var jsonConfigPath string

	flag.StringVar(&databasePath, "d", "", "Key-value database file path")
	flag.StringVar(&fileStoragePath, "f", "", "Attachment file storage path")
	flag.StringVar(&cacheDir, "cache-dir", "", "File cache directory")
	flag.DurationVar(&cacheTTL, "cache-ttl", 0, "Default cache TTL (e.g., 1h, 30m)")
	flag.IntVar(&cacheMax, "cache-max", 0, "Maximum cache entries")
	flag.DurationVar(&rescheduleInterval, "reschedule-interval", 0, "Reschedule worker interval (0 disables)")
	flag.BoolVar(&logToFile, "log-file", false, "Write daemon logs to a file next to the executable")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		Storage: Storage{
			DB: DB{
				DSN: databasePath,
			},
			Files: Files{
				DataDir: fileStoragePath,
			},
		},
		Cache: Cache{
			Dir:        cacheDir,
			DefaultTTL: cacheTTL,
			MaxEntries: cacheMax,
		},
		Workers: Workers{
			RescheduleInterval: rescheduleInterval,
		},
		LogToFile:    logToFile,
		JSONFilePath: jsonConfigPath,
	}
}
