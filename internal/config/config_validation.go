package config

import "fmt"

// validate checks the merged configuration for values no component can run
// with. Defaults fill every field, so failures here mean an explicit source
// supplied something out of range.
func (c *Config) validate() error {
	if c.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database path", ErrInvalidStorageConfigs)
	}
	if c.Storage.Files.DataDir == "" {
		return fmt.Errorf("%w: empty data directory", ErrInvalidStorageConfigs)
	}

	if c.Cache.Dir == "" {
		return fmt.Errorf("%w: empty cache directory", ErrInvalidCacheConfigs)
	}
	if c.Cache.DefaultTTL <= 0 {
		return fmt.Errorf("%w: non-positive default TTL", ErrInvalidCacheConfigs)
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("%w: non-positive entry cap", ErrInvalidCacheConfigs)
	}

	if c.Notify.DayAnchorHour < 0 || c.Notify.DayAnchorHour > 23 {
		return fmt.Errorf("%w: day anchor hour out of range", ErrInvalidNotifyConfigs)
	}
	if c.Notify.DueTodayHour < 0 || c.Notify.DueTodayHour > 23 {
		return fmt.Errorf("%w: due-today hour out of range", ErrInvalidNotifyConfigs)
	}
	if c.Notify.MinLead < 0 {
		return fmt.Errorf("%w: negative minimum lead", ErrInvalidNotifyConfigs)
	}

	if c.Workers.RescheduleInterval < 0 {
		return fmt.Errorf("%w: negative reschedule interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
