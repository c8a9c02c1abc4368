package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONConfig mirrors [Config] with JSON tags and string-friendly durations
// for the optional configuration file.
type JSONConfig struct {
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			DataDir string `json:"data_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Cache struct {
		Dir        string   `json:"dir"`
		DefaultTTL Duration `json:"default_ttl"`
		MaxEntries int      `json:"max_entries"`
	} `json:"cache,omitempty"`

	Notify struct {
		DayAnchorHour  int      `json:"day_anchor_hour"`
		DueTodayHour   int      `json:"due_today_hour"`
		MinLead        Duration `json:"min_lead"`
		SettleDelay    Duration `json:"settle_delay"`
		InterItemDelay Duration `json:"inter_item_delay"`
	} `json:"notify,omitempty"`

	Workers struct {
		RescheduleInterval Duration `json:"reschedule_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				DataDir: jsonCfg.Storage.Files.DataDir,
			},
		},
		Cache: Cache{
			Dir:        jsonCfg.Cache.Dir,
			DefaultTTL: time.Duration(jsonCfg.Cache.DefaultTTL),
			MaxEntries: jsonCfg.Cache.MaxEntries,
		},
		Notify: Notify{
			DayAnchorHour:  jsonCfg.Notify.DayAnchorHour,
			DueTodayHour:   jsonCfg.Notify.DueTodayHour,
			MinLead:        time.Duration(jsonCfg.Notify.MinLead),
			SettleDelay:    time.Duration(jsonCfg.Notify.SettleDelay),
			InterItemDelay: time.Duration(jsonCfg.Notify.InterItemDelay),
		},
		Workers: Workers{
			RescheduleInterval: time.Duration(jsonCfg.Workers.RescheduleInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
