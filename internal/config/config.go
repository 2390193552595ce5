package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	// Timezone renders the date-typed metadata channels. Empty means the
	// system zone.
	Timezone string `json:"timezone"`
	// FetchRetries is the retry budget for image downloads.
	FetchRetries int  `json:"fetch_retries"`
	Debug        bool `json:"debug"`
}

func GetAppConfig() (*Config, error) {
	path, err := appPath()
	if err != nil {
		return nil, fmt.Errorf("GetAppConfig: failed to access config path due to error %w:", err)
	}

	cfgfile, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			err := os.MkdirAll(filepath.Dir(path), 0700)
			if err != nil {
				return nil, fmt.Errorf("GetAppConfig: failed to create default path due to error %w:", err)
			}

			// Set default config here
			conf := &Config{
				Timezone:     "",
				FetchRetries: 3,
			}

			b, err := json.Marshal(conf)
			if err != nil {
				return nil, fmt.Errorf("GetAppConfig: failed to convert and store default config %w:", err)
			}

			if err := os.WriteFile(path, b, 0644); err != nil {
				return nil, fmt.Errorf("GetAppConfig: failed to create default config due to error %w:", err)
			}

			return conf, nil
		}

		return nil, fmt.Errorf("GetAppConfig: failed to open config due to error %w:", err)
	}
	defer cfgfile.Close()

	conf := &Config{}
	if err := json.NewDecoder(cfgfile).Decode(conf); err != nil {
		return nil, fmt.Errorf("GetAppConfig: failed to decode config due to error %w:", err)
	}

	return conf, nil
}

func appPath() (string, error) {
	oscfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("appPath: failed to get config file due to error %w:", err)
	}

	return filepath.Join(oscfg, "castbridge", "settings.json"), nil
}

// Location resolves the configured timezone, falling back to the system
// zone.
func (s *Config) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("Location: failed to load timezone due to error %w:", err)
	}

	return loc, nil
}

func (s *Config) SaveAppConfig() error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("SaveAppConfig: failed to marshal json due to error %w:", err)
	}

	path, err := appPath()
	if err != nil {
		return fmt.Errorf("SaveAppConfig: failed to access config path due to error %w:", err)
	}

	if err := os.WriteFile(path, b, 0655); err != nil {
		return fmt.Errorf("SaveAppConfig: failed save config due to error %w:", err)
	}

	return nil
}
