package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the persisted user settings file
// (~/.subscription-calendar/config.yaml). Flags override config values,
// config values override detected/system defaults.
type Config struct {
	// Locale is an IETF-style tag (e.g. "de-AT") used for date
	// disambiguation, calendar week start and amount formatting.
	Locale string `yaml:"locale,omitempty"`

	// Currency overrides the display currency ("EUR", "USD", or a symbol
	// like "€"). Empty means: use the subscriptions' own currency.
	Currency string `yaml:"currency,omitempty"`

	// Source is the default source type when a file has no recognizable
	// extension (xlsx, csv, simple-json).
	Source string `yaml:"source,omitempty"`

	// SpreadsheetID and APIKey connect the google-sheets source. Both can
	// also come from SHEETS_SPREADSHEET_ID / SHEETS_API_KEY.
	SpreadsheetID string `yaml:"spreadsheet_id,omitempty"`
	APIKey        string `yaml:"api_key,omitempty"`

	// Demo renders the built-in demo subscriptions instead of fetching.
	Demo bool `yaml:"demo,omitempty"`
}

// DefaultConfigPath returns the default config file path
// (~/.subscription-calendar/config.yaml).
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".subscription-calendar", "config.yaml")
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Locale != "" {
		if err := ValidateLocale(cfg.Locale); err != nil {
			return nil, err
		}
	}
	if cfg.Source != "" && !IsKnownParser(cfg.Source) {
		return nil, fmt.Errorf("unknown source type %q in config (available: %v)",
			cfg.Source, AvailableSources())
	}

	return &cfg, nil
}

// LoadConfigOrDefault loads the config at path, or returns an empty config
// when the file does not exist.
func LoadConfigOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadConfig(path)
}

// Save writes the config to disk, creating parent directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
