// Package config holds the tunable parts of a control run. Everything has a
// working default; a config file is only needed when the salespartner list or
// the dashboard location changes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects which billing rows are in scope and where issue deep links
// point.
type Config struct {
	// Salespartners is the allow-list applied to the billing export.
	Salespartners []string `yaml:"salespartners"`
	// DashboardBaseURL is the prefix for per-location dashboard links.
	DashboardBaseURL string `yaml:"dashboard_base_url"`
}

// Default returns the built-in configuration: the two Edelweiss salespartners
// billed through this account and the public uberall dashboard.
func Default() Config {
	return Config{
		Salespartners: []string{
			"Edelweiss Digital GmbH",
			"Edelweiss (Russmedia)",
		},
		DashboardBaseURL: "https://app.uberall.com/locations",
	}
}

// Load reads a yaml config file. Fields absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if len(cfg.Salespartners) == 0 {
		cfg.Salespartners = Default().Salespartners
	}
	if cfg.DashboardBaseURL == "" {
		cfg.DashboardBaseURL = Default().DashboardBaseURL
	}
	return cfg, nil
}
