// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"wedding-billing/core/types"
	"wedding-billing/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Billing contains billing engine settings
	Billing BillingConfig `json:"billing"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// BillingConfig contains billing engine settings
type BillingConfig struct {
	// DefaultCurrency is the currency quotes are rendered in
	DefaultCurrency types.Currency `json:"default_currency"`

	// PolicyFile is the path to the platform cancellation policy file.
	// Empty means the compiled-in defaults apply.
	PolicyFile string `json:"policy_file,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	policyPath := filepath.Join(homeDir, ".wedding-billing", "fee_policy.hcl")
	if _, err := os.Stat(policyPath); err != nil {
		policyPath = ""
	}

	return &Config{
		Version: "1.0",
		Billing: BillingConfig{
			DefaultCurrency: types.CurrencyUSD,
			PolicyFile:      policyPath,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
