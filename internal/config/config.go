// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"printshop-quote/core/strategy"
	"printshop-quote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Catalog contains catalog store settings
	Catalog CatalogConfig `json:"catalog"`

	// Pricing contains engine defaults
	Pricing PricingConfig `json:"pricing"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// CatalogConfig contains catalog store settings
type CatalogConfig struct {
	// Path is the catalog file or directory of .hcl catalog files
	Path string `json:"path"`
}

// PricingConfig contains engine-wide pricing defaults
type PricingConfig struct {
	// Currency is the quoting currency
	Currency string `json:"currency"`

	// LegacyDiscounts overrides the built-in quantity-break table
	LegacyDiscounts []strategy.DiscountBand `json:"legacy_discounts,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	catalogPath := filepath.Join(homeDir, ".printshop-quote", "catalog")

	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr: ":8080",
		},
		Catalog: CatalogConfig{
			Path: catalogPath,
		},
		Pricing: PricingConfig{
			Currency: "CAD",
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

// Discounts returns the configured legacy discount table.
func (c *Config) Discounts() strategy.DiscountTable {
	if len(c.Pricing.LegacyDiscounts) > 0 {
		return strategy.DiscountTable(c.Pricing.LegacyDiscounts)
	}
	return strategy.DefaultDiscounts()
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
