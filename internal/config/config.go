package config

import (
	"os"
	"strings"

	"digitlens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Input    InputConfig
	Database DatabaseConfig
	Output   OutputConfig
	Server   ServerConfig
}

// InputConfig holds tabular source settings
type InputConfig struct {
	File          string
	Sheet         string
	AmountColumns []string
}

// DatabaseConfig holds the optional SQL amount source settings
type DatabaseConfig struct {
	URL   string
	Query string
}

// OutputConfig holds artifact output settings
type OutputConfig struct {
	Dir string
}

// ServerConfig holds preview server settings
type ServerConfig struct {
	Port string
}

const (
	DefaultInputFile     = "je_samples.xlsx"
	DefaultSheet         = "Sheet1"
	DefaultAmountColumns = "AbsoluteAmount,Amount"
	DefaultOutputDir     = "output"
	DefaultPort          = "8080"
)

// Load reads configuration from environment variables and validates it.
// Every knob has a default so the binary runs with no environment at all.
func Load() (*Config, error) {
	config := &Config{
		Input:    loadInputConfig(),
		Database: loadDatabaseConfig(),
		Output:   loadOutputConfig(),
		Server:   loadServerConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadInputConfig() InputConfig {
	return InputConfig{
		File:          getEnvOrDefault("INPUT_FILE", DefaultInputFile),
		Sheet:         getEnvOrDefault("SHEET_NAME", DefaultSheet),
		AmountColumns: SplitColumns(getEnvOrDefault("AMOUNT_COLUMNS", DefaultAmountColumns)),
	}
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URL:   getEnvOrDefault("DATABASE_URL", ""),
		Query: getEnvOrDefault("AMOUNT_QUERY", ""),
	}
}

func loadOutputConfig() OutputConfig {
	return OutputConfig{
		Dir: getEnvOrDefault("OUTPUT_DIR", DefaultOutputDir),
	}
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port: getEnvOrDefault("PORT", DefaultPort),
	}
}

func validateConfig(config *Config) error {
	if config.Input.File == "" {
		return errors.ConfigInvalid("input file is required")
	}
	if len(config.Input.AmountColumns) == 0 {
		return errors.ConfigInvalid("at least one amount column is required")
	}
	if config.Output.Dir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	if config.Database.URL != "" && config.Database.Query == "" {
		return errors.ConfigInvalid("AMOUNT_QUERY is required when DATABASE_URL is set")
	}
	return nil
}

// UseDatabase reports whether amounts should come from the SQL source
// instead of the tabular file.
func (c *Config) UseDatabase() bool {
	return c.Database.URL != ""
}

// SplitColumns parses a comma-separated column preference list,
// trimming whitespace and dropping empty entries.
func SplitColumns(s string) []string {
	parts := strings.Split(s, ",")
	columns := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			columns = append(columns, trimmed)
		}
	}
	return columns
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
