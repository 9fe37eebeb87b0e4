// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Output encodings
const (
	FormatHex    = "hex"
	FormatBase64 = "base64"
)

// Config holds the settings of the qtypes command
type Config struct {
	Output OutputConfig `json:"output"`
	Debug  bool         `json:"debug"`
}

// OutputConfig holds output-related configuration
type OutputConfig struct {
	Format  string `json:"format"`
	NoColor bool   `json:"noColor"`
}

// LoadFromEnv loads configuration from the environment.
// Variables already set in the process win over values from a .env file
// in the working directory, which win over defaults.
func LoadFromEnv() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load(".env")

	config := &Config{
		Output: OutputConfig{
			Format:  strings.ToLower(getEnvOrDefault("QTYPES_FORMAT", FormatHex)),
			NoColor: getEnvAsBool("QTYPES_NO_COLOR", false),
		},
		Debug: getEnvAsBool("QTYPES_DEBUG", false),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// LoadFromMap loads configuration from envMap instead of the process
// environment. It has no side effects and is safe for parallel tests.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value, exists := envMap[key]; exists {
			return value
		}
		return defaultValue
	}

	getBool := func(key string, defaultValue bool) bool {
		if value, exists := envMap[key]; exists {
			if boolValue, err := strconv.ParseBool(value); err == nil {
				return boolValue
			}
		}
		return defaultValue
	}

	config := &Config{
		Output: OutputConfig{
			Format:  strings.ToLower(get("QTYPES_FORMAT", FormatHex)),
			NoColor: getBool("QTYPES_NO_COLOR", false),
		},
		Debug: getBool("QTYPES_DEBUG", false),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errors []string

	validFormats := []string{FormatHex, FormatBase64}
	if !contains(validFormats, c.Output.Format) {
		errors = append(errors, fmt.Sprintf("QTYPES_FORMAT must be one of: %s", strings.Join(validFormats, ", ")))
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}
	return nil
}

// Helper functions
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
