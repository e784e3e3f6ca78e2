// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported city names, in display order.
const (
	CityChicago    = "Chicago"
	CityNewYork    = "New York City"
	CityWashington = "Washington"
)

// Default values
const (
	defaultDataDir     = "data"
	defaultPreviewRows = 5

	// MinPreviewRows and MaxPreviewRows bound the raw-data preview size.
	MinPreviewRows = 5
	MaxPreviewRows = 50
)

// cityFiles maps each supported city to its CSV file name under the data
// directory. Built once at load time and handed to the Loader explicitly.
var cityFiles = map[string]string{
	CityChicago:    "chicago.csv",
	CityNewYork:    "new_york_city.csv",
	CityWashington: "washington.csv",
}

// Config holds the application configuration.
type Config struct {
	DataDir       string
	PreviewRows   int
	DesktopNotify bool
	WatchData     bool
	LogLevel      string

	cityPaths map[string]string
	cities    []string
}

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		DataDir:       getEnvString("BIKESHARE_DATA_DIR", defaultDataDir),
		PreviewRows:   getEnvInt("BIKESHARE_PREVIEW_ROWS", defaultPreviewRows),
		DesktopNotify: getEnvBool("BIKESHARE_DESKTOP_NOTIFY", false),
		WatchData:     getEnvBool("BIKESHARE_WATCH_DATA", true),
		LogLevel:      getEnvString("BIKESHARE_LOG_LEVEL", "info"),
	}

	cfg.PreviewRows = ClampPreviewRows(cfg.PreviewRows)

	cfg.cities = []string{CityChicago, CityNewYork, CityWashington}
	cfg.cityPaths = make(map[string]string, len(cityFiles))
	for city, file := range cityFiles {
		cfg.cityPaths[city] = filepath.Join(cfg.DataDir, file)
	}

	if err := ensureDir(cfg.DataDir); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// Cities returns the supported city names in display order.
func (c *Config) Cities() []string {
	cities := make([]string, len(c.cities))
	copy(cities, c.cities)
	return cities
}

// CityPath returns the CSV path for a city and whether the city is known.
func (c *Config) CityPath(city string) (string, bool) {
	path, ok := c.cityPaths[city]
	return path, ok
}

// CityPaths returns a copy of the city→path map.
func (c *Config) CityPaths() map[string]string {
	paths := make(map[string]string, len(c.cityPaths))
	for city, path := range c.cityPaths {
		paths[city] = path
	}
	return paths
}

// ClampPreviewRows bounds a preview row count to the allowed range.
func ClampPreviewRows(n int) int {
	if n < MinPreviewRows {
		return MinPreviewRows
	}
	if n > MaxPreviewRows {
		return MaxPreviewRows
	}
	return n
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "bikeshare-tui", ".env"),
			filepath.Join(home, ".bikeshare", ".env"),
		)
	}

	return paths
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns the default.
// Accepts the forms understood by strconv.ParseBool ("1", "true", "false", ...).
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
