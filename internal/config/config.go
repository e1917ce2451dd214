// Package config provides configuration management for siunit temperature arrays
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Config represents the global configuration for temperature array operations
type Config struct {
	// Construction
	CopyOnConstruct bool `json:"copy_on_construct" yaml:"copy_on_construct"` // Copy canonical buffers instead of sharing them

	// Display
	MaxDisplayItems int `json:"max_display_items" yaml:"max_display_items"` // Elements shown before a repr is truncated

	// Logging
	LogLevel       string `json:"log_level" yaml:"log_level"`             // debug, info, warn or error
	LogEncoding    string `json:"log_encoding" yaml:"log_encoding"`       // console or json
	VerboseLogging bool   `json:"verbose_logging" yaml:"verbose_logging"` // Log registry and frame operations at debug level
}

// Global configuration instance
var (
	globalConfig Config
	configMutex  sync.RWMutex
)

// Default configuration values
const (
	DefaultMaxDisplayItems = 10
	DefaultLogLevel        = "info"
	DefaultLogEncoding     = "console"
)

// EnvPrefix prefixes every environment variable read by LoadFromEnv.
const EnvPrefix = "SIUNIT_"

var (
	validLogLevels    = []string{"debug", "info", "warn", "error"}
	validLogEncodings = []string{"console", "json"}
)

// Initialize global configuration with defaults
func init() {
	globalConfig = NewConfig()
}

// NewConfig creates a new configuration with default values
func NewConfig() Config {
	return Config{
		CopyOnConstruct: false,
		MaxDisplayItems: DefaultMaxDisplayItems,
		LogLevel:        DefaultLogLevel,
		LogEncoding:     DefaultLogEncoding,
		VerboseLogging:  false,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c.MaxDisplayItems <= 0 {
		return fmt.Errorf("MaxDisplayItems must be positive, got %d", c.MaxDisplayItems)
	}

	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("LogLevel must be one of %s, got %q", strings.Join(validLogLevels, ", "), c.LogLevel)
	}

	if !contains(validLogEncodings, c.LogEncoding) {
		return fmt.Errorf("LogEncoding must be one of %s, got %q",
			strings.Join(validLogEncodings, ", "), c.LogEncoding)
	}

	return nil
}

// WithDefaults returns a new configuration with default values filled in for zero values
func (c Config) WithDefaults() Config {
	defaults := NewConfig()

	if c.MaxDisplayItems == 0 {
		c.MaxDisplayItems = defaults.MaxDisplayItems
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.LogEncoding == "" {
		c.LogEncoding = defaults.LogEncoding
	}

	// Boolean fields keep their zero values so an explicit false survives.
	return c
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = config
}

// GetGlobalConfig returns the current global configuration
func GetGlobalConfig() Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// LoadFromJSON loads configuration from JSON data
func LoadFromJSON(data []byte) (Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing JSON configuration: %w", err)
	}
	return config.WithDefaults(), nil
}

// LoadFromFile loads configuration from a JSON or YAML file
func LoadFromFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", filename, err)
	}

	var config Config
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".json":
		err = json.Unmarshal(data, &config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		return Config{}, fmt.Errorf("unsupported config file format: %s", ext)
	}

	if err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", filename, err)
	}

	return config.WithDefaults(), nil
}

// LoadFromEnv loads configuration from SIUNIT_* environment variables.
// Unparseable values are ignored.
func LoadFromEnv() Config {
	config := NewConfig()

	if val := os.Getenv(EnvPrefix + "COPY_ON_CONSTRUCT"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.CopyOnConstruct = parsed
		}
	}

	if val := os.Getenv(EnvPrefix + "MAX_DISPLAY_ITEMS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			config.MaxDisplayItems = parsed
		}
	}

	if val := os.Getenv(EnvPrefix + "LOG_LEVEL"); val != "" {
		config.LogLevel = strings.ToLower(val)
	}

	if val := os.Getenv(EnvPrefix + "LOG_ENCODING"); val != "" {
		config.LogEncoding = strings.ToLower(val)
	}

	if val := os.Getenv(EnvPrefix + "VERBOSE_LOGGING"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.VerboseLogging = parsed
		}
	}

	return config
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
