package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paveg/siunit/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultValues(t *testing.T) {
	config := config.NewConfig()

	assert.False(t, config.CopyOnConstruct)
	assert.Equal(t, 10, config.MaxDisplayItems)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "console", config.LogEncoding)
	assert.False(t, config.VerboseLogging)
	assert.NoError(t, config.Validate())
}

func TestConfig_Validation(t *testing.T) {
	tests := []struct {
		name          string
		config        config.Config
		expectedError string
	}{
		{
			name: "valid config",
			config: config.Config{
				MaxDisplayItems: 4,
				LogLevel:        "debug",
				LogEncoding:     "json",
			},
			expectedError: "",
		},
		{
			name: "non-positive display items",
			config: config.Config{
				MaxDisplayItems: 0,
				LogLevel:        "info",
				LogEncoding:     "console",
			},
			expectedError: "MaxDisplayItems must be positive, got 0",
		},
		{
			name: "unknown log level",
			config: config.Config{
				MaxDisplayItems: 10,
				LogLevel:        "trace",
				LogEncoding:     "console",
			},
			expectedError: `LogLevel must be one of debug, info, warn, error, got "trace"`,
		},
		{
			name: "unknown log encoding",
			config: config.Config{
				MaxDisplayItems: 10,
				LogLevel:        "warn",
				LogEncoding:     "xml",
			},
			expectedError: `LogEncoding must be one of console, json, got "xml"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectedError == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.expectedError)
			}
		})
	}
}

func TestConfig_LoadFromJSON(t *testing.T) {
	jsonData := `{
		"copy_on_construct": true,
		"max_display_items": 6,
		"log_level": "debug"
	}`

	config, err := config.LoadFromJSON([]byte(jsonData))
	require.NoError(t, err)

	assert.True(t, config.CopyOnConstruct)
	assert.Equal(t, 6, config.MaxDisplayItems)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "console", config.LogEncoding)
}

func TestConfig_InvalidJSON(t *testing.T) {
	_, err := config.LoadFromJSON([]byte(`{"max_display_items": "many"`))
	assert.Error(t, err)
}

func TestConfig_LoadFromFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{
			name:     "json",
			filename: "siunit.json",
			content:  `{"max_display_items": 4, "verbose_logging": true}`,
		},
		{
			name:     "yaml",
			filename: "siunit.yaml",
			content:  "max_display_items: 4\nverbose_logging: true\n",
		},
		{
			name:     "yml",
			filename: "siunit.yml",
			content:  "max_display_items: 4\nverbose_logging: true\nlog_encoding: console\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			cfg, err := config.LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, 4, cfg.MaxDisplayItems)
			assert.True(t, cfg.VerboseLogging)
			assert.Equal(t, "info", cfg.LogLevel)
		})
	}
}

func TestConfig_UnsupportedFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "siunit.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_display_items = 4"), 0o600))

	_, err := config.LoadFromFile(path)
	assert.EqualError(t, err, "unsupported config file format: .toml")
}

func TestConfig_LoadFromNonExistentFile(t *testing.T) {
	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("SIUNIT_COPY_ON_CONSTRUCT", "true")
	t.Setenv("SIUNIT_MAX_DISPLAY_ITEMS", "3")
	t.Setenv("SIUNIT_LOG_LEVEL", "WARN")
	t.Setenv("SIUNIT_LOG_ENCODING", "json")
	t.Setenv("SIUNIT_VERBOSE_LOGGING", "not-a-bool")

	config := config.LoadFromEnv()

	assert.True(t, config.CopyOnConstruct)
	assert.Equal(t, 3, config.MaxDisplayItems)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, "json", config.LogEncoding)
	assert.False(t, config.VerboseLogging, "unparseable values are ignored")
}

func TestConfig_WithDefaults(t *testing.T) {
	config := config.Config{
		LogLevel: "error",
	}

	configWithDefaults := config.WithDefaults()

	assert.Equal(t, "error", configWithDefaults.LogLevel)
	assert.Equal(t, 10, configWithDefaults.MaxDisplayItems)
	assert.Equal(t, "console", configWithDefaults.LogEncoding)
	assert.False(t, configWithDefaults.CopyOnConstruct)
}

func TestGlobalConfig_SetAndGet(t *testing.T) {
	originalConfig := config.GetGlobalConfig()
	defer config.SetGlobalConfig(originalConfig)

	newConfig := config.NewConfig()
	newConfig.CopyOnConstruct = true
	config.SetGlobalConfig(newConfig)

	assert.Equal(t, newConfig, config.GetGlobalConfig())
}
