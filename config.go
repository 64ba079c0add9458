// FILE: config.go

package tinylog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all logger configuration values. Out-of-range or malformed
// values are silently normalized to defaults rather than rejected.
type Config struct {
	// Basic settings
	Level     int64  `toml:"level"`
	UTC       bool   `toml:"utc"`
	Directory string `toml:"directory"`
	Name      string `toml:"name"` // Base name for the default file sink
	Extension string `toml:"extension"`

	// Console sink
	EnableConsole bool `toml:"enable_console"`
	ConsoleColor  bool `toml:"console_color"`

	// Rotating file sink
	EnableFile bool  `toml:"enable_file"`
	MaxSizeKB  int64 `toml:"max_size_kb"` // Rotation threshold; 0 disables rotation
	MaxFiles   int64 `toml:"max_files"`   // Primary file plus MaxFiles-1 backups

	// Async queue
	Async      bool  `toml:"async"`
	BufferSize int64 `toml:"buffer_size"` // Queue capacity
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level:     LevelInfo,
	UTC:       false,
	Directory: "logs",
	Name:      "tinylog",
	Extension: "log",

	EnableConsole: true,
	ConsoleColor:  true,

	EnableFile: false,
	MaxSizeKB:  DefaultMaxBytes / 1024,
	MaxFiles:   DefaultMaxFiles,

	Async:      false,
	BufferSize: DefaultBufferSize,
}

// DefaultConfig returns a copy of the default configuration.
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// normalize coerces out-of-range values back to defaults. Configuration is
// never rejected; malformed inputs degrade gracefully.
func (c *Config) normalize() {
	if strings.TrimSpace(c.Name) == "" {
		c.Name = defaultConfig.Name
	}
	if c.Level < LevelTrace || c.Level > LevelOff {
		c.Level = defaultConfig.Level
	}
	if c.MaxSizeKB < 0 {
		c.MaxSizeKB = 0
	}
	if c.MaxFiles < 1 {
		c.MaxFiles = 1
	}
	if c.BufferSize <= 0 {
		c.BufferSize = defaultConfig.BufferSize
	}
	// Extension normalization (leading dot, empty fallback) happens at
	// path synthesis time via SetExtension.
}

// New builds a Logger from a configuration: level, timezone, default path
// parts, and the sinks the config enables. A nil config uses defaults.
func New(cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := cfg.Clone()
	c.normalize()

	l := NewLogger()
	l.SetLevel(c.Level)
	l.SetUTC(c.UTC)
	l.SetDirectory(c.Directory)
	l.SetBaseName(c.Name)
	l.SetExtension(c.Extension)
	l.SetBufferSize(c.BufferSize)

	if c.EnableConsole {
		l.AddConsoleSink(c.ConsoleColor)
	}
	if c.EnableFile {
		l.AddDefaultFileSink(c.MaxSizeKB*1024, int(c.MaxFiles))
	}
	if c.Async {
		l.Start()
	}
	return l
}

// NewConfigFromFile loads configuration from a TOML file and returns a
// normalized Config. A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("tinylog.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "tinylog.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}
