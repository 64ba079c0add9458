// FILE: tinylog-go/tinylog/override.go

package tinylog

import (
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the configuration.
// Each override should be in the format "key=value", keyed by toml tag.
// The level field additionally accepts level names ("debug", "warn", ...).
//
// Example:
//
//	cfg := tinylog.DefaultConfig()
//	err := cfg.ApplyOverride(
//	    "directory=/var/log/app",
//	    "level=debug",
//	    "enable_file=true",
//	)
func (c *Config) ApplyOverride(overrides ...string) error {
	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(c, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	c.normalize()
	return nil
}

// applyConfigField parses a string value into the config field matching
// the given toml tag.
func applyConfigField(c *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "level":
		// Accept both numeric ordinals and level names
		if lv, err := strconv.ParseInt(value, 10, 64); err == nil {
			c.Level = lv
			return nil
		}
		lv, err := ParseLevel(value)
		if err != nil {
			return err
		}
		c.Level = lv

	case "utc":
		return setBoolField(&c.UTC, key, value)
	case "directory":
		c.Directory = value
	case "name":
		c.Name = value
	case "extension":
		c.Extension = value
	case "enable_console":
		return setBoolField(&c.EnableConsole, key, value)
	case "console_color":
		return setBoolField(&c.ConsoleColor, key, value)
	case "enable_file":
		return setBoolField(&c.EnableFile, key, value)
	case "max_size_kb":
		return setIntField(&c.MaxSizeKB, key, value)
	case "max_files":
		return setIntField(&c.MaxFiles, key, value)
	case "async":
		return setBoolField(&c.Async, key, value)
	case "buffer_size":
		return setIntField(&c.BufferSize, key, value)

	default:
		return fmtErrorf("unknown config key: %s", key)
	}
	return nil
}

func setBoolField(dst *bool, key, value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return fmtErrorf("%s must be a boolean, got '%s'", key, value)
	}
	*dst = v
	return nil
}

func setIntField(dst *int64, key, value string) error {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmtErrorf("%s must be an integer, got '%s'", key, value)
	}
	*dst = v
	return nil
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("tinylog: multiple configuration errors:")
	for i, err := range errs {
		errMsg := err.Error()
		// Remove "tinylog: " prefix from individual errors to avoid duplication
		errMsg = strings.TrimPrefix(errMsg, "tinylog: ")
		if i > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(" ")
		sb.WriteString(errMsg)
	}
	return fmtErrorf("%s", sb.String())
}
