package config

import (
	"fmt"
	"strings"
)

// validateConfig collects every problem instead of stopping at the first.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateWorkspace(config)...)
	validationErrors = append(validationErrors, validateSession(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateExport(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateWorkspace(config *Config) []string {
	var validationErrors []string
	ratio := config.Workspace.DefaultSplitRatio
	if ratio < 0.1 || ratio > 0.9 {
		validationErrors = append(validationErrors,
			fmt.Sprintf("workspace.default_split_ratio must be between 0.1 and 0.9 (got %v)", ratio))
	}
	if strings.ContainsAny(config.Workspace.DefaultLayout, "/\\") {
		validationErrors = append(validationErrors, "workspace.default_layout must be a layout name, not a path")
	}
	return validationErrors
}

func validateSession(config *Config) []string {
	if config.Session.SnapshotIntervalMs < 100 {
		return []string{fmt.Sprintf("session.snapshot_interval_ms must be at least 100 (got %d)", config.Session.SnapshotIntervalMs)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateExport(config *Config) []string {
	if config.Export.Parallelism < 1 {
		return []string{fmt.Sprintf("export.parallelism must be at least 1 (got %d)", config.Export.Parallelism)}
	}
	return nil
}
