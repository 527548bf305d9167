package config

import (
	"fmt"
	"strings"
)

const maxMargin = 10000

// validateConfig performs validation of configuration values. Placement mode
// and custom coordinates are deliberately lenient: the placement calculator
// recovers from them at runtime.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDesklet(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateDesklet(config *Config) []string {
	var validationErrors []string
	if config.Desklet.Monitor < 0 {
		validationErrors = append(validationErrors, "desklet.monitor must be non-negative")
	}
	if config.Desklet.Margin < 0 || config.Desklet.Margin > maxMargin {
		validationErrors = append(validationErrors, fmt.Sprintf("desklet.margin must be between 0 and %d", maxMargin))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not one of trace, debug, info, warn, error", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format %q must be console or json", config.Logging.Format))
	}
	return validationErrors
}
