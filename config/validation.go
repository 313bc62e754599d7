package config

import (
	"fmt"
	"os"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// requiredInProduction lists the variables that must be set explicitly
// when running in production; elsewhere the defaults are acceptable.
var requiredInProduction = []string{
	"SERVER_HOST",
	"SERVER_PORT",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
}

// ValidateConfig checks the loaded configuration against the current
// environment's requirements.
func ValidateConfig(cfg *Config) error {
	if IsProduction() {
		for _, name := range requiredInProduction {
			if os.Getenv(name) == "" {
				return ValidationError{Field: name, Message: "required in production"}
			}
		}
	}

	if cfg.ServerPort == "" {
		return ValidationError{Field: "SERVER_PORT", Message: "must not be empty"}
	}
	if cfg.DBName == "" {
		return ValidationError{Field: "DB_NAME", Message: "must not be empty"}
	}

	return nil
}
