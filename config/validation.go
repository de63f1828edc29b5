package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable for the current
// environment. Production refuses to start without a JWT secret and a
// database password; development falls back to permissive defaults.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: "must not be empty"}.Error())
	}
	if cfg.DBHost == "" {
		errs = append(errs, ValidationError{Field: "DB_HOST", Message: "must not be empty"}.Error())
	}
	if cfg.DBName == "" {
		errs = append(errs, ValidationError{Field: "DB_NAME", Message: "must not be empty"}.Error())
	}

	if IsProduction() {
		if cfg.JWTSecret == "" {
			errs = append(errs, ValidationError{Field: "JWT_SECRET", Message: "required in production"}.Error())
		}
		if cfg.DBPassword == "" {
			errs = append(errs, ValidationError{Field: "DB_PASSWORD", Message: "required in production"}.Error())
		}
	} else if cfg.JWTSecret == "" {
		cfg.JWTSecret = "development-secret"
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
