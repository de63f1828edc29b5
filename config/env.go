package config

import (
	"os"
)

// Environment represents the current runtime environment.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from the ENV variable.
func GetEnvironment() Environment {
	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// IsProduction returns true if the current environment is production.
func IsProduction() bool {
	return GetEnvironment() == Production
}

// IsTest returns true if the current environment is test.
func IsTest() bool {
	return GetEnvironment() == Test
}
