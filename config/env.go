package config

import (
	"os"
)

// Environment selects how the engine loads its configuration: development
// and test read local env vars with defaults, CI reads env vars only, and
// production reads Docker secrets.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the engine's current environment.
func GetEnvironment() Environment {
	// CI pipelines are detected automatically.
	if os.Getenv("CI") == "true" {
		return CI
	}

	// Everything else is selected via ENV.
	switch env := os.Getenv("ENV"); env {
	case "production":
		return Production
	case "test":
		return Test
	case "development":
		return Development
	default:
		return Development
	}
}

// IsDevelopment returns true if the engine runs in development
func IsDevelopment() bool {
	return GetEnvironment() == Development
}

// IsTest returns true if the engine runs under the test environment
func IsTest() bool {
	return GetEnvironment() == Test
}

// IsCI returns true if the engine runs in a CI pipeline
func IsCI() bool {
	return GetEnvironment() == CI
}

// IsProduction returns true if the engine runs in production
func IsProduction() bool {
	return GetEnvironment() == Production
}
