package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable for the
// current environment.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, "server port is required")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		errors = append(errors, "database host, port and name are required")
	}
	if cfg.DBUser == "" || cfg.DBPassword == "" {
		errors = append(errors, "database credentials are required")
	}
	if cfg.RedisHost == "" && cfg.RedisURL == "" {
		errors = append(errors, "redis host or redis URL is required")
	}
	if cfg.JWTSecret == "" {
		errors = append(errors, "jwt secret is required")
	}
	if cfg.MLFailureRate < 0 || cfg.MLFailureRate > 1 {
		errors = append(errors, "ML failure rate must be within [0, 1]")
	}
	if cfg.MLMaxLatencyMs < 0 {
		errors = append(errors, "ML max latency must be non-negative")
	}
	if cfg.KnowledgeBucket != "" && cfg.KnowledgeKey == "" {
		errors = append(errors, "knowledge object key is required when a knowledge bucket is set")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
