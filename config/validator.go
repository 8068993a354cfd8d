package config

import (
	"fmt"
	"net/url"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Path locates the invalid field within the config document
	Path string

	// Message describes the validation error
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks the configuration and returns every problem found. An
// empty slice means the configuration is valid.
func Validate(cfg *Config) []ValidationError {
	var errors []ValidationError

	if len(cfg.Environments) == 0 {
		errors = append(errors, ValidationError{
			Path:    "environments",
			Message: "at least one environment is required",
		})
	}

	for name, env := range cfg.Environments {
		if env.BaseURL == "" {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("environments.%s.baseUrl", name),
				Message: "baseUrl is required",
			})
			continue
		}
		if u, err := url.Parse(env.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("environments.%s.baseUrl", name),
				Message: "baseUrl must have a scheme and host",
			})
		}
	}

	if len(cfg.Requests) == 0 {
		errors = append(errors, ValidationError{
			Path:    "requests",
			Message: "at least one request is required",
		})
	}

	for name, req := range cfg.Requests {
		if req.Method == "" {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("requests.%s.method", name),
				Message: "method is required",
			})
		}
		if _, err := parseEncoding(req.Encoding); err != nil {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("requests.%s.encoding", name),
				Message: err.Error(),
			})
		}
	}

	return errors
}
