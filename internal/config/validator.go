package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a settings validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("settings validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate validates the given settings.
func Validate(s *Settings) error {
	var errs ValidationErrors

	if s.SourceBaseURL != "" {
		if err := ValidateBaseURL(s.SourceBaseURL); err != nil {
			errs = append(errs, ValidationError{
				Field:   "sourceBaseURL",
				Message: err.Error(),
			})
		}
	}

	if s.FetchTimeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "fetchTimeout",
			Message: "must not be negative",
		})
	}

	if s.PackageManager != "" && strings.TrimSpace(s.PackageManager) == "" {
		errs = append(errs, ValidationError{
			Field:   "packageManager",
			Message: "must not be empty or whitespace only",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateBaseURL checks that a source base URL is an absolute http(s) URL.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("must include a host, got %q", raw)
	}
	return nil
}
