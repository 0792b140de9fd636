// Package config provides the settings of the adtax tool itself: where data
// lives, which storage driver holds it, and how logging and colour behave.
// Settings are read from a YAML file, overridden by environment variables,
// validated, and saved atomically.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for settings operations.
var (
	// ErrInvalidConfig indicates the settings are invalid.
	ErrInvalidConfig = errors.New("config: invalid settings")

	// ErrInvalidYAML indicates invalid YAML syntax in the settings file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidEnv indicates an environment override could not be parsed.
	ErrInvalidEnv = errors.New("config: invalid environment override")

	// ErrNotInitialized indicates the Manager has not been initialized via Load().
	ErrNotInitialized = errors.New("config: manager not initialized, call Load() first")

	// ErrNoDataDir indicates no data directory could be determined.
	ErrNoDataDir = errors.New("config: cannot determine data directory")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is supports errors.Is by checking contained validation errors against the target.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}
