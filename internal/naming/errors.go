package naming

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for naming operations.
var (
	// ErrInvalidConfiguration indicates the configuration failed validation.
	ErrInvalidConfiguration = errors.New("naming: invalid configuration")

	// ErrImport indicates an import could not be applied.
	ErrImport = errors.New("naming: import failed")

	// ErrEmptyLabel indicates a variable edit with a blank label.
	ErrEmptyLabel = errors.New("naming: variable label is empty")

	// ErrVariableIndex indicates a variable index outside the configuration.
	ErrVariableIndex = errors.New("naming: variable index out of range")

	// ErrUnknownVariable indicates no variable has the requested name.
	ErrUnknownVariable = errors.New("naming: unknown variable")
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
	if target == ErrInvalidConfiguration {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}

// ImportError reports why serialized configuration could not be imported.
// The stored configuration is left untouched when it is returned.
type ImportError struct {
	Cause error
}

// Error implements the error interface.
func (e *ImportError) Error() string {
	return fmt.Sprintf("import configuration: %v", e.Cause)
}

// Unwrap returns the cause.
func (e *ImportError) Unwrap() error { return e.Cause }

// Is matches ErrImport.
func (e *ImportError) Is(target error) bool { return target == ErrImport }

// LoadError describes a stored record that could not be decoded.
// Loads recover from it by substituting defaults; it is only logged.
type LoadError struct {
	Key   string
	Cause error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Key, e.Cause)
}

// Unwrap returns the cause.
func (e *LoadError) Unwrap() error { return e.Cause }
