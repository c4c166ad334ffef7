// Package config loads namelint configuration. Compiled defaults are
// overlaid by the .namelint.yaml file, then by environment variables
// (process environment first, then a .env file next to the config), and
// the merged result is validated.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrConfigNotFound indicates an explicitly requested configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrConfigExists indicates a configuration file would be overwritten.
	ErrConfigExists = errors.New("config: configuration file already exists")

	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates invalid YAML syntax in a configuration file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrUnknownRule indicates a disabled rule id that no rule carries.
	ErrUnknownRule = errors.New("config: unknown rule id")

	// ErrInvalidPattern indicates an ignore pattern that does not compile.
	ErrInvalidPattern = errors.New("config: invalid ignore pattern")

	// ErrInvalidEnv indicates an environment variable with an unusable value.
	ErrInvalidEnv = errors.New("config: invalid environment value")
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

// Fields returns the field names of the contained errors, in order.
func (e *ValidationErrors) Fields() []string {
	out := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		out[i] = ve.Field
	}
	return out
}
