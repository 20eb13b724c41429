// Package errors provides custom error types and error handling utilities.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors that can be used for comparison.
var (
	// ErrPlanNotFound is returned when the named plan file does not exist.
	ErrPlanNotFound = errors.New("Plan file not found")

	// ErrMalformedPlan is returned when plan content is not valid JSON.
	ErrMalformedPlan = errors.New("Plan file contains invalid JSON")

	// ErrNoPlanAnalyzed is returned when a query runs before any plan has
	// been analyzed.
	ErrNoPlanAnalyzed = errors.New("No plan has been analyzed yet")

	// ErrInvalidInput is returned when user input is invalid.
	ErrInvalidInput = errors.New("Invalid input")

	// ErrUserAborted is returned when a user aborts an operation.
	ErrUserAborted = errors.New("Operation aborted by user")
)

// ParseError represents a failure while loading or decoding a plan file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error returns the error message.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("Parse error for '%s': %s", e.Path, e.Message)
	}
	return fmt.Sprintf("Parse error: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(path, message string, err error) error {
	return &ParseError{
		Path:    path,
		Message: message,
		Err:     err,
	}
}

// ValidationError represents an error that occurs during validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("Validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("Validation error: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// ConfigurationError represents an error related to configuration.
type ConfigurationError struct {
	Component string
	Message   string
	Err       error
}

// Error returns the error message.
func (e *ConfigurationError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("Configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("Configuration error: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(component, message string, err error) error {
	return &ConfigurationError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// IsParseError returns true if the error is a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsConfigurationError returns true if the error is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var confErr *ConfigurationError
	return errors.As(err, &confErr)
}

// IsErrPlanNotFound returns true if the error is or wraps ErrPlanNotFound.
func IsErrPlanNotFound(err error) bool {
	return errors.Is(err, ErrPlanNotFound)
}

// IsErrMalformedPlan returns true if the error is or wraps ErrMalformedPlan.
func IsErrMalformedPlan(err error) bool {
	return errors.Is(err, ErrMalformedPlan)
}

// IsErrNoPlanAnalyzed returns true if the error is or wraps ErrNoPlanAnalyzed.
func IsErrNoPlanAnalyzed(err error) bool {
	return errors.Is(err, ErrNoPlanAnalyzed)
}

// IsErrUserAborted returns true if the error is or wraps ErrUserAborted.
func IsErrUserAborted(err error) bool {
	return errors.Is(err, ErrUserAborted)
}
