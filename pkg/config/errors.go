package config

import "fmt"

// EnvironmentError represents a missing or unusable environment variable or event field
type EnvironmentError struct {
	Variable string `json:"variable"`
	Message  string `json:"message"`
	Cause    error  `json:"-"`
}

// Error implements the error interface
func (e *EnvironmentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("environment error for %s: %s: %v", e.Variable, e.Message, e.Cause)
	}
	return fmt.Sprintf("environment error for %s: %s", e.Variable, e.Message)
}

// Unwrap returns the underlying error
func (e *EnvironmentError) Unwrap() error {
	return e.Cause
}
