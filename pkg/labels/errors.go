package labels

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern indicates a filter pattern that is not a valid regular expression.
var ErrInvalidPattern = errors.New("invalid pattern")

// ConfigurationError represents a bad or missing labeling configuration
type ConfigurationError struct {
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("configuration error")
	if e.Field != "" {
		fmt.Fprintf(&b, " for field '%s'", e.Field)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " (value: %s)", e.Value)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying error
func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a ConfigurationError without field information
func NewConfigurationError(message string, cause error) *ConfigurationError {
	return &ConfigurationError{Message: message, Cause: cause}
}

// ConfigurationErrors collects every problem found in one configuration
type ConfigurationErrors []ConfigurationError

// Error implements the error interface
func (e ConfigurationErrors) Error() string {
	if len(e) == 0 {
		return "configuration is invalid"
	}

	if len(e) == 1 {
		return e[0].Error()
	}

	messages := make([]string, 0, len(e))
	for i := range e {
		messages = append(messages, e[i].Error())
	}
	return fmt.Sprintf("configuration has %d errors: %s", len(e), strings.Join(messages, "; "))
}

// Unwrap exposes the individual errors to errors.Is and errors.As
func (e ConfigurationErrors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for i := range e {
		errs = append(errs, &e[i])
	}
	return errs
}

// Add adds a configuration error to the collection
func (e *ConfigurationErrors) Add(field, value, message string, cause error) {
	*e = append(*e, ConfigurationError{
		Field:   field,
		Value:   value,
		Message: message,
		Cause:   cause,
	})
}

// HasErrors returns true if there are configuration errors
func (e ConfigurationErrors) HasErrors() bool {
	return len(e) > 0
}

// IsConfigurationError reports whether err carries a ConfigurationError
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return true
	}
	var cfgErrs ConfigurationErrors
	return errors.As(err, &cfgErrs)
}
