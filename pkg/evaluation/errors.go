package evaluation

import "fmt"

// ValidationError reports invalid input rejected at construction time:
// empty or oversized content, malformed brand guidelines, out-of-range
// scores. Validation failures never reach the analyzers.
type ValidationError struct {
	// Field is the offending field name.
	Field string

	// Message describes what was wrong with the value.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// SafeMessage returns a generic, user-presentable message. The detailed
// message is kept for diagnostics only.
func (e *ValidationError) SafeMessage() string {
	return "the submitted content could not be evaluated"
}

// ConfigError reports an invalid configuration update: unknown risk
// level names, non-positive weights, and similar. A rejected update
// leaves the prior configuration intact.
type ConfigError struct {
	// Setting is the configuration key that was rejected.
	Setting string

	// Message describes why the value was rejected.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %s", e.Setting, e.Message)
}
