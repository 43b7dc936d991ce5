package types

import "fmt"

// ValidationResult is the outcome of a linking or placement rule check.
// Rule failures are values, never errors: the caller decides whether to
// block the edit or warn.
type ValidationResult struct {
	Valid   bool
	Message string // empty when Valid
}

// ValidResult is the successful rule-check outcome.
func ValidResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// InvalidResult builds a failed rule-check outcome with a formatted message.
func InvalidResult(format string, args ...any) ValidationResult {
	return ValidationResult{Message: fmt.Sprintf(format, args...)}
}
