package schema

// UserError is a diagnostic caused by user input, such as a malformed
// grade file or a rejected expression. The CLI prints these without a
// stack trace and exits nonzero.
type UserError struct {
	Message       string // Human-readable description
	OffendingLine string // Grade file line remainder at the failure point, if any
}

// Error implements the error interface.
func (e *UserError) Error() string {
	return e.Message
}

// NewUserError returns a UserError with no line context.
func NewUserError(message string) *UserError {
	return &UserError{Message: message}
}

// NewUserErrorLine returns a UserError that carries the offending line.
func NewUserErrorLine(message, line string) *UserError {
	return &UserError{Message: message, OffendingLine: line}
}
