package domain

// ValidationResult is either accepted or rejected with a user-facing reason.
type ValidationResult struct {
	Reason string
}

// Accepted is the zero result.
var Accepted = ValidationResult{}

// Rejected builds a rejection carrying reason.
func Rejected(reason string) ValidationResult {
	return ValidationResult{Reason: reason}
}

// OK reports whether the input was accepted.
func (r ValidationResult) OK() bool {
	return r.Reason == ""
}

// Err returns nil for accepted results and a *RejectedError otherwise.
func (r ValidationResult) Err() error {
	if r.OK() {
		return nil
	}
	return &RejectedError{Reason: r.Reason}
}

// RejectedError surfaces a rejection through error-returning APIs.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return e.Reason
}
