package board

import "fmt"

// ErrNotFound is returned when a job or application is missing or hidden
// by its active flag.
var ErrNotFound = fmt.Errorf("job not found")

// ErrDuplicate is returned when a seeker applies twice to the same job.
// The first application stays untouched; this is rejection, not upsert.
var ErrDuplicate = fmt.Errorf("application already submitted")

// ValidationError wraps a user-facing validation message, optionally
// pinned to a single input field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// ForbiddenError carries the gate's denial reason to the transport layer.
type ForbiddenError struct {
	Reason DenyReason
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden: %s", e.Reason)
}
