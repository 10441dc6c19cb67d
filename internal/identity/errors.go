package identity

import "fmt"

// ErrNotFound is returned when an identity or profile is missing.
var ErrNotFound = fmt.Errorf("identity not found")

// ErrBadCredentials is returned when login fails. The message is
// deliberately the same for unknown usernames and wrong passwords.
var ErrBadCredentials = fmt.Errorf("invalid username or password")

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
