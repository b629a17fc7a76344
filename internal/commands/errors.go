package commands

import "errors"

// UserError is a message for the player rather than a failure: bad usage,
// an unmet precondition, or an unknown word. Play continues after one.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}

// AsUserError returns the player-facing message carried by err, if any.
func AsUserError(err error) (string, bool) {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Message, true
	}
	return "", false
}
