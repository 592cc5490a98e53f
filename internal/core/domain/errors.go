package domain

import "errors"

var (
	ErrMissingLoginFields = errors.New("username, password, and bikeId are required")
	ErrInvalidCredentials = errors.New("username or password is incorrect")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrSessionNotFound    = errors.New("no active login session found")
	ErrSessionAlreadyOpen = errors.New("an active login session already exists")
	ErrNoProduction       = errors.New("no logged duration found for the specified period")
	ErrInvalidDate        = errors.New("invalid date")
)

// PersistenceError wraps a data-store failure. Message is safe to return to
// clients; Err carries the underlying cause for server-side logs only.
type PersistenceError struct {
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NewPersistenceError wraps err with a client-facing message.
func NewPersistenceError(message string, err error) *PersistenceError {
	return &PersistenceError{Message: message, Err: err}
}
