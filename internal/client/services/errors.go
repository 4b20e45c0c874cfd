package services

import (
	"errors"

	"github.com/dmitrijs2005/minired/internal/client/client"
)

var (
	ErrEmptyContent = errors.New("content must not be empty")
	ErrInvalidID    = errors.New("id must be positive")
)

// ActionError carries a user facing message (the server's "error" text or a
// fallback) and the underlying cause.
type ActionError struct {
	Message string
	Err     error
}

func (e *ActionError) Error() string { return e.Message }
func (e *ActionError) Unwrap() error { return e.Err }

func actionError(err error, fallback string) error {
	msg := client.ServerMessage(err)
	if msg == "" {
		msg = fallback
	}
	return &ActionError{Message: msg, Err: err}
}
