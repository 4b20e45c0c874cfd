package session

import (
	"errors"

	"github.com/dmitrijs2005/minired/internal/client/client"
)

var (
	// ErrInvalidSession marks a stored token the backend no longer accepts.
	ErrInvalidSession     = errors.New("invalid session")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrNotInitialized     = errors.New("session not initialized")
	ErrAlreadyInitialized = errors.New("session already initialized")
	ErrSuperseded         = errors.New("superseded by a newer session change")
)

const (
	msgLoginFailed         = "login failed"
	msgRegistrationFailed  = "registration failed"
	msgProfileUpdateFailed = "profile update failed"
)

// AuthenticationError is returned when login or registration is rejected or
// cannot reach the backend.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string { return e.Message }
func (e *AuthenticationError) Unwrap() error { return e.Err }

// ProfileUpdateError is returned when the backend refuses a profile update.
type ProfileUpdateError struct {
	Message string
	Err     error
}

func (e *ProfileUpdateError) Error() string { return e.Message }
func (e *ProfileUpdateError) Unwrap() error { return e.Err }

func messageOr(err error, fallback string) string {
	if m := client.ServerMessage(err); m != "" {
		return m
	}
	return fallback
}
