package services

import (
	"errors"

	"github.com/dmitrijs2005/minired/internal/common"
)

// Error is a failure whose Message may be shown to API clients. Kind is one of
// the common sentinels and is what callers match with errors.Is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

var (
	errMissingFields      = newError(common.ErrorValidation, "missing required fields")
	errMissingCredentials = newError(common.ErrorValidation, "missing credentials")
	errUsernameTaken      = newError(common.ErrorAlreadyExists, "username already exists")
	errEmailTaken         = newError(common.ErrorAlreadyExists, "email already registered")
	errInvalidCredentials = newError(common.ErrorUnauthorized, "invalid credentials")
	errUserNotFound       = newError(common.ErrorNotFound, "user not found")
	errContentRequired    = newError(common.ErrorValidation, "content is required")
	errCommentRequired    = newError(common.ErrorValidation, "comment content is required")
	errPostNotFound       = newError(common.ErrorNotFound, "post not found")
	errNotPostOwner       = newError(common.ErrorForbidden, "you are not allowed to change this post")
)

// Message returns the user facing text of err, or "" for internal failures.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
