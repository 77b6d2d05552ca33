package services

import (
	"errors"
	"fmt"

	"github.com/rdSoftInc/DevConnect/internal/repository"
)

// ErrorKind classifies service failures for the transport layer.
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindUpstream
)

// FieldError one invalid input field.
type FieldError struct {
	Field string `json:"field,omitempty"`
	Msg   string `json:"msg"`
}

// Error service error with a kind and a user-facing message.
type Error struct {
	Kind   ErrorKind
	Msg    string
	Fields []FieldError
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches errors of the same kind and message, so wrapped copies of the
// package errors still satisfy errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == e.Msg
}

var (
	ErrUserExists         = &Error{Kind: KindConflict, Msg: "User already exists"}
	ErrInvalidCredentials = &Error{Kind: KindValidation, Msg: "Invalid credentials"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Msg: "User not found"}
	ErrProfileNotFound    = &Error{Kind: KindNotFound, Msg: "There is no profile for this user"}
	ErrExperienceNotFound = &Error{Kind: KindNotFound, Msg: "Experience not found"}
	ErrEducationNotFound  = &Error{Kind: KindNotFound, Msg: "Education not found"}
	ErrPostNotFound       = &Error{Kind: KindNotFound, Msg: "Post not found"}
	ErrCommentNotFound    = &Error{Kind: KindNotFound, Msg: "Comment does not exist"}
	ErrNotAuthorized      = &Error{Kind: KindForbidden, Msg: "User not authorized"}
	ErrAlreadyLiked       = &Error{Kind: KindConflict, Msg: "Post already liked"}
	ErrNotLiked           = &Error{Kind: KindConflict, Msg: "Post has not yet been liked"}
	ErrGithubNotFound     = &Error{Kind: KindUpstream, Msg: "No Github profile found"}
	ErrNoToken            = &Error{Kind: KindUnauthenticated, Msg: "No token, authorization denied"}
	ErrTokenInvalid       = &Error{Kind: KindUnauthenticated, Msg: "Token is not valid"}
)

// NewValidationError reports every invalid field at once.
func NewValidationError(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Msg: "Invalid input", Fields: fields}
}

// KindOf returns the kind of err, KindUnexpected for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// lookupError maps a repository lookup failure onto notFound, keeping the
// cause so callers can tell a malformed id from a missing record.
func lookupError(err error, notFound *Error) error {
	switch {
	case errors.Is(err, repository.ErrInvalidID), errors.Is(err, repository.ErrNotFound):
		return &Error{Kind: notFound.Kind, Msg: notFound.Msg, Err: err}
	default:
		return err
	}
}
