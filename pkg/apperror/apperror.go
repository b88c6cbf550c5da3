// Package apperror classifies failures of calls against the clinic API.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindNetwork         Kind = "network"
	KindValidation      Kind = "validation"
	KindUniqueViolation Kind = "unique_violation"
	KindNotFound        Kind = "not_found"
	KindUnauthenticated Kind = "unauthenticated"
	KindUnexpected      Kind = "unexpected"
)

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrNetwork         = &Error{Kind: KindNetwork}
	ErrValidation      = &Error{Kind: KindValidation}
	ErrUniqueViolation = &Error{Kind: KindUniqueViolation}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated}
	ErrUnexpected      = &Error{Kind: KindUnexpected}
)

// Issue is one field-scoped validation failure reported by the server.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Op      string
	Status  int
	Field   string
	Issues  []Issue
	Message string
	Err     error
}

func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " on %s", e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnexpected when there is none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// IsFieldScoped reports whether the failure belongs to individual form fields.
func IsFieldScoped(err error) bool {
	switch KindOf(err) {
	case KindValidation, KindUniqueViolation:
		return true
	}
	return false
}
