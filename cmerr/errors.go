// Package cmerr defines the typed error taxonomy shared by the container
// and catalog packages.
package cmerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the failure, mirroring the taxonomy in the design
// document's error-handling table.
type Kind string

const (
	NameInUse         Kind = "NameInUse"
	Missing           Kind = "Missing"
	TypeMismatch      Kind = "TypeMismatch"
	TypeSizeMismatch  Kind = "TypeSizeMismatch"
	IoVersionMismatch Kind = "IoVersionMismatch"
	IoTruncated       Kind = "IoTruncated"
	Precondition      Kind = "PreconditionViolation"
)

// Error is returned by operations that can fail without aborting the
// process (allocation failures and preconditions remain fatal per spec).
type Error struct {
	Kind Kind
	Op   string
	Attr string
	Err  error
}

func (e *Error) Error() string {
	if e.Attr != "" {
		return fmt.Sprintf("%s: %s %q", e.Op, e.Kind, e.Attr)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error of the given kind for op, optionally naming the
// attribute involved.
func New(kind Kind, op, attr string) *Error {
	return &Error{Kind: kind, Op: op, Attr: attr}
}

// Wrap attaches op/kind context to a lower-level I/O error, preserving
// the cause chain via github.com/pkg/errors so callers can still recover
// the original error with errors.Cause.
func Wrap(kind Kind, op string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: errors.Wrap(err, op)}
}

// Is reports whether err (or any error in its chain) is a *Error of kind.
func Is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
