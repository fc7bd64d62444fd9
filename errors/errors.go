// Package errors provides error handling for tspoet.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for CLI users
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidSpec) {
//	    // handle invalid spec
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// Common sentinel errors for use across tspoet.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidSpec indicates a declaration was assembled in a way that
	// violates a model invariant (superclass set twice, constructor-marked
	// declaration added through the generic member path, and so on)
	ErrInvalidSpec = New("invalid spec")

	// ErrInvalidManifest indicates a class manifest could not be loaded or
	// does not describe a buildable set of declarations
	ErrInvalidManifest = New("invalid manifest")
)

// IsInvalidSpecError checks if an error is or wraps ErrInvalidSpec
func IsInvalidSpecError(err error) bool {
	return err != nil && Is(err, ErrInvalidSpec)
}

// NewInvalidSpecError creates an invalid-spec error with a formatted message
func NewInvalidSpecError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidSpec, Newf(format, args...).Error())
}

// IsInvalidManifestError checks if an error is or wraps ErrInvalidManifest
func IsInvalidManifestError(err error) bool {
	return err != nil && Is(err, ErrInvalidManifest)
}

// NewInvalidManifestError creates an invalid-manifest error with a formatted message
func NewInvalidManifestError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidManifest, Newf(format, args...).Error())
}
