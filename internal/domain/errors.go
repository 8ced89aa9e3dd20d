package domain

import "errors"

// -----------------------------------------------------------------------------
// Domain Errors
// These errors are shared by the generator, solver, catalog and practice
// packages and are compared with errors.Is.
// -----------------------------------------------------------------------------

// Catalog errors
var (
	ErrAlgorithmNotFound   = errors.New("algorithm not found")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrMissingBinding      = errors.New("algorithm has no solver binding")
)

// Generation errors
var (
	ErrInvalidSize     = errors.New("invalid instance size")
	ErrUnknownStrategy = errors.New("unknown hash strategy")
)

// Solver errors
var (
	ErrInvalidExpression = errors.New("invalid expression")
	ErrInstanceMismatch  = errors.New("instance does not match algorithm")
)

// Practice errors
var (
	ErrNoProblem = errors.New("no active problem")
	ErrNoAnswer  = errors.New("no answer for this instance")
)
