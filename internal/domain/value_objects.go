package domain

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/google/uuid"
)

// ErrInvalidID indicates an invalid identifier format
var ErrInvalidID = errors.New("invalid identifier format")

// -----------------------------------------------------------------------------
// NodeID - Opaque identity token for tree nodes
// -----------------------------------------------------------------------------

// NodeID identifies a tree node independently of its value
type NodeID struct {
	value uuid.UUID
}

// NewNodeID creates a NodeID from a UUID
func NewNodeID(id uuid.UUID) NodeID {
	return NodeID{value: id}
}

// GenerateNodeID draws a NodeID from r, so seeded readers yield reproducible trees
func GenerateNodeID(r io.Reader) NodeID {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return NodeID{value: uuid.New()}
	}
	return NodeID{value: id}
}

// String returns the string representation
func (id NodeID) String() string {
	return id.value.String()
}

// IsZero returns true if this is a zero value
func (id NodeID) IsZero() bool {
	return id.value == uuid.Nil
}

// -----------------------------------------------------------------------------
// SessionID - Typed identifier for practice sessions
// -----------------------------------------------------------------------------

// SessionID is a typed identifier for practice sessions
type SessionID struct {
	value uuid.UUID
}

// NewSessionID creates a new SessionID from a UUID
func NewSessionID(id uuid.UUID) SessionID {
	return SessionID{value: id}
}

// NewSessionIDFromString creates a SessionID from a string
func NewSessionIDFromString(s string) (SessionID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return SessionID{}, fmt.Errorf("invalid session ID: %w", err)
	}
	return SessionID{value: id}, nil
}

// GenerateSessionID creates a new random SessionID
func GenerateSessionID() SessionID {
	return SessionID{value: uuid.New()}
}

// UUID returns the underlying uuid.UUID
func (id SessionID) UUID() uuid.UUID {
	return id.value
}

// String returns the string representation
func (id SessionID) String() string {
	return id.value.String()
}

// IsZero returns true if this is a zero value
func (id SessionID) IsZero() bool {
	return id.value == uuid.Nil
}

// Equal compares two SessionIDs
func (id SessionID) Equal(other SessionID) bool {
	return id.value == other.value
}

// -----------------------------------------------------------------------------
// AlgorithmID - Value object for catalog identifiers
// -----------------------------------------------------------------------------

var algorithmIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// AlgorithmID is a catalog slug such as "bst_successor"
type AlgorithmID struct {
	value string
}

// NewAlgorithmID validates and wraps a catalog slug
func NewAlgorithmID(s string) (AlgorithmID, error) {
	if s == "" {
		return AlgorithmID{}, fmt.Errorf("%w: algorithm ID cannot be empty", ErrInvalidID)
	}
	if !algorithmIDPattern.MatchString(s) {
		return AlgorithmID{}, fmt.Errorf("%w: algorithm ID must be lower snake case", ErrInvalidID)
	}
	return AlgorithmID{value: s}, nil
}

// String returns the string representation
func (id AlgorithmID) String() string {
	return id.value
}

// IsZero returns true if this is a zero value
func (id AlgorithmID) IsZero() bool {
	return id.value == ""
}
