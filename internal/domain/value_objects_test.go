package domain

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNodeID(t *testing.T) {
	t.Run("GenerateNodeID is reproducible for the same reader bytes", func(t *testing.T) {
		seed := bytes.Repeat([]byte{0x42}, 32)
		a := GenerateNodeID(bytes.NewReader(seed))
		b := GenerateNodeID(bytes.NewReader(seed))
		if a != b {
			t.Errorf("GenerateNodeID() = %v and %v, want equal", a, b)
		}
		if a.IsZero() {
			t.Error("GenerateNodeID() should not return zero value")
		}
	})

	t.Run("GenerateNodeID falls back on short reader", func(t *testing.T) {
		id := GenerateNodeID(bytes.NewReader(nil))
		if id.IsZero() {
			t.Error("GenerateNodeID() should not return zero value on short reader")
		}
	})

	t.Run("IsZero", func(t *testing.T) {
		if !NewNodeID(uuid.Nil).IsZero() {
			t.Error("IsZero() should return true for nil UUID")
		}
	})
}

func TestSessionID(t *testing.T) {
	t.Run("NewSessionIDFromString valid", func(t *testing.T) {
		id := uuid.New()
		sessionID, err := NewSessionIDFromString(id.String())
		if err != nil {
			t.Fatalf("NewSessionIDFromString() error = %v", err)
		}
		if sessionID.UUID() != id {
			t.Errorf("UUID() = %v, want %v", sessionID.UUID(), id)
		}
	})

	t.Run("NewSessionIDFromString invalid", func(t *testing.T) {
		if _, err := NewSessionIDFromString("invalid"); err == nil {
			t.Error("NewSessionIDFromString() should error on invalid UUID")
		}
	})

	t.Run("Equal", func(t *testing.T) {
		id1 := GenerateSessionID()
		id2 := NewSessionID(id1.UUID())
		if !id1.Equal(id2) {
			t.Error("Equal() should return true for same UUID")
		}
		if id1.Equal(GenerateSessionID()) {
			t.Error("Equal() should return false for different UUIDs")
		}
	})
}

func TestAlgorithmID(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"bfs", false},
		{"bst_successor", false},
		{"recurrence_a", false},
		{"", true},
		{"BFS", true},
		{"bst-successor", true},
		{"1bfs", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, err := NewAlgorithmID(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Errorf("NewAlgorithmID(%q) error = %v, want ErrInvalidID", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAlgorithmID(%q) error = %v", tt.input, err)
			}
			if id.String() != tt.input {
				t.Errorf("String() = %q, want %q", id.String(), tt.input)
			}
		})
	}
}
