package domain

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func node(v int) *TreeNode {
	return &TreeNode{ID: NewNodeID(uuid.New()), Value: v, Color: ColorRed}
}

func TestTreeInstance_Insert(t *testing.T) {
	tree := &TreeInstance{}
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		if !tree.Insert(node(v)) {
			t.Fatalf("Insert(%d) = false, want true", v)
		}
	}

	if tree.Insert(node(40)) {
		t.Error("Insert(40) duplicate = true, want false")
	}

	wantValues := []int{50, 30, 70, 20, 40, 60, 80}
	if !reflect.DeepEqual(tree.Values, wantValues) {
		t.Errorf("Values = %v, want %v", tree.Values, wantValues)
	}
	if tree.Size() != 7 {
		t.Errorf("Size() = %d, want 7", tree.Size())
	}
	if tree.Height() != 3 {
		t.Errorf("Height() = %d, want 3", tree.Height())
	}
	if tree.Root.Left.Right.Value != 40 {
		t.Errorf("Root.Left.Right = %d, want 40", tree.Root.Left.Right.Value)
	}
}

func TestTreeInstance_ParentOf(t *testing.T) {
	tree := &TreeInstance{}
	for _, v := range []int{50, 30, 70, 40} {
		tree.Insert(node(v))
	}

	tests := []struct {
		value      int
		wantParent int
		wantNil    bool
	}{
		{50, 0, true},
		{30, 50, false},
		{70, 50, false},
		{40, 30, false},
	}

	for _, tt := range tests {
		n := tree.Find(tt.value)
		if n == nil {
			t.Fatalf("Find(%d) = nil", tt.value)
		}
		p := tree.ParentOf(n)
		if tt.wantNil {
			if p != nil {
				t.Errorf("ParentOf(%d) = %d, want nil", tt.value, p.Value)
			}
			continue
		}
		if p == nil || p.Value != tt.wantParent {
			t.Errorf("ParentOf(%d) = %v, want %d", tt.value, p, tt.wantParent)
		}
	}

	if tree.Find(99) != nil {
		t.Error("Find(99) should be nil")
	}
	if tree.ParentOf(nil) != nil {
		t.Error("ParentOf(nil) should be nil")
	}
}

func TestTreeInstance_Target(t *testing.T) {
	tree := &TreeInstance{}
	if _, ok := tree.TargetValue(); ok {
		t.Error("TargetValue() ok = true on fresh tree")
	}
	tree.SetTarget(42)
	if v, ok := tree.TargetValue(); !ok || v != 42 {
		t.Errorf("TargetValue() = %d, %v; want 42, true", v, ok)
	}
}

func TestGraphInstance_HasEdge(t *testing.T) {
	g := &GraphInstance{Edges: []Edge{{Source: 0, Target: 1, Weight: 1}}}
	if !g.HasEdge(1, 0) {
		t.Error("undirected HasEdge(1, 0) = false, want true")
	}
	g.Directed = true
	if g.HasEdge(1, 0) {
		t.Error("directed HasEdge(1, 0) = true, want false")
	}
	if !g.HasEdge(0, 1) {
		t.Error("directed HasEdge(0, 1) = false, want true")
	}
}

func TestNodeLabel(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{0, "A"},
		{4, "E"},
		{25, "Z"},
		{26, "?"},
		{-1, "?"},
	}
	for _, tt := range tests {
		if got := NodeLabel(tt.id); got != tt.want {
			t.Errorf("NodeLabel(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
