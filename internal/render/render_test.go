package render

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/algodrill/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestPlain_Graph(t *testing.T) {
	g := &domain.GraphInstance{
		Nodes:    []domain.GraphNode{{ID: 0, Label: "A"}, {ID: 1, Label: "B"}, {ID: 2, Label: "C"}},
		Edges:    []domain.Edge{{Source: 0, Target: 1, Weight: 4}, {Source: 1, Target: 2, Weight: 2}},
		Weighted: true,
	}

	want := "Nodes: A B C\n" +
		"Edges: (undirected, weighted)\n" +
		"  A - B (4)\n" +
		"  B - C (2)"
	if got := Plain(g); got != want {
		t.Errorf("Plain(graph) =\n%s\nwant\n%s", got, want)
	}

	g.Directed, g.Weighted = true, false
	got := Plain(g)
	assert.Contains(t, got, "(directed)")
	assert.Contains(t, got, "A -> B")
	assert.NotContains(t, got, "(4)")
}

func TestPlain_Tree(t *testing.T) {
	tree := &domain.TreeInstance{}
	for _, v := range []int{50, 30, 70, 40} {
		tree.Insert(&domain.TreeNode{ID: domain.NewNodeID(uuid.New()), Value: v, Color: domain.ColorRed})
	}

	want := strings.Join([]string{
		"50",
		"├── L: 30",
		"│   ├── L: ·",
		"│   └── R: 40",
		"└── R: 70",
	}, "\n")
	if got := Plain(tree); got != want {
		t.Errorf("Plain(tree) =\n%s\nwant\n%s", got, want)
	}

	if got := Plain(&domain.TreeInstance{}); got != "(empty tree)" {
		t.Errorf("Plain(empty tree) = %q; want %q", got, "(empty tree)")
	}
}

func TestPlain_Array(t *testing.T) {
	got := Plain(&domain.ArrayInstance{Values: []int{5, 12, 3}})
	want := "index: 0   1  2\nvalue: 5  12  3"
	if got != want {
		t.Errorf("Plain(array) =\n%s\nwant\n%s", got, want)
	}
}

func TestPlain_Linear(t *testing.T) {
	tests := []struct {
		name string
		inst domain.Instance
		want string
	}{
		{
			name: "stack",
			inst: &domain.StackTrace{Ops: []domain.StackOp{
				{Type: domain.StackPush, Value: 4},
				{Type: domain.StackPush, Value: 9},
				{Type: domain.StackPop},
			}},
			want: "Operations: Push(4), Push(9), Pop()",
		},
		{
			name: "queue",
			inst: &domain.QueueInstance{Values: []int{3, 5, 8}},
			want: "head -> [3 | 5 | 8] <- tail",
		},
		{
			name: "postfix",
			inst: &domain.PostfixInstance{Expr: "3 4 + 2 *"},
			want: "Expression: 3 4 + 2 *",
		},
		{
			name: "complexity",
			inst: &domain.ComplexityCase{Subject: "Merge Sort", Answer: "Theta(n log n)"},
			want: "Algorithm: Merge Sort",
		},
		{
			name: "static",
			inst: &domain.StaticInstance{},
			want: "",
		},
		{
			name: "nil",
			inst: nil,
			want: "",
		},
		{
			name: "typed nil",
			inst: (*domain.QueueInstance)(nil),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Plain(tt.inst); got != tt.want {
				t.Errorf("Plain() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestPlain_Hash(t *testing.T) {
	h := &domain.HashInstance{
		Table:    []*int{intPtr(14), nil, nil, intPtr(3)},
		Key:      17,
		Strategy: domain.HashQuadratic,
	}

	want := strings.Join([]string{
		"Strategy: Quadratic  Key: 17  m = 4",
		"[0] 14",
		"[1] -",
		"[2] -",
		"[3] 3",
	}, "\n")
	if got := Plain(h); got != want {
		t.Errorf("Plain(hash) =\n%s\nwant\n%s", got, want)
	}
}

func TestColorTheme_KeepsText(t *testing.T) {
	r := New(ColorTheme())
	got := r.Instance(&domain.QueueInstance{Values: []int{1, 2}})
	assert.Contains(t, got, "1 | 2")
}
