package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/algodrill/internal/domain"
)

func solveWith(t *testing.T, id string, inst domain.Instance) domain.Answer {
	t.Helper()

	b, ok := bindings()[id]
	require.True(t, ok, "no binding for %s", id)
	ans, ok := b.solve(inst)
	require.True(t, ok, "%s rejected the instance", id)
	return ans
}

func bst(values ...int) *domain.TreeInstance {
	tree := &domain.TreeInstance{}
	for _, v := range values {
		tree.Insert(&domain.TreeNode{ID: domain.NewNodeID(uuid.New()), Value: v, Color: domain.ColorRed})
	}
	return tree
}

func graph(n int, edges ...domain.Edge) *domain.GraphInstance {
	g := &domain.GraphInstance{Edges: edges, Weighted: true}
	for i := 0; i < n; i++ {
		g.Nodes = append(g.Nodes, domain.GraphNode{ID: i, Label: domain.NodeLabel(i)})
	}
	return g
}

func TestBindings_RejectNil(t *testing.T) {
	for id, b := range bindings() {
		require.NotNil(t, b.solve, id)
		_, ok := b.solve(nil)
		assert.False(t, ok, id)
		if b.question != nil {
			assert.Empty(t, b.question(nil), id)
		}
	}
}

func TestBindings_Searching(t *testing.T) {
	arr := &domain.ArrayInstance{Values: []int{4, 9, 2}}

	ans := solveWith(t, "linear_search", arr)
	assert.Equal(t, "2", ans.Text)
	assert.Equal(t, []string{"A[0] = 4 != 2", "A[1] = 9 != 2", "A[2] = 2, found"}, ans.Trace)
	assert.Equal(t, "Index of 2?", linearSearchQuestion(arr))

	ans = solveWith(t, "binary_search", arr)
	assert.Equal(t, "1", ans.Text)
	assert.Equal(t, "Sorted: 2, 4, 9", ans.Trace[0])
	assert.Equal(t, "Index of 4 in the sorted array?", binarySearchQuestion(arr))
}

func TestBindings_Sorting(t *testing.T) {
	arr := &domain.ArrayInstance{Values: []int{2, 8, 7, 1, 3, 5, 6, 4}}

	tests := []struct {
		id   string
		want string
	}{
		{"merge_sort", "1, 2, 3, 4, 5, 6, 7, 8"},
		{"insertion_sort", "1, 2, 3, 4, 5, 6, 7, 8"},
		{"partition", "2, 1, 3, 4, 7, 5, 6, 8"},
		{"bubble_sort", "2, 7, 1, 3, 5, 6, 4, 8"},
		{"insertion_sort_step", "2, 8, 7, 1, 3, 5, 6, 4"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, solveWith(t, tt.id, arr).Text)
		})
	}

	ans := solveWith(t, "partition", arr)
	assert.Equal(t, []string{"Pivot = 4", "Pivot lands at index 3"}, ans.Trace)

	ans = solveWith(t, "insertion_sort", arr)
	assert.Len(t, ans.Trace, len(arr.Values)-1)
	assert.Equal(t, "j = 1: 2, 8, 7, 1, 3, 5, 6, 4", ans.Trace[0])
}

func TestBindings_Heapify(t *testing.T) {
	arr := &domain.ArrayInstance{Values: []int{3, 14, 9, 10, 7, 4, 8}}

	ans := solveWith(t, "max_heapify", arr)
	assert.Equal(t, "14, 10, 9, 3, 7, 4, 8", ans.Text)
	assert.Equal(t, []string{"Root after heapify: 14"}, ans.Trace)
}

func TestBindings_Graphs(t *testing.T) {
	g := graph(3,
		domain.Edge{Source: 0, Target: 1, Weight: 1},
		domain.Edge{Source: 1, Target: 2, Weight: 2},
		domain.Edge{Source: 0, Target: 2, Weight: 5},
	)

	ans := solveWith(t, "bfs", g)
	assert.Equal(t, "A, B, C", ans.Text)
	assert.Equal(t, []string{"A: B, C", "B: A, C", "C: A, B"}, ans.Trace)

	ans = solveWith(t, "dijkstra", g)
	assert.Equal(t, "3", ans.Text)
	assert.Equal(t, []string{"dist[A] = 0", "dist[B] = 1", "dist[C] = 3"}, ans.Trace)
	assert.Equal(t, "Shortest distance from A to C?", dijkstraQuestion(g))

	ans = solveWith(t, "kruskal", g)
	assert.Equal(t, "3", ans.Text)
	assert.Equal(t, []string{"take A-B (1)", "take B-C (2)", "total = 3"}, ans.Trace)
}

func TestBindings_DijkstraUnreachable(t *testing.T) {
	ans := solveWith(t, "dijkstra", graph(2))
	assert.Equal(t, AnswerInfinity, ans.Text)
	assert.Equal(t, "dist[B] = INF", ans.Trace[1])
}

func TestBindings_TreeTargets(t *testing.T) {
	tests := []struct {
		id     string
		target int
		want   string
	}{
		{"bst_successor", 40, "50"},
		{"bst_successor", 80, AnswerNone},
		{"bst_predecessor", 60, "50"},
		{"bst_predecessor", 20, AnswerNone},
		{"bst_parent", 40, "30"},
		{"bst_parent", 50, AnswerNone},
		{"bst_search", 60, "50, 70, 60"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			tree := bst(50, 30, 70, 20, 40, 60, 80)
			tree.SetTarget(tt.target)
			assert.Equal(t, tt.want, solveWith(t, tt.id, tree).Text)
		})
	}
}

func TestBindings_TreeQuestion(t *testing.T) {
	tree := bst(50, 30)
	q := treeQuestion("Successor of %d?")
	assert.Empty(t, q(tree))

	tree.SetTarget(30)
	assert.Equal(t, "Successor of 30?", q(tree))
}

func TestBindings_TreeTargetRequired(t *testing.T) {
	_, ok := bindings()["bst_successor"].solve(bst(50, 30))
	assert.False(t, ok)
}

func TestBindings_Orders(t *testing.T) {
	tree := bst(50, 30, 70, 20, 40)

	assert.Equal(t, "20, 30, 40, 50, 70", solveWith(t, "bst_inorder", tree).Text)
	assert.Equal(t, "50, 30, 20, 40, 70", solveWith(t, "bst_preorder", tree).Text)
	assert.Equal(t, "20, 40, 30, 70, 50", solveWith(t, "bst_postorder", tree).Text)
}

func TestBindings_Rotate(t *testing.T) {
	tree := bst(50, 30, 70, 60)

	ans := solveWith(t, "left_rotate", tree)
	assert.Equal(t, "70", ans.Text)
	assert.Equal(t, "Root becomes 70.", ans.Trace[0])
	assert.Equal(t, "Old root 50 becomes left child.", ans.Trace[1])
	assert.Equal(t, 50, tree.Root.Value, "rotation must not mutate the instance")

	ans = solveWith(t, "right_rotate", bst(50, 70))
	assert.Equal(t, "Cannot rotate (no left child)", ans.Text)

	ans = solveWith(t, "left_rotate", bst(50, 30))
	assert.Equal(t, "Cannot rotate (no right child)", ans.Text)
}

func TestBindings_Stack(t *testing.T) {
	st := &domain.StackTrace{Ops: []domain.StackOp{
		{Type: domain.StackPush, Value: 4},
		{Type: domain.StackPush, Value: 9},
		{Type: domain.StackPop},
	}}

	ans := solveWith(t, "stack_ops", st)
	assert.Equal(t, "4", ans.Text)
	assert.Equal(t, []string{"Push(4): [4]", "Push(9): [4, 9]", "Pop(): [4]"}, ans.Trace)
	assert.Equal(t, "Push(4), Push(9), Pop(). Top of the stack?", stackQuestion(st))

	st.Ops = st.Ops[:0]
	assert.Equal(t, AnswerEmpty, solveWith(t, "stack_ops", st).Text)
}

func TestBindings_Queue(t *testing.T) {
	q := &domain.QueueInstance{Values: []int{12, 34, 56}}
	assert.Equal(t, "34", solveWith(t, "queue_ops", q).Text)
	assert.Equal(t, "Queue (head first): 12, 34, 56. Dequeue(), new head?", queueQuestion(q))

	q.Values = []int{12}
	assert.Equal(t, AnswerEmpty, solveWith(t, "queue_ops", q).Text)
}

func TestBindings_Postfix(t *testing.T) {
	ans := solveWith(t, "postfix_eval", &domain.PostfixInstance{Expr: "3 4 + 2 *"})
	assert.Equal(t, "14", ans.Text)
	assert.Equal(t, "3 -> [3]", ans.Trace[0])
	assert.Equal(t, "* -> [14]", ans.Trace[len(ans.Trace)-1])

	ans = solveWith(t, "postfix_eval", &domain.PostfixInstance{Expr: "3 +"})
	assert.Equal(t, AnswerInvalidExpression, ans.Text)
}

func intp(v int) *int { return &v }

func TestBindings_Hash(t *testing.T) {
	h := &domain.HashInstance{
		Table:    []*int{nil, nil, nil, intp(10), nil, nil, nil},
		Key:      17,
		Strategy: domain.HashLinear,
	}

	ans := solveWith(t, "hash_linear", h)
	assert.Equal(t, "4", ans.Text)
	assert.Equal(t, []string{
		"Strategy: Linear",
		"Key: 17",
		"Table Size (m): 7",
		"Attempt 0: h(17, 0) = (17 + 0) % 7 = 3 [Occupied]",
		"Attempt 1: h(17, 1) = (17 + 1) % 7 = 4 [Empty -> Insert]",
	}, ans.Trace)
	assert.Equal(t, "Insert 17 using Linear probing. Landing index?", hashQuestion(h))
}

func TestBindings_HashOverflow(t *testing.T) {
	h := &domain.HashInstance{
		Table:    []*int{intp(3), intp(4), intp(5)},
		Key:      6,
		Strategy: domain.HashLinear,
	}

	ans := solveWith(t, "hash_linear", h)
	assert.Equal(t, AnswerOverflow, ans.Text)
	assert.Len(t, ans.Trace, 3+3)
}

func TestBindings_Static(t *testing.T) {
	assert.Equal(t, "Theta(sqrt(n) log n)", solveWith(t, "recurrence_a", &domain.StaticInstance{}).Text)

	c := &domain.ComplexityCase{Subject: "Merge Sort", Answer: "O(n log n)"}
	assert.Equal(t, "O(n log n)", solveWith(t, "complexity_quiz", c).Text)
	assert.Equal(t, "Running time of Merge Sort?", complexityQuestion(c))
}
