package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/algodrill/internal/domain"
	"github.com/felixgeelhaar/algodrill/internal/generator"
	"github.com/felixgeelhaar/algodrill/internal/solver"
)

// Soft answers for results that do not exist
const (
	AnswerLoading           = "Loading..."
	AnswerNone              = "None"
	AnswerInfinity          = "INF"
	AnswerEmpty             = "Empty"
	AnswerOverflow          = "Overflow"
	AnswerInvalidExpression = "Invalid expression"
)

// solveFunc computes the canonical answer. It reports false when inst is
// nil or of the wrong kind.
type solveFunc func(inst domain.Instance) (domain.Answer, bool)

type binding struct {
	category domain.Category
	shape    func(*Shape)
	question func(domain.Instance) string
	solve    solveFunc
}

// bindings returns the solver binding of every algorithm, keyed by id. Each
// binding carries the category its solver expects.
func bindings() map[string]binding {
	groups := map[domain.Category]map[string]binding{
		domain.CategorySearching: {
			"linear_search": {question: linearSearchQuestion, solve: solveLinearSearch},
			"binary_search": {question: binarySearchQuestion, solve: solveBinarySearch},
		},
		domain.CategorySorting: {
			"insertion_sort":        {solve: solveSorted(insertionTrace)},
			"selection_sort":        {solve: solveSorted(selectionTrace)},
			"merge_sort":            {solve: solveSorted(nil)},
			"quick_sort":            {solve: solveSorted(nil)},
			"randomized_quick_sort": {solve: solveSorted(nil)},
			"insertion_sort_step":   {solve: solveArray(solver.InsertionPass)},
			"bubble_sort":           {solve: solveArray(solver.BubblePass)},
			"partition":             {solve: solvePartition},
			"max_heapify":           {shape: heapShape, solve: solveHeapify},
		},
		domain.CategoryGraphs: {
			"bfs":      {shape: unweighted(false), solve: solveTraversal(solver.BFS)},
			"dfs":      {shape: unweighted(true), solve: solveTraversal(solver.DFS)},
			"dijkstra": {question: dijkstraQuestion, solve: solveDijkstra},
			"kruskal":  {solve: solveKruskal},
		},
		domain.CategoryTrees: {
			"bst_inorder":      {solve: solveOrder(solver.InOrder)},
			"bst_preorder":     {solve: solveOrder(solver.PreOrder)},
			"bst_postorder":    {solve: solveOrder(solver.PostOrder)},
			"bst_search":       {question: treeQuestion("Keys compared while searching for %d?"), solve: solveSearchPath},
			"bst_successor":    {shape: target(generator.TargetNotMax), question: treeQuestion("Successor of %d?"), solve: solveNeighbor(solver.Successor)},
			"bst_predecessor":  {shape: target(generator.TargetNotMin), question: treeQuestion("Predecessor of %d?"), solve: solveNeighbor(solver.Predecessor)},
			"bst_parent":       {shape: target(generator.TargetNotRoot), question: treeQuestion("Parent of %d?"), solve: solveParent},
			"left_rotate":      {solve: solveRotate(solver.RotateLeft, "left", "right")},
			"right_rotate":     {solve: solveRotate(solver.RotateRight, "right", "left")},
			"rbt_black_height": {shape: skeleton, solve: solveBlackHeight},
		},
		domain.CategoryLinear: {
			"stack_ops":    {question: stackQuestion, solve: solveStack},
			"queue_ops":    {shape: kind(domain.KindQueue), question: queueQuestion, solve: solveQueue},
			"postfix_eval": {shape: kind(domain.KindPostfix), question: postfixQuestion, solve: solvePostfix},
		},
		domain.CategoryHashing: {
			"hash_linear":    {shape: strategy(domain.HashLinear), question: hashQuestion, solve: solveHash},
			"hash_quadratic": {shape: strategy(domain.HashQuadratic), question: hashQuestion, solve: solveHash},
			"hash_double":    {shape: strategy(domain.HashDouble), question: hashQuestion, solve: solveHash},
		},
		domain.CategoryRecurrences: {
			"recurrence_a": {solve: solveStatic("Theta(sqrt(n) log n)")},
			"recurrence_c": {solve: solveStatic("Theta(n^2)")},
			"recurrence_j": {solve: solveStatic("Theta(n log n)")},
		},
		domain.CategoryComplexity: {
			"complexity_quiz": {question: complexityQuestion, solve: solveComplexity},
		},
	}

	out := make(map[string]binding)
	for c, group := range groups {
		for id, b := range group {
			b.category = c
			out[id] = b
		}
	}
	return out
}

// -----------------------------------------------------------------------------
// Shape adjustments
// -----------------------------------------------------------------------------

func kind(k domain.InstanceKind) func(*Shape) {
	return func(s *Shape) { s.Kind = k }
}

func unweighted(directed bool) func(*Shape) {
	return func(s *Shape) {
		s.Weighted = false
		s.Directed = directed
	}
}

func target(rule generator.TargetRule) func(*Shape) {
	return func(s *Shape) { s.Target = rule }
}

func strategy(st domain.HashStrategy) func(*Shape) {
	return func(s *Shape) { s.Strategy = st }
}

func heapShape(s *Shape) { s.Heap = true }

func skeleton(s *Shape) { s.Skeleton = true }

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

func asArray(inst domain.Instance) (*domain.ArrayInstance, bool) {
	a, ok := inst.(*domain.ArrayInstance)
	if !ok || a == nil || len(a.Values) == 0 {
		return nil, false
	}
	return a, true
}

func asGraph(inst domain.Instance) (*domain.GraphInstance, bool) {
	g, ok := inst.(*domain.GraphInstance)
	if !ok || g == nil || len(g.Nodes) == 0 {
		return nil, false
	}
	return g, true
}

func asTree(inst domain.Instance) (*domain.TreeInstance, bool) {
	t, ok := inst.(*domain.TreeInstance)
	if !ok || t == nil || t.Root == nil {
		return nil, false
	}
	return t, true
}

// -----------------------------------------------------------------------------
// Searching
// -----------------------------------------------------------------------------

func linearSearchQuestion(inst domain.Instance) string {
	a, ok := asArray(inst)
	if !ok {
		return ""
	}
	return fmt.Sprintf("Index of %d?", a.Values[len(a.Values)-1])
}

func solveLinearSearch(inst domain.Instance) (domain.Answer, bool) {
	a, ok := asArray(inst)
	if !ok {
		return domain.Answer{}, false
	}
	want := a.Values[len(a.Values)-1]
	idx := solver.LinearSearch(a.Values, want)

	var trace []string
	for i := 0; i <= idx; i++ {
		if i == idx {
			trace = append(trace, fmt.Sprintf("A[%d] = %d, found", i, a.Values[i]))
			break
		}
		trace = append(trace, fmt.Sprintf("A[%d] = %d != %d", i, a.Values[i], want))
	}
	return domain.Answer{Text: strconv.Itoa(idx), Trace: trace}, true
}

func binarySearchQuestion(inst domain.Instance) string {
	a, ok := asArray(inst)
	if !ok {
		return ""
	}
	sorted := solver.Sorted(a.Values)
	return fmt.Sprintf("Index of %d in the sorted array?", sorted[len(sorted)/2])
}

func solveBinarySearch(inst domain.Instance) (domain.Answer, bool) {
	a, ok := asArray(inst)
	if !ok {
		return domain.Answer{}, false
	}
	sorted := solver.Sorted(a.Values)
	want := sorted[len(sorted)/2]
	mids, idx := solver.BinarySearchPath(sorted, want)

	trace := []string{"Sorted: " + joinInts(sorted)}
	for _, m := range mids {
		trace = append(trace, fmt.Sprintf("mid = %d, A[mid] = %d", m, sorted[m]))
	}
	return domain.Answer{Text: strconv.Itoa(idx), Trace: trace}, true
}

// -----------------------------------------------------------------------------
// Sorting
// -----------------------------------------------------------------------------

func solveSorted(traceFn func([]int) []string) solveFunc {
	return func(inst domain.Instance) (domain.Answer, bool) {
		a, ok := asArray(inst)
		if !ok {
			return domain.Answer{}, false
		}
		ans := domain.Answer{Text: joinInts(solver.Sorted(a.Values))}
		if traceFn != nil {
			ans.Trace = traceFn(a.Values)
		}
		return ans, true
	}
}

func insertionTrace(values []int) []string {
	var trace []string
	for i, step := range solver.InsertionSortSteps(values) {
		trace = append(trace, fmt.Sprintf("j = %d: %s", i+1, joinInts(step)))
	}
	return trace
}

func selectionTrace(values []int) []string {
	var trace []string
	for i, step := range solver.SelectionSortSteps(values) {
		trace = append(trace, fmt.Sprintf("i = %d: %s", i, joinInts(step)))
	}
	return trace
}

func solveArray(fn func([]int) []int) solveFunc {
	return func(inst domain.Instance) (domain.Answer, bool) {
		a, ok := asArray(inst)
		if !ok {
			return domain.Answer{}, false
		}
		return domain.Answer{Text: joinInts(fn(a.Values))}, true
	}
}

func solvePartition(inst domain.Instance) (domain.Answer, bool) {
	a, ok := asArray(inst)
	if !ok {
		return domain.Answer{}, false
	}
	out, q := solver.Partition(a.Values)
	return domain.Answer{
		Text: joinInts(out),
		Trace: []string{
			fmt.Sprintf("Pivot = %d", a.Values[len(a.Values)-1]),
			fmt.Sprintf("Pivot lands at index %d", q),
		},
	}, true
}

func solveHeapify(inst domain.Instance) (domain.Answer, bool) {
	a, ok := asArray(inst)
	if !ok {
		return domain.Answer{}, false
	}
	out := solver.MaxHeapify(a.Values, 0)
	return domain.Answer{
		Text:  joinInts(out),
		Trace: []string{fmt.Sprintf("Root after heapify: %d", out[0])},
	}, true
}

// -----------------------------------------------------------------------------
// Graphs
// -----------------------------------------------------------------------------

func adjacencyTrace(g *domain.GraphInstance) []string {
	adj := solver.Adjacency(g)
	trace := make([]string, len(adj))
	for u, vs := range adj {
		labels := make([]string, len(vs))
		for i, v := range vs {
			labels[i] = g.Label(v)
		}
		trace[u] = fmt.Sprintf("%s: %s", g.Label(u), strings.Join(labels, ", "))
	}
	return trace
}

func solveTraversal(fn func(*domain.GraphInstance) []string) solveFunc {
	return func(inst domain.Instance) (domain.Answer, bool) {
		g, ok := asGraph(inst)
		if !ok {
			return domain.Answer{}, false
		}
		return domain.Answer{
			Text:  strings.Join(fn(g), ", "),
			Trace: adjacencyTrace(g),
		}, true
	}
}

func dijkstraQuestion(inst domain.Instance) string {
	g, ok := asGraph(inst)
	if !ok {
		return ""
	}
	return fmt.Sprintf("Shortest distance from A to %s?", g.Label(len(g.Nodes)-1))
}

func solveDijkstra(inst domain.Instance) (domain.Answer, bool) {
	g, ok := asGraph(inst)
	if !ok {
		return domain.Answer{}, false
	}
	dist := solver.Distances(g)
	trace := make([]string, len(dist))
	for i, d := range dist {
		v := AnswerInfinity
		if d != solver.Unreachable {
			v = strconv.Itoa(d)
		}
		trace[i] = fmt.Sprintf("dist[%s] = %s", g.Label(i), v)
	}

	text := AnswerInfinity
	if d, ok := solver.Dijkstra(g, len(g.Nodes)-1); ok {
		text = strconv.Itoa(d)
	}
	return domain.Answer{Text: text, Trace: trace}, true
}

func solveKruskal(inst domain.Instance) (domain.Answer, bool) {
	g, ok := asGraph(inst)
	if !ok {
		return domain.Answer{}, false
	}
	mst, total := solver.Kruskal(g)
	trace := make([]string, 0, len(mst)+1)
	for _, e := range mst {
		trace = append(trace, fmt.Sprintf("take %s-%s (%d)", g.Label(e.Source), g.Label(e.Target), e.Weight))
	}
	trace = append(trace, fmt.Sprintf("total = %d", total))
	return domain.Answer{Text: strconv.Itoa(total), Trace: trace}, true
}

// -----------------------------------------------------------------------------
// Trees
// -----------------------------------------------------------------------------

func treeQuestion(format string) func(domain.Instance) string {
	return func(inst domain.Instance) string {
		t, ok := asTree(inst)
		if !ok {
			return ""
		}
		v, ok := t.TargetValue()
		if !ok {
			return ""
		}
		return fmt.Sprintf(format, v)
	}
}

func solveOrder(fn func(*domain.TreeNode) []int) solveFunc {
	return func(inst domain.Instance) (domain.Answer, bool) {
		t, ok := asTree(inst)
		if !ok {
			return domain.Answer{}, false
		}
		return domain.Answer{Text: joinInts(fn(t.Root))}, true
	}
}

func solveSearchPath(inst domain.Instance) (domain.Answer, bool) {
	t, ok := asTree(inst)
	if !ok {
		return domain.Answer{}, false
	}
	v, ok := t.TargetValue()
	if !ok {
		return domain.Answer{}, false
	}
	path, found := solver.SearchPath(t.Root, v)
	status := "found"
	if !found {
		status = "not found"
	}
	return domain.Answer{
		Text:  joinInts(path),
		Trace: []string{fmt.Sprintf("%d %s after %d comparisons", v, status, len(path))},
	}, true
}

func solveNeighbor(fn func(*domain.TreeNode, int) (int, bool)) solveFunc {
	return func(inst domain.Instance) (domain.Answer, bool) {
		t, ok := asTree(inst)
		if !ok {
			return domain.Answer{}, false
		}
		v, ok := t.TargetValue()
		if !ok {
			return domain.Answer{}, false
		}
		ans := domain.Answer{
			Text:  AnswerNone,
			Trace: []string{"In-order: " + joinInts(solver.InOrder(t.Root))},
		}
		if n, ok := fn(t.Root, v); ok {
			ans.Text = strconv.Itoa(n)
		}
		return ans, true
	}
}

func solveParent(inst domain.Instance) (domain.Answer, bool) {
	t, ok := asTree(inst)
	if !ok {
		return domain.Answer{}, false
	}
	v, ok := t.TargetValue()
	if !ok {
		return domain.Answer{}, false
	}
	path, _ := solver.SearchPath(t.Root, v)
	ans := domain.Answer{
		Text:  AnswerNone,
		Trace: []string{"Search path: " + joinInts(path)},
	}
	if p, ok := solver.Parent(t.Root, v); ok {
		ans.Text = strconv.Itoa(p)
	}
	return ans, true
}

func solveRotate(fn func(*domain.TreeNode) (*domain.TreeNode, bool), side, needs string) solveFunc {
	return func(inst domain.Instance) (domain.Answer, bool) {
		t, ok := asTree(inst)
		if !ok {
			return domain.Answer{}, false
		}
		rotated, ok := fn(t.Root)
		if !ok {
			return domain.Answer{Text: fmt.Sprintf("Cannot rotate (no %s child)", needs)}, true
		}
		return domain.Answer{
			Text: strconv.Itoa(rotated.Value),
			Trace: []string{
				fmt.Sprintf("Root becomes %d.", rotated.Value),
				fmt.Sprintf("Old root %d becomes %s child.", t.Root.Value, side),
				"Pre-order after rotation: " + joinInts(solver.PreOrder(rotated)),
			},
		}, true
	}
}

func solveBlackHeight(inst domain.Instance) (domain.Answer, bool) {
	t, ok := asTree(inst)
	if !ok {
		return domain.Answer{}, false
	}
	var path []string
	for n := t.Root; n != nil; n = n.Left {
		path = append(path, fmt.Sprintf("%d (%s)", n.Value, n.Color))
	}
	return domain.Answer{
		Text:  strconv.Itoa(solver.BlackHeight(t.Root)),
		Trace: []string{"Leftmost path: " + strings.Join(path, ", ")},
	}, true
}

// -----------------------------------------------------------------------------
// Linear structures
// -----------------------------------------------------------------------------

func describeOps(ops []domain.StackOp) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		if op.Type == domain.StackPush {
			parts[i] = fmt.Sprintf("Push(%d)", op.Value)
		} else {
			parts[i] = "Pop()"
		}
	}
	return strings.Join(parts, ", ")
}

func stackQuestion(inst domain.Instance) string {
	st, ok := inst.(*domain.StackTrace)
	if !ok || st == nil {
		return ""
	}
	return describeOps(st.Ops) + ". Top of the stack?"
}

func solveStack(inst domain.Instance) (domain.Answer, bool) {
	st, ok := inst.(*domain.StackTrace)
	if !ok || st == nil {
		return domain.Answer{}, false
	}
	var trace []string
	for i := range st.Ops {
		stack, _ := solver.ReplayStack(st.Ops[:i+1])
		trace = append(trace, fmt.Sprintf("%s: [%s]", describeOps(st.Ops[i:i+1]), joinInts(stack)))
	}

	ans := domain.Answer{Text: AnswerEmpty, Trace: trace}
	if top, ok := solver.StackTop(st); ok {
		ans.Text = strconv.Itoa(top)
	}
	return ans, true
}

func queueQuestion(inst domain.Instance) string {
	q, ok := inst.(*domain.QueueInstance)
	if !ok || q == nil {
		return ""
	}
	return fmt.Sprintf("Queue (head first): %s. Dequeue(), new head?", joinInts(q.Values))
}

func solveQueue(inst domain.Instance) (domain.Answer, bool) {
	q, ok := inst.(*domain.QueueInstance)
	if !ok || q == nil {
		return domain.Answer{}, false
	}
	if head, ok := solver.QueueHeadAfterDequeue(q.Values); ok {
		return domain.Answer{Text: strconv.Itoa(head)}, true
	}
	return domain.Answer{Text: AnswerEmpty}, true
}

func postfixQuestion(inst domain.Instance) string {
	p, ok := inst.(*domain.PostfixInstance)
	if !ok || p == nil {
		return ""
	}
	return "Evaluate: " + p.Expr
}

func solvePostfix(inst domain.Instance) (domain.Answer, bool) {
	p, ok := inst.(*domain.PostfixInstance)
	if !ok || p == nil {
		return domain.Answer{}, false
	}
	v, steps, err := solver.EvalPostfixSteps(p.Expr)
	trace := make([]string, len(steps))
	for i, s := range steps {
		trace[i] = fmt.Sprintf("%s -> [%s]", s.Token, joinInts(s.Stack))
	}
	if err != nil {
		return domain.Answer{Text: AnswerInvalidExpression, Trace: trace}, true
	}
	return domain.Answer{Text: strconv.Itoa(v), Trace: trace}, true
}

// -----------------------------------------------------------------------------
// Hashing
// -----------------------------------------------------------------------------

func hashQuestion(inst domain.Instance) string {
	h, ok := inst.(*domain.HashInstance)
	if !ok || h == nil {
		return ""
	}
	return fmt.Sprintf("Insert %d using %s probing. Landing index?", h.Key, h.Strategy.Label())
}

func probeExpr(h *domain.HashInstance, i int) string {
	m := h.Size()
	switch h.Strategy {
	case domain.HashQuadratic:
		return fmt.Sprintf("(%d + %d^2) %% %d", h.Key, i, m)
	case domain.HashDouble:
		return fmt.Sprintf("(%d + %d*%d) %% %d", h.Key, i, solver.SecondHash(h.Key, m), m)
	}
	return fmt.Sprintf("(%d + %d) %% %d", h.Key, i, m)
}

func solveHash(inst domain.Instance) (domain.Answer, bool) {
	h, ok := inst.(*domain.HashInstance)
	if !ok || h == nil || h.Size() == 0 {
		return domain.Answer{}, false
	}
	res := solver.HashInsert(h)

	trace := []string{
		"Strategy: " + h.Strategy.Label(),
		fmt.Sprintf("Key: %d", h.Key),
		fmt.Sprintf("Table Size (m): %d", h.Size()),
	}
	for _, p := range res.Probes {
		status := "Empty -> Insert"
		if p.Occupied {
			status = "Occupied"
		}
		trace = append(trace, fmt.Sprintf("Attempt %d: h(%d, %d) = %s = %d [%s]",
			p.Attempt, h.Key, p.Attempt, probeExpr(h, p.Attempt), p.Slot, status))
	}

	if res.Overflow {
		return domain.Answer{Text: AnswerOverflow, Trace: trace}, true
	}
	return domain.Answer{Text: strconv.Itoa(res.Index), Trace: trace}, true
}

// -----------------------------------------------------------------------------
// Recurrences and complexity
// -----------------------------------------------------------------------------

func solveStatic(answer string) solveFunc {
	return func(inst domain.Instance) (domain.Answer, bool) {
		if inst == nil {
			return domain.Answer{}, false
		}
		return domain.Answer{Text: answer}, true
	}
}

func complexityQuestion(inst domain.Instance) string {
	c, ok := inst.(*domain.ComplexityCase)
	if !ok || c == nil {
		return ""
	}
	return fmt.Sprintf("Running time of %s?", c.Subject)
}

func solveComplexity(inst domain.Instance) (domain.Answer, bool) {
	c, ok := inst.(*domain.ComplexityCase)
	if !ok || c == nil {
		return domain.Answer{}, false
	}
	return domain.Answer{Text: c.Answer}, true
}
