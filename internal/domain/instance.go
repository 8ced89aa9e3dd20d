package domain

// InstanceKind tags the concrete type behind an Instance
type InstanceKind string

const (
	KindGraph      InstanceKind = "graph"
	KindTree       InstanceKind = "tree"
	KindArray      InstanceKind = "array"
	KindStack      InstanceKind = "stack"
	KindQueue      InstanceKind = "queue"
	KindPostfix    InstanceKind = "postfix"
	KindHash       InstanceKind = "hash"
	KindComplexity InstanceKind = "complexity"
	KindStatic     InstanceKind = "static"
)

// Instance is a generated problem instance. The set of implementations is
// closed; consumers switch on Kind or use a type switch.
type Instance interface {
	Kind() InstanceKind
	instance()
}

// -----------------------------------------------------------------------------
// Graphs
// -----------------------------------------------------------------------------

// GraphNode is a vertex with a single-letter label ('A' + ID)
type GraphNode struct {
	ID    int
	Label string
}

// Edge connects two node IDs
type Edge struct {
	Source int
	Target int
	Weight int
}

// GraphInstance is a small graph connected from node 0
type GraphInstance struct {
	Nodes    []GraphNode
	Edges    []Edge
	Directed bool
	Weighted bool
}

func (*GraphInstance) Kind() InstanceKind { return KindGraph }
func (*GraphInstance) instance()          {}

// NodeLabel returns the label for id, or "?" when out of range
func NodeLabel(id int) string {
	if id < 0 || id >= 26 {
		return "?"
	}
	return string(rune('A' + id))
}

// Label returns the label of node id
func (g *GraphInstance) Label(id int) string {
	if id >= 0 && id < len(g.Nodes) {
		return g.Nodes[id].Label
	}
	return NodeLabel(id)
}

// HasEdge reports whether an edge joins source and target. For undirected
// graphs either orientation counts.
func (g *GraphInstance) HasEdge(source, target int) bool {
	for _, e := range g.Edges {
		if e.Source == source && e.Target == target {
			return true
		}
		if !g.Directed && e.Source == target && e.Target == source {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// Arrays and linear structures
// -----------------------------------------------------------------------------

// ArrayInstance is a list of integers; duplicates are allowed
type ArrayInstance struct {
	Values []int
}

func (*ArrayInstance) Kind() InstanceKind { return KindArray }
func (*ArrayInstance) instance()          {}

// StackOpType is push or pop
type StackOpType string

const (
	StackPush StackOpType = "push"
	StackPop  StackOpType = "pop"
)

// StackOp is a single stack operation; Value is ignored for pops
type StackOp struct {
	Type  StackOpType
	Value int
}

// StackTrace is a valid op sequence and the resulting stack, bottom to top
type StackTrace struct {
	Ops    []StackOp
	Result []int
}

func (*StackTrace) Kind() InstanceKind { return KindStack }
func (*StackTrace) instance()          {}

// QueueInstance is a FIFO queue, head first
type QueueInstance struct {
	Values []int
}

func (*QueueInstance) Kind() InstanceKind { return KindQueue }
func (*QueueInstance) instance()          {}

// PostfixInstance is a space-separated postfix expression
type PostfixInstance struct {
	Expr string
}

func (*PostfixInstance) Kind() InstanceKind { return KindPostfix }
func (*PostfixInstance) instance()          {}

// -----------------------------------------------------------------------------
// Hashing
// -----------------------------------------------------------------------------

// HashStrategy is an open-addressing probe sequence
type HashStrategy string

const (
	HashLinear    HashStrategy = "linear"
	HashQuadratic HashStrategy = "quadratic"
	HashDouble    HashStrategy = "double"
)

// Label returns a display label
func (s HashStrategy) Label() string {
	switch s {
	case HashLinear:
		return "Linear"
	case HashQuadratic:
		return "Quadratic"
	case HashDouble:
		return "Double"
	}
	return string(s)
}

// HashInstance is an open-addressing table and a key to insert
type HashInstance struct {
	Table    []*int // nil marks an empty slot
	Key      int
	Strategy HashStrategy
}

func (*HashInstance) Kind() InstanceKind { return KindHash }
func (*HashInstance) instance()          {}

// Size returns the table capacity
func (h *HashInstance) Size() int {
	return len(h.Table)
}

// -----------------------------------------------------------------------------
// Quiz instances
// -----------------------------------------------------------------------------

// ComplexityCase pairs an algorithm with its asymptotic running time
type ComplexityCase struct {
	Subject string
	Answer  string
}

func (*ComplexityCase) Kind() InstanceKind { return KindComplexity }
func (*ComplexityCase) instance()          {}

// StaticInstance carries no data; the question text is fixed
type StaticInstance struct{}

func (*StaticInstance) Kind() InstanceKind { return KindStatic }
func (*StaticInstance) instance()          {}

// -----------------------------------------------------------------------------
// Answers
// -----------------------------------------------------------------------------

// Answer is a canonical answer and optional worked steps
type Answer struct {
	Text  string
	Trace []string
}
