package catalog

import (
	"fmt"

	"github.com/felixgeelhaar/algodrill/internal/domain"
	"github.com/felixgeelhaar/algodrill/internal/generator"
)

// Shape describes which generator an algorithm draws its instance from
type Shape struct {
	Kind     domain.InstanceKind
	Directed bool
	Weighted bool
	Target   generator.TargetRule
	Skeleton bool // fixed red-black tree instead of a random BST
	Heap     bool // heap value range instead of the sort range
	Strategy domain.HashStrategy
}

// Sizes bounds generated instances
type Sizes struct {
	GraphNodes int
	TreeValues int
	Array      int
	Heap       int
	StackOps   int
	Queue      int
	HashTable  int
}

// DefaultSizes returns the sizes used when no configuration is given
func DefaultSizes() Sizes {
	return Sizes{
		GraphNodes: 5,
		TreeValues: 7,
		Array:      7,
		Heap:       7,
		StackOps:   6,
		Queue:      4,
		HashTable:  7,
	}
}

// categoryShape maps every category to its default generator
func categoryShape(c domain.Category) (Shape, error) {
	switch c {
	case domain.CategoryGraphs:
		return Shape{Kind: domain.KindGraph, Weighted: true}, nil
	case domain.CategoryTrees:
		return Shape{Kind: domain.KindTree, Target: generator.TargetAny}, nil
	case domain.CategorySorting, domain.CategorySearching:
		return Shape{Kind: domain.KindArray}, nil
	case domain.CategoryLinear:
		return Shape{Kind: domain.KindStack}, nil
	case domain.CategoryHashing:
		return Shape{Kind: domain.KindHash, Strategy: domain.HashLinear}, nil
	case domain.CategoryRecurrences:
		return Shape{Kind: domain.KindStatic}, nil
	case domain.CategoryComplexity:
		return Shape{Kind: domain.KindComplexity}, nil
	}
	return Shape{}, fmt.Errorf("shape for category %q: %w", c, domain.ErrUnknownCategory)
}

// Generate draws an instance of this shape
func (s Shape) Generate(gen *generator.Generator, sizes Sizes) (domain.Instance, error) {
	var (
		inst domain.Instance
		err  error
	)
	switch s.Kind {
	case domain.KindGraph:
		var g *domain.GraphInstance
		g, err = gen.Graph(sizes.GraphNodes, s.Directed, s.Weighted)
		inst = g
	case domain.KindTree:
		inst, err = s.tree(gen, sizes)
	case domain.KindArray:
		var a *domain.ArrayInstance
		if s.Heap {
			a, err = gen.HeapArray(sizes.Heap)
		} else {
			a, err = gen.Array(sizes.Array)
		}
		inst = a
	case domain.KindStack:
		var st *domain.StackTrace
		st, err = gen.StackTrace(sizes.StackOps)
		inst = st
	case domain.KindQueue:
		var q *domain.QueueInstance
		q, err = gen.Queue(sizes.Queue)
		inst = q
	case domain.KindPostfix:
		inst = gen.Postfix()
	case domain.KindHash:
		var h *domain.HashInstance
		h, err = gen.HashTable(sizes.HashTable, s.Strategy)
		inst = h
	case domain.KindComplexity:
		inst = gen.Complexity()
	case domain.KindStatic:
		inst = &domain.StaticInstance{}
	default:
		return nil, fmt.Errorf("generate %q: %w", s.Kind, domain.ErrInstanceMismatch)
	}
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func (s Shape) tree(gen *generator.Generator, sizes Sizes) (domain.Instance, error) {
	if s.Skeleton {
		return gen.RBTSkeleton(), nil
	}
	tree, err := gen.BST(sizes.TreeValues)
	if err != nil {
		return nil, err
	}
	gen.PickTarget(tree, s.Target)
	return tree, nil
}
