package generator

import (
	"fmt"
	"slices"

	"github.com/felixgeelhaar/algodrill/internal/domain"
)

// TargetRule restricts which tree value a question may ask about
type TargetRule int

const (
	TargetAny TargetRule = iota
	TargetNotMax
	TargetNotMin
	TargetNotRoot
	TargetRoot
)

// BST builds a binary search tree. The root is drawn from [30,70), then count
// values from [0,100) are inserted; duplicate draws are skipped without
// retry, so the tree has at most count+1 nodes.
func (g *Generator) BST(count int) (*domain.TreeInstance, error) {
	if count < 0 {
		return nil, fmt.Errorf("generate bst with %d values: %w", count, domain.ErrInvalidSize)
	}

	tree := &domain.TreeInstance{}
	tree.Insert(g.node(g.between(30, 70), domain.ColorBlack))
	for i := 0; i < count; i++ {
		tree.Insert(g.node(g.intn(100), domain.ColorRed))
	}
	return tree, nil
}

// RBTSkeleton returns the fixed seven-node red-black tree
func (g *Generator) RBTSkeleton() *domain.TreeInstance {
	tree := &domain.TreeInstance{}
	root := g.node(50, domain.ColorBlack)
	tree.Insert(root)

	left := g.node(25, domain.ColorRed)
	right := g.node(75, domain.ColorRed)
	tree.Attach(root, left, true)
	tree.Attach(root, right, false)
	tree.Attach(left, g.node(10, domain.ColorBlack), true)
	tree.Attach(left, g.node(33, domain.ColorBlack), false)
	tree.Attach(right, g.node(60, domain.ColorBlack), true)
	tree.Attach(right, g.node(89, domain.ColorBlack), false)
	return tree
}

// PickTarget chooses a target value under rule and stores it on the tree.
// When no value qualifies the root is used.
func (g *Generator) PickTarget(tree *domain.TreeInstance, rule TargetRule) {
	if tree == nil || tree.Root == nil {
		return
	}
	root := tree.Root.Value

	candidates := slices.Clone(tree.Values)
	slices.Sort(candidates)
	switch rule {
	case TargetNotMax:
		candidates = candidates[:len(candidates)-1]
	case TargetNotMin:
		candidates = candidates[1:]
	case TargetNotRoot:
		candidates = slices.DeleteFunc(candidates, func(v int) bool { return v == root })
	case TargetRoot:
		candidates = nil
	}

	if len(candidates) == 0 {
		tree.SetTarget(root)
		return
	}
	tree.SetTarget(candidates[g.intn(len(candidates))])
}

func (g *Generator) node(value int, color domain.Color) *domain.TreeNode {
	return &domain.TreeNode{
		ID:    domain.GenerateNodeID(g.rng),
		Value: value,
		Color: color,
	}
}
