package solver

import "github.com/felixgeelhaar/algodrill/internal/domain"

// InOrder returns values in left, node, right order
func InOrder(root *domain.TreeNode) []int {
	var out []int
	var walk func(n *domain.TreeNode)
	walk = func(n *domain.TreeNode) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Value)
		walk(n.Right)
	}
	walk(root)
	return out
}

// PreOrder returns values in node, left, right order
func PreOrder(root *domain.TreeNode) []int {
	var out []int
	var walk func(n *domain.TreeNode)
	walk = func(n *domain.TreeNode) {
		if n == nil {
			return
		}
		out = append(out, n.Value)
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)
	return out
}

// PostOrder returns values in left, right, node order
func PostOrder(root *domain.TreeNode) []int {
	var out []int
	var walk func(n *domain.TreeNode)
	walk = func(n *domain.TreeNode) {
		if n == nil {
			return
		}
		walk(n.Left)
		walk(n.Right)
		out = append(out, n.Value)
	}
	walk(root)
	return out
}

// Successor returns the value after target in in-order sequence
func Successor(root *domain.TreeNode, target int) (int, bool) {
	seq := InOrder(root)
	for i, v := range seq {
		if v == target {
			if i+1 < len(seq) {
				return seq[i+1], true
			}
			return 0, false
		}
	}
	return 0, false
}

// Predecessor returns the value before target in in-order sequence
func Predecessor(root *domain.TreeNode, target int) (int, bool) {
	seq := InOrder(root)
	for i, v := range seq {
		if v == target {
			if i > 0 {
				return seq[i-1], true
			}
			return 0, false
		}
	}
	return 0, false
}

// Parent finds target's parent by descending from root. The root and absent
// values have no parent.
func Parent(root *domain.TreeNode, target int) (int, bool) {
	var parent *domain.TreeNode
	cur := root
	for cur != nil && cur.Value != target {
		parent = cur
		if target < cur.Value {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	if cur == nil || parent == nil {
		return 0, false
	}
	return parent.Value, true
}

// SearchPath returns the keys compared while searching for target and
// whether it was found
func SearchPath(root *domain.TreeNode, target int) ([]int, bool) {
	var path []int
	cur := root
	for cur != nil {
		path = append(path, cur.Value)
		if cur.Value == target {
			return path, true
		}
		if target < cur.Value {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	return path, false
}

// BlackHeight counts black nodes on the leftmost path, root included
func BlackHeight(root *domain.TreeNode) int {
	h := 0
	for n := root; n != nil; n = n.Left {
		if n.Color == domain.ColorBlack {
			h++
		}
	}
	return h
}

// RotateLeft returns a rotated copy of the tree. It fails when the root has
// no right child.
func RotateLeft(root *domain.TreeNode) (*domain.TreeNode, bool) {
	if root == nil || root.Right == nil {
		return nil, false
	}
	x := clone(root)
	y := x.Right
	x.Right = y.Left
	y.Left = x
	return y, true
}

// RotateRight returns a rotated copy of the tree. It fails when the root has
// no left child.
func RotateRight(root *domain.TreeNode) (*domain.TreeNode, bool) {
	if root == nil || root.Left == nil {
		return nil, false
	}
	y := clone(root)
	x := y.Left
	y.Left = x.Right
	x.Right = y
	return x, true
}

func clone(n *domain.TreeNode) *domain.TreeNode {
	if n == nil {
		return nil
	}
	c := *n
	c.Left = clone(n.Left)
	c.Right = clone(n.Right)
	return &c
}
