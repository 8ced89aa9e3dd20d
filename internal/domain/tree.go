package domain

// Color is a node color used by red-black questions
type Color string

const (
	ColorWhite Color = "white"
	ColorRed   Color = "red"
	ColorBlack Color = "black"
)

// TreeNode is a binary tree node that owns its children
type TreeNode struct {
	ID    NodeID
	Value int
	Color Color
	Left  *TreeNode
	Right *TreeNode
}

// TreeInstance is a binary search tree with a parent side table
type TreeInstance struct {
	Root   *TreeNode
	Values []int // insertion order
	Target *int

	parents map[NodeID]*TreeNode
}

func (*TreeInstance) Kind() InstanceKind { return KindTree }
func (*TreeInstance) instance()          {}

// Insert adds n by BST descent (less goes left, otherwise right) and records
// its parent. Duplicate values are rejected.
func (t *TreeInstance) Insert(n *TreeNode) bool {
	if n == nil {
		return false
	}
	if t.parents == nil {
		t.parents = make(map[NodeID]*TreeNode)
	}
	if t.Root == nil {
		t.Root = n
		t.Values = append(t.Values, n.Value)
		return true
	}

	cur := t.Root
	for {
		if n.Value == cur.Value {
			return false
		}
		if n.Value < cur.Value {
			if cur.Left == nil {
				cur.Left = n
				break
			}
			cur = cur.Left
		} else {
			if cur.Right == nil {
				cur.Right = n
				break
			}
			cur = cur.Right
		}
	}
	t.parents[n.ID] = cur
	t.Values = append(t.Values, n.Value)
	return true
}

// Attach links child under parent on the given side without BST checks.
// It is used for fixed shapes such as the red-black skeleton.
func (t *TreeInstance) Attach(parent, child *TreeNode, left bool) {
	if t.parents == nil {
		t.parents = make(map[NodeID]*TreeNode)
	}
	if left {
		parent.Left = child
	} else {
		parent.Right = child
	}
	t.parents[child.ID] = parent
	t.Values = append(t.Values, child.Value)
}

// ParentOf returns the parent of n, or nil for the root or an unknown node
func (t *TreeInstance) ParentOf(n *TreeNode) *TreeNode {
	if n == nil || t.parents == nil {
		return nil
	}
	return t.parents[n.ID]
}

// Find returns the node holding value, or nil
func (t *TreeInstance) Find(value int) *TreeNode {
	cur := t.Root
	for cur != nil && cur.Value != value {
		if value < cur.Value {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	return cur
}

// Size returns the number of nodes
func (t *TreeInstance) Size() int {
	return countNodes(t.Root)
}

// Height returns the number of levels, 0 for an empty tree
func (t *TreeInstance) Height() int {
	return height(t.Root)
}

// TargetValue returns the target and whether one is set
func (t *TreeInstance) TargetValue() (int, bool) {
	if t.Target == nil {
		return 0, false
	}
	return *t.Target, true
}

// SetTarget sets the target value
func (t *TreeInstance) SetTarget(v int) {
	t.Target = &v
}

func countNodes(n *TreeNode) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.Left) + countNodes(n.Right)
}

func height(n *TreeNode) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.Left), height(n.Right))
}
