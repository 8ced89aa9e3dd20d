// Package render draws generated instances as terminal text.
//
// Output is line oriented and deterministic for a given instance. Styling is
// applied through a Theme so the same drawing works in the TUI, on a plain
// pipe, and in tests.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/algodrill/internal/domain"
)

// Theme styles the parts of a drawing
type Theme struct {
	Label     lipgloss.Style
	Value     lipgloss.Style
	Muted     lipgloss.Style
	RedNode   lipgloss.Style
	BlackNode lipgloss.Style
}

// PlainTheme applies no styling
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{Label: s, Value: s, Muted: s, RedNode: s, BlackNode: s}
}

// ColorTheme is the default terminal palette
func ColorTheme() Theme {
	return Theme{
		Label:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		RedNode:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C")),
		BlackNode: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
	}
}

// Renderer draws instances with a theme
type Renderer struct {
	theme Theme
}

// New creates a renderer
func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Plain draws inst without styling
func Plain(inst domain.Instance) string {
	return New(PlainTheme()).Instance(inst)
}

// Instance draws inst. Nil and static instances draw as the empty string.
func (r *Renderer) Instance(inst domain.Instance) string {
	switch v := inst.(type) {
	case *domain.GraphInstance:
		if v != nil {
			return r.Graph(v)
		}
	case *domain.TreeInstance:
		if v != nil {
			return r.Tree(v)
		}
	case *domain.ArrayInstance:
		if v != nil {
			return r.Array(v.Values)
		}
	case *domain.StackTrace:
		if v != nil {
			return r.Stack(v)
		}
	case *domain.QueueInstance:
		if v != nil {
			return r.Queue(v)
		}
	case *domain.PostfixInstance:
		if v != nil {
			return r.label("Expression: ") + r.theme.Value.Render(v.Expr)
		}
	case *domain.HashInstance:
		if v != nil {
			return r.Hash(v)
		}
	case *domain.ComplexityCase:
		if v != nil {
			return r.label("Algorithm: ") + r.theme.Value.Render(v.Subject)
		}
	}
	return ""
}

// Graph lists the nodes followed by one line per edge
func (r *Renderer) Graph(g *domain.GraphInstance) string {
	var b strings.Builder

	labels := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		labels[i] = n.Label
	}
	b.WriteString(r.label("Nodes: "))
	b.WriteString(r.theme.Value.Render(strings.Join(labels, " ")))

	kind := "undirected"
	arrow := " - "
	if g.Directed {
		kind = "directed"
		arrow = " -> "
	}
	if g.Weighted {
		kind += ", weighted"
	}
	b.WriteString("\n")
	b.WriteString(r.label("Edges: "))
	b.WriteString(r.theme.Muted.Render("(" + kind + ")"))

	if len(g.Edges) == 0 {
		b.WriteString("\n  " + r.theme.Muted.Render("none"))
	}
	for _, e := range g.Edges {
		line := g.Label(e.Source) + arrow + g.Label(e.Target)
		b.WriteString("\n  ")
		b.WriteString(r.theme.Value.Render(line))
		if g.Weighted {
			b.WriteString(r.theme.Muted.Render(fmt.Sprintf(" (%d)", e.Weight)))
		}
	}
	return b.String()
}

// Tree draws the tree sideways, root first, left subtree above right
func (r *Renderer) Tree(t *domain.TreeInstance) string {
	if t.Root == nil {
		return r.theme.Muted.Render("(empty tree)")
	}

	var b strings.Builder
	b.WriteString(r.node(t.Root))
	r.children(&b, t.Root, "")
	return b.String()
}

func (r *Renderer) children(b *strings.Builder, n *domain.TreeNode, prefix string) {
	if n.Left == nil && n.Right == nil {
		return
	}
	r.branch(b, n.Left, "L", prefix, false)
	r.branch(b, n.Right, "R", prefix, true)
}

func (r *Renderer) branch(b *strings.Builder, n *domain.TreeNode, side, prefix string, last bool) {
	connector, indent := "├── ", "│   "
	if last {
		connector, indent = "└── ", "    "
	}

	b.WriteString("\n")
	b.WriteString(r.theme.Muted.Render(prefix + connector + side + ": "))
	if n == nil {
		b.WriteString(r.theme.Muted.Render("·"))
		return
	}
	b.WriteString(r.node(n))
	r.children(b, n, prefix+indent)
}

func (r *Renderer) node(n *domain.TreeNode) string {
	text := strconv.Itoa(n.Value)
	switch n.Color {
	case domain.ColorRed:
		return r.theme.RedNode.Render(text)
	case domain.ColorBlack:
		return r.theme.BlackNode.Render(text)
	}
	return r.theme.Value.Render(text)
}

// Array draws values under their indices with aligned columns
func (r *Renderer) Array(values []int) string {
	if len(values) == 0 {
		return r.theme.Muted.Render("(empty array)")
	}

	idx := make([]string, len(values))
	vals := make([]string, len(values))
	for i, v := range values {
		is, vs := strconv.Itoa(i), strconv.Itoa(v)
		w := max(len(is), len(vs))
		idx[i] = fmt.Sprintf("%*s", w, is)
		vals[i] = fmt.Sprintf("%*s", w, vs)
	}
	return r.label("index: ") + r.theme.Muted.Render(strings.Join(idx, "  ")) + "\n" +
		r.label("value: ") + r.theme.Value.Render(strings.Join(vals, "  "))
}

// Stack lists the operations in order
func (r *Renderer) Stack(s *domain.StackTrace) string {
	ops := make([]string, len(s.Ops))
	for i, op := range s.Ops {
		ops[i] = StackOp(op)
	}
	if len(ops) == 0 {
		return r.label("Operations: ") + r.theme.Muted.Render("none")
	}
	return r.label("Operations: ") + r.theme.Value.Render(strings.Join(ops, ", "))
}

// StackOp formats a single operation as Push(v) or Pop()
func StackOp(op domain.StackOp) string {
	if op.Type == domain.StackPop {
		return "Pop()"
	}
	return fmt.Sprintf("Push(%d)", op.Value)
}

// Queue draws the queue from head to tail
func (r *Renderer) Queue(q *domain.QueueInstance) string {
	cells := make([]string, len(q.Values))
	for i, v := range q.Values {
		cells[i] = strconv.Itoa(v)
	}
	return r.theme.Muted.Render("head -> ") +
		r.theme.Value.Render("["+strings.Join(cells, " | ")+"]") +
		r.theme.Muted.Render(" <- tail")
}

// Hash draws the table one slot per line; empty slots show as '-'
func (r *Renderer) Hash(h *domain.HashInstance) string {
	var b strings.Builder
	b.WriteString(r.label("Strategy: "))
	b.WriteString(r.theme.Value.Render(h.Strategy.Label()))
	b.WriteString(r.label("  Key: "))
	b.WriteString(r.theme.Value.Render(strconv.Itoa(h.Key)))
	b.WriteString(r.label("  m = "))
	b.WriteString(r.theme.Value.Render(strconv.Itoa(h.Size())))

	width := len(strconv.Itoa(max(h.Size()-1, 0)))
	for i, slot := range h.Table {
		b.WriteString("\n")
		b.WriteString(r.theme.Muted.Render(fmt.Sprintf("[%*d] ", width, i)))
		if slot == nil {
			b.WriteString(r.theme.Muted.Render("-"))
			continue
		}
		b.WriteString(r.theme.Value.Render(strconv.Itoa(*slot)))
	}
	return b.String()
}

func (r *Renderer) label(s string) string {
	return r.theme.Label.Render(s)
}
