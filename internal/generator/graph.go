package generator

import (
	"fmt"

	"github.com/felixgeelhaar/algodrill/internal/domain"
)

const (
	maxGraphNodes  = 26
	maxEdgeWeight  = 9
	extraEdgeRatio = 0.3
)

// Graph builds a graph connected from node 0. A random spanning tree is
// grown by attaching each unconnected node to a random connected one; each
// node then gets an extra edge with probability 0.3 when the pair is free.
func (g *Generator) Graph(nodeCount int, directed, weighted bool) (*domain.GraphInstance, error) {
	if nodeCount < 1 || nodeCount > maxGraphNodes {
		return nil, fmt.Errorf("generate graph with %d nodes: %w", nodeCount, domain.ErrInvalidSize)
	}

	inst := &domain.GraphInstance{
		Nodes:    make([]domain.GraphNode, nodeCount),
		Directed: directed,
		Weighted: weighted,
	}
	for i := range inst.Nodes {
		inst.Nodes[i] = domain.GraphNode{ID: i, Label: domain.NodeLabel(i)}
	}

	connected := []int{0}
	pool := make([]int, 0, nodeCount-1)
	for i := 1; i < nodeCount; i++ {
		pool = append(pool, i)
	}

	for len(pool) > 0 {
		idx := g.intn(len(pool))
		target := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)
		source := connected[g.intn(len(connected))]
		inst.Edges = append(inst.Edges, domain.Edge{
			Source: source,
			Target: target,
			Weight: g.weight(weighted),
		})
		connected = append(connected, target)
	}

	for i := 0; i < nodeCount; i++ {
		if !g.chance(extraEdgeRatio) {
			continue
		}
		target := g.intn(nodeCount)
		if target == i || inst.HasEdge(i, target) {
			continue
		}
		inst.Edges = append(inst.Edges, domain.Edge{
			Source: i,
			Target: target,
			Weight: g.weight(weighted),
		})
	}

	return inst, nil
}

func (g *Generator) weight(weighted bool) int {
	if !weighted {
		return 1
	}
	return g.between(1, maxEdgeWeight+1)
}
