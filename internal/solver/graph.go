package solver

import (
	"math"
	"slices"
	"sort"

	"github.com/felixgeelhaar/algodrill/internal/domain"
)

// Unreachable marks a node Dijkstra cannot reach
const Unreachable = math.MaxInt

// Adjacency returns neighbor lists sorted by id. Undirected edges appear in
// both lists.
func Adjacency(g *domain.GraphInstance) [][]int {
	adj := make([][]int, len(g.Nodes))
	for _, e := range g.Edges {
		if !inRange(g, e.Source) || !inRange(g, e.Target) {
			continue
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
		if !g.Directed {
			adj[e.Target] = append(adj[e.Target], e.Source)
		}
	}
	for i := range adj {
		slices.Sort(adj[i])
		adj[i] = slices.Compact(adj[i])
	}
	return adj
}

func inRange(g *domain.GraphInstance, id int) bool {
	return id >= 0 && id < len(g.Nodes)
}

// BFS returns node labels in breadth-first order from node 0
func BFS(g *domain.GraphInstance) []string {
	if g == nil || len(g.Nodes) == 0 {
		return nil
	}
	adj := Adjacency(g)
	visited := make([]bool, len(g.Nodes))
	visited[0] = true
	queue := []int{0}
	var order []string

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, g.Label(u))
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	return order
}

// DFS returns node labels in recursive pre-order from node 0
func DFS(g *domain.GraphInstance) []string {
	if g == nil || len(g.Nodes) == 0 {
		return nil
	}
	adj := Adjacency(g)
	visited := make([]bool, len(g.Nodes))
	var order []string

	var visit func(u int)
	visit = func(u int) {
		visited[u] = true
		order = append(order, g.Label(u))
		for _, v := range adj[u] {
			if !visited[v] {
				visit(v)
			}
		}
	}
	visit(0)
	return order
}

// edgeWeights returns the cheapest weight per directed pair
func edgeWeights(g *domain.GraphInstance) []map[int]int {
	w := make([]map[int]int, len(g.Nodes))
	for i := range w {
		w[i] = make(map[int]int)
	}
	set := func(u, v, weight int) {
		if cur, ok := w[u][v]; !ok || weight < cur {
			w[u][v] = weight
		}
	}
	for _, e := range g.Edges {
		if !inRange(g, e.Source) || !inRange(g, e.Target) {
			continue
		}
		set(e.Source, e.Target, e.Weight)
		if !g.Directed {
			set(e.Target, e.Source, e.Weight)
		}
	}
	return w
}

// Distances runs Dijkstra from node 0 with an O(n^2) array scan. Nodes that
// cannot be reached hold Unreachable.
func Distances(g *domain.GraphInstance) []int {
	if g == nil || len(g.Nodes) == 0 {
		return nil
	}
	n := len(g.Nodes)
	adj := Adjacency(g)
	weights := edgeWeights(g)

	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[0] = 0
	done := make([]bool, n)

	for k := 0; k < n; k++ {
		u := -1
		for i := 0; i < n; i++ {
			if !done[i] && (u == -1 || dist[i] < dist[u]) {
				u = i
			}
		}
		if u == -1 || dist[u] == Unreachable {
			break
		}
		done[u] = true
		for _, v := range adj[u] {
			if alt := dist[u] + weights[u][v]; alt < dist[v] {
				dist[v] = alt
			}
		}
	}
	return dist
}

// Dijkstra returns the shortest distance from node 0 to target
func Dijkstra(g *domain.GraphInstance, target int) (int, bool) {
	dist := Distances(g)
	if target < 0 || target >= len(dist) || dist[target] == Unreachable {
		return 0, false
	}
	return dist[target], true
}

// Kruskal builds a minimum spanning forest treating every edge as
// undirected. It returns the accepted edges and their total weight.
func Kruskal(g *domain.GraphInstance) ([]domain.Edge, int) {
	if g == nil || len(g.Nodes) == 0 {
		return nil, 0
	}

	edges := make([]domain.Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if e.Source != e.Target && inRange(g, e.Source) && inRange(g, e.Target) {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make([]int, len(g.Nodes))
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	var (
		mst   []domain.Edge
		total int
	)
	for _, e := range edges {
		ru, rv := find(e.Source), find(e.Target)
		if ru == rv {
			continue
		}
		parent[ru] = rv
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == len(g.Nodes)-1 {
			break
		}
	}
	return mst, total
}
