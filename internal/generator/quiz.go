package generator

import "github.com/felixgeelhaar/algodrill/internal/domain"

var complexityCases = []domain.ComplexityCase{
	{Subject: "Binary Search", Answer: "O(log n)"},
	{Subject: "Linear Search", Answer: "O(n)"},
	{Subject: "Merge Sort", Answer: "O(n log n)"},
	{Subject: "Quick Sort (worst case)", Answer: "O(n^2)"},
	{Subject: "Quick Sort (average case)", Answer: "O(n log n)"},
	{Subject: "Insertion Sort (worst case)", Answer: "O(n^2)"},
	{Subject: "Insertion Sort (best case)", Answer: "O(n)"},
	{Subject: "Heap Sort", Answer: "O(n log n)"},
	{Subject: "Build Max-Heap", Answer: "O(n)"},
	{Subject: "BFS with adjacency lists", Answer: "O(V+E)"},
	{Subject: "DFS with adjacency lists", Answer: "O(V+E)"},
	{Subject: "Dijkstra with a binary heap", Answer: "O((V+E) log V)"},
	{Subject: "Kruskal", Answer: "O(E log E)"},
	{Subject: "BST search (balanced)", Answer: "O(log n)"},
	{Subject: "Hash table lookup (average case)", Answer: "O(1)"},
}

// Complexity picks a random algorithm/complexity pair
func (g *Generator) Complexity() *domain.ComplexityCase {
	c := complexityCases[g.intn(len(complexityCases))]
	return &c
}
