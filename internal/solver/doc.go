// Package solver holds the reference algorithms that compute canonical
// answers for generated instances.
//
// Every function is pure: it reads its input and never mutates it. Absent
// results are reported with an ok flag or an error rather than a panic.
//
// Tie-breaks are fixed so answers are unique:
//   - graph traversals visit neighbors in ascending node id
//   - Dijkstra selects the first minimum in ascending id order
//   - Kruskal sorts edges stably by weight
package solver
