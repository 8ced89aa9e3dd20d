package solver

import "github.com/felixgeelhaar/algodrill/internal/domain"

// Probe is one slot inspection during open-addressing insertion
type Probe struct {
	Attempt  int
	Slot     int
	Occupied bool
}

// HashResult is the landing slot of an insertion, or Overflow
type HashResult struct {
	Index    int
	Overflow bool
	Probes   []Probe
}

// ProbeSlot returns h(k, i) for the strategy over a table of m slots
func ProbeSlot(strategy domain.HashStrategy, key, i, m int) int {
	if m <= 1 {
		return 0
	}
	switch strategy {
	case domain.HashQuadratic:
		return mod(key+i*i, m)
	case domain.HashDouble:
		return mod(key+i*SecondHash(key, m), m)
	default:
		return mod(key+i, m)
	}
}

// SecondHash is the double-hashing step 1 + k mod (m-1)
func SecondHash(key, m int) int {
	if m <= 1 {
		return 1
	}
	return 1 + mod(key, m-1)
}

func mod(a, m int) int {
	return ((a % m) + m) % m
}

// HashInsert probes for an empty slot for the instance key. After m probes
// without success the result overflows.
func HashInsert(h *domain.HashInstance) HashResult {
	if h == nil || h.Size() == 0 {
		return HashResult{Index: -1, Overflow: true}
	}
	m := h.Size()
	if m == 1 {
		if h.Table[0] == nil {
			return HashResult{Index: 0, Probes: []Probe{{Slot: 0}}}
		}
		return HashResult{Index: -1, Overflow: true, Probes: []Probe{{Slot: 0, Occupied: true}}}
	}

	var probes []Probe
	for i := 0; i < m; i++ {
		slot := ProbeSlot(h.Strategy, h.Key, i, m)
		occupied := h.Table[slot] != nil
		probes = append(probes, Probe{Attempt: i, Slot: slot, Occupied: occupied})
		if !occupied {
			return HashResult{Index: slot, Probes: probes}
		}
	}
	return HashResult{Index: -1, Overflow: true, Probes: probes}
}
