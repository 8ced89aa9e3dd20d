package generator

import (
	"fmt"

	"github.com/felixgeelhaar/algodrill/internal/domain"
)

const prefilledKeys = 3

// HashTable pre-fills a table of size slots with three keys by linear
// probing, then picks a key that hashes onto an occupied slot.
func (g *Generator) HashTable(size int, strategy domain.HashStrategy) (*domain.HashInstance, error) {
	if size < 2 {
		return nil, fmt.Errorf("generate hash table of %d: %w", size, domain.ErrInvalidSize)
	}
	switch strategy {
	case domain.HashLinear, domain.HashQuadratic, domain.HashDouble:
	default:
		return nil, fmt.Errorf("generate hash table with strategy %q: %w", strategy, domain.ErrUnknownStrategy)
	}

	table := make([]*int, size)
	for i := 0; i < min(prefilledKeys, size-1); i++ {
		key := g.between(1, 51)
		idx := key % size
		for table[idx] != nil {
			idx = (idx + 1) % size
		}
		table[idx] = &key
	}

	var filled []int
	for i, slot := range table {
		if slot != nil {
			filled = append(filled, i)
		}
	}

	key := g.between(1, 51)
	if len(filled) > 0 {
		key = g.intn(5)*size + filled[g.intn(len(filled))]
	}

	return &domain.HashInstance{Table: table, Key: key, Strategy: strategy}, nil
}
