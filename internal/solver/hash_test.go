package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/algodrill/internal/domain"
	"github.com/felixgeelhaar/algodrill/internal/generator"
)

func table(size int, keys map[int]int) []*int {
	t := make([]*int, size)
	for slot, key := range keys {
		k := key
		t[slot] = &k
	}
	return t
}

func TestHashInsert(t *testing.T) {
	tests := []struct {
		name      string
		inst      *domain.HashInstance
		wantIndex int
		wantProbe int
	}{
		{
			name:      "linear steps past a cluster",
			inst:      &domain.HashInstance{Table: table(7, map[int]int{3: 10, 4: 11}), Key: 17, Strategy: domain.HashLinear},
			wantIndex: 5,
			wantProbe: 3,
		},
		{
			name:      "quadratic jumps by squares",
			inst:      &domain.HashInstance{Table: table(7, map[int]int{3: 10, 4: 11}), Key: 17, Strategy: domain.HashQuadratic},
			wantIndex: 0,
			wantProbe: 3,
		},
		{
			name:      "double hashing uses second hash",
			inst:      &domain.HashInstance{Table: table(7, map[int]int{3: 10}), Key: 17, Strategy: domain.HashDouble},
			wantIndex: 2,
			wantProbe: 2,
		},
		{
			name:      "empty home slot",
			inst:      &domain.HashInstance{Table: table(7, nil), Key: 9, Strategy: domain.HashLinear},
			wantIndex: 2,
			wantProbe: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HashInsert(tt.inst)
			require.False(t, got.Overflow)
			assert.Equal(t, tt.wantIndex, got.Index)
			assert.Len(t, got.Probes, tt.wantProbe)
			assert.False(t, got.Probes[len(got.Probes)-1].Occupied)
		})
	}
}

func TestHashInsert_Overflow(t *testing.T) {
	full := &domain.HashInstance{Table: table(3, map[int]int{0: 3, 1: 4, 2: 5}), Key: 6, Strategy: domain.HashLinear}
	got := HashInsert(full)
	assert.True(t, got.Overflow)
	assert.Equal(t, -1, got.Index)
	assert.Len(t, got.Probes, 3)

	// quadratic probing on m=7 from 0 only reaches {0,1,2,4}
	sparse := &domain.HashInstance{Table: table(7, map[int]int{0: 7, 1: 8, 2: 9, 4: 11}), Key: 0, Strategy: domain.HashQuadratic}
	assert.True(t, HashInsert(sparse).Overflow)

	assert.True(t, HashInsert(nil).Overflow)
}

func TestHashInsert_GeneratedTablesLand(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		h, err := generator.New(seed).HashTable(7, domain.HashLinear)
		require.NoError(t, err)
		got := HashInsert(h)
		require.False(t, got.Overflow)
		assert.Nil(t, h.Table[got.Index])
		assert.True(t, got.Probes[0].Occupied, "generated key collides on first probe")
	}
}

func TestSecondHash(t *testing.T) {
	assert.Equal(t, 6, SecondHash(17, 7))
	assert.Equal(t, 1, SecondHash(12, 7))
	assert.Equal(t, 1, SecondHash(5, 1))
}
