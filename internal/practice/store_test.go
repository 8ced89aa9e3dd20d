package practice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	score := 80
	older := &Record{ID: "b-record", AlgorithmID: "bfs", Attempts: 1, CreatedAt: base}
	newer := &Record{ID: "a-record", AlgorithmID: "dfs", Attempts: 2, Correct: true, CodeScore: &score, CreatedAt: base.Add(time.Minute)}

	require.NoError(t, store.SaveRecord(newer))
	require.NoError(t, store.SaveRecord(older))

	got, err := store.GetRecord("a-record")
	require.NoError(t, err)
	assert.Equal(t, "dfs", got.AlgorithmID)
	require.NotNil(t, got.CodeScore)
	assert.Equal(t, 80, *got.CodeScore)

	records, err := store.ListRecords()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b-record", records[0].ID, "records are ordered by creation time")
}

func TestStore_GetMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.GetRecord("missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
