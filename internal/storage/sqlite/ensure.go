package sqlite

import "github.com/felixgeelhaar/algodrill/internal/practice"

// Ensure SQLite stores implement the storage interfaces.
var _ practice.HistoryStore = (*HistoryStore)(nil)
