package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/algodrill/internal/practice"
)

// HistoryStore implements practice history backed by SQLite.
type HistoryStore struct {
	db *DB
}

// NewHistoryStore creates a new SQLite-backed history store.
func NewHistoryStore(db *DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// OpenHistoryStore opens path, applies migrations and returns the store.
func OpenHistoryStore(path string) (*HistoryStore, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return NewHistoryStore(db), nil
}

// SaveRecord persists a record (insert or update).
func (s *HistoryStore) SaveRecord(r *practice.Record) error {
	var score sql.NullInt64
	if r.CodeScore != nil {
		score = sql.NullInt64{Int64: int64(*r.CodeScore), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO practice_records (id, algorithm_id, seed, attempts, correct, revealed,
			hint_shown, code_score, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			attempts=excluded.attempts, correct=excluded.correct,
			revealed=excluded.revealed, hint_shown=excluded.hint_shown,
			code_score=excluded.code_score, updated_at=excluded.updated_at`,
		r.ID, r.AlgorithmID, r.Seed, r.Attempts, r.Correct, r.Revealed,
		r.HintShown, score, r.CreatedAt.UTC(), r.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	return nil
}

const recordColumns = `id, algorithm_id, seed, attempts, correct, revealed, hint_shown,
	code_score, created_at, updated_at`

// GetRecord retrieves a record by ID.
func (s *HistoryStore) GetRecord(id string) (*practice.Record, error) {
	row := s.db.QueryRow("SELECT "+recordColumns+" FROM practice_records WHERE id = ?", id)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, practice.ErrRecordNotFound
	}
	return r, err
}

// ListRecords returns all records, oldest first.
func (s *HistoryStore) ListRecords() ([]*practice.Record, error) {
	rows, err := s.db.Query("SELECT " + recordColumns + " FROM practice_records ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []*practice.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close closes the database.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*practice.Record, error) {
	var (
		r     practice.Record
		score sql.NullInt64
	)
	err := row.Scan(&r.ID, &r.AlgorithmID, &r.Seed, &r.Attempts, &r.Correct, &r.Revealed,
		&r.HintShown, &score, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan record: %w", err)
	}
	if score.Valid {
		v := int(score.Int64)
		r.CodeScore = &v
	}
	return &r, nil
}
