package practice

import (
	"errors"
	"fmt"
	"sort"

	"github.com/felixgeelhaar/algodrill/internal/storage/local"
)

const collectionRecords = "records"

// ErrRecordNotFound is returned when a history record does not exist
var ErrRecordNotFound = errors.New("record not found")

// Store keeps practice history as JSON files
type Store struct {
	store *local.Store
}

// NewStore creates a new JSON history store
func NewStore(basePath string) (*Store, error) {
	store, err := local.NewStore(basePath)
	if err != nil {
		return nil, fmt.Errorf("create local store: %w", err)
	}
	return &Store{store: store}, nil
}

// SaveRecord inserts or replaces a record
func (s *Store) SaveRecord(r *Record) error {
	return s.store.Save(collectionRecords, r.ID, r)
}

// GetRecord retrieves a record by ID
func (s *Store) GetRecord(id string) (*Record, error) {
	var r Record
	if err := s.store.Load(collectionRecords, id, &r); err != nil {
		if errors.Is(err, local.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &r, nil
}

// ListRecords returns all records, oldest first
func (s *Store) ListRecords() ([]*Record, error) {
	ids, err := s.store.List(collectionRecords)
	if err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(ids))
	for _, id := range ids {
		r, err := s.GetRecord(id)
		if err != nil {
			continue
		}
		records = append(records, r)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

// Close is a no-op for file storage
func (s *Store) Close() error {
	return nil
}
