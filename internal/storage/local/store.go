package local

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Store keeps one JSON document per record under basePath/<collection>/<id>.json
type Store struct {
	basePath string
	mu       sync.RWMutex
}

// NewStore creates a new local JSON store
func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &Store{basePath: basePath}, nil
}

// BasePath returns the store root
func (s *Store) BasePath() string {
	return s.basePath
}

// Save writes data to a temporary file and renames it into place, so
// readers never see a partial record
func (s *Store) Save(collection, id string, data any) error {
	if err := validID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Join(s.basePath, collection)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create collection directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, id+".*.tmp")
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	encoder := json.NewEncoder(tmp)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		tmp.Close()
		return fmt.Errorf("encode json: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(collection, id)); err != nil {
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}

// Load reads data from a JSON file
func (s *Store) Load(collection, id string, data any) error {
	if err := validID(id); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := os.Open(s.path(collection, id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(data); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// Delete removes a JSON file
func (s *Store) Delete(collection, id string) error {
	if err := validID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(collection, id)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// List returns all IDs in a collection in name order
func (s *Store) List(collection string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(filepath.Join(s.basePath, collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read directory: %w", err)
	}

	ids := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name := entry.Name(); filepath.Ext(name) == ".json" {
			ids = append(ids, strings.TrimSuffix(name, ".json"))
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Exists checks if a record exists
func (s *Store) Exists(collection, id string) bool {
	if validID(id) != nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.path(collection, id))
	return err == nil
}

func (s *Store) path(collection, id string) string {
	return filepath.Join(s.basePath, collection, id+".json")
}

func validID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
