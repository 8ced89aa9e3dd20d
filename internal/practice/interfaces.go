package practice

// HistoryStore persists practice records. Both the JSON file store and the
// SQLite store implement this.
type HistoryStore interface {
	SaveRecord(r *Record) error
	GetRecord(id string) (*Record, error)
	ListRecords() ([]*Record, error)
	Close() error
}

// Ensure Store implements HistoryStore
var _ HistoryStore = (*Store)(nil)
