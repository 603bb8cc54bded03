// Package journal persists a record of every observed playback run.
package journal

import (
	"errors"
	"time"
)

// Store persists journal entries, numbered per run.
// Implementations must be safe for concurrent use.
type Store interface {
	// Append stores data as the next entry of runID and returns its
	// sequence number, starting at 1.
	Append(runID string, data []byte) (int, error)

	// Load retrieves one entry.
	// Returns ErrNotFound if it doesn't exist.
	Load(runID string, sequence int) ([]byte, error)

	// List returns entry metadata for a run, ordered by sequence.
	// Returns empty slice (not error) if the run has no entries.
	List(runID string) ([]Info, error)

	// Runs returns every run ID with at least one entry, sorted.
	Runs() ([]string, error)

	// DeleteRun removes all entries for a run.
	// Returns nil if the run has no entries.
	DeleteRun(runID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides metadata without loading the entry.
type Info struct {
	RunID     string
	Sequence  int
	Timestamp time.Time
	Size      int64
}

// Sentinel errors for journal operations.
var (
	// ErrNotFound indicates an entry doesn't exist.
	ErrNotFound = errors.New("journal entry not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("journal store closed")
)
