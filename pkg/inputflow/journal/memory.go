package journal

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory journal for tests and one-off runs.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	runs   map[string][]storedEntry
	closed bool
}

type storedEntry struct {
	data      []byte
	timestamp time.Time
}

// NewMemoryStore creates a new in-memory journal.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs: make(map[string][]storedEntry),
	}
}

// Append implements Store.
func (m *MemoryStore) Append(runID string, data []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, ErrStoreClosed
	}

	stored := make([]byte, len(data))
	copy(stored, data)

	m.runs[runID] = append(m.runs[runID], storedEntry{
		data:      stored,
		timestamp: time.Now().UTC(),
	})
	return len(m.runs[runID]), nil
}

// Load implements Store.
func (m *MemoryStore) Load(runID string, sequence int) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	entries := m.runs[runID]
	if sequence < 1 || sequence > len(entries) {
		return nil, ErrNotFound
	}

	out := make([]byte, len(entries[sequence-1].data))
	copy(out, entries[sequence-1].data)
	return out, nil
}

// List implements Store.
func (m *MemoryStore) List(runID string) ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	entries := m.runs[runID]
	infos := make([]Info, 0, len(entries))
	for i, e := range entries {
		infos = append(infos, Info{
			RunID:     runID,
			Sequence:  i + 1,
			Timestamp: e.timestamp,
			Size:      int64(len(e.data)),
		})
	}
	return infos, nil
}

// Runs implements Store.
func (m *MemoryStore) Runs() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	ids := make([]string, 0, len(m.runs))
	for id := range m.runs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// DeleteRun implements Store.
func (m *MemoryStore) DeleteRun(runID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.runs, runID)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.runs = nil
	return nil
}

// Compile-time interface check.
var _ Store = (*MemoryStore)(nil)
