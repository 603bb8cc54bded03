package journal

import (
	"encoding/json"
	"time"
)

// Version is the current entry format version.
const Version = 1

// Entry is the persisted record of one playback run.
type Entry struct {
	Version   int       `json:"version"`
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`

	Simulator   string   `json:"simulator"`
	Description string   `json:"description"`
	Trace       []string `json:"trace,omitempty"`

	DurationMs float64 `json:"duration_ms"`
	Error      string  `json:"error,omitempty"`
}

// New creates an entry. trace holds the lines the simulator recorded
// during the run, if it keeps any.
func New(runID, simulator, description string, trace []string, duration time.Duration, err error) *Entry {
	e := &Entry{
		Version:     Version,
		RunID:       runID,
		Timestamp:   time.Now().UTC(),
		Simulator:   simulator,
		Description: description,
		Trace:       trace,
		DurationMs:  float64(duration.Microseconds()) / 1000,
	}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// Succeeded reports whether the run finished without error.
func (e *Entry) Succeeded() bool {
	return e.Error == ""
}

// Marshal serializes an entry to JSON.
func (e *Entry) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Unmarshal deserializes an entry from JSON.
func Unmarshal(data []byte) (*Entry, error) {
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
