package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures log records as JSON lines.
type testHandler struct {
	buf   *bytes.Buffer
	level slog.Level
	attrs []slog.Attr
}

func newTestHandler() *testHandler {
	return &testHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	for _, attr := range h.attrs {
		data[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	return json.NewEncoder(h.buf).Encode(data)
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &testHandler{buf: h.buf, level: h.level, attrs: merged}
}

func (h *testHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *testHandler) records() []map[string]any {
	var out []map[string]any
	for _, line := range bytes.Split(h.buf.Bytes(), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(line, &m); err == nil {
			out = append(out, m)
		}
	}
	return out
}

func (h *testHandler) last() map[string]any {
	recs := h.records()
	if len(recs) == 0 {
		return nil
	}
	return recs[len(recs)-1]
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds run_id and simulator", func(t *testing.T) {
		h := newTestHandler()
		enriched := EnrichLogger(slog.New(h), "run-123", "recorder")
		enriched.Info("test message")

		record := h.last()
		require.NotNil(t, record)
		assert.Equal(t, "run-123", record["run_id"])
		assert.Equal(t, "recorder", record["simulator"])
		assert.Equal(t, "test message", record["msg"])
	})

	t.Run("omits empty run_id", func(t *testing.T) {
		h := newTestHandler()
		EnrichLogger(slog.New(h), "", "recorder").Info("test message")

		record := h.last()
		require.NotNil(t, record)
		assert.NotContains(t, record, "run_id")
		assert.Equal(t, "recorder", record["simulator"])
	})

	t.Run("nil logger returns nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "run-123", "recorder"))
	})
}

func TestLogPlayLifecycle(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	logger = EnrichLogger(logger, "run-1", "recorder")

	LogPlayStart(logger, "set Alt to true")
	LogPlayComplete(logger, 12*time.Millisecond, 4)
	LogPlayError(logger, errors.New("boom"), 1500*time.Microsecond)

	recs := h.records()
	require.Len(t, recs, 3)

	assert.Equal(t, "playback starting", recs[0]["msg"])
	assert.Equal(t, "INFO", recs[0]["level"])
	assert.Equal(t, "set Alt to true", recs[0]["event"])
	assert.Equal(t, "run-1", recs[0]["run_id"])
	assert.Equal(t, "recorder", recs[0]["simulator"])

	assert.Equal(t, "playback completed", recs[1]["msg"])
	assert.Equal(t, float64(12), recs[1]["duration_ms"])
	assert.Equal(t, float64(4), recs[1]["events_recorded"])

	assert.Equal(t, "playback failed", recs[2]["msg"])
	assert.Equal(t, "ERROR", recs[2]["level"])
	assert.Equal(t, "boom", recs[2]["error"])
	assert.Equal(t, 1.5, recs[2]["duration_ms"])
}

func TestLogUnsupported(t *testing.T) {
	h := newTestHandler()
	LogUnsupported(slog.New(h), "set Key(9) to true", errors.New("no handler"))

	record := h.last()
	require.NotNil(t, record)
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "event not supported", record["msg"])
	assert.Equal(t, "no handler", record["error"])
}

func TestLogEvent(t *testing.T) {
	h := newTestHandler()
	LogEvent(slog.New(h), "recorder", "set Home to true")

	record := h.last()
	require.NotNil(t, record)
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "set Home to true", record["event"])
}

func TestLogJournal(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogJournal(logger, 3, 128)
	LogJournalError(logger, "append", errors.New("disk full"))

	recs := h.records()
	require.Len(t, recs, 2)
	assert.Equal(t, float64(3), recs[0]["sequence"])
	assert.Equal(t, float64(128), recs[0]["size_bytes"])
	assert.Equal(t, "append", recs[1]["operation"])
	assert.Equal(t, "WARN", recs[1]["level"])
}

func TestLogFunctions_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		LogPlayStart(nil, "event")
		LogPlayComplete(nil, time.Millisecond, 1)
		LogPlayError(nil, errors.New("x"), time.Millisecond)
		LogUnsupported(nil, "event", errors.New("x"))
		LogEvent(nil, "sim", "event")
		LogJournal(nil, 1, 1)
		LogJournalError(nil, "append", errors.New("x"))
	})
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, done(), 5*time.Millisecond)
}
