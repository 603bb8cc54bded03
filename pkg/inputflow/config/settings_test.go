package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/inputflow/pkg/inputflow"
)

func TestDefault(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, PrecisionSleep, s.Playback.Precision)
	assert.Equal(t, 1, s.Playback.Repeat)
	assert.Equal(t, inputflow.DefaultSpinThreshold, s.Playback.SpinThreshold)
	assert.Equal(t, DriverNone, s.Journal.Driver)
}

func TestDecode(t *testing.T) {
	cfg, err := FromYAML([]byte(`
log:
  level: debug
  format: json
playback:
  precision: spin
  spin_threshold: 1ms
  repeat: 3
observability:
  tracing: true
journal:
  driver: sqlite
  path: ./playback.db
`))
	require.NoError(t, err)

	s, err := Decode(cfg)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "json", s.Log.Format)
	assert.Equal(t, PrecisionSpin, s.Playback.Precision)
	assert.Equal(t, time.Millisecond, s.Playback.SpinThreshold)
	assert.Equal(t, 3, s.Playback.Repeat)
	assert.True(t, s.Observability.Tracing)
	assert.False(t, s.Observability.Metrics)
	assert.Equal(t, DriverSQLite, s.Journal.Driver)
	assert.Equal(t, "./playback.db", s.Journal.Path)
}

func TestDecode_Invalid(t *testing.T) {
	cfg := New(map[string]any{
		"log":      map[string]any{"level": "loud", "format": "xml"},
		"playback": map[string]any{"precision": "exact", "repeat": -1},
		"journal":  map[string]any{"driver": "sqlite"},
	})

	_, err := Decode(cfg)
	require.Error(t, err)
	for _, field := range []string{"log.level", "log.format", "playback.precision", "playback.repeat", "journal.path"} {
		assert.ErrorContains(t, err, field)
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	s := Default()
	s.Journal.Driver = "postgres"
	assert.ErrorContains(t, s.Validate(), "journal.driver")
}

func TestLoadSettings(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	path := filepath.Join(t.TempDir(), "inputflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("playback:\n  repeat: 5\n"), 0o600))
	s, err = LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Playback.Repeat)
}
