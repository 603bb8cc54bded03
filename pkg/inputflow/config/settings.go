package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/randalmurphal/inputflow/pkg/inputflow"
)

// Playback precision modes.
const (
	PrecisionSleep = "sleep"
	PrecisionSpin  = "spin"
)

// Journal drivers.
const (
	DriverNone   = "none"
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Settings is the typed configuration of the inputflow tools.
type Settings struct {
	Log           LogSettings
	Playback      PlaybackSettings
	Observability ObservabilitySettings
	Journal       JournalSettings
}

// LogSettings configures the slog logger.
type LogSettings struct {
	Level  string
	Format string
}

// PlaybackSettings configures how scripts are turned into events.
type PlaybackSettings struct {
	// Precision selects Sleep ("sleep") or SpinSleep ("spin") for delays.
	Precision string
	// SpinThreshold is the busy-wait tail of each spin sleep.
	SpinThreshold time.Duration
	// Repeat plays the whole script this many times.
	Repeat int
}

// ObservabilitySettings toggles OpenTelemetry.
type ObservabilitySettings struct {
	Tracing bool
	Metrics bool
}

// JournalSettings selects where playback records go.
type JournalSettings struct {
	Driver string
	Path   string
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Log:      LogSettings{Level: "info", Format: "text"},
		Playback: PlaybackSettings{Precision: PrecisionSleep, SpinThreshold: inputflow.DefaultSpinThreshold, Repeat: 1},
		Journal:  JournalSettings{Driver: DriverNone},
	}
}

// Decode reads Settings from cfg on top of Default and validates them.
//
//	log:
//	  level: debug
//	  format: json
//	playback:
//	  precision: spin
//	  spin_threshold: 1ms
//	  repeat: 3
//	observability:
//	  tracing: true
//	  metrics: false
//	journal:
//	  driver: sqlite
//	  path: ./playback.db
func Decode(cfg Config) (Settings, error) {
	s := Default()

	log := cfg.Section("log")
	s.Log.Level = log.String("level", s.Log.Level)
	s.Log.Format = log.String("format", s.Log.Format)

	pb := cfg.Section("playback")
	s.Playback.Precision = pb.String("precision", s.Playback.Precision)
	s.Playback.SpinThreshold = pb.Duration("spin_threshold", s.Playback.SpinThreshold)
	s.Playback.Repeat = pb.Int("repeat", s.Playback.Repeat)

	obs := cfg.Section("observability")
	s.Observability.Tracing = obs.Bool("tracing", s.Observability.Tracing)
	s.Observability.Metrics = obs.Bool("metrics", s.Observability.Metrics)

	j := cfg.Section("journal")
	s.Journal.Driver = j.String("driver", s.Journal.Driver)
	s.Journal.Path = j.String("path", s.Journal.Path)

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports every invalid field.
func (s Settings) Validate() error {
	var errs []error

	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unsupported level %q", s.Log.Level))
	}
	switch strings.ToLower(s.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unsupported format %q", s.Log.Format))
	}

	switch s.Playback.Precision {
	case PrecisionSleep, PrecisionSpin:
	default:
		errs = append(errs, fmt.Errorf("playback.precision: must be %q or %q, got %q", PrecisionSleep, PrecisionSpin, s.Playback.Precision))
	}
	if s.Playback.SpinThreshold < 0 {
		errs = append(errs, errors.New("playback.spin_threshold: cannot be negative"))
	}
	if s.Playback.Repeat < 0 {
		errs = append(errs, errors.New("playback.repeat: cannot be negative"))
	}

	switch s.Journal.Driver {
	case DriverNone, DriverMemory:
	case DriverSQLite:
		if s.Journal.Path == "" {
			errs = append(errs, errors.New("journal.path: required for sqlite driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("journal.driver: unsupported driver %q", s.Journal.Driver))
	}

	return errors.Join(errs...)
}
