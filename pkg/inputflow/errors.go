package inputflow

import (
	"errors"
	"fmt"
)

// Sentinel errors for playback.
var (
	// ErrNilContext indicates Run() was called with a nil context.
	ErrNilContext = errors.New("context cannot be nil")

	// ErrNilEvent indicates Run() was called without an event.
	ErrNilEvent = errors.New("event cannot be nil")

	// ErrUnsupported indicates a simulator cannot realize an event.
	ErrUnsupported = errors.New("event not supported by simulator")

	// ErrRunIDRequired indicates journaling was enabled without a run ID.
	ErrRunIDRequired = errors.New("run ID required for journaling")
)

// UnsupportedError is returned by the fallible path when a simulator
// cannot handle an event. The event is handed back untouched so the
// caller can retry it elsewhere, log it, or drop it.
type UnsupportedError struct {
	// Event is the event that was not consumed.
	Event any
	// Simulator names the simulator type that rejected it.
	Simulator string
	// Err is the simulator's reason, if it gave one.
	Err error
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	if e.Err != nil && !errors.Is(e.Err, ErrUnsupported) {
		return fmt.Sprintf("%s cannot simulate %v: %v", e.Simulator, e.Event, e.Err)
	}
	return fmt.Sprintf("%s cannot simulate %v", e.Simulator, e.Event)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *UnsupportedError) Unwrap() error {
	return e.Err
}

// Is reports every UnsupportedError as ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// PanicError captures a panic raised by a simulator during playback.
type PanicError struct {
	// RunID is the run that panicked.
	RunID string
	// Value is the value passed to panic().
	Value any
	// Stack is the full stack trace at the point of panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("run %s panicked: %v", e.RunID, e.Value)
}

// CancellationError is returned when the context was done before
// playback began. Playback that has started always runs to completion.
type CancellationError struct {
	// RunID is the run that was cancelled.
	RunID string
	// Description is the display form of the unplayed event.
	Description string
	// Cause is context.Canceled or context.DeadlineExceeded.
	Cause error
}

// Error implements the error interface.
func (e *CancellationError) Error() string {
	return fmt.Sprintf("run %s cancelled before playback: %v", e.RunID, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CancellationError) Unwrap() error {
	return e.Cause
}

// JournalError wraps errors from journal operations.
type JournalError struct {
	// RunID is the run being journaled.
	RunID string
	// Op is the operation that failed ("serialize", "append").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *JournalError) Error() string {
	return fmt.Sprintf("journal %s for run %s: %v", e.Op, e.RunID, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *JournalError) Unwrap() error {
	return e.Err
}
