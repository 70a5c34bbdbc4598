package chromez

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"
)

// ErrAlreadyOpen is returned by Open while a trace file is already open.
// Callers must Close the current file first; reopening implicitly would
// silently lose buffered events and hide double-initialization bugs.
var ErrAlreadyOpen = errors.New("chromez: trace file already open")

// Tracer manages the trace file lifecycle and event emission.
// Safe for concurrent use by multiple goroutines.
//
// A Tracer starts closed. Open transitions it to open, Close back to
// closed; every Span API operation on a closed or disabled tracer is a
// cheap no-op.
//
//nolint:govet // Field order optimized for functionality over memory
type Tracer struct {
	sink     sink
	clock    clockz.Clock
	procName string
	epoch    atomic.Int64 // unix nanos captured at Open
	disabled atomic.Bool
	active   atomic.Bool // open && !disabled, the hot-path gate
}

// New creates a new tracer in the closed state.
// Uses the real clock for production behavior.
func New() *Tracer {
	t := &Tracer{clock: clockz.RealClock}
	t.sink.log = logrus.StandardLogger()
	return t
}

// WithClock returns a new tracer with the specified clock.
// Enables clock injection for deterministic testing.
func (*Tracer) WithClock(clock clockz.Clock) *Tracer {
	t := New()
	t.clock = clock
	return t
}

// SetLogger replaces the logger used for degraded-path reporting.
// Call before Open; the logger is read concurrently once tracing starts.
func (t *Tracer) SetLogger(log logrus.FieldLogger) {
	if log != nil {
		t.sink.log = log
	}
}

// SetProcessName sets the name emitted as a process_name metadata event
// when the trace file opens. Call before Open.
func (t *Tracer) SetProcessName(name string) {
	t.procName = name
}

// Open creates or truncates the trace file at path, writes the JSON array
// opening token, and captures the timestamp epoch all later events are
// relative to. Returns ErrAlreadyOpen when a trace file is already open,
// or a wrapped I/O error when the path cannot be written; in both cases
// the tracer state is unchanged.
func (t *Tracer) Open(path string) error {
	s := &t.sink
	s.mu.Lock()
	err := s.openLocked(path)
	if err == nil {
		t.epoch.Store(t.clock.Now().UnixNano())
		t.active.Store(!t.disabled.Load())
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if t.procName != "" {
		t.emit(&TraceEvent{
			Name: "process_name",
			Ph:   PhaseMetadata,
			Pid:  pid,
			Tid:  goid(),
			Args: Args{{Key: "name", Value: t.procName}},
		})
	}
	return nil
}

// Close writes the JSON array closing token, flushes, and releases the
// trace file. Safe to call multiple times - subsequent calls are no-ops
// with a nil error. Events emitted after Close are dropped silently.
func (t *Tracer) Close() error {
	s := &t.sink
	s.mu.Lock()
	t.active.Store(false)
	err := s.closeLocked()
	s.mu.Unlock()
	return err
}

// SetEnabled toggles event emission at runtime without touching the file.
// While disabled, every Span API operation returns before reading the
// clock, building an event, or taking the write lock.
func (t *Tracer) SetEnabled(enabled bool) {
	s := &t.sink
	s.mu.Lock()
	t.disabled.Store(!enabled)
	t.active.Store(enabled && s.open)
	s.mu.Unlock()
}

// Path returns the path of the open trace file, for host log messages.
// Empty while closed.
func (t *Tracer) Path() string {
	t.sink.mu.Lock()
	defer t.sink.mu.Unlock()
	return t.sink.path
}

// DroppedWrites returns the number of events dropped by write or render
// failures since the tracer was created.
func (t *Tracer) DroppedWrites() uint64 {
	return t.sink.dropped.Load()
}

// event builds a record stamped with the current time and the calling
// goroutine's identity. Runs outside the write lock.
func (t *Tracer) event(name Key, ph Phase, args Args) *TraceEvent {
	return &TraceEvent{
		Name: name,
		Ph:   ph,
		Ts:   t.sinceEpoch(t.clock.Now()),
		Pid:  pid,
		Tid:  goid(),
		Args: args,
	}
}

// sinceEpoch converts an absolute time to microseconds since Open.
// Clamped at zero so a clock stepping backwards cannot underflow.
func (t *Tracer) sinceEpoch(now time.Time) uint64 {
	d := now.UnixNano() - t.epoch.Load()
	if d < 0 {
		return 0
	}
	return uint64(d) / uint64(time.Microsecond)
}

// emit renders the event outside the write lock and hands it to the sink.
// Rendering failures follow the same drop-and-log policy as write failures.
func (t *Tracer) emit(e *TraceEvent) {
	rendered, err := json.Marshal(e)
	if err != nil {
		t.sink.dropped.Add(1)
		t.sink.log.WithError(err).WithField("name", e.Name).Error("Dropping unrenderable trace event")
		return
	}
	t.sink.write(rendered)
}
