package chromez

import (
	"sync"
	"time"
)

// Begin emits a duration-begin event. The caller is responsible for a
// matching End from the same goroutine; use for spans that cross
// non-nested control boundaries. StartSpan and TraceFunc do the pairing
// automatically and should be preferred.
func (t *Tracer) Begin(name Key, args ...Arg) {
	if !t.active.Load() {
		return
	}
	t.emit(t.event(name, PhaseBegin, Args(args)))
}

// End emits a duration-end event closing an earlier Begin of the same
// name on the same goroutine.
func (t *Tracer) End(name Key, args ...Arg) {
	if !t.active.Load() {
		return
	}
	t.emit(t.event(name, PhaseEnd, Args(args)))
}

// Instant emits a single point-in-time event.
func (t *Tracer) Instant(name Key, args ...Arg) {
	if !t.active.Load() {
		return
	}
	t.emit(t.event(name, PhaseInstant, Args(args)))
}

// Complete emits one self-contained slice covering start through now,
// for work that was timed without bracketing events.
func (t *Tracer) Complete(name Key, start time.Time, args ...Arg) {
	if !t.active.Load() {
		return
	}
	e := &TraceEvent{
		Name: name,
		Ph:   PhaseComplete,
		Ts:   t.sinceEpoch(start),
		Pid:  pid,
		Tid:  goid(),
		Args: Args(args),
	}
	if d := t.clock.Now().Sub(start); d > 0 {
		e.Dur = uint64(d) / uint64(time.Microsecond)
	}
	t.emit(e)
}

// ActiveSpan is an in-progress span. StartSpan emits the begin event and
// returns the guard; Finish emits the matching end event exactly once.
// Safe for concurrent use, though a span belongs on the goroutine that
// started it.
type ActiveSpan struct {
	tracer *Tracer
	name   Key
	mu     sync.Mutex
	done   bool
}

// inactiveSpan is handed out while tracing is off so call sites never
// branch on nil. Its Finish returns before touching the mutex.
var inactiveSpan = &ActiveSpan{}

// StartSpan emits a begin event and returns the span guard. Finish the
// guard on every exit path, typically with defer:
//
//	span := tracer.StartSpan("rebuild-index")
//	defer span.Finish()
//
// The deferred Finish fires on early return and on panic unwinding, so a
// begun span cannot be left open through normal use. When the tracer is
// inactive no event is emitted and the returned guard is a no-op.
func (t *Tracer) StartSpan(name Key, args ...Arg) *ActiveSpan {
	if !t.active.Load() {
		return inactiveSpan
	}
	t.emit(t.event(name, PhaseBegin, Args(args)))
	return &ActiveSpan{tracer: t, name: name}
}

// Finish emits the end event for this span. Safe to call multiple times -
// subsequent calls are no-ops. Safe on a nil span.
func (a *ActiveSpan) Finish(args ...Arg) {
	if a == nil || a.tracer == nil {
		return
	}

	a.mu.Lock()
	if a.done {
		a.mu.Unlock()
		return
	}
	a.done = true
	a.mu.Unlock()

	a.tracer.End(a.name, args...)
}

// Name returns the span's event name.
func (a *ActiveSpan) Name() Key {
	if a == nil {
		return ""
	}
	return a.name
}

// TraceFunc brackets fn with begin and end events. The end event is
// emitted even when fn panics; the panic propagates unchanged. While the
// tracer is inactive fn runs directly with no tracing overhead.
func (t *Tracer) TraceFunc(name Key, fn func(), args ...Arg) {
	if !t.active.Load() {
		fn()
		return
	}

	span := t.StartSpan(name, args...)
	defer span.Finish()
	fn()
}

// TraceExpr evaluates fn between begin and end events and returns its
// result unchanged. The end event is emitted even when fn panics; the
// panic propagates unchanged. fn may itself emit nested events.
//
// A package-level function rather than a method because Go methods cannot
// be generic.
func TraceExpr[T any](t *Tracer, name Key, fn func() T, args ...Arg) T {
	if !t.active.Load() {
		return fn()
	}

	span := t.StartSpan(name, args...)
	defer span.Finish()
	return fn()
}
