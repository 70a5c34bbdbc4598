// Package chromez writes trace files in Chrome's trace_event JSON format.
//
// chromez lets a program mark the begin/end of logical spans, named
// instants, and timed expressions, from any goroutine, and serializes
// them into a single trace file that chrome://tracing, Perfetto, and
// other trace-viewer tools can render as a timeline.
//
// Core Components:
//   - Tracer: owns the trace file lifecycle and the write lock.
//   - TraceEvent: one trace_event record and its JSON rendering.
//   - ActiveSpan: guard object pairing begin with end on every exit path.
//
// Basic Usage:
//
//	if err := chromez.Open("trace.json"); err != nil {
//		log.Fatal(err)
//	}
//	defer chromez.Close()
//
//	// Bracket a region of work.
//	span := chromez.StartSpan("load-index", chromez.Arg{Key: "shard", Value: 3})
//	defer span.Finish()
//
//	// Or time a single expression.
//	n := chromez.TraceExpr(chromez.StandardTracer(), "count-rows", countRows)
//
// Thread Safety:
//
// All Tracer operations are safe for concurrent use by multiple
// goroutines. Events emitted by one goroutine appear in the file in
// emission order; events from different goroutines interleave in lock
// acquisition order. Each event carries the emitting goroutine's id as
// its tid, so viewers group and order rows per goroutine.
//
// A span begun on one goroutine and finished on another gets mismatched
// tids and will not pair up in viewers. This is unsupported; keep each
// span on the goroutine that started it.
//
// When Tracing Is Off:
//
// Every operation is a cheap no-op while no trace file is open or while
// the tracer is disabled: no clock read, no event construction, no lock
// acquisition. Call sites never need to check whether tracing is active.
//
// Known Limitation:
//
// The closing "]" of the JSON array is written by Close. A process that
// crashes before Close leaves a malformed file; there is no recovery.
package chromez

// Key represents an event name.
type Key = string
