package chromez

import (
	"time"

	"github.com/sirupsen/logrus"
)

// std is the process-wide default tracer behind the package-level API.
// Open and Close are its only mutators; there is no implicit finalization
// at process exit, hosts must call Close themselves.
var std = New()

// StandardTracer returns the default tracer used by the package-level
// functions, for APIs that take a *Tracer such as TraceExpr.
func StandardTracer() *Tracer {
	return std
}

// Open opens the default trace file. See Tracer.Open.
func Open(path string) error {
	return std.Open(path)
}

// Close closes the default trace file. See Tracer.Close.
func Close() error {
	return std.Close()
}

// SetEnabled toggles the default tracer at runtime. See Tracer.SetEnabled.
func SetEnabled(enabled bool) {
	std.SetEnabled(enabled)
}

// SetLogger replaces the default tracer's logger. See Tracer.SetLogger.
func SetLogger(log logrus.FieldLogger) {
	std.SetLogger(log)
}

// SetProcessName sets the default tracer's process_name metadata.
// See Tracer.SetProcessName.
func SetProcessName(name string) {
	std.SetProcessName(name)
}

// Path returns the path of the default trace file, empty while closed.
func Path() string {
	return std.Path()
}

// DroppedWrites returns the default tracer's dropped-event count.
func DroppedWrites() uint64 {
	return std.DroppedWrites()
}

// Begin emits a duration-begin event on the default tracer.
func Begin(name Key, args ...Arg) {
	std.Begin(name, args...)
}

// End emits a duration-end event on the default tracer.
func End(name Key, args ...Arg) {
	std.End(name, args...)
}

// Instant emits a point-in-time event on the default tracer.
func Instant(name Key, args ...Arg) {
	std.Instant(name, args...)
}

// Complete emits a self-contained slice on the default tracer.
func Complete(name Key, start time.Time, args ...Arg) {
	std.Complete(name, start, args...)
}

// StartSpan starts a span guard on the default tracer. See Tracer.StartSpan.
func StartSpan(name Key, args ...Arg) *ActiveSpan {
	return std.StartSpan(name, args...)
}

// TraceFunc brackets fn with events on the default tracer. See Tracer.TraceFunc.
func TraceFunc(name Key, fn func(), args ...Arg) {
	std.TraceFunc(name, fn, args...)
}
