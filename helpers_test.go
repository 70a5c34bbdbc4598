package chromez

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// fileEvent mirrors one rendered record for parsing trace files back in
// tests. Args comes back as a plain map since JSON objects are unordered
// on the wire.
type fileEvent struct {
	Name string                 `json:"name"`
	Ph   string                 `json:"ph"`
	Ts   uint64                 `json:"ts"`
	Pid  int                    `json:"pid"`
	Tid  uint64                 `json:"tid"`
	Dur  uint64                 `json:"dur"`
	Args map[string]interface{} `json:"args"`
}

// newFileTracer opens a fresh tracer on a file in a per-test temp dir.
func newFileTracer(t *testing.T) (*Tracer, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trace.json")
	tr := New()
	if err := tr.Open(path); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return tr, path
}

// readEvents parses a finished trace file, failing the test if the file
// is not a valid JSON array.
func readEvents(t *testing.T, path string) []fileEvent {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read trace file: %v", err)
	}

	var events []fileEvent
	if err := json.Unmarshal(data, &events); err != nil {
		t.Fatalf("Trace file is not valid JSON: %v\n%s", err, data)
	}
	return events
}

// unsetenv clears an environment variable for the test and restores the
// previous value afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, os.Getenv(key)) // register restore
	os.Unsetenv(key)
}
