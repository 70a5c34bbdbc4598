package chromez

import (
	"bufio"
	"os"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// sink owns the trace file and the JSON-array framing around its events.
// All file access happens under mu, lifecycle transitions included; the
// critical section of an emit is the delimiter and record write alone.
//
//nolint:govet // Field order optimized for readability over memory
type sink struct {
	mu         sync.Mutex
	file       *os.File
	w          *bufio.Writer
	path       string
	open       bool
	wroteEvent bool
	dropped    atomic.Uint64
	log        logrus.FieldLogger
}

// openLocked creates or truncates the trace file and writes the array
// opening token. Caller must hold mu.
func (s *sink) openLocked(path string) error {
	if s.open {
		return ErrAlreadyOpen
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrapf(err, "chromez: open trace file %q", path)
	}

	w := bufio.NewWriter(file)
	if err := w.WriteByte('['); err != nil {
		file.Close() //nolint:errcheck // open already failed
		return errors.Wrapf(err, "chromez: write array opening to %q", path)
	}

	s.file = file
	s.w = w
	s.path = path
	s.open = true
	s.wroteEvent = false
	return nil
}

// closeLocked writes the array closing token, flushes, and releases the
// file. Closing a closed sink is a no-op. Caller must hold mu.
func (s *sink) closeLocked() error {
	if !s.open {
		return nil
	}

	_, werr := s.w.WriteString("\n]\n")
	ferr := s.w.Flush()
	cerr := s.file.Close()

	path := s.path
	s.file = nil
	s.w = nil
	s.path = ""
	s.open = false
	s.wroteEvent = false

	switch {
	case werr != nil:
		return errors.Wrapf(werr, "chromez: write array closing to %q", path)
	case ferr != nil:
		return errors.Wrapf(ferr, "chromez: flush trace file %q", path)
	case cerr != nil:
		return errors.Wrapf(cerr, "chromez: close trace file %q", path)
	}
	return nil
}

// write appends one rendered event record. Never surfaces an error:
// instrumentation must not destabilize the host, so a failed write is
// counted, logged, and the event dropped. Writes never interleave
// mid-record across goroutines.
func (s *sink) write(rendered []byte) {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return
	}

	delim := ",\n"
	if !s.wroteEvent {
		delim = "\n"
		s.wroteEvent = true
	}
	_, err := s.w.WriteString(delim)
	if err == nil {
		_, err = s.w.Write(rendered)
	}
	path := s.path
	s.mu.Unlock()

	if err != nil {
		s.dropped.Add(1)
		s.log.WithError(err).WithField("path", path).Error("Dropping trace event after write failure")
	}
}
