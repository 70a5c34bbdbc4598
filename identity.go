package chromez

import (
	"bytes"
	"os"
	"runtime"
	"strconv"
)

// pid is constant for the run; read once.
var pid = os.Getpid()

var goroutineHeader = []byte("goroutine ")

// goid returns the calling goroutine's id.
//
// The runtime does not expose goroutine ids, but the trace format needs a
// numeric tid that is stable for each goroutine's lifetime so begin/end
// pairs line up on one viewer row. The id is parsed from the first line of
// runtime.Stack ("goroutine 123 [running]:"). Returns 0 when the header
// cannot be parsed; the trace stays well-formed, events just share a row.
func goid() uint64 {
	buf := stackBufs.get()
	defer stackBufs.put(buf)

	header := buf[:runtime.Stack(buf, false)]
	if !bytes.HasPrefix(header, goroutineHeader) {
		return 0
	}
	header = header[len(goroutineHeader):]
	end := bytes.IndexByte(header, ' ')
	if end <= 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(header[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
