package chromez

import (
	"runtime"
)

// bufPool is a fixed-capacity free list of byte buffers. It amortizes the
// per-event stack-header read in goid without unbounded growth: get falls
// back to allocating under burst load, put drops buffers once full.
type bufPool struct {
	bufs chan []byte
	size int
}

func newBufPool(capacity, size int) *bufPool {
	return &bufPool{
		bufs: make(chan []byte, capacity),
		size: size,
	}
}

// get retrieves a buffer from the pool or allocates one if the pool is empty.
func (p *bufPool) get() []byte {
	select {
	case b := <-p.bufs:
		return b
	default:
		return make([]byte, p.size)
	}
}

// put returns a buffer to the pool, dropping it when the pool is full.
func (p *bufPool) put(b []byte) {
	if cap(b) < p.size {
		return
	}
	select {
	case p.bufs <- b[:p.size]:
	default:
	}
}

// 64 bytes holds the full "goroutine N [state]:" header.
var stackBufs = newBufPool(runtime.NumCPU()*4, 64)
