package chromez

import (
	"testing"
)

func TestBufPoolAllocatesWhenEmpty(t *testing.T) {
	p := newBufPool(2, 16)

	b := p.get()
	if len(b) != 16 {
		t.Errorf("Expected 16-byte buffer, got %d", len(b))
	}
}

func TestBufPoolReusesBuffers(t *testing.T) {
	p := newBufPool(1, 16)

	b := p.get()
	b[0] = 0xAA
	p.put(b)

	c := p.get()
	if c[0] != 0xAA {
		t.Error("Expected the pooled buffer back")
	}
}

func TestBufPoolDropsWhenFull(t *testing.T) {
	p := newBufPool(1, 16)

	// Second put must not block.
	p.put(make([]byte, 16))
	p.put(make([]byte, 16))
}

func TestBufPoolRejectsUndersizedBuffers(t *testing.T) {
	p := newBufPool(1, 16)

	p.put(make([]byte, 4))

	b := p.get()
	if len(b) != 16 {
		t.Errorf("Expected a fresh full-size buffer, got %d bytes", len(b))
	}
}
