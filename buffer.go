package spannify

import (
	"bytes"
	"sync"
)

// Buffer is a growable in-memory sink.
// Safe for concurrent use by multiple goroutines.
//
// A Spanner already serializes its own writes, but a Buffer is often shared
// further - read by a test while another goroutine still traces - so it
// carries its own lock rather than relying on the caller's discipline.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write appends p to the buffer. It implements io.Writer and never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Bytes returns a copy of the accumulated output. The copy is safe to
// modify and is not affected by later writes.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]byte, b.buf.Len())
	copy(out, b.buf.Bytes())
	return out
}

// String returns the accumulated output as a string.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

// Reset discards all accumulated output.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}
