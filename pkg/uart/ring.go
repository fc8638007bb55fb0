package uart

import "sync"

// DefaultRxBufferSize is the receive ring buffer capacity.
const DefaultRxBufferSize = 4096

// ringBuffer is a bounded byte FIFO. Put stores only what fits; the caller
// waits for Get to free space. Reset discards the contents and marks a line
// boundary that the next Get reports once.
type ringBuffer struct {
	mu        sync.Mutex
	buf       []byte
	head      int
	size      int
	reset     bool
	discarded uint64
}

func newRingBuffer(capacity int) *ringBuffer {
	return &ringBuffer{buf: make([]byte, capacity)}
}

// Put appends as much of p as fits and returns the number of bytes stored.
func (r *ringBuffer) Put(p []byte) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := min(len(p), len(r.buf)-r.size)
	for i := 0; i < n; i++ {
		r.buf[(r.head+r.size)%len(r.buf)] = p[i]
		r.size++
	}
	return n
}

// Get moves up to len(p) bytes into p. A pending line boundary is reported
// first, with no bytes, and cleared.
func (r *ringBuffer) Get(p []byte) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.reset {
		r.reset = false
		return 0, true
	}
	n := 0
	for n < len(p) && r.size > 0 {
		p[n] = r.buf[r.head]
		r.head = (r.head + 1) % len(r.buf)
		r.size--
		n++
	}
	return n, false
}

// Reset drops the queued bytes and marks a line boundary.
func (r *ringBuffer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.discarded += uint64(r.size)
	r.head, r.size = 0, 0
	r.reset = true
}

// ResetPending reports whether a boundary has not been read yet.
func (r *ringBuffer) ResetPending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reset
}

// Len returns the number of queued bytes.
func (r *ringBuffer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// Discarded returns the number of bytes dropped by Reset.
func (r *ringBuffer) Discarded() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.discarded
}
