package trajectory

import "github.com/soocke/marker-paint-go/domain/vision"

// DefaultCapacity is the number of points retained per channel.
const DefaultCapacity = 1024

// Buffer is a fixed-size circular buffer of centroids ordered newest first.
// Pushing onto a full buffer overwrites the oldest entry. The backing array is
// allocated once.
type Buffer struct {
	items []vision.Centroid
	head  int // index of the newest entry
	count int
}

// NewBuffer returns an empty buffer holding at most capacity entries.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Buffer{items: make([]vision.Centroid, capacity)}
}

// Push inserts c at the front. When the buffer is full the oldest entry is evicted.
func (b *Buffer) Push(c vision.Centroid) {
	n := len(b.items)
	// when full, the slot before head holds the oldest entry
	b.head = (b.head - 1 + n) % n
	b.items[b.head] = c
	if b.count < n {
		b.count++
	}
}

// At returns the i-th entry, 0 being the most recent. Out of range returns an absent centroid.
func (b *Buffer) At(i int) vision.Centroid {
	if i < 0 || i >= b.count {
		return vision.Absent()
	}
	return b.items[(b.head+i)%len(b.items)]
}

// Front returns the most recent entry and whether one exists.
func (b *Buffer) Front() (vision.Centroid, bool) {
	if b.count == 0 {
		return vision.Absent(), false
	}
	return b.items[b.head], true
}

func (b *Buffer) Len() int { return b.count }

func (b *Buffer) Cap() int { return len(b.items) }

// Reset empties the buffer without releasing its storage.
func (b *Buffer) Reset() {
	clear(b.items)
	b.head = 0
	b.count = 0
}

// Snapshot copies the entries newest first.
func (b *Buffer) Snapshot() []vision.Centroid {
	out := make([]vision.Centroid, b.count)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}
