package trajectory

import (
	"image"

	"github.com/soocke/marker-paint-go/domain/vision"
)

// Store keeps one bounded trajectory buffer per color channel. It is owned by
// the single loop goroutine and is not safe for concurrent use.
type Store struct {
	buffers []*Buffer
}

// NewStore creates channels buffers of the given capacity.
func NewStore(channels, capacity int) *Store {
	if channels < 1 {
		channels = 1
	}
	s := &Store{buffers: make([]*Buffer, channels)}
	for i := range s.buffers {
		s.buffers[i] = NewBuffer(capacity)
	}
	return s
}

// Channels returns the number of buffers.
func (s *Store) Channels() int { return len(s.buffers) }

// Buffer returns the buffer for channel ch, or an empty buffer for an unknown channel.
func (s *Store) Buffer(ch int) *Buffer {
	if ch < 0 || ch >= len(s.buffers) {
		return &Buffer{items: make([]vision.Centroid, 1)}
	}
	return s.buffers[ch]
}

// AppendPoint records p as the most recent point of channel ch.
func (s *Store) AppendPoint(ch int, p image.Point) {
	if ch < 0 || ch >= len(s.buffers) {
		return
	}
	s.buffers[ch].Push(vision.Centroid{Point: p, Valid: true})
}

// MarkGap inserts a gap marker into channel ch so the next point does not
// connect to the previous one. Empty buffers and consecutive gaps are left alone.
func (s *Store) MarkGap(ch int) bool {
	if ch < 0 || ch >= len(s.buffers) {
		return false
	}
	b := s.buffers[ch]
	front, ok := b.Front()
	if !ok || !front.Valid {
		return false
	}
	b.Push(vision.Absent())
	return true
}

// ClearAll empties every buffer.
func (s *Store) ClearAll() {
	for _, b := range s.buffers {
		b.Reset()
	}
}

// Total returns the number of entries across all channels.
func (s *Store) Total() int {
	n := 0
	for _, b := range s.buffers {
		n += b.Len()
	}
	return n
}
