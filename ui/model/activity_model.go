package model

import "time"

// Activity tracks how long the marker has been drawing. A stroke starts when
// the marker is first seen and ends on the first tick without it. The zero
// value is ready to use.
type Activity struct {
	drawing     bool
	strokeStart time.Time
	lastStroke  time.Duration
	drawn       time.Duration
	strokes     int
}

func NewActivity() *Activity { return &Activity{} }

// OnTick advances the model with the latest detection state.
func (m *Activity) OnTick(detected bool, now time.Time) {
	if m == nil {
		return
	}
	switch {
	case detected && !m.drawing:
		m.drawing = true
		m.strokeStart = now
		m.lastStroke = 0
		m.strokes++
	case detected:
		m.lastStroke = now.Sub(m.strokeStart)
	case m.drawing:
		m.lastStroke = now.Sub(m.strokeStart)
		m.drawn += m.lastStroke
		m.drawing = false
	}
}

// Values returns the current (or last) stroke duration, the total drawing
// time including an ongoing stroke, and the number of strokes started.
func (m *Activity) Values() (stroke, total time.Duration, strokes int) {
	if m == nil {
		return 0, 0, 0
	}
	total = m.drawn
	if m.drawing {
		total += m.lastStroke
	}
	return m.lastStroke, total, m.strokes
}

// Reset forgets all strokes, used when the canvas is cleared.
func (m *Activity) Reset() {
	if m == nil {
		return
	}
	*m = Activity{}
}
