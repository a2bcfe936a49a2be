package model

import (
	"testing"
	"time"
)

func TestActivity_StrokeLifecycle(t *testing.T) {
	m := NewActivity()
	base := time.Unix(0, 0)

	m.OnTick(true, base)
	m.OnTick(true, base.Add(2*time.Second))
	stroke, total, n := m.Values()
	if stroke != 2*time.Second || total != 2*time.Second || n != 1 {
		t.Fatalf("ongoing stroke: stroke=%v total=%v n=%d", stroke, total, n)
	}

	m.OnTick(false, base.Add(3*time.Second))
	m.OnTick(false, base.Add(9*time.Second))
	stroke, total, n = m.Values()
	if stroke != 3*time.Second || total != 3*time.Second || n != 1 {
		t.Fatalf("idle ticks should not change totals: stroke=%v total=%v n=%d", stroke, total, n)
	}

	m.OnTick(true, base.Add(10*time.Second))
	m.OnTick(true, base.Add(11*time.Second))
	stroke, total, n = m.Values()
	if stroke != time.Second || total != 4*time.Second || n != 2 {
		t.Fatalf("second stroke: stroke=%v total=%v n=%d", stroke, total, n)
	}

	m.Reset()
	if s, tot, n := m.Values(); s != 0 || tot != 0 || n != 0 {
		t.Fatalf("reset: %v %v %d", s, tot, n)
	}
}

func TestActivity_NilSafe(t *testing.T) {
	var m *Activity
	m.OnTick(true, time.Now())
	m.Reset()
	if _, _, n := m.Values(); n != 0 {
		t.Fatalf("nil model should report zero")
	}
}
