package capture

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func fakeClock(start time.Time) (func() time.Time, func(time.Duration)) {
	now := start
	return func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) }
}

func TestStatsRecorder_Summary(t *testing.T) {
	s := NewStatsRecorder()
	clock, advance := fakeClock(time.Unix(100, 0))
	s.now = clock

	s.Observe(10*time.Millisecond, true)
	advance(time.Second)
	s.Observe(20*time.Millisecond, false)
	advance(time.Second)
	s.Observe(30*time.Millisecond, true)

	st := s.Stats()
	if st.Frames != 3 || st.Detections != 2 || st.Misses != 1 {
		t.Fatalf("unexpected counters: %+v", st)
	}
	if d := st.MeanStep - 20*time.Millisecond; d > time.Microsecond || d < -time.Microsecond {
		t.Fatalf("expected mean 20ms, got %v", st.MeanStep)
	}
	if d := st.StdDevStep - 10*time.Millisecond; d > time.Microsecond || d < -time.Microsecond {
		t.Fatalf("expected stddev 10ms, got %v", st.StdDevStep)
	}
	if st.FPS < 0.99 || st.FPS > 1.01 {
		t.Fatalf("expected ~1 fps, got %v", st.FPS)
	}
}

func TestStatsRecorder_EmptyAndNil(t *testing.T) {
	var nilRec *StatsRecorder
	nilRec.Observe(time.Millisecond, true)
	if st := nilRec.Stats(); st.Frames != 0 {
		t.Fatalf("nil recorder should report nothing")
	}
	if st := NewStatsRecorder().Stats(); st.Frames != 0 || st.FPS != 0 {
		t.Fatalf("empty recorder should report zeros, got %+v", st)
	}
}

func TestStatsRecorder_WindowIsBounded(t *testing.T) {
	s := NewStatsRecorder()
	for i := 0; i < statsWindow*2; i++ {
		s.Observe(time.Millisecond, true)
	}
	if len(s.steps) != statsWindow {
		t.Fatalf("expected %d samples, got %d", statsWindow, len(s.steps))
	}
}

func TestStatsRecorder_MaybeLogThrottles(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := NewStatsRecorder()
	clock, advance := fakeClock(time.Unix(0, 0))
	s.now = clock

	s.Observe(time.Millisecond, true)
	s.MaybeLog(logger)
	if buf.Len() != 0 {
		t.Fatalf("should not log before interval")
	}
	advance(statsLogInterval)
	s.MaybeLog(logger)
	s.MaybeLog(logger)
	if n := strings.Count(buf.String(), "loop.stats"); n != 1 {
		t.Fatalf("expected one stats record, got %d", n)
	}
}
