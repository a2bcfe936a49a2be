package capture

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/stat"
)

const (
	statsLogInterval = 5 * time.Second
	statsWindow      = 120
)

// StatsRecorder accumulates per-frame counters and a rolling window of step
// durations. It is used from the loop goroutine only.
type StatsRecorder struct {
	frames     uint64
	detections uint64
	misses     uint64
	steps      []float64 // seconds, ring of statsWindow samples
	next       int
	firstFrame time.Time
	lastFrame  time.Time
	lastLog    time.Time
	now        func() time.Time
}

// NewStatsRecorder returns an empty recorder.
func NewStatsRecorder() *StatsRecorder {
	return &StatsRecorder{steps: make([]float64, 0, statsWindow), now: time.Now}
}

// Observe records one processed frame.
func (s *StatsRecorder) Observe(step time.Duration, detected bool) {
	if s == nil {
		return
	}
	now := s.now()
	if s.frames == 0 {
		s.firstFrame = now
		s.lastLog = now
	}
	s.frames++
	s.lastFrame = now
	if detected {
		s.detections++
	} else {
		s.misses++
	}
	sec := step.Seconds()
	if len(s.steps) < statsWindow {
		s.steps = append(s.steps, sec)
	} else {
		s.steps[s.next] = sec
		s.next = (s.next + 1) % statsWindow
	}
}

// Stats summarises the recorded frames.
func (s *StatsRecorder) Stats() CaptureStats {
	if s == nil || s.frames == 0 {
		return CaptureStats{}
	}
	out := CaptureStats{
		Frames:     s.frames,
		Detections: s.detections,
		Misses:     s.misses,
		LastFrame:  s.lastFrame,
	}
	out.LatestFrameAge = s.now().Sub(s.lastFrame)
	out.MeanStep = seconds(stat.Mean(s.steps, nil))
	if len(s.steps) > 1 {
		out.StdDevStep = seconds(stat.StdDev(s.steps, nil))
	}
	if elapsed := s.lastFrame.Sub(s.firstFrame).Seconds(); elapsed > 0 {
		out.FPS = float64(s.frames-1) / elapsed
	}
	return out
}

// MaybeLog emits a loop.stats record at most once per interval.
func (s *StatsRecorder) MaybeLog(logger *slog.Logger) {
	if s == nil || logger == nil || s.frames == 0 {
		return
	}
	if s.now().Sub(s.lastLog) < statsLogInterval {
		return
	}
	s.lastLog = s.now()
	st := s.Stats()
	logger.Info("loop.stats",
		"frames", st.Frames,
		"detections", st.Detections,
		"misses", st.Misses,
		"fps", st.FPS,
		"mean_step", st.MeanStep,
		"stddev_step", st.StdDevStep,
	)
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
