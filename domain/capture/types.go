package capture

import (
	"errors"
	"time"

	"gocv.io/x/gocv"
)

var (
	// ErrEndOfStream is returned by Read once the source has no more frames.
	ErrEndOfStream = errors.New("capture: end of stream")
	// ErrSourceUnavailable is returned by Open when the device cannot be acquired.
	ErrSourceUnavailable = errors.New("capture: source unavailable")
)

// FrameSource produces BGR frames. It is an exclusive resource: Open once,
// Read until ErrEndOfStream, then Close.
type FrameSource interface {
	Open() error
	// Read blocks until the next frame is written into dst.
	Read(dst *gocv.Mat) error
	Close() error
}

// CaptureStats summarises loop behaviour for instrumentation.
type CaptureStats struct {
	Frames         uint64
	Detections     uint64
	Misses         uint64
	MeanStep       time.Duration
	StdDevStep     time.Duration
	FPS            float64
	LastFrame      time.Time
	LatestFrameAge time.Duration
}
