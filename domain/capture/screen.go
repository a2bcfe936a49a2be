package capture

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/vova616/screenshot"
	"gocv.io/x/gocv"
)

// Screen captures a screen rectangle as a frame stream, useful when the marker
// is filmed by another application. It never ends on its own.
type Screen struct {
	Rect     image.Rectangle // empty means the full screen
	Interval time.Duration   // minimum time between frames

	logger *slog.Logger
	opened bool
	last   time.Time
	grab   func(image.Rectangle) (*image.RGBA, error)
	bounds func() (image.Rectangle, error)
	sleep  func(time.Duration)
}

// NewScreen returns a screen source for rect paced at interval.
func NewScreen(rect image.Rectangle, interval time.Duration, logger *slog.Logger) *Screen {
	return &Screen{
		Rect:     rect,
		Interval: interval,
		logger:   logger,
		grab:     screenshot.CaptureRect,
		bounds:   screenshot.ScreenRect,
		sleep:    time.Sleep,
	}
}

func (s *Screen) Open() error {
	screen, err := s.bounds()
	if err != nil {
		return fmt.Errorf("%w: screen: %v", ErrSourceUnavailable, err)
	}
	if s.Rect.Empty() {
		s.Rect = screen
	} else {
		s.Rect = s.Rect.Intersect(screen)
	}
	if s.Rect.Empty() {
		return fmt.Errorf("%w: selection outside screen %v", ErrSourceUnavailable, screen)
	}
	s.opened = true
	if s.logger != nil {
		s.logger.Info("screen source opened", "rect", s.Rect.String())
	}
	return nil
}

// Read grabs the rectangle and converts it to a BGR frame. A failed grab ends
// the stream.
func (s *Screen) Read(dst *gocv.Mat) error {
	if !s.opened {
		return ErrEndOfStream
	}
	if s.Interval > 0 && !s.last.IsZero() {
		if wait := s.Interval - time.Since(s.last); wait > 0 {
			s.sleep(wait)
		}
	}
	s.last = time.Now()
	img, err := s.grab(s.Rect)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEndOfStream, err)
	}
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return fmt.Errorf("%w: convert: %v", ErrEndOfStream, err)
	}
	defer mat.Close()
	mat.CopyTo(dst)
	return nil
}

func (s *Screen) Close() error {
	if s.opened && s.logger != nil {
		s.logger.Info("screen source released")
	}
	s.opened = false
	return nil
}
