package capture

import (
	"fmt"
	"log/slog"

	"gocv.io/x/gocv"
)

// Camera reads frames from a video device or a video file through OpenCV.
type Camera struct {
	DeviceID int
	Path     string // when set, read from this file instead of the device
	Width    int
	Height   int

	logger *slog.Logger
	vc     *gocv.VideoCapture
}

// NewCamera returns a source for capture device id.
func NewCamera(id, width, height int, logger *slog.Logger) *Camera {
	return &Camera{DeviceID: id, Width: width, Height: height, logger: logger}
}

// NewVideoFile returns a source replaying the video at path.
func NewVideoFile(path string, logger *slog.Logger) *Camera {
	return &Camera{Path: path, logger: logger}
}

func (c *Camera) Open() error {
	if c.vc != nil {
		return nil
	}
	var (
		vc  *gocv.VideoCapture
		err error
	)
	if c.Path != "" {
		vc, err = gocv.VideoCaptureFile(c.Path)
	} else {
		vc, err = gocv.VideoCaptureDevice(c.DeviceID)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, c.name(), err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return fmt.Errorf("%w: %s not opened", ErrSourceUnavailable, c.name())
	}
	if c.Path == "" {
		if c.Width > 0 {
			vc.Set(gocv.VideoCaptureFrameWidth, float64(c.Width))
		}
		if c.Height > 0 {
			vc.Set(gocv.VideoCaptureFrameHeight, float64(c.Height))
		}
	}
	c.vc = vc
	if c.logger != nil {
		c.logger.Info("video source opened", "source", c.name())
	}
	return nil
}

// Read returns ErrEndOfStream when the device stops delivering frames or the
// file is exhausted.
func (c *Camera) Read(dst *gocv.Mat) error {
	if c.vc == nil {
		return ErrEndOfStream
	}
	if ok := c.vc.Read(dst); !ok || dst.Empty() {
		return ErrEndOfStream
	}
	return nil
}

func (c *Camera) Close() error {
	if c.vc == nil {
		return nil
	}
	err := c.vc.Close()
	c.vc = nil
	if c.logger != nil {
		c.logger.Info("video source released", "source", c.name())
	}
	return err
}

func (c *Camera) name() string {
	if c.Path != "" {
		return c.Path
	}
	return fmt.Sprintf("device:%d", c.DeviceID)
}
