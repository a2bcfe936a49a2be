package paint

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Default canvas dimensions in pixels.
const (
	DefaultCanvasWidth  = 636
	DefaultCanvasHeight = 471
)

var canvasBackground = gocv.NewScalar(255, 255, 255, 0)

// Canvas is the persistent white drawing surface that accumulates strokes
// until cleared.
type Canvas struct {
	mat gocv.Mat
}

// NewCanvas allocates a white BGR canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = DefaultCanvasWidth
	}
	if height <= 0 {
		height = DefaultCanvasHeight
	}
	return &Canvas{mat: gocv.NewMatWithSizeFromScalar(canvasBackground, height, width, gocv.MatTypeCV8UC3)}
}

// DrawSegment implements StrokeSink. Segments outside the canvas are clipped.
func (c *Canvas) DrawSegment(from, to image.Point, col color.RGBA, width int) {
	gocv.Line(&c.mat, from, to, col, width)
}

// Clear resets every pixel to white.
func (c *Canvas) Clear() {
	c.mat.SetTo(canvasBackground)
}

// Mat exposes the canvas pixels for display. Callers must not close it.
func (c *Canvas) Mat() gocv.Mat { return c.mat }

// Size returns width and height.
func (c *Canvas) Size() (int, int) { return c.mat.Cols(), c.mat.Rows() }

func (c *Canvas) Close() error {
	if c == nil {
		return nil
	}
	return c.mat.Close()
}
