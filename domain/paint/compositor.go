package paint

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/soocke/marker-paint-go/domain/trajectory"
)

// DefaultStrokeWidth is the line thickness used for ink segments.
const DefaultStrokeWidth = 2

// StrokeSink receives stroke segments. The live frame and the persistent
// canvas are independent sinks fed with the same commands.
type StrokeSink interface {
	DrawSegment(from, to image.Point, c color.RGBA, width int)
}

// MatSink draws segments straight onto a BGR Mat.
type MatSink struct {
	Mat *gocv.Mat
}

func (s MatSink) DrawSegment(from, to image.Point, c color.RGBA, width int) {
	if s.Mat == nil || s.Mat.Empty() {
		return
	}
	gocv.Line(s.Mat, from, to, c, width)
}

// Compositor renders buffered trajectories as line segments.
type Compositor struct {
	StrokeWidth int
}

// NewCompositor returns a compositor drawing with the given width (default when <= 0).
func NewCompositor(width int) *Compositor {
	if width <= 0 {
		width = DefaultStrokeWidth
	}
	return &Compositor{StrokeWidth: width}
}

// Render draws, for each channel, a segment between every adjacent pair of
// buffer entries where both are points. Gap markers break the stroke.
// It returns the number of segments issued per sink.
func (c *Compositor) Render(store *trajectory.Store, sinks ...StrokeSink) int {
	if store == nil || len(sinks) == 0 {
		return 0
	}
	width := c.StrokeWidth
	if width <= 0 {
		width = DefaultStrokeWidth
	}
	segments := 0
	for ch := 0; ch < store.Channels(); ch++ {
		buf := store.Buffer(ch)
		col := Channel(ch).Color()
		for j := 1; j < buf.Len(); j++ {
			prev, cur := buf.At(j-1), buf.At(j)
			if !prev.Valid || !cur.Valid {
				continue
			}
			for _, s := range sinks {
				s.DrawSegment(prev.Point, cur.Point, col, width)
			}
			segments++
		}
	}
	return segments
}
