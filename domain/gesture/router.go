package gesture

import (
	"fmt"
	"image"

	"github.com/soocke/marker-paint-go/domain/paint"
	"github.com/soocke/marker-paint-go/domain/vision"
)

// Kind enumerates router outcomes.
type Kind int

const (
	None Kind = iota
	ClearAll
	AppendPoint
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case ClearAll:
		return "clear"
	case AppendPoint:
		return "append"
	default:
		return "unknown"
	}
}

// Command is the action derived from one frame's centroid.
type Command struct {
	Kind    Kind
	Channel paint.Channel
	Point   image.Point
}

func (c Command) String() string {
	if c.Kind == AppendPoint {
		return fmt.Sprintf("append(%s,%v)", c.Channel, c.Point)
	}
	return c.Kind.String()
}

// Toolbar is the strip at the top of the frame that acts as buttons rather
// than drawing surface. All bounds are inclusive.
type Toolbar struct {
	MaxY      int
	ClearMinX int
	ClearMaxX int
}

// DefaultToolbar matches the on-screen clear button.
func DefaultToolbar() Toolbar {
	return Toolbar{MaxY: 65, ClearMinX: 40, ClearMaxX: 140}
}

// InStrip reports whether p lies in the toolbar strip.
func (t Toolbar) InStrip(p image.Point) bool { return p.Y <= t.MaxY }

// OnClear reports whether p hits the clear button.
func (t Toolbar) OnClear(p image.Point) bool {
	return t.InStrip(p) && p.X >= t.ClearMinX && p.X <= t.ClearMaxX
}

// ClearButton returns the button area for overlay drawing.
func (t Toolbar) ClearButton() image.Rectangle {
	return image.Rect(t.ClearMinX, 1, t.ClearMaxX, t.MaxY)
}

// Router classifies centroids. It holds no per-frame state.
type Router struct {
	Toolbar Toolbar
}

func NewRouter(t Toolbar) Router { return Router{Toolbar: t} }

// Route maps a centroid and the active channel to a command. Points in the
// toolbar strip but off the clear button are ignored.
func (r Router) Route(c vision.Centroid, active paint.Channel) Command {
	if !c.Valid {
		return Command{Kind: None}
	}
	if r.Toolbar.InStrip(c.Point) {
		if r.Toolbar.OnClear(c.Point) {
			return Command{Kind: ClearAll}
		}
		return Command{Kind: None}
	}
	return Command{Kind: AppendPoint, Channel: active, Point: c.Point}
}
