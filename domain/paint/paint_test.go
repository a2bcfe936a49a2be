package paint

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gocv.io/x/gocv"

	"github.com/soocke/marker-paint-go/domain/trajectory"
	"github.com/soocke/marker-paint-go/domain/vision"
)

type segment struct {
	From, To image.Point
	Color    color.RGBA
	Width    int
}

type recordingSink struct{ segs []segment }

func (r *recordingSink) DrawSegment(from, to image.Point, c color.RGBA, width int) {
	r.segs = append(r.segs, segment{from, to, c, width})
}

func TestCompositor_SkipsGaps(t *testing.T) {
	store := trajectory.NewStore(NumChannels, 16)
	buf := store.Buffer(int(Green))
	buf.Push(vision.At(10, 10))
	buf.Push(vision.At(20, 10))
	buf.Push(vision.Absent())
	buf.Push(vision.At(30, 10))
	buf.Push(vision.At(40, 10))

	sink := &recordingSink{}
	n := NewCompositor(0).Render(store, sink)
	want := []segment{
		{image.Pt(40, 10), image.Pt(30, 10), Green.Color(), DefaultStrokeWidth},
		{image.Pt(20, 10), image.Pt(10, 10), Green.Color(), DefaultStrokeWidth},
	}
	if diff := cmp.Diff(want, sink.segs); diff != "" {
		t.Fatalf("unexpected segments (-want +got):\n%s", diff)
	}
	if n != 2 {
		t.Fatalf("expected 2 segments, got %d", n)
	}
}

func TestCompositor_FeedsEverySinkSameCommands(t *testing.T) {
	store := trajectory.NewStore(NumChannels, 16)
	store.AppendPoint(int(Red), image.Pt(1, 1))
	store.AppendPoint(int(Red), image.Pt(5, 5))
	store.AppendPoint(int(Yellow), image.Pt(7, 7))

	a, b := &recordingSink{}, &recordingSink{}
	NewCompositor(3).Render(store, a, b)
	if diff := cmp.Diff(a.segs, b.segs); diff != "" {
		t.Fatalf("sinks diverged (-a +b):\n%s", diff)
	}
	if len(a.segs) != 1 || a.segs[0].Color != Red.Color() || a.segs[0].Width != 3 {
		t.Fatalf("expected single red width-3 segment, got %+v", a.segs)
	}
}

func TestCanvas_StartsWhiteAndClears(t *testing.T) {
	c := NewCanvas(0, 0)
	defer c.Close()
	w, h := c.Size()
	if w != DefaultCanvasWidth || h != DefaultCanvasHeight {
		t.Fatalf("unexpected canvas size %dx%d", w, h)
	}
	if !allWhite(c.Mat()) {
		t.Fatalf("new canvas must be white")
	}
	c.DrawSegment(image.Pt(10, 10), image.Pt(100, 10), Blue.Color(), 2)
	if allWhite(c.Mat()) {
		t.Fatalf("segment not drawn")
	}
	mat := c.Mat()
	if px := mat.GetVecbAt(10, 50); px[0] != 255 || px[1] != 0 || px[2] != 0 {
		t.Fatalf("expected BGR blue on stroke, got %v", px)
	}
	c.Clear()
	if !allWhite(c.Mat()) {
		t.Fatalf("canvas not white after clear")
	}
}

func TestMatSink_IgnoresEmptyMat(t *testing.T) {
	m := gocv.NewMat()
	defer m.Close()
	MatSink{Mat: &m}.DrawSegment(image.Pt(0, 0), image.Pt(5, 5), Red.Color(), 2)
	MatSink{}.DrawSegment(image.Pt(0, 0), image.Pt(5, 5), Red.Color(), 2)
}

func TestChannel_Names(t *testing.T) {
	if Yellow.String() != "Yellow" || Channel(7).String() != "unknown" {
		t.Fatalf("unexpected names %q %q", Yellow.String(), Channel(7).String())
	}
	if (Channel(-1)).Color() != (color.RGBA{}) {
		t.Fatalf("unknown channel should be black")
	}
}

func allWhite(m gocv.Mat) bool {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(m, &gray, gocv.ColorBGRToGray)
	inv := gocv.NewMat()
	defer inv.Close()
	gocv.BitwiseNot(gray, &inv)
	return gocv.CountNonZero(inv) == 0
}
