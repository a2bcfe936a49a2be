package gesture

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/soocke/marker-paint-go/domain/paint"
	"github.com/soocke/marker-paint-go/domain/vision"
)

func TestRoute_ClearButton(t *testing.T) {
	r := NewRouter(DefaultToolbar())
	got := r.Route(vision.At(90, 30), paint.Red)
	if got.Kind != ClearAll {
		t.Fatalf("expected clear, got %v", got)
	}
}

func TestRoute_AppendOutsideToolbar(t *testing.T) {
	r := NewRouter(DefaultToolbar())
	got := r.Route(vision.At(90, 200), paint.Channel(2))
	want := Command{Kind: AppendPoint, Channel: paint.Red, Point: image.Pt(90, 200)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected command (-want +got):\n%s", diff)
	}
}

func TestRoute_Boundaries(t *testing.T) {
	r := NewRouter(DefaultToolbar())
	cases := []struct {
		p    image.Point
		kind Kind
	}{
		{image.Pt(40, 65), ClearAll},
		{image.Pt(140, 0), ClearAll},
		{image.Pt(39, 30), None},
		{image.Pt(141, 65), None},
		{image.Pt(90, 66), AppendPoint},
	}
	for _, tc := range cases {
		if got := r.Route(vision.At(tc.p.X, tc.p.Y), paint.Blue); got.Kind != tc.kind {
			t.Fatalf("point %v: expected %v, got %v", tc.p, tc.kind, got.Kind)
		}
	}
}

func TestRoute_AbsentCentroid(t *testing.T) {
	r := NewRouter(DefaultToolbar())
	if got := r.Route(vision.Absent(), paint.Green); got.Kind != None {
		t.Fatalf("expected none, got %v", got)
	}
}
