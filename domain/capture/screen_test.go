package capture

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"gocv.io/x/gocv"
)

func testScreen(grab func(image.Rectangle) (*image.RGBA, error)) *Screen {
	s := NewScreen(image.Rect(10, 10, 30, 20), 0, nil)
	s.grab = grab
	s.bounds = func() (image.Rectangle, error) { return image.Rect(0, 0, 100, 100), nil }
	s.sleep = func(time.Duration) {}
	return s
}

func TestScreen_ReadConvertsToBGR(t *testing.T) {
	s := testScreen(func(r image.Rectangle) (*image.RGBA, error) {
		img := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		for y := 0; y < r.Dy(); y++ {
			for x := 0; x < r.Dx(); x++ {
				img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
			}
		}
		return img, nil
	})
	if err := s.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	frame := gocv.NewMat()
	defer frame.Close()
	if err := s.Read(&frame); err != nil {
		t.Fatalf("read: %v", err)
	}
	if frame.Cols() != 20 || frame.Rows() != 10 || frame.Channels() != 3 {
		t.Fatalf("unexpected frame %dx%dx%d", frame.Cols(), frame.Rows(), frame.Channels())
	}
	if px := frame.GetVecbAt(5, 5); px[0] != 0 || px[2] != 255 {
		t.Fatalf("expected BGR red, got %v", px)
	}
}

func TestScreen_GrabFailureEndsStream(t *testing.T) {
	s := testScreen(func(image.Rectangle) (*image.RGBA, error) { return nil, errors.New("no display") })
	if err := s.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	frame := gocv.NewMat()
	defer frame.Close()
	if err := s.Read(&frame); !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("expected end of stream, got %v", err)
	}
}

func TestScreen_OpenRejectsOffscreenRect(t *testing.T) {
	s := testScreen(nil)
	s.Rect = image.Rect(500, 500, 600, 600)
	if err := s.Open(); !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestScreen_ReadBeforeOpen(t *testing.T) {
	s := testScreen(nil)
	frame := gocv.NewMat()
	defer frame.Close()
	if err := s.Read(&frame); !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("expected end of stream, got %v", err)
	}
}
