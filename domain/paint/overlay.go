package paint

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

var (
	toolbarBorder = color.RGBA{R: 0, G: 0, B: 0}
	toolbarText   = color.RGBA{R: 0, G: 0, B: 0}
	markerColor   = color.RGBA{R: 0, G: 255, B: 255}
)

// DrawToolbar outlines the clear button on the live frame and labels it.
// The swatch next to it shows the active brush color.
func DrawToolbar(frame *gocv.Mat, button image.Rectangle, active Channel) {
	if frame == nil || frame.Empty() || button.Empty() {
		return
	}
	gocv.Rectangle(frame, button, toolbarBorder, 2)
	gocv.PutText(frame, "CLEAR", image.Pt(button.Min.X+button.Dx()/2-30, button.Min.Y+button.Dy()/2+5),
		gocv.FontHersheySimplex, 0.6, toolbarText, 2)

	swatch := image.Rect(button.Max.X+15, button.Min.Y, button.Max.X+15+button.Dy(), button.Max.Y)
	gocv.Rectangle(frame, swatch, active.Color(), -1)
	gocv.Rectangle(frame, swatch, toolbarBorder, 1)
}

// DrawMarker circles the tracked centroid on the live frame.
func DrawMarker(frame *gocv.Mat, p image.Point) {
	if frame == nil || frame.Empty() {
		return
	}
	gocv.Circle(frame, p, 8, markerColor, 2)
}
