package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// HSV is a color in OpenCV's 8-bit HSV space (hue 0-180, saturation and value 0-255).
type HSV struct {
	H, S, V int
}

func (c HSV) scalar() gocv.Scalar {
	return gocv.NewScalar(float64(c.H), float64(c.S), float64(c.V), 0)
}

// HSVRange is an inclusive lower/upper bound pair used to select marker pixels.
type HSVRange struct {
	Lower HSV
	Upper HSV
}

func (r HSVRange) String() string {
	return fmt.Sprintf("[%d,%d,%d]-[%d,%d,%d]", r.Lower.H, r.Lower.S, r.Lower.V, r.Upper.H, r.Upper.S, r.Upper.V)
}

// Centroid is an optional integer point. The zero value is absent.
// Inside trajectory buffers an absent centroid acts as a gap marker.
type Centroid struct {
	Point image.Point
	Valid bool
}

// At returns a present centroid at (x, y).
func At(x, y int) Centroid { return Centroid{Point: image.Pt(x, y), Valid: true} }

// Absent returns the empty centroid.
func Absent() Centroid { return Centroid{} }

func (c Centroid) String() string {
	if !c.Valid {
		return "none"
	}
	return c.Point.String()
}
