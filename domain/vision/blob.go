package vision

import (
	"image"

	"gocv.io/x/gocv"
)

// Moments holds the spatial moments needed for a centroid.
type Moments struct {
	M00, M10, M01 float64
}

// Centroid returns (m10/m00, m01/m00) truncated to integers. Moments with a
// non-positive area produce an absent centroid.
func (m Moments) Centroid() Centroid {
	if !(m.M00 > 0) {
		return Absent()
	}
	return At(int(m.M10/m.M00), int(m.M01/m.M00))
}

// ContourMoments computes the polygon moments of a closed contour with Green's
// theorem, the same formulas OpenCV applies to point contours. The result is
// normalized so the area is non-negative regardless of winding order.
func ContourMoments(pts []image.Point) Moments {
	if len(pts) < 3 {
		return Moments{}
	}
	var a00, a10, a01 float64
	prev := pts[len(pts)-1]
	for _, p := range pts {
		xp, yp := float64(prev.X), float64(prev.Y)
		x, y := float64(p.X), float64(p.Y)
		dxy := xp*y - x*yp
		a00 += dxy
		a10 += dxy * (xp + x)
		a01 += dxy * (yp + y)
		prev = p
	}
	m := Moments{M00: a00 / 2, M10: a10 / 6, M01: a01 / 6}
	if m.M00 < 0 {
		m = Moments{M00: -m.M00, M10: -m.M10, M01: -m.M01}
	}
	return m
}

// BlobLocator finds the dominant marker blob in a mask.
type BlobLocator struct{}

// Locate returns the centroid of the largest external contour in mask.
// No contours, or a largest contour without positive area, yield an absent centroid.
func (BlobLocator) Locate(mask gocv.Mat) Centroid {
	if mask.Empty() {
		return Absent()
	}
	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()
	if contours.Size() == 0 {
		return Absent()
	}

	best := 0
	bestArea := gocv.ContourArea(contours.At(0))
	for i := 1; i < contours.Size(); i++ {
		if area := gocv.ContourArea(contours.At(i)); area > bestArea {
			best, bestArea = i, area
		}
	}
	return ContourMoments(contours.At(best).ToPoints()).Centroid()
}
