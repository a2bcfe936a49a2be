package vision

import (
	"image"

	"gocv.io/x/gocv"
)

// kernelSize is the side of the square structuring element used for noise suppression.
const kernelSize = 5

// Thresholder turns BGR frames into binary marker masks. It owns a reusable HSV
// buffer and the morphology kernel; call Close to release them.
type Thresholder struct {
	hsv    gocv.Mat
	kernel gocv.Mat
}

// NewThresholder allocates the scratch buffers for Apply.
func NewThresholder() *Thresholder {
	return &Thresholder{
		hsv:    gocv.NewMat(),
		kernel: gocv.GetStructuringElement(gocv.MorphRect, image.Pt(kernelSize, kernelSize)),
	}
}

// Apply writes into mask the pixels of frame whose HSV value lies inside r
// (bounds inclusive), then erodes, opens and dilates the result once each.
// The mask always has the frame's dimensions; an empty frame yields an empty mask.
func (t *Thresholder) Apply(frame gocv.Mat, r HSVRange, mask *gocv.Mat) {
	if frame.Empty() {
		mask.Close()
		*mask = gocv.NewMat()
		return
	}
	gocv.CvtColor(frame, &t.hsv, gocv.ColorBGRToHSV)
	gocv.InRangeWithScalar(t.hsv, r.Lower.scalar(), r.Upper.scalar(), mask)

	// speckle removal, small cluster removal, then restore blob size
	gocv.Erode(*mask, mask, t.kernel)
	gocv.MorphologyEx(*mask, mask, gocv.MorphOpen, t.kernel)
	gocv.Dilate(*mask, mask, t.kernel)
}

// Close releases the scratch buffers.
func (t *Thresholder) Close() error {
	if t == nil {
		return nil
	}
	t.hsv.Close()
	return t.kernel.Close()
}
