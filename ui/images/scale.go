package images

import (
	"bytes"
	"errors"
	"image"

	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = imaging.Encode(&buf, img, imaging.PNG)
	return buf.Bytes()
}

// ScaleToFit downsamples src so it fits within maxW x maxH preserving aspect
// ratio. If the source already fits, the original is returned.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return src
	}
	w, h := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	return imaging.Fit(src, w, h, imaging.Box)
}

// FitSize returns the largest size with the aspect of w x h that fits in
// maxW x maxH. Sizes that already fit are returned unchanged.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	ratio := float64(maxW) / float64(w)
	if r := float64(maxH) / float64(h); r < ratio {
		ratio = r
	}
	nw := max(int(float64(w)*ratio+0.5), 1)
	nh := max(int(float64(h)*ratio+0.5), 1)
	return nw, nh
}

var errEmptyMat = errors.New("images: empty mat")

// MatToPNG scales m to fit maxW x maxH and encodes it as PNG. BGR and single
// channel mats are both accepted. Mats that cannot be converted to an
// image.Image are resized and encoded by OpenCV instead.
func MatToPNG(m gocv.Mat, maxW, maxH int) ([]byte, error) {
	if m.Empty() {
		return nil, errEmptyMat
	}
	img, err := m.ToImage()
	if err != nil {
		return encodeMat(m, maxW, maxH)
	}
	data := EncodePNG(ScaleToFit(img, maxW, maxH))
	if len(data) == 0 {
		return nil, errEncode
	}
	return data, nil
}

var errEncode = errors.New("images: png encode failed")

func encodeMat(m gocv.Mat, maxW, maxH int) ([]byte, error) {
	w, h := FitSize(m.Cols(), m.Rows(), maxW, maxH)
	src := m
	if w != m.Cols() || h != m.Rows() {
		small := gocv.NewMat()
		defer small.Close()
		gocv.Resize(m, &small, image.Pt(w, h), 0, 0, gocv.InterpolationArea)
		src = small
	}
	buf, err := gocv.IMEncode(gocv.PNGFileExt, src)
	if err != nil {
		return nil, err
	}
	defer buf.Close()
	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}
