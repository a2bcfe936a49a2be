package view

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/soocke/marker-paint-go/domain/display"
	"github.com/soocke/marker-paint-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Preview shows the live frame, the mask and the canvas side by side. It
// implements display.Sink.
type Preview interface {
	display.Sink
	Reset()
}

type preview struct {
	labels [display.NumRoles]*LabelWidget
	photos [display.NumRoles]*Img // disposed before replacement
	maxW   int
	maxH   int
}

const (
	maxPreviewW = 320
	maxPreviewH = 240
)

// NewPreview grids one sunken label per role on row, starting at column 0.
func NewPreview(row int) Preview {
	p := &preview{maxW: maxPreviewW, maxH: maxPreviewH}
	placeholder := images.EncodePNG(image.NewRGBA(image.Rect(0, 0, 160, 120)))
	for i, role := range display.Roles {
		photo := NewPhoto(Data(placeholder))
		lbl := Label(Image(photo), Borderwidth(1), Relief("sunken"))
		Grid(Label(Txt(role.String()), Anchor("w")), Row(row), Column(i), Sticky("w"), Padx("0.4m"))
		Grid(lbl, Row(row+1), Column(i), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
		p.labels[i], p.photos[i] = lbl, photo
	}
	return p
}

func (p *preview) Show(role display.Role, img gocv.Mat) {
	i := int(role)
	if p == nil || i < 0 || i >= len(p.labels) || p.labels[i] == nil {
		return
	}
	data, err := images.MatToPNG(img, p.maxW, p.maxH)
	if err != nil {
		return
	}
	p.replace(i, data)
}

func (p *preview) Reset() {
	if p == nil {
		return
	}
	placeholder := images.EncodePNG(image.NewRGBA(image.Rect(0, 0, 160, 120)))
	for i := range p.labels {
		if p.labels[i] != nil {
			p.replace(i, placeholder)
		}
	}
}

func (p *preview) replace(i int, data []byte) {
	if p.photos[i] != nil {
		p.photos[i].Delete()
	}
	p.photos[i] = NewPhoto(Data(data))
	p.labels[i].Configure(Image(p.photos[i]))
}
