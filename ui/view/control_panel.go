package view

import (
	"strconv"
	"strings"

	"github.com/soocke/marker-paint-go/domain/control"
	"github.com/soocke/marker-paint-go/domain/paint"
	"github.com/soocke/marker-paint-go/domain/vision"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ControlHandlers are invoked on user actions in the control panel.
type ControlHandlers struct {
	OnApply   func(lower, upper string)
	OnChannel func(idx int)
	OnClear   func()
	OnStop    func()
}

// ControlPanel holds the HSV fields, color selector and action buttons.
type ControlPanel interface {
	Build(startRow int, initial control.Settings) (endRow int)
	ShowBounds(r vision.HSVRange)
	ShowStatus(text string)
}

type controlPanel struct {
	h       ControlHandlers
	lower   *TextWidget
	upper   *TextWidget
	channel *TComboboxWidget
	status  *LabelWidget
}

func NewControlPanel(h ControlHandlers) ControlPanel { return &controlPanel{h: h} }

func (v *controlPanel) Build(startRow int, initial control.Settings) (row int) {
	row = startRow
	field := func(label, value string) *TextWidget {
		Grid(Label(Txt(label), Anchor("w")), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		setText(w, value)
		row++
		return w
	}
	v.lower = field("Lower HSV (h,s,v)", formatHSV(initial.Bounds.Lower))
	v.upper = field("Upper HSV (h,s,v)", formatHSV(initial.Bounds.Upper))

	apply := Button(Txt("Apply HSV"), Command(func() {
		if v.h.OnApply != nil {
			v.h.OnApply(textOf(v.lower), textOf(v.upper))
		}
	}))
	Grid(apply, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++

	Grid(Label(Txt("Color"), Anchor("w")), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	v.channel = TCombobox(Values(paint.ChannelNames()), Width(14))
	Grid(v.channel, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	v.channel.Current(int(initial.Channel))
	Bind(v.channel, "<<ComboboxSelected>>", Command(func() {
		idx, err := strconv.Atoi(v.channel.Current(nil))
		if err == nil && v.h.OnChannel != nil {
			v.h.OnChannel(idx)
		}
	}))
	row++

	btns := Frame()
	Grid(btns, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	Grid(Button(Txt("Clear Painting"), Command(func() { call(v.h.OnClear) })), In(btns), Row(0), Column(0), Sticky("we"), Padx("0.2m"))
	Grid(Button(Txt("Stop"), Command(func() { call(v.h.OnStop) })), In(btns), Row(0), Column(1), Sticky("we"), Padx("0.2m"))
	row++

	v.status = Label(Txt("ready"), Anchor("w"), Borderwidth(1), Relief("ridge"))
	Grid(v.status, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *controlPanel) ShowBounds(r vision.HSVRange) {
	setText(v.lower, formatHSV(r.Lower))
	setText(v.upper, formatHSV(r.Upper))
}

func (v *controlPanel) ShowStatus(text string) {
	if v.status != nil {
		v.status.Configure(Txt(text))
	}
}

func setText(w *TextWidget, s string) {
	if w == nil {
		return
	}
	w.Delete("1.0", END)
	w.Insert("1.0", s)
}

func textOf(w *TextWidget) string {
	if w == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
}

func formatHSV(c vision.HSV) string {
	return strconv.Itoa(c.H) + "," + strconv.Itoa(c.S) + "," + strconv.Itoa(c.V)
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
