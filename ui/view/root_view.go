package view

import (
	"log/slog"
	"time"

	"gocv.io/x/gocv"

	"github.com/soocke/marker-paint-go/domain/capture"
	"github.com/soocke/marker-paint-go/domain/control"
	"github.com/soocke/marker-paint-go/domain/display"
	"github.com/soocke/marker-paint-go/domain/gesture"
	"github.com/soocke/marker-paint-go/domain/vision"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout. It satisfies
// display.Sink, presenter.StatsView and presenter.ControlView by delegating
// to its subviews.
type RootView struct {
	logger *slog.Logger

	Stats    StatsPanel
	Controls ControlPanel
	Preview  Preview
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout: stats on row 0, the control panel below it
// and the three previews at the bottom.
func (rv *RootView) Build(initial control.Settings, h ControlHandlers, onExit func()) {
	if rv == nil {
		return
	}
	rv.Stats = NewStatsPanel(0, 0)
	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, Row(0), Column(2), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))

	rv.Controls = NewControlPanel(h)
	row := rv.Controls.Build(1, initial)
	rv.Preview = NewPreview(row)
}

func (rv *RootView) Show(role display.Role, img gocv.Mat) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Show(role, img)
	}
}

func (rv *RootView) SetActivity(stroke, total time.Duration, strokes int) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetActivity(stroke, total, strokes)
	}
}

func (rv *RootView) SetLoopStats(st capture.CaptureStats, cmd gesture.Command) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetLoopStats(st, cmd)
	}
}

func (rv *RootView) ShowBounds(r vision.HSVRange) {
	if rv != nil && rv.Controls != nil {
		rv.Controls.ShowBounds(r)
	}
}

func (rv *RootView) ShowStatus(text string) {
	if rv != nil && rv.Controls != nil {
		rv.Controls.ShowStatus(text)
	}
	if rv != nil && rv.logger != nil {
		rv.logger.Debug("status", "text", text)
	}
}

// PreviewReset puts placeholders back once the loop has stopped.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}
