package view

import (
	"fmt"
	"time"

	"github.com/soocke/marker-paint-go/domain/capture"
	"github.com/soocke/marker-paint-go/domain/gesture"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatsPanel shows drawing activity and loop throughput.
type StatsPanel interface {
	SetActivity(stroke, total time.Duration, strokes int)
	SetLoopStats(st capture.CaptureStats, cmd gesture.Command)
}

type statsPanel struct {
	activityLbl *LabelWidget
	loopLbl     *LabelWidget
}

// NewStatsPanel places two labels at (row, startCol) and (row, startCol+1).
func NewStatsPanel(row, startCol int) StatsPanel {
	s := &statsPanel{activityLbl: Label(Width(30), Anchor("w")), loopLbl: Label(Width(40), Anchor("w"))}
	Grid(s.activityLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.loopLbl, Row(row), Column(startCol+1), Columnspan(2), Sticky("w"), Padx("0.2m"))
	s.activityLbl.Configure(Txt("Stroke: 00:00  Drawn: 00:00"))
	s.loopLbl.Configure(Txt("FPS: -"))
	return s
}

func (s *statsPanel) SetActivity(stroke, total time.Duration, strokes int) {
	if s == nil || s.activityLbl == nil {
		return
	}
	s.activityLbl.Configure(Txt(fmt.Sprintf("Stroke: %s  Drawn: %s  Strokes: %d", clock(stroke), clock(total), strokes)))
}

func (s *statsPanel) SetLoopStats(st capture.CaptureStats, cmd gesture.Command) {
	if s == nil || s.loopLbl == nil {
		return
	}
	s.loopLbl.Configure(Txt(fmt.Sprintf("FPS: %.1f  Step: %s  Hits: %d/%d  %s",
		st.FPS, st.MeanStep.Round(time.Millisecond), st.Detections, st.Frames, cmd)))
}

func clock(d time.Duration) string {
	sec := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
