package presenter

import (
	"time"

	"github.com/soocke/marker-paint-go/domain/capture"
	"github.com/soocke/marker-paint-go/domain/gesture"
	"github.com/soocke/marker-paint-go/ui/model"
)

// StatsSource exposes what the stats panel reads from the pipeline.
type StatsSource interface {
	Stats() capture.CaptureStats
	LastCommand() gesture.Command
}

// StatsView displays loop and drawing statistics.
type StatsView interface {
	SetActivity(stroke, total time.Duration, strokes int)
	SetLoopStats(st capture.CaptureStats, cmd gesture.Command)
}

// StatsPresenter feeds the activity model from the last routed command and
// pushes values to the view.
type StatsPresenter struct {
	activity *model.Activity
	source   StatsSource
	view     StatsView
}

func NewStatsPresenter(activity *model.Activity, source StatsSource, view StatsView) *StatsPresenter {
	return &StatsPresenter{activity: activity, source: source, view: view}
}

func (p *StatsPresenter) Tick(now time.Time) {
	if p == nil || p.activity == nil || p.source == nil || p.view == nil {
		return
	}
	cmd := p.source.LastCommand()
	if cmd.Kind == gesture.ClearAll {
		p.activity.Reset()
	} else {
		p.activity.OnTick(cmd.Kind == gesture.AppendPoint, now)
	}
	stroke, total, n := p.activity.Values()
	p.view.SetActivity(stroke, total, n)
	p.view.SetLoopStats(p.source.Stats(), cmd)
}
