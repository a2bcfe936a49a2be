package presenter

import "time"

// Stepper advances the painting pipeline by one frame.
type Stepper interface {
	Step() bool
}

// Loop drives one pipeline step per tick, refreshes the stats presenter and
// asks the scheduler for the next tick. Once the pipeline reports it is done
// OnStop runs exactly once and no further ticks are scheduled. The zero value
// is usable (methods are nil-safe).
type Loop struct {
	Driver   Stepper
	Stats    *StatsPresenter
	Schedule func()
	OnStop   func()

	stopped bool
	now     func() time.Time
}

func NewLoop(driver Stepper, stats *StatsPresenter, schedule, onStop func()) *Loop {
	return &Loop{Driver: driver, Stats: stats, Schedule: schedule, OnStop: onStop}
}

func (l *Loop) Tick() {
	if l == nil || l.stopped {
		return
	}
	if l.Driver != nil && !l.Driver.Step() {
		l.stopped = true
		if l.OnStop != nil {
			l.OnStop()
		}
		return
	}
	if l.Stats != nil {
		now := time.Now
		if l.now != nil {
			now = l.now
		}
		l.Stats.Tick(now())
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}

// Stopped reports whether the pipeline has finished.
func (l *Loop) Stopped() bool { return l != nil && l.stopped }
