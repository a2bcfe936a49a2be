package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/marker-paint-go/config"
	"github.com/soocke/marker-paint-go/ui/presenter"
	"github.com/soocke/marker-paint-go/ui/view"
)

const tick = 5 * time.Millisecond

type app struct {
	title   string
	width   int
	height  int
	c       *AppContainer
	logger  *slog.Logger
	loop    *presenter.Loop
	afterID string
	exited  bool
	ctx     context.Context
}

func NewApp(title string, width, height int, c *AppContainer) *app {
	return &app{title: title, width: width, height: height, c: c, logger: c.Logger}
}

// Run executes the pipeline in the UI mode chosen by the configuration and
// returns once the loop has ended. An error means the source could not be
// opened.
func (a *app) Run(ctx context.Context) error {
	defer a.c.Close()
	if a.c.Config.UI == config.UITk {
		return a.runTk(ctx)
	}
	return a.c.Driver.Run(ctx)
}

func (a *app) runTk(ctx context.Context) error {
	if err := a.c.Driver.Open(); err != nil {
		Destroy(App)
		return err
	}
	App.WmTitle(a.title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", a.width, a.height))

	cp := a.c.ControlPresenter
	a.c.RootView.Build(a.c.Settings.Settings(), view.ControlHandlers{
		OnApply:   func(lower, upper string) { _ = cp.ApplyBounds(lower, upper) },
		OnChannel: cp.SelectChannel,
		OnClear:   cp.Clear,
		OnStop:    cp.Stop,
	}, a.exitHandler)

	a.ctx = ctx
	a.loop = presenter.NewLoop(a.c.Driver, a.c.StatsPresenter, a.scheduleUpdate, a.onStop)
	a.scheduleUpdate()
	App.Wait()
	return nil
}

func (a *app) update() {
	a.afterID = ""
	if a.ctx.Err() != nil {
		a.c.Settings.RequestStop()
	}
	a.loop.Tick()
}

// scheduleUpdate stays on Tk's event loop thread via TclAfter.
func (a *app) scheduleUpdate() {
	a.afterID = TclAfter(tick, a.update)
}

// onStop keeps the window open after the source ends or Stop is pressed so
// the operator can read the status. Cancellation closes the app.
func (a *app) onStop() {
	reason := a.c.Driver.Reason()
	if a.logger != nil {
		a.logger.Info("paint loop stopped", "reason", reason)
	}
	if a.ctx.Err() != nil {
		a.exitHandler()
		return
	}
	_ = a.c.Driver.Close()
	a.c.ControlPresenter.Stopped(reason)
	a.watchCancel()
}

// watchCancel closes the app on interrupt once the loop is no longer ticking.
func (a *app) watchCancel() {
	if a.exited {
		return
	}
	if a.ctx.Err() != nil {
		a.exitHandler()
		return
	}
	a.afterID = TclAfter(250*time.Millisecond, a.watchCancel)
}

func (a *app) exitHandler() {
	if a.exited {
		return
	}
	a.exited = true
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	_ = a.c.Driver.Close()
	Destroy(App)
}
