package app

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/marker-paint-go/config"
	"github.com/soocke/marker-paint-go/domain/capture"
	"github.com/soocke/marker-paint-go/domain/control"
	"github.com/soocke/marker-paint-go/domain/display"
	"github.com/soocke/marker-paint-go/domain/pipeline"
	"github.com/soocke/marker-paint-go/ui/highgui"
	"github.com/soocke/marker-paint-go/ui/model"
	"github.com/soocke/marker-paint-go/ui/presenter"
	"github.com/soocke/marker-paint-go/ui/view"
)

// AppContainer assembles the source, models, pipeline, presenters and the
// views for the configured UI mode.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger

	Settings *model.Settings
	Activity *model.Activity
	Source   capture.FrameSource
	Driver   *pipeline.Driver

	// Tk mode
	RootView         *view.RootView
	StatsPresenter   *presenter.StatsPresenter
	ControlPresenter *presenter.ControlPresenter

	// Window mode
	Windows *highgui.Windows
}

// NewSource returns the frame source selected by cfg.Source.
func NewSource(cfg *config.Config, logger *slog.Logger) (capture.FrameSource, error) {
	switch cfg.Source {
	case config.SourceCamera:
		return capture.NewCamera(cfg.DeviceID, cfg.FrameWidth, cfg.FrameHeight, logger), nil
	case config.SourceVideo:
		if cfg.VideoPath == "" {
			return nil, fmt.Errorf("%w: video source needs a path", capture.ErrSourceUnavailable)
		}
		return capture.NewVideoFile(cfg.VideoPath, logger), nil
	case config.SourceScreen:
		rect := image.Rect(cfg.ScreenX, cfg.ScreenY, cfg.ScreenX+cfg.ScreenW, cfg.ScreenY+cfg.ScreenH)
		return capture.NewScreen(rect, time.Duration(cfg.ScreenIntervalMs)*time.Millisecond, logger), nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

// BuildContainer constructs all components. No device is opened here.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) (*AppContainer, error) {
	src, err := NewSource(cfg, logger)
	if err != nil {
		return nil, err
	}
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger, Source: src}
	c.Settings = model.NewSettings(control.FromConfig(cfg))
	c.Activity = model.NewActivity()

	var (
		controls control.Provider = c.Settings
		sink     display.Sink     = display.Discard{}
	)
	switch cfg.UI {
	case config.UITk:
		c.RootView = view.NewRootView(logger)
		sink = c.RootView
		c.ControlPresenter = presenter.NewControlPresenter(c.Settings, cfg, cfgPath, c.RootView, logger)
	case config.UIWindow:
		c.Windows = highgui.NewWindows()
		sink = c.Windows
		controls = highgui.NewKeyboard(c.Settings, c.Windows, 1, logger)
	}
	c.Driver = pipeline.New(src, controls, sink, pipeline.OptionsFromConfig(cfg), logger)
	if c.RootView != nil {
		c.StatsPresenter = presenter.NewStatsPresenter(c.Activity, c.Driver, c.RootView)
	}
	return c, nil
}

// Close releases the pipeline and any OpenCV windows.
func (c *AppContainer) Close() {
	if c == nil {
		return
	}
	if c.Driver != nil {
		_ = c.Driver.Close()
	}
	if c.Windows != nil {
		_ = c.Windows.Close()
	}
}
