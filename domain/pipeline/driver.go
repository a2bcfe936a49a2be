package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gocv.io/x/gocv"

	"github.com/soocke/marker-paint-go/config"
	"github.com/soocke/marker-paint-go/domain/capture"
	"github.com/soocke/marker-paint-go/domain/control"
	"github.com/soocke/marker-paint-go/domain/display"
	"github.com/soocke/marker-paint-go/domain/gesture"
	"github.com/soocke/marker-paint-go/domain/paint"
	"github.com/soocke/marker-paint-go/domain/trajectory"
	"github.com/soocke/marker-paint-go/domain/vision"
)

// Options tune the painting pipeline.
type Options struct {
	Toolbar      gesture.Toolbar
	Capacity     int
	CanvasWidth  int
	CanvasHeight int
	StrokeWidth  int
	Mirror       bool
	BreakOnLoss  bool
	ShowToolbar  bool
}

// DefaultOptions mirrors config.DefaultConfig.
func DefaultOptions() Options { return OptionsFromConfig(config.DefaultConfig()) }

// OptionsFromConfig extracts pipeline options from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Options{
		Toolbar:      gesture.Toolbar{MaxY: cfg.ToolbarMaxY, ClearMinX: cfg.ClearMinX, ClearMaxX: cfg.ClearMaxX},
		Capacity:     cfg.BufferCapacity,
		CanvasWidth:  cfg.CanvasWidth,
		CanvasHeight: cfg.CanvasHeight,
		StrokeWidth:  cfg.StrokeWidth,
		Mirror:       cfg.Mirror,
		BreakOnLoss:  cfg.BreakOnLoss,
		ShowToolbar:  cfg.ShowToolbar,
	}
}

// Stop reasons reported by Reason.
const (
	ReasonStopRequested = "stop requested"
	ReasonEndOfStream   = "end of stream"
	ReasonReadFailed    = "read failed"
	ReasonCancelled     = "cancelled"
)

// Driver runs the per-frame pipeline: threshold, locate, route, store,
// composite, show. All state is owned by the goroutine calling Step, so
// nothing here is locked.
type Driver struct {
	source   capture.FrameSource
	controls control.Provider
	sink     display.Sink
	logger   *slog.Logger
	opts     Options

	thresholder *vision.Thresholder
	locator     vision.BlobLocator
	router      gesture.Router
	store       *trajectory.Store
	canvas      *paint.Canvas
	compositor  *paint.Compositor
	stats       *capture.StatsRecorder

	frame gocv.Mat
	mask  gocv.Mat

	opened   bool
	closed   bool
	reason   string
	drawing  bool          // previous frame appended a point
	drawnCh  paint.Channel // channel of that point
	lastCmd  gesture.Command
	segments int
}

// New assembles a driver. The source is not opened until Open or Run.
func New(source capture.FrameSource, controls control.Provider, sink display.Sink, opts Options, logger *slog.Logger) *Driver {
	if sink == nil {
		sink = display.Discard{}
	}
	if controls == nil {
		controls = control.NewStatic(control.FromConfig(nil))
	}
	return &Driver{
		source:      source,
		controls:    controls,
		sink:        sink,
		logger:      logger,
		opts:        opts,
		thresholder: vision.NewThresholder(),
		router:      gesture.NewRouter(opts.Toolbar),
		store:       trajectory.NewStore(paint.NumChannels, opts.Capacity),
		canvas:      paint.NewCanvas(opts.CanvasWidth, opts.CanvasHeight),
		compositor:  paint.NewCompositor(opts.StrokeWidth),
		stats:       capture.NewStatsRecorder(),
		frame:       gocv.NewMat(),
		mask:        gocv.NewMat(),
	}
}

// Open acquires the frame source. On failure the loop must not start.
func (d *Driver) Open() error {
	if d.opened {
		return nil
	}
	if d.closed {
		return errors.New("pipeline: driver closed")
	}
	if d.source == nil {
		return capture.ErrSourceUnavailable
	}
	if err := d.source.Open(); err != nil {
		if d.logger != nil {
			d.logger.Error("could not access the video source", "error", err)
		}
		return err
	}
	d.opened = true
	return nil
}

// Run opens the source, steps until the stream ends, a stop is requested or
// ctx is cancelled, and releases everything on every path.
func (d *Driver) Run(ctx context.Context) error {
	defer d.Close()
	if err := d.Open(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			d.finish(ReasonCancelled)
			return nil
		default:
		}
		if !d.Step() {
			return nil
		}
	}
}

// Step processes one frame and reports whether the loop should continue.
// Stop requests are only observed here, between frames.
func (d *Driver) Step() bool {
	if !d.opened || d.closed || d.reason != "" {
		return false
	}
	if d.controls.StopRequested() {
		d.finish(ReasonStopRequested)
		return false
	}
	start := time.Now()
	if err := d.source.Read(&d.frame); err != nil {
		if errors.Is(err, capture.ErrEndOfStream) {
			if d.logger != nil {
				d.logger.Warn("no frame data available", "error", err)
			}
			d.finish(ReasonEndOfStream)
		} else {
			if d.logger != nil {
				d.logger.Error("frame read", "error", err)
			}
			d.finish(ReasonReadFailed)
		}
		return false
	}
	if d.opts.Mirror {
		gocv.Flip(d.frame, &d.frame, 1)
	}

	settings := d.controls.Settings()
	if d.controls.TakeClear() {
		d.clearAll("request")
	}
	found := d.process(settings)

	d.stats.Observe(time.Since(start), found.Valid)
	d.stats.MaybeLog(d.logger)
	return true
}

func (d *Driver) process(settings control.Settings) vision.Centroid {
	d.thresholder.Apply(d.frame, settings.Bounds, &d.mask)
	found := d.locator.Locate(d.mask)

	cmd := d.router.Route(found, settings.Channel)
	d.lastCmd = cmd
	switch cmd.Kind {
	case gesture.ClearAll:
		d.clearAll("toolbar")
		d.drawing = false
	case gesture.AppendPoint:
		d.store.AppendPoint(int(cmd.Channel), cmd.Point)
		d.drawing = true
		d.drawnCh = cmd.Channel
	default:
		if d.opts.BreakOnLoss && d.drawing && !found.Valid {
			d.store.MarkGap(int(d.drawnCh))
		}
		d.drawing = false
	}

	if d.opts.ShowToolbar {
		paint.DrawToolbar(&d.frame, d.opts.Toolbar.ClearButton(), settings.Channel)
	}
	if found.Valid {
		paint.DrawMarker(&d.frame, found.Point)
	}
	d.segments = d.compositor.Render(d.store, paint.MatSink{Mat: &d.frame}, d.canvas)

	d.sink.Show(display.LiveFrame, d.frame)
	d.sink.Show(display.Mask, d.mask)
	d.sink.Show(display.Canvas, d.canvas.Mat())
	return found
}

func (d *Driver) clearAll(origin string) {
	d.store.ClearAll()
	d.canvas.Clear()
	if d.logger != nil {
		d.logger.Info("canvas cleared", "origin", origin)
	}
}

func (d *Driver) finish(reason string) {
	if d.reason != "" {
		return
	}
	d.reason = reason
	if d.logger != nil {
		st := d.stats.Stats()
		d.logger.Info("loop finished", "reason", reason, "frames", st.Frames, "detections", st.Detections)
	}
}

// Close releases the frame source and all pixel buffers. It is safe to call
// more than once and on a driver whose Open failed.
func (d *Driver) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	var err error
	if d.source != nil {
		err = d.source.Close()
	}
	d.thresholder.Close()
	d.frame.Close()
	d.mask.Close()
	d.canvas.Close()
	return err
}

// Reason returns why the loop stopped, or "" while it is running.
func (d *Driver) Reason() string { return d.reason }

func (d *Driver) Store() *trajectory.Store { return d.store }

func (d *Driver) Canvas() *paint.Canvas { return d.canvas }

func (d *Driver) Stats() capture.CaptureStats { return d.stats.Stats() }

// LastCommand returns the command routed on the most recent frame.
func (d *Driver) LastCommand() gesture.Command { return d.lastCmd }

// Segments returns how many segments the last frame rendered.
func (d *Driver) Segments() int { return d.segments }
