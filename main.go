package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/marker-paint-go/app"
	"github.com/soocke/marker-paint-go/config"
	"github.com/soocke/marker-paint-go/debug"
)

func main() {
	var (
		cfgPath  = flag.String("config", "marker-paint.json", "path to the JSON configuration file")
		source   = flag.String("source", "", "frame source: camera, video or screen")
		device   = flag.Int("device", -1, "camera device id")
		video    = flag.String("video", "", "video file to replay (implies -source video)")
		uiMode   = flag.String("ui", "", "display: tk, window or headless")
		logLevel = flag.String("log-level", "info", "log level: debug, info, warn, error")
		debugOn  = flag.Bool("debug", false, "log runtime memory and goroutine statistics")
	)
	flag.Parse()

	level := new(slog.LevelVar)
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level.Set(slog.LevelInfo)
	}
	logger := NewLogger(level).With("session", uuid.NewString())

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}
	if *source != "" {
		cfg.Source = *source
	}
	if *device >= 0 {
		cfg.DeviceID = *device
	}
	if *video != "" {
		cfg.VideoPath = *video
		if *source == "" {
			cfg.Source = config.SourceVideo
		}
	}
	if *uiMode != "" {
		cfg.UI = *uiMode
	}
	if *debugOn {
		cfg.Debug = true
	}
	_ = cfg.Validate()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Debug {
		level.Set(slog.LevelDebug)
		debug.StartGoroutineLogger(ctx, 10*time.Second, logger)
		debug.StartMemLogger(ctx, 10*time.Second, logger)
	}

	logger.Info("starting", "source", cfg.Source, "ui", cfg.UI, "bounds_lower", []int{cfg.LowerHue, cfg.LowerSat, cfg.LowerVal}, "bounds_upper", []int{cfg.UpperHue, cfg.UpperSat, cfg.UpperVal})

	c, err := app.BuildContainer(cfg, *cfgPath, logger)
	if err != nil {
		logger.Error("setup failed", "error", err)
		os.Exit(1)
	}
	if err := app.NewApp("Marker Paint", 1040, 760, c).Run(ctx); err != nil {
		logger.Error("run failed", "error", err)
		stop()
		os.Exit(1)
	}
	logger.Info("stopped", "reason", c.Driver.Reason())
}
