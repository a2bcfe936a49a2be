package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for marker tracking, painting and the
// video source. Fields may be loaded from a JSON file and overridden by
// command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Marker HSV range (hue 0-180, saturation/value 0-255)
	LowerHue int `json:"lower_hue"`
	LowerSat int `json:"lower_sat"`
	LowerVal int `json:"lower_val"`
	UpperHue int `json:"upper_hue"`
	UpperSat int `json:"upper_sat"`
	UpperVal int `json:"upper_val"`

	// Painting
	ColorIndex     int  `json:"color_index"`
	ToolbarMaxY    int  `json:"toolbar_max_y"`
	ClearMinX      int  `json:"clear_min_x"`
	ClearMaxX      int  `json:"clear_max_x"`
	BufferCapacity int  `json:"buffer_capacity"`
	CanvasWidth    int  `json:"canvas_width"`
	CanvasHeight   int  `json:"canvas_height"`
	StrokeWidth    int  `json:"stroke_width"`
	Mirror         bool `json:"mirror"`
	BreakOnLoss    bool `json:"break_on_loss"`
	ShowToolbar    bool `json:"show_toolbar"`

	// Video source
	Source           string `json:"source"` // camera | video | screen
	DeviceID         int    `json:"device_id"`
	VideoPath        string `json:"video_path"`
	FrameWidth       int    `json:"frame_width"`
	FrameHeight      int    `json:"frame_height"`
	ScreenX          int    `json:"screen_x"`
	ScreenY          int    `json:"screen_y"`
	ScreenW          int    `json:"screen_w"`
	ScreenH          int    `json:"screen_h"`
	ScreenIntervalMs int    `json:"screen_interval_ms"`

	UI string `json:"ui"` // tk | window | headless
}

// Source and UI mode names.
const (
	SourceCamera = "camera"
	SourceVideo  = "video"
	SourceScreen = "screen"

	UITk       = "tk"
	UIWindow   = "window"
	UIHeadless = "headless"
)

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		LowerHue:         64,
		LowerSat:         72,
		LowerVal:         49,
		UpperHue:         153,
		UpperSat:         255,
		UpperVal:         255,
		ColorIndex:       0,
		ToolbarMaxY:      65,
		ClearMinX:        40,
		ClearMaxX:        140,
		BufferCapacity:   1024,
		CanvasWidth:      636,
		CanvasHeight:     471,
		StrokeWidth:      2,
		Mirror:           true,
		BreakOnLoss:      false,
		ShowToolbar:      true,
		Source:           SourceCamera,
		DeviceID:         0,
		FrameWidth:       640,
		FrameHeight:      480,
		ScreenIntervalMs: 33,
		UI:               UITk,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	c.LowerHue = clamp(c.LowerHue, 0, 180)
	c.UpperHue = clamp(c.UpperHue, 0, 180)
	c.LowerSat = clamp(c.LowerSat, 0, 255)
	c.UpperSat = clamp(c.UpperSat, 0, 255)
	c.LowerVal = clamp(c.LowerVal, 0, 255)
	c.UpperVal = clamp(c.UpperVal, 0, 255)
	if c.LowerHue > c.UpperHue {
		c.LowerHue, c.UpperHue = c.UpperHue, c.LowerHue
	}
	if c.LowerSat > c.UpperSat {
		c.LowerSat, c.UpperSat = c.UpperSat, c.LowerSat
	}
	if c.LowerVal > c.UpperVal {
		c.LowerVal, c.UpperVal = c.UpperVal, c.LowerVal
	}
	c.ColorIndex = clamp(c.ColorIndex, 0, 3)
	if c.ToolbarMaxY < 0 {
		c.ToolbarMaxY = 65
	}
	if c.ClearMinX > c.ClearMaxX {
		c.ClearMinX, c.ClearMaxX = c.ClearMaxX, c.ClearMinX
	}
	if c.BufferCapacity < 2 {
		c.BufferCapacity = 1024
	}
	if c.CanvasWidth <= 0 {
		c.CanvasWidth = 636
	}
	if c.CanvasHeight <= 0 {
		c.CanvasHeight = 471
	}
	if c.StrokeWidth <= 0 {
		c.StrokeWidth = 2
	}
	switch c.Source {
	case SourceCamera, SourceVideo, SourceScreen:
	default:
		c.Source = SourceCamera
	}
	if c.DeviceID < 0 {
		c.DeviceID = 0
	}
	if c.FrameWidth < 0 {
		c.FrameWidth = 0
	}
	if c.FrameHeight < 0 {
		c.FrameHeight = 0
	}
	if c.ScreenW < 0 || c.ScreenH < 0 {
		c.ScreenW, c.ScreenH = 0, 0
	}
	if c.ScreenIntervalMs < 0 {
		c.ScreenIntervalMs = 33
	}
	switch c.UI {
	case UITk, UIWindow, UIHeadless:
	default:
		c.UI = UITk
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
