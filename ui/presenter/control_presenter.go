package presenter

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/marker-paint-go/config"
	"github.com/soocke/marker-paint-go/domain/control"
	"github.com/soocke/marker-paint-go/domain/paint"
	"github.com/soocke/marker-paint-go/domain/vision"
)

// ErrBadHSV is returned when an HSV field cannot be parsed.
var ErrBadHSV = errors.New("hsv must be three integers h,s,v")

// SettingsModel is the mutable operator state the presenter writes to.
type SettingsModel interface {
	Settings() control.Settings
	SetBounds(vision.HSVRange)
	SetChannel(paint.Channel) bool
	RequestClear()
	RequestStop()
}

// ControlView reflects applied settings back to the panel.
type ControlView interface {
	ShowBounds(r vision.HSVRange)
	ShowStatus(text string)
	PreviewReset()
}

// ControlPresenter applies panel input to the settings model and persists it
// into the configuration file.
type ControlPresenter struct {
	model   SettingsModel
	cfg     *config.Config
	cfgPath string
	view    ControlView
	logger  *slog.Logger
}

func NewControlPresenter(m SettingsModel, cfg *config.Config, cfgPath string, view ControlView, logger *slog.Logger) *ControlPresenter {
	return &ControlPresenter{model: m, cfg: cfg, cfgPath: cfgPath, view: view, logger: logger}
}

// ApplyBounds parses "h,s,v" text for both bounds, clamps them through the
// config validator and makes them effective from the next frame.
func (p *ControlPresenter) ApplyBounds(lowerText, upperText string) error {
	if p == nil || p.model == nil {
		return nil
	}
	lower, err := ParseHSV(lowerText)
	if err != nil {
		p.status(fmt.Sprintf("lower bound: %v", err))
		return fmt.Errorf("lower bound: %w", err)
	}
	upper, err := ParseHSV(upperText)
	if err != nil {
		p.status(fmt.Sprintf("upper bound: %v", err))
		return fmt.Errorf("upper bound: %w", err)
	}
	cfg := config.DefaultConfig()
	if p.cfg != nil {
		c := *p.cfg
		cfg = &c
	}
	cfg.LowerHue, cfg.LowerSat, cfg.LowerVal = lower.H, lower.S, lower.V
	cfg.UpperHue, cfg.UpperSat, cfg.UpperVal = upper.H, upper.S, upper.V
	_ = cfg.Validate()

	r := control.FromConfig(cfg).Bounds
	p.model.SetBounds(r)
	if p.view != nil {
		p.view.ShowBounds(r)
	}
	p.status("bounds " + r.String())
	if p.logger != nil {
		p.logger.Info("hsv bounds applied", "bounds", r.String())
	}
	if p.cfg != nil {
		*p.cfg = *cfg
	}
	p.save()
	return nil
}

// SelectChannel makes channel idx the active brush.
func (p *ControlPresenter) SelectChannel(idx int) {
	if p == nil || p.model == nil {
		return
	}
	ch := paint.Channel(idx)
	if !p.model.SetChannel(ch) {
		if p.logger != nil {
			p.logger.Warn("channel selection ignored", "index", idx)
		}
		return
	}
	p.status("color " + ch.String())
	if p.cfg != nil {
		p.cfg.ColorIndex = idx
		p.save()
	}
}

func (p *ControlPresenter) Clear() {
	if p == nil || p.model == nil {
		return
	}
	p.model.RequestClear()
	p.status("clearing")
}

func (p *ControlPresenter) Stop() {
	if p == nil || p.model == nil {
		return
	}
	p.model.RequestStop()
	p.status("stopping")
}

// Stopped resets the previews once the loop has ended and shows why.
func (p *ControlPresenter) Stopped(reason string) {
	if p == nil || p.view == nil {
		return
	}
	p.view.PreviewReset()
	p.status("stopped: " + reason)
}

func (p *ControlPresenter) status(text string) {
	if p.view != nil {
		p.view.ShowStatus(text)
	}
}

func (p *ControlPresenter) save() {
	if p.cfg == nil || p.cfgPath == "" {
		return
	}
	if err := p.cfg.Save(p.cfgPath); err != nil {
		if p.logger != nil {
			p.logger.Error("config save failed", "error", err)
		}
		return
	}
	if p.logger != nil {
		p.logger.Info("config saved", "path", p.cfgPath)
	}
}

// ParseHSV reads three integers separated by commas or spaces.
func ParseHSV(s string) (vision.HSV, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == '\n' })
	if len(fields) != 3 {
		return vision.HSV{}, ErrBadHSV
	}
	var v [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return vision.HSV{}, ErrBadHSV
		}
		v[i] = n
	}
	return vision.HSV{H: v[0], S: v[1], V: v[2]}, nil
}

// FormatHSV is the inverse of ParseHSV.
func FormatHSV(c vision.HSV) string { return fmt.Sprintf("%d,%d,%d", c.H, c.S, c.V) }
