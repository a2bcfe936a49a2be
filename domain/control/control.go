package control

import (
	"github.com/soocke/marker-paint-go/config"
	"github.com/soocke/marker-paint-go/domain/paint"
	"github.com/soocke/marker-paint-go/domain/vision"
)

// Settings are the per-frame values chosen by the operator.
type Settings struct {
	Bounds  vision.HSVRange
	Channel paint.Channel
}

// Provider supplies settings and operator requests to the loop driver.
// Settings may change between frames.
type Provider interface {
	Settings() Settings
	// TakeClear reports and consumes a pending clear request.
	TakeClear() bool
	StopRequested() bool
}

// FromConfig builds Settings from the persisted configuration.
func FromConfig(cfg *config.Config) Settings {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Settings{
		Bounds: vision.HSVRange{
			Lower: vision.HSV{H: cfg.LowerHue, S: cfg.LowerSat, V: cfg.LowerVal},
			Upper: vision.HSV{H: cfg.UpperHue, S: cfg.UpperSat, V: cfg.UpperVal},
		},
		Channel: paint.Channel(cfg.ColorIndex),
	}
}

// Static is a Provider with fixed settings and no operator requests beyond
// those set by RequestClear/RequestStop.
type Static struct {
	S     Settings
	clear bool
	stop  bool
}

func NewStatic(s Settings) *Static { return &Static{S: s} }

func (p *Static) Settings() Settings { return p.S }

func (p *Static) TakeClear() bool {
	v := p.clear
	p.clear = false
	return v
}

func (p *Static) StopRequested() bool { return p.stop }

func (p *Static) RequestClear() { p.clear = true }

func (p *Static) RequestStop() { p.stop = true }
