package model

import (
	"sync"

	"github.com/soocke/marker-paint-go/domain/control"
	"github.com/soocke/marker-paint-go/domain/paint"
	"github.com/soocke/marker-paint-go/domain/vision"
)

// Settings holds the operator's current choices and pending requests. It
// satisfies control.Provider. Concurrency-safe because widget callbacks and
// the loop tick may run on different goroutines outside Tk mode.
type Settings struct {
	mu      sync.Mutex
	current control.Settings
	clear   bool
	stop    bool
}

// NewSettings returns a model seeded with initial.
func NewSettings(initial control.Settings) *Settings {
	return &Settings{current: initial}
}

func (m *Settings) Settings() control.Settings {
	if m == nil {
		return control.Settings{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// SetBounds replaces the HSV range used from the next frame on.
func (m *Settings) SetBounds(r vision.HSVRange) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.current.Bounds = r
	m.mu.Unlock()
}

// SetChannel selects the active color. Invalid channels are ignored.
func (m *Settings) SetChannel(ch paint.Channel) bool {
	if m == nil || !ch.Valid() {
		return false
	}
	m.mu.Lock()
	m.current.Channel = ch
	m.mu.Unlock()
	return true
}

func (m *Settings) RequestClear() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.clear = true
	m.mu.Unlock()
}

func (m *Settings) TakeClear() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.clear
	m.clear = false
	return v
}

func (m *Settings) RequestStop() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.stop = true
	m.mu.Unlock()
}

func (m *Settings) StopRequested() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop
}

var _ control.Provider = (*Settings)(nil)
