package highgui

import (
	"log/slog"

	"github.com/soocke/marker-paint-go/domain/control"
	"github.com/soocke/marker-paint-go/domain/paint"
)

// KeyPoller returns the next pressed key or -1.
type KeyPoller interface {
	PollKey(delayMs int) int
}

// Controls is the mutable operator state keys are applied to.
type Controls interface {
	control.Provider
	SetChannel(paint.Channel) bool
	RequestClear()
	RequestStop()
}

const keyEsc = 27

// Keyboard decorates Controls with key bindings: c clears, 1-4 select the
// color, q or ESC stop. Keys are polled once per frame from StopRequested,
// which the loop calls before every read.
type Keyboard struct {
	Controls
	keys    KeyPoller
	delayMs int
	logger  *slog.Logger
}

func NewKeyboard(c Controls, keys KeyPoller, delayMs int, logger *slog.Logger) *Keyboard {
	if delayMs < 1 {
		delayMs = 1
	}
	return &Keyboard{Controls: c, keys: keys, delayMs: delayMs, logger: logger}
}

func (k *Keyboard) StopRequested() bool {
	if k.keys != nil {
		k.HandleKey(k.keys.PollKey(k.delayMs))
	}
	return k.Controls.StopRequested()
}

// HandleKey applies one key code. Unbound keys and -1 are ignored.
func (k *Keyboard) HandleKey(key int) {
	if key < 0 {
		return
	}
	switch key & 0xff {
	case 'c', 'C':
		k.RequestClear()
	case 'q', 'Q', keyEsc:
		k.RequestStop()
	case '1', '2', '3', '4':
		ch := paint.Channel(key&0xff - '1')
		if k.SetChannel(ch) && k.logger != nil {
			k.logger.Info("color selected", "color", ch.String())
		}
	}
}
