package highgui

import (
	"testing"

	"github.com/soocke/marker-paint-go/domain/control"
	"github.com/soocke/marker-paint-go/domain/paint"
	"github.com/soocke/marker-paint-go/ui/model"
)

type scriptedKeys struct{ keys []int }

func (s *scriptedKeys) PollKey(int) int {
	if len(s.keys) == 0 {
		return -1
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k
}

func TestKeyboard_Bindings(t *testing.T) {
	m := model.NewSettings(control.FromConfig(nil))
	kb := NewKeyboard(m, nil, 1, nil)

	kb.HandleKey('3')
	if m.Settings().Channel != paint.Red {
		t.Fatalf("expected red, got %v", m.Settings().Channel)
	}
	kb.HandleKey('9')
	if m.Settings().Channel != paint.Red {
		t.Fatalf("unbound key changed channel")
	}
	kb.HandleKey('c')
	if !kb.TakeClear() {
		t.Fatalf("c should request a clear")
	}
	kb.HandleKey(-1)
	if kb.Controls.StopRequested() {
		t.Fatalf("no key should not stop")
	}
	kb.HandleKey(keyEsc)
	if !kb.Controls.StopRequested() {
		t.Fatalf("ESC should stop")
	}
}

func TestKeyboard_PollsOncePerStopCheck(t *testing.T) {
	m := model.NewSettings(control.FromConfig(nil))
	keys := &scriptedKeys{keys: []int{-1, '2', 'q'}}
	kb := NewKeyboard(m, keys, 1, nil)

	if kb.StopRequested() {
		t.Fatalf("first poll has no key")
	}
	if kb.StopRequested() || kb.Settings().Channel != paint.Green {
		t.Fatalf("second poll should select green, got %v", kb.Settings().Channel)
	}
	if !kb.StopRequested() {
		t.Fatalf("third poll should stop")
	}
}

var _ control.Provider = (*Keyboard)(nil)
