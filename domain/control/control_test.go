package control

import (
	"testing"

	"github.com/soocke/marker-paint-go/config"
	"github.com/soocke/marker-paint-go/domain/paint"
	"github.com/soocke/marker-paint-go/domain/vision"
)

func TestFromConfig_Defaults(t *testing.T) {
	s := FromConfig(nil)
	want := vision.HSVRange{Lower: vision.HSV{H: 64, S: 72, V: 49}, Upper: vision.HSV{H: 153, S: 255, V: 255}}
	if s.Bounds != want || s.Channel != paint.Blue {
		t.Fatalf("unexpected defaults: %v %v", s.Bounds, s.Channel)
	}
	cfg := config.DefaultConfig()
	cfg.ColorIndex = 3
	if FromConfig(cfg).Channel != paint.Yellow {
		t.Fatalf("color index not mapped")
	}
}

func TestStatic_Requests(t *testing.T) {
	p := NewStatic(Settings{Channel: paint.Green})
	if p.TakeClear() || p.StopRequested() {
		t.Fatalf("fresh provider has no requests")
	}
	p.RequestClear()
	if !p.TakeClear() || p.TakeClear() {
		t.Fatalf("clear must be consumed exactly once")
	}
	p.RequestStop()
	if !p.StopRequested() {
		t.Fatalf("stop not reported")
	}
	if p.Settings().Channel != paint.Green {
		t.Fatalf("settings changed")
	}
}
