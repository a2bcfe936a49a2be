package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate_ClampsAndOrdersHSV(t *testing.T) {
	c := DefaultConfig()
	c.LowerHue, c.UpperHue = 200, 10
	c.LowerSat, c.UpperSat = -5, 300
	c.ColorIndex = 9
	_ = c.Validate()
	if c.LowerHue != 10 || c.UpperHue != 180 {
		t.Fatalf("hue not normalized: lower=%d upper=%d", c.LowerHue, c.UpperHue)
	}
	if c.LowerSat != 0 || c.UpperSat != 255 {
		t.Fatalf("sat not clamped: lower=%d upper=%d", c.LowerSat, c.UpperSat)
	}
	if c.ColorIndex != 3 {
		t.Fatalf("expected color index clamped to 3, got %d", c.ColorIndex)
	}
}

func TestValidate_ResetsUnknownModes(t *testing.T) {
	c := DefaultConfig()
	c.Source = "webcam"
	c.UI = "gtk"
	c.BufferCapacity = 0
	c.ClearMinX, c.ClearMaxX = 140, 40
	_ = c.Validate()
	if c.Source != SourceCamera || c.UI != UITk {
		t.Fatalf("unexpected modes source=%q ui=%q", c.Source, c.UI)
	}
	if c.BufferCapacity != 1024 {
		t.Fatalf("expected default capacity, got %d", c.BufferCapacity)
	}
	if c.ClearMinX != 40 || c.ClearMaxX != 140 {
		t.Fatalf("clear span not ordered: %d..%d", c.ClearMinX, c.ClearMaxX)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSaveLoad_PreservesEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	c := DefaultConfig()
	c.LowerHue = 20
	c.ColorIndex = 2
	c.Source = SourceScreen
	if err := c.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.LowerHue != 20 || got.ColorIndex != 2 || got.Source != SourceScreen {
		t.Fatalf("round trip lost edits: %+v", got)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.UpperHue != 153 {
		t.Fatalf("expected defaults alongside error, got %+v", cfg)
	}
}
