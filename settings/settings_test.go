package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load of missing file: %v", err)
	}
	if s != Default() {
		t.Errorf("got %+v, want factory defaults", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	want := Settings{Brightness: 64, PlayerColorIndex: 3, SoundEnabled: true}
	if err := want.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestLoadCorruptFileYieldsDefaultsWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err == nil {
		t.Error("Load of corrupt file returned no error")
	}
	if s != Default() {
		t.Errorf("got %+v, want factory defaults", s)
	}
}

func TestPlayerColor(t *testing.T) {
	s := Settings{PlayerColorIndex: 2}
	if s.PlayerColor() != PlayerColors[2] {
		t.Error("PlayerColor did not resolve the configured palette entry")
	}

	// An index saved by a newer build with a bigger palette falls back.
	s.PlayerColorIndex = 200
	if s.PlayerColor() != PlayerColors[0] {
		t.Error("out-of-range index did not fall back to the first color")
	}
}

func TestPaletteNamesAligned(t *testing.T) {
	if len(PlayerColors) != len(PlayerColorNames) {
		t.Fatalf("%d colors but %d names", len(PlayerColors), len(PlayerColorNames))
	}
}
