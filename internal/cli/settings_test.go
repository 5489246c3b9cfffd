package cli

import (
	"os"
	"path/filepath"
	"testing"

	"morris/internal/morris"
)

func TestSettingsStoreLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s := NewSettings()
	s.FirstPlayer = morris.Black
	s.Board.Empty = "+"
	if err := StoreSettings(path, s); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.FirstPlayer != morris.Black {
		t.Fatalf("first player got=%v want=%v", loaded.FirstPlayer, morris.Black)
	}
	if got := loaded.Glyphs(); got != (morris.Glyphs{Empty: "+", White: "○", Black: "●"}) {
		t.Fatalf("glyphs got=%+v", got)
	}
}

func TestSettingsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"board": {"white": "W", "empty": ""}}`), 0666); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.FirstPlayer != morris.NoColor {
		t.Fatalf("missing first player should stay NoColor, got=%v", s.FirstPlayer)
	}
	want := morris.Glyphs{Empty: "·", White: "W", Black: "●"}
	if got := s.Glyphs(); got != want {
		t.Fatalf("glyphs got=%+v want=%+v", got, want)
	}
}

func TestSettingsErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadSettings(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("loading a missing file must fail")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"first_player": "red"}`), 0666); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(bad); err == nil {
		t.Fatalf("unknown colour must be rejected")
	}
	var nilSettings *Settings
	if nilSettings.Glyphs() != morris.DefaultGlyphs {
		t.Fatalf("nil settings should use the default glyphs")
	}
}
