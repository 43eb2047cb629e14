package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dossier/internal/config"
	tu "dossier/internal/testutil"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	tu.ConfigHome(t)
	p, err := config.SettingsPath()
	if err != nil {
		t.Fatalf("SettingsPath error: %v", err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != Defaults() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestSaveLoad_RoundTripAndClamp(t *testing.T) {
	p := filepath.Join(t.TempDir(), "settings.yaml")
	in := Prefs{Volume: 1.7, TypeDelay: time.Millisecond, Snowflakes: 999, SkipIntro: true}
	if err := Save(p, in); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := Prefs{Volume: 1, TypeDelay: minDelay, Snowflakes: maxFlakes, SkipIntro: true}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(p, []byte("type_delay: 80ms\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.TypeDelay != 80*time.Millisecond || got.Volume != 0.15 || got.Snowflakes != 100 {
		t.Fatalf("unexpected prefs: %+v", got)
	}
}

func TestApply(t *testing.T) {
	got, err := apply(Defaults(), " 40 ", "120ms", 250, true)
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if got.Volume != 0.4 || got.TypeDelay != 120*time.Millisecond || got.Snowflakes != 250 || !got.SkipIntro {
		t.Fatalf("unexpected prefs: %+v", got)
	}
	if _, err := apply(Defaults(), "loud", "50ms", 0, false); err == nil {
		t.Fatalf("expected volume error")
	}
	if _, err := apply(Defaults(), "101", "50ms", 0, false); err == nil {
		t.Fatalf("expected range error")
	}
	if _, err := apply(Defaults(), "10", "soon", 0, false); err == nil {
		t.Fatalf("expected delay error")
	}
}
