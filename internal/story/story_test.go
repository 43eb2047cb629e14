package story

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"dossier/internal/terminal"
	tu "dossier/internal/testutil"
)

func TestDefault_MatchesDossier(t *testing.T) {
	s := Default()
	if s.Title != "TREAT'S STORY" || s.Heading != "TREAT DOSSIER" {
		t.Fatalf("unexpected titles: %q / %q", s.Title, s.Heading)
	}
	if len(s.Intro) != 3 {
		t.Fatalf("expected 3 intro lines, got %d", len(s.Intro))
	}
	var names []string
	for _, sec := range s.Sections {
		names = append(names, sec.Name)
	}
	if diff := cmp.Diff([]string{"Abilities", "Backstory", "Personality", "Terminal"}, names); diff != "" {
		t.Fatalf("sections (-want +got):\n%s", diff)
	}
	back, _ := s.Section("backstory")
	if !back.Locked || back.Open(false) || !back.Open(true) {
		t.Fatalf("backstory lock wrong: %+v", back)
	}
	term, _ := s.Section("Terminal")
	if len(term.Pages) != 1 || !term.Pages[0].Terminal {
		t.Fatalf("terminal section wrong: %+v", term)
	}
	if s.Terminal.LogGate.Secret != terminal.DefaultConfig().LogGate.Secret {
		t.Fatalf("default terminal config missing")
	}
}

func TestLoad_MissingFileYieldsDefault(t *testing.T) {
	dir := tu.ConfigHome(t)
	got, err := Load(filepath.Join(dir, "story.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Fatalf("default mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "story.yaml")
	in := Default()
	in.Title = "ANOTHER STORY"
	in.Terminal.Dossier = terminal.GateConfig{}
	if err := Save(p, in); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	out, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if out.Title != "ANOTHER STORY" {
		t.Fatalf("title lost: %q", out.Title)
	}
	if out.Terminal.Dossier.Secret != "" {
		t.Fatalf("dossier gate came back: %+v", out.Terminal.Dossier)
	}
	if diff := cmp.Diff(in.Terminal.Logs, out.Terminal.Logs); diff != "" {
		t.Fatalf("logs (-want +got):\n%s", diff)
	}
	if err := Save("  ", in); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoad_PartialFileFallsBack(t *testing.T) {
	p := filepath.Join(t.TempDir(), "story.yaml")
	yml := "title: Short\nterminal:\n  welcome: [\"hi\"]\n"
	if err := os.WriteFile(p, []byte(yml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Title != "Short" || s.Heading != "TREAT DOSSIER" || len(s.Sections) != 4 {
		t.Fatalf("fallback fields wrong: %+v", s)
	}
	// a partial terminal block is kept as-is; the interpreter fills the rest
	if diff := cmp.Diff([]string{"hi"}, s.Terminal.Welcome); diff != "" {
		t.Fatalf("welcome (-want +got):\n%s", diff)
	}
	in, err := terminal.New(s.Terminal)
	if err != nil {
		t.Fatalf("terminal.New: %v", err)
	}
	got := terminal.Texts(in.Eval("access log 001", terminal.State{}).Lines)
	if len(got) != 2 || !strings.HasPrefix(got[1], "TEXT.LOG.001") {
		t.Fatalf("defaults not applied: %v", got)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "story.yaml")
	if err := os.WriteFile(p, []byte("title: [unterminated"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := Load(p)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if s.Title != Default().Title {
		t.Fatalf("expected default story alongside the error")
	}
}

func TestMarkdown_HidesLockedSections(t *testing.T) {
	s := Default()
	locked := Markdown(s, false)
	if !strings.Contains(locked, "### Backstory (Locked)") {
		t.Fatalf("locked heading missing:\n%s", locked)
	}
	if strings.Contains(locked, "Rebirth") {
		t.Fatalf("locked content leaked:\n%s", locked)
	}
	if strings.Contains(locked, "System Terminal") {
		t.Fatalf("terminal page rendered:\n%s", locked)
	}
	open := Markdown(s, true)
	if !strings.Contains(open, "**Rebirth**") {
		t.Fatalf("unlocked content missing:\n%s", open)
	}
}

func TestSchema_DescribesSections(t *testing.T) {
	b, err := MarshalSchema(Schema())
	if err != nil {
		t.Fatalf("MarshalSchema error: %v", err)
	}
	for _, want := range []string{`"sections"`, `"terminal"`, `"log_gate"`, `"dossier story"`} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("schema missing %s", want)
		}
	}
}

func TestWatch_SeesWrites(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "story.yaml")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := Watch(ctx, p)
	if err != nil {
		t.Fatalf("Watch error: %v", err)
	}
	// unrelated files are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Save(p, Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatalf("no change notification")
	}
	cancel()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("channel not closed after cancel")
		}
	}
}
