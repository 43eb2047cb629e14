package ui

import (
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"dossier/internal/terminal"
)

func newTestTermView(t *testing.T) *termView {
	t.Helper()
	in, err := terminal.New(terminal.DefaultConfig(),
		terminal.WithRand(rand.New(rand.NewPCG(5, 6))),
		terminal.WithLogger(clog.New(io.Discard)))
	if err != nil {
		t.Fatalf("terminal.New: %v", err)
	}
	return newTermView(in, 60, 20, 1)
}

func (tv *termView) enter(s string) {
	tv.input.SetValue(s)
	tv.submit()
}

func TestTermView_GatedLogPrompt(t *testing.T) {
	tv := newTestTermView(t)
	tv.enter("access log 02%")
	if tv.prompt == nil || tv.prompt.Message != "Access restricted. Enter password:" {
		t.Fatalf("expected log gate prompt, got %+v", tv.prompt)
	}
	if !strings.Contains(tv.view(), "Access restricted.") {
		t.Fatalf("prompt message not shown:\n%s", tv.view())
	}
	// input while prompting is the answer, not a command
	tv.enter("kernel.404")
	if tv.prompt != nil {
		t.Fatalf("prompt still pending")
	}
	if !tv.session.State().Unlocked {
		t.Fatalf("log gate should be unlocked")
	}
	last := tv.lines[len(tv.lines)-1]
	if last.Kind != terminal.Glitch || !strings.HasPrefix(last.Text, "TEXT.LOG.02%") {
		t.Fatalf("expected glitch line, got %+v", last)
	}
	if !tv.reroll() {
		t.Fatalf("reroll should find the glitch line")
	}
}

func TestTermView_CancelCountsAsWrong(t *testing.T) {
	tv := newTestTermView(t)
	tv.enter("access log 02%")
	if !tv.cancel() {
		t.Fatalf("cancel should resolve the prompt")
	}
	got := terminal.Texts(tv.lines)
	want := []string{"> access log 02%", "Nice try."}
	if diff := cmp.Diff(want, got[len(got)-2:]); diff != "" {
		t.Fatalf("cancel lines (-want +got):\n%s", diff)
	}
	if tv.session.State().Unlocked {
		t.Fatalf("cancel changed state")
	}
	if tv.cancel() {
		t.Fatalf("cancel without prompt should report false")
	}
}

func TestTermView_ClearAndHint(t *testing.T) {
	tv := newTestTermView(t)
	tv.enter("helpp")
	if tv.hint != "did you mean `help`?" {
		t.Fatalf("hint = %q", tv.hint)
	}
	tv.enter("logs")
	if tv.hint != "" {
		t.Fatalf("hint should clear on a known command: %q", tv.hint)
	}
	tv.enter("clear")
	if len(tv.lines) != 0 {
		t.Fatalf("clear left %d lines", len(tv.lines))
	}
}

func TestTermView_History(t *testing.T) {
	tv := newTestTermView(t)
	tv.enter("help")
	tv.enter("logs")
	tv.recall(-1)
	if got := tv.input.Value(); got != "logs" {
		t.Fatalf("recall -1 = %q", got)
	}
	tv.recall(-1)
	tv.recall(-1)
	if got := tv.input.Value(); got != "help" {
		t.Fatalf("recall should stop at the oldest entry, got %q", got)
	}
	tv.recall(1)
	tv.recall(1)
	if got := tv.input.Value(); got != "" {
		t.Fatalf("recall past newest should clear input, got %q", got)
	}
}

func TestCompletions(t *testing.T) {
	in, err := terminal.New(terminal.DefaultConfig())
	if err != nil {
		t.Fatalf("terminal.New: %v", err)
	}
	got := completions(in)
	for _, want := range []string{"help", "logs", "clear", "exit", "unlock dossier", "access log 009"} {
		found := false
		for _, c := range got {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("completion %q missing from %v", want, got)
		}
	}
}

func TestDidYouMean(t *testing.T) {
	cands := []string{"help", "logs", "clear", "exit"}
	cases := map[string]string{
		"hlp":             "help",
		"CLR":             "clear",
		"exitt":           "exit",
		"":                "",
		"access log 999":  "",
		"zzzzzzzzzzzzzzz": "",
	}
	for in, want := range cases {
		if got := didYouMean(in, cands); got != want {
			t.Fatalf("didYouMean(%q) = %q, want %q", in, got, want)
		}
	}
}
