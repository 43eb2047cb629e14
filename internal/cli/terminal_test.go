package cli

import (
	"bytes"
	"strings"
	"testing"

	"dossier/internal/terminal"
)

func newREPLInterpreter(t *testing.T) *terminal.Interpreter {
	t.Helper()
	in, err := terminal.New(terminal.DefaultConfig())
	if err != nil {
		t.Fatalf("terminal.New: %v", err)
	}
	return in
}

func TestRunREPL_PipedSession(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"access log 02%",
		"wrong",
		"access log 02%",
		"kernel.404",
		"exit",
		"logs",
	}, "\n") + "\n"
	var out bytes.Buffer
	if err := runREPL(newREPLInterpreter(t), strings.NewReader(input), &out, false); err != nil {
		t.Fatalf("runREPL error: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Welcome to Treat's Terminal.",
		"> help",
		"`clear` - Clear terminal",
		"Access restricted. Enter password:",
		"Nice try.",
		"TEXT.LOG.02%",
		"> exit",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "> logs") {
		t.Fatalf("input after exit was evaluated:\n%s", got)
	}
}

func TestRunREPL_EOFEndsQuietly(t *testing.T) {
	var out bytes.Buffer
	// no trailing newline on the last line, then EOF inside a prompt
	if err := runREPL(newREPLInterpreter(t), strings.NewReader("bogus\naccess log 02%"), &out, false); err != nil {
		t.Fatalf("runREPL error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Unrecognized command.") {
		t.Fatalf("bogus not answered:\n%s", got)
	}
	if !strings.Contains(got, "Nice try.") {
		t.Fatalf("EOF at the prompt should count as a cancel:\n%s", got)
	}
}

func TestPrintLines_SkipsEcho(t *testing.T) {
	lines := []terminal.Line{
		{Text: "> help", Kind: terminal.Echo},
		{Text: "body", Kind: terminal.Plain},
	}
	var out bytes.Buffer
	printLines(&out, lines, false)
	if got := out.String(); got != "body\n" {
		t.Fatalf("got %q", got)
	}
	out.Reset()
	printLines(&out, lines, true)
	if got := out.String(); got != "> help\nbody\n" {
		t.Fatalf("got %q", got)
	}
}
