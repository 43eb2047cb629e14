package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"dossier/internal/settings"
	"dossier/internal/terminal"
)

// simple line reader with a printed prompt
type liner struct {
	r *bufio.Reader
	w io.Writer
}

func newLiner(r io.Reader, w io.Writer) *liner {
	return &liner{r: bufio.NewReader(r), w: w}
}

// Prompt prints prompt and reads one line without its line ending. A final
// line without newline is still returned; io.EOF follows on the next call.
func (l *liner) Prompt(prompt string) (string, error) {
	fmt.Fprint(l.w, prompt)
	s, err := l.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// linePrompter answers password prompts with the next input line. Used when
// stdin is not a terminal; end of input counts as a cancel.
func linePrompter(l *liner) terminal.Prompter {
	return terminal.PrompterFunc(func(msg string) (string, bool) {
		s, err := l.Prompt(msg + " ")
		if err != nil {
			return "", false
		}
		return s, true
	})
}

// huhPrompter asks with a masked huh input. Esc or ctrl+c cancels.
func huhPrompter() terminal.Prompter {
	return terminal.PrompterFunc(func(msg string) (string, bool) {
		var v string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(msg).
				EchoMode(huh.EchoModePassword).
				Value(&v),
		)).WithTheme(settings.Theme()).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return "", false
		}
		return v, true
	})
}
