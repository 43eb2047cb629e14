package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"dossier/internal/system"
	"dossier/internal/terminal"
)

func init() {
	rootCmd.AddCommand(terminalCmd)
}

var terminalCmd = &cobra.Command{
	Use:     "terminal",
	Aliases: []string{"term"},
	Short:   "Run the system terminal as a plain REPL",
	Long:    "Run the dossier's system terminal on stdin/stdout without the full-screen viewer. Piped input is accepted; password prompts then read the next line.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _ := loadStory()
		in, err := terminal.New(s.Terminal, terminal.WithLogger(system.Logger))
		if err != nil {
			return fmt.Errorf("terminal config: %w", err)
		}
		fd := os.Stdin.Fd()
		interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		return runREPL(in, cmd.InOrStdin(), cmd.OutOrStdout(), interactive)
	},
}

// runREPL drives one session until exit or end of input. Interactive
// sessions do not repeat the echo line since the typed input is already on
// screen, and answer passwords through a masked form.
func runREPL(in *terminal.Interpreter, r io.Reader, w io.Writer, interactive bool) error {
	l := newLiner(r, w)
	exited := false
	sess := terminal.NewSession(in, func() { exited = true })
	printLines(w, sess.Lines(), true)

	ask := linePrompter(l)
	prompt := ""
	if interactive {
		ask = huhPrompter()
		prompt = terminal.EchoPrefix
	}
	for !exited {
		line, err := l.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		res := sess.Submit(line, ask)
		if res.Signal == terminal.SignalClear && interactive {
			fmt.Fprint(w, xansi.EraseEntireScreen+xansi.CursorHomePosition)
		}
		printLines(w, res.Lines, !interactive)
	}
	system.Logger.Debug("terminal exited")
	return nil
}

func printLines(w io.Writer, lines []terminal.Line, echo bool) {
	glitch := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	for _, l := range lines {
		switch l.Kind {
		case terminal.Echo:
			if !echo {
				continue
			}
		case terminal.Glitch:
			fmt.Fprintln(w, glitch.Render(l.Text))
			continue
		}
		fmt.Fprintln(w, l.Text)
	}
}
