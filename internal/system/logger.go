package system

import (
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger. CLI commands print to stderr;
// the TUI points it at a file via LogToFile so output never lands on the
// alt screen.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "dossier",
})

func init() {
	if os.Getenv("DOSSIER_DEBUG") != "" {
		Logger.SetLevel(clog.DebugLevel)
	}
}

// LogToFile redirects Logger to path and returns a func that closes the
// file and restores stderr.
func LogToFile(path string) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	Logger.SetOutput(f)
	return func() error {
		Logger.SetOutput(os.Stderr)
		return f.Close()
	}, nil
}

// Discard silences Logger, mostly for tests.
func Discard() { Logger.SetOutput(io.Discard) }
