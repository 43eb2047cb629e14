package ui

import "os"

// nfEnabled returns true when Nerd Font icons should be rendered.
// Disable via NERDFONT=0 on systems without a patched font.
func nfEnabled() bool {
	return os.Getenv("NERDFONT") != "0"
}

func nf(icon, fallback string) string {
	if nfEnabled() {
		return icon
	}
	return fallback
}

func IconVolume() string   { return nf("\uf028", "vol") } // fa-volume-up
func IconMuted() string    { return nf("\uf026", "mute") } // fa-volume-off
func IconLock() string     { return nf("\uf023", "#") } // fa-lock
func IconTerminal() string { return nf("\uf120", ">_") } // fa-terminal
func IconKey() string      { return nf("\uf084", "*") } // fa-key
