package cli

import (
	"os"

	"github.com/funvibe/numbra/internal/config"
	"github.com/mattn/go-isatty"
)

const (
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// fdWriter is satisfied by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// useColor resolves a color mode for output written to w.
func useColor(mode string, w interface{}) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
