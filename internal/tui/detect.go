package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode selects how a table is presented on the terminal.
type OutputMode int

const (
	// OutputModePlain prints an unstyled ASCII table.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints a table rendered with the theme.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea browser.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

// DetectOptions are the inputs of DetectOutputMode.
type DetectOptions struct {
	// Terminal reports whether stdout is a terminal.
	Terminal bool
	// Plain forces plain output.
	Plain bool
	// Interactive is the --interactive flag value; InteractiveSet reports
	// whether the user gave it explicitly.
	Interactive    bool
	InteractiveSet bool
	// LookupEnv reads NO_COLOR and TERM. Nil means os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// DetectOutputMode picks the output mode. Plain output is used whenever stdout
// is not a terminal, --plain is given, TERM is "dumb" or NO_COLOR is set.
// On a terminal the browser runs unless --interactive=false was given.
func DetectOutputMode(opts DetectOptions) OutputMode {
	lookupEnv := opts.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	if opts.Plain || !opts.Terminal {
		return OutputModePlain
	}
	if t, ok := lookupEnv("TERM"); ok && t == "dumb" {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok && !opts.Interactive {
		return OutputModePlain
	}
	if opts.InteractiveSet && !opts.Interactive {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
