// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli classifies the command line of the demo
// and prints its usage.
package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/muesli/termenv"
)

// Action is what the command line asks the program to do.
type Action int

const (
	// Run runs the demo; there were no arguments.
	Run Action = iota

	// Help prints the usage to standard output and exits successfully.
	Help

	// Invalid prints the usage to standard error and exits with a failure.
	Invalid
)

func (a Action) String() string {
	switch a {
	case Run:
		return "Run"
	case Help:
		return "Help"
	case Invalid:
		return "Invalid"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// DefaultExe is the program name used when none is available.
const DefaultExe = "demo"

// Parse returns the [Action] for the given arguments,
// which exclude the program name.
func Parse(args []string) Action {
	switch {
	case len(args) == 0:
		return Run
	case len(args) == 1 && (args[0] == "--help" || args[0] == "-h"):
		return Help
	default:
		return Invalid
	}
}

// ExeName returns the invocation name to show in the usage
// for the given program path (os.Args[0]).
func ExeName(arg0 string) string {
	if arg0 == "" {
		return DefaultExe
	}
	return filepath.Base(arg0)
}

// Usage writes the usage text for the given executable name to w.
// The name is shown in bold if w is a color terminal.
func Usage(w io.Writer, exe string) error {
	out := termenv.NewOutput(w)
	name := exe
	if out.ColorProfile() != termenv.Ascii {
		name = out.String(exe).Bold().String()
	}
	_, err := fmt.Fprintf(w, "Usage: %s\n    GLFW tutorial with OpenGL.\n", name)
	return err
}
