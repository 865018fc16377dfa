// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"golang.org/x/term"
)

const (
	ColorReset  = "\x1b[0m"
	ColorBold   = "\x1b[1m"
	ColorRed    = "\x1b[31m"
	ColorGreen  = "\x1b[32m"
	ColorYellow = "\x1b[33m"
	ColorCyan   = "\x1b[36m"
	ColorDim    = "\x1b[90m"
)

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that is enabled only if enabled is true
// and the environment allows colour (NO_COLOR unset, TERM set and not dumb).
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	t := os.Getenv("TERM")
	if t == "" || t == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// ForFile is NewColorizer enabled when f is a terminal.
func ForFile(f *os.File) Colorizer {
	return NewColorizer(IsTerminal(f))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

func (c Colorizer) Wrap(code, text string) string {
	if !c.Enabled || code == "" || text == "" {
		return text
	}
	return code + text + ColorReset
}
