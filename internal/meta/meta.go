// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/staranto/rot/internal/config"
)

// Streams are the process I/O handles a command reads from and writes to.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Interactive is true when a human is on either end, in which case output
	// is flushed line by line.
	Interactive bool
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: isTerminal(os.Stdin) || isTerminal(os.Stdout),
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	Streams
}
