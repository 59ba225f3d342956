// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bufio"
	"errors"
	"io"
	"syscall"

	"github.com/dustin/go-humanize"
)

// Sink is the buffered destination for transformed text. In line mode every
// write ending in a newline is flushed straight through, which keeps
// interactive sessions responsive.
type Sink struct {
	w        *bufio.Writer
	lineMode bool
	written  int64
}

// NewSink wraps w. Callers must Flush when done.
func NewSink(w io.Writer, lineMode bool) *Sink {
	return &Sink{
		w:        bufio.NewWriter(w),
		lineMode: lineMode,
	}
}

// Write implements io.Writer.
func (s *Sink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.written += int64(n)
	if err != nil {
		return n, err
	}
	if s.lineMode && len(p) > 0 && p[len(p)-1] == '\n' {
		err = s.w.Flush()
	}
	return n, err
}

// Flush pushes any buffered bytes to the underlying writer.
func (s *Sink) Flush() error {
	return s.w.Flush()
}

// Written returns the number of bytes accepted so far.
func (s *Sink) Written() int64 {
	return s.written
}

// Summary renders Written for humans, e.g. "1.2 kB".
func (s *Sink) Summary() string {
	return humanize.Bytes(uint64(s.written))
}

// IsBrokenPipe reports whether err was caused by the reading end of the
// output going away.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
