// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package caesar

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is returned in strict mode when the input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// WriteError reports a failed write to the sink. Written is the number of
// bytes the sink accepted before the failure.
type WriteError struct {
	Written int64
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write failed after %d bytes: %v", e.Written, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ReadError reports a failure reading the input. Offset is the number of input
// bytes consumed before the failure.
type ReadError struct {
	Offset int64
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read failed at byte %d: %v", e.Offset, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
