// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrMissingShift = errors.New("missing SHIFT argument")
	ErrTooManyArgs  = errors.New("too many arguments; quote PLAINTEXT or pipe it on stdin")
)

// ShiftError reports a SHIFT argument that is not an integer.
type ShiftError struct {
	Value string
	Err   error
}

func (e *ShiftError) Error() string {
	reason := e.Err
	var ne *strconv.NumError
	if errors.As(e.Err, &ne) {
		reason = ne.Err
	}
	return fmt.Sprintf("cannot parse shift value: `%s` (%v)", e.Value, reason)
}

func (e *ShiftError) Unwrap() error { return e.Err }

// ParseShift parses a signed decimal SHIFT.
func ParseShift(value string) (int, error) {
	shift, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ShiftError{Value: value, Err: err}
	}
	return shift, nil
}

// PositionalValidator checks that there is a SHIFT and at most one PLAINTEXT.
func PositionalValidator(n int) error {
	switch {
	case n == 0:
		return ErrMissingShift
	case n > 2:
		return ErrTooManyArgs
	}
	return nil
}
