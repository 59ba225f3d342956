// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package caesar

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/apex/log"
	"github.com/clipperhouse/uax29/v2/graphemes"
)

// MaxClusterSize bounds the size of a single grapheme cluster read from the
// input. Longer clusters fail the transform with bufio.ErrTooLong.
const MaxClusterSize = 1 << 20

// Stats describes a completed (or aborted) transform.
type Stats struct {
	// Clusters is the number of grapheme clusters written.
	Clusters int64
	// Rotated is the number of clusters that were shifted.
	Rotated int64
	// Bytes is the number of bytes accepted by the sink.
	Bytes int64
}

type options struct {
	strict bool
}

// Option adjusts the behaviour of Transform.
type Option func(*options)

// Strict makes Transform fail with ErrInvalidUTF8 on malformed input instead
// of copying the offending bytes through.
func Strict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// Transform reads r to exhaustion, rotating every eligible grapheme cluster by
// shift and writing each result to w as soon as it is produced. It stops at
// the first write failure; whatever was already written stays written.
func Transform(w io.Writer, r io.Reader, shift int, opts ...Option) (Stats, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	offset := Normalize(shift)
	log.Debugf("transform: shift=%d offset=%d strict=%t", shift, offset, o.strict)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxClusterSize) //nolint:mnd
	sc.Split(graphemes.SplitFunc)

	var (
		stats    Stats
		consumed int64
	)

	for sc.Scan() {
		cluster := sc.Bytes()

		if o.strict && !utf8.Valid(cluster) {
			return stats, fmt.Errorf("%w at byte %d", ErrInvalidUTF8, consumed)
		}
		consumed += int64(len(cluster))

		if Eligible(cluster) {
			stats.Rotated++
		}
		out := RotateCluster(cluster, offset)

		n, err := w.Write(out)
		stats.Bytes += int64(n)
		if err == nil && n < len(out) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return stats, &WriteError{Written: stats.Bytes, Err: err}
		}
		stats.Clusters++
	}

	if err := sc.Err(); err != nil {
		return stats, &ReadError{Offset: consumed, Err: err}
	}
	return stats, nil
}

// TransformString is Transform for text already held in memory, such as a
// command-line argument.
func TransformString(w io.Writer, s string, shift int, opts ...Option) (Stats, error) {
	return Transform(w, strings.NewReader(s), shift, opts...)
}
