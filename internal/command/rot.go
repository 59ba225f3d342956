// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/rot/internal/caesar"
	"github.com/staranto/rot/internal/output"
	"github.com/staranto/rot/internal/version"
)

// RotCommandAction rotates PLAINTEXT, or stdin when PLAINTEXT is absent, by
// SHIFT and writes the result to stdout. Nothing is written when SHIFT is
// invalid.
func RotCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", cmd.Args().Slice())

	if cmd.Bool("version") {
		_, err := fmt.Fprintln(m.Stdout, version.Version)
		return err
	}

	args := cmd.Args()
	if err := PositionalValidator(args.Len()); err != nil {
		return err
	}

	shift, err := ParseShift(args.Get(0))
	if err != nil {
		return err
	}
	if cmd.Bool("decode") {
		shift = caesar.AlphabetSize - caesar.Normalize(shift)
	}
	log.Debugf("shift=%d offset=%d", shift, caesar.Normalize(shift))

	var opts []caesar.Option
	if cmd.Bool("strict") {
		opts = append(opts, caesar.Strict())
	}

	sink := output.NewSink(m.Stdout, m.Interactive)

	var stats caesar.Stats
	if args.Len() == 2 {
		text := args.Get(1)
		log.Debugf("source: argument (%d bytes)", len(text))
		stats, err = caesar.TransformString(sink, text, shift, opts...)
		if err == nil {
			_, err = io.WriteString(sink, "\n")
		}
	} else {
		log.Debugf("source: stdin")
		stats, err = caesar.Transform(sink, m.Stdin, shift, opts...)
	}

	if ferr := sink.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("flush output: %w", ferr)
	}

	log.Debugf("clusters=%d rotated=%d wrote %s", stats.Clusters, stats.Rotated, sink.Summary())

	if err != nil && output.IsBrokenPipe(err) {
		return fmt.Errorf("broken pipe: %w", err)
	}
	return err
}
