// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"errors"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/rot/internal/config"
	"github.com/staranto/rot/internal/meta"
)

func InitApp(ctx context.Context, args []string, streams meta.Streams) (*cli.Command, error) {

	// A missing config file is normal. One that exists but can't be parsed
	// is not.
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMalformed) {
			return nil, err
		}
		log.Debugf("config: %v", err)
	}

	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Streams: streams,
	}

	app := &cli.Command{
		Name:  "rot",
		Usage: "rotate ASCII letters by a fixed shift (Caesar cipher)",
		UsageText: `rot [options] SHIFT [PLAINTEXT]
echo PLAINTEXT | rot [options] SHIFT`,
		Description: `SHIFT is any signed integer and is taken modulo 26. With PLAINTEXT the
result is printed followed by a newline; without it stdin is rotated to
stdout as-is. Use -- before text that is spelled like a rot option.`,
		Metadata: map[string]any{
			"meta": m,
		},
		Reader:    streams.Stdin,
		Writer:    streams.Stdout,
		ErrWriter: streams.Stderr,
		Flags:     NewRotFlags(cfg.Source),
		Action:    RotCommandAction,
		// Stdout is cipher text only, so don't dump help there on a bad flag.
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return err
		},
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
