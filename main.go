// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"

	"github.com/staranto/rot/internal/command"
	mylog "github.com/staranto/rot/internal/log"
	"github.com/staranto/rot/internal/meta"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	// Report a closed stdout as a write error instead of dying on SIGPIPE.
	signal.Ignore(syscall.SIGPIPE)

	args := os.Args

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No shift specified.")
		args = append(args, "--help")
	} else {
		args = command.NormalizeArgs(args, command.ConfigDefaults())
	}
	log.Debugf("args=%v", args)

	app, err := command.InitApp(ctx, args, meta.StdStreams())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}
