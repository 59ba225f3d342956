// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"slices"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/rot/internal/config"
)

// NormalizeArgs rearranges a raw command line so that the parser sees every
// flag first, then a "--" terminator, then the positional arguments. Without
// this a negative SHIFT such as -3 would be taken for a flag.
//
// Only rot's own flags are moved; any other argument, dashes or not, is
// positional. defaults are flag strings from the config file. They are split
// on whitespace and placed ahead of the user's own flags so the latter win;
// entries that are not rot flags are dropped with a warning. -h/--help
// anywhere before an explicit "--" reduces the line to a help request.
// Everything after an explicit "--" is positional.
func NormalizeArgs(args []string, defaults []string) []string {
	if len(args) == 0 {
		return args
	}

	preamble := []string{args[0]}

	var flags, positional []string
	for _, d := range defaults {
		for _, f := range strings.Fields(d) {
			if !isFlag(f) {
				log.Warnf("config: ignoring defaults entry %q: not a rot flag", f)
				continue
			}
			flags = append(flags, f)
		}
	}

	rest := args[1:]
	for i, a := range rest {
		if a == "--" {
			positional = append(positional, rest[i+1:]...)
			break
		}
		if a == "--help" || a == "-h" {
			return append(preamble, "--help")
		}
		if isFlag(a) {
			flags = append(flags, a)
		} else {
			positional = append(positional, a)
		}
	}

	out := append(preamble, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

// ConfigDefaults returns the "defaults" flag list from the config file. A
// missing key is normal; an unusable value is logged and ignored.
func ConfigDefaults() []string {
	defaults, err := config.GetStringSlice("defaults")
	if err != nil {
		if !errors.Is(err, config.ErrKeyNotFound) {
			log.Warnf("config: ignoring defaults: %v", err)
		}
		return nil
	}
	return defaults
}

// isFlag is true for -name, --name and --name=value where name belongs to
// one of rot's flags.
func isFlag(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}
	name, _, _ := strings.Cut(strings.TrimLeft(a, "-"), "=")
	if name == "" {
		return false
	}
	for _, f := range NewRotFlags("") {
		if slices.Contains(f.Names(), name) {
			return true
		}
	}
	return false
}
