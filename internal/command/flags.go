// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewRotFlags builds the flag set for rot. cfgSource is the config file path,
// which may be empty when no config file was found.
func NewRotFlags(cfgSource string) []cli.Flag {
	strictSources := cli.NewValueSourceChain(
		cli.EnvVar("ROT_STRICT"),
	)
	if cfgSource != "" {
		strictSources.Chain = append(strictSources.Chain,
			yaml.YAML("strict", altsrc.StringSourcer(cfgSource)))
	}

	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "decode",
			Aliases:     []string{"d"},
			Usage:       "rotate backwards, undoing a previous rotation by SHIFT",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "strict",
			Usage:       "fail on input that is not valid UTF-8 instead of copying it through",
			Sources:     strictSources,
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "rot version info",
			HideDefault: true,
		},
	}
}
