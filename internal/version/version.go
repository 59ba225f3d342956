// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build version, set with
// -ldflags "-X github.com/staranto/rot/internal/version.Version=...".
package version

var Version = "dev"
