// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the rot CLI. It normalizes the raw argument list,
// wires flags and their config sources, and runs the rotation action.
package command
