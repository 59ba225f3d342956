// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output is the destination side of rot: a buffered, byte-counting
// sink over stdout and classification of the ways writing to it can fail.
package output
