// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// rot is the main package for the rot command line tool. It applies a Caesar
// rotation to a literal argument or to stdin and writes the result to stdout.
package main
