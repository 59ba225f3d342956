// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package caesar implements the rotation transform behind rot. Input is
// segmented into extended grapheme clusters and only clusters made of a single
// ASCII letter are shifted; every other cluster is copied through untouched.
package caesar
