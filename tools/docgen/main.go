// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

// Doc generator:
// - Reads docs/commands/*.md as canonical docs
// - Generates:
//   - docs/man/share/man1/<page>.1 via md2man
//   - docs/tldr/<page>.md from the short description and Quick examples block
//
// rot.md maps to the page "rot"; anything else to "rot-<name>".

const program = "rot"

func main() {
	var (
		repoRoot           string
		writeOnlyIfChanged bool
	)

	flag.StringVar(&repoRoot, "root", ".", "repo root (default current dir)")
	flag.BoolVar(&writeOnlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	n, err := generate(repoRoot, writeOnlyIfChanged)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("generated docs for %d page(s)\n", n)
}

func generate(repoRoot string, onlyIfChanged bool) (int, error) {
	commandsDir := filepath.Join(repoRoot, "docs", "commands")
	manOutDir := filepath.Join(repoRoot, "docs", "man", "share", "man1")
	tldrOutDir := filepath.Join(repoRoot, "docs", "tldr")

	for _, d := range []string{manOutDir, tldrOutDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return 0, fmt.Errorf("creating output dir %s: %w", d, err)
		}
	}

	entries, err := os.ReadDir(commandsDir)
	if err != nil {
		return 0, fmt.Errorf("reading commands dir %s: %w", commandsDir, err)
	}

	var processed int
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		page := pageName(strings.TrimSuffix(e.Name(), ".md"))
		inPath := filepath.Join(commandsDir, e.Name())
		raw, err := os.ReadFile(inPath)
		if err != nil {
			return processed, fmt.Errorf("reading %s: %w", inPath, err)
		}

		manPath := filepath.Join(manOutDir, page+".1")
		if err := writeFileIfChanged(manPath, md2man.Render(raw), onlyIfChanged); err != nil {
			return processed, fmt.Errorf("writing man page for %s: %w", page, err)
		}

		title, shortDesc := extractTitleAndShortDesc(string(raw))
		tldr := buildTLDR(page, title, shortDesc, extractQuickExamples(string(raw)))
		tldrPath := filepath.Join(tldrOutDir, page+".md")
		if err := writeFileIfChanged(tldrPath, []byte(tldr), onlyIfChanged); err != nil {
			return processed, fmt.Errorf("writing TLDR for %s: %w", page, err)
		}

		processed++
	}

	if processed == 0 {
		return 0, fmt.Errorf("no command markdown found under %s", commandsDir)
	}
	return processed, nil
}

func pageName(cmd string) string {
	if cmd == program {
		return program
	}
	return program + "-" + cmd
}

func writeFileIfChanged(path string, new []byte, onlyIfChanged bool) error {
	if !onlyIfChanged {
		return os.WriteFile(path, new, 0o644)
	}
	old, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.WriteFile(path, new, 0o644)
		}
		return err
	}
	if bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(new)) {
		return nil
	}
	return os.WriteFile(path, new, 0o644)
}

var h1Re = regexp.MustCompile(`(?m)^#\s+(.+)$`)

func extractTitleAndShortDesc(md string) (title, short string) {
	if m := h1Re.FindStringSubmatch(md); m != nil {
		title = strings.TrimSpace(m[1])
	}

	// First paragraph after the "Short description" header.
	idx := strings.Index(strings.ToLower(md), "short description")
	if idx >= 0 {
		rest := md[idx:]
		if nl := strings.Index(rest, "\n"); nl >= 0 {
			rest = rest[nl+1:]
		}
		var parts []string
		for _, ln := range strings.Split(rest, "\n") {
			ln = strings.TrimSpace(ln)
			if ln == "" {
				if len(parts) > 0 {
					break
				}
				continue
			}
			if strings.HasPrefix(ln, "#") {
				break
			}
			parts = append(parts, ln)
		}
		short = strings.Join(parts, " ")
	}
	if short == "" && title != "" {
		short = title + "."
	}
	return
}

type example struct {
	Desc string
	Cmd  string
}

// extractQuickExamples reads the first fenced block after "Quick examples".
// Lines starting with # describe the command line that follows them.
func extractQuickExamples(md string) []example {
	idx := strings.Index(strings.ToLower(md), "quick examples")
	if idx < 0 {
		return nil
	}
	rest := md[idx:]
	const fence = "```"
	start := strings.Index(rest, fence)
	if start < 0 {
		return nil
	}
	rest = rest[start+len(fence):]
	// Skip an info string such as ```sh.
	if nl := strings.Index(rest, "\n"); nl >= 0 {
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, fence)
	if end < 0 {
		return nil
	}

	var (
		exs  []example
		desc string
	)
	for _, ln := range strings.Split(rest[:end], "\n") {
		s := strings.TrimSpace(strings.TrimRight(ln, "\r"))
		switch {
		case s == "":
		case strings.HasPrefix(s, "#"):
			desc = strings.TrimSpace(strings.TrimPrefix(s, "#"))
		default:
			if desc == "" {
				desc = "Example"
			}
			exs = append(exs, example{Desc: desc, Cmd: strings.Join(strings.Fields(s), " ")})
			desc = ""
		}
	}
	return exs
}

func buildTLDR(page, title, short string, exs []example) string {
	var b strings.Builder
	b.WriteString("# " + page + "\n\n")
	switch {
	case short != "":
		b.WriteString("> " + short + "\n")
	case title != "":
		b.WriteString("> " + title + "\n")
	default:
		b.WriteString("> " + page + "\n")
	}
	b.WriteString("> More information: https://github.com/staranto/rot.\n\n")

	if len(exs) == 0 {
		b.WriteString("- Show help:\n\n")
		b.WriteString("`" + program + " --help`\n")
		return b.String()
	}

	for i, ex := range exs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + ex.Desc + ":\n\n")
		b.WriteString("`" + ex.Cmd + "`\n")
	}
	return b.String()
}
