// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/rot/internal/caesar"
	"github.com/staranto/rot/internal/config"
	"github.com/staranto/rot/internal/meta"
)

type pipeWriter struct{}

func (pipeWriter) Write(p []byte) (int, error) { return 0, syscall.EPIPE }

// isolate points the command at cfgFile (or nowhere) and clears env sources.
func isolate(t *testing.T, cfgFile string) {
	t.Helper()

	if cfgFile == "" {
		cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	} else {
		abs, err := filepath.Abs(filepath.Join("testdata", cfgFile))
		require.NoError(t, err)
		cfgFile = abs
	}
	t.Setenv("ROT_CFG", cfgFile)

	t.Setenv("ROT_STRICT", "")
	require.NoError(t, os.Unsetenv("ROT_STRICT"))

	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })
}

func runWith(t *testing.T, stdin io.Reader, stdout io.Writer, args ...string) error {
	t.Helper()

	ctx := context.Background()
	full := NormalizeArgs(append([]string{"rot"}, args...), nil)
	streams := meta.Streams{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: io.Discard,
	}

	app, err := InitApp(ctx, full, streams)
	require.NoError(t, err)
	return app.Run(ctx, full)
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := runWith(t, strings.NewReader(stdin), &out, args...)
	return out.String(), err
}

func TestRotCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "literal alphabet",
			args: []string{"23", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
			want: "XYZABCDEFGHIJKLMNOPQRSTUVW\n",
		},
		{
			name: "literal negative shift",
			args: []string{"-3", "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG"},
			want: "QEB NRFZH YOLTK CLU GRJMP LSBO QEB IXWV ALD\n",
		},
		{
			name:  "stdin keeps its own newline",
			stdin: "defend the east wall of the castle\n",
			args:  []string{"1"},
			want:  "efgfoe uif fbtu xbmm pg uif dbtumf\n",
		},
		{
			name:  "stdin without newline gets none",
			stdin: "abc",
			args:  []string{"1"},
			want:  "bcd",
		},
		{
			name:  "literal wins over stdin",
			stdin: "ignored",
			args:  []string{"13", "Hello"},
			want:  "Uryyb\n",
		},
		{
			name: "empty literal",
			args: []string{"5", ""},
			want: "\n",
		},
		{
			name: "empty stdin",
			args: []string{"5"},
			want: "",
		},
		{
			name: "decode",
			args: []string{"-d", "3", "Khoor, Zruog!"},
			want: "Hello, World!\n",
		},
		{
			name: "decode negative",
			args: []string{"--decode", "-3", "QEB"},
			want: "THE\n",
		},
		{
			name: "shift beyond alphabet",
			args: []string{"263", "abc"},
			want: "def\n",
		},
		{
			name: "dashed plaintext after terminator",
			args: []string{"3", "--", "-h"},
			want: "-k\n",
		},
		{
			name: "dashed plaintext",
			args: []string{"-3", "-x"},
			want: "-u\n",
		},
		{
			name: "dashed plaintext word",
			args: []string{"1", "-abc"},
			want: "-bcd\n",
		},
		{
			name:  "graphemes pass through",
			stdin: "é 👍🏽 z\r\n",
			args:  []string{"1"},
			want:  "é 👍🏽 a\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t, "")

			got, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRotCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantIs  error
		wantMsg string
	}{
		{
			name:    "bad shift",
			args:    []string{"abc", "text"},
			wantMsg: "cannot parse shift value: `abc` (invalid syntax)",
		},
		{
			name:    "malformed negative shift",
			args:    []string{"-3x"},
			wantMsg: "cannot parse shift value: `-3x` (invalid syntax)",
		},
		{
			name:   "unknown flag is not a shift",
			args:   []string{"--bogus", "3", "x"},
			wantIs: ErrTooManyArgs,
		},
		{
			name:    "unknown flag in shift position",
			args:    []string{"--bogus", "x"},
			wantMsg: "cannot parse shift value: `--bogus` (invalid syntax)",
		},
		{
			name: "bad flag value",
			args: []string{"--strict=maybe", "3", "x"},
		},
		{
			name:   "missing shift",
			args:   []string{"--strict"},
			wantIs: ErrMissingShift,
		},
		{
			name:   "too many args",
			args:   []string{"3", "one", "two"},
			wantIs: ErrTooManyArgs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t, "")

			got, err := run(t, "stdin text", tt.args...)
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
			assert.Empty(t, got, "no output on configuration errors")
		})
	}
}

func TestRotCommandUsageErrorKeepsStdoutClean(t *testing.T) {
	isolate(t, "")

	ctx := context.Background()
	var out, errOut bytes.Buffer
	streams := meta.Streams{Stdin: strings.NewReader("abc"), Stdout: &out, Stderr: &errOut}

	// Unnormalized, so the parser itself sees the unknown flag.
	args := []string{"rot", "--bogus", "--", "3"}
	app, err := InitApp(ctx, args, streams)
	require.NoError(t, err)

	err = app.Run(ctx, args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
	assert.Empty(t, out.String())
}

func TestRotCommandStrict(t *testing.T) {
	const input = "ab\xffcd"

	t.Run("off by default", func(t *testing.T) {
		isolate(t, "")
		got, err := run(t, input, "1")
		require.NoError(t, err)
		assert.Equal(t, "bc\xffde", got)
	})

	t.Run("flag", func(t *testing.T) {
		isolate(t, "")
		got, err := run(t, input, "--strict", "1")
		assert.ErrorIs(t, err, caesar.ErrInvalidUTF8)
		assert.Equal(t, "bc", got, "output before the bad byte is kept")
	})

	t.Run("env", func(t *testing.T) {
		isolate(t, "")
		t.Setenv("ROT_STRICT", "true")
		_, err := run(t, input, "1")
		assert.ErrorIs(t, err, caesar.ErrInvalidUTF8)
	})

	t.Run("config", func(t *testing.T) {
		isolate(t, "strict.yaml")
		_, err := run(t, input, "1")
		assert.ErrorIs(t, err, caesar.ErrInvalidUTF8)
	})

	t.Run("flag overrides config", func(t *testing.T) {
		isolate(t, "strict.yaml")
		got, err := run(t, input, "--strict=false", "1")
		require.NoError(t, err)
		assert.Equal(t, "bc\xffde", got)
	})
}

func TestRotCommandBrokenPipe(t *testing.T) {
	isolate(t, "")

	err := runWith(t, strings.NewReader("hello"), pipeWriter{}, "1")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "broken pipe: "), err.Error())
	assert.ErrorIs(t, err, syscall.EPIPE)
}

func TestRotCommandReadFailure(t *testing.T) {
	isolate(t, "")

	boom := errors.New("boom")
	var out bytes.Buffer
	err := runWith(t, io.MultiReader(strings.NewReader("abc"), errReader{boom}), &out, "1")

	var re *caesar.ReadError
	require.ErrorAs(t, err, &re)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "bcd", out.String())
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestRotCommandHelp(t *testing.T) {
	for _, args := range [][]string{{"--help"}, {"3", "-h"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			isolate(t, "")

			got, err := run(t, "", args...)
			require.NoError(t, err)
			assert.Contains(t, got, "rot [options] SHIFT [PLAINTEXT]")
			assert.Contains(t, got, "--strict")
			assert.Contains(t, got, "--decode")
		})
	}
}

func TestRotCommandVersion(t *testing.T) {
	isolate(t, "")

	got, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", got)
}

func TestInitAppMalformedConfig(t *testing.T) {
	isolate(t, "malformed.yaml")

	_, err := InitApp(context.Background(), []string{"rot", "--", "1"}, meta.Streams{})
	assert.ErrorIs(t, err, config.ErrMalformed)
}

func TestGetMeta(t *testing.T) {
	assert.Equal(t, meta.Meta{}, GetMeta(nil))

	isolate(t, "")
	args := []string{"rot", "--", "1"}
	app, err := InitApp(context.Background(), args, meta.Streams{Stdout: io.Discard})
	require.NoError(t, err)
	assert.Equal(t, args, GetMeta(app).Args)
}
