// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/staranto/rot/internal/config"
)

// InitLogger sets up Apex with a custom handler and a log level from the
// ROT_LOG env variable, falling back to the "log" config key.
func InitLogger() {
	log.SetHandler(&CustomHandler{Writer: os.Stderr})
	log.SetLevelFromString(strings.ToLower(Level()))
}

// Level resolves the configured log level name.
func Level() string {
	level := strings.ToUpper(os.Getenv("ROT_LOG"))
	if level == "" {
		level, _ = config.GetString("log", "ERROR")
		level = strings.ToUpper(level)
	}
	if _, err := log.ParseLevel(strings.ToLower(level)); err != nil {
		level = "ERROR"
	}
	return level
}

// CustomHandler formats log messages and writes them to Writer. Stdout is
// reserved for cipher output, so this is normally stderr.
type CustomHandler struct {
	Writer io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := e.Timestamp.Format("2006-01-02 15:04:05")
	if e.Timestamp.IsZero() {
		timestamp = time.Now().Format("2006-01-02 15:04:05")
	}
	level := strings.ToUpper(e.Level.String())
	_, err := fmt.Fprintf(h.Writer, "%s %.1s %s\n", timestamp, level, e.Message)
	return err
}
