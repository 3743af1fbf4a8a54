// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package logx

import (
	"log/slog"

	"github.com/hack-pad/safejs"
)

// NewDefaultHandler returns a [Handler] that writes to the browser console:
// debug and info records go to console.log, warnings to console.warn,
// and errors to console.error.
func NewDefaultHandler() *Handler {
	console, err := safejs.Global().Get("console")
	return NewHandler(nil, func(level slog.Level, line string) {
		if err != nil {
			return
		}
		_, _ = console.Call(consoleMethod(level), line)
	})
}

func consoleMethod(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "error"
	case level >= slog.LevelWarn:
		return "warn"
	default:
		return "log"
	}
}
