// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package logx

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// NewDefaultHandler returns a [Handler] that writes to standard error,
// coloring the level name when the terminal supports it.
func NewDefaultHandler() *Handler {
	o := termenv.NewOutput(os.Stderr)
	return NewHandler(nil, func(level slog.Level, line string) {
		name, rest, _ := strings.Cut(line, " ")
		fmt.Fprintln(o, o.String(name).Foreground(levelColor(level)).Bold().String()+" "+rest)
	})
}

func levelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIRed
	case level >= slog.LevelWarn:
		return termenv.ANSIYellow
	case level >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBlue
	}
}
