// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides slog based logging for both the browser
// console and native terminals.
package logx

import (
	"log/slog"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through config or command line flags to the end user's preference.
// The default user verbosity level depends on the build tags; see
// level_default.go, level_debug.go, and level_release.go.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ParseLevel parses a level name such as "debug", "info", "warn", or
// "error" (case insensitive, with optional +N/-N offsets as in slog).
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(s)))
	return l, err
}

// userLeveler reports [UserLevel] at the time of each call, so that
// changing UserLevel after installing a handler takes effect immediately.
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }
