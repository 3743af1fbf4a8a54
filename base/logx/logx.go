// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"log/slog"
)

// SetDefaultLogger sets the default [slog] logger to one that uses
// [NewDefaultHandler], filtered by [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewDefaultHandler()))
}

// PrintlnDebug is equivalent to [fmt.Println], but only
// prints if [UserLevel] is at or below [slog.LevelDebug].
func PrintlnDebug(a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Println(a...)
	}
}

// PrintlnInfo is equivalent to [fmt.Println], but only
// prints if [UserLevel] is at or below [slog.LevelInfo].
func PrintlnInfo(a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Println(a...)
	}
}
