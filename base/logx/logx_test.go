// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	prev := os.Stdout
	os.Stdout = w
	f()
	os.Stdout = prev
	require.NoError(t, w.Close())
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestPrintln(t *testing.T) {
	prev := UserLevel
	t.Cleanup(func() { UserLevel = prev })

	UserLevel = slog.LevelInfo
	out := captureStdout(t, func() {
		PrintlnInfo("serving", 8080)
		PrintlnDebug("hidden")
	})
	assert.Equal(t, "serving 8080\n", out)

	UserLevel = slog.LevelDebug
	out = captureStdout(t, func() {
		PrintlnDebug("shown")
	})
	assert.Equal(t, "shown\n", out)

	UserLevel = slog.LevelError
	out = captureStdout(t, func() {
		PrintlnInfo("hidden")
		PrintlnDebug("hidden")
	})
	assert.Empty(t, out)
}
