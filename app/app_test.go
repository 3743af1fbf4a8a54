// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"bytes"
	"log/slog"
	"testing"

	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/config"
	"cogentcore.org/spincube/frame"
	"cogentcore.org/spincube/gl/gltest"
	"cogentcore.org/spincube/render"
	"cogentcore.org/spincube/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testHost struct {
	canvas  *gltest.Canvas
	frames  *frame.Manual
	lookups int
}

func newTestApp(t *testing.T) (*App, *testHost) {
	t.Helper()
	th := &testHost{canvas: gltest.NewCanvas()}
	a, err := New(config.Default(), Host{
		Canvas: func() (render.Canvas, error) {
			th.lookups++
			return th.canvas, nil
		},
		Frames: func(cb func()) (frame.Host, error) {
			th.frames = frame.NewManual(cb)
			return th.frames, nil
		},
	})
	require.NoError(t, err)
	return a, th
}

func captureLogs(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func TestNotStartedBeforeMount(t *testing.T) {
	a, th := newTestApp(t)
	assert.Nil(t, a.Driver())
	assert.Zero(t, th.lookups)
	assert.Empty(t, th.canvas.GL.Calls())
}

func TestMountStartsAnimation(t *testing.T) {
	a, th := newTestApp(t)
	a.Shell.Canvas.OnMounted()

	require.NotNil(t, a.Driver())
	assert.Equal(t, frame.Scheduled, a.Driver().State())
	assert.Equal(t, 480, th.canvas.Width)

	th.canvas.GL.Reset()
	assert.Equal(t, 5, th.frames.Run(5))
	draws := th.canvas.GL.Find("DrawElements")
	require.Len(t, draws, 5)
	for _, d := range draws {
		assert.Equal(t, 36, d.Args[1])
	}
}

func TestRepeatedMountSetsUpOnce(t *testing.T) {
	a, th := newTestApp(t)
	a.Shell.Mounted.Set(true)
	a.Shell.Mounted.Set(true)
	a.Shell.Canvas.OnMounted()

	assert.Equal(t, 1, th.lookups)
	assert.Equal(t, 1, th.canvas.Acquired())
	assert.Equal(t, 2, th.canvas.GL.Count("CompileShader"))
	assert.Equal(t, 3, th.canvas.GL.Count("CreateBuffer"))

	th.frames.Run(3)
	assert.Equal(t, 3, th.canvas.GL.Count("DrawElements"))
}

func TestContextFailure(t *testing.T) {
	buf := captureLogs(t)
	a, th := newTestApp(t)
	th.canvas.Err = errors.New("webgl2 unsupported")
	a.Shell.Canvas.OnMounted()

	assert.Nil(t, a.Driver())
	assert.Nil(t, th.frames)
	assert.Empty(t, th.canvas.GL.Calls())
	assert.Contains(t, buf.String(), "webgl2 unsupported")
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestAttribFailure(t *testing.T) {
	buf := captureLogs(t)
	a, th := newTestApp(t)
	th.canvas.GL.Attribs = map[string]int{render.ColorAttrib: -1}
	a.Shell.Canvas.OnMounted()

	assert.Nil(t, a.Driver())
	assert.Zero(t, th.canvas.GL.Count("VertexAttribPointer"))
	assert.Zero(t, th.canvas.GL.Count("DrawElements"))
	assert.Contains(t, buf.String(), `attribute \"color\" has no location`)
}

func TestCanvasLookupFailure(t *testing.T) {
	th := &testHost{}
	a, err := New(config.Default(), Host{
		Canvas: func() (render.Canvas, error) {
			th.lookups++
			return nil, errors.New("no canvas")
		},
	})
	require.NoError(t, err)
	a.Shell.Canvas.OnMounted()
	assert.Equal(t, 1, th.lookups)
	assert.False(t, a.Init.Started())
	assert.Nil(t, a.Driver())
}

func TestStop(t *testing.T) {
	a, th := newTestApp(t)
	a.Shell.Canvas.OnMounted()
	th.frames.Run(2)
	a.Stop()
	assert.Equal(t, frame.Stopped, a.Driver().State())
	assert.Zero(t, th.frames.Run(5))
	assert.Equal(t, 2, th.canvas.GL.Count("DrawElements"))
}

func TestShellSize(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 320, 200
	a, err := New(cfg, Host{})
	require.NoError(t, err)
	assert.Equal(t, "320", a.Shell.Canvas.Attrs["width"])
	assert.Equal(t, ui.CanvasID, a.Shell.Canvas.ID)
}

func TestNewInvalidBackground(t *testing.T) {
	cfg := config.Default()
	cfg.Background = "red"
	_, err := New(cfg, Host{})
	assert.Error(t, err)
}
