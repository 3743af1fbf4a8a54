// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"log/slog"

	"cogentcore.org/spincube/gl"
	"cogentcore.org/spincube/math32"
)

// State is the animation state advanced once per frame.
type State struct {

	// Angle is the current rotation around the Y axis in radians.
	// It grows without bound.
	Angle float32

	// Frame is the number of frames drawn.
	Frame uint64
}

// Advance returns the state n frames after s, adding step to the angle
// once per frame. Angles accumulate in float32 and are not wrapped.
func Advance(s State, step float32, n int) State {
	for range n {
		s.Angle += step
		s.Frame++
	}
	return s
}

// Animator draws a [Scene] once per [Animator.Tick]. It does not schedule
// itself; a frame driver owned by the host calls Tick.
type Animator struct {
	Scene   *Scene
	Options Options
	State   State
}

// NewAnimator returns a new [Animator] for the given scene,
// starting at angle 0.
func NewAnimator(sc *Scene, opts Options) *Animator {
	return &Animator{Scene: sc, Options: opts}
}

// Tick draws one frame at the current angle, reports any pending
// WebGL error, and advances the state.
func (a *Animator) Tick() {
	next := Advance(a.State, a.Options.Step, 1)
	if a.Options.LogEvery > 0 && next.Frame%uint64(a.Options.LogEvery) == 0 {
		slog.Info("rendering frame", "frame", next.Frame, "angle", fmt.Sprintf("%.2f", a.State.Angle))
	}
	a.Draw(a.State.Angle)
	if e := a.Scene.GL.GetError(); e != gl.NoError {
		slog.Error("webgl error", "code", e)
	}
	a.State = next
}

// Draw clears the surface and draws the cube rotated by angle.
func (a *Animator) Draw(angle float32) {
	ctx, sc := a.Scene.GL, a.Scene
	bg := a.Options.Background
	ctx.ClearColor(bg[0], bg[1], bg[2], bg[3])
	ctx.Clear(gl.ColorBufferBit)

	m := math32.RotationY(angle)
	ctx.UniformMatrix4fv(sc.ModelView, false, m.Slice())

	ctx.BindBuffer(gl.ElementArrayBuffer, sc.Indices)
	ctx.DrawElements(gl.Triangles, sc.IndexCount, gl.UnsignedShort, 0)
}
