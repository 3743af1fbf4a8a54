// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"sync/atomic"

	"cogentcore.org/spincube/gl"
)

// Canvas is a fake canvas element whose WebGL context is a [Recorder].
type Canvas struct {

	// GL is the context returned by Context.
	GL *Recorder

	// Err, if non-nil, is returned by Context instead of GL,
	// simulating a browser without WebGL 2 support.
	Err error

	// Width and Height are the drawing buffer size set through SetSize.
	Width, Height int

	acquired atomic.Int32
}

// NewCanvas returns a new [Canvas] with a fresh [Recorder].
func NewCanvas() *Canvas {
	return &Canvas{GL: NewRecorder()}
}

// Context returns the canvas context, or Err if it is set.
func (c *Canvas) Context() (gl.Context, error) {
	c.acquired.Add(1)
	if c.Err != nil {
		return nil, c.Err
	}
	return c.GL, nil
}

// SetSize sets the drawing buffer size.
func (c *Canvas) SetSize(width, height int) {
	c.Width, c.Height = width, height
}

// Acquired returns how many times Context has been called.
func (c *Canvas) Acquired() int {
	return int(c.acquired.Load())
}
