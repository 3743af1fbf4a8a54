// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

// Package webgl implements [gl.Context] on top of a browser
// WebGL2RenderingContext through WASM.
package webgl

import (
	"fmt"

	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/gl"
	"github.com/hack-pad/safejs"
)

// ErrUnsupported is returned when the browser cannot create a WebGL 2 context.
var ErrUnsupported = errors.New("webgl: the browser did not return a webgl2 context")

// Canvas is an HTML canvas element.
type Canvas struct {
	el safejs.Value
}

// FindCanvas returns the canvas element with the given id in the document.
func FindCanvas(id string) (*Canvas, error) {
	doc, err := safejs.Global().Get("document")
	if err != nil {
		return nil, err
	}
	el, err := doc.Call("getElementById", id)
	if err != nil {
		return nil, err
	}
	if el.IsNull() || el.IsUndefined() {
		return nil, fmt.Errorf("webgl: no element with id %q", id)
	}
	return &Canvas{el: el}, nil
}

// Context requests the "webgl2" context of the canvas.
func (c *Canvas) Context() (gl.Context, error) {
	v, err := c.el.Call("getContext", "webgl2")
	if err != nil {
		return nil, fmt.Errorf("webgl: getContext: %w", err)
	}
	if v.IsNull() || v.IsUndefined() {
		return nil, ErrUnsupported
	}
	return newContext(v), nil
}

// SetSize sets the size of the canvas drawing buffer in pixels.
func (c *Canvas) SetSize(width, height int) {
	errors.Log(c.el.Set("width", width))
	errors.Log(c.el.Set("height", height))
}
