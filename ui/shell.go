// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import "strconv"

const (
	// RootID is the id of the container element.
	RootID = "app"

	// CanvasID is the id of the canvas element.
	CanvasID = "webgl-canvas"
)

// Shell is the page: a centered container holding one canvas.
type Shell struct {
	Root   *Node
	Canvas *Node

	// Mounted becomes true when the canvas is attached to the document.
	Mounted *Signal[bool]
}

// NewShell returns a new [Shell] with a canvas of the given pixel size.
func NewShell(width, height int) *Shell {
	sh := &Shell{Mounted: NewSignal(false)}
	sh.Canvas = NewNode("canvas").SetID(CanvasID).
		SetAttr("width", strconv.Itoa(width)).
		SetAttr("height", strconv.Itoa(height)).
		SetStyle("border: 2px solid #333; background: #222;").
		OnMount(func() { sh.Mounted.Set(true) })
	sh.Root = NewNode("div").SetID(RootID).
		SetStyle("display: flex; justify-content: center; align-items: center; height: 100vh; background: #f0f0f0;").
		AddChild(sh.Canvas)
	return sh
}
