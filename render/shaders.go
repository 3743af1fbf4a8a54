// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import _ "embed"

// VertexShader transforms each cube vertex by modelViewMatrix and
// passes its color through.
//
//go:embed shaders/cube.vert
var VertexShader string

// FragmentShader outputs the interpolated vertex color.
//
//go:embed shaders/cube.frag
var FragmentShader string

// Names of the shader inputs.
const (
	PositionAttrib  = "position"
	ColorAttrib     = "color"
	ModelViewMatrix = "modelViewMatrix"
)
