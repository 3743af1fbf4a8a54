// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/gl"
	"cogentcore.org/spincube/gl/gltest"
	"cogentcore.org/spincube/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	c := gltest.NewCanvas()
	sc, err := Setup(c, DefaultOptions(), mesh.Cube())
	require.NoError(t, err)

	assert.Equal(t, 480, c.Width)
	assert.Equal(t, 480, c.Height)
	assert.Equal(t, 36, sc.IndexCount)
	assert.Equal(t, gl.Attrib(0), sc.Position)
	assert.Equal(t, gl.Attrib(1), sc.Color)
	assert.True(t, sc.ModelView.IsValid())

	r := c.GL
	assert.Equal(t, []gltest.Call{{Name: "Viewport", Args: []any{0, 0, 480, 480}}}, r.Find("Viewport"))
	assert.Equal(t, []gltest.Call{
		{Name: "Disable", Args: []any{gl.DepthTest}},
		{Name: "Disable", Args: []any{gl.CullFace}},
	}, r.Find("Disable"))
	assert.Equal(t, 2, r.Count("CompileShader"))
	assert.Equal(t, 1, r.Count("LinkProgram"))
	assert.Equal(t, 1, r.Count("UseProgram"))
	assert.Equal(t, 3, r.Count("CreateBuffer"))

	floats := r.Find("BufferDataFloat32")
	require.Len(t, floats, 2)
	assert.Equal(t, mesh.Cube().Positions, floats[0].Args[1])
	assert.Equal(t, mesh.Cube().Colors, floats[1].Args[1])
	indices := r.Find("BufferDataUint16")
	require.Len(t, indices, 1)
	assert.Equal(t, gl.ElementArrayBuffer, indices[0].Args[0])
	assert.Equal(t, mesh.Cube().Indices, indices[0].Args[1])

	assert.Equal(t, []gltest.Call{
		{Name: "VertexAttribPointer", Args: []any{gl.Attrib(0), 3, gl.Float, false, 0, 0}},
		{Name: "VertexAttribPointer", Args: []any{gl.Attrib(1), 3, gl.Float, false, 0, 0}},
	}, r.Find("VertexAttribPointer"))

	// setup does not draw
	assert.Zero(t, r.Count("DrawElements"))
}

func TestSetupOrder(t *testing.T) {
	c := gltest.NewCanvas()
	_, err := Setup(c, DefaultOptions(), mesh.Cube())
	require.NoError(t, err)

	names := c.GL.Names()
	first := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		t.Fatalf("%s not called", name)
		return -1
	}
	assert.Less(t, first("Viewport"), first("Disable"))
	assert.Less(t, first("Disable"), first("CreateShader"))
	assert.Less(t, first("LinkProgram"), first("CreateBuffer"))
	assert.Less(t, first("BufferDataUint16"), first("GetAttribLocation"))
	assert.Less(t, first("GetAttribLocation"), first("EnableVertexAttribArray"))
}

func TestSetupNoContext(t *testing.T) {
	c := gltest.NewCanvas()
	c.Err = errors.New("webgl2 unsupported")
	_, err := Setup(c, DefaultOptions(), mesh.Cube())
	assert.ErrorIs(t, err, ErrNoContext)
	assert.ErrorContains(t, err, "webgl2 unsupported")
	assert.Empty(t, c.GL.Calls())
	assert.Zero(t, c.Width)
}

func TestSetupCompileError(t *testing.T) {
	for _, stage := range []struct {
		typ  gl.Enum
		name string
	}{{gl.VertexShader, "vertex"}, {gl.FragmentShader, "fragment"}} {
		t.Run(stage.name, func(t *testing.T) {
			c := gltest.NewCanvas()
			c.GL.CompileErrors = map[gl.Enum]string{stage.typ: "ERROR: 0:3: syntax error"}
			_, err := Setup(c, DefaultOptions(), mesh.Cube())

			var se *ShaderError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, stage.name, se.Stage)
			assert.Equal(t, "ERROR: 0:3: syntax error", se.Log)
			assert.Zero(t, c.GL.Count("CreateProgram"))
			assert.Zero(t, c.GL.Count("CreateBuffer"))
		})
	}
}

func TestSetupLinkError(t *testing.T) {
	c := gltest.NewCanvas()
	c.GL.LinkError = "varyings do not match"
	_, err := Setup(c, DefaultOptions(), mesh.Cube())

	var le *LinkError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "varyings do not match", le.Log)
	assert.Zero(t, c.GL.Count("UseProgram"))
	assert.Zero(t, c.GL.Count("CreateBuffer"))
}

func TestSetupAttribError(t *testing.T) {
	for _, name := range []string{PositionAttrib, ColorAttrib} {
		t.Run(name, func(t *testing.T) {
			c := gltest.NewCanvas()
			c.GL.Attribs = map[string]int{name: -1}
			_, err := Setup(c, DefaultOptions(), mesh.Cube())

			var ae *AttribError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, name, ae.Name)
			assert.Equal(t, -1, ae.Location)
			assert.Zero(t, c.GL.Count("EnableVertexAttribArray"))
			assert.Zero(t, c.GL.Count("VertexAttribPointer"))
		})
	}
}

func TestSetupLostContext(t *testing.T) {
	c := gltest.NewCanvas()
	c.GL.Lost = true
	_, err := Setup(c, DefaultOptions(), mesh.Cube())

	var se *ShaderError
	require.ErrorAs(t, err, &se)
	assert.Zero(t, c.GL.Count("ShaderSource"))
}

func TestSetupInvalidMesh(t *testing.T) {
	c := gltest.NewCanvas()
	m := mesh.Cube()
	m.Indices[5] = 8
	_, err := Setup(c, DefaultOptions(), m)
	assert.Error(t, err)
	assert.Zero(t, c.Acquired())
}
