// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"log/slog"

	"cogentcore.org/spincube/gl"
	"cogentcore.org/spincube/mesh"
)

// Canvas is the element the scene is drawn into.
type Canvas interface {

	// Context returns the WebGL 2 context of the canvas.
	Context() (gl.Context, error)

	// SetSize sets the drawing buffer size in pixels.
	SetSize(width, height int)
}

// Scene holds the graphics resources created by [Setup].
// They live for the rest of the process.
type Scene struct {
	GL gl.Context

	Program gl.Program

	Positions gl.Buffer
	Colors    gl.Buffer
	Indices   gl.Buffer

	Position gl.Attrib
	Color    gl.Attrib

	ModelView gl.Uniform

	// IndexCount is the number of indices drawn per frame.
	IndexCount int
}

// Setup acquires the canvas context and creates everything needed to
// draw m: it sizes the surface, compiles and links the shaders, uploads
// the mesh buffers, and binds them to the shader attributes. The first
// failing step aborts the sequence; nothing is retried.
func Setup(c Canvas, opts Options, m mesh.Mesh) (*Scene, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	ctx, err := c.Context()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoContext, err)
	}

	c.SetSize(opts.Width, opts.Height)
	ctx.Viewport(0, 0, opts.Width, opts.Height)
	// no depth test or culling, so that the single draw is always visible
	ctx.Disable(gl.DepthTest)
	ctx.Disable(gl.CullFace)
	slog.Info("webgl context configured", "width", opts.Width, "height", opts.Height)

	vs, err := compileShader(ctx, gl.VertexShader, "vertex", VertexShader)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(ctx, gl.FragmentShader, "fragment", FragmentShader)
	if err != nil {
		return nil, err
	}
	prog, err := linkProgram(ctx, vs, fs)
	if err != nil {
		return nil, err
	}
	ctx.UseProgram(prog)
	slog.Info("shaders compiled and program linked")

	sc := &Scene{GL: ctx, Program: prog, IndexCount: len(m.Indices)}
	if sc.Positions, err = newBuffer(ctx, "position"); err != nil {
		return nil, err
	}
	ctx.BindBuffer(gl.ArrayBuffer, sc.Positions)
	ctx.BufferDataFloat32(gl.ArrayBuffer, m.Positions, gl.StaticDraw)

	if sc.Colors, err = newBuffer(ctx, "color"); err != nil {
		return nil, err
	}
	ctx.BindBuffer(gl.ArrayBuffer, sc.Colors)
	ctx.BufferDataFloat32(gl.ArrayBuffer, m.Colors, gl.StaticDraw)

	if sc.Indices, err = newBuffer(ctx, "index"); err != nil {
		return nil, err
	}
	ctx.BindBuffer(gl.ElementArrayBuffer, sc.Indices)
	ctx.BufferDataUint16(gl.ElementArrayBuffer, m.Indices, gl.StaticDraw)

	posLoc := ctx.GetAttribLocation(prog, PositionAttrib)
	colorLoc := ctx.GetAttribLocation(prog, ColorAttrib)
	slog.Info("attribute locations", PositionAttrib, posLoc, ColorAttrib, colorLoc)
	if posLoc < 0 {
		return nil, &AttribError{Name: PositionAttrib, Location: posLoc}
	}
	if colorLoc < 0 {
		return nil, &AttribError{Name: ColorAttrib, Location: colorLoc}
	}
	sc.Position, sc.Color = gl.Attrib(posLoc), gl.Attrib(colorLoc)

	bindAttrib(ctx, sc.Positions, sc.Position)
	bindAttrib(ctx, sc.Colors, sc.Color)

	sc.ModelView = ctx.GetUniformLocation(prog, ModelViewMatrix)
	if !sc.ModelView.IsValid() {
		slog.Warn("uniform not found; the cube will not rotate", "uniform", ModelViewMatrix)
	}
	slog.Info("buffers and attributes configured")
	return sc, nil
}

func compileShader(ctx gl.Context, typ gl.Enum, stage, src string) (gl.Shader, error) {
	s := ctx.CreateShader(typ)
	if !s.IsValid() {
		return s, &ShaderError{Stage: stage, Log: "createShader returned null"}
	}
	ctx.ShaderSource(s, src)
	ctx.CompileShader(s)
	if !ctx.ShaderCompiled(s) {
		return s, &ShaderError{Stage: stage, Log: ctx.ShaderInfoLog(s)}
	}
	return s, nil
}

func linkProgram(ctx gl.Context, vs, fs gl.Shader) (gl.Program, error) {
	p := ctx.CreateProgram()
	if !p.IsValid() {
		return p, &LinkError{Log: "createProgram returned null"}
	}
	ctx.AttachShader(p, vs)
	ctx.AttachShader(p, fs)
	ctx.LinkProgram(p)
	if !ctx.ProgramLinked(p) {
		return p, &LinkError{Log: ctx.ProgramInfoLog(p)}
	}
	return p, nil
}

func newBuffer(ctx gl.Context, name string) (gl.Buffer, error) {
	b := ctx.CreateBuffer()
	if !b.IsValid() {
		return b, fmt.Errorf("render: creating %s buffer failed", name)
	}
	return b, nil
}

// bindAttrib points attribute a at b: 3 tightly packed floats per vertex.
func bindAttrib(ctx gl.Context, b gl.Buffer, a gl.Attrib) {
	ctx.BindBuffer(gl.ArrayBuffer, b)
	ctx.EnableVertexAttribArray(a)
	ctx.VertexAttribPointer(a, 3, gl.Float, false, 0, 0)
}
