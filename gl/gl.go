// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gl defines the subset of the WebGL 2 rendering context
// used to draw the cube. The browser implementation is in package
// webgl; package gltest provides a recording fake for tests.
package gl

// Object is an opaque reference to a resource owned by a [Context].
// The zero Object is invalid; contexts return it when creation fails
// (for example after the context is lost).
type Object struct {
	ref any
}

// NewObject returns an [Object] wrapping the given context specific reference.
// A nil ref gives an invalid Object.
func NewObject(ref any) Object {
	return Object{ref: ref}
}

// Ref returns the context specific reference.
func (o Object) Ref() any { return o.ref }

// IsValid returns whether the object refers to a live resource.
func (o Object) IsValid() bool { return o.ref != nil }

// Shader is a vertex or fragment shader object.
type Shader struct{ Object }

// Program is a linked shader program.
type Program struct{ Object }

// Buffer is a buffer object holding vertex or index data.
type Buffer struct{ Object }

// Uniform is a uniform location within a linked [Program].
type Uniform struct{ Object }

// Attrib is a resolved (non-negative) vertex attribute location.
type Attrib uint32

// Context is a WebGL 2 rendering context. Methods mirror the
// corresponding WebGLRenderingContext methods; those that report
// status return Go values instead of generic parameters.
type Context interface {
	Viewport(x, y, width, height int)
	Disable(capability Enum)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)

	CreateShader(typ Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	// ShaderCompiled reports the COMPILE_STATUS parameter of s.
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	// ProgramLinked reports the LINK_STATUS parameter of p.
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)

	CreateBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BufferDataFloat32(target Enum, data []float32, usage Enum)
	BufferDataUint16(target Enum, data []uint16, usage Enum)

	// GetAttribLocation returns the location of the named attribute,
	// or -1 if p has no such active attribute.
	GetAttribLocation(p Program, name string) int
	EnableVertexAttribArray(a Attrib)
	VertexAttribPointer(a Attrib, size int, typ Enum, normalized bool, stride, offset int)

	GetUniformLocation(p Program, name string) Uniform
	UniformMatrix4fv(u Uniform, transpose bool, m []float32)

	DrawElements(mode Enum, count int, typ Enum, offset int)
	GetError() Enum
}
