// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltest provides a [gl.Context] that records every call,
// for testing rendering code without a browser.
package gltest

import (
	"slices"
	"sync"

	"cogentcore.org/spincube/gl"
)

// Call is one recorded context method call.
type Call struct {
	Name string
	Args []any
}

type shaderRef struct {
	id  int
	typ gl.Enum
}

// Recorder is a [gl.Context] that records calls and simulates the
// context state needed by the renderer. The exported fields configure
// failures and must be set before use.
type Recorder struct {

	// CompileErrors maps a shader type to the info log of a
	// failed compilation of shaders of that type.
	CompileErrors map[gl.Enum]string

	// LinkError, if non-empty, makes LinkProgram fail with this info log.
	LinkError string

	// Attribs overrides attribute locations by name. Without an
	// override, "position" is 0, "color" is 1, and anything else is -1.
	Attribs map[string]int

	// Errors are returned by successive GetError calls; once
	// exhausted GetError returns [gl.NoError].
	Errors []gl.Enum

	// Lost makes all create calls return invalid objects,
	// as a lost context does.
	Lost bool

	mu     sync.Mutex
	calls  []Call
	nextID int
}

// NewRecorder returns a new [Recorder] where everything succeeds.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Calls returns a copy of all calls recorded so far.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

// Names returns the method names of all calls recorded so far, in order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many times the named method was called.
func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find returns all recorded calls of the named method.
func (r *Recorder) Find(name string) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []Call
	for _, c := range r.calls {
		if c.Name == name {
			res = append(res, c)
		}
	}
	return res
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *Recorder) record(name string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

func (r *Recorder) newRef() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	return r.nextID
}

func (r *Recorder) newObject(ref any) gl.Object {
	if r.Lost {
		return gl.Object{}
	}
	return gl.NewObject(ref)
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) Disable(capability gl.Enum) {
	r.record("Disable", capability)
}

func (r *Recorder) ClearColor(cr, cg, cb, ca float32) {
	r.record("ClearColor", cr, cg, cb, ca)
}

func (r *Recorder) Clear(mask gl.Enum) {
	r.record("Clear", mask)
}

func (r *Recorder) CreateShader(typ gl.Enum) gl.Shader {
	r.record("CreateShader", typ)
	return gl.Shader{Object: r.newObject(shaderRef{id: r.newRef(), typ: typ})}
}

func (r *Recorder) ShaderSource(s gl.Shader, src string) {
	r.record("ShaderSource", s, src)
}

func (r *Recorder) CompileShader(s gl.Shader) {
	r.record("CompileShader", s)
}

func (r *Recorder) ShaderCompiled(s gl.Shader) bool {
	r.record("ShaderCompiled", s)
	_, failed := r.compileError(s)
	return !failed
}

func (r *Recorder) ShaderInfoLog(s gl.Shader) string {
	r.record("ShaderInfoLog", s)
	log, _ := r.compileError(s)
	return log
}

func (r *Recorder) compileError(s gl.Shader) (string, bool) {
	ref, ok := s.Ref().(shaderRef)
	if !ok {
		return "invalid shader", true
	}
	log, failed := r.CompileErrors[ref.typ]
	return log, failed
}

func (r *Recorder) CreateProgram() gl.Program {
	r.record("CreateProgram")
	return gl.Program{Object: r.newObject(r.newRef())}
}

func (r *Recorder) AttachShader(p gl.Program, s gl.Shader) {
	r.record("AttachShader", p, s)
}

func (r *Recorder) LinkProgram(p gl.Program) {
	r.record("LinkProgram", p)
}

func (r *Recorder) ProgramLinked(p gl.Program) bool {
	r.record("ProgramLinked", p)
	return r.LinkError == ""
}

func (r *Recorder) ProgramInfoLog(p gl.Program) string {
	r.record("ProgramInfoLog", p)
	return r.LinkError
}

func (r *Recorder) UseProgram(p gl.Program) {
	r.record("UseProgram", p)
}

func (r *Recorder) CreateBuffer() gl.Buffer {
	r.record("CreateBuffer")
	return gl.Buffer{Object: r.newObject(r.newRef())}
}

func (r *Recorder) BindBuffer(target gl.Enum, b gl.Buffer) {
	r.record("BindBuffer", target, b)
}

func (r *Recorder) BufferDataFloat32(target gl.Enum, data []float32, usage gl.Enum) {
	r.record("BufferDataFloat32", target, slices.Clone(data), usage)
}

func (r *Recorder) BufferDataUint16(target gl.Enum, data []uint16, usage gl.Enum) {
	r.record("BufferDataUint16", target, slices.Clone(data), usage)
}

func (r *Recorder) GetAttribLocation(p gl.Program, name string) int {
	r.record("GetAttribLocation", p, name)
	if loc, ok := r.Attribs[name]; ok {
		return loc
	}
	switch name {
	case "position":
		return 0
	case "color":
		return 1
	}
	return -1
}

func (r *Recorder) EnableVertexAttribArray(a gl.Attrib) {
	r.record("EnableVertexAttribArray", a)
}

func (r *Recorder) VertexAttribPointer(a gl.Attrib, size int, typ gl.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", a, size, typ, normalized, stride, offset)
}

func (r *Recorder) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	r.record("GetUniformLocation", p, name)
	return gl.Uniform{Object: r.newObject(name)}
}

func (r *Recorder) UniformMatrix4fv(u gl.Uniform, transpose bool, m []float32) {
	r.record("UniformMatrix4fv", u, transpose, slices.Clone(m))
}

func (r *Recorder) DrawElements(mode gl.Enum, count int, typ gl.Enum, offset int) {
	r.record("DrawElements", mode, count, typ, offset)
}

func (r *Recorder) GetError() gl.Enum {
	r.record("GetError")
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Errors) == 0 {
		return gl.NoError
	}
	e := r.Errors[0]
	r.Errors = r.Errors[1:]
	return e
}
