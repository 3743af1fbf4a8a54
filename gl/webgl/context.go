// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package webgl

import (
	"encoding/binary"
	"fmt"
	"math"
	"syscall/js"

	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/gl"
	"github.com/hack-pad/safejs"
)

// Context is a [gl.Context] backed by a WebGL2RenderingContext.
// JavaScript exceptions are logged and turn into zero results.
type Context struct {
	gl safejs.Value

	// matrix is a reusable 16 element Float32Array for uniform uploads,
	// and matrixBytes is a Uint8Array view of the same memory.
	matrix      js.Value
	matrixBytes safejs.Value
	scratch     [64]byte
}

func newContext(v safejs.Value) *Context {
	return &Context{gl: v}
}

func (c *Context) call(name string, args ...any) safejs.Value {
	v, err := c.gl.Call(name, args...)
	if err != nil {
		errors.Log(fmt.Errorf("webgl: %s: %w", name, err))
		return safejs.Value{}
	}
	return v
}

// ref returns the JavaScript value for the given object, or null.
func ref(o gl.Object) js.Value {
	if v, ok := o.Ref().(safejs.Value); ok {
		return safejs.Unsafe(v)
	}
	return js.Null()
}

func object(v safejs.Value) gl.Object {
	if v.IsNull() || v.IsUndefined() {
		return gl.Object{}
	}
	return gl.NewObject(v)
}

func (c *Context) Viewport(x, y, width, height int) {
	c.call("viewport", x, y, width, height)
}

func (c *Context) Disable(capability gl.Enum) {
	c.call("disable", int(capability))
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.call("clearColor", r, g, b, a)
}

func (c *Context) Clear(mask gl.Enum) {
	c.call("clear", int(mask))
}

func (c *Context) CreateShader(typ gl.Enum) gl.Shader {
	return gl.Shader{Object: object(c.call("createShader", int(typ)))}
}

func (c *Context) ShaderSource(s gl.Shader, src string) {
	c.call("shaderSource", ref(s.Object), src)
}

func (c *Context) CompileShader(s gl.Shader) {
	c.call("compileShader", ref(s.Object))
}

func (c *Context) ShaderCompiled(s gl.Shader) bool {
	return errors.Log1(c.call("getShaderParameter", ref(s.Object), int(gl.CompileStatus)).Truthy())
}

func (c *Context) ShaderInfoLog(s gl.Shader) string {
	return str(c.call("getShaderInfoLog", ref(s.Object)))
}

func (c *Context) CreateProgram() gl.Program {
	return gl.Program{Object: object(c.call("createProgram"))}
}

func (c *Context) AttachShader(p gl.Program, s gl.Shader) {
	c.call("attachShader", ref(p.Object), ref(s.Object))
}

func (c *Context) LinkProgram(p gl.Program) {
	c.call("linkProgram", ref(p.Object))
}

func (c *Context) ProgramLinked(p gl.Program) bool {
	return errors.Log1(c.call("getProgramParameter", ref(p.Object), int(gl.LinkStatus)).Truthy())
}

func (c *Context) ProgramInfoLog(p gl.Program) string {
	return str(c.call("getProgramInfoLog", ref(p.Object)))
}

func (c *Context) UseProgram(p gl.Program) {
	c.call("useProgram", ref(p.Object))
}

func (c *Context) CreateBuffer() gl.Buffer {
	return gl.Buffer{Object: object(c.call("createBuffer"))}
}

func (c *Context) BindBuffer(target gl.Enum, b gl.Buffer) {
	c.call("bindBuffer", int(target), ref(b.Object))
}

func (c *Context) BufferDataFloat32(target gl.Enum, data []float32, usage gl.Enum) {
	b := make([]byte, 4*len(data))
	for i, f := range data {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(f))
	}
	arr, err := typedArray("Float32Array", b, len(data))
	if errors.Log(err) != nil {
		return
	}
	c.call("bufferData", int(target), arr, int(usage))
}

func (c *Context) BufferDataUint16(target gl.Enum, data []uint16, usage gl.Enum) {
	b := make([]byte, 2*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint16(b[i*2:], v)
	}
	arr, err := typedArray("Uint16Array", b, len(data))
	if errors.Log(err) != nil {
		return
	}
	c.call("bufferData", int(target), arr, int(usage))
}

func (c *Context) GetAttribLocation(p gl.Program, name string) int {
	v := c.call("getAttribLocation", ref(p.Object), name)
	if v.IsUndefined() {
		return -1
	}
	return errors.Log1(v.Int())
}

func (c *Context) EnableVertexAttribArray(a gl.Attrib) {
	c.call("enableVertexAttribArray", int(a))
}

func (c *Context) VertexAttribPointer(a gl.Attrib, size int, typ gl.Enum, normalized bool, stride, offset int) {
	c.call("vertexAttribPointer", int(a), size, int(typ), normalized, stride, offset)
}

func (c *Context) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	return gl.Uniform{Object: object(c.call("getUniformLocation", ref(p.Object), name))}
}

func (c *Context) UniformMatrix4fv(u gl.Uniform, transpose bool, m []float32) {
	if len(m) != 16 {
		errors.Log(fmt.Errorf("webgl: uniformMatrix4fv: got %d values, want 16", len(m)))
		return
	}
	if c.matrix.IsUndefined() {
		arr, err := typedArray("Float32Array", c.scratch[:], 16)
		if errors.Log(err) != nil {
			return
		}
		c.matrix = arr
		c.matrixBytes, err = safejs.Global().Get("Uint8Array")
		if errors.Log(err) != nil {
			return
		}
		c.matrixBytes, err = c.matrixBytes.New(arr.Get("buffer"))
		if errors.Log(err) != nil {
			return
		}
	}
	for i, f := range m {
		binary.LittleEndian.PutUint32(c.scratch[i*4:], math.Float32bits(f))
	}
	if _, err := safejs.CopyBytesToJS(c.matrixBytes, c.scratch[:]); errors.Log(err) != nil {
		return
	}
	c.call("uniformMatrix4fv", ref(u.Object), transpose, c.matrix)
}

func (c *Context) DrawElements(mode gl.Enum, count int, typ gl.Enum, offset int) {
	c.call("drawElements", int(mode), count, int(typ), offset)
}

func (c *Context) GetError() gl.Enum {
	v := c.call("getError")
	if v.IsUndefined() {
		return gl.ContextLost
	}
	return gl.Enum(errors.Log1(v.Int()))
}

// typedArray returns a new JavaScript typed array of the given
// constructor name and length holding a copy of the little-endian bytes b.
func typedArray(ctor string, b []byte, length int) (js.Value, error) {
	u8ctor, err := safejs.Global().Get("Uint8Array")
	if err != nil {
		return js.Value{}, err
	}
	u8, err := u8ctor.New(len(b))
	if err != nil {
		return js.Value{}, err
	}
	if _, err := safejs.CopyBytesToJS(u8, b); err != nil {
		return js.Value{}, err
	}
	buf, err := u8.Get("buffer")
	if err != nil {
		return js.Value{}, err
	}
	tctor, err := safejs.Global().Get(ctor)
	if err != nil {
		return js.Value{}, err
	}
	arr, err := tctor.New(safejs.Unsafe(buf), 0, length)
	if err != nil {
		return js.Value{}, err
	}
	return safejs.Unsafe(arr), nil
}

func str(v safejs.Value) string {
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return errors.Log1(v.String())
}
