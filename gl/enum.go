// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import "strconv"

// Enum is a WebGL enumerated value (GLenum / GLbitfield).
type Enum uint32

// The WebGL constants used by the renderer. Values match WebGL 2,
// so they can be passed to the browser context unchanged.
const (
	NoError                     Enum = 0
	Triangles                   Enum = 0x0004
	CullFace                    Enum = 0x0B44
	DepthTest                   Enum = 0x0B71
	InvalidEnum                 Enum = 0x0500
	InvalidValue                Enum = 0x0501
	InvalidOperation            Enum = 0x0502
	OutOfMemory                 Enum = 0x0505
	InvalidFramebufferOperation Enum = 0x0506
	UnsignedShort               Enum = 0x1403
	Float                       Enum = 0x1406
	ColorBufferBit              Enum = 0x4000
	ArrayBuffer                 Enum = 0x8892
	ElementArrayBuffer          Enum = 0x8893
	StaticDraw                  Enum = 0x88E4
	FragmentShader              Enum = 0x8B30
	VertexShader                Enum = 0x8B31
	CompileStatus               Enum = 0x8B81
	LinkStatus                  Enum = 0x8B82
	ContextLost                 Enum = 0x9242
)

var enumNames = map[Enum]string{
	NoError:                     "NO_ERROR",
	InvalidEnum:                 "INVALID_ENUM",
	InvalidValue:                "INVALID_VALUE",
	InvalidOperation:            "INVALID_OPERATION",
	OutOfMemory:                 "OUT_OF_MEMORY",
	InvalidFramebufferOperation: "INVALID_FRAMEBUFFER_OPERATION",
	ContextLost:                 "CONTEXT_LOST_WEBGL",
	Triangles:                   "TRIANGLES",
	CullFace:                    "CULL_FACE",
	DepthTest:                   "DEPTH_TEST",
	UnsignedShort:               "UNSIGNED_SHORT",
	Float:                       "FLOAT",
	ColorBufferBit:              "COLOR_BUFFER_BIT",
	ArrayBuffer:                 "ARRAY_BUFFER",
	ElementArrayBuffer:          "ELEMENT_ARRAY_BUFFER",
	StaticDraw:                  "STATIC_DRAW",
	FragmentShader:              "FRAGMENT_SHADER",
	VertexShader:                "VERTEX_SHADER",
	CompileStatus:               "COMPILE_STATUS",
	LinkStatus:                  "LINK_STATUS",
}

// String returns the WebGL constant name, or the hex value
// for values this package does not name.
func (e Enum) String() string {
	if s, ok := enumNames[e]; ok {
		return s
	}
	return "0x" + strconv.FormatUint(uint64(e), 16)
}
