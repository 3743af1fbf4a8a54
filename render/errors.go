// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"strconv"

	"cogentcore.org/spincube/base/errors"
)

var (
	// ErrNoContext is returned when the canvas does not provide a
	// WebGL 2 context. The underlying cause is wrapped with it.
	ErrNoContext = errors.New("render: no webgl2 context")

	// ErrAlreadyInitialized is returned by [Initializer.Init]
	// on every call after the first.
	ErrAlreadyInitialized = errors.New("render: already initialized")
)

// ShaderError is a shader compilation failure.
type ShaderError struct {

	// Stage is "vertex" or "fragment".
	Stage string

	// Log is the compiler info log.
	Log string
}

func (e *ShaderError) Error() string {
	return "render: " + e.Stage + " shader compilation error: " + e.Log
}

// LinkError is a program link failure.
type LinkError struct {

	// Log is the linker info log.
	Log string
}

func (e *LinkError) Error() string {
	return "render: program linking error: " + e.Log
}

// AttribError is a vertex attribute that did not resolve to a location.
type AttribError struct {
	Name     string
	Location int
}

func (e *AttribError) Error() string {
	return "render: attribute " + strconv.Quote(e.Name) + " has no location (got " + strconv.Itoa(e.Location) + ")"
}
