// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides the fixed cube geometry drawn by the renderer.
package mesh

import (
	"fmt"

	"cogentcore.org/spincube/base/errors"
)

// Mesh is an indexed triangle list with one position and one color
// (3 floats each) per vertex.
type Mesh struct {

	// Positions has 3 floats (x, y, z) per vertex.
	Positions []float32

	// Colors has 3 floats (r, g, b) per vertex.
	Colors []float32

	// Indices has 3 vertex indexes per triangle.
	Indices []uint16
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int {
	return len(m.Positions) / 3
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Validate returns an error if the mesh arrays are inconsistent or any
// index refers past the last vertex.
func (m *Mesh) Validate() error {
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("mesh: %d position floats is not a multiple of 3", len(m.Positions))
	}
	if len(m.Colors) != len(m.Positions) {
		return fmt.Errorf("mesh: %d color floats for %d position floats", len(m.Colors), len(m.Positions))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: %d indices is not a multiple of 3", len(m.Indices))
	}
	if len(m.Indices) == 0 {
		return errors.New("mesh: no triangles")
	}
	nv := m.NumVertices()
	for i, idx := range m.Indices {
		if int(idx) >= nv {
			return fmt.Errorf("mesh: index %d at %d is out of range for %d vertices", idx, i, nv)
		}
	}
	return nil
}
