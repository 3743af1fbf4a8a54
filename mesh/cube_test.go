// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCube(t *testing.T) {
	c := Cube()
	require.NoError(t, c.Validate())
	assert.Equal(t, 8, c.NumVertices())
	assert.Len(t, c.Colors, 24)
	assert.Len(t, c.Indices, 36)
	assert.Equal(t, 12, c.NumTriangles())
	for _, idx := range c.Indices {
		assert.LessOrEqual(t, idx, uint16(7))
	}
}

// Every edge of a closed triangle mesh is shared by exactly two triangles.
func TestCubeClosed(t *testing.T) {
	c := Cube()
	edges := map[[2]uint16]int{}
	for tri := 0; tri < c.NumTriangles(); tri++ {
		v := c.Indices[tri*3 : tri*3+3]
		for i := range 3 {
			a, b := v[i], v[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			edges[[2]uint16{a, b}]++
		}
	}
	for e, n := range edges {
		assert.Equal(t, 2, n, "edge %v", e)
	}
}

func TestCubeIsCopy(t *testing.T) {
	c := Cube()
	c.Positions[0] = 99
	c.Indices[0] = 7
	d := Cube()
	assert.Equal(t, float32(-0.4), d.Positions[0])
	assert.Equal(t, uint16(0), d.Indices[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mesh Mesh
	}{
		{"ragged positions", Mesh{Positions: []float32{0, 0}, Colors: []float32{0, 0}, Indices: []uint16{0, 0, 0}}},
		{"color mismatch", Mesh{Positions: []float32{0, 0, 0}, Colors: []float32{0}, Indices: []uint16{0, 0, 0}}},
		{"ragged indices", Mesh{Positions: []float32{0, 0, 0}, Colors: []float32{0, 0, 0}, Indices: []uint16{0, 0}}},
		{"empty", Mesh{Positions: []float32{0, 0, 0}, Colors: []float32{0, 0, 0}}},
		{"out of range", Mesh{Positions: []float32{0, 0, 0}, Colors: []float32{0, 0, 0}, Indices: []uint16{0, 0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.mesh.Validate())
		})
	}
}
