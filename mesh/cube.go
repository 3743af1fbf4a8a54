// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "slices"

var (
	cubePositions = []float32{
		// front face, z = 0.2
		-0.4, -0.4, 0.2,
		0.4, -0.4, 0.2,
		0.4, 0.4, 0.2,
		-0.4, 0.4, 0.2,
		// back face, z = -0.2
		-0.4, -0.4, -0.2,
		0.4, -0.4, -0.2,
		0.4, 0.4, -0.2,
		-0.4, 0.4, -0.2,
	}

	cubeColors = []float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		1, 1, 0,
		1, 0, 1,
		0, 1, 1,
		1, 1, 1,
		0.5, 0.5, 0.5,
	}

	cubeIndices = []uint16{
		0, 1, 2, 2, 3, 0, // front
		4, 6, 5, 6, 4, 7, // back (clockwise)
		4, 0, 3, 3, 7, 4, // left
		1, 5, 6, 6, 2, 1, // right
		3, 2, 6, 6, 7, 3, // top
		4, 5, 1, 1, 0, 4, // bottom
	}
)

// Cube returns a new copy of the colored cube: 8 vertices and
// 12 triangles, two per face.
func Cube() Mesh {
	return Mesh{
		Positions: slices.Clone(cubePositions),
		Colors:    slices.Clone(cubeColors),
		Indices:   slices.Clone(cubeIndices),
	}
}
