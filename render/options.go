// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

// Options are the fixed rendering parameters.
type Options struct {

	// Width and Height are the drawing buffer and viewport size in pixels.
	Width, Height int

	// Background is the RGBA clear color, with components in [0, 1].
	Background [4]float32

	// Step is the rotation angle increment per frame, in radians.
	// It is not scaled by elapsed time.
	Step float32

	// LogEvery is the number of frames between progress log messages.
	// Zero disables them.
	LogEvery int
}

// DefaultOptions returns the standard options: a 480x480 surface,
// a near-black background, and 0.02 radians per frame.
func DefaultOptions() Options {
	return Options{
		Width:      480,
		Height:     480,
		Background: [4]float32{0.1, 0.1, 0.1, 1},
		Step:       0.02,
		LogEvery:   60,
	}
}
