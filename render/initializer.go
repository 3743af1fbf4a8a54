// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"
	"sync/atomic"

	"cogentcore.org/spincube/mesh"
)

// Initializer runs [Setup] at most once. Create one at startup and
// hand it to whatever reacts to the canvas being mounted; mount
// notifications may arrive more than once.
type Initializer struct {
	Options Options
	Mesh    mesh.Mesh

	started atomic.Bool
}

// NewInitializer returns a new [Initializer] for the cube mesh.
func NewInitializer(opts Options) *Initializer {
	return &Initializer{Options: opts, Mesh: mesh.Cube()}
}

// Init runs [Setup] on c the first time it is called. Every later call
// returns [ErrAlreadyInitialized] without touching c, whether or not
// the first call succeeded.
func (in *Initializer) Init(c Canvas) (*Scene, error) {
	if !in.started.CompareAndSwap(false, true) {
		slog.Info("webgl initialization already completed")
		return nil, ErrAlreadyInitialized
	}
	slog.Info("initializing webgl (single time)")
	return Setup(c, in.Options, in.Mesh)
}

// Started returns whether Init has been called.
func (in *Initializer) Started() bool {
	return in.started.Load()
}
