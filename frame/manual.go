// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"sync"

	"cogentcore.org/spincube/base/errors"
)

// ErrReleased is returned by [Manual.RequestFrame] after Release.
var ErrReleased = errors.New("frame: host released")

// Manual is a [Host] whose frames are delivered by calling Step,
// for headless use and tests.
type Manual struct {
	mu       sync.Mutex
	callback func()
	pending  bool
	released bool
	requests int
}

// NewManual is a [NewHostFunc] returning a [Manual] host. Use it
// through a closure to keep a reference:
//
//	var m *frame.Manual
//	d.Start(func(cb func()) (frame.Host, error) { m = frame.NewManual(cb); return m, nil })
func NewManual(callback func()) *Manual {
	return &Manual{callback: callback}
}

// RequestFrame marks a frame as pending.
func (m *Manual) RequestFrame() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.released {
		return ErrReleased
	}
	m.pending = true
	m.requests++
	return nil
}

// Release drops any pending frame.
func (m *Manual) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.released = true
	m.pending = false
}

// Step delivers the pending frame, if any, and reports whether it did.
func (m *Manual) Step() bool {
	m.mu.Lock()
	if !m.pending {
		m.mu.Unlock()
		return false
	}
	m.pending = false
	cb := m.callback
	m.mu.Unlock()
	cb()
	return true
}

// Run delivers up to n frames, stopping early when none is pending.
// It returns the number of frames delivered.
func (m *Manual) Run(n int) int {
	for i := range n {
		if !m.Step() {
			return i
		}
	}
	return n
}

// Pending returns whether a frame has been requested but not delivered.
func (m *Manual) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending
}

// Requests returns the total number of successful RequestFrame calls.
func (m *Manual) Requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}
