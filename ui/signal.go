// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"slices"
	"sync"
)

// Signal is a reactive value. Effects registered with [Signal.Effect]
// run once on registration and again on every Set, even when the new
// value equals the old one, so effects must tolerate repeats.
type Signal[T any] struct {
	mu      sync.Mutex
	value   T
	effects []func(v T)
}

// NewSignal returns a new [Signal] holding v.
func NewSignal[T any](v T) *Signal[T] {
	return &Signal[T]{value: v}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores v and runs all effects with it.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	effects := slices.Clone(s.effects)
	s.mu.Unlock()
	for _, fn := range effects {
		fn(v)
	}
}

// Effect registers fn and runs it immediately with the current value.
func (s *Signal[T]) Effect(fn func(v T)) {
	s.mu.Lock()
	s.effects = append(s.effects, fn)
	v := s.value
	s.mu.Unlock()
	fn(v)
}
