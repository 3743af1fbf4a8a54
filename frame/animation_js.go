// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package frame

import (
	"github.com/hack-pad/safejs"
)

// animationFrames is a [Host] backed by window.requestAnimationFrame.
// It creates a single JavaScript function for its whole lifetime.
type animationFrames struct {
	window safejs.Value
	fn     safejs.Func
	id     safejs.Value
}

// AnimationFrames is a [NewHostFunc] for the browser's
// requestAnimationFrame.
func AnimationFrames(callback func()) (Host, error) {
	window, err := safejs.Global().Get("window")
	if err != nil {
		return nil, err
	}
	fn, err := safejs.FuncOf(func(this safejs.Value, args []safejs.Value) any {
		callback()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &animationFrames{window: window, fn: fn}, nil
}

func (a *animationFrames) RequestFrame() error {
	id, err := a.window.Call("requestAnimationFrame", safejs.Unsafe(a.fn.Value()))
	if err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *animationFrames) Release() {
	if !a.id.IsUndefined() {
		_, _ = a.window.Call("cancelAnimationFrame", safejs.Unsafe(a.id))
	}
	a.fn.Release()
}
