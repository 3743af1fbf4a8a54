// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package ui

import (
	"fmt"
	"log/slog"

	"cogentcore.org/spincube/base/errors"
	"github.com/hack-pad/safejs"
)

type mountHook struct {
	el safejs.Value
	fn func()
}

// Mount creates the DOM elements for root and attaches them to the document,
// replacing an existing element with the same id (such as prerendered
// markup) or else appending to the body. Each [Node.OnMounted] hook runs
// once its element reports isConnected; the check is retried with
// [Backoff] delays up to opts.Retries times.
func Mount(root *Node, opts MountOptions) error {
	doc, err := safejs.Global().Get("document")
	if err != nil {
		return err
	}
	var hooks []mountHook
	el, err := build(doc, root, &hooks)
	if err != nil {
		return err
	}
	if err := attach(doc, root.ID, el); err != nil {
		return err
	}
	for _, h := range hooks {
		whenConnected(h, opts, 0)
	}
	return nil
}

func build(doc safejs.Value, n *Node, hooks *[]mountHook) (safejs.Value, error) {
	el, err := doc.Call("createElement", n.Tag)
	if err != nil {
		return el, fmt.Errorf("ui: creating <%s>: %w", n.Tag, err)
	}
	if n.ID != "" {
		if err := el.Set("id", n.ID); err != nil {
			return el, err
		}
	}
	for _, k := range n.AttrNames() {
		if _, err := el.Call("setAttribute", k, n.Attrs[k]); err != nil {
			return el, err
		}
	}
	if n.Style != "" {
		if _, err := el.Call("setAttribute", "style", n.Style); err != nil {
			return el, err
		}
	}
	for _, c := range n.Children {
		cel, err := build(doc, c, hooks)
		if err != nil {
			return el, err
		}
		if _, err := el.Call("appendChild", safejs.Unsafe(cel)); err != nil {
			return el, err
		}
	}
	if n.OnMounted != nil {
		*hooks = append(*hooks, mountHook{el: el, fn: n.OnMounted})
	}
	return el, nil
}

func attach(doc safejs.Value, id string, el safejs.Value) error {
	if id != "" {
		old, err := doc.Call("getElementById", id)
		if err != nil {
			return err
		}
		if !old.IsNull() && !old.IsUndefined() {
			_, err := old.Call("replaceWith", safejs.Unsafe(el))
			return err
		}
	}
	body, err := doc.Get("body")
	if err != nil {
		return err
	}
	_, err = body.Call("appendChild", safejs.Unsafe(el))
	return err
}

func whenConnected(h mountHook, opts MountOptions, attempt int) {
	connected, err := h.el.Get("isConnected")
	if errors.Log(err) != nil {
		return
	}
	if ok, _ := connected.Truthy(); ok {
		h.fn()
		return
	}
	if attempt >= opts.Retries {
		slog.Warn("element was never attached to the document", "attempts", attempt+1)
		return
	}
	delay := Backoff(opts.Backoff, attempt)
	slog.Debug("element not attached yet", "attempt", attempt+1, "retryIn", delay)
	var fn safejs.Func
	fn, err = safejs.FuncOf(func(this safejs.Value, args []safejs.Value) any {
		fn.Release()
		whenConnected(h, opts, attempt+1)
		return nil
	})
	if errors.Log(err) != nil {
		return
	}
	_, err = safejs.Global().Call("setTimeout", safejs.Unsafe(fn.Value()), delay.Milliseconds())
	errors.Log(err)
}
