// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package websocket

import (
	"syscall/js"

	"cogentcore.org/spincube/base/errors"
	"github.com/hack-pad/safejs"
)

// Client represents a WebSocket client connection.
// You can use [Connect] to create a new Client.
type Client struct {

	// ws is the underlying JavaScript WebSocket object.
	// See https://developer.mozilla.org/en-US/docs/Web/API/WebSocket
	ws safejs.Value
}

// Connect connects to a WebSocket server and returns a [Client].
// The connection is established asynchronously; messages sent
// before it opens are dropped by the browser with an error.
func Connect(url string) (*Client, error) {
	ctor, err := safejs.Global().Get("WebSocket")
	if err != nil {
		return nil, err
	}
	ws, err := ctor.New(url)
	if err != nil {
		return nil, err
	}
	if err := ws.Set("binaryType", "arraybuffer"); err != nil {
		return nil, err
	}
	return &Client{ws: ws}, nil
}

// OnMessage sets a callback function to be called when a message is received.
// This function can only be called once.
func (c *Client) OnMessage(f func(typ MessageTypes, msg []byte)) {
	fn, err := safejs.FuncOf(func(this safejs.Value, args []safejs.Value) any {
		data, err := args[0].Get("data")
		if errors.Log(err) != nil {
			return nil
		}
		if safejs.Unsafe(data).Type() == js.TypeString {
			s, err := data.String()
			if errors.Log(err) == nil {
				f(TextMessage, []byte(s))
			}
			return nil
		}
		u8ctor, err := safejs.Global().Get("Uint8Array")
		if errors.Log(err) != nil {
			return nil
		}
		arr, err := u8ctor.New(safejs.Unsafe(data))
		if errors.Log(err) != nil {
			return nil
		}
		n, err := arr.Length()
		if errors.Log(err) != nil {
			return nil
		}
		b := make([]byte, n)
		if _, err := safejs.CopyBytesToGo(b, arr); errors.Log(err) == nil {
			f(BinaryMessage, b)
		}
		return nil
	})
	if errors.Log(err) != nil {
		return
	}
	errors.Log(c.ws.Set("onmessage", safejs.Unsafe(fn.Value())))
}

// Close cleanly closes the WebSocket connection.
func (c *Client) Close() error {
	_, err := c.ws.Call("close")
	return err
}

// OnClose sets a callback function to be called when the connection is closed.
// This function can only be called once.
func (c *Client) OnClose(f func()) {
	fn, err := safejs.FuncOf(func(this safejs.Value, args []safejs.Value) any {
		f()
		return nil
	})
	if errors.Log(err) != nil {
		return
	}
	errors.Log(c.ws.Set("onclose", safejs.Unsafe(fn.Value())))
}
