// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package websocket

import (
	"sync"
	"time"

	"cogentcore.org/spincube/base/errors"
	"github.com/gorilla/websocket"
)

// writeTimeout bounds every write, so a stalled peer cannot block
// the caller forever.
const writeTimeout = 5 * time.Second

// Client is a WebSocket client connection, created with [Connect].
// It reads in the background from the moment it connects; messages
// that arrive before [Client.OnMessage] is called are dropped.
type Client struct {
	conn *websocket.Conn

	// done is closed once the read loop has ended and conn is closed.
	done chan struct{}

	mu        sync.Mutex
	onMessage func(typ MessageTypes, msg []byte)

	// writeMu serializes writes, which gorilla/websocket requires.
	writeMu sync.Mutex
}

// Connect connects to the WebSocket server at url and starts reading.
func Connect(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	c := &Client{conn: conn, done: make(chan struct{})}
	go c.read()
	return c, nil
}

func (c *Client) read() {
	defer func() {
		c.conn.Close()
		close(c.done)
	}()
	for {
		typ, msg, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				errors.Log(err)
			}
			return
		}
		c.mu.Lock()
		f := c.onMessage
		c.mu.Unlock()
		if f != nil {
			f(MessageTypes(typ), msg)
		}
	}
}

// OnMessage sets the function called for each received message.
// It replaces any previous one.
func (c *Client) OnMessage(f func(typ MessageTypes, msg []byte)) {
	c.mu.Lock()
	c.onMessage = f
	c.mu.Unlock()
}

// Send sends a message of the given type.
func (c *Client) Send(typ MessageTypes, msg []byte) error {
	return c.write(int(typ), msg)
}

func (c *Client) write(typ int, msg []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.conn.WriteMessage(typ, msg)
}

// Close starts the closing handshake. The connection is closed, and
// [Client.OnClose] functions run, once the server answers. If the close
// message cannot be sent, the connection is closed right away.
func (c *Client) Close() error {
	err := c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	if err != nil {
		c.conn.Close()
	}
	return err
}

// OnClose calls f in a new goroutine once the connection is closed,
// by either side. It may be called more than once.
func (c *Client) OnClose(f func()) {
	go func() {
		<-c.done
		f()
	}()
}
