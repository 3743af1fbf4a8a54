// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoServer echoes every message back, and closes the connection
// after echoing a "bye" text message.
func echoServer(t *testing.T) string {
	t.Helper()
	var up websocket.Upgrader
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			typ, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := conn.WriteMessage(typ, msg); err != nil {
				return
			}
			if string(msg) == "bye" {
				return
			}
		}
	}))
	t.Cleanup(ts.Close)
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

type message struct {
	typ MessageTypes
	msg string
}

func receive(t *testing.T, ch chan message) message {
	t.Helper()
	select {
	case m := <-ch:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("no message")
		return message{}
	}
}

func waitClosed(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("OnClose was not called")
	}
}

func TestSendReceive(t *testing.T) {
	c, err := Connect(echoServer(t))
	require.NoError(t, err)
	msgs := make(chan message, 4)
	c.OnMessage(func(typ MessageTypes, msg []byte) {
		msgs <- message{typ, string(msg)}
	})

	require.NoError(t, c.Send(TextMessage, []byte(ReloadMessage)))
	assert.Equal(t, message{TextMessage, ReloadMessage}, receive(t, msgs))
	require.NoError(t, c.Send(BinaryMessage, []byte{1, 2, 3}))
	assert.Equal(t, message{BinaryMessage, "\x01\x02\x03"}, receive(t, msgs))

	closed := make(chan struct{})
	c.OnClose(func() { close(closed) })
	require.NoError(t, c.Close())
	waitClosed(t, closed)
	assert.Error(t, c.Send(TextMessage, []byte("late")))
}

func TestServerCloses(t *testing.T) {
	c, err := Connect(echoServer(t))
	require.NoError(t, err)
	closed := make(chan struct{})
	c.OnClose(func() { close(closed) })
	c.OnClose(func() {})

	require.NoError(t, c.Send(TextMessage, []byte("bye")))
	waitClosed(t, closed)
}

func TestConnectError(t *testing.T) {
	_, err := Connect("ws://127.0.0.1:1/none")
	assert.Error(t, err)
}
