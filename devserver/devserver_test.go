// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package devserver

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/spincube/base/websocket"
	"cogentcore.org/spincube/config"
	"cogentcore.org/spincube/ui"
	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spincube.wasm"), []byte("\x00asm"), 0644))
	exec := filepath.Join(dir, "wasm_exec.js")
	require.NoError(t, os.WriteFile(exec, []byte("// go support"), 0644))

	cfg := DefaultConfig()
	cfg.Dir = dir
	cfg.WasmExec = exec
	cfg.Debounce = 10 * time.Millisecond
	s := New(cfg)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func wsURL(ts *httptest.Server) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
}

func connect(t *testing.T, s *Server, ts *httptest.Server) chan string {
	t.Helper()
	c, err := websocket.Connect(wsURL(ts))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	msgs := make(chan string, 4)
	c.OnMessage(func(typ websocket.MessageTypes, msg []byte) {
		msgs <- string(msg)
	})
	require.Eventually(t, func() bool { return s.Clients() == 1 }, 2*time.Second, 5*time.Millisecond)
	return msgs
}

func TestIndex(t *testing.T) {
	_, ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, `<script src="wasm_exec.js"></script>`)
	assert.Contains(t, body, `fetch("spincube.wasm")`)
	assert.Contains(t, body, ui.NewShell(480, 480).Root.HTML())
}

func TestIndexUsesConfig(t *testing.T) {
	s, ts := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Config.Dir, config.FileName), []byte("width = 640\n"), 0644))
	_, body := get(t, ts.URL+"/index.html")
	assert.Contains(t, body, `width="640"`)
}

func TestFiles(t *testing.T) {
	_, ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/spincube.wasm")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/wasm", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "\x00asm", body)

	_, body = get(t, ts.URL+"/wasm_exec.js")
	assert.Equal(t, "// go support", body)

	resp, _ = get(t, ts.URL+"/"+config.FileName)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMissingWasmExec(t *testing.T) {
	s, ts := newTestServer(t)
	s.Config.WasmExec = ""
	resp, _ := get(t, ts.URL+"/wasm_exec.js")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBroadcast(t *testing.T) {
	s, ts := newTestServer(t)
	assert.Zero(t, s.Broadcast(websocket.ReloadMessage))

	msgs := connect(t, s, ts)
	assert.Equal(t, 1, s.Broadcast(websocket.ReloadMessage))
	select {
	case msg := <-msgs:
		assert.Equal(t, websocket.ReloadMessage, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no reload message")
	}
}

// closedConn returns the server side of a WebSocket connection that
// has already been closed.
func closedConn(t *testing.T) *gws.Conn {
	t.Helper()
	conns := make(chan *gws.Conn, 1)
	var up gws.Upgrader
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err == nil {
			conns <- conn
		}
	}))
	t.Cleanup(ts.Close)
	cc, _, err := gws.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { cc.Close() })
	conn := <-conns
	require.NoError(t, conn.Close())
	return conn
}

func TestBroadcastDropsFailedClients(t *testing.T) {
	s, ts := newTestServer(t)
	msgs := connect(t, s, ts)

	s.mu.Lock()
	s.clients[&client{conn: closedConn(t)}] = struct{}{}
	s.mu.Unlock()
	require.Equal(t, 2, s.Clients())

	assert.Equal(t, 1, s.Broadcast(websocket.ReloadMessage))
	assert.Equal(t, 1, s.Clients())
	select {
	case msg := <-msgs:
		assert.Equal(t, websocket.ReloadMessage, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("healthy client did not get the message")
	}
}

func TestRequestReload(t *testing.T) {
	s, ts := newTestServer(t)
	msgs := connect(t, s, ts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, RequestReload(ctx, strings.TrimPrefix(ts.URL, "http://")))

	select {
	case msg := <-msgs:
		assert.Equal(t, websocket.ReloadMessage, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("page was not told to reload")
	}
	assert.Eventually(t, func() bool { return s.Clients() == 1 }, 2*time.Second, 5*time.Millisecond)
}

func TestRequestReloadNoServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	err = RequestReload(context.Background(), addr)
	assert.ErrorContains(t, err, "connecting to "+addr)
}

func TestWatch(t *testing.T) {
	s, ts := newTestServer(t)
	msgs := connect(t, s, ts)
	s.Config.Debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})

	// give the watcher time to register before writing
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(s.Config.Dir, "unrelated.txt"), []byte("x"), 0644))
	for range 3 {
		require.NoError(t, os.WriteFile(filepath.Join(s.Config.Dir, "spincube.wasm"), []byte("\x00asm2"), 0644))
	}

	select {
	case msg := <-msgs:
		assert.Equal(t, websocket.ReloadMessage, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no reload message after rebuild")
	}
	// the burst of writes is debounced into a single reload
	select {
	case msg := <-msgs:
		t.Fatalf("unexpected second message %q", msg)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestServe(t *testing.T) {
	s, _ := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	_, body := get(t, "http://"+ln.Addr().String()+"/")
	assert.Contains(t, body, ui.CanvasID)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
