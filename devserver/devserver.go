// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package devserver serves a spincube WASM build during development
// and tells open pages to reload when the build changes.
package devserver

import (
	"bytes"
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/base/websocket"
	"cogentcore.org/spincube/config"
	"cogentcore.org/spincube/ui"
	gws "github.com/gorilla/websocket"
)

//go:embed index.html
var indexTemplate string

var indexTmpl = template.Must(template.New("index").Parse(indexTemplate))

// Config configures a [Server].
type Config struct {

	// Addr is the TCP address to listen on.
	Addr string

	// Dir is the directory holding the WASM binary and an optional
	// spincube.toml configuration file.
	Dir string

	// Wasm is the file name of the WASM binary within Dir.
	Wasm string

	// WasmExec is the path of the Go wasm_exec.js support file.
	// If empty, it is looked up in GOROOT.
	WasmExec string

	// Title is the page title.
	Title string

	// Debounce is how long file changes must settle before a reload is sent.
	Debounce time.Duration
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:     "localhost:8080",
		Dir:      ".",
		Wasm:     "spincube.wasm",
		Title:    "spincube",
		Debounce: 100 * time.Millisecond,
	}
}

// writeTimeout bounds each write to a live reload client.
const writeTimeout = 2 * time.Second

// Server is the development server.
type Server struct {
	Config Config

	upgrader gws.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

// client is a live reload connection. Writes go through mu, since
// gorilla/websocket allows only one concurrent writer.
type client struct {
	conn *gws.Conn
	mu   sync.Mutex
}

func (c *client) send(msg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.conn.WriteMessage(int(websocket.TextMessage), []byte(msg))
}

// New returns a new [Server] for the given configuration.
func New(cfg Config) *Server {
	if cfg.WasmExec == "" {
		cfg.WasmExec = FindWasmExec()
	}
	return &Server{Config: cfg, clients: map[*client]struct{}{}}
}

// FindWasmExec returns the path of wasm_exec.js in the Go installation,
// or "" if it cannot be found.
func FindWasmExec() string {
	root := os.Getenv("GOROOT")
	if root == "" {
		root = runtime.GOROOT()
	}
	for _, p := range []string{
		filepath.Join(root, "lib", "wasm", "wasm_exec.js"),
		filepath.Join(root, "misc", "wasm", "wasm_exec.js"),
	} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Handler returns the HTTP handler serving the page, the support files,
// and the live reload WebSocket at /ws. A client that sends
// [websocket.ReloadMessage] makes every page reload.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.serveIndex)
	mux.HandleFunc("GET /index.html", s.serveIndex)
	mux.HandleFunc("GET /wasm_exec.js", func(w http.ResponseWriter, r *http.Request) {
		if s.Config.WasmExec == "" {
			http.Error(w, "wasm_exec.js not found; set the GOROOT environment variable", http.StatusNotFound)
			return
		}
		http.ServeFile(w, r, s.Config.WasmExec)
	})
	mux.HandleFunc("GET /ws", s.serveWebSocket)
	mux.Handle("GET /", noCache(http.FileServer(http.Dir(s.Config.Dir))))
	return mux
}

// noCache makes the browser revalidate every file, so a reload
// always picks up the new build.
func noCache(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		h.ServeHTTP(w, r)
	})
}

// pageConfig returns the configuration in Dir, or the default one.
func (s *Server) pageConfig() *config.Config {
	data, err := os.ReadFile(filepath.Join(s.Config.Dir, config.FileName))
	if err != nil {
		return config.Default()
	}
	c, err := config.Parse(data)
	if errors.Log(err) != nil {
		return config.Default()
	}
	return c
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	c := s.pageConfig()
	var buf bytes.Buffer
	err := indexTmpl.Execute(&buf, map[string]any{
		"Title": s.Config.Title,
		"Wasm":  s.Config.Wasm,
		"Shell": template.HTML(ui.NewShell(c.Width, c.Height).Root.HTML()),
	})
	if errors.Log(err) != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(buf.Bytes())
}

func (s *Server) serveWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	c := &client{conn: conn}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	slog.Debug("live reload client connected", "remote", r.RemoteAddr)
	defer s.drop(c)

	for {
		typ, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if typ == int(websocket.TextMessage) && string(msg) == websocket.ReloadMessage {
			n := s.Broadcast(websocket.ReloadMessage)
			slog.Info("reload requested, reloading pages", "remote", r.RemoteAddr, "clients", n)
		}
	}
}

// drop removes c from the clients and closes its connection.
func (s *Server) drop(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
	c.conn.Close()
}

// Clients returns the number of connected live reload clients.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Broadcast sends a text message to every live reload client and
// returns how many received it. Clients that fail to receive it within
// the write timeout are dropped.
func (s *Server) Broadcast(msg string) int {
	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	n := 0
	for _, c := range clients {
		if err := c.send(msg); err != nil {
			slog.Debug("dropping live reload client", "err", err)
			s.drop(c)
			continue
		}
		n++
	}
	return n
}
