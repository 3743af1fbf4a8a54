// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package devserver

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/base/websocket"
	"cogentcore.org/spincube/config"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// Watch watches Dir and broadcasts [websocket.ReloadMessage] once writes
// to the WASM binary or the configuration file have settled for
// Config.Debounce. It returns when ctx is done.
func (s *Server) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(s.Config.Dir); err != nil {
		return err
	}

	var timer *time.Timer
	reload := func() {
		n := s.Broadcast(websocket.ReloadMessage)
		slog.Info("build changed, reloading pages", "clients", n)
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !s.watched(event) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(s.Config.Debounce, reload)
			} else {
				timer.Reset(s.Config.Debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("file watcher error", "err", err)
		}
	}
}

func (s *Server) watched(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	return name == s.Config.Wasm || name == config.FileName
}

// Run serves on Config.Addr and watches for changes until ctx is done
// or either fails.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is like [Server.Run] with an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("serving", "url", "http://"+ln.Addr().String(), "dir", s.Config.Dir)
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return s.Watch(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
