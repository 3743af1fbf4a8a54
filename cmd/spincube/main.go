// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

// Command spincube draws a rotating colored cube on a WebGL canvas.
// Build it with GOOS=js GOARCH=wasm and serve it with spincube-serve.
package main

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"cogentcore.org/spincube/app"
	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/base/logx"
	"cogentcore.org/spincube/base/websocket"
	"cogentcore.org/spincube/config"
	"cogentcore.org/spincube/frame"
	"cogentcore.org/spincube/gl/webgl"
	"cogentcore.org/spincube/render"
	"cogentcore.org/spincube/ui"
	"github.com/hack-pad/safejs"
)

func main() {
	logx.SetDefaultLogger()
	location := errors.Must1(safejs.Global().Get("location"))

	cfg := loadConfig(location)
	logx.UserLevel = cfg.Level()

	a, err := app.New(cfg, app.Host{
		Canvas: func() (render.Canvas, error) {
			return webgl.FindCanvas(ui.CanvasID)
		},
		Frames: frame.AnimationFrames,
	})
	if errors.Log(err) != nil {
		return
	}
	if errors.Log(ui.Mount(a.Shell.Root, cfg.MountOptions())) != nil {
		return
	}
	liveReload(location)
	select {}
}

// loadConfig returns the server's spincube.toml layered over the
// defaults. A missing or broken file leaves the defaults in place.
func loadConfig(location safejs.Value) *config.Config {
	origin, err := stringProp(location, "origin")
	if errors.Log(err) != nil {
		return config.Default()
	}
	resp, err := http.Get(origin + "/" + config.FileName)
	if errors.Log(err) != nil {
		return config.Default()
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		slog.Debug("no config file on server, using defaults", "status", resp.StatusCode)
		return config.Default()
	}
	data, err := io.ReadAll(resp.Body)
	if errors.Log(err) != nil {
		return config.Default()
	}
	c, err := config.Parse(data)
	if errors.Log(err) != nil {
		return config.Default()
	}
	return c
}

// liveReload reloads the page when the development server reports a
// new build.
func liveReload(location safejs.Value) {
	host, err := stringProp(location, "host")
	if errors.Log(err) != nil {
		return
	}
	protocol := errors.Ignore1(stringProp(location, "protocol"))
	scheme := "ws://"
	if strings.HasPrefix(protocol, "https") {
		scheme = "wss://"
	}
	c, err := websocket.Connect(scheme + host + "/ws")
	if err != nil {
		slog.Debug("live reload unavailable", "err", err)
		return
	}
	c.OnMessage(func(typ websocket.MessageTypes, msg []byte) {
		if typ == websocket.TextMessage && string(msg) == websocket.ReloadMessage {
			slog.Info("reloading for new build")
			errors.Log(c.Close())
			errors.Log1(location.Call("reload"))
		}
	})
	c.OnClose(func() {
		slog.Debug("live reload connection closed")
	})
}

func stringProp(v safejs.Value, name string) (string, error) {
	p, err := v.Get(name)
	if err != nil {
		return "", err
	}
	return p.String()
}
