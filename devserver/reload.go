// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package devserver

import (
	"context"
	"fmt"

	"cogentcore.org/spincube/base/websocket"
)

// RequestReload asks the server listening on addr to reload its pages.
// It returns once the server has closed the connection, which it only
// does after handling the request.
func RequestReload(ctx context.Context, addr string) error {
	c, err := websocket.Connect("ws://" + addr + "/ws")
	if err != nil {
		return fmt.Errorf("devserver: connecting to %s: %w", addr, err)
	}
	closed := make(chan struct{})
	c.OnClose(func() { close(closed) })

	if err := c.Send(websocket.TextMessage, []byte(websocket.ReloadMessage)); err != nil {
		c.Close()
		return fmt.Errorf("devserver: sending reload: %w", err)
	}
	if err := c.Close(); err != nil {
		return fmt.Errorf("devserver: closing: %w", err)
	}
	select {
	case <-closed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
