// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package websocket provides a WebSocket client that works on both
// the web (through the browser WebSocket API) and native platforms
// (through gorilla/websocket). Pages only listen, so sending is
// native only.
package websocket

// MessageTypes are the types of WebSocket messages.
type MessageTypes int

const (
	// TextMessage is a UTF-8 text message.
	TextMessage MessageTypes = 1

	// BinaryMessage is a binary data message.
	BinaryMessage MessageTypes = 2
)

// ReloadMessage is the text message the development server sends
// when the page should be reloaded.
const ReloadMessage = "reload"
