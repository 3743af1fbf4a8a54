// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Handler is a [slog.Handler] that formats each record as a single
// line of the form "LEVEL message key=value ..." and passes it to
// an output function together with the record level. The output
// function decides where the line goes (terminal, browser console).
type Handler struct {
	level slog.Leveler
	out   func(level slog.Level, line string)

	// prefix is the preformatted text of attrs added through WithAttrs.
	prefix string

	// group is the dotted group prefix added through WithGroup.
	group string

	mu *sync.Mutex
}

// NewHandler returns a new [Handler] that emits records at or above
// the given level through out. If level is nil, [UserLevel] is used.
func NewHandler(level slog.Leveler, out func(level slog.Level, line string)) *Handler {
	if level == nil {
		level = userLeveler{}
	}
	return &Handler{level: level, out: out, mu: &sync.Mutex{}}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Level.String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.prefix)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.group, a)
		return true
	})
	h.mu.Lock()
	defer h.mu.Unlock()
	h.out(r.Level, sb.String())
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	var sb strings.Builder
	sb.WriteString(h.prefix)
	for _, a := range attrs {
		writeAttr(&sb, h.group, a)
	}
	nh.prefix = sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group = joinKey(h.group, name)
	return &nh
}

func writeAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		g := joinKey(group, a.Key)
		for _, ga := range a.Value.Group() {
			writeAttr(sb, g, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(joinKey(group, a.Key))
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	if key == "" {
		return group
	}
	return group + "." + key
}
