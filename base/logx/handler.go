// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes human-readable, level-colored
// lines. Color degrades automatically with the terminal's profile as
// detected by termenv.
type Handler struct {
	mu     sync.Mutex
	w      io.Writer
	out    *termenv.Output
	prefix string
	attrs  []slog.Attr
}

// NewHandler returns a new [Handler] writing to w.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w, out: termenv.NewOutput(w)}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelTag(r.Level))
	b.WriteByte(' ')
	if h.prefix != "" {
		b.WriteString(h.prefix)
		b.WriteByte('.')
	}
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := h.clone()
	nh.attrs = append(nh.attrs, attrs...)
	return nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := h.clone()
	if nh.prefix == "" {
		nh.prefix = name
	} else {
		nh.prefix += "." + name
	}
	return nh
}

func (h *Handler) clone() *Handler {
	return &Handler{
		w:      h.w,
		out:    h.out,
		prefix: h.prefix,
		attrs:  append([]slog.Attr(nil), h.attrs...),
	}
}

func (h *Handler) levelTag(level slog.Level) string {
	p := h.out.ColorProfile()
	switch {
	case level >= slog.LevelError:
		return h.out.String("ERR").Foreground(p.Color("9")).Bold().String()
	case level >= slog.LevelWarn:
		return h.out.String("WRN").Foreground(p.Color("11")).String()
	case level >= slog.LevelInfo:
		return h.out.String("INF").Foreground(p.Color("12")).String()
	default:
		return h.out.String("DBG").Foreground(p.Color("8")).String()
	}
}
