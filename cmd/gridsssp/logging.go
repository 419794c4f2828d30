package main

import (
	"context"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// LogHandler prints "time LEVEL message key=value ..." lines. Writes are
// serialised so records from concurrent solvers do not interleave.
type LogHandler struct {
	level slog.Leveler
	attrs []slog.Attr
	group string
	mu    *sync.Mutex
	out   io.Writer
}

// NewLogHandler returns a handler writing to o at the given minimum level.
func NewLogHandler(o io.Writer, level slog.Leveler) *LogHandler {
	if level == nil {
		level = slog.LevelInfo
	}

	return &LogHandler{level: level, mu: &sync.Mutex{}, out: o}
}

func newLogger(o io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(NewLogHandler(o, level))
}

func (h *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(append([]slog.Attr(nil), h.attrs...), h.qualify(attrs)...)

	return &c
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	c := *h
	if c.group != "" {
		name = c.group + "." + name
	}
	c.group = name

	return &c
}

func (h *LogHandler) Handle(_ context.Context, r slog.Record) error {
	strs := make([]string, 0, 3+len(h.attrs)+r.NumAttrs())
	strs = append(strs, r.Time.Format("2006/01/02 15:04:05"), r.Level.String(), r.Message)
	for _, a := range h.attrs {
		strs = append(strs, a.String())
	}
	r.Attrs(func(a slog.Attr) bool {
		strs = append(strs, h.qualify([]slog.Attr{a})[0].String())
		return true
	})
	b := []byte(strings.Join(strs, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(b)

	return err
}

// qualify prefixes attribute keys with the open group, if any.
func (h *LogHandler) qualify(attrs []slog.Attr) []slog.Attr {
	if h.group == "" {
		return attrs
	}
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: h.group + "." + a.Key, Value: a.Value}
	}

	return out
}
