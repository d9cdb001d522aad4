//go:build go1.21

package slog

import (
	"context"
	"io"
	stdslog "log/slog"
	"sort"

	"github.com/unkn0wn-root/contactconv"
)

var _ contactconv.Logger = Logger{}

type Logger struct{ L *stdslog.Logger }

// New builds a text-handler logger writing to w at the given level.
func New(w io.Writer, level stdslog.Level) Logger {
	return Logger{L: stdslog.New(stdslog.NewTextHandler(w, &stdslog.HandlerOptions{Level: level}))}
}

func (s Logger) Debug(msg string, f contactconv.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelDebug, msg, attrs(f)...)
}
func (s Logger) Info(msg string, f contactconv.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelInfo, msg, attrs(f)...)
}
func (s Logger) Warn(msg string, f contactconv.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelWarn, msg, attrs(f)...)
}
func (s Logger) Error(msg string, f contactconv.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelError, msg, attrs(f)...)
}

func attrs(f contactconv.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]stdslog.Attr, 0, len(f))
	for _, k := range keys {
		out = append(out, stdslog.Any(k, f[k]))
	}
	return out
}
