package main

import (
	"fmt"
	"io"
	stdslog "log/slog"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/contactconv"
	"github.com/unkn0wn-root/contactconv/config"
	logruslog "github.com/unkn0wn-root/contactconv/log/logrus"
	sloglog "github.com/unkn0wn-root/contactconv/log/slog"
	zaplog "github.com/unkn0wn-root/contactconv/log/zap"
)

// buildLogger returns the configured backend and a flush func to defer.
func buildLogger(cfg config.Log, w io.Writer) (contactconv.Logger, func(), error) {
	level := strings.ToLower(cfg.Level)
	if level == "" {
		level = "info"
	}
	nop := func() {}

	switch strings.ToLower(cfg.Backend) {
	case "", config.BackendNone:
		return contactconv.NopLogger{}, nop, nil
	case config.BackendZap:
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, nop, err
		}
		z, err := zaplog.New(lvl)
		if err != nil {
			return nil, nop, err
		}
		return z, func() { _ = z.Sync() }, nil
	case config.BackendLogrus:
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, nop, err
		}
		return logruslog.New(w, lvl), nop, nil
	case config.BackendSlog:
		var lvl stdslog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, nop, err
		}
		return sloglog.New(w, lvl), nop, nil
	default:
		return nil, nop, fmt.Errorf("unknown log backend %q", cfg.Backend)
	}
}
