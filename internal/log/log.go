// Package log provides a logging backend, based around the go-logging package.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/op/go-logging.v1"
)

// Backend is a log backend.
type Backend struct {
	w       io.Writer
	backend logging.LeveledBackend
}

// GetLogger returns a per-module logger that writes to the backend.
func (b *Backend) GetLogger(module string) *logging.Logger {
	l := logging.MustGetLogger(module)
	l.SetBackend(b.backend)
	return l
}

// GetSlogger returns a *slog.Logger whose records are written through the
// per-module go-logging logger, so that library code logging with slog shares
// the backend's format and level.
func (b *Backend) GetSlogger(module string) *slog.Logger {
	return slog.New(&slogHandler{logger: b.GetLogger(module), backend: b.backend})
}

// New initializes a logging backend. An empty f logs to stderr.
func New(f string, level string, disable bool) (*Backend, error) {
	b := new(Backend)

	lvl, err := logLevelFromString(level)
	if err != nil {
		return nil, err
	}

	if disable {
		b.w = io.Discard
	} else if f == "" {
		b.w = os.Stderr
	} else {
		const fileMode = 0600

		var err error
		flags := os.O_CREATE | os.O_APPEND | os.O_WRONLY
		b.w, err = os.OpenFile(f, flags, fileMode)
		if err != nil {
			return nil, fmt.Errorf("log: failed to create log file: %v", err)
		}
	}

	logFmt := logging.MustStringFormatter("%{time:15:04:05.000} %{level:.4s} %{module}: %{message}")
	base := logging.NewLogBackend(b.w, "", 0)
	formatted := logging.NewBackendFormatter(base, logFmt)
	b.backend = logging.AddModuleLevel(formatted)
	b.backend.SetLevel(lvl, "")
	return b, nil
}

func logLevelFromString(l string) (logging.Level, error) {
	switch strings.ToUpper(l) {
	case "ERROR":
		return logging.ERROR, nil
	case "WARNING":
		return logging.WARNING, nil
	case "NOTICE":
		return logging.NOTICE, nil
	case "INFO":
		return logging.INFO, nil
	case "DEBUG":
		return logging.DEBUG, nil
	default:
		return logging.CRITICAL, fmt.Errorf("log: invalid level: '%v'", l)
	}
}

// slogHandler adapts a go-logging logger to slog.Handler.
type slogHandler struct {
	logger  *logging.Logger
	backend logging.LeveledBackend
	attrs   []slog.Attr
	group   string
}

func levelFromSlog(l slog.Level) logging.Level {
	switch {
	case l >= slog.LevelError:
		return logging.ERROR
	case l >= slog.LevelWarn:
		return logging.WARNING
	case l >= slog.LevelInfo:
		return logging.INFO
	default:
		return logging.DEBUG
	}
}

func (h *slogHandler) Enabled(_ context.Context, l slog.Level) bool {
	// Logger.IsEnabledFor consults the package default backend, not ours.
	return h.backend.IsEnabledFor(levelFromSlog(l), h.logger.Module)
}

func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value.Resolve())
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&sb, " %s=%v", h.key(a.Key), a.Value.Resolve())
		return true
	})

	msg := sb.String()
	switch levelFromSlog(r.Level) {
	case logging.ERROR:
		h.logger.Error(msg)
	case logging.WARNING:
		h.logger.Warning(msg)
	case logging.INFO:
		h.logger.Info(msg)
	default:
		h.logger.Debug(msg)
	}
	return nil
}

func (h *slogHandler) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		merged = append(merged, slog.Attr{Key: h.key(a.Key), Value: a.Value})
	}
	return &slogHandler{logger: h.logger, backend: h.backend, attrs: merged, group: h.group}
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &slogHandler{logger: h.logger, backend: h.backend, attrs: h.attrs, group: group}
}
