package gologger

import (
	"context"
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

// levels maps runtime config names onto go-logger levels.
var levels = map[string]string{
	"trace":   glog.Trace,
	"debug":   glog.Debug,
	"info":    glog.Info,
	"warn":    glog.Warn,
	"warning": glog.Warn,
	"error":   glog.Error,
	"fatal":   glog.Fatal,
}

// Config carries the go-logger options the landing runtime exposes.
type Config struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Provider hands out named child loggers backed by a single go-logger root.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider builds a provider from the runtime logging configuration.
// Unknown formats are rejected; an unknown level falls back to go-logger's
// default.
func NewProvider(cfg Config) (*Provider, error) {
	opts := []glog.Option{}

	if level, ok := levels[strings.ToLower(strings.TrimSpace(cfg.Level))]; ok {
		opts = append(opts, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "json":
		opts = append(opts, glog.WithLoggerTypeJSON())
	case "console":
		opts = append(opts, glog.WithLoggerTypeConsole())
	case "pretty":
		opts = append(opts, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported go-logger format %q", cfg.Format)
	}

	if cfg.AddSource {
		opts = append(opts, glog.WithAddSource(true))
	}

	root := glog.NewLogger(opts...)

	focus := make([]string, 0, len(cfg.Focus))
	for _, name := range cfg.Focus {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			focus = append(focus, trimmed)
		}
	}
	if len(focus) > 0 {
		root.Focus(focus...)
	}

	return &Provider{root: root}, nil
}

// GetLogger implements interfaces.LoggerProvider.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil || p.root == nil {
		return logging.NoOp()
	}
	if name = strings.TrimSpace(name); name == "" {
		return logger{inner: p.root}
	}
	return logger{inner: p.root.GetLogger(name)}
}

// logger adapts one go-logger child to the landing Logger contract.
type logger struct {
	inner glog.Logger
}

func (l logger) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l logger) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l logger) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l logger) Fatal(msg string, args ...any) { l.inner.Fatal(msg, args...) }

func (l logger) WithFields(fields map[string]any) interfaces.Logger {
	with, ok := l.inner.(glog.FieldsLogger)
	if !ok || len(fields) == 0 {
		return l
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return logger{inner: with.WithFields(copied)}
}

func (l logger) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return logger{inner: l.inner.WithContext(ctx)}
}

var (
	_ interfaces.LoggerProvider = (*Provider)(nil)
	_ interfaces.FieldsLogger   = logger{}
)
