package compat

import (
	"fmt"

	"github.com/tinylog-go/tinylog"
)

// Builder provides a flexible way to create configured logger adapters for
// gnet and fasthttp. It can use an existing *tinylog.Logger instance or
// create a new one from a *tinylog.Config.
type Builder struct {
	logger *tinylog.Logger
	logCfg *tinylog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// Recommended for applications that already have a central logger instance.
// If this is set WithConfig is ignored.
func (b *Builder) WithLogger(l *tinylog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("tinylog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance.
// This is used only if an existing logger is NOT provided via WithLogger.
func (b *Builder) WithConfig(cfg *tinylog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*tinylog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	return tinylog.New(b.logCfg), nil
}

// BuildFastHTTP returns a fasthttp-compatible adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	logger, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(logger, opts...), nil
}

// BuildGnet returns a gnet-compatible adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	logger, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(logger, opts...), nil
}
