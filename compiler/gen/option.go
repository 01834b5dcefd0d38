package gen

import (
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"strings"

	"github.com/syssam/pgc/compiler/request"
)

// Config configures code generation.
type Config struct {
	// Logger receives debug records for every rendered file.
	Logger *slog.Logger
	// Templates replaces the bundled templates. It must be laid out as
	// {language}/{driver}/{name}.tmpl.
	Templates fs.FS
	// Overrides are merged over the type overrides of the request.
	Overrides map[string]request.TypeConfig
}

// Option configures code generation.
type Option func(*Config) error

// WithLogger sets the logger of the generator.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithTemplates replaces the bundled templates.
func WithTemplates(fsys fs.FS) Option {
	return func(c *Config) error {
		if fsys == nil {
			return NewConfigError("Templates", nil, "template filesystem cannot be nil")
		}
		c.Templates = fsys
		return nil
	}
}

// WithTypeOverrides adds type overrides. Keys are catalog-qualified type
// names such as "pg_catalog.int8" or "public.mood".
func WithTypeOverrides(overrides map[string]request.TypeConfig) Option {
	return func(c *Config) error {
		for name := range overrides {
			if schema, typ, ok := strings.Cut(name, "."); !ok || schema == "" || typ == "" {
				return NewConfigError("Overrides", name, "key must be of the form schema.name")
			}
		}
		if c.Overrides == nil {
			c.Overrides = make(map[string]request.TypeConfig)
		}
		maps.Copy(c.Overrides, overrides)
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c, nil
}
