package gen

import (
	"errors"
	"log/slog"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the output package import path.
// For example: "github.com/org/project/sbml".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithWorkers sets the number of classes generated in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithFeatures enables specific features.
// Features control optional code generation capabilities.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		for _, f := range features {
			if !c.HasFeature(f.Name) {
				c.Features = append(c.Features, f)
			}
		}
		return nil
	}
}

// WithoutFeatures disables the named features.
func WithoutFeatures(names ...string) Option {
	return func(c *Config) error {
		kept := c.Features[:0:0]
		for _, f := range c.Features {
			drop := false
			for _, n := range names {
				drop = drop || f.Name == n
			}
			if !drop {
				kept = append(kept, f)
			}
		}
		c.Features = kept
		return nil
	}
}

// WithErrorBase sets the first error code allocated for the package,
// overriding the schema.
func WithErrorBase(base int) Option {
	return func(c *Config) error {
		if base <= 0 {
			return NewConfigError("ErrorBase", base, "error base must be positive")
		}
		c.ErrorBase = base
		return nil
	}
}

// WithLogger sets the logger receiving generation progress.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithHooks adds generation hooks.
// Hooks are called before/after code generation.
func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, hooks...)
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

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
