package gen

import (
	"io"
	"log/slog"
	"path"
	"runtime"
	"slices"
)

const (
	defaultHeader = "Code generated by vergen. DO NOT EDIT."
	// DefaultErrorBase is the first error code of a package whose schema
	// does not set one.
	DefaultErrorBase = 10000
)

// Config holds the global codegen configuration to be
// shared between all generated nodes.
type Config struct {
	// Target defines the filepath for the target directory that
	// holds the generated code.
	Target string
	// Package defines the Go import path of the target package. The last
	// path element overrides the package name declared by the schema.
	Package string
	// Header is the header comment of every generated file.
	Header string
	// Workers is the number of classes generated in parallel.
	Workers int
	// Features defines a list of additional features to add to the codegen phase.
	Features []Feature
	// ErrorBase overrides the first error code declared by the schema.
	ErrorBase int
	// Hooks holds an optional list of Hooks to apply on the graph before/after the code-generation.
	Hooks []Hook
	// Logger receives generation progress. Nil discards.
	Logger *slog.Logger
}

// DefaultConfig returns a config with the default header, every
// default-enabled feature and one worker per CPU.
func DefaultConfig() *Config {
	c := &Config{
		Header:  defaultHeader,
		Workers: runtime.GOMAXPROCS(0),
	}
	for _, f := range AllFeatures {
		if f.Default {
			c.Features = append(c.Features, f)
		}
	}
	return c
}

// NewConfig returns DefaultConfig with opts applied.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// FeatureEnabled reports if the given feature name is enabled. Unknown
// names are a ConfigError.
func (c Config) FeatureEnabled(name string) (bool, error) {
	for _, f := range allFeatures {
		if name == f.Name {
			return slices.ContainsFunc(c.Features, func(e Feature) bool { return e.Name == name }), nil
		}
	}
	return false, NewConfigError("Feature", name, "unexpected feature name")
}

// HasFeature reports if the given feature is enabled. Unknown names report false.
func (c Config) HasFeature(name string) bool {
	enabled, _ := c.FeatureEnabled(name)
	return enabled
}

// PackageName returns the name of the generated package, or fallback when
// no import path is configured.
func (c Config) PackageName(fallback string) string {
	if c.Package != "" {
		return path.Base(c.Package)
	}
	return fallback
}

// logger returns the configured logger or a discarding one.
func (c *Config) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

// Generator is the interface that wraps the Generate method.
type Generator interface {
	// Generate generates the code from the graph.
	Generate(*Graph) error
}

// The GenerateFunc type is an adapter to allow the use of ordinary
// function as Generator. If f is a function with the appropriate signature,
// GenerateFunc(f) is a Generator that calls f.
type GenerateFunc func(*Graph) error

// Generate calls f(g).
func (f GenerateFunc) Generate(g *Graph) error {
	return f(g)
}

// Hook defines the "generate middleware". A function that gets a Generator
// and returns a Generator. For example:
//
//	hook := func(next gen.Generator) gen.Generator {
//		return gen.GenerateFunc(func(g *Graph) error {
//			fmt.Println("Graph:", g)
//			return next.Generate(g)
//		})
//	}
type Hook func(Generator) Generator
