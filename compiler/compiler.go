// Package compiler runs the generator end to end: it reads a generation
// config, loads the schema snapshot it names and writes the generated
// package with the XML dialect.
package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/syssam/vergen/compiler/gen"
	"github.com/syssam/vergen/compiler/gen/xml"
	"github.com/syssam/vergen/compiler/load"
)

// Environment variables overriding the config file.
const (
	EnvSchema  = "VERGEN_SCHEMA"
	EnvTarget  = "VERGEN_TARGET"
	EnvPackage = "VERGEN_PACKAGE"
	EnvWorkers = "VERGEN_WORKERS"
)

// Config is the file form of a generation run.
//
//	schema: sbml.yaml
//	target: ./sbml
//	package: example.com/model/sbml
//	features: [errors/artifact]
//	disable: [facade]
type Config struct {
	// Schema is the path of the schema snapshot.
	Schema string `yaml:"schema"`
	// Target is the output directory.
	Target string `yaml:"target"`
	// Package is the import path of the generated package.
	Package   string   `yaml:"package,omitempty"`
	Header    string   `yaml:"header,omitempty"`
	Workers   int      `yaml:"workers,omitempty"`
	ErrorBase int      `yaml:"error_base,omitempty"`
	Features  []string `yaml:"features,omitempty"`
	Disable   []string `yaml:"disable,omitempty"`

	// path of the file the config was read from.
	path string
}

// LoadConfig reads the config file at path. Values are then overridden by
// the environment: the process environment first, then the given dotenv
// files. Missing dotenv files are ignored. Relative schema and target paths
// are resolved against the directory of the config file.
func LoadConfig(path string, envFiles ...string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("compiler: read config: %w", err)
	}
	c := &Config{path: path}
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("compiler: parse config %s: %w", path, err)
	}
	env, err := readEnv(envFiles)
	if err != nil {
		return nil, err
	}
	if err := c.override(env); err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	c.Schema = resolve(dir, c.Schema)
	c.Target = resolve(dir, c.Target)
	return c, nil
}

// readEnv merges the dotenv files.
func readEnv(files []string) (map[string]string, error) {
	env := make(map[string]string)
	for _, f := range files {
		m, err := godotenv.Read(f)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			continue
		case err != nil:
			return nil, fmt.Errorf("compiler: read env %s: %w", f, err)
		}
		for k, v := range m {
			if _, ok := env[k]; !ok {
				env[k] = v
			}
		}
	}
	return env, nil
}

func (c *Config) override(env map[string]string) error {
	lookup := func(k string) (string, bool) {
		if v, ok := os.LookupEnv(k); ok {
			return v, true
		}
		v, ok := env[k]
		return v, ok
	}
	if v, ok := lookup(EnvSchema); ok {
		c.Schema = v
	}
	if v, ok := lookup(EnvTarget); ok {
		c.Target = v
	}
	if v, ok := lookup(EnvPackage); ok {
		c.Package = v
	}
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return gen.NewConfigError("Workers", v, EnvWorkers+" must be an integer")
		}
		c.Workers = n
	}
	return nil
}

// Path returns the file c was read from.
func (c *Config) Path() string { return c.path }

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Options returns the generator options described by c.
func (c *Config) Options() ([]gen.Option, error) {
	if c.Target == "" {
		return nil, gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	opts := []gen.Option{gen.WithTarget(c.Target)}
	if c.Package != "" {
		opts = append(opts, gen.WithPackage(c.Package))
	}
	if c.Header != "" {
		opts = append(opts, gen.WithHeader(c.Header))
	}
	if c.Workers != 0 {
		opts = append(opts, gen.WithWorkers(c.Workers))
	}
	if c.ErrorBase != 0 {
		opts = append(opts, gen.WithErrorBase(c.ErrorBase))
	}
	for _, name := range c.Features {
		f, ok := feature(name)
		if !ok {
			return nil, gen.NewConfigError("Features", name, "unexpected feature name")
		}
		opts = append(opts, gen.WithFeatures(f))
	}
	if len(c.Disable) > 0 {
		opts = append(opts, gen.WithoutFeatures(c.Disable...))
	}
	return opts, nil
}

func feature(name string) (gen.Feature, bool) {
	for _, f := range gen.AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return gen.Feature{}, false
}

// Generate loads the snapshot named by c and generates its package. Class
// errors of the schema do not stop the run: the healthy classes are
// generated and the class errors are returned joined with the result.
func Generate(ctx context.Context, c *Config, opts ...gen.Option) error {
	if c.Schema == "" {
		return gen.NewConfigError("Schema", nil, "missing schema snapshot in config")
	}
	base, err := c.Options()
	if err != nil {
		return err
	}
	cfg, err := gen.NewConfig(append(base, opts...)...)
	if err != nil {
		return err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s, err := load.Load(c.Schema)
	if err != nil {
		return err
	}
	g, classErr := gen.NewGraph(cfg, s)
	if g == nil {
		return classErr
	}
	for _, e := range gen.SchemaErrors(classErr) {
		logger.Warn("class dropped", "schema", c.Schema, "path", e.Path(), "error", e.Message)
	}
	if err := xml.Generate(ctx, g); err != nil {
		return errors.Join(classErr, err)
	}
	logger.Info("package generated", "package", g.Package, "target", cfg.Target, "classes", len(g.Nodes))
	return classErr
}
