package gen

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
)

// Import paths referenced by the generated code.
const (
	runtimePkg = "github.com/syssam/vergen/docmodel"
	versionPkg = "github.com/syssam/vergen/schema/version"
)

// JenniferGenerator generates code using Jennifer.
// Files are rendered in parallel into memory, then handed to the writer
// which formats them and writes only what changed.
type JenniferGenerator struct {
	graph   *Graph
	workers int
	outDir  string
	pkg     string

	// Dialect generator for the target document format
	dialect Dialect

	mu      sync.Mutex
	files   map[string][]byte
	metrics WriterMetrics
}

// NewJenniferGenerator creates a new Jennifer-based generator.
// You must call WithDialect() to set a dialect before calling Generate().
//
// Example:
//
//	import "github.com/syssam/vergen/compiler/gen/xml"
//
//	gen := gen.NewJenniferGenerator(graph, outDir)
//	dialect := xml.NewDialect(gen)
//	gen.WithDialect(dialect)
//	gen.Generate(ctx)
func NewJenniferGenerator(g *Graph, outDir string) *JenniferGenerator {
	workers := runtime.GOMAXPROCS(0)
	if g.Config != nil && g.Workers > 0 {
		workers = g.Workers
	}
	return &JenniferGenerator{
		graph:   g,
		workers: workers,
		outDir:  outDir,
		pkg:     g.Package,
		files:   make(map[string][]byte),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *JenniferGenerator) WithWorkers(n int) *JenniferGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the output package name.
func (g *JenniferGenerator) WithPackage(pkg string) *JenniferGenerator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// WithDialect sets the dialect generator.
func (g *JenniferGenerator) WithDialect(d Dialect) *JenniferGenerator {
	if d != nil {
		g.dialect = d
	}
	return g
}

// Generate renders every file of the graph with parallel execution, then
// writes the changed files to the output directory.
// Returns an error if no dialect has been set via WithDialect().
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	if g.dialect == nil {
		return NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before Generate()")
	}
	if err := g.Render(ctx); err != nil {
		return err
	}
	w := &writer{dir: g.outDir, logger: g.graph.logger()}
	err := w.write(g.Files())
	g.metrics = w.metrics
	if err != nil {
		return err
	}
	if g.graph.Config != nil {
		cfg := *g.graph.Config
		cfg.Target = g.outDir
		return cleanupFeatures(&cfg)
	}
	return nil
}

// Render renders every file of the graph into memory.
func (g *JenniferGenerator) Render(ctx context.Context) error {
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)

	// Generate per-class files in parallel using dialect interface
	for _, t := range g.graph.Nodes {
		t := t
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := g.render("class", t.FileName(), g.dialect.GenClass(t)); err != nil {
				return err
			}
			if t.Abstract {
				return nil
			}
			if g.FeatureEnabled(FeatureAPI.Name) {
				if err := g.render("api", t.FileBase()+"_api.go", g.dialect.GenAPI(t)); err != nil {
					return err
				}
			}
			if g.FeatureEnabled(FeatureFacade.Name) {
				return g.render("facade", t.FileBase()+"_facade.go", g.dialect.GenFacade(t))
			}
			return nil
		})
	}
	for _, l := range g.graph.Lists {
		l := l
		errg.Go(func() error {
			return g.render("list", l.FileName(), g.dialect.GenList(l))
		})
	}

	// Generate package files using dialect interface
	errg.Go(func() error {
		return g.render("package", "enums.go", g.dialect.GenEnums())
	})
	errg.Go(func() error {
		return g.render("package", "errors.go", g.dialect.GenErrors())
	})
	errg.Go(func() error {
		return g.render("package", "namespaces.go", g.dialect.GenNamespaces())
	})

	if g.FeatureEnabled(FeatureErrorArtifact.Name) && g.graph.Errors != nil {
		errg.Go(func() error {
			y, err := g.graph.Errors.MarshalYAML()
			if err != nil {
				return NewGenerationError("artifact", ErrorArtifactYAML, "cannot encode error codes", err)
			}
			m, err := g.graph.Errors.MarshalMsgpack()
			if err != nil {
				return NewGenerationError("artifact", ErrorArtifactMsgpack, "cannot encode error codes", err)
			}
			g.add(ErrorArtifactYAML, y)
			g.add(ErrorArtifactMsgpack, m)
			return nil
		})
	}
	return errg.Wait()
}

// Metrics returns the metrics of the last write.
func (g *JenniferGenerator) Metrics() WriterMetrics {
	return g.metrics
}

// Files returns the rendered files by name.
func (g *JenniferGenerator) Files() map[string][]byte {
	g.mu.Lock()
	defer g.mu.Unlock()
	files := make(map[string][]byte, len(g.files))
	for name, b := range g.files {
		files[name] = b
	}
	return files
}

// =============================================================================
// GeneratorHelper interface implementation
// These exported methods allow dialect packages to access helper functionality.
// =============================================================================

// NewFile creates a new Jennifer file with the standard header comment.
func (g *JenniferGenerator) NewFile(pkg string) *jen.File {
	return g.newFile(pkg)
}

// Graph returns the schema graph.
func (g *JenniferGenerator) Graph() *Graph {
	return g.graph
}

// Pkg returns the output package name.
func (g *JenniferGenerator) Pkg() string {
	return g.pkg
}

// RuntimePkg returns the import path of the generated-code runtime.
func (g *JenniferGenerator) RuntimePkg() string {
	return runtimePkg
}

// VersionPkg returns the import path of the version tuple package.
func (g *JenniferGenerator) VersionPkg() string {
	return versionPkg
}

// FeatureEnabled reports if the given feature name is enabled.
func (g *JenniferGenerator) FeatureEnabled(name string) bool {
	if g.graph.Config == nil {
		return false
	}
	return g.graph.HasFeature(name)
}

var _ GeneratorHelper = (*JenniferGenerator)(nil)

// =============================================================================
// Internal helper methods (unexported)
// =============================================================================

// render renders f into the in-memory file set.
func (g *JenniferGenerator) render(phase, name string, f *jen.File) error {
	if f == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError(phase, name, "cannot render file", err)
	}
	g.add(filepath.ToSlash(name), buf.Bytes())
	return nil
}

func (g *JenniferGenerator) add(name string, b []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.files[name] = b
}

// newFile creates a new Jennifer file with the header comment.
func (g *JenniferGenerator) newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	header := defaultHeader
	if g.graph.Config != nil && g.graph.Header != "" {
		header = g.graph.Header
	}
	f.HeaderComment(header)
	return f
}
