package xml

import (
	"context"
	"path/filepath"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/vergen/compiler/gen"
)

// Generate is a convenience function generating the package of g into
// g.Config.Target with the XML dialect. It applies the hooks registered
// in g.Config.Hooks around the generation.
//
//	err := xml.Generate(graph)
func Generate(ctx context.Context, g *gen.Graph) error {
	if g.Config == nil || g.Config.Target == "" {
		return gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	base := gen.GenerateFunc(func(g *gen.Graph) error {
		generator := gen.NewJenniferGenerator(g, g.Config.Target)
		if g.Config.Package != "" {
			generator.WithPackage(filepath.Base(g.Config.Package))
		}
		generator.WithDialect(NewDialect(generator))
		return generator.Generate(ctx)
	})

	// Apply hooks in reverse order, so the first hook runs outermost.
	var generator gen.Generator = base
	for i := len(g.Config.Hooks) - 1; i >= 0; i-- {
		generator = g.Config.Hooks[i](generator)
	}
	return generator.Generate(g)
}

// Dialect implements gen.Dialect for XML documents.
type Dialect struct {
	helper gen.GeneratorHelper
}

// NewDialect creates a new XML dialect generator.
// The helper parameter should be a *gen.JenniferGenerator.
func NewDialect(helper gen.GeneratorHelper) *Dialect {
	return &Dialect{helper: helper}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "xml"
}

// GenClass generates the class unit ({class}.go).
func (d *Dialect) GenClass(t *gen.Type) *jen.File {
	return genClass(d.helper, t)
}

// GenAPI generates the companion interface ({class}_api.go).
func (d *Dialect) GenAPI(t *gen.Type) *jen.File {
	return genAPI(d.helper, t)
}

// GenFacade generates the procedural façade ({class}_facade.go).
func (d *Dialect) GenFacade(t *gen.Type) *jen.File {
	return genFacade(d.helper, t)
}

// GenList generates a list-of collection ({listof}.go).
func (d *Dialect) GenList(l *gen.ListType) *jen.File {
	return genList(d.helper, l)
}

// GenEnums generates enums.go.
func (d *Dialect) GenEnums() *jen.File {
	return genEnums(d.helper)
}

// GenErrors generates errors.go.
func (d *Dialect) GenErrors() *jen.File {
	return genErrors(d.helper)
}

// GenNamespaces generates namespaces.go.
func (d *Dialect) GenNamespaces() *jen.File {
	return genNamespaces(d.helper)
}

var _ gen.Dialect = (*Dialect)(nil)
