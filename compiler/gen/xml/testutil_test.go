package xml

import (
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/require"

	"github.com/syssam/vergen/compiler/gen"
	"github.com/syssam/vergen/schema"
	"github.com/syssam/vergen/schema/edge"
	"github.com/syssam/vergen/schema/field"
	"github.com/syssam/vergen/schema/mixin"
	"github.com/syssam/vergen/schema/version"
)

var (
	l3v1 = version.New(3, 1, 1)
	l3v2 = version.New(3, 2, 1)
)

func testSchema() *schema.Schema {
	return &schema.Schema{
		Package: "sbml",
		Prefix:  "fbc",
		Versions: []*schema.VersionDecl{
			{Tuple: l3v1, CoreURI: "http://www.sbml.org/sbml/level3/version1/core"},
			{
				Tuple:      l3v2,
				CoreURI:    "http://www.sbml.org/sbml/level3/version2/core",
				PackageURI: "http://www.sbml.org/sbml/level3/version1/fbc/version2",
			},
		},
		Enums: []*schema.Enum{
			schema.EnumOf("UnitKind", "ampere", "gram", "litre"),
		},
		Classes: []*schema.Class{
			schema.NewClass("Compartment").
				Mixin(mixin.Named{}).
				Attributes(
					field.Double("size"),
					field.Bool("constant").Required(l3v1),
				).
				Class(),
			schema.NewClass("Species").
				Attributes(
					field.ID("id").Required(),
					field.IDRef("compartment").Required(),
					field.Double("initialAmount"),
					field.IDRef("conversionFactor").Versions(l3v1),
				).
				Class(),
			schema.NewClass("Unit").
				Attributes(
					field.Enum("kind", "UnitKind").Required(),
					field.Int("exponent"),
				).
				Class(),
			schema.NewClass("UnitDefinition").
				Attributes(field.ID("id").Required()).
				Elements(edge.List("units", "Unit")).
				Class(),
			schema.NewClass("Rule").
				Abstract().
				Attributes(field.IDRef("variable")).
				Class(),
			schema.NewClass("AssignmentRule").Extends("Rule").Class(),
			schema.NewClass("RateRule").
				Extends("Rule").
				Attributes(field.String("note").Versions(l3v2)).
				Class(),
			schema.NewClass("KineticLaw").Class(),
			schema.NewClass("Reaction").
				Attributes(field.ID("id").Required()).
				Elements(
					edge.Child("kineticLaw", "KineticLaw").Versions(l3v2),
					edge.Child("rule", "Rule"),
				).
				Class(),
			schema.NewClass("Model").
				Attributes(field.ID("id")).
				Elements(
					edge.List("species", "Species"),
					edge.List("unitDefinitions", "UnitDefinition"),
					edge.List("rules", "Rule"),
					edge.List("reactions", "Reaction").Required(),
				).
				Class(),
			schema.NewClass("Point").
				Attributes(field.Double("x").Required(), field.Double("y")).
				Class(),
			schema.NewClass("LineSegment").
				Elements(
					edge.Child("start", "Point"),
					edge.Child("end", "Point"),
					edge.List("points", "Point").Versions(l3v2),
				).
				Class(),
		},
	}
}

// newTestDialect returns a dialect over the test schema, backed by a real
// generator.
func newTestDialect(t *testing.T) (*Dialect, *gen.JenniferGenerator) {
	t.Helper()
	c, err := gen.NewConfig(gen.WithPackage("example.com/sbml"), gen.WithErrorBase(100))
	require.NoError(t, err)
	g, err := gen.NewGraph(c, testSchema())
	require.NoError(t, err)
	jg := gen.NewJenniferGenerator(g, t.TempDir())
	d := NewDialect(jg)
	jg.WithDialect(d)
	return d, jg
}

func mustType(t *testing.T, jg *gen.JenniferGenerator, name string) *gen.Type {
	t.Helper()
	typ, ok := jg.Graph().Type(name)
	require.True(t, ok, name)
	return typ
}

func mustList(t *testing.T, jg *gen.JenniferGenerator, name string) *gen.ListType {
	t.Helper()
	for _, l := range jg.Graph().Lists {
		if l.Name == name {
			return l
		}
	}
	require.FailNow(t, "no list type", name)
	return nil
}

func code(f *jen.File) string { return f.GoString() }
