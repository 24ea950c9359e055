package gen

import (
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

// testSchema returns a small model in the shape of the SBML core: classes
// that change between two versions, an abstract slot and nested lists.
func testSchema() *schema.Schema {
	return &schema.Schema{
		Package: "sbml",
		Versions: []*schema.VersionDecl{
			{Tuple: l3v1, CoreURI: "http://www.sbml.org/sbml/level3/version1/core"},
			{Tuple: l3v2, CoreURI: "http://www.sbml.org/sbml/level3/version2/core"},
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
					field.Bool("hasOnlySubstanceUnits").Required(),
					field.IDRef("conversionFactor").Versions(l3v1),
				).
				Class(),
			schema.NewClass("Unit").
				Attributes(
					field.Enum("kind", "UnitKind").Required(),
					field.Int("exponent"),
					field.Double("multiplier"),
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
			schema.NewClass("KineticLaw").
				Elements(edge.List("localParameters", "Compartment")).
				Class(),
			schema.NewClass("Reaction").
				Attributes(
					field.ID("id").Required(),
					field.Bool("reversible").Required(),
				).
				Elements(
					edge.Child("kineticLaw", "KineticLaw"),
					edge.Child("rule", "Rule"),
				).
				Class(),
			schema.NewClass("Model").
				Attributes(field.ID("id")).
				Elements(
					edge.List("compartments", "Compartment"),
					edge.List("species", "Species"),
					edge.List("unitDefinitions", "UnitDefinition"),
					edge.List("rules", "Rule"),
					edge.List("reactions", "Reaction").Required(),
				).
				Class(),
		},
	}
}

func testGraph() (*Graph, error) {
	c, err := NewConfig(WithPackage("example.com/sbml"))
	if err != nil {
		return nil, err
	}
	return NewGraph(c, testSchema())
}
