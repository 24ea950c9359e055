package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/vergen/schema"
	"github.com/syssam/vergen/schema/edge"
	"github.com/syssam/vergen/schema/field"
	"github.com/syssam/vergen/schema/mixin"
	"github.com/syssam/vergen/schema/version"
)

func TestClassBuilder(t *testing.T) {
	v1 := version.New(3, 1, 1)
	c := schema.NewClass("Reaction").
		Element("reaction").
		Extends("Base").
		Mixin(mixin.Named{}).
		Attributes(field.Bool("reversible").Required()).
		Elements(
			edge.Child("kineticLaw", "KineticLaw"),
			edge.List("reactants", "SpeciesReference"),
		).
		Versions(v1).
		Comment("a reaction").
		Class()

	assert.Equal(t, "Reaction", c.Name)
	assert.Equal(t, "reaction", c.Element)
	assert.Equal(t, "Base", c.Parent)
	require.Len(t, c.Attributes, 3)
	assert.Equal(t, "id", c.Attributes[0].Name)
	assert.True(t, c.Attributes[0].Identifier)
	assert.Equal(t, "name", c.Attributes[1].Name)
	assert.Equal(t, "reversible", c.Attributes[2].Name)
	require.Len(t, c.Children, 1)
	require.Len(t, c.Lists, 1)
	assert.Equal(t, []*edge.Descriptor{c.Children[0], c.Lists[0]}, c.Elements())
	assert.Equal(t, version.Set{v1}, c.Versions)
	assert.Equal(t, "a reaction", c.Comment)
}

func TestMixinAttributesAreCopied(t *testing.T) {
	a := schema.NewClass("A").Mixin(mixin.Named{}).Class()
	b := schema.NewClass("B").Mixin(mixin.Named{}).Class()
	a.Attributes[0].Use = field.Optional
	assert.Equal(t, field.Required, b.Attributes[0].Use)
}

func TestSchemaLookups(t *testing.T) {
	v1, v2 := version.New(3, 1, 1), version.New(3, 1, 2)
	s := &schema.Schema{
		Package: "fbc",
		Versions: []*schema.VersionDecl{
			{Tuple: v1, CoreURI: "core", PackageURI: "pkg/v1"},
			{Tuple: v2, CoreURI: "core", PackageURI: "pkg/v2"},
		},
		Enums:   []*schema.Enum{schema.EnumOf("Sign", "plus", "minus")},
		Classes: []*schema.Class{schema.NewClass("Objective").Class()},
	}
	assert.Equal(t, version.Set{v1, v2}, s.Tuples())

	d, ok := s.Decl(v2)
	require.True(t, ok)
	assert.Equal(t, "pkg/v2", d.PackageURI)
	_, ok = s.Decl(version.New(1, 1, 1))
	assert.False(t, ok)

	_, ok = s.Class("Objective")
	assert.True(t, ok)
	_, ok = s.Class("Missing")
	assert.False(t, ok)

	e, ok := s.Enum("Sign")
	require.True(t, ok)
	require.Len(t, e.Values, 3)
	require.Len(t, e.Sentinels(), 1)
	assert.Equal(t, "Invalid", e.Sentinels()[0].Name)
}
