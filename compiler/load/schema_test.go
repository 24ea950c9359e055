package load_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/vergen/compiler/gen"
	"github.com/syssam/vergen/compiler/load"
	"github.com/syssam/vergen/schema"
	"github.com/syssam/vergen/schema/field"
	"github.com/syssam/vergen/schema/version"
)

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]load.Format{
		"a.yaml":     load.FormatYAML,
		"a.YML":      load.FormatYAML,
		"dir/a.json": load.FormatJSON,
	} {
		got, err := load.FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := load.FormatOf("a.toml")
	assert.ErrorIs(t, err, load.ErrFormat)
}

func TestLoadYAML(t *testing.T) {
	s, err := load.Load(filepath.Join("testdata", "sbml.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "sbml", s.Package)
	assert.Equal(t, "fbc", s.Prefix)
	assert.Equal(t, 20000, s.ErrorBase)
	assert.Equal(t, version.Set{version.New(3, 1, 1), version.New(3, 2, 1)}, s.Tuples())
	require.Len(t, s.Enums, 1)
	assert.Len(t, s.Enums[0].Sentinels(), 1)

	c, ok := s.Class("Compartment")
	require.True(t, ok)
	names := make([]string, len(c.Attributes))
	for i, a := range c.Attributes {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"id", "name", "size", "constant"}, names)
	assert.Equal(t, field.TypeBool, c.Attributes[3].Kind)
	assert.Equal(t, field.Required, c.Attributes[3].Use, "required_in implies use")
	assert.Equal(t, version.Set{version.New(3, 1, 1)}, c.Attributes[3].RequiredIn)
	assert.Equal(t, field.Optional, c.Attributes[2].Use)
	assert.Equal(t, "From the named mixin.", c.Attributes[0].Comment)
	assert.Empty(t, c.Attributes[2].Comment)

	r, ok := s.Class("RateRule")
	require.True(t, ok)
	assert.Equal(t, "Rule", r.Parent)

	g, err := gen.NewGraph(nil, s)
	require.NoError(t, err)
	_, ok = g.Type("UnitDefinition")
	assert.True(t, ok)
}

func TestLoadJSON(t *testing.T) {
	s, err := load.Load(filepath.Join("testdata", "sbml.json"))
	require.NoError(t, err)
	c, ok := s.Class("Species")
	require.True(t, ok)
	require.Len(t, c.Attributes, 2)
	assert.True(t, c.Attributes[0].Identifier)
	assert.Equal(t, field.TypeIDRef, c.Attributes[0].Kind)
	assert.Equal(t, field.TypeDouble, c.Attributes[1].Kind)
}

func TestLoadErrors(t *testing.T) {
	_, err := load.Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	_, err = load.Load(filepath.Join("testdata", "unknown_key.yaml"))
	assert.ErrorContains(t, err, "attribute")

	tests := []struct {
		name, snap, err string
	}{
		{"mixin", "classes:\n  - name: A\n    mixins: [nope]\n", `unknown mixin "nope"`},
		{"use", "classes:\n  - name: A\n    attributes:\n      - {name: a, kind: int, use: sometimes}\n", `invalid use "sometimes"`},
		{"enum", "classes:\n  - name: A\n    attributes:\n      - {name: a, kind: enum}\n", "without enum name"},
		{"kind", "classes:\n  - name: A\n    attributes:\n      - {name: a, kind: blob}\n", "blob"},
		{"tuple", "versions:\n  - tuple: level3\n", "invalid tuple"},
		{"nil class", "classes:\n  - null\n", "class 0: empty declaration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load.UnmarshalSchema([]byte(tt.snap), load.FormatYAML)
			assert.ErrorContains(t, err, tt.err)
		})
	}
	_, err = load.UnmarshalSchema(nil, "toml")
	assert.ErrorIs(t, err, load.ErrFormat)
}

func TestMarshalSchemaRoundTrip(t *testing.T) {
	s := &schema.Schema{
		Package: "sbml",
		Versions: []*schema.VersionDecl{
			{Tuple: version.New(3, 1, 1), CoreURI: "http://www.sbml.org/sbml/level3/version1/core"},
		},
		Classes: []*schema.Class{
			schema.NewClass("Species").
				Attributes(
					field.ID("id").Required(),
					field.Double("initialAmount"),
				).
				Class(),
		},
	}
	for _, f := range []load.Format{load.FormatYAML, load.FormatJSON} {
		b, err := load.MarshalSchema(s, f)
		require.NoError(t, err, f)
		got, err := load.UnmarshalSchema(b, f)
		require.NoError(t, err, f)
		assert.Equal(t, s, got, f)
	}
	_, err := load.MarshalSchema(s, "toml")
	assert.ErrorIs(t, err, load.ErrFormat)
}
