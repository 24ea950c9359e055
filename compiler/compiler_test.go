package compiler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/vergen/compiler/gen"
)

const snapshot = `package: sbml
versions:
  - tuple: l3v1p1
    core_uri: http://www.sbml.org/sbml/level3/version1/core
classes:
  - name: Compartment
    mixins: [named]
    attributes:
      - name: size
        kind: double
  - name: Model
    lists:
      - name: compartments
        class: Compartment
        list: true
`

// writeProject writes a snapshot and a config naming it into a fresh
// directory and returns the config path.
func writeProject(t *testing.T, config string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sbml.yaml"), []byte(snapshot), 0o644))
	path := filepath.Join(dir, "vergen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeProject(t, "schema: sbml.yaml\ntarget: out\npackage: example.com/sbml\nworkers: 2\nfeatures: [errors/artifact]\n")
	c, err := LoadConfig(path)
	require.NoError(t, err)
	dir := filepath.Dir(path)
	assert.Equal(t, filepath.Join(dir, "sbml.yaml"), c.Schema)
	assert.Equal(t, filepath.Join(dir, "out"), c.Target)
	assert.Equal(t, "example.com/sbml", c.Package)
	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, []string{"errors/artifact"}, c.Features)
	assert.Equal(t, path, c.Path())
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeProject(t, "schema: sbml.yaml\noutput: out\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEnv(t *testing.T) {
	path := writeProject(t, "schema: sbml.yaml\ntarget: out\npackage: example.com/sbml\n")
	env := filepath.Join(filepath.Dir(path), ".env")
	require.NoError(t, os.WriteFile(env, []byte("VERGEN_PACKAGE=example.com/fromfile\nVERGEN_WORKERS=3\n"), 0o644))
	t.Setenv(EnvWorkers, "4")

	c, err := LoadConfig(path, env, filepath.Join(filepath.Dir(path), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "example.com/fromfile", c.Package)
	assert.Equal(t, 4, c.Workers, "process environment wins over dotenv files")

	t.Setenv(EnvWorkers, "many")
	_, err = LoadConfig(path, env)
	var cerr *gen.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Workers", cerr.Option)
}

func TestOptions(t *testing.T) {
	c := &Config{Target: "out", Package: "example.com/sbml", Features: []string{"errors/artifact"}, Disable: []string{"facade"}}
	opts, err := c.Options()
	require.NoError(t, err)
	cfg, err := gen.NewConfig(opts...)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.Target)
	assert.True(t, cfg.HasFeature(gen.FeatureErrorArtifact.Name))
	assert.False(t, cfg.HasFeature(gen.FeatureFacade.Name))
	assert.True(t, cfg.HasFeature(gen.FeatureAPI.Name))

	_, err = (&Config{}).Options()
	assert.Error(t, err)
	_, err = (&Config{Target: "out", Features: []string{"graphql"}}).Options()
	var cerr *gen.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Features", cerr.Option)
}

func TestGenerate(t *testing.T) {
	path := writeProject(t, "schema: sbml.yaml\ntarget: out\npackage: example.com/sbml\ndisable: [facade]\n")
	c, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, Generate(context.Background(), c))

	for _, name := range []string{"compartment.go", "model.go", "listofcompartments.go", "compartment_api.go", "errors.go"} {
		assert.FileExists(t, filepath.Join(c.Target, name))
	}
	assert.NoFileExists(t, filepath.Join(c.Target, "compartment_facade.go"))
	b, err := os.ReadFile(filepath.Join(c.Target, "model.go"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "package sbml")
}

func TestGenerateMissingSchema(t *testing.T) {
	err := Generate(context.Background(), &Config{Target: t.TempDir()})
	var cerr *gen.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Schema", cerr.Option)

	err = Generate(context.Background(), &Config{Target: t.TempDir(), Schema: filepath.Join(t.TempDir(), "none.yaml")})
	assert.Error(t, err)
}

func TestGenerateDropsInvalidClass(t *testing.T) {
	path := writeProject(t, "schema: sbml.yaml\ntarget: out\npackage: example.com/sbml\n")
	dir := filepath.Dir(path)
	broken := snapshot + "  - name: RateRule\n    parent: Rule\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sbml.yaml"), []byte(broken), 0o644))
	c, err := LoadConfig(path)
	require.NoError(t, err)

	err = Generate(context.Background(), c)
	require.Error(t, err)
	assert.True(t, gen.IsSchemaError(err))
	errs := gen.SchemaErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "RateRule", errs[0].Class)
	assert.FileExists(t, filepath.Join(c.Target, "compartment.go"))
	assert.NoFileExists(t, filepath.Join(c.Target, "raterule.go"))
}
