package xml

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/vergen/compiler/gen"
)

// generatedPkg holds the behavior tests of the package generated from
// testSchema. Only sbml_test.go is checked in; the rest is written by
// TestGeneratedPackage and removed when it ends.
const (
	generatedDir = "testdata/sbml"
	generatedPkg = "github.com/syssam/vergen/compiler/gen/xml/testdata/sbml"
)

func TestGeneratedPackage(t *testing.T) {
	if testing.Short() {
		t.Skip("compiles generated code")
	}
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go tool not found")
	}
	dir, err := filepath.Abs(generatedDir)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "sbml_test.go"))

	c, err := gen.NewConfig(gen.WithTarget(dir), gen.WithPackage(generatedPkg))
	require.NoError(t, err)
	g, err := gen.NewGraph(c, testSchema())
	require.NoError(t, err)
	t.Cleanup(func() { removeGenerated(t, dir) })
	require.NoError(t, Generate(context.Background(), g))

	manifest, err := gen.ReadManifest(dir)
	require.NoError(t, err)
	for _, name := range []string{"linesegment.go", "listofpoints.go", "species.go", "errors.go", "namespaces.go"} {
		assert.Contains(t, manifest, name)
	}

	for _, args := range [][]string{
		{"vet", "./" + generatedDir},
		{"test", "-count=1", "./" + generatedDir},
	} {
		cmd := exec.Command(goBin, args...)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "go %v\n%s", args, out)
	}
}

// removeGenerated deletes the files listed in the manifest of dir, and the
// manifest itself.
func removeGenerated(t *testing.T, dir string) {
	manifest, err := gen.ReadManifest(dir)
	if err != nil {
		t.Logf("read manifest: %v", err)
		return
	}
	for name := range manifest {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			t.Logf("remove %s: %v", name, err)
		}
	}
	if err := os.Remove(filepath.Join(dir, gen.ManifestName)); err != nil && !os.IsNotExist(err) {
		t.Logf("remove manifest: %v", err)
	}
}
