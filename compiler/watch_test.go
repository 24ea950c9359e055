package compiler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	path := writeProject(t, "schema: sbml.yaml\ntarget: out\npackage: example.com/sbml\n")
	dir := filepath.Dir(path)
	runs := make(chan error, 8)
	w := &Watcher{
		ConfigPath: path,
		Debounce:   100 * time.Millisecond,
		OnRun:      func(err error) { runs <- err },
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	next := func() error {
		t.Helper()
		select {
		case err := <-runs:
			return err
		case <-time.After(5 * time.Second):
			require.FailNow(t, "no generation run")
			return nil
		}
	}
	require.NoError(t, next())
	out := filepath.Join(dir, "out")
	assert.NoFileExists(t, filepath.Join(out, "parameter.go"))

	changed := snapshot + "  - name: Parameter\n    attributes:\n      - name: value\n        kind: double\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sbml.yaml"), []byte(changed), 0o644))
	require.NoError(t, next())
	assert.FileExists(t, filepath.Join(out, "parameter.go"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "sbml.yaml"), []byte("package: [\n"), 0o644))
	assert.Error(t, next(), "a broken snapshot is reported without stopping the watcher")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		require.FailNow(t, "watcher did not stop")
	}
}
