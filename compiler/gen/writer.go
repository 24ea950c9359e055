package gen

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spaolacci/murmur3"
	"golang.org/x/tools/imports"
)

// ManifestName is the file listing the fingerprint of every generated file.
const ManifestName = "vergen.sum"

// WriterMetrics tracks the outcome of one write.
type WriterMetrics struct {
	FilesWritten   int
	FilesUnchanged int
	FilesRemoved   int
	TotalBytes     int64
}

// writer formats the rendered files and writes those whose content
// changed since the last run. Files generated by a previous run but not by
// this one are removed.
type writer struct {
	dir     string
	logger  *slog.Logger
	metrics WriterMetrics
}

func (w *writer) write(files map[string][]byte) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	old, err := readManifest(filepath.Join(w.dir, ManifestName))
	if err != nil {
		return err
	}
	manifest := make(map[string]string, len(files))
	for _, name := range sortedKeys(files) {
		b := files[name]
		path := filepath.Join(w.dir, name)
		if strings.HasSuffix(name, ".go") {
			// Format using goimports (removes unused imports and adds missing ones)
			formatted, err := imports.Process(path, b, nil)
			if err != nil {
				// Write unformatted file for debugging (errors intentionally ignored as we're already in error state)
				_ = os.WriteFile(path+".error", b, 0o644)
				return NewGenerationError("format", name, "cannot format file", err)
			}
			b = formatted
		}
		sum := Fingerprint(b)
		manifest[name] = sum
		if old[name] == sum && fileFingerprint(path) == sum {
			w.metrics.FilesUnchanged++
			w.logger.Debug("file unchanged", "file", name)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return NewGenerationError("write", name, "cannot create directory", err)
		}
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return NewGenerationError("write", name, "cannot write file", err)
		}
		w.metrics.FilesWritten++
		w.metrics.TotalBytes += int64(len(b))
		w.logger.Info("file written", "file", name, "bytes", len(b))
	}
	for _, name := range sortedKeys(old) {
		if _, ok := manifest[name]; ok {
			continue
		}
		if err := remove(w.dir, name); err != nil {
			return NewGenerationError("write", name, "cannot remove stale file", err)
		}
		w.metrics.FilesRemoved++
		w.logger.Info("stale file removed", "file", name)
	}
	return writeManifest(filepath.Join(w.dir, ManifestName), manifest)
}

// Fingerprint returns the murmur3 128-bit hash of b in hex.
func Fingerprint(b []byte) string {
	h := murmur3.New128()
	_, _ = h.Write(b)
	return hex.EncodeToString(h.Sum(nil))
}

// fileFingerprint returns the fingerprint of the file at path, or an empty
// string if it cannot be read.
func fileFingerprint(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return Fingerprint(b)
}

// ReadManifest returns the fingerprints recorded in the manifest of dir.
func ReadManifest(dir string) (map[string]string, error) {
	return readManifest(filepath.Join(dir, ManifestName))
}

// readManifest parses "<fingerprint>  <file>" lines. A missing manifest is
// empty.
func readManifest(path string) (map[string]string, error) {
	m := make(map[string]string)
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		sum, name, ok := strings.Cut(sc.Text(), "  ")
		if !ok || name == "" {
			return nil, fmt.Errorf("%s: malformed line %q", path, sc.Text())
		}
		m[name] = sum
	}
	return m, sc.Err()
}

func writeManifest(path string, m map[string]string) error {
	var b strings.Builder
	for _, name := range sortedKeys(m) {
		fmt.Fprintf(&b, "%s  %s\n", m[name], name)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
