package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Error-code artifact file names.
const (
	ErrorArtifactYAML    = "errors.yaml"
	ErrorArtifactMsgpack = "errors.msgpack"
)

// Error-code categories.
const (
	CategoryAttribute = "attribute"
	CategoryElement   = "element"
	CategoryVersion   = "version"
)

// ErrorCode is one row of the error-code registry of a package.
type ErrorCode struct {
	ID       int    `yaml:"id" msgpack:"id"`
	Name     string `yaml:"name" msgpack:"name"`
	Class    string `yaml:"class" msgpack:"class"`
	Category string `yaml:"category" msgpack:"category"`
	Severity string `yaml:"severity" msgpack:"severity"`
	Message  string `yaml:"message" msgpack:"message"`
}

// ErrorCodes allocates numeric error IDs for one package. IDs are assigned
// serially from the base, so a fixed allocation order yields stable IDs
// across runs. Allocating an existing name returns its ID.
type ErrorCodes struct {
	mu     sync.Mutex
	next   int
	byName map[string]*ErrorCode
	codes  []*ErrorCode
}

// NewErrorCodes returns an allocator starting at base.
func NewErrorCodes(base int) *ErrorCodes {
	return &ErrorCodes{next: base, byName: make(map[string]*ErrorCode)}
}

// Allocate returns the ID of the named condition, allocating it on first
// use. Reusing a name for a different class, category or message fails.
func (e *ErrorCodes) Allocate(code ErrorCode) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c, ok := e.byName[code.Name]; ok {
		if c.Class != code.Class || c.Category != code.Category || c.Message != code.Message {
			return 0, schemaErrorf(code.Class, "", "error code %s already allocated for a different condition (%d)", code.Name, c.ID)
		}
		return c.ID, nil
	}
	if code.Severity == "" {
		code.Severity = "error"
	}
	code.ID = e.next
	e.next++
	c := &code
	e.byName[c.Name] = c
	e.codes = append(e.codes, c)
	return c.ID, nil
}

// Lookup returns the code allocated for name.
func (e *ErrorCodes) Lookup(name string) (ErrorCode, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.byName[name]
	if !ok {
		return ErrorCode{}, false
	}
	return *c, true
}

// ID returns the ID allocated for name. It panics if no ID was allocated,
// which is a generator bug.
func (e *ErrorCodes) ID(name string) int {
	c, ok := e.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("gen: error code %s was not allocated", name))
	}
	return c.ID
}

// Codes returns the allocated codes in ID order.
func (e *ErrorCodes) Codes() []ErrorCode {
	e.mu.Lock()
	defer e.mu.Unlock()
	codes := make([]ErrorCode, len(e.codes))
	for i, c := range e.codes {
		codes[i] = *c
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i].ID < codes[j].ID })
	return codes
}

// Len returns the number of allocated codes.
func (e *ErrorCodes) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.codes)
}

// MarshalYAML encodes the registry as a YAML sequence.
func (e *ErrorCodes) MarshalYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(e.Codes()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalMsgpack encodes the registry as a MessagePack array.
func (e *ErrorCodes) MarshalMsgpack() ([]byte, error) {
	return msgpack.Marshal(e.Codes())
}

// WriteArtifacts writes the YAML and MessagePack artifacts into dir.
func (e *ErrorCodes) WriteArtifacts(dir string) error {
	y, err := e.MarshalYAML()
	if err != nil {
		return fmt.Errorf("encode %s: %w", ErrorArtifactYAML, err)
	}
	m, err := e.MarshalMsgpack()
	if err != nil {
		return fmt.Errorf("encode %s: %w", ErrorArtifactMsgpack, err)
	}
	if err := os.WriteFile(filepath.Join(dir, ErrorArtifactYAML), y, 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ErrorArtifactMsgpack), m, 0o644)
}

// ReadErrorArtifact decodes a YAML error-code artifact.
func ReadErrorArtifact(path string) ([]ErrorCode, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var codes []ErrorCode
	if err := yaml.Unmarshal(b, &codes); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return codes, nil
}
