// Package load reads schema snapshots: the YAML or JSON form of the
// in-memory model handed over by an external schema-description parser.
package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/vergen/schema"
	"github.com/syssam/vergen/schema/edge"
	"github.com/syssam/vergen/schema/field"
	"github.com/syssam/vergen/schema/mixin"
)

// Format is the encoding of a snapshot.
type Format string

// Snapshot formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrFormat is returned for snapshot files of an unknown format.
var ErrFormat = errors.New("load: unknown snapshot format")

// FormatOf returns the format of a snapshot file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrFormat, path)
}

// mixins are the attribute groups a snapshot class may name.
var mixins = map[string]schema.Mixin{
	"named":       mixin.Named{},
	"optional_id": mixin.OptionalID{},
}

type (
	// Schema is the snapshot form of schema.Schema.
	Schema struct {
		Package   string                `json:"package" yaml:"package"`
		Prefix    string                `json:"prefix,omitempty" yaml:"prefix,omitempty"`
		Versions  []*schema.VersionDecl `json:"versions" yaml:"versions"`
		Enums     []*schema.Enum        `json:"enums,omitempty" yaml:"enums,omitempty"`
		Classes   []*Class              `json:"classes" yaml:"classes"`
		ErrorBase int                   `json:"error_base,omitempty" yaml:"error_base,omitempty"`
	}

	// Class is the snapshot form of schema.Class. Mixins name attribute
	// groups inserted before the declared attributes.
	Class struct {
		schema.Class `yaml:",inline"`
		Mixins       []string `json:"mixins,omitempty" yaml:"mixins,omitempty"`
	}
)

// Load reads the snapshot at path. The format follows the extension.
func Load(path string) (*schema.Schema, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	s, err := UnmarshalSchema(buf, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// UnmarshalSchema decodes a snapshot and expands it into a schema.
// Unknown keys are rejected so that typos do not silently drop members.
func UnmarshalSchema(buf []byte, f Format) (*schema.Schema, error) {
	snap := &Schema{}
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(buf))
		dec.KnownFields(true)
		if err := dec.Decode(snap); err != nil {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(buf))
		dec.DisallowUnknownFields()
		if err := dec.Decode(snap); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, f)
	}
	return snap.Schema()
}

// MarshalSchema encodes s into a snapshot of the given format. Mixed-in
// attributes are written out like declared ones.
func MarshalSchema(s *schema.Schema, f Format) ([]byte, error) {
	snap := &Schema{
		Package:   s.Package,
		Prefix:    s.Prefix,
		Versions:  s.Versions,
		Enums:     s.Enums,
		ErrorBase: s.ErrorBase,
	}
	for _, c := range s.Classes {
		snap.Classes = append(snap.Classes, &Class{Class: *c})
	}
	switch f {
	case FormatYAML:
		return yaml.Marshal(snap)
	case FormatJSON:
		return json.MarshalIndent(snap, "", "  ")
	}
	return nil, fmt.Errorf("%w: %q", ErrFormat, f)
}

// Schema expands the snapshot into a schema, applying mixins and defaults.
func (s *Schema) Schema() (*schema.Schema, error) {
	out := &schema.Schema{
		Package:   s.Package,
		Prefix:    s.Prefix,
		Versions:  s.Versions,
		Enums:     s.Enums,
		ErrorBase: s.ErrorBase,
	}
	for i, e := range s.Enums {
		if e == nil {
			return nil, fmt.Errorf("enum %d: empty declaration", i)
		}
	}
	for i, c := range s.Classes {
		if c == nil {
			return nil, fmt.Errorf("class %d: empty declaration", i)
		}
		cl, err := c.class()
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", c.Name, err)
		}
		out.Classes = append(out.Classes, cl)
	}
	return out, nil
}

func (c *Class) class() (*schema.Class, error) {
	cl := c.Class
	var (
		attrs    []*field.Descriptor
		children []*edge.Descriptor
	)
	for _, name := range c.Mixins {
		m, ok := mixins[name]
		if !ok {
			return nil, fmt.Errorf("unknown mixin %q", name)
		}
		m = mixin.AnnotateAttributes(m, "From the "+name+" mixin.")
		attrs = append(attrs, m.Attributes()...)
		children = append(children, m.Elements()...)
	}
	cl.Attributes = append(attrs, c.Attributes...)
	cl.Children = append(children, c.Children...)
	for i, a := range cl.Attributes {
		if a == nil {
			return nil, fmt.Errorf("attribute %d: empty declaration", i)
		}
		if err := defaults(a); err != nil {
			return nil, err
		}
	}
	for i, e := range cl.Elements() {
		if e == nil {
			return nil, fmt.Errorf("element %d: empty declaration", i)
		}
	}
	return &cl, nil
}

// defaults fills the optional members of a snapshot attribute.
func defaults(a *field.Descriptor) error {
	switch a.Use {
	case "":
		a.Use = field.Optional
		if len(a.RequiredIn) > 0 {
			a.Use = field.Required
		}
	case field.Optional, field.Required:
	default:
		return fmt.Errorf("attribute %q: invalid use %q", a.Name, a.Use)
	}
	if a.Kind == field.TypeEnum && a.Enum == "" {
		return fmt.Errorf("attribute %q: enum kind without enum name", a.Name)
	}
	return nil
}
