package schema

import (
	"github.com/syssam/vergen/schema/edge"
	"github.com/syssam/vergen/schema/field"
	"github.com/syssam/vergen/schema/version"
)

type (
	// Schema is the in-memory model of one versioned object package. It is
	// produced by an external schema-description parser, or loaded from a
	// snapshot by the compiler/load package.
	Schema struct {
		// Package is the Go package name of the generated code.
		Package string `json:"package" yaml:"package"`
		// Prefix is the XML prefix of the extension namespace.
		Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
		// Versions lists every supported version tuple in declaration order.
		Versions []*VersionDecl `json:"versions" yaml:"versions"`
		// Enums and Classes, in declaration order.
		Enums   []*Enum  `json:"enums,omitempty" yaml:"enums,omitempty"`
		Classes []*Class `json:"classes" yaml:"classes"`
		// ErrorBase is the first numeric error ID allocated for the package.
		ErrorBase int `json:"error_base,omitempty" yaml:"error_base,omitempty"`
	}

	// VersionDecl binds a version tuple to its XML namespaces.
	VersionDecl struct {
		Tuple      version.Tuple `json:"tuple" yaml:"tuple"`
		CoreURI    string        `json:"core_uri" yaml:"core_uri"`
		PackageURI string        `json:"package_uri,omitempty" yaml:"package_uri,omitempty"`
	}

	// Class describes one entity type.
	Class struct {
		Name string `json:"name" yaml:"name"`
		// Element is the XML tag. Defaults to the lower-camel class name.
		Element string `json:"element,omitempty" yaml:"element,omitempty"`
		// Parent names the class this class derives from. Parent attributes
		// are inherited.
		Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
		// Abstract classes are never instantiated. A slot typed with an
		// abstract class holds one of its concrete subclasses.
		Abstract   bool                `json:"abstract,omitempty" yaml:"abstract,omitempty"`
		Attributes []*field.Descriptor `json:"attributes,omitempty" yaml:"attributes,omitempty"`
		Children   []*edge.Descriptor  `json:"children,omitempty" yaml:"children,omitempty"`
		Lists      []*edge.Descriptor  `json:"lists,omitempty" yaml:"lists,omitempty"`
		// Versions is the supported set. Empty means every schema version.
		Versions version.Set `json:"versions,omitempty" yaml:"versions,omitempty"`
		Comment  string      `json:"comment,omitempty" yaml:"comment,omitempty"`
	}

	// Enum is a closed string<->value table with one invalid sentinel.
	Enum struct {
		Name   string       `json:"name" yaml:"name"`
		Values []*EnumValue `json:"values" yaml:"values"`
	}

	// EnumValue is one entry of an Enum.
	EnumValue struct {
		// Name is the Go constant suffix. Defaults to the PascalCase value.
		Name string `json:"name,omitempty" yaml:"name,omitempty"`
		// Value is the XML string form.
		Value string `json:"value" yaml:"value"`
		// Invalid marks the sentinel.
		Invalid bool `json:"invalid,omitempty" yaml:"invalid,omitempty"`
	}
)

// Tuples returns the declared version tuples in order.
func (s *Schema) Tuples() version.Set {
	ts := make(version.Set, 0, len(s.Versions))
	for _, v := range s.Versions {
		ts = append(ts, v.Tuple)
	}
	return ts
}

// Decl returns the declaration of the given tuple.
func (s *Schema) Decl(t version.Tuple) (*VersionDecl, bool) {
	for _, v := range s.Versions {
		if v.Tuple == t {
			return v, true
		}
	}
	return nil, false
}

// Class returns the class with the given name.
func (s *Schema) Class(name string) (*Class, bool) {
	for _, c := range s.Classes {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Enum returns the enum with the given name.
func (s *Schema) Enum(name string) (*Enum, bool) {
	for _, e := range s.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Elements returns the children followed by the lists of the class.
func (c *Class) Elements() []*edge.Descriptor {
	es := make([]*edge.Descriptor, 0, len(c.Children)+len(c.Lists))
	es = append(es, c.Children...)
	return append(es, c.Lists...)
}

// Sentinels returns the values marked as invalid.
func (e *Enum) Sentinels() []*EnumValue {
	var vs []*EnumValue
	for _, v := range e.Values {
		if v.Invalid {
			vs = append(vs, v)
		}
	}
	return vs
}
