package field

import (
	"fmt"
	"strings"

	"github.com/syssam/vergen/schema/version"
)

// A Kind is the closed set of attribute value kinds known to the generator.
type Kind uint8

// List of attribute kinds.
const (
	TypeInvalid Kind = iota
	TypeBool
	TypeInt
	TypeDouble
	TypeString
	TypeEnum
	TypeIDRef
	TypeUnitIDRef
	endTypes
)

var kindNames = [...]string{
	TypeInvalid:   "invalid",
	TypeBool:      "bool",
	TypeInt:       "int",
	TypeDouble:    "double",
	TypeString:    "string",
	TypeEnum:      "enum",
	TypeIDRef:     "idref",
	TypeUnitIDRef: "unitidref",
}

// String returns the schema name of the kind.
func (k Kind) String() string {
	if k < endTypes {
		return kindNames[k]
	}
	return kindNames[TypeInvalid]
}

// Valid reports if the kind is one of the known kinds.
func (k Kind) Valid() bool { return k > TypeInvalid && k < endTypes }

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, 0, endTypes-1)
	for k := TypeBool; k < endTypes; k++ {
		ks = append(ks, k)
	}
	return ks
}

// ParseKind returns the kind with the given schema name.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "boolean":
		return TypeBool, nil
	case "integer":
		return TypeInt, nil
	case "sidref":
		return TypeIDRef, nil
	case "unitsidref":
		return TypeUnitIDRef, nil
	}
	for k := TypeBool; k < endTypes; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return TypeInvalid, fmt.Errorf("field: unknown kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Use describes whether an attribute must be present.
type Use string

// Attribute uses.
const (
	Optional Use = "optional"
	Required Use = "required"
)

// A Descriptor for attribute configuration.
type Descriptor struct {
	Name       string      `json:"name" yaml:"name"`
	Kind       Kind        `json:"kind" yaml:"kind"`
	Enum       string      `json:"enum,omitempty" yaml:"enum,omitempty"`
	Use        Use         `json:"use,omitempty" yaml:"use,omitempty"`
	Identifier bool        `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Versions   version.Set `json:"versions,omitempty" yaml:"versions,omitempty"`
	RequiredIn version.Set `json:"required_in,omitempty" yaml:"required_in,omitempty"`
	Comment    string      `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// IsRequired reports if the attribute is required in at least one version.
func (d *Descriptor) IsRequired() bool { return d.Use == Required }

// Clone returns a deep copy of the descriptor.
func (d *Descriptor) Clone() *Descriptor {
	c := *d
	c.Versions = append(version.Set(nil), d.Versions...)
	c.RequiredIn = append(version.Set(nil), d.RequiredIn...)
	return &c
}

// Bool returns a new attribute builder of kind bool.
func Bool(name string) *Builder { return newBuilder(name, TypeBool) }

// Int returns a new attribute builder of kind int.
func Int(name string) *Builder { return newBuilder(name, TypeInt) }

// Double returns a new attribute builder of kind double.
func Double(name string) *Builder { return newBuilder(name, TypeDouble) }

// String returns a new attribute builder of kind string.
func String(name string) *Builder { return newBuilder(name, TypeString) }

// IDRef returns a new attribute builder of kind idref. Values are checked
// against the identifier syntax on set.
func IDRef(name string) *Builder { return newBuilder(name, TypeIDRef) }

// UnitIDRef returns a new attribute builder of kind unitidref.
func UnitIDRef(name string) *Builder { return newBuilder(name, TypeUnitIDRef) }

// ID returns a builder for the identifier attribute of a class. It is an
// idref attribute marked as the element identifier.
func ID(name string) *Builder {
	b := newBuilder(name, TypeIDRef)
	b.desc.Identifier = true
	return b
}

// Enum returns a new attribute builder of kind enum, bound to the named
// enum type.
func Enum(name, enumType string) *Builder {
	b := newBuilder(name, TypeEnum)
	b.desc.Enum = enumType
	return b
}

// Builder is the builder for attribute descriptors.
type Builder struct {
	desc *Descriptor
}

func newBuilder(name string, k Kind) *Builder {
	return &Builder{desc: &Descriptor{Name: name, Kind: k, Use: Optional}}
}

// Required marks the attribute as required in every version it is legal in,
// or only in the given versions.
func (b *Builder) Required(in ...version.Tuple) *Builder {
	b.desc.Use = Required
	b.desc.RequiredIn = append(b.desc.RequiredIn, in...)
	return b
}

// Optional marks the attribute as optional. This is the default.
func (b *Builder) Optional() *Builder {
	b.desc.Use = Optional
	b.desc.RequiredIn = nil
	return b
}

// Versions restricts the attribute to the given version tuples.
func (b *Builder) Versions(vs ...version.Tuple) *Builder {
	b.desc.Versions = append(b.desc.Versions, vs...)
	return b
}

// Comment sets the comment of the attribute.
func (b *Builder) Comment(c string) *Builder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the schema attribute interface by returning its descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}
