package edge

import "github.com/syssam/vergen/schema/version"

// A Descriptor for a child element or a list-of collection.
type Descriptor struct {
	Name     string      `json:"name" yaml:"name"`
	Class    string      `json:"class" yaml:"class"`
	List     bool        `json:"list,omitempty" yaml:"list,omitempty"`
	Required bool        `json:"required,omitempty" yaml:"required,omitempty"`
	Versions version.Set `json:"versions,omitempty" yaml:"versions,omitempty"`
	Comment  string      `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Clone returns a deep copy of the descriptor.
func (d *Descriptor) Clone() *Descriptor {
	c := *d
	c.Versions = append(version.Set(nil), d.Versions...)
	return &c
}

// Child returns a builder for a singular child element slot of the given
// class. The slot is owned exclusively by the containing instance.
func Child(name, class string) *Builder {
	return &Builder{desc: &Descriptor{Name: name, Class: class}}
}

// List returns a builder for an ordered list-of collection of the given
// element class.
func List(name, class string) *Builder {
	return &Builder{desc: &Descriptor{Name: name, Class: class, List: true}}
}

// Builder is the builder for child and list descriptors.
type Builder struct {
	desc *Descriptor
}

// Required marks a singular child as mandatory (cardinality 1), or a list
// as requiring at least one member.
func (b *Builder) Required() *Builder {
	b.desc.Required = true
	return b
}

// Versions restricts the element to the given version tuples.
func (b *Builder) Versions(vs ...version.Tuple) *Builder {
	b.desc.Versions = append(b.desc.Versions, vs...)
	return b
}

// Comment sets the comment of the element.
func (b *Builder) Comment(c string) *Builder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the schema element interface by returning its descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}
