package schema

import (
	"github.com/syssam/vergen/schema/edge"
	"github.com/syssam/vergen/schema/field"
	"github.com/syssam/vergen/schema/version"
)

// Mixin is a reusable group of attributes and elements that can be mixed
// into several classes.
type Mixin interface {
	Attributes() []*field.Descriptor
	Elements() []*edge.Descriptor
}

// ClassBuilder is the builder for Class definitions.
type ClassBuilder struct {
	class *Class
}

// NewClass returns a builder for the class with the given name.
func NewClass(name string) *ClassBuilder {
	return &ClassBuilder{class: &Class{Name: name}}
}

// Element overrides the XML tag of the class.
func (b *ClassBuilder) Element(tag string) *ClassBuilder {
	b.class.Element = tag
	return b
}

// Extends sets the parent class.
func (b *ClassBuilder) Extends(parent string) *ClassBuilder {
	b.class.Parent = parent
	return b
}

// Abstract marks the class as abstract.
func (b *ClassBuilder) Abstract() *ClassBuilder {
	b.class.Abstract = true
	return b
}

// Attributes appends attributes to the class.
func (b *ClassBuilder) Attributes(fs ...*field.Builder) *ClassBuilder {
	for _, f := range fs {
		b.class.Attributes = append(b.class.Attributes, f.Descriptor())
	}
	return b
}

// Elements appends child elements and list-of collections to the class.
func (b *ClassBuilder) Elements(es ...*edge.Builder) *ClassBuilder {
	for _, e := range es {
		b.addElement(e.Descriptor())
	}
	return b
}

// Mixin appends the attributes and elements of the given mixins.
func (b *ClassBuilder) Mixin(ms ...Mixin) *ClassBuilder {
	for _, m := range ms {
		for _, f := range m.Attributes() {
			b.class.Attributes = append(b.class.Attributes, f.Clone())
		}
		for _, e := range m.Elements() {
			b.addElement(e.Clone())
		}
	}
	return b
}

// Versions sets the supported version tuples of the class.
func (b *ClassBuilder) Versions(vs ...version.Tuple) *ClassBuilder {
	b.class.Versions = append(b.class.Versions, vs...)
	return b
}

// Comment sets the class comment.
func (b *ClassBuilder) Comment(c string) *ClassBuilder {
	b.class.Comment = c
	return b
}

// Class returns the built class.
func (b *ClassBuilder) Class() *Class {
	return b.class
}

func (b *ClassBuilder) addElement(d *edge.Descriptor) {
	if d.List {
		b.class.Lists = append(b.class.Lists, d)
	} else {
		b.class.Children = append(b.class.Children, d)
	}
}

// EnumOf returns an enum whose values are the given strings, followed by
// an "invalid" sentinel.
func EnumOf(name string, values ...string) *Enum {
	e := &Enum{Name: name}
	for _, v := range values {
		e.Values = append(e.Values, &EnumValue{Value: v})
	}
	e.Values = append(e.Values, &EnumValue{Name: "Invalid", Value: "invalid", Invalid: true})
	return e
}
