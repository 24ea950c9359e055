// Package mixin provides reusable attribute groups for class definitions.
//
// A mixin is a set of attributes and elements that can be mixed into
// several classes:
//
//	type SBO struct {
//	    mixin.Schema
//	}
//
//	func (SBO) Attributes() []*field.Descriptor {
//	    return []*field.Descriptor{
//	        field.String("sboTerm").Descriptor(),
//	    }
//	}
//
// Using mixins:
//
//	schema.NewClass("Parameter").Mixin(mixin.Named{}, SBO{})
package mixin

import (
	"github.com/syssam/vergen/schema"
	"github.com/syssam/vergen/schema/edge"
	"github.com/syssam/vergen/schema/field"
	"github.com/syssam/vergen/schema/version"
)

// Schema is the default implementation for the schema.Mixin interface.
// It should be embedded in all custom mixin definitions.
type Schema struct{}

// Attributes returns the attributes of the mixin.
func (Schema) Attributes() []*field.Descriptor { return nil }

// Elements returns the child elements of the mixin.
func (Schema) Elements() []*edge.Descriptor { return nil }

var _ schema.Mixin = (*Schema)(nil)

// Named adds a required "id" identifier and an optional "name" attribute.
// When Versions is non-empty both attributes are restricted to them.
type Named struct {
	Schema
	Versions []version.Tuple
}

// Attributes of the Named mixin.
func (n Named) Attributes() []*field.Descriptor {
	return []*field.Descriptor{
		field.ID("id").Required().Versions(n.Versions...).Descriptor(),
		field.String("name").Versions(n.Versions...).Descriptor(),
	}
}

// OptionalID adds an optional "id" identifier and "name" attribute. It is
// used by classes whose identifier may be omitted.
type OptionalID struct {
	Schema
	Versions []version.Tuple
}

// Attributes of the OptionalID mixin.
func (n OptionalID) Attributes() []*field.Descriptor {
	return []*field.Descriptor{
		field.ID("id").Versions(n.Versions...).Descriptor(),
		field.String("name").Versions(n.Versions...).Descriptor(),
	}
}

// AnnotateAttributes marks every attribute of the mixin with the given
// comment.
func AnnotateAttributes(m schema.Mixin, comment string) schema.Mixin {
	return annotated{Mixin: m, comment: comment}
}

type annotated struct {
	schema.Mixin
	comment string
}

func (a annotated) Attributes() []*field.Descriptor {
	attrs := a.Mixin.Attributes()
	for _, f := range attrs {
		f.Comment = a.comment
	}
	return attrs
}
