// Package schema holds the in-memory model consumed by the generator:
// classes, their versioned attributes and child elements, enum types and the
// version tuples of the package.
//
// The model is normally produced by an external schema-description parser
// or loaded from a snapshot (see compiler/load). It can also be built in Go:
//
//	v1, v2 := version.New(3, 1, 1), version.New(3, 1, 2)
//	species := schema.NewClass("Species").
//	    Mixin(mixin.Named{}).
//	    Attributes(
//	        field.IDRef("compartment").Required(),
//	        field.Double("charge").Versions(v1),
//	    ).
//	    Elements(
//	        edge.List("annotations", "Annotation"),
//	    ).
//	    Class()
//
// Subpackages:
//
//   - [field]: attribute builders and the closed kind set
//   - [edge]: child and list-of builders
//   - [version]: version tuples and tuple sets
//   - [mixin]: reusable attribute groups
package schema
