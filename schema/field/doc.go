// Package field provides fluent builders for defining class attributes.
//
// Attribute names are used verbatim as XML attribute names, while accessor
// names are derived in PascalCase:
//
//	field.ID("id")                 // XML: id, Go: ID(), SetID(), ...
//	field.IDRef("compartment")     // XML: compartment, Go: Compartment()
//
// # Attribute Kinds
//
// The kind set is closed. Each kind has a fixed accessor contract in the
// generator's type registry:
//
//	field.Bool("constant")             // sentinel false
//	field.Int("stoichiometry")         // sentinel math.MaxInt
//	field.Double("initialAmount")      // sentinel NaN
//	field.String("name")               // sentinel ""
//	field.Enum("kind", "ReactionKind") // sentinel: the enum's invalid value
//	field.IDRef("species")             // identifier syntax checked on set
//	field.UnitIDRef("units")           // unit identifier syntax checked on set
//
// # Versions
//
// Attributes are legal only for a subset of the class versions:
//
//	field.Bool("fast").
//	    Required(version.New(3, 1, 1)).   // required only in l3v1p1
//	    Versions(version.New(3, 1, 1), version.New(3, 1, 2))
package field
