// Package edge provides builders for the child relationships of a class.
//
// There are two relationship shapes:
//
//   - edge.Child: a singular, owned child element (0..1, or 1 when Required)
//   - edge.List: an ordered list-of collection with identifier-unique members
//
// Examples:
//
//	edge.Child("kineticLaw", "KineticLaw")
//	edge.List("parameters", "Parameter").Versions(version.New(3, 1, 1))
//
// A child whose class is abstract accepts any of the concrete subclasses of
// that class. The generator models the slot as a closed variant.
package edge
