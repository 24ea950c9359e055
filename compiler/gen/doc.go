// Package gen provides code generation for versioned XML object models.
//
// This package turns a schema.Schema into a validated Graph and renders it
// with a Dialect into Go source: typed accessors, XML read/write, structural
// validation and a procedural façade for every class.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Schema Model (schema, compiler/load)
//	        ↓
//	   NewGraph (validation, type registry, error codes)
//	        ↓
//	   ResolvePartitions (version matrix per class)
//	        ↓
//	   Dialect (compiler/gen/xml)
//	        ↓
//	   writer (format, fingerprint, write)
//
// # Key Types
//
//   - Graph: Holds the healthy classes, lists and enums of one package
//   - Type: A class with its inherited and own attributes and elements
//   - Attribute: A typed, versioned attribute bound to its KindContract
//   - Element: A singular child slot or a list-of collection
//   - Partition: The versions of a class sharing one legal member set
//   - Config: Global configuration for code generation
//
// # Interface Hierarchy
//
//	Dialect
//	├── Name() string
//	├── ClassGenerator (per-class code)
//	│   └── GenClass, GenAPI, GenFacade, GenList
//	└── PackageGenerator (package-level code)
//	    └── GenEnums, GenErrors, GenNamespaces
//
// # Version Partitions
//
// Every class is resolved into partitions: maximal sets of its versions in
// which exactly the same attributes and elements are legal, with the same
// requiredness. Generated readers, writers and predicates switch on the
// partition of the instance, so a member never leaks into a version where
// it is illegal:
//
//	{l3v1p1: {a, b}, l3v1p2: {a, b}, l3v2p1: {a, c}}
//	// partition 0: l3v1p1, l3v1p2 → a, b
//	// partition 1: l3v2p1         → a, c
//
// # Error Handling
//
// The package uses structured error types for better error handling:
//
//   - SchemaError: Schema definition errors, with the class.attribute@version path
//   - ConfigError: Configuration errors
//   - GenerationError: Code generation errors
//
// NewGraph reports every class error at once. A failing class is dropped
// together with the classes that reference it:
//
//	graph, err := gen.NewGraph(cfg, s)
//	for _, se := range gen.SchemaErrors(err) {
//	    log.Printf("skipped %s: %s", se.Path(), se.Message)
//	}
//
// # Determinism
//
// Partitions, members and error codes follow the declaration order of the
// schema, so two runs over an unchanged schema produce byte-identical
// output. The writer records a murmur3 fingerprint of every file in
// vergen.sum and leaves unchanged files untouched.
package gen
