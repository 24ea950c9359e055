package gen

import "github.com/dave/jennifer/jen"

// =============================================================================
// Interface Segregation: the dialect is split into per-class and
// package-level generators.
// =============================================================================

// ClassGenerator generates per-class code.
// Each method is called once per class of the graph.
type ClassGenerator interface {
	// GenClass generates the class unit ({class}.go). For an abstract
	// class it holds the variant interface and its discriminant.
	GenClass(t *Type) *jen.File
	// GenAPI generates the companion declaration unit ({class}_api.go).
	GenAPI(t *Type) *jen.File
	// GenFacade generates the procedural façade ({class}_facade.go).
	GenFacade(t *Type) *jen.File
	// GenList generates a list-of collection type ({listof}.go).
	GenList(l *ListType) *jen.File
}

// PackageGenerator generates package-level code.
// Each method is called once per generation run.
type PackageGenerator interface {
	// GenEnums generates the enum types (enums.go).
	GenEnums() *jen.File
	// GenErrors generates the error-code table (errors.go).
	GenErrors() *jen.File
	// GenNamespaces generates the version tuples and namespaces (namespaces.go).
	GenNamespaces() *jen.File
}

// Dialect is the interface a target document dialect implements.
type Dialect interface {
	// Name returns the dialect name.
	Name() string
	ClassGenerator
	PackageGenerator
}

// GeneratorHelper provides helper methods for dialect implementations.
// JenniferGenerator implements this interface, allowing dialect packages
// to use helper methods without importing the full generator.
type GeneratorHelper interface {
	// NewFile creates a new Jennifer file with the standard header comment.
	NewFile(pkg string) *jen.File

	// Graph returns the schema graph.
	Graph() *Graph

	// Pkg returns the output package name.
	Pkg() string

	// RuntimePkg returns the import path of the generated-code runtime.
	RuntimePkg() string

	// VersionPkg returns the import path of the version tuple package.
	VersionPkg() string

	// FeatureEnabled reports if the given feature name is enabled.
	FeatureEnabled(name string) bool
}
