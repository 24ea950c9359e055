// Package xml implements the XML dialect code generator of vergen.
//
// The dialect turns a gen.Graph into a Go package modelling the documents
// of one schema package across its versions. Every class becomes a struct
// embedding docmodel.Node with version-gated accessors, and every abstract
// class becomes an interface with a kind discriminant.
//
// # Generated Output Structure
//
//	{output}/
//	├── {class}.go            # struct, constructors, accessors, serialization, Validate
//	├── {class}_api.go        # (if FeatureAPI enabled) companion interface
//	├── {class}_facade.go     # (if FeatureFacade enabled) nil-checked free functions
//	├── {abstract}.go         # interface, {Abstract}Kind and its factory
//	├── listof{items}.go      # ListOf collection of one element class
//	├── enums.go              # enumerations with Parse and IsValid
//	├── errors.go             # error-code constants and the Errors table
//	├── namespaces.go         # supported version tuples and NewNamespaces
//	├── errors.yaml           # (if FeatureErrorArtifact enabled)
//	└── errors.msgpack        # (if FeatureErrorArtifact enabled)
//
// # Version Partitions
//
// The supported versions of a class are split into partitions: maximal
// runs of versions sharing the same members and requirements. A generated
// object resolves its partition from its namespace tuple, and every
// accessor, serializer and validator switches on it. A member absent from
// the current partition is reported, never silently read or written.
//
// # Usage
//
//	graph, err := gen.NewGraph(config, s)
//	if err != nil {
//	    return err
//	}
//	err = xml.Generate(ctx, graph)
//
// Or with explicit generator configuration:
//
//	generator := gen.NewJenniferGenerator(graph, outDir)
//	generator.WithDialect(xml.NewDialect(generator)).WithWorkers(4)
//	err := generator.Generate(ctx)
package xml
