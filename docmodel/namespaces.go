package docmodel

import (
	"slices"

	"github.com/syssam/vergen/schema/version"
)

// Namespace is one XML namespace declaration.
type Namespace struct {
	Prefix string
	URI    string
}

// Namespaces holds the version tuple of an object together with the XML
// namespaces it was created under.
type Namespaces struct {
	tuple    version.Tuple
	uris     []Namespace
	required string
}

// NewNamespaces returns the namespaces for tuple t. Required is the URI a
// child must declare to be attached to an object created under these
// namespaces. An empty required URI disables the namespace check.
func NewNamespaces(t version.Tuple, required string, uris ...Namespace) *Namespaces {
	return &Namespaces{tuple: t, uris: slices.Clone(uris), required: required}
}

// Tuple returns the version tuple.
func (ns *Namespaces) Tuple() version.Tuple {
	if ns == nil {
		return version.Tuple{}
	}
	return ns.tuple
}

// URIs returns the declared namespaces in declaration order.
func (ns *Namespaces) URIs() []Namespace {
	if ns == nil {
		return nil
	}
	return slices.Clone(ns.uris)
}

// Required returns the namespace URI children must share.
func (ns *Namespaces) Required() string {
	if ns == nil {
		return ""
	}
	return ns.required
}

// Has reports whether uri is declared.
func (ns *Namespaces) Has(uri string) bool {
	if ns == nil {
		return false
	}
	for _, n := range ns.uris {
		if n.URI == uri {
			return true
		}
	}
	return false
}

// Add declares a namespace. Declaring a known URI again updates its prefix.
func (ns *Namespaces) Add(prefix, uri string) {
	for i, n := range ns.uris {
		if n.URI == uri {
			ns.uris[i].Prefix = prefix
			return
		}
	}
	ns.uris = append(ns.uris, Namespace{Prefix: prefix, URI: uri})
}

// Clone returns a deep copy of ns.
func (ns *Namespaces) Clone() *Namespaces {
	if ns == nil {
		return nil
	}
	return &Namespaces{tuple: ns.tuple, uris: slices.Clone(ns.uris), required: ns.required}
}
