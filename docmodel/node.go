package docmodel

import (
	"reflect"

	"github.com/syssam/vergen/schema/version"
)

type (
	// Object is implemented by every generated class and list-of collection.
	Object interface {
		// AsNode returns the embedded Node.
		AsNode() *Node
		// ElementName returns the XML tag of the object.
		ElementName() string
		// HasRequiredAttributes reports whether every attribute required
		// in the object's version is set.
		HasRequiredAttributes() bool
		// HasRequiredElements reports whether every child element required
		// in the object's version is set.
		HasRequiredElements() bool
	}

	// Identified is implemented by objects whose class carries an
	// identifier attribute.
	Identified interface {
		Object
		ID() string
	}

	// Element is an Object that can be read from and written to XML.
	Element interface {
		Object
		// ReadAttributes reads the attributes legal for the object's
		// version. Problems are reported to sink and never abort the read.
		ReadAttributes(attrs *Attributes, sink ErrorSink)
		// CreateObject creates, owns and returns the child for the element
		// name, or nil when the name is not a legal child.
		CreateObject(name string, attrs *Attributes, sink ErrorSink) Element
		// WriteAttributes writes the set attributes in declaration order.
		WriteAttributes(w *AttributeWriter)
		// Children returns the set singular children followed by the
		// non-empty list-of collections, in declaration order.
		Children() []Element
	}
)

// Node is embedded in every generated object. It holds the namespaces and
// the meta identifier of the object, and the back-reference to its parent.
//
// The parent reference never owns the parent: it is only used for upward
// lookups such as Ancestor.
type Node struct {
	ns     *Namespaces
	metaID string
	parent Object
	line   int
	col    int
}

// NewNode returns a node created under ns.
func NewNode(ns *Namespaces) Node {
	return Node{ns: ns}
}

// AsNode returns n.
func (n *Node) AsNode() *Node { return n }

// Namespaces returns the namespaces the object was created under.
func (n *Node) Namespaces() *Namespaces { return n.ns }

// VersionTuple returns the version tuple of the object.
func (n *Node) VersionTuple() version.Tuple { return n.ns.Tuple() }

// Level returns the core level of the object.
func (n *Node) Level() uint { return n.ns.Tuple().Level }

// Version returns the core version of the object.
func (n *Node) Version() uint { return n.ns.Tuple().Version }

// PackageVersion returns the extension version of the object.
func (n *Node) PackageVersion() uint { return n.ns.Tuple().Package }

// MetaID returns the meta identifier.
func (n *Node) MetaID() string { return n.metaID }

// IsSetMetaID reports whether the meta identifier is set.
func (n *Node) IsSetMetaID() bool { return n.metaID != "" }

// SetMetaID sets the meta identifier. The value must be a valid XML ID.
func (n *Node) SetMetaID(id string) OperationReturn {
	if !IsValidMetaID(id) {
		return InvalidAttributeValue
	}
	n.metaID = id
	return OperationSuccess
}

// UnsetMetaID clears the meta identifier.
func (n *Node) UnsetMetaID() OperationReturn {
	n.metaID = ""
	return OperationSuccess
}

// Parent returns the object that owns n, or nil.
func (n *Node) Parent() Object { return n.parent }

// Connect sets the parent back-reference.
func (n *Node) Connect(parent Object) { n.parent = parent }

// Detach clears the parent back-reference.
func (n *Node) Detach() { n.parent = nil }

// Ancestor returns the closest ancestor accepted by match, or nil.
func (n *Node) Ancestor(match func(Object) bool) Object {
	for p := n.parent; p != nil; p = p.AsNode().parent {
		if match(p) {
			return p
		}
	}
	return nil
}

// Root returns the top-most ancestor, or nil for a detached object.
func (n *Node) Root() Object {
	var root Object
	for p := n.parent; p != nil; p = p.AsNode().parent {
		root = p
	}
	return root
}

// Position returns the line and column the object was read at.
func (n *Node) Position() (line, col int) { return n.line, n.col }

// SetPosition records the position the object was read at.
func (n *Node) SetPosition(line, col int) { n.line, n.col = line, col }

// CloneNode returns a detached copy of n.
func (n *Node) CloneNode() Node {
	return Node{ns: n.ns.Clone(), metaID: n.metaID, line: n.line, col: n.col}
}

// ReadNodeAttributes reads the attributes shared by every object.
func (n *Node) ReadNodeAttributes(attrs *Attributes) {
	if v, ok := attrs.ReadString(MetaIDAttr); ok && IsValidMetaID(v) {
		n.metaID = v
	}
}

// WriteNodeAttributes writes the attributes shared by every object.
func (n *Node) WriteNodeAttributes(w *AttributeWriter) {
	if n.metaID != "" {
		w.WriteString(MetaIDAttr, n.metaID)
	}
}

// IsNil reports whether o is nil or holds a nil pointer.
func IsNil(o Object) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// CheckAddable checks whether child may be attached under parent. The
// checks run in order: nil child, the child's own required predicates, and
// CheckCompatible.
func CheckAddable(parent, child Object) OperationReturn {
	if IsNil(child) {
		return OperationFailed
	}
	if !child.HasRequiredAttributes() || !child.HasRequiredElements() {
		return InvalidObject
	}
	return CheckCompatible(parent, child)
}

// CheckCompatible checks that child shares the core level and version of
// parent, and declares the namespace parent requires.
func CheckCompatible(parent, child Object) OperationReturn {
	p, c := parent.AsNode(), child.AsNode()
	switch {
	case p.Level() != c.Level():
		return LevelMismatch
	case p.Version() != c.Version():
		return VersionMismatch
	}
	if req := p.ns.Required(); req != "" && !c.ns.Has(req) {
		return NamespacesMismatch
	}
	return OperationSuccess
}
