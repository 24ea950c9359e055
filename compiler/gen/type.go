package gen

import (
	"strings"

	"github.com/syssam/vergen/schema"
	"github.com/syssam/vergen/schema/field"
	"github.com/syssam/vergen/schema/version"
)

// Error conditions allocated for every concrete class.
const (
	CondUnknownAttribute    = "UnknownAttribute"
	CondUnexpectedAttribute = "UnexpectedAttribute"
	CondUnknownElement      = "UnknownElement"
	CondUnsupportedVersion  = "UnsupportedVersion"
)

type (
	// Type represents one class of the graph.
	Type struct {
		*Config
		schema *schema.Class
		// Name holds the Go type name of the class.
		Name string
		// Element is the XML tag of the class.
		Element string
		// Comment is the class comment.
		Comment string
		// Abstract classes are generated as an interface implemented by
		// their concrete Variants.
		Abstract bool
		// Parent is the class t derives from.
		Parent *Type
		// Variants are the concrete descendants of an abstract class, in
		// declaration order.
		Variants []*Type
		// Versions is the supported version set, in declared order.
		Versions version.Set
		// Attributes, Children and Lists hold the inherited members
		// followed by the members declared by the class.
		Attributes []*Attribute
		Children   []*Element
		Lists      []*Element
		// ID holds the identifier attribute, if any.
		ID *Attribute
		// Partitions holds the resolved version partitions.
		Partitions []*Partition
	}

	// Attribute of a class.
	Attribute struct {
		Name       string
		Kind       field.Kind
		Contract   KindContract
		Enum       *Enum
		Versions   version.Set
		RequiredIn version.Set
		Identifier bool
		Comment    string
		// Owner is the class that declared the attribute.
		Owner *Type
	}

	// Element is a singular child slot or a list-of collection of a class.
	Element struct {
		Name     string
		Type     *Type
		List     bool
		ListType *ListType
		Required bool
		Versions version.Set
		Comment  string
		Owner    *Type
	}

	// ListType is the generated list-of collection of an item class.
	ListType struct {
		// Name is the Go type name, e.g. ListOfParameters.
		Name string
		// Element is the XML tag, e.g. listOfParameters.
		Element string
		Item    *Type
	}

	// Enum is a generated enum type.
	Enum struct {
		Name    string
		Values  []*EnumValue
		Invalid *EnumValue
	}

	// EnumValue is one constant of an Enum.
	EnumValue struct {
		// Name is the constant suffix.
		Name  string
		Value string
	}

	// Version is a supported version tuple with its namespaces.
	Version struct {
		Tuple      version.Tuple
		CoreURI    string
		PackageURI string
		// Ident is the Go identifier of the tuple, e.g. L3V1P1.
		Ident string
	}
)

// Receiver returns the receiver name of the generated methods.
func (t Type) Receiver() string { return "o" }

// FileName returns the name of the generated class file.
func (t Type) FileName() string { return strings.ToLower(t.Name) + ".go" }

// FileBase returns the file name prefix of the class units.
func (t Type) FileBase() string { return strings.ToLower(t.Name) }

// Constructor returns the name of the version-tuple constructor.
func (t Type) Constructor() string { return "New" + t.Name }

// NamespacesConstructor returns the name of the namespaces constructor.
func (t Type) NamespacesConstructor() string { return "New" + t.Name + "WithNamespaces" }

// APIName returns the name of the companion interface.
func (t Type) APIName() string { return t.Name + "API" }

// KindName returns the discriminant type of an abstract class.
func (t Type) KindName() string { return t.Name + "Kind" }

// KindConst returns the discriminant constant of variant v.
func (t Type) KindConst(v *Type) string { return t.Name + "Kind" + v.Name }

// KindOf returns the name of the tag-to-kind function of an abstract class.
func (t Type) KindOf() string { return t.Name + "KindOf" }

// CloneMethod returns the unexported clone method of an abstract class.
func (t Type) CloneMethod() string { return "clone" + t.Name }

// HasID reports if the class carries an identifier attribute.
func (t Type) HasID() bool { return t.ID != nil }

// Elements returns the children followed by the lists.
func (t Type) Elements() []*Element {
	es := make([]*Element, 0, len(t.Children)+len(t.Lists))
	es = append(es, t.Children...)
	return append(es, t.Lists...)
}

// AttributeNames returns the XML names of every attribute of the class,
// in any version.
func (t Type) AttributeNames() []string {
	ns := make([]string, len(t.Attributes))
	for i, a := range t.Attributes {
		ns[i] = a.Name
	}
	return ns
}

// AbstractAncestors returns the abstract classes t derives from, closest
// first.
func (t Type) AbstractAncestors() []*Type {
	var as []*Type
	for p := t.Parent; p != nil; p = p.Parent {
		if p.Abstract {
			as = append(as, p)
		}
	}
	return as
}

// Partition returns the partition holding v.
func (t Type) Partition(v version.Tuple) (*Partition, bool) {
	for _, p := range t.Partitions {
		if p.Versions.Contains(v) {
			return p, true
		}
	}
	return nil, false
}

// PartitionsOf returns the indexes of the partitions name is legal in.
func (t Type) PartitionsOf(name string) []int {
	var is []int
	for _, p := range t.Partitions {
		if p.HasAttribute(name) || p.hasElement(name) {
			is = append(is, p.Index)
		}
	}
	return is
}

// LegalEverywhere reports if name is legal in every partition.
func (t Type) LegalEverywhere(name string) bool {
	return len(t.PartitionsOf(name)) == len(t.Partitions)
}

// ErrorName returns the symbolic name of a class error condition.
func (t Type) ErrorName(cond string) string { return t.Name + cond }

// ErrorConst returns the Go constant of a class error condition.
func (t Type) ErrorConst(cond string) string { return "Err" + t.Name + cond }

// MissingCond returns the error condition of a missing required attribute
// or element.
func MissingCond(accessor string) string { return "Missing" + accessor }

// MustBeCond returns the error condition of an attribute value that does
// not parse as the kind of a.
func MustBeCond(a *Attribute) string { return a.Accessor() + "MustBe" + a.ErrorSuffix() }

func (p *Partition) hasElement(name string) bool {
	for _, e := range p.Elements() {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Accessor returns the Go name of the attribute getter.
func (a Attribute) Accessor() string { return pascal(a.Name) }

// StructField returns the struct field holding the attribute value.
func (a Attribute) StructField() string { return structField(a.Name) }

// IsSetField returns the struct field tracking the set state.
func (a Attribute) IsSetField() string { return "isSet" + a.Accessor() }

// IsRequired reports if the attribute is required in any version.
func (a Attribute) IsRequired() bool { return len(a.RequiredIn) > 0 }

// IsEnum reports if the attribute is of an enum kind.
func (a Attribute) IsEnum() bool { return a.Kind == field.TypeEnum }

// ErrorSuffix returns the kind named by MustBe diagnostics, or an empty
// string when the value never fails to parse.
func (a Attribute) ErrorSuffix() string {
	if a.IsEnum() {
		return a.Enum.Name
	}
	return a.Contract.ErrorSuffix
}

// Sentinel returns the Go expression of the unset value.
func (a Attribute) Sentinel() string {
	if a.IsEnum() {
		return a.Enum.InvalidConst()
	}
	return a.Contract.Sentinel
}

// Accessor returns the Go name of the slot getter, e.g. KineticLaw.
func (e Element) Accessor() string { return pascal(e.Name) }

// StructField returns the struct field holding the slot.
func (e Element) StructField() string { return structField(e.Name) }

// ItemName returns the Go name of one list member, e.g. Parameter.
func (e Element) ItemName() string { return pascal(singular(e.Name)) }

// ListAccessor returns the getter of the list, e.g. ListOfParameters.
func (e Element) ListAccessor() string { return e.ListType.Name }

// Tag returns the XML tag of a singular concrete slot: its name, or the
// element of its class when the slot is unnamed.
func (e Element) Tag() string {
	if e.Name == "" {
		return e.Type.Element
	}
	return e.Name
}

// Retagged reports whether the slot is written under a tag other than the
// element of its class.
func (e Element) Retagged() bool {
	return !e.List && !e.Type.Abstract && e.Tag() != e.Type.Element
}

// Tags returns the XML tags the slot accepts: the tag of a concrete slot,
// or the element of every variant of an abstract class.
func (e Element) Tags() []string {
	if e.List {
		return []string{e.ListType.Element}
	}
	if !e.Type.Abstract {
		return []string{e.Tag()}
	}
	tags := make([]string, len(e.Type.Variants))
	for i, v := range e.Type.Variants {
		tags[i] = v.Element
	}
	return tags
}

// Constructor returns the unexported constructor of the list type.
func (l ListType) Constructor() string { return "new" + l.Name }

// FileName returns the name of the generated list file.
func (l ListType) FileName() string { return strings.ToLower(l.Name) + ".go" }

// Tags returns the XML tags of the list members.
func (l ListType) Tags() []string {
	if !l.Item.Abstract {
		return []string{l.Item.Element}
	}
	tags := make([]string, len(l.Item.Variants))
	for i, v := range l.Item.Variants {
		tags[i] = v.Element
	}
	return tags
}

// UnknownElementName is the error name logged for unknown list members.
func (l ListType) UnknownElementName() string { return l.Name + CondUnknownElement }

// UnknownElementConst is the Go constant of UnknownElementName.
func (l ListType) UnknownElementConst() string { return "Err" + l.UnknownElementName() }

// UnsupportedVersionName is the error name logged when the list is read in
// a version of its owner that does not hold it.
func (l ListType) UnsupportedVersionName() string { return l.Name + CondUnsupportedVersion }

// UnsupportedVersionConst is the Go constant of UnsupportedVersionName.
func (l ListType) UnsupportedVersionConst() string { return "Err" + l.UnsupportedVersionName() }

// Const returns the Go constant of v.
func (e Enum) Const(v *EnumValue) string { return e.Name + v.Name }

// InvalidConst returns the Go constant of the sentinel.
func (e Enum) InvalidConst() string { return e.Const(e.Invalid) }

// ParseFunc returns the name of the string lookup function.
func (e Enum) ParseFunc() string { return "Parse" + e.Name }

// ValuesVar returns the name of the variable listing the valid values.
func (e Enum) ValuesVar() string { return e.Name + "Values" }

// Valid returns the values other than the sentinel.
func (e Enum) Valid() []*EnumValue {
	vs := make([]*EnumValue, 0, len(e.Values))
	for _, v := range e.Values {
		if v != e.Invalid {
			vs = append(vs, v)
		}
	}
	return vs
}
