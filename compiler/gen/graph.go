package gen

import (
	"errors"
	"fmt"
	"go/token"
	"slices"

	"github.com/syssam/vergen/schema"
	"github.com/syssam/vergen/schema/edge"
	"github.com/syssam/vergen/schema/field"
	"github.com/syssam/vergen/schema/version"
)

// Graph holds the validated classes of one package, ready for generation.
type Graph struct {
	*Config
	// Schema is the model the graph was built from.
	Schema *schema.Schema
	// Package is the name of the generated Go package.
	Package string
	// Prefix is the XML prefix of the extension namespace.
	Prefix string
	// Versions holds the supported version tuples in declared order.
	Versions []*Version
	// Enums, Nodes and Lists are in declaration order. Nodes holds only
	// the classes that passed validation.
	Enums []*Enum
	Nodes []*Type
	Lists []*ListType
	// Errors holds the error codes of the package.
	Errors *ErrorCodes
}

// graphBuilder holds the state of one NewGraph call.
type graphBuilder struct {
	g         *Graph
	classes   map[string]*schema.Class
	types     map[string]*Type
	enums     map[string]*Enum
	lists     map[string]*ListType
	listOrder []*ListType
	failed    map[string]bool
	resolving map[string]bool
	elemsDone map[string]bool
	errs      []error
}

// NewGraph validates s and builds its graph. Schema-wide problems (no
// version, bad package name) fail the whole graph. Class problems only
// drop the offending class, and the classes that reference it; the graph
// of the remaining classes is returned with the joined class errors.
func NewGraph(c *Config, s *schema.Schema) (*Graph, error) {
	if c == nil {
		c = DefaultConfig()
	}
	if s == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrInvalidSchema)
	}
	g := &Graph{
		Config:  c,
		Schema:  s,
		Package: c.PackageName(s.Package),
		Prefix:  s.Prefix,
	}
	if err := g.addVersions(); err != nil {
		return nil, err
	}
	b := &graphBuilder{
		g:         g,
		classes:   make(map[string]*schema.Class),
		types:     make(map[string]*Type),
		enums:     make(map[string]*Enum),
		lists:     make(map[string]*ListType),
		failed:    make(map[string]bool),
		resolving: make(map[string]bool),
		elemsDone: make(map[string]bool),
	}
	b.addEnums()
	b.addClasses()
	b.addVariants()
	for _, cl := range s.Classes {
		if t := b.healthy(cl.Name); t != nil {
			b.checkMethods(t)
		}
	}
	b.addLists()
	b.checkIdents()
	b.resolvePartitions()
	b.cascade()
	b.collect()
	if err := b.allocateErrors(); err != nil {
		return nil, err
	}
	c.logger().Debug("graph built", "package", g.Package, "classes", len(g.Nodes), "lists", len(g.Lists), "errors", len(b.errs))
	return g, errors.Join(b.errs...)
}

// Type returns the healthy class with the given name.
func (g *Graph) Type(name string) (*Type, bool) {
	for _, t := range g.Nodes {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Enum returns the enum with the given name.
func (g *Graph) Enum(name string) (*Enum, bool) {
	for _, e := range g.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Concrete returns the healthy classes that are not abstract.
func (g *Graph) Concrete() []*Type {
	var ts []*Type
	for _, t := range g.Nodes {
		if !t.Abstract {
			ts = append(ts, t)
		}
	}
	return ts
}

// Tuples returns the supported version tuples.
func (g *Graph) Tuples() version.Set {
	ts := make(version.Set, len(g.Versions))
	for i, v := range g.Versions {
		ts[i] = v.Tuple
	}
	return ts
}

// VersionOf returns the version of tuple t.
func (g *Graph) VersionOf(t version.Tuple) *Version {
	for _, v := range g.Versions {
		if v.Tuple == t {
			return v
		}
	}
	return nil
}

func (g *Graph) addVersions() error {
	if !token.IsIdentifier(g.Package) || token.IsKeyword(g.Package) {
		return schemaErrorf("", "", "invalid package name %q", g.Package)
	}
	if len(g.Schema.Versions) == 0 {
		return schemaErrorf("", "", "schema %s declares no version", g.Package)
	}
	for _, d := range g.Schema.Versions {
		if d == nil || d.Tuple.IsZero() {
			return schemaErrorf("", "", "invalid version declaration")
		}
		if g.VersionOf(d.Tuple) != nil {
			return &SchemaError{Version: d.Tuple.String(), Message: "version declared twice"}
		}
		if d.CoreURI == "" {
			return &SchemaError{Version: d.Tuple.String(), Message: "missing core namespace URI"}
		}
		g.Versions = append(g.Versions, &Version{
			Tuple:      d.Tuple,
			CoreURI:    d.CoreURI,
			PackageURI: d.PackageURI,
			Ident:      versionIdent(d.Tuple),
		})
	}
	return nil
}

func (b *graphBuilder) fail(class string, err error) {
	b.failed[class] = true
	b.errs = append(b.errs, err)
}

// healthy returns the resolved type of name, or nil if it failed.
func (b *graphBuilder) healthy(name string) *Type {
	if b.failed[name] {
		return nil
	}
	return b.types[name]
}

func (b *graphBuilder) addEnums() {
	for _, e := range b.g.Schema.Enums {
		if err := b.addEnum(e); err != nil {
			b.errs = append(b.errs, err)
		}
	}
}

func (b *graphBuilder) addEnum(e *schema.Enum) error {
	if !token.IsIdentifier(e.Name) {
		return schemaErrorf("", e.Name, "invalid enum name")
	}
	if _, ok := b.enums[e.Name]; ok {
		return schemaErrorf("", e.Name, "enum declared twice")
	}
	if n := len(e.Sentinels()); n != 1 {
		return schemaErrorf("", e.Name, "enum must declare exactly one invalid sentinel, got %d", n)
	}
	en := &Enum{Name: e.Name}
	seen := make(map[string]bool)
	for _, v := range e.Values {
		ev := &EnumValue{Name: v.Name, Value: v.Value}
		if ev.Name == "" {
			ev.Name = pascal(v.Value)
		}
		if !token.IsIdentifier(en.Const(ev)) {
			return schemaErrorf("", e.Name, "invalid constant name for value %q", v.Value)
		}
		if seen["v:"+ev.Value] || seen["n:"+ev.Name] {
			return schemaErrorf("", e.Name, "value %q declared twice", v.Value)
		}
		seen["v:"+ev.Value], seen["n:"+ev.Name] = true, true
		if v.Invalid {
			en.Invalid = ev
		}
		en.Values = append(en.Values, ev)
	}
	b.enums[e.Name] = en
	b.g.Enums = append(b.g.Enums, en)
	return nil
}

func (b *graphBuilder) addClasses() {
	for _, cl := range b.g.Schema.Classes {
		switch _, dup := b.classes[cl.Name]; {
		case !token.IsIdentifier(cl.Name) || token.IsKeyword(cl.Name):
			b.fail(cl.Name, schemaErrorf(cl.Name, "", "invalid class name"))
		case dup:
			b.fail(cl.Name, schemaErrorf(cl.Name, "", "class declared twice"))
		default:
			b.classes[cl.Name] = cl
		}
	}
	for _, cl := range b.g.Schema.Classes {
		b.resolve(cl.Name)
	}
	for _, cl := range b.g.Schema.Classes {
		b.resolveElements(cl.Name)
	}
}

// resolve builds the type of name with its attributes. Parents are
// resolved first.
func (b *graphBuilder) resolve(name string) *Type {
	if t, ok := b.types[name]; ok || b.failed[name] {
		return t
	}
	cl, ok := b.classes[name]
	if !ok {
		return nil
	}
	if b.resolving[name] {
		b.fail(name, schemaErrorf(name, "", "inheritance cycle"))
		return nil
	}
	b.resolving[name] = true
	defer delete(b.resolving, name)

	t := &Type{
		Config:   b.g.Config,
		schema:   cl,
		Name:     cl.Name,
		Element:  cl.Element,
		Comment:  cl.Comment,
		Abstract: cl.Abstract,
		Versions: b.g.Tuples(),
	}
	if t.Element == "" {
		t.Element = lowerCamel(cl.Name)
	}
	if cl.Parent != "" {
		if _, ok := b.classes[cl.Parent]; !ok {
			b.fail(name, schemaErrorf(name, "", "unknown parent class %q", cl.Parent))
			return nil
		}
		p := b.resolve(cl.Parent)
		if p == nil || b.failed[cl.Parent] || b.failed[name] {
			if !b.failed[name] {
				b.fail(name, schemaErrorf(name, "", "parent class %s failed", cl.Parent))
			}
			return nil
		}
		t.Parent = p
		t.Versions = p.Versions
	}
	if len(cl.Versions) > 0 {
		if v, ok := undeclared(cl.Versions, b.g.Tuples()); ok {
			b.fail(name, &SchemaError{Class: name, Version: v.String(), Message: "undeclared version"})
			return nil
		}
		t.Versions = b.g.Tuples().Intersect(cl.Versions)
	}
	var errs []error
	if t.Parent != nil {
		for _, pa := range t.Parent.Attributes {
			a := *pa
			a.Versions = pa.Versions.Intersect(t.Versions)
			a.RequiredIn = pa.RequiredIn.Intersect(t.Versions)
			if len(a.Versions) == 0 {
				if pa.IsRequired() {
					errs = append(errs, schemaErrorf(name, pa.Name, "required attribute has no legal version"))
				}
				continue
			}
			if err := t.addAttribute(&a); err != nil {
				errs = append(errs, err)
			}
		}
	}
	for _, d := range cl.Attributes {
		a, err := b.attribute(t, d)
		if err == nil {
			err = t.addAttribute(a)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	for _, a := range t.Attributes {
		if !a.Identifier {
			continue
		}
		if a.Kind != field.TypeIDRef && a.Kind != field.TypeString {
			errs = append(errs, schemaErrorf(name, a.Name, "identifier must be of kind idref or string, got %s", a.Kind))
		}
		if t.ID != nil {
			errs = append(errs, schemaErrorf(name, a.Name, "class already has the identifier %s", t.ID.Name))
		}
		t.ID = a
	}
	b.types[name] = t
	for _, err := range errs {
		b.fail(name, err)
	}
	return t
}

// attribute validates an attribute declared by t.
func (b *graphBuilder) attribute(t *Type, d *field.Descriptor) (*Attribute, error) {
	if d.Name == "" || pascal(d.Name) == "" {
		return nil, schemaErrorf(t.Name, d.Name, "invalid attribute name")
	}
	contract, err := Contract(d.Kind)
	if err != nil {
		return nil, NewSchemaError(t.Name, d.Name, "undeclared attribute type", err)
	}
	a := &Attribute{
		Name:       d.Name,
		Kind:       d.Kind,
		Contract:   contract,
		Identifier: d.Identifier,
		Comment:    d.Comment,
		Owner:      t,
		Versions:   t.Versions,
	}
	if d.Kind == field.TypeEnum {
		e, ok := b.enums[d.Enum]
		if !ok {
			return nil, schemaErrorf(t.Name, d.Name, "undeclared enum type %q", d.Enum)
		}
		a.Enum = e
	}
	if len(d.Versions) > 0 {
		if v, ok := undeclared(d.Versions, t.Versions); ok {
			return nil, &SchemaError{Class: t.Name, Attribute: d.Name, Version: v.String(), Message: "version outside the class support set"}
		}
		a.Versions = t.Versions.Intersect(d.Versions)
	}
	if d.IsRequired() {
		if len(a.Versions) == 0 {
			return nil, schemaErrorf(t.Name, d.Name, "required attribute has no legal version")
		}
		a.RequiredIn = a.Versions
		if len(d.RequiredIn) > 0 {
			if v, ok := undeclared(d.RequiredIn, a.Versions); ok {
				return nil, &SchemaError{Class: t.Name, Attribute: d.Name, Version: v.String(), Message: "required in a version where it is not legal"}
			}
			a.RequiredIn = a.Versions.Intersect(d.RequiredIn)
		}
	}
	return a, nil
}

// addAttribute appends a, merging it with a same-name attribute legal in
// disjoint versions.
func (t *Type) addAttribute(a *Attribute) error {
	i := slices.IndexFunc(t.Attributes, func(o *Attribute) bool { return o.Name == a.Name })
	if i < 0 {
		t.Attributes = append(t.Attributes, a)
		return nil
	}
	o := t.Attributes[i]
	if overlap := o.Versions.Intersect(a.Versions); len(overlap) > 0 {
		return &SchemaError{Class: t.Name, Attribute: a.Name, Version: overlap[0].String(), Message: "attribute declared twice in overlapping versions"}
	}
	if o.Kind != a.Kind || o.Enum != a.Enum {
		return schemaErrorf(t.Name, a.Name, "attribute redeclared with kind %s, previously %s", a.Kind, o.Kind)
	}
	m := *o
	m.Versions = t.Versions.Intersect(o.Versions.Union(a.Versions))
	m.RequiredIn = t.Versions.Intersect(o.RequiredIn.Union(a.RequiredIn))
	m.Identifier = o.Identifier || a.Identifier
	t.Attributes[i] = &m
	return nil
}

// resolveElements adds the children and lists of name once every class
// exists, so that classes may reference each other in any order.
func (b *graphBuilder) resolveElements(name string) {
	t := b.healthy(name)
	if t == nil || b.elemsDone[name] {
		return
	}
	b.elemsDone[name] = true
	var errs []error
	if t.Parent != nil {
		b.resolveElements(t.Parent.Name)
		for _, pe := range t.Parent.Elements() {
			e := *pe
			e.Versions = pe.Versions.Intersect(t.Versions)
			if len(e.Versions) == 0 {
				continue
			}
			if err := t.addElement(&e); err != nil {
				errs = append(errs, err)
			}
		}
	}
	for _, d := range t.schema.Elements() {
		e, err := b.element(t, d)
		if err == nil {
			err = t.addElement(e)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	for _, err := range errs {
		b.fail(name, err)
	}
}

func (b *graphBuilder) element(t *Type, d *edge.Descriptor) (*Element, error) {
	if d.Name == "" || pascal(d.Name) == "" {
		return nil, schemaErrorf(t.Name, d.Name, "invalid element name")
	}
	if _, ok := b.classes[d.Class]; !ok {
		return nil, schemaErrorf(t.Name, d.Name, "undeclared element type %q", d.Class)
	}
	target := b.types[d.Class]
	if target == nil {
		return nil, schemaErrorf(t.Name, d.Name, "element type %s failed", d.Class)
	}
	e := &Element{
		Name:     d.Name,
		Type:     target,
		List:     d.List,
		Required: d.Required,
		Comment:  d.Comment,
		Owner:    t,
		Versions: t.Versions,
	}
	if len(d.Versions) > 0 {
		if v, ok := undeclared(d.Versions, t.Versions); ok {
			return nil, &SchemaError{Class: t.Name, Attribute: d.Name, Version: v.String(), Message: "version outside the class support set"}
		}
		e.Versions = t.Versions.Intersect(d.Versions)
	}
	return e, nil
}

func (t *Type) addElement(e *Element) error {
	all := t.Elements()
	i := slices.IndexFunc(all, func(o *Element) bool { return o.Name == e.Name })
	if i < 0 {
		if e.List {
			t.Lists = append(t.Lists, e)
		} else {
			t.Children = append(t.Children, e)
		}
		return nil
	}
	o := all[i]
	if overlap := o.Versions.Intersect(e.Versions); len(overlap) > 0 {
		return &SchemaError{Class: t.Name, Attribute: e.Name, Version: overlap[0].String(), Message: "element declared twice in overlapping versions"}
	}
	if o.Type != e.Type || o.List != e.List || o.Required != e.Required {
		return schemaErrorf(t.Name, e.Name, "element redeclared with a different type")
	}
	o.Versions = t.Versions.Intersect(o.Versions.Union(e.Versions))
	return nil
}

func (b *graphBuilder) addVariants() {
	for _, cl := range b.g.Schema.Classes {
		t := b.healthy(cl.Name)
		if t == nil || !t.Abstract {
			continue
		}
		t.Variants = nil
		for _, vc := range b.g.Schema.Classes {
			v := b.healthy(vc.Name)
			if v == nil || v.Abstract || !slices.Contains(v.AbstractAncestors(), t) {
				continue
			}
			t.Variants = append(t.Variants, v)
		}
		if len(t.Variants) == 0 {
			b.fail(t.Name, schemaErrorf(t.Name, "", "abstract class has no concrete variant"))
		}
	}
}

// checkMethods checks that the generated method set of t has no duplicate
// and no reserved name, and that child tags are unique.
func (b *graphBuilder) checkMethods(t *Type) {
	seen := make(map[string]string)
	add := func(origin string, ms ...string) {
		for _, m := range ms {
			if _, ok := reservedMethods[m]; ok {
				b.fail(t.Name, schemaErrorf(t.Name, origin, "accessor %s is a reserved method name", m))
				continue
			}
			if prev, ok := seen[m]; ok {
				b.fail(t.Name, schemaErrorf(t.Name, origin, "accessor %s collides with %s", m, prev))
				continue
			}
			seen[m] = origin
		}
	}
	for _, a := range t.AbstractAncestors() {
		add(a.Name, a.KindName(), a.CloneMethod())
	}
	if t.ID != nil && t.ID.Accessor() != "ID" {
		add(t.ID.Name, "ID")
	}
	for _, a := range t.Attributes {
		x := a.Accessor()
		add(a.Name, x, "IsSet"+x, "Set"+x, "Unset"+x)
		if a.IsEnum() {
			add(a.Name, x+"String", "Set"+x+"String")
		}
	}
	for _, e := range t.Children {
		x := e.Accessor()
		add(e.Name, x, "IsSet"+x, "Set"+x, "Create"+x, "Unset"+x)
	}
	for _, e := range t.Lists {
		x, item := e.Accessor(), e.ItemName()
		add(e.Name, listTypeName(e.Name), "Num"+x, item, "Add"+item, "Create"+item, "Remove"+item)
		if e.Type.HasID() {
			add(e.Name, item+"ByID", "Remove"+item+"ByID")
		}
	}
	tags := make(map[string]string)
	for _, e := range t.Elements() {
		ts := []string{listTag(e.Name)}
		if !e.List {
			ts = e.Tags()
		}
		for _, tag := range ts {
			if prev, ok := tags[tag]; ok {
				b.fail(t.Name, schemaErrorf(t.Name, e.Name, "element tag <%s> collides with %s", tag, prev))
			}
			tags[tag] = e.Name
		}
	}
}

// listTypeName returns the Go type of the list of the given name.
func listTypeName(name string) string { return "ListOf" + pascal(plural(singular(name))) }

// listTag returns the XML tag of the list of the given name.
func listTag(name string) string { return "listOf" + pascal(plural(singular(name))) }

// addLists binds every list element to its list type. Lists of the same
// name share one type and must hold the same class.
func (b *graphBuilder) addLists() {
	for _, cl := range b.g.Schema.Classes {
		t := b.healthy(cl.Name)
		if t == nil {
			continue
		}
		for _, e := range t.Lists {
			name := listTypeName(e.Name)
			lt, ok := b.lists[name]
			switch {
			case !ok:
				lt = &ListType{Name: name, Element: listTag(e.Name), Item: e.Type}
				b.lists[name] = lt
				b.listOrder = append(b.listOrder, lt)
			case lt.Item != e.Type:
				b.fail(t.Name, schemaErrorf(t.Name, e.Name, "%s already holds %s", name, lt.Item.Name))
				continue
			}
			e.ListType = lt
		}
	}
}

// checkIdents checks the package-level identifiers of the generated code.
func (b *graphBuilder) checkIdents() {
	seen := make(map[string]string)
	bad := make(map[*Enum]bool)
	for id := range globalIdent {
		seen[id] = "generated package"
	}
	add := func(owner string, ids ...string) *SchemaError {
		for _, id := range ids {
			if prev, ok := seen[id]; ok {
				return schemaErrorf(owner, "", "identifier %s collides with %s", id, prev)
			}
			seen[id] = owner
		}
		return nil
	}
	for _, v := range b.g.Versions {
		_ = add(v.Tuple.String(), v.Ident)
	}
	for _, e := range b.g.Enums {
		ids := []string{e.Name, e.ParseFunc(), e.ValuesVar()}
		for _, v := range e.Values {
			ids = append(ids, e.Const(v))
		}
		if err := add(e.Name, ids...); err != nil {
			b.errs = append(b.errs, err)
			bad[e] = true
		}
	}
	b.g.Enums = slices.DeleteFunc(b.g.Enums, func(e *Enum) bool { return bad[e] })
	badList := make(map[*ListType]*SchemaError)
	for _, lt := range b.listOrder {
		if err := add(lt.Name, lt.Name, lt.Constructor()); err != nil {
			badList[lt] = err
		}
	}
	for _, cl := range b.g.Schema.Classes {
		t := b.healthy(cl.Name)
		if t == nil {
			continue
		}
		for _, a := range t.Attributes {
			if a.IsEnum() && bad[a.Enum] {
				b.fail(t.Name, schemaErrorf(t.Name, a.Name, "enum type %s failed", a.Enum.Name))
			}
		}
		for _, e := range t.Lists {
			if err, ok := badList[e.ListType]; ok {
				b.fail(t.Name, schemaErrorf(t.Name, e.Name, "list type %s: %s", e.ListType.Name, err.Message))
			}
		}
		ids := []string{t.Name, t.Constructor(), t.APIName()}
		if t.Abstract {
			ids = append(ids, t.KindName(), t.KindOf())
			for _, v := range t.Variants {
				ids = append(ids, t.KindConst(v))
			}
		} else {
			ids = append(ids, t.NamespacesConstructor())
		}
		if err := add(t.Name, ids...); err != nil {
			b.fail(t.Name, err)
		}
	}
}

func (b *graphBuilder) resolvePartitions() {
	for _, cl := range b.g.Schema.Classes {
		t := b.healthy(cl.Name)
		if t == nil || t.Abstract {
			continue
		}
		ps, err := ResolvePartitions(t)
		if err != nil {
			b.fail(t.Name, err)
			continue
		}
		t.Partitions = ps
	}
}

// cascade fails the classes that derive from, or hold, a failed class.
func (b *graphBuilder) cascade() {
	for changed := true; changed; {
		changed = false
		for _, cl := range b.g.Schema.Classes {
			t := b.healthy(cl.Name)
			if t == nil {
				continue
			}
			var ref string
			if t.Parent != nil && b.failed[t.Parent.Name] {
				ref = t.Parent.Name
			}
			for _, e := range t.Elements() {
				if b.failed[e.Type.Name] {
					ref = e.Type.Name
				}
			}
			if t.Abstract {
				t.Variants = slices.DeleteFunc(t.Variants, func(v *Type) bool { return b.failed[v.Name] })
				if len(t.Variants) == 0 {
					ref = "every variant"
				}
			}
			if ref != "" {
				b.fail(t.Name, schemaErrorf(t.Name, "", "references failed class %s", ref))
				changed = true
			}
		}
	}
}

func (b *graphBuilder) collect() {
	for _, cl := range b.g.Schema.Classes {
		if t := b.healthy(cl.Name); t != nil && !slices.Contains(b.g.Nodes, t) {
			b.g.Nodes = append(b.g.Nodes, t)
		}
	}
	used := make(map[*ListType]bool)
	for _, t := range b.g.Nodes {
		for _, e := range t.Lists {
			used[e.ListType] = true
		}
	}
	for _, lt := range b.listOrder {
		if used[lt] {
			b.g.Lists = append(b.g.Lists, lt)
		}
	}
}

// allocateErrors allocates the error codes of the package serially, in
// declaration order.
func (b *graphBuilder) allocateErrors() error {
	base := b.g.Schema.ErrorBase
	if b.g.ErrorBase > 0 {
		base = b.g.ErrorBase
	}
	if base <= 0 {
		base = DefaultErrorBase
	}
	codes := NewErrorCodes(base)
	alloc := func(class, name, category, format string, args ...any) error {
		_, err := codes.Allocate(ErrorCode{
			Name:     name,
			Class:    class,
			Category: category,
			Message:  fmt.Sprintf(format, args...),
		})
		return err
	}
	for _, t := range b.g.Concrete() {
		tag := t.Element
		errs := []error{
			alloc(t.Name, t.ErrorName(CondUnknownAttribute), CategoryAttribute, "unknown attribute on <%s>", tag),
			alloc(t.Name, t.ErrorName(CondUnexpectedAttribute), CategoryVersion, "attribute not legal for the version of <%s>", tag),
			alloc(t.Name, t.ErrorName(CondUnknownElement), CategoryElement, "unknown element in <%s>", tag),
			alloc(t.Name, t.ErrorName(CondUnsupportedVersion), CategoryVersion, "<%s> is not supported in this version", tag),
		}
		for _, a := range t.Attributes {
			if a.IsRequired() {
				errs = append(errs, alloc(t.Name, t.ErrorName(MissingCond(a.Accessor())), CategoryAttribute, "<%s> is missing the required attribute %s", tag, a.Name))
			}
		}
		for _, a := range t.Attributes {
			if a.ErrorSuffix() != "" {
				errs = append(errs, alloc(t.Name, t.ErrorName(MustBeCond(a)), CategoryAttribute, "attribute %s of <%s> must be of type %s", a.Name, tag, a.ErrorSuffix()))
			}
		}
		for _, e := range t.Elements() {
			if e.Required {
				errs = append(errs, alloc(t.Name, t.ErrorName(MissingCond(e.Accessor())), CategoryElement, "<%s> is missing the required element %s", tag, e.Name))
			}
		}
		if err := errors.Join(errs...); err != nil {
			return err
		}
	}
	for _, lt := range b.g.Lists {
		err := errors.Join(
			alloc(lt.Name, lt.UnknownElementName(), CategoryElement, "unknown element in <%s>", lt.Element),
			alloc(lt.Name, lt.UnsupportedVersionName(), CategoryVersion, "<%s> is not legal for the version of its parent", lt.Element),
		)
		if err != nil {
			return err
		}
	}
	b.g.Errors = codes
	return nil
}

// undeclared returns the first tuple of s missing from declared.
func undeclared(s, declared version.Set) (version.Tuple, bool) {
	for _, v := range s {
		if !declared.Contains(v) {
			return v, true
		}
	}
	return version.Tuple{}, false
}
