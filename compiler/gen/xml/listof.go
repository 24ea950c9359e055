package xml

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/vergen/compiler/gen"
)

// listMethods returns the methods a class exposes for its list-of
// collection e. They forward to the list, gated on the version.
func listMethods(h gen.GeneratorHelper, t *gen.Type, e *gen.Element) []*method {
	x, item, c := e.Accessor(), e.ItemName(), e.Type
	list := func() *jen.Statement { return self(t).Dot(e.StructField()) }
	ms := []*method{
		{
			name:   e.ListAccessor(),
			doc:    fmt.Sprintf("%s returns the <%s> collection.", e.ListAccessor(), e.ListType.Element),
			result: jen.Op("*").Id(e.ListAccessor()),
			zero:   jen.Nil(),
			body:   []jen.Code{jen.Return(list())},
		},
		{
			name:   "Num" + x,
			doc:    fmt.Sprintf("Num%s returns the number of %s.", x, e.Name),
			result: jen.Int(),
			zero:   jen.Lit(0),
			body:   []jen.Code{jen.Return(list().Dot("Len").Call())},
		},
		{
			name:   item,
			doc:    fmt.Sprintf("%s returns the i-th member of %s, or nil.", item, e.Name),
			params: []param{{"i", jen.Int()}},
			result: itemType(c),
			zero:   jen.Nil(),
			body:   []jen.Code{jen.Return(list().Dot("Get").Call(jen.Id("i")))},
		},
	}
	if c.HasID() {
		ms = append(ms, &method{
			name:   item + "ByID",
			doc:    fmt.Sprintf("%sByID returns the member of %s with the given identifier, or nil.", item, e.Name),
			params: []param{{"id", jen.String()}},
			result: itemType(c),
			zero:   jen.Nil(),
			body:   []jen.Code{jen.Return(list().Dot("GetByID").Call(jen.Id("id")))},
		})
	}
	add := &method{
		name:   "Add" + item,
		doc:    fmt.Sprintf("Add%s adds a copy of v to %s. See %s.Add.", item, e.Name, e.ListAccessor()),
		params: []param{{"v", itemType(c)}},
		result: opReturn(h),
		zero:   rt(h, "InvalidObject"),
	}
	add.body = append(gate(t, e.Name, rt(h, "OperationFailed")), jen.Return(list().Dot("Add").Call(jen.Id("v"))))
	create := &method{
		name:   "Create" + item,
		result: itemType(c),
		zero:   jen.Nil(),
	}
	if c.Abstract {
		create.doc = fmt.Sprintf("Create%s appends a new %s of the given kind to %s and returns it.", item, c.Name, e.Name)
		create.params = []param{{"kind", jen.Id(c.KindName())}}
		create.body = append(gate(t, e.Name, jen.Nil()), jen.Return(list().Dot("Create").Call(jen.Id("kind"))))
	} else {
		create.doc = fmt.Sprintf("Create%s appends a new %s to %s and returns it.", item, c.Name, e.Name)
		create.body = append(gate(t, e.Name, jen.Nil()), jen.Return(list().Dot("Create").Call()))
	}
	ms = append(ms, add, create, &method{
		name: "Remove" + item,
		doc: fmt.Sprintf("Remove%s detaches and returns the i-th member of %s, or nil.\n"+
			"The caller owns the returned %s.", item, e.Name, c.Name),
		params: []param{{"i", jen.Int()}},
		result: itemType(c),
		zero:   jen.Nil(),
		body:   []jen.Code{jen.Return(list().Dot("Remove").Call(jen.Id("i")))},
	})
	if c.HasID() {
		ms = append(ms, &method{
			name:   "Remove" + item + "ByID",
			doc:    fmt.Sprintf("Remove%sByID detaches and returns the member of %s with the given\nidentifier, or nil.", item, e.Name),
			params: []param{{"id", jen.String()}},
			result: itemType(c),
			zero:   jen.Nil(),
			body:   []jen.Code{jen.Return(list().Dot("RemoveByID").Call(jen.Id("id")))},
		})
	}
	return ms
}

// genList generates the list-of collection type ({listof}.go).
func genList(h gen.GeneratorHelper, l *gen.ListType) *jen.File {
	f := h.NewFile(h.Pkg())
	c := l.Item
	elem := itemType(c)
	l0 := func() *jen.Statement { return jen.Id("l") }
	lrecv := jen.Id("l").Op("*").Id(l.Name)

	f.Commentf("%s is the <%s> collection of %s elements. It owns its members.", l.Name, l.Element, c.Name)
	f.Type().Id(l.Name).Struct(
		rt(h, "ListOf").Types(elem),
	)

	f.Func().Id(l.Constructor()).Params(jen.Id("ns").Op("*").Add(rt(h, "Namespaces"))).Op("*").Id(l.Name).Block(
		jen.Return(jen.Op("&").Id(l.Name).Values(jen.Dict{
			jen.Id("ListOf"): rt(h, "NewListOf").Types(itemType(c)).Call(jen.Id("ns")),
		})),
	)

	f.Comment("ElementName returns the XML tag of the collection.")
	f.Func().Params(lrecv.Clone()).Id("ElementName").Params().String().Block(jen.Return(jen.Lit(l.Element)))

	// Add
	add := []jen.Code{
		jen.If(
			jen.Id("rc").Op(":=").Add(rt(h, "CheckAddable")).Call(l0(), jen.Id("v")),
			jen.Id("rc").Op("!=").Add(success(h)),
		).Block(jen.Return(jen.Id("rc"))),
	}
	if c.HasID() {
		add = append(add, jen.If(
			jen.Id("id").Op(":=").Id("v").Dot("ID").Call(),
			jen.Id("id").Op("!=").Lit("").Op("&&").Add(l0()).Dot("HasID").Call(jen.Id("id")),
		).Block(jen.Return(rt(h, "DuplicateObjectID"))))
	}
	add = append(add,
		l0().Dot("Append").Call(l0(), cloneExpr(c, jen.Id("v"))),
		jen.Return(success(h)),
	)
	f.Comment("Add appends a copy of v. The checks run in order: a nil v fails with")
	f.Comment("OperationFailed, a v missing required attributes or elements with")
	f.Comment("InvalidObject, then the level, version and namespaces of v must match")
	if c.HasID() {
		f.Comment("those of the collection, and the identifier of v must be unused.")
	} else {
		f.Comment("those of the collection.")
	}
	f.Comment("A failed Add leaves the collection unchanged.")
	f.Func().Params(lrecv.Clone()).Id("Add").Params(jen.Id("v").Add(itemType(c))).Add(opReturn(h)).Block(add...)

	// Create
	appendNew := func(ctor jen.Code) []jen.Code {
		return []jen.Code{
			jen.Id("v").Op(":=").Add(ctor),
			jen.If(jen.Id("v").Op("==").Nil()).Block(jen.Return(jen.Nil())),
			l0().Dot("Append").Call(l0(), jen.Id("v")),
			jen.Return(jen.Id("v")),
		}
	}
	ns := func() *jen.Statement { return l0().Dot("Namespaces").Call().Dot("Clone").Call() }
	if c.Abstract {
		f.Commentf("Create appends a new %s of the given kind and returns it, or nil when", c.Name)
		f.Comment("the kind is not supported by the version of the collection.")
		f.Func().Params(lrecv.Clone()).Id("Create").Params(jen.Id("kind").Id(c.KindName())).Id(c.Name).Block(
			appendNew(jen.Id(lowerFirst(c.Constructor())).Call(jen.Id("kind"), ns()))...,
		)
		for _, v := range c.Variants {
			f.Commentf("Create%s appends a new %s and returns it.", v.Name, v.Name)
			f.Func().Params(lrecv.Clone()).Id("Create"+v.Name).Params().Op("*").Id(v.Name).Block(
				appendNew(jen.Id(v.NamespacesConstructor()).Call(ns()))...,
			)
		}
	} else {
		f.Commentf("Create appends a new %s and returns it, or nil when %s is not", c.Name, c.Name)
		f.Comment("supported by the version of the collection.")
		f.Func().Params(lrecv.Clone()).Id("Create").Params().Op("*").Id(c.Name).Block(
			appendNew(jen.Id(c.NamespacesConstructor()).Call(ns()))...,
		)
	}

	// CreateObject
	f.Comment("CreateObject implements docmodel.Element.")
	f.Func().Params(lrecv.Clone()).Id("CreateObject").Params(
		jen.Id("name").String(),
		jen.Id("attrs").Op("*").Add(rt(h, "Attributes")),
		jen.Id("sink").Add(rt(h, "ErrorSink")),
	).Add(rt(h, "Element")).BlockFunc(func(grp *jen.Group) {
		grp.Id("sink").Op("=").Add(rt(h, "OrDiscard")).Call(jen.Id("sink"))
		variants := []*gen.Type{c}
		if c.Abstract {
			variants = c.Variants
		}
		grp.Switch(jen.Id("name")).BlockFunc(func(sw *jen.Group) {
			for _, v := range variants {
				create := l0().Dot("Create").Call()
				if c.Abstract {
					create = l0().Dot("Create" + v.Name).Call()
				}
				sw.Case(jen.Lit(v.Element)).Block(
					jen.If(jen.Id("v").Op(":=").Add(create), jen.Id("v").Op("!=").Nil()).Block(jen.Return(jen.Id("v"))),
					diagnostic(h, v.ErrorConst(gen.CondUnsupportedVersion), jen.Id("name")),
					jen.Return(jen.Nil()),
				)
			}
		})
		grp.Add(diagnostic(h, l.UnknownElementConst(), jen.Id("name")))
		grp.Return(jen.Nil())
	})

	// Clone
	cloneFn := jen.Params(jen.Op("*").Id(c.Name)).Dot("Clone")
	if c.Abstract {
		cloneFn = jen.Func().Params(jen.Id("v").Id(c.Name)).Id(c.Name).Block(
			jen.Return(jen.Id("v").Dot(c.CloneMethod()).Call()),
		)
	}
	f.Comment("Clone returns a deep copy of the collection and its members. The copy")
	f.Comment("has no parent.")
	f.Func().Params(lrecv.Clone()).Id("Clone").Params().Op("*").Id(l.Name).Block(
		jen.Id("c").Op(":=").Op("&").Id(l.Name).Values(),
		jen.Id("c").Dot("Node").Op("=").Add(l0()).Dot("CloneNode").Call(),
		l0().Dot("CloneInto").Call(jen.Op("&").Id("c").Dot("ListOf"), jen.Id("c"), cloneFn),
		jen.Return(jen.Id("c")),
	)

	f.Comment("Validate validates the members of the collection.")
	f.Func().Params(lrecv.Clone()).Id("Validate").Params(jen.Id("sink").Add(rt(h, "ErrorSink"))).Int().Block(
		jen.Return(rt(h, "ValidateChildren").Call(l0(), jen.Id("sink"))),
	)
	f.Line()
	f.Var().Id("_").Add(rt(h, "Element")).Op("=").Parens(jen.Op("*").Id(l.Name)).Parens(jen.Nil())
	return f
}
