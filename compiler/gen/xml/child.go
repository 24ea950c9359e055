package xml

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/vergen/compiler/gen"
)

// childMethods returns the accessors of the singular child slot e. The
// slot owns its value: Set stores a copy and Unset detaches it.
func childMethods(h gen.GeneratorHelper, t *gen.Type, e *gen.Element) []*method {
	x, c := e.Accessor(), e.Type
	field := func() *jen.Statement { return self(t).Dot(e.StructField()) }
	create := &method{
		name:   "Create" + x,
		result: itemType(c),
		zero:   jen.Nil(),
	}
	body := gate(t, e.Name, jen.Nil())
	if c.Abstract {
		create.doc = fmt.Sprintf("Create%s replaces the %q element with a new %s of the given kind\n"+
			"and returns it, or nil when the kind is not supported by the version.", x, e.Name, c.Name)
		create.params = []param{{"kind", jen.Id(c.KindName())}}
		body = append(body, jen.Id("v").Op(":=").Id(lowerFirst(c.Constructor())).Call(
			jen.Id("kind"), self(t).Dot("Namespaces").Call().Dot("Clone").Call(),
		))
	} else {
		create.doc = fmt.Sprintf("Create%s replaces the %q element with a new %s and returns it,\n"+
			"or nil when %s is not supported by the version.", x, e.Name, c.Name, c.Name)
		body = append(body, jen.Id("v").Op(":=").Add(newChild(t, c)))
	}
	create.body = append(body,
		jen.If(jen.Id("v").Op("==").Nil()).Block(jen.Return(jen.Nil())),
		self(t).Dot("Unset"+x).Call(),
		jen.Id("v").Dot("AsNode").Call().Dot("Connect").Call(self(t)),
		field().Op("=").Id("v"),
		jen.Return(jen.Id("v")),
	)

	set := gate(t, e.Name, rt(h, "OperationFailed"))
	set = append(set,
		jen.If(rt(h, "IsNil").Call(jen.Id("v"))).Block(jen.Return(self(t).Dot("Unset"+x).Call())),
		jen.If(
			jen.Id("rc").Op(":=").Add(rt(h, "CheckCompatible")).Call(self(t), jen.Id("v")),
			jen.Id("rc").Op("!=").Add(success(h)),
		).Block(jen.Return(jen.Id("rc"))),
		jen.Id("c").Op(":=").Add(cloneExpr(c, jen.Id("v"))),
		self(t).Dot("Unset"+x).Call(),
		jen.Id("c").Dot("AsNode").Call().Dot("Connect").Call(self(t)),
		field().Op("=").Id("c"),
		jen.Return(success(h)),
	)
	return []*method{
		{
			name:   x,
			doc:    fmt.Sprintf("%s returns the %q element, or nil.", x, e.Name),
			result: itemType(c),
			zero:   jen.Nil(),
			body:   []jen.Code{jen.Return(field())},
		},
		{
			name:   "IsSet" + x,
			doc:    fmt.Sprintf("IsSet%s reports whether the %q element is set.", x, e.Name),
			result: jen.Bool(),
			zero:   jen.False(),
			body:   []jen.Code{jen.Return(field().Op("!=").Nil())},
		},
		{
			name: "Set" + x,
			doc: fmt.Sprintf("Set%s stores a copy of v as the %q element. A nil v clears the\n"+
				"element. The copy must share the level, version and namespaces of the %s.", x, e.Name, t.Name),
			params: []param{{"v", itemType(c)}},
			result: opReturn(h),
			zero:   rt(h, "InvalidObject"),
			body:   set,
		},
		create,
		{
			name:   "Unset" + x,
			doc:    fmt.Sprintf("Unset%s detaches and clears the %q element.", x, e.Name),
			result: opReturn(h),
			zero:   rt(h, "InvalidObject"),
			body: []jen.Code{
				jen.If(field().Op("!=").Nil()).Block(
					field().Dot("AsNode").Call().Dot("Detach").Call(),
					field().Op("=").Nil(),
				),
				jen.Return(success(h)),
			},
		},
	}
}
