package xml

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/vergen/compiler/gen"
)

// genClass generates the class unit ({class}.go).
func genClass(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := h.NewFile(h.Pkg())
	if t.Abstract {
		genAbstract(h, f, t)
		return f
	}
	genStruct(h, f, t)
	genConstructors(h, f, t)
	genPartition(h, f, t)
	renderMethods(f, t, methodTable(h, t))
	f.Var().Id("_").Add(rt(h, "Element")).Op("=").Parens(jen.Op("*").Id(t.Name)).Parens(jen.Nil())
	return f
}

func classDoc(t *gen.Type) string {
	if t.Comment != "" {
		return fmt.Sprintf("%s %s", t.Name, lowerFirst(strings.TrimSuffix(t.Comment, ".")+"."))
	}
	return fmt.Sprintf("%s is the <%s> element.", t.Name, t.Element)
}

func genStruct(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	comment(f, classDoc(t))
	f.Type().Id(t.Name).StructFunc(func(g *jen.Group) {
		g.Add(rt(h, "Node"))
		g.Line()
		for _, a := range t.Attributes {
			g.Id(a.StructField()).Add(goType(a))
			if a.Contract.IsSetFlag {
				g.Id(a.IsSetField()).Bool()
			}
		}
		if len(t.Children) > 0 {
			g.Line()
		}
		for _, e := range t.Children {
			g.Id(e.StructField()).Add(itemType(e.Type))
		}
		if len(t.Lists) > 0 {
			g.Line()
		}
		for _, e := range t.Lists {
			g.Id(e.StructField()).Op("*").Id(e.ListAccessor())
		}
	})
}

// zeroSentinel reports whether the unset value of a is its Go zero value.
func zeroSentinel(a *gen.Attribute) bool {
	if a.IsEnum() {
		return false
	}
	s := a.Contract.Sentinel
	return s == `""` || s == "false"
}

func genConstructors(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	f.Commentf("%s returns a new %s for the given level, version and package", t.Constructor(), t.Name)
	f.Commentf("version, or nil when %s is not part of that version.", t.Name)
	f.Func().Id(t.Constructor()).Params(jen.List(jen.Id("level"), jen.Id("ver"), jen.Id("pkg")).Uint()).Op("*").Id(t.Name).Block(
		jen.Return(jen.Id(t.NamespacesConstructor()).Call(
			jen.Id("NewNamespaces").Call(jen.Id("level"), jen.Id("ver"), jen.Id("pkg")),
		)),
	)
	values := jen.Dict{jen.Id("Node"): rt(h, "NewNode").Call(jen.Id("ns"))}
	for _, a := range t.Attributes {
		if !zeroSentinel(a) {
			values[jen.Id(a.StructField())] = sentinel(a)
		}
	}
	body := []jen.Code{
		jen.If(jen.Id("ns").Op("==").Nil().Op("||").Id(partitionFunc(t)).Call(jen.Id("ns").Dot("Tuple").Call()).Op("<").Lit(0)).Block(
			jen.Return(jen.Nil()),
		),
		jen.Id("o").Op(":=").Op("&").Id(t.Name).Values(values),
	}
	for _, e := range t.Lists {
		body = append(body,
			jen.Id("o").Dot(e.StructField()).Op("=").Id(e.ListType.Constructor()).Call(jen.Id("ns").Dot("Clone").Call()),
			jen.Id("o").Dot(e.StructField()).Dot("Connect").Call(jen.Id("o")),
		)
	}
	body = append(body, jen.Return(jen.Id("o")))
	f.Commentf("%s returns a new %s created under ns, or nil when the", t.NamespacesConstructor(), t.Name)
	f.Commentf("version of ns does not support %s.", t.Name)
	f.Func().Id(t.NamespacesConstructor()).Params(jen.Id("ns").Op("*").Add(rt(h, "Namespaces"))).Op("*").Id(t.Name).Block(body...)
}

func partitionFunc(t *gen.Type) string { return lowerFirst(t.Name) + "Partition" }

// genPartition generates the lookup from a version tuple to the partition
// index of t. Every version-dependent method switches on that index.
func genPartition(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	graph := h.Graph()
	f.Commentf("%s returns the partition of v, or -1 when %s is not part of v.", partitionFunc(t), t.Name)
	f.Func().Id(partitionFunc(t)).Params(jen.Id("v").Qual(h.VersionPkg(), "Tuple")).Int().Block(
		jen.Switch(jen.Id("v")).BlockFunc(func(g *jen.Group) {
			for _, p := range t.Partitions {
				idents := make([]jen.Code, len(p.Versions))
				for i, v := range p.Versions {
					idents[i] = jen.Id(graph.VersionOf(v).Ident)
				}
				g.Case(idents...).Block(jen.Return(jen.Lit(p.Index)))
			}
		}),
		jen.Return(jen.Lit(-1)),
	)
	f.Line()
	f.Comment("partition returns the partition of the version of o.")
	f.Func().Params(recv(t)).Id("partition").Params().Int().Block(
		jen.Return(jen.Id(partitionFunc(t)).Call(self(t).Dot("VersionTuple").Call())),
	)
	f.Line()
}

// baseMethods returns the object methods of t: its tag, its deep copy and
// the discriminants of its abstract ancestors.
func baseMethods(h gen.GeneratorHelper, t *gen.Type) []*method {
	ms := []*method{
		{
			name:     "ElementName",
			doc:      "ElementName returns the XML tag of o.",
			result:   jen.String(),
			zero:     jen.Lit(""),
			body:     []jen.Code{jen.Return(jen.Lit(t.Element))},
			internal: true,
		},
		{
			name: "Clone",
			doc: "Clone returns a deep copy of o. The copy owns copies of the children\n" +
				"of o and has no parent.",
			result: jen.Op("*").Id(t.Name),
			zero:   jen.Nil(),
			body:   cloneBody(t),
		},
	}
	if t.HasID() && t.ID.Accessor() != "ID" {
		ms = append(ms, &method{
			name:   "ID",
			doc:    fmt.Sprintf("ID returns the %q attribute, the identifier of o.", t.ID.Name),
			result: jen.String(),
			zero:   jen.Lit(""),
			body:   []jen.Code{jen.Return(self(t).Dot(t.ID.StructField()))},
		})
	}
	for _, a := range t.AbstractAncestors() {
		ms = append(ms,
			&method{
				name:     a.KindName(),
				doc:      fmt.Sprintf("%s implements %s.", a.KindName(), a.Name),
				result:   jen.Id(a.KindName()),
				body:     []jen.Code{jen.Return(jen.Id(a.KindConst(t)))},
				internal: true,
			},
			&method{
				name:     a.CloneMethod(),
				result:   jen.Id(a.Name),
				body:     []jen.Code{jen.Return(self(t).Dot("Clone").Call())},
				internal: true,
			},
		)
	}
	return ms
}

func cloneBody(t *gen.Type) []jen.Code {
	body := []jen.Code{
		jen.Id("c").Op(":=").New(jen.Id(t.Name)),
		jen.Op("*").Id("c").Op("=").Op("*").Add(self(t)),
		jen.Id("c").Dot("Node").Op("=").Add(self(t)).Dot("CloneNode").Call(),
	}
	for _, e := range t.Children {
		field := func() *jen.Statement { return self(t).Dot(e.StructField()) }
		body = append(body, jen.If(field().Op("!=").Nil()).Block(
			jen.Id("c").Dot(e.StructField()).Op("=").Add(cloneExpr(e.Type, field())),
			jen.Id("c").Dot(e.StructField()).Dot("AsNode").Call().Dot("Connect").Call(jen.Id("c")),
		))
	}
	for _, e := range t.Lists {
		body = append(body,
			jen.Id("c").Dot(e.StructField()).Op("=").Add(self(t)).Dot(e.StructField()).Dot("Clone").Call(),
			jen.Id("c").Dot(e.StructField()).Dot("Connect").Call(jen.Id("c")),
		)
	}
	return append(body, jen.Return(jen.Id("c")))
}

// genAbstract generates the interface of an abstract class, implemented by
// its concrete variants, and the discriminant selecting a variant.
func genAbstract(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	kind := t.KindName()
	comment(f, classDoc(t))
	f.Commentf("It is implemented by %s.", variantList(t))
	f.Type().Id(t.Name).InterfaceFunc(func(g *jen.Group) {
		if t.Parent != nil && t.Parent.Abstract {
			g.Id(t.Parent.Name)
		} else {
			g.Add(rt(h, "Element"))
		}
		g.Id(kind).Params().Id(kind)
		g.Id(t.CloneMethod()).Params().Id(t.Name)
		if t.HasID() {
			g.Id("ID").Params().String()
		}
		for _, a := range sharedAttributes(t) {
			if a.Identifier && a.Accessor() == "ID" {
				continue
			}
			g.Id(a.Accessor()).Params().Add(goType(a))
			g.Id("IsSet" + a.Accessor()).Params().Bool()
		}
	})

	f.Commentf("%s discriminates the variants of %s.", kind, t.Name)
	f.Type().Id(kind).Int()
	f.Const().DefsFunc(func(g *jen.Group) {
		for i, v := range t.Variants {
			if i == 0 {
				g.Id(t.KindConst(v)).Id(kind).Op("=").Iota()
				continue
			}
			g.Id(t.KindConst(v))
		}
	})
	tags := lowerFirst(kind) + "Tags"
	f.Var().Id(tags).Op("=").Index(jen.Op("...")).String().ValuesFunc(func(g *jen.Group) {
		for _, v := range t.Variants {
			g.Lit(v.Element)
		}
	})
	f.Comment("String returns the XML tag of the variant.")
	f.Func().Params(jen.Id("k").Id(kind)).Id("String").Params().String().Block(
		jen.If(jen.Id("k").Op(">=").Lit(0).Op("&&").Int().Call(jen.Id("k")).Op("<").Len(jen.Id(tags))).Block(
			jen.Return(jen.Id(tags).Index(jen.Id("k"))),
		),
		jen.Return(jen.Qual("fmt", "Sprintf").Call(jen.Lit(kind+"(%d)"), jen.Int().Call(jen.Id("k")))),
	)
	f.Commentf("%s returns the variant of %s with the given XML tag.", t.KindOf(), t.Name)
	f.Func().Id(t.KindOf()).Params(jen.Id("tag").String()).Params(jen.Id(kind), jen.Bool()).Block(
		jen.For(jen.List(jen.Id("i"), jen.Id("s")).Op(":=").Range().Id(tags)).Block(
			jen.If(jen.Id("s").Op("==").Id("tag")).Block(jen.Return(jen.Id(kind).Call(jen.Id("i")), jen.True())),
		),
		jen.Return(jen.Lit(-1), jen.False()),
	)
	f.Commentf("%s creates the %s variant of the given kind under ns, or returns", lowerFirst(t.Constructor()), t.Name)
	f.Comment("nil when the kind is unknown or not part of the version of ns.")
	f.Func().Id(lowerFirst(t.Constructor())).Params(
		jen.Id("kind").Id(kind),
		jen.Id("ns").Op("*").Add(rt(h, "Namespaces")),
	).Id(t.Name).Block(
		jen.Switch(jen.Id("kind")).BlockFunc(func(g *jen.Group) {
			for _, v := range t.Variants {
				g.Case(jen.Id(t.KindConst(v))).Block(
					jen.If(
						jen.Id("v").Op(":=").Id(v.NamespacesConstructor()).Call(jen.Id("ns")),
						jen.Id("v").Op("!=").Nil(),
					).Block(jen.Return(jen.Id("v"))),
				)
			}
		}),
		jen.Return(jen.Nil()),
	)
}

func variantList(t *gen.Type) string {
	names := make([]string, len(t.Variants))
	for i, v := range t.Variants {
		names[i] = v.Name
	}
	switch len(names) {
	case 0:
		return "no class"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
