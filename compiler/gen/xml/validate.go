package xml

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/vergen/compiler/gen"
)

// validateMethods returns the requiredness checks and the identifier
// lookups of t.
func validateMethods(h gen.GeneratorHelper, t *gen.Type) []*method {
	return []*method{
		hasRequired(t, "HasRequiredAttributes",
			"HasRequiredAttributes reports whether every attribute required in the\nversion of o is set.",
			func(p *gen.Partition) []jen.Code {
				var cs []jen.Code
				for _, a := range p.RequiredAttributes() {
					cs = append(cs, isSetExpr(t, a.Attribute))
				}
				return cs
			}),
		hasRequired(t, "HasRequiredElements",
			"HasRequiredElements reports whether every element required in the\nversion of o is present. An empty list counts as missing.",
			func(p *gen.Partition) []jen.Code {
				var cs []jen.Code
				for _, e := range p.RequiredElements() {
					cs = append(cs, elementPresent(t, e.Element))
				}
				return cs
			}),
		validate(h, t),
		{
			name:   "GetElementByID",
			doc:    "GetElementByID returns the first descendant of o with the given identifier.",
			params: []param{{"id", jen.String()}},
			result: rt(h, "Element"),
			zero:   jen.Nil(),
			body:   []jen.Code{jen.Return(rt(h, "FindByID").Call(self(t), jen.Id("id")))},
		},
		{
			name:   "GetElementByMetaID",
			doc:    "GetElementByMetaID returns the first descendant of o with the given meta identifier.",
			params: []param{{"metaID", jen.String()}},
			result: rt(h, "Element"),
			zero:   jen.Nil(),
			body:   []jen.Code{jen.Return(rt(h, "FindByMetaID").Call(self(t), jen.Id("metaID")))},
		},
	}
}

func elementPresent(t *gen.Type, e *gen.Element) *jen.Statement {
	if e.List {
		return self(t).Dot(e.StructField()).Dot("Len").Call().Op(">").Lit(0)
	}
	return self(t).Dot(e.StructField()).Op("!=").Nil()
}

// hasRequired renders a predicate as one conjunction per group of
// partitions with the same required members.
func hasRequired(t *gen.Type, name, doc string, conds func(*gen.Partition) []jen.Code) *method {
	m := &method{name: name, doc: doc, result: jen.Bool(), zero: jen.False()}
	groups := groupPartitions(t, func(p *gen.Partition) string {
		return fmt.Sprintf("%#v", jen.Add(conds(p)...))
	})
	conj := func(cs []jen.Code) jen.Code {
		if len(cs) == 0 {
			return jen.True()
		}
		s := jen.Add(cs[0])
		for _, c := range cs[1:] {
			s.Op("&&").Add(c)
		}
		return s
	}
	if len(groups) == 1 {
		m.body = []jen.Code{jen.Return(conj(conds(groups[0][0])))}
		return m
	}
	var cases []jen.Code
	for _, g := range groups {
		cs := conds(g[0])
		if len(cs) == 0 {
			continue
		}
		cases = append(cases, jen.Case(partitionLits(g)...).Block(jen.Return(conj(cs))))
	}
	m.body = []jen.Code{
		jen.Switch(self(t).Dot("partition").Call()).Block(cases...),
		jen.Return(jen.True()),
	}
	return m
}

// validate reports the missing required members of o and recurses into
// its children.
func validate(h gen.GeneratorHelper, t *gen.Type) *method {
	m := &method{
		name: "Validate",
		doc: "Validate logs every required attribute or element missing from o or its\n" +
			"descendants to sink and returns the number of problems found.",
		params: []param{{"sink", rt(h, "ErrorSink")}},
		result: jen.Int(),
		zero:   jen.Lit(0),
	}
	checks := func(p *gen.Partition) []jen.Code {
		var stmts []jen.Code
		for _, a := range p.RequiredAttributes() {
			stmts = append(stmts, jen.If(notSetExpr(t, a.Attribute)).Block(
				report(h, t, t.ErrorConst(gen.MissingCond(a.Accessor())), jen.Lit(a.Name)),
				jen.Id("n").Op("++"),
			))
		}
		for _, e := range p.RequiredElements() {
			stmts = append(stmts, jen.If(jen.Op("!").Parens(elementPresent(t, e.Element))).Block(
				report(h, t, t.ErrorConst(gen.MissingCond(e.Accessor())), jen.Lit(e.Name)),
				jen.Id("n").Op("++"),
			))
		}
		return stmts
	}
	groups := groupPartitions(t, func(p *gen.Partition) string {
		return fmt.Sprintf("%#v", jen.Add(checks(p)...))
	})
	var (
		cases []jen.Code
		only  []jen.Code
	)
	for _, g := range groups {
		if stmts := checks(g[0]); len(stmts) > 0 {
			cases = append(cases, jen.Case(partitionLits(g)...).Block(stmts...))
			only = stmts
		}
	}
	if len(cases) == 0 {
		m.body = []jen.Code{
			jen.Return(rt(h, "ValidateChildren").Call(self(t), rt(h, "OrDiscard").Call(jen.Id("sink")))),
		}
		return m
	}
	check := []jen.Code{jen.Switch(self(t).Dot("partition").Call()).Block(cases...)}
	if len(groups) == 1 {
		check = only
	}
	m.body = append([]jen.Code{
		jen.Id("sink").Op("=").Add(rt(h, "OrDiscard")).Call(jen.Id("sink")),
		jen.Id("n").Op(":=").Lit(0),
	}, check...)
	m.body = append(m.body, jen.Return(jen.Id("n").Op("+").Add(rt(h, "ValidateChildren")).Call(self(t), jen.Id("sink"))))
	return m
}
