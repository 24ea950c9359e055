package xml

import (
	"fmt"
	"slices"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/vergen/compiler/gen"
)

// serializeMethods returns the document reader and writer of t.
func serializeMethods(h gen.GeneratorHelper, t *gen.Type) []*method {
	ms := []*method{
		readAttributes(h, t),
		writeAttributes(h, t),
		createObject(h, t),
		children(h, t),
	}
	for _, a := range t.Attributes {
		ms = append(ms, readAttribute(h, t, a))
	}
	return ms
}

func sinkParams(h gen.GeneratorHelper) []param {
	return []param{
		{"attrs", jen.Op("*").Add(rt(h, "Attributes"))},
		{"sink", rt(h, "ErrorSink")},
	}
}

// readAttributes checks the attribute list against exactly the attributes
// of the instance partition, then reads them one by one.
func readAttributes(h gen.GeneratorHelper, t *gen.Type) *method {
	known := make([]jen.Code, len(t.Attributes))
	for i, a := range t.Attributes {
		known[i] = jen.Lit(a.Name)
	}
	body := []jen.Code{
		jen.Id("sink").Op("=").Add(rt(h, "OrDiscard")).Call(jen.Id("sink")),
		jen.Id("check").Op(":=").Func().Params(jen.Id("expected").Op("...").String()).Block(
			jen.List(jen.Id("unexpected"), jen.Id("unknown")).Op(":=").Id("attrs").Dot("Check").Call(
				jen.Id("expected"), jen.Index().String().Values(known...),
			),
			jen.For(jen.List(jen.Id("_"), jen.Id("name")).Op(":=").Range().Id("unexpected")).Block(
				diagnostic(h, t.ErrorConst(gen.CondUnexpectedAttribute), jen.Id("name")),
			),
			jen.For(jen.List(jen.Id("_"), jen.Id("name")).Op(":=").Range().Id("unknown")).Block(
				diagnostic(h, t.ErrorConst(gen.CondUnknownAttribute), jen.Id("name")),
			),
		),
	}
	cases := make([]jen.Code, 0, len(t.Partitions))
	for _, p := range t.Partitions {
		names := make([]jen.Code, len(p.Attributes))
		for i, pa := range p.Attributes {
			names[i] = jen.Lit(pa.Name)
		}
		stmts := []jen.Code{jen.Id("check").Call(names...)}
		for _, pa := range p.Attributes {
			args := []jen.Code{jen.Id("attrs"), jen.Id("sink")}
			if pa.IsRequired() {
				args = append(args, jen.Lit(pa.Required))
			}
			stmts = append(stmts, self(t).Dot(readerName(pa.Attribute)).Call(args...))
		}
		cases = append(cases, jen.Case(jen.Lit(p.Index)).Block(stmts...))
	}
	body = append(body, jen.Switch(self(t).Dot("partition").Call()).Block(cases...))
	return &method{
		name: "ReadAttributes",
		doc: "ReadAttributes implements docmodel.Element. Attributes not legal for the\n" +
			"version are reported to sink and skipped; a bad value never stops the read.",
		params:   sinkParams(h),
		body:     body,
		internal: true,
	}
}

func readerName(a *gen.Attribute) string { return "read" + a.Accessor() }

// readAttribute returns the reader of one attribute. Parse errors of the
// runtime readers are replaced by the MustBe diagnostic of the attribute.
func readAttribute(h gen.GeneratorHelper, t *gen.Type, a *gen.Attribute) *method {
	field := func() *jen.Statement { return self(t).Dot(a.StructField()) }
	m := &method{
		name:     readerName(a),
		params:   sinkParams(h),
		internal: true,
	}
	missing := jen.Null()
	if a.IsRequired() {
		m.params = append(m.params, param{"required", jen.Bool()})
		missing = jen.If(jen.Id("required")).Block(
			diagnostic(h, t.ErrorConst(gen.MissingCond(a.Accessor())), jen.Lit(a.Name)),
		)
	}
	name := jen.Lit(a.Name)
	switch {
	case a.IsEnum():
		m.body = []jen.Code{
			jen.List(jen.Id("s"), jen.Id("ok")).Op(":=").Id("attrs").Dot("ReadString").Call(name),
			jen.If(jen.Op("!").Id("ok")).Block(missing, jen.Return()),
			field().Op("=").Id(a.Enum.ParseFunc()).Call(jen.Id("s")),
			jen.If(jen.Op("!").Add(field()).Dot("IsValid").Call()).Block(
				diagnostic(h, t.ErrorConst(gen.MustBeCond(a)), jen.Id("s")),
			),
		}
	case a.Contract.Validation == gen.SyntaxValidation:
		m.body = []jen.Code{
			jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").Id("attrs").Dot("ReadString").Call(name),
			jen.Switch().Block(
				jen.Case(jen.Op("!").Id("ok")).Block(missing),
				jen.Case(jen.Op("!").Add(rt(h, a.Contract.ValidateFunc)).Call(jen.Id("v"))).Block(
					diagnostic(h, t.ErrorConst(gen.MustBeCond(a)), jen.Id("v")),
				),
				jen.Default().Block(field().Op("=").Id("v")),
			),
		}
	case a.Contract.IsSetFlag:
		m.body = []jen.Code{
			jen.List(jen.Id("v"), jen.Id("ok"), jen.Err()).Op(":=").Id("attrs").Dot(a.Contract.ReadMethod).Call(name),
			jen.Switch().Block(
				jen.Case(jen.Err().Op("!=").Nil()).Block(
					diagnostic(h, t.ErrorConst(gen.MustBeCond(a)), jen.Err().Dot("Error").Call()),
				),
				jen.Case(jen.Id("ok")).Block(
					jen.List(field(), self(t).Dot(a.IsSetField())).Op("=").List(jen.Id("v"), jen.True()),
				),
				jen.Default().Block(missing),
			),
		}
	default:
		m.body = []jen.Code{
			jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").Id("attrs").Dot("ReadString").Call(name),
			jen.If(jen.Op("!").Id("ok")).Block(missing, jen.Return()),
			field().Op("=").Id("v"),
		}
	}
	return m
}

// writeAttributes writes the set attributes of the instance partition in
// declared order. Partitions with the same attributes share one branch.
func writeAttributes(h gen.GeneratorHelper, t *gen.Type) *method {
	write := func(p *gen.Partition) []jen.Code {
		var stmts []jen.Code
		for _, a := range p.Attributes {
			v := self(t).Dot(a.StructField())
			if a.IsEnum() {
				v = v.Dot("String").Call()
			}
			stmts = append(stmts, jen.If(isSetExpr(t, a.Attribute)).Block(
				jen.Id("w").Dot(a.Contract.WriteMethod).Call(jen.Lit(a.Name), v),
			))
		}
		return stmts
	}
	groups := groupPartitions(t, func(p *gen.Partition) string { return fmt.Sprint(p.AttributeNames()) })
	var body []jen.Code
	if len(groups) == 1 {
		body = write(groups[0][0])
	} else {
		cases := make([]jen.Code, len(groups))
		for i, g := range groups {
			cases[i] = jen.Case(partitionLits(g)...).Block(write(g[0])...)
		}
		body = []jen.Code{jen.Switch(self(t).Dot("partition").Call()).Block(cases...)}
	}
	return &method{
		name:     "WriteAttributes",
		doc:      "WriteAttributes implements docmodel.Element.",
		params:   []param{{"w", jen.Op("*").Add(rt(h, "AttributeWriter"))}},
		body:     body,
		internal: true,
	}
}

// createObject maps the tags of the children and lists legal for the
// version to newly created, owned objects.
func createObject(h gen.GeneratorHelper, t *gen.Type) *method {
	var cases []jen.Code
	for _, e := range t.Elements() {
		legal := partitionCond(t, t.PartitionsOf(e.Name), false)
		wrap := func(stmts ...jen.Code) []jen.Code {
			if legal == nil {
				return stmts
			}
			return []jen.Code{jen.If(legal).Block(stmts...)}
		}
		switch {
		case e.List && legal == nil:
			cases = append(cases, jen.Case(jen.Lit(e.ListType.Element)).Block(
				jen.Return(self(t).Dot(e.StructField())),
			))
		case e.List:
			cases = append(cases, jen.Case(jen.Lit(e.ListType.Element)).Block(
				jen.If(legal).Block(jen.Return(self(t).Dot(e.StructField()))),
				diagnostic(h, e.ListType.UnsupportedVersionConst(), jen.Id("name")),
				jen.Return(jen.Nil()),
			))
		case e.Type.Abstract:
			for _, v := range e.Type.Variants {
				cases = append(cases, jen.Case(jen.Lit(v.Element)).Block(wrap(
					jen.If(
						jen.Id("v").Op(":=").Add(self(t)).Dot("Create"+e.Accessor()).Call(jen.Id(e.Type.KindConst(v))),
						jen.Id("v").Op("!=").Nil(),
					).Block(jen.Return(jen.Id("v"))),
					diagnostic(h, v.ErrorConst(gen.CondUnsupportedVersion), jen.Id("name")),
					jen.Return(jen.Nil()),
				)...))
			}
		default:
			cases = append(cases, jen.Case(jen.Lit(e.Tag())).Block(wrap(
				jen.If(
					jen.Id("v").Op(":=").Add(self(t)).Dot("Create"+e.Accessor()).Call(),
					jen.Id("v").Op("!=").Nil(),
				).Block(jen.Return(jen.Id("v"))),
				diagnostic(h, e.Type.ErrorConst(gen.CondUnsupportedVersion), jen.Id("name")),
				jen.Return(jen.Nil()),
			)...))
		}
	}
	body := []jen.Code{jen.Id("sink").Op("=").Add(rt(h, "OrDiscard")).Call(jen.Id("sink"))}
	if len(cases) > 0 {
		body = append(body, jen.Switch(jen.Id("name")).Block(cases...))
	}
	body = append(body,
		diagnostic(h, t.ErrorConst(gen.CondUnknownElement), jen.Id("name")),
		jen.Return(jen.Nil()),
	)
	return &method{
		name:     "CreateObject",
		doc:      "CreateObject implements docmodel.Element.",
		params:   append([]param{{"name", jen.String()}}, sinkParams(h)...),
		result:   rt(h, "Element"),
		zero:     jen.Nil(),
		body:     body,
		internal: true,
	}
}

// children returns the set singular children followed by the non-empty
// lists, in declaration order.
func children(h gen.GeneratorHelper, t *gen.Type) *method {
	var body []jen.Code
	if len(t.Children)+len(t.Lists) == 0 {
		body = []jen.Code{jen.Return(jen.Nil())}
	} else {
		body = append(body, jen.Var().Id("cs").Index().Add(rt(h, "Element")))
		for _, e := range t.Children {
			var c jen.Code = self(t).Dot(e.StructField())
			if e.Retagged() {
				c = rt(h, "WithTag").Call(jen.Lit(e.Tag()), self(t).Dot(e.StructField()))
			}
			body = append(body, jen.If(self(t).Dot(e.StructField()).Op("!=").Nil()).Block(
				jen.Id("cs").Op("=").Append(jen.Id("cs"), c),
			))
		}
		for _, e := range t.Lists {
			body = append(body, jen.If(self(t).Dot(e.StructField()).Dot("Len").Call().Op(">").Lit(0)).Block(
				jen.Id("cs").Op("=").Append(jen.Id("cs"), self(t).Dot(e.StructField())),
			))
		}
		body = append(body, jen.Return(jen.Id("cs")))
	}
	return &method{
		name: "Children",
		doc: "Children implements docmodel.Element. Singular children come first, then\n" +
			"the non-empty collections.",
		result:   jen.Index().Add(rt(h, "Element")),
		zero:     jen.Nil(),
		body:     body,
		internal: true,
	}
}

// groupPartitions groups the partitions of t by key, in order of first
// appearance.
func groupPartitions(t *gen.Type, key func(*gen.Partition) string) [][]*gen.Partition {
	var (
		keys   []string
		groups [][]*gen.Partition
	)
	for _, p := range t.Partitions {
		k := key(p)
		if i := slices.Index(keys, k); i >= 0 {
			groups[i] = append(groups[i], p)
			continue
		}
		keys = append(keys, k)
		groups = append(groups, []*gen.Partition{p})
	}
	return groups
}

func partitionLits(ps []*gen.Partition) []jen.Code {
	ls := make([]jen.Code, len(ps))
	for i, p := range ps {
		ls[i] = jen.Lit(p.Index)
	}
	return ls
}
