package xml

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/vergen/compiler/gen"
)

// genEnums generates the enum types of the package (enums.go).
func genEnums(h gen.GeneratorHelper) *jen.File {
	f := h.NewFile(h.Pkg())
	for _, e := range h.Graph().Enums {
		genEnum(f, e)
	}
	return f
}

func genEnum(f *jen.File, e *gen.Enum) {
	strs := lowerFirst(e.Name) + "Strings"
	f.Commentf("%s is an enumeration. %s marks an unset or unknown value.", e.Name, e.InvalidConst())
	f.Type().Id(e.Name).Int()
	f.Const().DefsFunc(func(g *jen.Group) {
		for i, v := range e.Values {
			if i == 0 {
				g.Id(e.Const(v)).Id(e.Name).Op("=").Iota()
				continue
			}
			g.Id(e.Const(v))
		}
	})
	f.Var().Id(strs).Op("=").Index(jen.Op("...")).String().ValuesFunc(func(g *jen.Group) {
		for _, v := range e.Values {
			g.Lit(v.Value)
		}
	})
	f.Commentf("%s lists the valid values of %s in declaration order.", e.ValuesVar(), e.Name)
	f.Var().Id(e.ValuesVar()).Op("=").Index().Id(e.Name).ValuesFunc(func(g *jen.Group) {
		for _, v := range e.Valid() {
			g.Id(e.Const(v))
		}
	})
	f.Comment("String returns the document form of the value.")
	f.Func().Params(jen.Id("v").Id(e.Name)).Id("String").Params().String().Block(
		jen.If(jen.Id("v").Op(">=").Lit(0).Op("&&").Int().Call(jen.Id("v")).Op("<").Len(jen.Id(strs))).Block(
			jen.Return(jen.Id(strs).Index(jen.Id("v"))),
		),
		jen.Return(jen.Id(strs).Index(jen.Id(e.InvalidConst()))),
	)
	f.Comment("IsValid reports whether v is a declared value other than the sentinel.")
	f.Func().Params(jen.Id("v").Id(e.Name)).Id("IsValid").Params().Bool().Block(
		jen.Return(jen.Id("v").Op(">=").Lit(0).Op("&&").Int().Call(jen.Id("v")).Op("<").Len(jen.Id(strs)).Op("&&").Id("v").Op("!=").Id(e.InvalidConst())),
	)
	f.Commentf("%s returns the value with document form s, or %s.", e.ParseFunc(), e.InvalidConst())
	f.Func().Id(e.ParseFunc()).Params(jen.Id("s").String()).Id(e.Name).Block(
		jen.For(jen.List(jen.Id("i"), jen.Id("v")).Op(":=").Range().Id(strs)).Block(
			jen.If(jen.Id("v").Op("==").Id("s").Op("&&").Id(e.Name).Call(jen.Id("i")).Op("!=").Id(e.InvalidConst())).Block(
				jen.Return(jen.Id(e.Name).Call(jen.Id("i"))),
			),
		),
		jen.Return(jen.Id(e.InvalidConst())),
	)
	f.Line()
}
