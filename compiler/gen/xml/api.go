package xml

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/vergen/compiler/gen"
)

// genAPI generates the companion declaration unit ({class}_api.go): the
// interface listing the public methods of the class.
func genAPI(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := h.NewFile(h.Pkg())
	f.Commentf("%s is the public method set of %s.", t.APIName(), t.Name)
	f.Type().Id(t.APIName()).InterfaceFunc(func(g *jen.Group) {
		g.Add(rt(h, "Element"))
		for _, m := range methodTable(h, t) {
			if m.internal || !m.exported() {
				continue
			}
			s := g.Id(m.name).Params(m.signature()...)
			if m.result != nil {
				s.Add(m.result)
			}
		}
	})
	f.Line()
	f.Var().Id("_").Id(t.APIName()).Op("=").Parens(jen.Op("*").Id(t.Name)).Parens(jen.Nil())
	return f
}
