package xml

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/vergen/compiler/gen"
)

// facadeName returns the name of the façade function of method m of t.
func facadeName(t *gen.Type, m string) string { return t.Name + "_" + m }

// genFacade generates the procedural façade ({class}_facade.go). Every
// public method of the class gets a free function taking the object as
// its first argument and tolerating a nil object.
func genFacade(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := h.NewFile(h.Pkg())
	f.Commentf("%s is the procedural form of %s.", facadeName(t, "New"), t.Constructor())
	f.Func().Id(facadeName(t, "New")).Params(jen.List(jen.Id("level"), jen.Id("ver"), jen.Id("pkg")).Uint()).Op("*").Id(t.Name).Block(
		jen.Return(jen.Id(t.Constructor()).Call(jen.Id("level"), jen.Id("ver"), jen.Id("pkg"))),
	)
	f.Line()
	for _, m := range methodTable(h, t) {
		if m.internal || !m.exported() || (m.result != nil && m.zero == nil) {
			continue
		}
		name := facadeName(t, m.name)
		call := self(t).Dot(m.name).Call(m.args()...)
		var body []jen.Code
		if m.result == nil {
			f.Commentf("%s is the procedural form of %s.%s. It does nothing when o is nil.", name, t.Name, m.name)
			body = []jen.Code{
				jen.If(self(t).Op("==").Nil()).Block(jen.Return()),
				call,
			}
		} else {
			comment(f, facadeDoc(t, m, name))
			body = []jen.Code{
				jen.If(self(t).Op("==").Nil()).Block(jen.Return(m.zero)),
				jen.Return(call),
			}
		}
		params := append([]jen.Code{recv(t)}, m.signature()...)
		s := f.Func().Id(name).Params(params...)
		if m.result != nil {
			s.Add(m.result)
		}
		s.Block(body...)
		f.Line()
	}
	return f
}

func facadeDoc(t *gen.Type, m *method, name string) string {
	return fmt.Sprintf("%s is the procedural form of %s.%s. It returns %#v when o\nis nil.", name, t.Name, m.name, m.zero)
}
