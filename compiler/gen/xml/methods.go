package xml

import (
	"go/token"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/vergen/compiler/gen"
)

type (
	// method is one entry of the accessor table of a class. The class unit,
	// its companion interface and its façade are rendered from the same
	// table, so the three never drift apart.
	method struct {
		name   string
		doc    string
		params []param
		// result is nil for methods returning nothing.
		result jen.Code
		// zero is what the façade returns on a nil receiver.
		zero jen.Code
		body []jen.Code
		// internal methods serve the document reader and writer and are
		// left out of the façade.
		internal bool
	}

	param struct {
		name string
		typ  jen.Code
	}
)

// methodTable returns the methods of the concrete class t in the order they
// are rendered.
func methodTable(h gen.GeneratorHelper, t *gen.Type) []*method {
	var ms []*method
	ms = append(ms, baseMethods(h, t)...)
	for _, a := range t.Attributes {
		ms = append(ms, attributeMethods(h, t, a)...)
	}
	for _, e := range t.Children {
		ms = append(ms, childMethods(h, t, e)...)
	}
	for _, e := range t.Lists {
		ms = append(ms, listMethods(h, t, e)...)
	}
	ms = append(ms, validateMethods(h, t)...)
	ms = append(ms, serializeMethods(h, t)...)
	return ms
}

// signature returns the parameter list of m.
func (m *method) signature() []jen.Code {
	ps := make([]jen.Code, len(m.params))
	for i, p := range m.params {
		ps[i] = jen.Id(p.name).Add(p.typ)
	}
	return ps
}

// args returns the parameter names of m as call arguments.
func (m *method) args() []jen.Code {
	as := make([]jen.Code, len(m.params))
	for i, p := range m.params {
		as[i] = jen.Id(p.name)
	}
	return as
}

func (m *method) exported() bool { return token.IsExported(m.name) }

// renderMethods declares the methods of ms on t.
func renderMethods(f *jen.File, t *gen.Type, ms []*method) {
	for _, m := range ms {
		comment(f, m.doc)
		s := f.Func().Params(recv(t)).Id(m.name).Params(m.signature()...)
		if m.result != nil {
			s.Add(m.result)
		}
		s.Block(m.body...)
		f.Line()
	}
}

// comment adds doc as line comments, one per line of doc.
func comment(f *jen.File, doc string) {
	if doc == "" {
		return
	}
	for _, l := range strings.Split(doc, "\n") {
		f.Comment(l)
	}
}
