package xml

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/vergen/compiler/gen"
)

var severities = map[string]string{
	"info":    "SeverityInfo",
	"warning": "SeverityWarning",
	"error":   "SeverityError",
	"fatal":   "SeverityFatal",
}

// genErrors generates the error-code constants and table (errors.go).
func genErrors(h gen.GeneratorHelper) *jen.File {
	f := h.NewFile(h.Pkg())
	graph := h.Graph()
	var codes []gen.ErrorCode
	if graph.Errors != nil {
		codes = graph.Errors.Codes()
	}
	f.Comment("Error codes of the package.")
	f.Const().DefsFunc(func(g *jen.Group) {
		for _, c := range codes {
			g.Id("Err" + c.Name).Op("=").Lit(c.ID)
		}
	})
	f.Comment("Errors is the error-code table of the package.")
	f.Var().Id("Errors").Op("=").Op("&").Add(rt(h, "ErrorTable")).Values(jen.Dict{
		jen.Id("Package"): jen.Lit(graph.Package),
		jen.Id("Infos"): jen.Index().Add(rt(h, "ErrorInfo")).ValuesFunc(func(g *jen.Group) {
			for _, c := range codes {
				sev, ok := severities[c.Severity]
				if !ok {
					sev = "SeverityError"
				}
				g.Values(jen.Dict{
					jen.Id("ID"):       jen.Id("Err" + c.Name),
					jen.Id("Name"):     jen.Lit(c.Name),
					jen.Id("Category"): jen.Lit(c.Category),
					jen.Id("Severity"): rt(h, sev),
					jen.Id("Message"):  jen.Lit(c.Message),
				})
			}
		}),
	})
	return f
}

// genNamespaces generates the supported version tuples and the namespace
// constructor (namespaces.go).
func genNamespaces(h gen.GeneratorHelper) *jen.File {
	f := h.NewFile(h.Pkg())
	graph := h.Graph()
	f.Comment("Supported version tuples.")
	f.Var().DefsFunc(func(g *jen.Group) {
		for _, v := range graph.Versions {
			g.Id(v.Ident).Op("=").Qual(h.VersionPkg(), "New").Call(
				jen.Lit(int(v.Tuple.Level)), jen.Lit(int(v.Tuple.Version)), jen.Lit(int(v.Tuple.Package)),
			)
		}
	})
	f.Comment("SupportedVersions lists the supported version tuples in declaration order.")
	f.Var().Id("SupportedVersions").Op("=").Qual(h.VersionPkg(), "Set").ValuesFunc(func(g *jen.Group) {
		for _, v := range graph.Versions {
			g.Id(v.Ident)
		}
	})
	prefix := graph.Prefix
	if prefix == "" {
		prefix = graph.Package
	}
	ns := func(prefix, uri string) jen.Code {
		return rt(h, "Namespace").Values(jen.Dict{
			jen.Id("Prefix"): jen.Lit(prefix),
			jen.Id("URI"):    jen.Lit(uri),
		})
	}
	f.Comment("NewNamespaces returns the namespaces of the given level, version and")
	f.Comment("package version, or nil when the tuple is not supported.")
	f.Func().Id("NewNamespaces").Params(jen.List(jen.Id("level"), jen.Id("ver"), jen.Id("pkg")).Uint()).Op("*").Add(rt(h, "Namespaces")).Block(
		jen.Id("t").Op(":=").Qual(h.VersionPkg(), "New").Call(jen.Id("level"), jen.Id("ver"), jen.Id("pkg")),
		jen.Switch(jen.Id("t")).BlockFunc(func(g *jen.Group) {
			for _, v := range graph.Versions {
				uris := []jen.Code{ns("", v.CoreURI)}
				required := v.CoreURI
				if v.PackageURI != "" {
					uris = append(uris, ns(prefix, v.PackageURI))
					required = v.PackageURI
				}
				g.Case(jen.Id(v.Ident)).Block(jen.Return(
					rt(h, "NewNamespaces").Call(append([]jen.Code{jen.Id("t"), jen.Lit(required)}, uris...)...),
				))
			}
		}),
		jen.Return(jen.Nil()),
	)
	f.Line()
	f.Comment("PackageName is the name of the generated package.")
	f.Const().Id("PackageName").Op("=").Lit(graph.Package)
	return f
}
