package xml

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/vergen/compiler/gen"
	"github.com/syssam/vergen/schema/field"
)

// rt returns a qualified identifier of the docmodel runtime.
func rt(h gen.GeneratorHelper, name string) *jen.Statement {
	return jen.Qual(h.RuntimePkg(), name)
}

// opReturn is the result type of mutating methods.
func opReturn(h gen.GeneratorHelper) *jen.Statement { return rt(h, "OperationReturn") }

func success(h gen.GeneratorHelper) *jen.Statement { return rt(h, "OperationSuccess") }

// recv is the receiver of the methods of t.
func recv(t *gen.Type) *jen.Statement {
	return jen.Id(t.Receiver()).Op("*").Id(t.Name)
}

// self refers to the receiver inside a method body.
func self(t *gen.Type) *jen.Statement { return jen.Id(t.Receiver()) }

// goType returns the stored Go type of a.
func goType(a *gen.Attribute) jen.Code {
	if a.IsEnum() {
		return jen.Id(a.Enum.Name)
	}
	return jen.Id(a.Contract.GoType)
}

// sentinel returns the unset value of a.
func sentinel(a *gen.Attribute) jen.Code {
	s := a.Sentinel()
	if name, ok := strings.CutPrefix(s, "math."); ok {
		name, call := strings.CutSuffix(name, "()")
		c := jen.Qual("math", name)
		if call {
			c = c.Call()
		}
		return c
	}
	return jen.Id(s)
}

// isSetExpr returns the expression reporting whether a is set on the
// receiver of t.
func isSetExpr(t *gen.Type, a *gen.Attribute) *jen.Statement {
	switch {
	case a.Contract.IsSetFlag:
		return self(t).Dot(a.IsSetField())
	case a.IsEnum():
		return self(t).Dot(a.StructField()).Op("!=").Id(a.Enum.InvalidConst())
	default:
		return self(t).Dot(a.StructField()).Op("!=").Lit("")
	}
}

// partitionCond returns the condition holding when the partition of the
// receiver is one of ps, or nil when ps covers every partition of t. With
// negate set, the condition holds when the partition is not one of ps.
func partitionCond(t *gen.Type, ps []int, negate bool) *jen.Statement {
	if len(ps) == len(t.Partitions) {
		return nil
	}
	p := self(t).Dot("partition").Call()
	switch {
	case len(ps) == 0:
		return jen.Lit(negate)
	case len(ps) == 1 && negate:
		return p.Op("!=").Lit(ps[0])
	case len(ps) == 1:
		return p.Op("==").Lit(ps[0])
	}
	idx := make([]jen.Code, len(ps))
	for i, n := range ps {
		idx[i] = jen.Lit(n)
	}
	c := jen.Qual("slices", "Contains").Call(jen.Index().Int().Values(idx...), p)
	if negate {
		return jen.Op("!").Add(c)
	}
	return c
}

// gate returns the statements rejecting a call when name is not legal for
// the version of the receiver.
func gate(t *gen.Type, name string, reject ...jen.Code) []jen.Code {
	cond := partitionCond(t, t.PartitionsOf(name), true)
	if cond == nil {
		return nil
	}
	return []jen.Code{jen.If(cond).Block(jen.Return(reject...))}
}

// requiredIn returns the indexes of the partitions a is required in.
func requiredIn(t *gen.Type, a *gen.Attribute) []int {
	var ps []int
	for _, p := range t.Partitions {
		for _, pa := range p.RequiredAttributes() {
			if pa.Attribute == a {
				ps = append(ps, p.Index)
			}
		}
	}
	return ps
}

// diagnostic logs the error code const to sink with the given detail.
func diagnostic(h gen.GeneratorHelper, code string, detail jen.Code) *jen.Statement {
	if detail == nil {
		detail = jen.Lit("")
	}
	return jen.Id("sink").Dot("Log").Call(
		jen.Id("Errors").Dot("Diagnostic").Call(jen.Id(code), jen.Id("attrs"), detail),
	)
}

// newChild returns the expression creating an instance of c under the
// namespaces of the receiver of t.
func newChild(t *gen.Type, c *gen.Type) *jen.Statement {
	return jen.Id(c.NamespacesConstructor()).Call(self(t).Dot("Namespaces").Call().Dot("Clone").Call())
}

// itemType returns the Go type held by slots of class c: the interface of
// an abstract class, or a pointer to a concrete one.
func itemType(c *gen.Type) *jen.Statement {
	if c.Abstract {
		return jen.Id(c.Name)
	}
	return jen.Op("*").Id(c.Name)
}

// cloneExpr returns the deep copy of v, an item of class c.
func cloneExpr(c *gen.Type, v *jen.Statement) *jen.Statement {
	if c.Abstract {
		return v.Dot(c.CloneMethod()).Call()
	}
	return v.Dot("Clone").Call()
}

// lowerFirst lower-cases the first letter of an exported identifier.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// sharedAttributes returns the attributes of the abstract class t that
// every variant carries with the same kind.
func sharedAttributes(t *gen.Type) []*gen.Attribute {
	var as []*gen.Attribute
	for _, a := range t.Attributes {
		shared := true
		for _, v := range t.Variants {
			if !hasAttribute(v, a.Name, a.Kind) {
				shared = false
				break
			}
		}
		if shared {
			as = append(as, a)
		}
	}
	return as
}

func hasAttribute(t *gen.Type, name string, k field.Kind) bool {
	for _, a := range t.Attributes {
		if a.Name == name && a.Kind == k {
			return true
		}
	}
	return false
}

// report logs the error code const to sink, positioned at the receiver.
func report(h gen.GeneratorHelper, t *gen.Type, code string, detail jen.Code) *jen.Statement {
	return jen.Id("sink").Dot("Log").Call(
		jen.Id("Errors").Dot("DiagnosticAt").Call(jen.Id(code), self(t).Dot("AsNode").Call(), detail),
	)
}
