package xml

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/vergen/compiler/gen"
)

// attributeMethods returns the accessor quartet of a, plus the string
// overloads of enum attributes.
func attributeMethods(h gen.GeneratorHelper, t *gen.Type, a *gen.Attribute) []*method {
	x := a.Accessor()
	field := self(t).Dot(a.StructField())
	get := &method{
		name:   x,
		doc:    fmt.Sprintf("%s returns the value of the %q attribute.", x, a.Name),
		result: goType(a),
		zero:   sentinel(a),
		body:   []jen.Code{jen.Return(field)},
	}
	if a.Comment != "" {
		get.doc += "\n" + a.Comment
	}
	ms := []*method{
		get,
		{
			name:   "IsSet" + x,
			doc:    fmt.Sprintf("IsSet%s reports whether the %q attribute is set.", x, a.Name),
			result: jen.Bool(),
			zero:   jen.False(),
			body:   []jen.Code{jen.Return(isSetExpr(t, a))},
		},
		{
			name:   "Set" + x,
			doc:    setDoc(t, a),
			params: []param{{"v", goType(a)}},
			result: opReturn(h),
			zero:   rt(h, "InvalidObject"),
			body:   setBody(h, t, a),
		},
		{
			name:   "Unset" + x,
			doc:    unsetDoc(a),
			result: opReturn(h),
			zero:   rt(h, "InvalidObject"),
			body:   unsetBody(h, t, a),
		},
	}
	if a.IsEnum() {
		ms = append(ms,
			&method{
				name:   x + "String",
				doc:    fmt.Sprintf("%sString returns the string form of the %q attribute.", x, a.Name),
				result: jen.String(),
				zero:   jen.Lit(""),
				body:   []jen.Code{jen.Return(field.Clone().Dot("String").Call())},
			},
			&method{
				name: "Set" + x + "String",
				doc: fmt.Sprintf("Set%sString sets the %q attribute from its string form. An unknown\n"+
					"string leaves the attribute at %s.", x, a.Name, a.Enum.InvalidConst()),
				params: []param{{"s", jen.String()}},
				result: opReturn(h),
				zero:   rt(h, "InvalidObject"),
				body:   []jen.Code{jen.Return(self(t).Dot("Set" + x).Call(jen.Id(a.Enum.ParseFunc()).Call(jen.Id("s"))))},
			},
		)
	}
	return ms
}

func setDoc(t *gen.Type, a *gen.Attribute) string {
	doc := fmt.Sprintf("Set%s sets the %q attribute.", a.Accessor(), a.Name)
	if !t.LegalEverywhere(a.Name) {
		doc += fmt.Sprintf(" It returns UnexpectedAttribute when\nthe attribute is not legal for the version of the %s.", t.Name)
	}
	switch a.Contract.Validation {
	case gen.SyntaxValidation:
		doc += "\nValues that are not valid identifiers are rejected."
	case gen.MembershipValidation:
		doc += fmt.Sprintf("\nAn invalid value resets the attribute to %s.", a.Enum.InvalidConst())
	}
	return doc
}

func setBody(h gen.GeneratorHelper, t *gen.Type, a *gen.Attribute) []jen.Code {
	field := self(t).Dot(a.StructField())
	body := gate(t, a.Name, rt(h, "UnexpectedAttribute"))
	switch a.Contract.Validation {
	case gen.SyntaxValidation:
		body = append(body, jen.If(jen.Op("!").Add(rt(h, a.Contract.ValidateFunc)).Call(jen.Id("v"))).Block(
			jen.Return(rt(h, "InvalidAttributeValue")),
		))
	case gen.MembershipValidation:
		body = append(body, jen.If(jen.Op("!").Id("v").Dot("IsValid").Call()).Block(
			field.Clone().Op("=").Add(sentinel(a)),
			jen.Return(rt(h, "InvalidAttributeValue")),
		))
	}
	if a.Contract.IsSetFlag {
		body = append(body, jen.List(field.Clone(), self(t).Dot(a.IsSetField())).Op("=").List(jen.Id("v"), jen.True()))
	} else {
		body = append(body, field.Clone().Op("=").Id("v"))
	}
	return append(body, jen.Return(success(h)))
}

func unsetDoc(a *gen.Attribute) string {
	doc := fmt.Sprintf("Unset%s resets the %q attribute.", a.Accessor(), a.Name)
	if a.IsRequired() {
		doc += " It returns OperationFailed when the attribute\nis required and already unset."
	}
	return doc
}

func unsetBody(h gen.GeneratorHelper, t *gen.Type, a *gen.Attribute) []jen.Code {
	field := self(t).Dot(a.StructField())
	var body []jen.Code
	if a.IsRequired() {
		cond := notSetExpr(t, a)
		if in := partitionCond(t, requiredIn(t, a), false); in != nil {
			cond = in.Op("&&").Add(cond)
		}
		body = append(body, jen.If(cond).Block(jen.Return(rt(h, "OperationFailed"))))
	}
	if a.Contract.IsSetFlag {
		body = append(body, jen.List(field.Clone(), self(t).Dot(a.IsSetField())).Op("=").List(sentinel(a), jen.False()))
	} else {
		body = append(body, field.Clone().Op("=").Add(sentinel(a)))
	}
	return append(body, jen.Return(success(h)))
}

// notSetExpr returns the expression reporting whether a is unset.
func notSetExpr(t *gen.Type, a *gen.Attribute) *jen.Statement {
	switch {
	case a.Contract.IsSetFlag:
		return jen.Op("!").Add(self(t).Dot(a.IsSetField()))
	case a.IsEnum():
		return self(t).Dot(a.StructField()).Op("==").Id(a.Enum.InvalidConst())
	default:
		return self(t).Dot(a.StructField()).Op("==").Lit("")
	}
}
