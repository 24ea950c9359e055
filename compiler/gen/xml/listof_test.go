package xml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenListConcrete(t *testing.T) {
	d, jg := newTestDialect(t)
	src := code(d.GenList(mustList(t, jg, "ListOfSpecies")))
	for _, want := range []string{
		"type ListOfSpecies struct {\n\tdocmodel.ListOf[*Species]\n}",
		"func newListOfSpecies(ns *docmodel.Namespaces) *ListOfSpecies {",
		"func (l *ListOfSpecies) ElementName() string {\n\treturn \"listOfSpecies\"\n}",
		"if rc := docmodel.CheckAddable(l, v); rc != docmodel.OperationSuccess {\n\t\treturn rc\n\t}",
		"if id := v.ID(); id != \"\" && l.HasID(id) {\n\t\treturn docmodel.DuplicateObjectID\n\t}\n\tl.Append(l, v.Clone())",
		"func (l *ListOfSpecies) Create() *Species {\n\tv := NewSpeciesWithNamespaces(l.Namespaces().Clone())\n\tif v == nil {\n\t\treturn nil\n\t}\n\tl.Append(l, v)\n\treturn v\n}",
		"case \"species\":\n\t\tif v := l.Create(); v != nil {\n\t\t\treturn v\n\t\t}\n\t\tsink.Log(Errors.Diagnostic(ErrSpeciesUnsupportedVersion, attrs, name))",
		"sink.Log(Errors.Diagnostic(ErrListOfSpeciesUnknownElement, attrs, name))",
		"l.CloneInto(&c.ListOf, c, (*Species).Clone)",
		"func (l *ListOfSpecies) Validate(sink docmodel.ErrorSink) int {\n\treturn docmodel.ValidateChildren(l, sink)\n}",
		"var _ docmodel.Element = (*ListOfSpecies)(nil)",
	} {
		assert.Contains(t, src, want)
	}
}

func TestGenListAbstract(t *testing.T) {
	d, jg := newTestDialect(t)
	src := code(d.GenList(mustList(t, jg, "ListOfRules")))
	for _, want := range []string{
		"type ListOfRules struct {\n\tdocmodel.ListOf[Rule]\n}",
		"func (l *ListOfRules) Create(kind RuleKind) Rule {\n\tv := newRule(kind, l.Namespaces().Clone())",
		"func (l *ListOfRules) CreateAssignmentRule() *AssignmentRule {",
		"case \"rateRule\":\n\t\tif v := l.CreateRateRule(); v != nil {",
		"l.CloneInto(&c.ListOf, c, func(v Rule) Rule {\n\t\treturn v.cloneRule()\n\t})",
		"l.Append(l, v.cloneRule())",
	} {
		assert.Contains(t, src, want)
	}
	assert.NotContains(t, src, "HasID")
}
