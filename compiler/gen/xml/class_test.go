package xml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenClassConstructors(t *testing.T) {
	d, jg := newTestDialect(t)
	src := code(d.GenClass(mustType(t, jg, "Species")))
	for _, want := range []string{
		"type Species struct {\n\tdocmodel.Node\n",
		"func NewSpecies(level, ver, pkg uint) *Species {\n\treturn NewSpeciesWithNamespaces(NewNamespaces(level, ver, pkg))\n}",
		"func NewSpeciesWithNamespaces(ns *docmodel.Namespaces) *Species {\n\tif ns == nil || speciesPartition(ns.Tuple()) < 0 {\n\t\treturn nil\n\t}",
		"initialAmount: math.NaN()",
		"func speciesPartition(v version.Tuple) int {\n\tswitch v {\n\tcase L3V1P1:\n\t\treturn 0\n\tcase L3V2P1:\n\t\treturn 1\n\t}\n\treturn -1\n}",
		"\treturn -1\n}\n\n// partition returns the partition of the version of o.\nfunc (o *Species) partition() int {\n\treturn speciesPartition(o.VersionTuple())\n}",
		"var _ docmodel.Element = (*Species)(nil)",
	} {
		assert.Contains(t, src, want)
	}

	src = code(d.GenClass(mustType(t, jg, "Model")))
	assert.Contains(t, src, "func modelPartition(v version.Tuple) int {\n\tswitch v {\n\tcase L3V1P1, L3V2P1:\n\t\treturn 0\n\t}")
	assert.Contains(t, src, "o.species = newListOfSpecies(ns.Clone())\n\to.species.Connect(o)")
}

func TestGenClassAttributes(t *testing.T) {
	d, jg := newTestDialect(t)
	src := code(d.GenClass(mustType(t, jg, "Species")))
	for _, want := range []string{
		"func (o *Species) Compartment() string {\n\treturn o.compartment\n}",
		"func (o *Species) IsSetCompartment() bool {\n\treturn o.compartment != \"\"\n}",
		"func (o *Species) SetConversionFactor(v string) docmodel.OperationReturn {\n\tif o.partition() != 0 {\n\t\treturn docmodel.UnexpectedAttribute\n\t}\n\tif !docmodel.IsValidSId(v) {\n\t\treturn docmodel.InvalidAttributeValue\n\t}\n\to.conversionFactor = v\n\treturn docmodel.OperationSuccess\n}",
		"func (o *Species) SetInitialAmount(v float64) docmodel.OperationReturn {\n\to.initialAmount, o.isSetInitialAmount = v, true\n\treturn docmodel.OperationSuccess\n}",
		"func (o *Species) UnsetInitialAmount() docmodel.OperationReturn {\n\to.initialAmount, o.isSetInitialAmount = math.NaN(), false\n\treturn docmodel.OperationSuccess\n}",
		"func (o *Species) UnsetCompartment() docmodel.OperationReturn {\n\tif o.compartment == \"\" {\n\t\treturn docmodel.OperationFailed\n\t}",
	} {
		assert.Contains(t, src, want)
	}

	src = code(d.GenClass(mustType(t, jg, "Compartment")))
	assert.Contains(t, src, "if o.partition() == 0 && !o.isSetConstant {\n\t\treturn docmodel.OperationFailed\n\t}")

	src = code(d.GenClass(mustType(t, jg, "Unit")))
	for _, want := range []string{
		"func (o *Unit) SetKind(v UnitKind) docmodel.OperationReturn {\n\tif !v.IsValid() {\n\t\to.kind = UnitKindInvalid\n\t\treturn docmodel.InvalidAttributeValue\n\t}",
		"func (o *Unit) KindString() string {\n\treturn o.kind.String()\n}",
		"func (o *Unit) SetKindString(s string) docmodel.OperationReturn {\n\treturn o.SetKind(ParseUnitKind(s))\n}",
		"func (o *Unit) IsSetKind() bool {\n\treturn o.kind != UnitKindInvalid\n}",
	} {
		assert.Contains(t, src, want)
	}
}

func TestGenClassChildren(t *testing.T) {
	d, jg := newTestDialect(t)
	src := code(d.GenClass(mustType(t, jg, "Reaction")))
	for _, want := range []string{
		"func (o *Reaction) KineticLaw() *KineticLaw {\n\treturn o.kineticLaw\n}",
		"func (o *Reaction) SetKineticLaw(v *KineticLaw) docmodel.OperationReturn {\n\tif o.partition() != 1 {\n\t\treturn docmodel.OperationFailed\n\t}\n\tif docmodel.IsNil(v) {\n\t\treturn o.UnsetKineticLaw()\n\t}\n\tif rc := docmodel.CheckCompatible(o, v); rc != docmodel.OperationSuccess {\n\t\treturn rc\n\t}\n\tc := v.Clone()",
		"func (o *Reaction) CreateKineticLaw() *KineticLaw {\n\tif o.partition() != 1 {\n\t\treturn nil\n\t}\n\tv := NewKineticLawWithNamespaces(o.Namespaces().Clone())",
		"func (o *Reaction) CreateRule(kind RuleKind) Rule {\n\tv := newRule(kind, o.Namespaces().Clone())",
		"c := v.cloneRule()",
		"if o.rule != nil {\n\t\tc.rule = o.rule.cloneRule()\n\t\tc.rule.AsNode().Connect(c)\n\t}",
		"func (o *Reaction) UnsetRule() docmodel.OperationReturn {\n\tif o.rule != nil {\n\t\to.rule.AsNode().Detach()\n\t\to.rule = nil\n\t}",
	} {
		assert.Contains(t, src, want)
	}
}

func TestGenClassLists(t *testing.T) {
	d, jg := newTestDialect(t)
	src := code(d.GenClass(mustType(t, jg, "Model")))
	for _, want := range []string{
		"func (o *Model) ListOfSpecies() *ListOfSpecies {\n\treturn o.species\n}",
		"func (o *Model) NumSpecies() int {\n\treturn o.species.Len()\n}",
		"func (o *Model) SpeciesByID(id string) *Species {\n\treturn o.species.GetByID(id)\n}",
		"func (o *Model) AddRule(v Rule) docmodel.OperationReturn {\n\treturn o.rules.Add(v)\n}",
		"func (o *Model) CreateRule(kind RuleKind) Rule {\n\treturn o.rules.Create(kind)\n}",
		"func (o *Model) RemoveReaction(i int) *Reaction {\n\treturn o.reactions.Remove(i)\n}",
		"c.rules = o.rules.Clone()\n\tc.rules.Connect(c)",
	} {
		assert.Contains(t, src, want)
	}
	assert.NotContains(t, src, "RuleByID")
}

func TestGenClassSerialization(t *testing.T) {
	d, jg := newTestDialect(t)
	src := code(d.GenClass(mustType(t, jg, "Species")))
	for _, want := range []string{
		"sink = docmodel.OrDiscard(sink)",
		"unexpected, unknown := attrs.Check(expected, []string{\"id\", \"compartment\", \"initialAmount\", \"conversionFactor\"})",
		"sink.Log(Errors.Diagnostic(ErrSpeciesUnexpectedAttribute, attrs, name))",
		"case 0:\n\t\tcheck(\"id\", \"compartment\", \"initialAmount\", \"conversionFactor\")\n\t\to.readID(attrs, sink, true)",
		"case 1:\n\t\tcheck(\"id\", \"compartment\", \"initialAmount\")",
		"func (o *Species) readInitialAmount(attrs *docmodel.Attributes, sink docmodel.ErrorSink) {\n\tv, ok, err := attrs.ReadDouble(\"initialAmount\")",
		"sink.Log(Errors.Diagnostic(ErrSpeciesInitialAmountMustBeDouble, attrs, err.Error()))",
		"case !docmodel.IsValidSId(v):\n\t\tsink.Log(Errors.Diagnostic(ErrSpeciesCompartmentMustBeIDRef, attrs, v))",
		"if required {\n\t\t\tsink.Log(Errors.Diagnostic(ErrSpeciesMissingCompartment, attrs, \"compartment\"))",
		"if o.isSetInitialAmount {\n\t\t\tw.WriteDouble(\"initialAmount\", o.initialAmount)\n\t\t}",
		"func (o *Species) ElementName() string {\n\treturn \"species\"\n}",
		"func (o *Species) Children() []docmodel.Element {\n\treturn nil\n}",
	} {
		assert.Contains(t, src, want)
	}

	src = code(d.GenClass(mustType(t, jg, "Unit")))
	assert.Contains(t, src, "o.kind = ParseUnitKind(s)\n\tif !o.kind.IsValid() {\n\t\tsink.Log(Errors.Diagnostic(ErrUnitKindMustBeUnitKind, attrs, s))")
	assert.Contains(t, src, "w.WriteString(\"kind\", o.kind.String())")

	src = code(d.GenClass(mustType(t, jg, "Reaction")))
	for _, want := range []string{
		"case \"kineticLaw\":\n\t\tif o.partition() == 1 {\n\t\t\tif v := o.CreateKineticLaw(); v != nil {\n\t\t\t\treturn v\n\t\t\t}\n\t\t\tsink.Log(Errors.Diagnostic(ErrKineticLawUnsupportedVersion, attrs, name))",
		"case \"assignmentRule\":\n\t\tif v := o.CreateRule(RuleKindAssignmentRule); v != nil {",
		"case \"rateRule\":\n\t\tif v := o.CreateRule(RuleKindRateRule); v != nil {",
		"sink.Log(Errors.Diagnostic(ErrReactionUnknownElement, attrs, name))\n\treturn nil",
		"var cs []docmodel.Element\n\tif o.kineticLaw != nil {\n\t\tcs = append(cs, o.kineticLaw)\n\t}",
	} {
		assert.Contains(t, src, want)
	}

	src = code(d.GenClass(mustType(t, jg, "Model")))
	assert.Contains(t, src, "case \"listOfSpecies\":\n\t\treturn o.species")
	assert.Contains(t, src, "if o.reactions.Len() > 0 {\n\t\tcs = append(cs, o.reactions)\n\t}")
}

func TestGenClassSlotTags(t *testing.T) {
	d, jg := newTestDialect(t)
	src := code(d.GenClass(mustType(t, jg, "LineSegment")))
	for _, want := range []string{
		"case \"start\":\n\t\tif v := o.CreateStart(); v != nil {\n\t\t\treturn v\n\t\t}",
		"case \"end\":\n\t\tif v := o.CreateEnd(); v != nil {\n\t\t\treturn v\n\t\t}",
		"if o.start != nil {\n\t\tcs = append(cs, docmodel.WithTag(\"start\", o.start))\n\t}",
		"if o.end != nil {\n\t\tcs = append(cs, docmodel.WithTag(\"end\", o.end))\n\t}",
		"func (o *LineSegment) CreateEnd() *Point {",
	} {
		assert.Contains(t, src, want)
	}
	assert.NotContains(t, src, "case \"point\":")
}

func TestGenClassGatedList(t *testing.T) {
	d, jg := newTestDialect(t)
	src := code(d.GenClass(mustType(t, jg, "LineSegment")))
	assert.Contains(t, src, "case \"listOfPoints\":\n\t\tif o.partition() == 1 {\n\t\t\treturn o.points\n\t\t}\n\t\tsink.Log(Errors.Diagnostic(ErrListOfPointsUnsupportedVersion, attrs, name))\n\t\treturn nil")

	src = code(d.GenErrors())
	assert.Contains(t, src, "ErrListOfPointsUnsupportedVersion")
}

func TestGenClassValidation(t *testing.T) {
	d, jg := newTestDialect(t)
	src := code(d.GenClass(mustType(t, jg, "Compartment")))
	for _, want := range []string{
		"func (o *Compartment) HasRequiredAttributes() bool {\n\tswitch o.partition() {\n\tcase 0:\n\t\treturn o.id != \"\" && o.isSetConstant\n\tcase 1:\n\t\treturn o.id != \"\"\n\t}\n\treturn true\n}",
		"func (o *Compartment) HasRequiredElements() bool {\n\treturn true\n}",
		"sink.Log(Errors.DiagnosticAt(ErrCompartmentMissingConstant, o.AsNode(), \"constant\"))\n\t\t\tn++",
		"return n + docmodel.ValidateChildren(o, sink)",
		"func (o *Compartment) GetElementByID(id string) docmodel.Element {\n\treturn docmodel.FindByID(o, id)\n}",
	} {
		assert.Contains(t, src, want)
	}

	src = code(d.GenClass(mustType(t, jg, "Model")))
	assert.Contains(t, src, "func (o *Model) HasRequiredElements() bool {\n\treturn o.reactions.Len() > 0\n}")
	assert.Contains(t, src, "n := 0\n\tif !(o.reactions.Len() > 0) {\n\t\tsink.Log(Errors.DiagnosticAt(ErrModelMissingReactions, o.AsNode(), \"reactions\"))")

	src = code(d.GenClass(mustType(t, jg, "Species")))
	assert.Contains(t, src, "func (o *Species) Validate(sink docmodel.ErrorSink) int {\n\tsink = docmodel.OrDiscard(sink)\n\tn := 0\n\tif o.id == \"\" {\n\t\tsink.Log(Errors.DiagnosticAt(ErrSpeciesMissingID, o.AsNode(), \"id\"))\n\t\tn++\n\t}")
	assert.NotContains(t, src, "func (o *Species) Validate(sink docmodel.ErrorSink) int {\n\tsink = docmodel.OrDiscard(sink)\n\tn := 0\n\tswitch")

	src = code(d.GenClass(mustType(t, jg, "KineticLaw")))
	assert.Contains(t, src, "func (o *KineticLaw) Validate(sink docmodel.ErrorSink) int {\n\treturn docmodel.ValidateChildren(o, docmodel.OrDiscard(sink))\n}")
}

func TestGenClassAbstract(t *testing.T) {
	d, jg := newTestDialect(t)
	src := code(d.GenClass(mustType(t, jg, "Rule")))
	for _, want := range []string{
		"// It is implemented by AssignmentRule and RateRule.",
		"type Rule interface {\n\tdocmodel.Element\n\tRuleKind() RuleKind\n\tcloneRule() Rule\n\tVariable() string\n\tIsSetVariable() bool\n}",
		"type RuleKind int",
		"RuleKindAssignmentRule RuleKind = iota\n\tRuleKindRateRule\n",
		"var ruleKindTags = [...]string{\"assignmentRule\", \"rateRule\"}",
		"func RuleKindOf(tag string) (RuleKind, bool) {",
		"func newRule(kind RuleKind, ns *docmodel.Namespaces) Rule {\n\tswitch kind {\n\tcase RuleKindAssignmentRule:\n\t\tif v := NewAssignmentRuleWithNamespaces(ns); v != nil {\n\t\t\treturn v\n\t\t}",
	} {
		assert.Contains(t, src, want)
	}
	assert.NotContains(t, src, "type Rule struct")

	src = code(d.GenClass(mustType(t, jg, "RateRule")))
	assert.Contains(t, src, "func (o *RateRule) RuleKind() RuleKind {\n\treturn RuleKindRateRule\n}")
	assert.Contains(t, src, "func (o *RateRule) cloneRule() Rule {\n\treturn o.Clone()\n}")
	assert.Contains(t, src, "func (o *RateRule) SetVariable(v string) docmodel.OperationReturn {")
}
