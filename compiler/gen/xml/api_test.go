package xml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenAPI(t *testing.T) {
	d, jg := newTestDialect(t)
	src := code(d.GenAPI(mustType(t, jg, "Species")))
	for _, want := range []string{
		"type SpeciesAPI interface {\n\tdocmodel.Element\n\tClone() *Species\n",
		"\tSetCompartment(v string) docmodel.OperationReturn\n",
		"\tValidate(sink docmodel.ErrorSink) int\n",
		"var _ SpeciesAPI = (*Species)(nil)",
	} {
		assert.Contains(t, src, want)
	}
	for _, absent := range []string{"ReadAttributes", "readID", "ElementName"} {
		assert.NotContains(t, src, absent)
	}
}

func TestGenFacade(t *testing.T) {
	d, jg := newTestDialect(t)
	src := code(d.GenFacade(mustType(t, jg, "Species")))
	for _, want := range []string{
		"func Species_New(level, ver, pkg uint) *Species {\n\treturn NewSpecies(level, ver, pkg)\n}",
		"func Species_SetCompartment(o *Species, v string) docmodel.OperationReturn {\n\tif o == nil {\n\t\treturn docmodel.InvalidObject\n\t}\n\treturn o.SetCompartment(v)\n}",
		"func Species_InitialAmount(o *Species) float64 {\n\tif o == nil {\n\t\treturn math.NaN()\n\t}",
		"func Species_IsSetID(o *Species) bool {\n\tif o == nil {\n\t\treturn false\n\t}",
		"// Species_Clone is the procedural form of Species.Clone. It returns nil when o\n// is nil.",
	} {
		assert.Contains(t, src, want)
	}
	assert.NotContains(t, src, "Species_ReadAttributes")
	assert.NotContains(t, src, "Species_readID")

	src = code(d.GenFacade(mustType(t, jg, "Model")))
	assert.Contains(t, src, "func Model_CreateRule(o *Model, kind RuleKind) Rule {")
}
