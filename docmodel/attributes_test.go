package docmodel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/vergen/docmodel"
)

func TestAttributesRead(t *testing.T) {
	attrs := docmodel.AttributesOf(
		"flag", "1",
		"count", " 42 ",
		"bad", "x",
		"inf", "INF",
		"nan", "NaN",
	)

	v, ok, err := attrs.ReadBool("flag")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, v)

	n, ok, err := attrs.ReadInt("count")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok, err = attrs.ReadInt("bad")
	assert.True(t, ok)
	var verr *docmodel.ValueError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "int", verr.Kind)

	_, _, err = attrs.ReadBool("bad")
	assert.Error(t, err)

	d, _, err := attrs.ReadDouble("inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
	d, _, err = attrs.ReadDouble("nan")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(d))

	_, ok, err = attrs.ReadDouble("missing")
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestAttributesCheck(t *testing.T) {
	attrs := docmodel.AttributesOf("id", "a", "metaid", "m", "units", "u", "color", "red")
	unexpected, unknown := attrs.Check([]string{"id"}, []string{"id", "units"})
	assert.Equal(t, []string{"units"}, unexpected)
	assert.Equal(t, []string{"color"}, unknown)
}

func TestAttributeWriter(t *testing.T) {
	w := &docmodel.AttributeWriter{}
	w.WriteString("id", "a")
	w.WriteBool("constant", true)
	w.WriteInt("n", -3)
	w.WriteDouble("x", 0.25)
	w.WriteDouble("nan", math.NaN())
	w.WriteDouble("inf", math.Inf(1))

	assert.Equal(t, []string{"id", "constant", "n", "x", "nan", "inf"}, w.Names())
	values := make([]string, 0, len(w.Attrs()))
	for _, a := range w.Attrs() {
		values = append(values, a.Value)
	}
	assert.Equal(t, []string{"a", "true", "-3", "0.25", "NaN", "INF"}, values)
}

func TestSyntax(t *testing.T) {
	tests := []struct {
		in     string
		sid    bool
		metaid bool
	}{
		{"a", true, true},
		{"_a1", true, true},
		{"S1_b", true, true},
		{"1a", false, false},
		{"", false, false},
		{"a-b", false, true},
		{"a.b", false, true},
		{"a b", false, false},
		{"é", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.sid, docmodel.IsValidSId(tt.in))
			assert.Equal(t, tt.sid, docmodel.IsValidUnitSId(tt.in))
			assert.Equal(t, tt.metaid, docmodel.IsValidMetaID(tt.in))
		})
	}
	assert.True(t, docmodel.IsValidMetaID(docmodel.NewMetaID()))
}

func TestOperationReturn(t *testing.T) {
	assert.Equal(t, "OperationSuccess", docmodel.OperationSuccess.String())
	assert.Equal(t, "NamespacesMismatch", docmodel.NamespacesMismatch.String())
	assert.Equal(t, "OperationReturn(-9)", docmodel.OperationReturn(-9).String())
	assert.True(t, docmodel.OperationSuccess.Ok())
	assert.False(t, docmodel.InvalidObject.Ok())
}

func TestLog(t *testing.T) {
	log := &docmodel.Log{}
	log.Log(table.Diagnostic(errUnknownAttribute, docmodel.AttributesOf(), "color"))
	log.Log(docmodel.Diagnostic{Code: 1, Severity: docmodel.SeverityWarning})

	require.Equal(t, 2, log.Len())
	d := log.Diagnostics()[0]
	assert.Equal(t, "ItemUnknownAttribute", d.Name)
	assert.Equal(t, "unknown attribute on <item> color", d.Message)
	assert.Equal(t, 1, log.NumSeverity(docmodel.SeverityError))
	assert.Equal(t, 2, log.NumSeverity(docmodel.SeverityWarning))

	log.Reset()
	assert.Zero(t, log.Len())

	var s docmodel.Severity
	require.NoError(t, s.UnmarshalText([]byte("fatal")))
	assert.Equal(t, docmodel.SeverityFatal, s)
	assert.Error(t, s.UnmarshalText([]byte("loud")))
}
