package gen

import (
	"fmt"
	"go/token"
	"sort"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/vergen/schema/version"
)

// =============================================================================
// Helper functions
// =============================================================================

var (
	// initialisms are rendered upper-case in Go identifiers.
	initialisms = names(
		"id",
		"sid",
		"uri",
		"url",
		"xml",
		"html",
		"json",
		"sbo",
	)
)

// words splits s on separators and lower-to-upper case boundaries.
func words(s string) []string {
	var (
		ws   []string
		cur  []rune
		prev rune
	)
	flush := func() {
		if len(cur) > 0 {
			ws = append(ws, string(cur))
			cur = cur[:0]
		}
	}
	rs := []rune(s)
	for i, r := range rs {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			cur = append(cur, r)
		case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1]):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return ws
}

// pascal returns the exported Go identifier of s. For example:
//
//	pascal("speciesType")  // SpeciesType
//	pascal("sboTerm")      // SBOTerm
//	pascal("id")           // ID
func pascal(s string) string {
	// Casers are stateful and must not be shared between workers.
	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words(s) {
		if _, ok := initialisms[strings.ToLower(w)]; ok {
			b.WriteString(strings.ToUpper(w))
			continue
		}
		b.WriteString(title.String(w))
	}
	return b.String()
}

// lowerCamel returns the unexported Go identifier of s.
func lowerCamel(s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return ""
	}
	first := strings.ToLower(ws[0])
	return first + pascal(strings.Join(ws[1:], "_"))
}

// structField returns the struct field for the given name
// and ensures it doesn't conflict with Go keywords and the
// fields of the embedded node.
func structField(name string) string {
	f := lowerCamel(name)
	if _, ok := privateField[f]; ok || token.Lookup(f).IsKeyword() {
		return "_" + f
	}
	return f
}

// singular returns the singular form of a list name.
func singular(s string) string {
	if strings.HasPrefix(s, "listOf") && len(s) > len("listOf") {
		s = s[len("listOf"):]
	}
	return inflect.Singularize(s)
}

// plural returns the plural form of s.
func plural(s string) string {
	return inflect.Pluralize(s)
}

// versionIdent returns the Go identifier of a version tuple, e.g. L3V1P1.
func versionIdent(t version.Tuple) string {
	return fmt.Sprintf("L%dV%dP%d", t.Level, t.Version, t.Package)
}

func names(ids ...string) map[string]struct{} {
	m := make(map[string]struct{})
	for i := range ids {
		m[ids[i]] = struct{}{}
	}
	return m
}

func sortedKeys[V any](m map[string]V) []string {
	s := make([]string, 0, len(m))
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}

// =============================================================================
// Global variables
// =============================================================================

var (
	// global identifiers used by the generated package.
	globalIdent = names(
		"Errors",
		"NewNamespaces",
		"SupportedVersions",
	)
	// private fields of the embedded docmodel.Node, and the unexported
	// methods of the generated classes.
	privateField = names(
		"ns",
		"metaID",
		"parent",
		"line",
		"col",
		"partition",
	)
	// reservedMethods are the methods every generated class carries.
	reservedMethods = names(
		"Ancestor",
		"AsNode",
		"Children",
		"Clone",
		"CloneNode",
		"Connect",
		"CreateObject",
		"Detach",
		"ElementName",
		"GetElementByID",
		"GetElementByMetaID",
		"HasRequiredAttributes",
		"HasRequiredElements",
		"IsSetMetaID",
		"Level",
		"MetaID",
		"Namespaces",
		"PackageVersion",
		"Parent",
		"Position",
		"ReadAttributes",
		"ReadNodeAttributes",
		"Root",
		"SetMetaID",
		"SetPosition",
		"UnsetMetaID",
		"Validate",
		"Version",
		"VersionTuple",
		"WriteAttributes",
		"WriteNodeAttributes",
	)
)
