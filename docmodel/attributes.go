package docmodel

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MetaIDAttr is the attribute shared by every object.
const MetaIDAttr = "metaid"

// Attributes is the attribute list of one start element, with the position
// it was read at. Namespace declarations are not part of the list.
type Attributes struct {
	attrs  []xml.Attr
	Line   int
	Column int
}

// NewAttributes returns the attributes of a start element.
func NewAttributes(attrs []xml.Attr) *Attributes {
	a := &Attributes{attrs: make([]xml.Attr, 0, len(attrs))}
	for _, attr := range attrs {
		if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
			continue
		}
		a.attrs = append(a.attrs, attr)
	}
	return a
}

// AttributesOf returns attributes built from name/value pairs.
func AttributesOf(pairs ...string) *Attributes {
	a := &Attributes{}
	for i := 0; i+1 < len(pairs); i += 2 {
		a.attrs = append(a.attrs, xml.Attr{Name: xml.Name{Local: pairs[i]}, Value: pairs[i+1]})
	}
	return a
}

// Len returns the number of attributes.
func (a *Attributes) Len() int { return len(a.attrs) }

// Names returns the local attribute names in document order.
func (a *Attributes) Names() []string {
	names := make([]string, len(a.attrs))
	for i, attr := range a.attrs {
		names[i] = attr.Name.Local
	}
	return names
}

// Has reports whether the attribute is present.
func (a *Attributes) Has(name string) bool {
	_, ok := a.ReadString(name)
	return ok
}

// ReadString returns the raw value of the attribute.
func (a *Attributes) ReadString(name string) (string, bool) {
	for _, attr := range a.attrs {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// ReadBool parses a boolean attribute. Accepted values are true, false, 1
// and 0.
func (a *Attributes) ReadBool(name string) (v, ok bool, err error) {
	s, ok := a.ReadString(name)
	if !ok {
		return false, false, nil
	}
	switch strings.TrimSpace(s) {
	case "true", "1":
		return true, true, nil
	case "false", "0":
		return false, true, nil
	}
	return false, true, &ValueError{Name: name, Value: s, Kind: "bool"}
}

// ReadInt parses an integer attribute.
func (a *Attributes) ReadInt(name string) (int, bool, error) {
	s, ok := a.ReadString(name)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, true, &ValueError{Name: name, Value: s, Kind: "int"}
	}
	return v, true, nil
}

// ReadDouble parses a floating point attribute. INF, -INF and NaN are
// accepted.
func (a *Attributes) ReadDouble(name string) (float64, bool, error) {
	s, ok := a.ReadString(name)
	if !ok {
		return 0, false, nil
	}
	switch t := strings.TrimSpace(s); t {
	case "INF", "+INF":
		return math.Inf(1), true, nil
	case "-INF":
		return math.Inf(-1), true, nil
	case "NaN":
		return math.NaN(), true, nil
	default:
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, true, &ValueError{Name: name, Value: s, Kind: "double"}
		}
		return v, true, nil
	}
}

// Check splits the attributes that are not expected into the names that
// are known to the class in other versions (unexpected) and the names the
// class never declares (unknown). The meta identifier is always expected.
func (a *Attributes) Check(expected, known []string) (unexpected, unknown []string) {
	for _, attr := range a.attrs {
		name := attr.Name.Local
		switch {
		case name == MetaIDAttr, contains(expected, name):
		case contains(known, name):
			unexpected = append(unexpected, name)
		default:
			unknown = append(unknown, name)
		}
	}
	return unexpected, unknown
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// ValueError reports an attribute value that does not parse as its kind.
type ValueError struct {
	Name  string
	Value string
	Kind  string
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	return fmt.Sprintf("docmodel: attribute %q: value %q is not a valid %s", e.Name, e.Value, e.Kind)
}

// AttributeWriter collects the attributes of one start element.
type AttributeWriter struct {
	attrs []xml.Attr
}

// WriteString writes a string attribute.
func (w *AttributeWriter) WriteString(name, v string) {
	w.attrs = append(w.attrs, xml.Attr{Name: xml.Name{Local: name}, Value: v})
}

// WriteBool writes a boolean attribute.
func (w *AttributeWriter) WriteBool(name string, v bool) {
	w.WriteString(name, strconv.FormatBool(v))
}

// WriteInt writes an integer attribute.
func (w *AttributeWriter) WriteInt(name string, v int) {
	w.WriteString(name, strconv.Itoa(v))
}

// WriteDouble writes a floating point attribute using INF, -INF and NaN for
// the special values.
func (w *AttributeWriter) WriteDouble(name string, v float64) {
	var s string
	switch {
	case math.IsNaN(v):
		s = "NaN"
	case math.IsInf(v, 1):
		s = "INF"
	case math.IsInf(v, -1):
		s = "-INF"
	default:
		s = strconv.FormatFloat(v, 'g', -1, 64)
	}
	w.WriteString(name, s)
}

// Attrs returns the written attributes in write order.
func (w *AttributeWriter) Attrs() []xml.Attr { return w.attrs }

// Names returns the written attribute names in write order.
func (w *AttributeWriter) Names() []string {
	names := make([]string, len(w.attrs))
	for i, attr := range w.attrs {
		names[i] = attr.Name.Local
	}
	return names
}
