// Package version defines the multi-axis version identifier that gates
// which attributes and elements are legal for a class.
//
// A Tuple combines the core level/version with the extension (package)
// version:
//
//	version.Tuple{Level: 3, Version: 1, Package: 2} // l3v1p2
//
// Tuples are not ordered. Only equality and set membership are meaningful.
package version

import (
	"fmt"
	"strings"
)

// Tuple is a (core level, core version, extension version) triple.
type Tuple struct {
	Level   uint `json:"level" yaml:"level"`
	Version uint `json:"version" yaml:"version"`
	Package uint `json:"package" yaml:"package"`
}

// New returns the tuple l<level>v<version>p<pkg>.
func New(level, version, pkg uint) Tuple {
	return Tuple{Level: level, Version: version, Package: pkg}
}

// String returns the compact form of the tuple, e.g. "l3v1p2".
func (t Tuple) String() string {
	return fmt.Sprintf("l%dv%dp%d", t.Level, t.Version, t.Package)
}

// IsZero reports whether t is the zero tuple.
func (t Tuple) IsZero() bool { return t == Tuple{} }

// MarshalText implements encoding.TextMarshaler.
func (t Tuple) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tuple) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Parse parses the compact "l3v1p2" form of a tuple.
func Parse(s string) (Tuple, error) {
	var t Tuple
	n, err := fmt.Sscanf(strings.TrimSpace(strings.ToLower(s)), "l%dv%dp%d", &t.Level, &t.Version, &t.Package)
	if err != nil || n != 3 {
		return Tuple{}, fmt.Errorf("version: invalid tuple %q", s)
	}
	return t, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Tuple {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Set is an ordered, duplicate-free list of tuples. The order is the
// declaration order and is preserved by every operation.
type Set []Tuple

// Contains reports whether t is a member of s.
func (s Set) Contains(t Tuple) bool {
	for _, v := range s {
		if v == t {
			return true
		}
	}
	return false
}

// Intersects reports whether s and o share at least one tuple.
func (s Set) Intersects(o Set) bool {
	for _, v := range s {
		if o.Contains(v) {
			return true
		}
	}
	return false
}

// SubsetOf reports whether every tuple of s is in o.
func (s Set) SubsetOf(o Set) bool {
	for _, v := range s {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

// Intersect returns the tuples of s that are also in o, in the order of s.
func (s Set) Intersect(o Set) Set {
	var r Set
	for _, v := range s {
		if o.Contains(v) {
			r = append(r, v)
		}
	}
	return r
}

// Union returns s followed by the tuples of o that are not in s.
func (s Set) Union(o Set) Set {
	r := make(Set, len(s), len(s)+len(o))
	copy(r, s)
	for _, v := range o {
		if !r.Contains(v) {
			r = append(r, v)
		}
	}
	return r
}

// Difference returns the tuples of s that are not in o.
func (s Set) Difference(o Set) Set {
	var r Set
	for _, v := range s {
		if !o.Contains(v) {
			r = append(r, v)
		}
	}
	return r
}

// Dedup returns s without repeated tuples, keeping the first occurrence.
func (s Set) Dedup() Set {
	var r Set
	for _, v := range s {
		if !r.Contains(v) {
			r = append(r, v)
		}
	}
	return r
}

// String joins the tuples with commas.
func (s Set) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = v.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
