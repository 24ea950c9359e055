package gen

import (
	"bytes"

	"github.com/syssam/vergen/schema/version"
)

// Cell bits of the version matrix. A column that is required in a row is
// always legal in it.
const (
	cellLegal    uint8 = 1 << iota
	cellRequired
)

type (
	// Item is one column of the version matrix: an attribute or element
	// name with the versions it is legal and required in.
	Item struct {
		Name     string
		Legal    version.Set
		Required version.Set
	}

	// Matrix maps every version row to the legal/required bits of each
	// item column.
	Matrix struct {
		Rows  version.Set
		Items []Item
		cells [][]uint8
	}

	// Group is a maximal set of rows with identical cells.
	Group struct {
		Rows version.Set
		// Cells is the shared row of the group.
		Cells []uint8
	}
)

// BuildMatrix builds the matrix of the given rows and items. Legal sets are
// intersected with rows. It fails if an item is required in a version that
// is not among its legal rows.
func BuildMatrix(rows version.Set, items []Item) (*Matrix, error) {
	m := &Matrix{
		Rows:  rows.Dedup(),
		Items: items,
	}
	for _, it := range items {
		legal := it.Legal.Intersect(m.Rows)
		for _, v := range it.Required {
			if !legal.Contains(v) {
				return nil, &SchemaError{
					Attribute: it.Name,
					Version:   v.String(),
					Message:   "required in a version outside its legal set",
				}
			}
		}
	}
	m.cells = make([][]uint8, len(m.Rows))
	for r, v := range m.Rows {
		row := make([]uint8, len(items))
		for c, it := range items {
			if it.Legal.Contains(v) {
				row[c] |= cellLegal
			}
			if it.Required.Contains(v) {
				row[c] |= cellRequired
			}
		}
		m.cells[r] = row
	}
	return m, nil
}

// Legal reports whether column c is legal in row r.
func (m *Matrix) Legal(r, c int) bool { return m.cells[r][c]&cellLegal != 0 }

// Required reports whether column c is required in row r.
func (m *Matrix) Required(r, c int) bool { return m.cells[r][c]&cellRequired != 0 }

// Groups partitions the rows into groups of identical cells. Groups are
// ordered by their first row, and rows keep their declared order inside a
// group. Every row belongs to exactly one group.
func (m *Matrix) Groups() []Group {
	var groups []Group
	for r, row := range m.cells {
		i := 0
		for ; i < len(groups); i++ {
			if bytes.Equal(groups[i].Cells, row) {
				break
			}
		}
		if i == len(groups) {
			groups = append(groups, Group{Cells: row})
		}
		groups[i].Rows = append(groups[i].Rows, m.Rows[r])
	}
	return groups
}

type (
	// Partition is a set of class versions sharing the same legal
	// attributes and elements, with the same requiredness.
	Partition struct {
		Index      int
		Versions   version.Set
		Attributes []*PartitionAttr
		Children   []*PartitionElem
		Lists      []*PartitionElem
	}

	// PartitionAttr is an attribute legal in a partition.
	PartitionAttr struct {
		*Attribute
		Required bool
	}

	// PartitionElem is a child or list legal in a partition.
	PartitionElem struct {
		*Element
		Required bool
	}
)

// AttributeNames returns the XML names of the partition attributes.
func (p *Partition) AttributeNames() []string {
	names := make([]string, len(p.Attributes))
	for i, a := range p.Attributes {
		names[i] = a.Name
	}
	return names
}

// RequiredAttributes returns the attributes required in the partition.
func (p *Partition) RequiredAttributes() []*PartitionAttr {
	var as []*PartitionAttr
	for _, a := range p.Attributes {
		if a.Required {
			as = append(as, a)
		}
	}
	return as
}

// RequiredElements returns the children and lists required in the partition.
func (p *Partition) RequiredElements() []*PartitionElem {
	var es []*PartitionElem
	for _, e := range append(append([]*PartitionElem(nil), p.Children...), p.Lists...) {
		if e.Required {
			es = append(es, e)
		}
	}
	return es
}

// Elements returns the children followed by the lists of the partition.
func (p *Partition) Elements() []*PartitionElem {
	return append(append([]*PartitionElem(nil), p.Children...), p.Lists...)
}

// HasAttribute reports whether the named attribute is legal in p.
func (p *Partition) HasAttribute(name string) bool {
	for _, a := range p.Attributes {
		if a.Name == name {
			return true
		}
	}
	return false
}

// ResolvePartitions computes the partitions of t over its supported
// versions. Columns are the attributes, the children and the lists of t in
// declaration order.
func ResolvePartitions(t *Type) ([]*Partition, error) {
	items := make([]Item, 0, len(t.Attributes)+len(t.Children)+len(t.Lists))
	for _, a := range t.Attributes {
		items = append(items, Item{Name: a.Name, Legal: a.Versions, Required: a.RequiredIn})
	}
	for _, e := range t.Elements() {
		it := Item{Name: e.Name, Legal: e.Versions}
		if e.Required {
			it.Required = e.Versions
		}
		items = append(items, it)
	}
	m, err := BuildMatrix(t.Versions, items)
	if err != nil {
		if se, ok := err.(*SchemaError); ok {
			se.Class = t.Name
		}
		return nil, err
	}
	groups := m.Groups()
	ps := make([]*Partition, len(groups))
	for i, g := range groups {
		p := &Partition{Index: i, Versions: g.Rows}
		for c, cell := range g.Cells {
			if cell&cellLegal == 0 {
				continue
			}
			required := cell&cellRequired != 0
			switch na := len(t.Attributes); {
			case c < na:
				p.Attributes = append(p.Attributes, &PartitionAttr{Attribute: t.Attributes[c], Required: required})
			case c < na+len(t.Children):
				p.Children = append(p.Children, &PartitionElem{Element: t.Children[c-na], Required: required})
			default:
				p.Lists = append(p.Lists, &PartitionElem{Element: t.Lists[c-na-len(t.Children)], Required: required})
			}
		}
		ps[i] = p
	}
	return ps, nil
}
