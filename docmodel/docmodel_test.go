package docmodel_test

import (
	"math"

	"github.com/syssam/vergen/docmodel"
	"github.com/syssam/vergen/schema/version"
)

const (
	coreURI              = "http://example.org/core/level3/version1"
	errUnknownAttribute  = 101
	errValueMustBeDouble = 102
	errUnknownElement    = 103
)

var table = &docmodel.ErrorTable{
	Package: "test",
	Infos: []docmodel.ErrorInfo{
		{ID: errUnknownAttribute, Name: "ItemUnknownAttribute", Category: "attribute", Severity: docmodel.SeverityError, Message: "unknown attribute on <item>"},
		{ID: errValueMustBeDouble, Name: "ItemValueMustBeDouble", Category: "attribute", Severity: docmodel.SeverityError, Message: "attribute value of <item> must be a double"},
		{ID: errUnknownElement, Name: "ModelUnknownElement", Category: "element", Severity: docmodel.SeverityError, Message: "unknown element in <model>"},
	},
}

func namespaces(level, ver uint) *docmodel.Namespaces {
	return docmodel.NewNamespaces(version.New(level, ver, 1), coreURI, docmodel.Namespace{URI: coreURI})
}

type item struct {
	docmodel.Node
	id         string
	value      float64
	isSetValue bool
}

func newItem(ns *docmodel.Namespaces, id string) *item {
	return &item{Node: docmodel.NewNode(ns), id: id, value: math.NaN()}
}

func (i *item) ElementName() string         { return "item" }
func (i *item) ID() string                  { return i.id }
func (i *item) HasRequiredAttributes() bool { return i.id != "" }
func (i *item) HasRequiredElements() bool   { return true }
func (i *item) Children() []docmodel.Element {
	return nil
}

func (i *item) CreateObject(string, *docmodel.Attributes, docmodel.ErrorSink) docmodel.Element {
	return nil
}

func (i *item) ReadAttributes(attrs *docmodel.Attributes, sink docmodel.ErrorSink) {
	_, unknown := attrs.Check([]string{"id", "value"}, nil)
	for _, name := range unknown {
		sink.Log(table.Diagnostic(errUnknownAttribute, attrs, name))
	}
	if v, ok := attrs.ReadString("id"); ok {
		i.id = v
	}
	if v, ok, err := attrs.ReadDouble("value"); err != nil {
		sink.Log(table.Diagnostic(errValueMustBeDouble, attrs, err.Error()))
	} else if ok {
		i.value, i.isSetValue = v, true
	}
}

func (i *item) WriteAttributes(w *docmodel.AttributeWriter) {
	if i.id != "" {
		w.WriteString("id", i.id)
	}
	if i.isSetValue {
		w.WriteDouble("value", i.value)
	}
}

func (i *item) Clone() *item {
	c := *i
	c.Node = i.CloneNode()
	return &c
}

type itemList struct {
	docmodel.ListOf[*item]
}

func (l *itemList) ElementName() string { return "listOfItems" }

func (l *itemList) CreateObject(name string, _ *docmodel.Attributes, _ docmodel.ErrorSink) docmodel.Element {
	if name != "item" {
		return nil
	}
	it := newItem(l.Namespaces().Clone(), "")
	l.Append(l, it)
	return it
}

func (l *itemList) Add(it *item) docmodel.OperationReturn {
	if rc := docmodel.CheckAddable(l, it); rc != docmodel.OperationSuccess {
		return rc
	}
	if l.HasID(it.ID()) {
		return docmodel.DuplicateObjectID
	}
	l.Append(l, it.Clone())
	return docmodel.OperationSuccess
}

type model struct {
	docmodel.Node
	name  string
	items *itemList
}

func newModel(ns *docmodel.Namespaces) *model {
	m := &model{Node: docmodel.NewNode(ns)}
	m.items = &itemList{ListOf: docmodel.NewListOf[*item](ns.Clone())}
	m.items.Connect(m)
	return m
}

func (m *model) ElementName() string         { return "model" }
func (m *model) HasRequiredAttributes() bool { return true }
func (m *model) HasRequiredElements() bool   { return true }

func (m *model) ReadAttributes(attrs *docmodel.Attributes, _ docmodel.ErrorSink) {
	m.name, _ = attrs.ReadString("name")
}

func (m *model) WriteAttributes(w *docmodel.AttributeWriter) {
	if m.name != "" {
		w.WriteString("name", m.name)
	}
}

func (m *model) CreateObject(name string, attrs *docmodel.Attributes, sink docmodel.ErrorSink) docmodel.Element {
	if name == "listOfItems" {
		return m.items
	}
	sink.Log(table.Diagnostic(errUnknownElement, attrs, name))
	return nil
}

func (m *model) Children() []docmodel.Element {
	if m.items.Len() == 0 {
		return nil
	}
	return []docmodel.Element{m.items}
}
