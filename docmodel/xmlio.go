package docmodel

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrRootMismatch is returned by Read when the document element does not
// match the root object.
var ErrRootMismatch = errors.New("docmodel: document element does not match root")

// Read decodes the document in r into root. Unknown elements are skipped
// after root's CreateObject reported them; attribute problems are reported
// to sink. Only malformed XML and a mismatching document element are
// returned as errors.
func Read(r io.Reader, root Element, sink ErrorSink) error {
	sink = OrDiscard(sink)
	dec := xml.NewDecoder(r)
	var stack []Element
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if len(stack) != 0 {
				return fmt.Errorf("docmodel: unexpected end of document in <%s>", stack[len(stack)-1].ElementName())
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("docmodel: read: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			attrs := NewAttributes(t.Attr)
			attrs.Line, attrs.Column = dec.InputPos()
			var e Element
			if len(stack) == 0 {
				if t.Name.Local != root.ElementName() {
					return fmt.Errorf("%w: got <%s>, want <%s>", ErrRootMismatch, t.Name.Local, root.ElementName())
				}
				e = root
			} else if e = stack[len(stack)-1].CreateObject(t.Name.Local, attrs, sink); e == nil {
				if err := dec.Skip(); err != nil {
					return fmt.Errorf("docmodel: read: %w", err)
				}
				continue
			}
			n := e.AsNode()
			n.SetPosition(attrs.Line, attrs.Column)
			n.ReadNodeAttributes(attrs)
			e.ReadAttributes(attrs, sink)
			stack = append(stack, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return nil
			}
		}
	}
}

// WithTag returns e written under tag instead of its own element name. It
// is used for child slots whose name differs from the element of their
// class. Every other method is forwarded to e.
func WithTag(tag string, e Element) Element {
	return tagged{Element: untag(e), tag: tag}
}

type tagged struct {
	Element
	tag string
}

func (t tagged) ElementName() string { return t.tag }

// untag returns the element wrapped by WithTag, or e itself.
func untag(e Element) Element {
	if t, ok := e.(tagged); ok {
		return t.Element
	}
	return e
}

// Writer encodes objects as indented XML.
type Writer struct {
	enc *xml.Encoder
}

// NewWriter returns a writer encoding to w.
func NewWriter(w io.Writer) *Writer {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return &Writer{enc: enc}
}

// WriteDocument writes the XML declaration followed by root. The root
// element carries the namespace declarations of root.
func (w *Writer) WriteDocument(root Element) error {
	decl := xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8"`)}
	if err := w.enc.EncodeToken(decl); err != nil {
		return err
	}
	var xmlns []xml.Attr
	for _, ns := range root.AsNode().Namespaces().URIs() {
		name := "xmlns"
		if ns.Prefix != "" {
			name += ":" + ns.Prefix
		}
		xmlns = append(xmlns, xml.Attr{Name: xml.Name{Local: name}, Value: ns.URI})
	}
	if err := w.writeElement(root, xmlns); err != nil {
		return err
	}
	return w.enc.Flush()
}

// WriteElement writes e and its children.
func (w *Writer) WriteElement(e Element) error {
	if err := w.writeElement(e, nil); err != nil {
		return err
	}
	return w.enc.Flush()
}

func (w *Writer) writeElement(e Element, extra []xml.Attr) error {
	aw := &AttributeWriter{attrs: extra}
	e.AsNode().WriteNodeAttributes(aw)
	e.WriteAttributes(aw)
	start := xml.StartElement{Name: xml.Name{Local: e.ElementName()}, Attr: aw.attrs}
	if err := w.enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range e.Children() {
		if err := w.writeElement(c, nil); err != nil {
			return err
		}
	}
	return w.enc.EncodeToken(start.End())
}

// Write writes root as a complete document to w.
func Write(w io.Writer, root Element) error {
	return NewWriter(w).WriteDocument(root)
}
