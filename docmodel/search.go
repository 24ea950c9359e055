package docmodel

// Walk visits the descendants of root depth-first in Children order:
// singular children first, then list-of collections and their members in
// index order. Root itself is not visited and no node is visited twice.
// Walk stops when visit returns false.
func Walk(root Element, visit func(Element) bool) {
	seen := map[*Node]struct{}{root.AsNode(): {}}
	var walk func(Element) bool
	walk = func(e Element) bool {
		for _, c := range e.Children() {
			c = untag(c)
			if IsNil(c) {
				continue
			}
			n := c.AsNode()
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			if !visit(c) || !walk(c) {
				return false
			}
		}
		return true
	}
	walk(root)
}

// FindByID returns the first descendant of root whose identifier is id,
// or nil.
func FindByID(root Element, id string) Element {
	if id == "" {
		return nil
	}
	var found Element
	Walk(root, func(e Element) bool {
		if o, ok := e.(Identified); ok && o.ID() == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// FindByMetaID returns the first descendant of root whose meta identifier
// is metaID, or nil.
func FindByMetaID(root Element, metaID string) Element {
	if metaID == "" {
		return nil
	}
	var found Element
	Walk(root, func(e Element) bool {
		if e.AsNode().MetaID() == metaID {
			found = e
			return false
		}
		return true
	})
	return found
}

// Descendants returns every descendant of root in Walk order.
func Descendants(root Element) []Element {
	var es []Element
	Walk(root, func(e Element) bool {
		es = append(es, e)
		return true
	})
	return es
}
