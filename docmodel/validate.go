package docmodel

// Validator is implemented by elements that check their own required
// attributes and elements against their version.
type Validator interface {
	// Validate logs every missing required attribute or element of the
	// subtree to sink and returns the number of problems found.
	Validate(sink ErrorSink) int
}

// ValidateChildren validates the children of e that implement Validator
// and returns the number of problems they found.
func ValidateChildren(e Element, sink ErrorSink) int {
	n := 0
	for _, c := range e.Children() {
		c = untag(c)
		if IsNil(c) {
			continue
		}
		if v, ok := c.(Validator); ok {
			n += v.Validate(sink)
		}
	}
	return n
}
