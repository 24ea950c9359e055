package docmodel

// ListOf is the ordered, owning collection embedded by generated list-of
// types. Members are connected to the list that holds them.
//
// Generated types add the checked Add and the element-specific Create and
// CreateObject methods; ListOf itself never validates what it stores.
type ListOf[T Object] struct {
	Node
	items []T
}

// NewListOf returns an empty list created under ns.
func NewListOf[T Object](ns *Namespaces) ListOf[T] {
	return ListOf[T]{Node: NewNode(ns)}
}

// Len returns the number of members.
func (l *ListOf[T]) Len() int { return len(l.items) }

// Get returns the i-th member, or the zero value if i is out of range.
func (l *ListOf[T]) Get(i int) T {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero
	}
	return l.items[i]
}

// Items returns the members in insertion order. The returned slice may be
// modified; the members are still owned by the list.
func (l *ListOf[T]) Items() []T {
	return append([]T(nil), l.items...)
}

// Append takes ownership of item and connects it to owner, which is the
// generated type embedding l.
func (l *ListOf[T]) Append(owner Object, item T) {
	item.AsNode().Connect(owner)
	l.items = append(l.items, item)
}

// Remove detaches and returns the i-th member. Ownership passes to the
// caller. It returns the zero value if i is out of range.
func (l *ListOf[T]) Remove(i int) T {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero
	}
	item := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	item.AsNode().Detach()
	return item
}

// IndexOfID returns the index of the first member with the given
// identifier, or -1.
func (l *ListOf[T]) IndexOfID(id string) int {
	for i, item := range l.items {
		if o, ok := any(item).(Identified); ok && o.ID() == id {
			return i
		}
	}
	return -1
}

// HasID reports whether a member carries the given identifier.
func (l *ListOf[T]) HasID(id string) bool { return l.IndexOfID(id) >= 0 }

// GetByID returns the member with the given identifier, or the zero value.
func (l *ListOf[T]) GetByID(id string) T {
	return l.Get(l.IndexOfID(id))
}

// RemoveByID detaches and returns the member with the given identifier, or
// the zero value.
func (l *ListOf[T]) RemoveByID(id string) T {
	return l.Remove(l.IndexOfID(id))
}

// Clear detaches every member.
func (l *ListOf[T]) Clear() {
	for _, item := range l.items {
		item.AsNode().Detach()
	}
	l.items = nil
}

// CloneInto deep copies the members of l into dst with clone and connects
// the copies to owner.
func (l *ListOf[T]) CloneInto(dst *ListOf[T], owner Object, clone func(T) T) {
	dst.items = make([]T, 0, len(l.items))
	for _, item := range l.items {
		dst.Append(owner, clone(item))
	}
}

// Children returns the members that are elements.
func (l *ListOf[T]) Children() []Element {
	es := make([]Element, 0, len(l.items))
	for _, item := range l.items {
		if e, ok := any(item).(Element); ok {
			es = append(es, e)
		}
	}
	return es
}

// HasRequiredAttributes reports true: a list-of collection has no required
// attributes.
func (l *ListOf[T]) HasRequiredAttributes() bool { return true }

// HasRequiredElements reports true: an empty list is valid.
func (l *ListOf[T]) HasRequiredElements() bool { return true }

// ReadAttributes implements Element. The shared attributes are read by the
// document reader.
func (l *ListOf[T]) ReadAttributes(*Attributes, ErrorSink) {}

// WriteAttributes implements Element.
func (l *ListOf[T]) WriteAttributes(*AttributeWriter) {}
