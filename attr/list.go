package attr

import (
	"iter"
	"strings"
)

// List is an ordered collection of attributes keyed by name. Names are
// unique; Set on an existing name replaces the attribute in place.
//
// List is not safe for concurrent mutation. The zero value is not usable;
// call NewList. Read methods accept a nil *List as empty.
type List struct {
	items []Attribute
	index map[string]int
	opts  []Option
}

// NewList returns a list holding attrs in order. A repeated name replaces the
// earlier attribute.
func NewList(attrs ...Attribute) *List {
	l := &List{
		items: make([]Attribute, 0, len(attrs)),
		index: make(map[string]int, len(attrs)),
	}
	for _, a := range attrs {
		l.Set(a)
	}

	return l
}

// WithOptions sets the options used by Combine and Add and returns l.
func (l *List) WithOptions(opts ...Option) *List {
	l.opts = opts
	return l
}

// Len returns the number of attributes.
func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return len(l.items)
}

// At returns the attribute at position i in insertion order.
func (l *List) At(i int) Attribute {
	return l.items[i]
}

// Get returns the attribute named name.
func (l *List) Get(name string) (Attribute, bool) {
	if l == nil {
		return Attribute{}, false
	}

	i, ok := l.index[name]
	if !ok {
		return Attribute{}, false
	}

	return l.items[i], true
}

// Has reports whether an attribute named name exists.
func (l *List) Has(name string) bool {
	_, ok := l.Get(name)
	return ok
}

// Set replaces the attribute with the same name, keeping its position, or
// appends a.
func (l *List) Set(a Attribute) {
	if i, ok := l.index[a.name]; ok {
		l.items[i] = a
		return
	}

	l.index[a.name] = len(l.items)
	l.items = append(l.items, a)
}

// Remove deletes the attribute named name and reports whether it existed.
func (l *List) Remove(name string) bool {
	i, ok := l.index[name]
	if !ok {
		return false
	}

	l.items = append(l.items[:i], l.items[i+1:]...)
	delete(l.index, name)
	for j := i; j < len(l.items); j++ {
		l.index[l.items[j].name] = j
	}

	return true
}

// Names returns the attribute names in insertion order.
func (l *List) Names() []string {
	names := make([]string, 0, l.Len())
	for a := range l.All() {
		names = append(names, a.name)
	}

	return names
}

// All iterates the attributes in insertion order.
func (l *List) All() iter.Seq[Attribute] {
	return func(yield func(Attribute) bool) {
		if l == nil {
			return
		}
		for _, a := range l.items {
			if !yield(a) {
				return
			}
		}
	}
}

// Clone returns an independent copy of l. A nil list clones to an empty one.
func (l *List) Clone() *List {
	c := NewList()
	if l == nil {
		return c
	}

	c.items = append(c.items, l.items...)
	for k, v := range l.index {
		c.index[k] = v
	}
	c.opts = l.opts

	return c
}

// Equal reports whether l and other hold equal attributes in the same order.
func (l *List) Equal(other *List) bool {
	if l.Len() != other.Len() {
		return false
	}

	for i := range l.Len() {
		if !l.items[i].Equal(other.items[i]) {
			return false
		}
	}

	return true
}

// Combine merges other into l. Walking other in insertion order, an attribute
// whose name exists in l is replaced by existing.Combine(incoming); any other
// attribute is appended.
func (l *List) Combine(other *List) {
	l.merge(other, func(existing, incoming Attribute) Attribute {
		return existing.Combine(incoming, l.opts...)
	})
}

// Add is Combine with Attribute.Add as the merge.
func (l *List) Add(other *List) {
	l.merge(other, func(existing, incoming Attribute) Attribute {
		return existing.Add(incoming, l.opts...)
	})
}

func (l *List) merge(other *List, fn func(existing, incoming Attribute) Attribute) {
	for incoming := range other.All() {
		if i, ok := l.index[incoming.name]; ok {
			l.items[i] = fn(l.items[i], incoming)
			continue
		}
		l.Set(incoming)
	}
}

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for a := range l.All() {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
