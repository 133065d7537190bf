package env

// Map is a persistent association list from names to values.
//
// Extending a Map never modifies it; the new binding is prepended to a fresh
// Map that shares the receiver as its tail. A Map can therefore be captured by
// a closure or handed to a sibling subtree without copying.
type Map[V any] struct {
	head *binding[V]
	size int
}

type binding[V any] struct {
	name  string
	value V
	next  *binding[V]
}

// NewMap returns an empty Map.
func NewMap[V any]() Map[V] {
	return Map[V]{}
}

// Lookup returns the innermost value bound to name.
func (m Map[V]) Lookup(name string) (V, bool) {
	for b := m.head; b != nil; b = b.next {
		if b.name == name {
			return b.value, true
		}
	}
	var zero V
	return zero, false
}

// Extend returns a Map with name bound to value, shadowing any outer binding.
func (m Map[V]) Extend(name string, value V) Map[V] {
	return Map[V]{
		head: &binding[V]{name: name, value: value, next: m.head},
		size: m.size + 1,
	}
}

// Len returns the number of bindings, shadowed ones included.
func (m Map[V]) Len() int {
	return m.size
}

// Names returns the visible names, innermost first.
func (m Map[V]) Names() []string {
	seen := make(map[string]bool, m.size)
	names := make([]string, 0, m.size)
	for b := m.head; b != nil; b = b.next {
		if seen[b.name] {
			continue
		}
		seen[b.name] = true
		names = append(names, b.name)
	}
	return names
}
