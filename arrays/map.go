package arrays

import (
	"slices"
)

// KeyValue is a single entry of a [Map].
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an associative array remembering the insertion order of its keys. The zero value is not usable, see [NewMap].
type Map[K comparable, V any] struct {
	values map[K]V
	order  []K
}

// NewMap creates a [Map] holding entries in the given order. A repeated key keeps its first position and takes the last value.
func NewMap[K comparable, V any](entries ...KeyValue[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		values: make(map[K]V, len(entries)),
		order:  make([]K, 0, len(entries)),
	}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set stores value under key. A new key is appended to the end, an existing one keeps its position.
func (m *Map[K, V]) Set(key K, value V) {
	if _, ok := m.values[key]; !ok {
		m.order = append(m.order, key)
	}
	m.values[key] = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	idx := slices.Index(m.order, key)
	m.order = slices.Delete(m.order, idx, idx+1)
	return true
}

func (m *Map[K, V]) Len() int {
	return len(m.order)
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	return slices.Clone(m.order)
}

// Values returns the values in insertion order.
func (m *Map[K, V]) Values() []V {
	res := make([]V, 0, len(m.order))
	for _, k := range m.order {
		res = append(res, m.values[k])
	}
	return res
}

// Entries returns the entries in insertion order.
func (m *Map[K, V]) Entries() []KeyValue[K, V] {
	res := make([]KeyValue[K, V], 0, len(m.order))
	for _, k := range m.order {
		res = append(res, KeyValue[K, V]{k, m.values[k]})
	}
	return res
}

// IndexOf returns the position of key or -1.
func (m *Map[K, V]) IndexOf(key K) int {
	if !m.Has(key) {
		return -1
	}
	return slices.Index(m.order, key)
}

// PrevKey returns the key preceding key. False is returned for the first key and for unknown keys.
func (m *Map[K, V]) PrevKey(key K) (K, bool) {
	var zero K
	idx := m.IndexOf(key)
	if idx <= 0 {
		return zero, false
	}
	return m.order[idx-1], true
}

// NextKey returns the key following key. False is returned for the last key and for unknown keys.
func (m *Map[K, V]) NextKey(key K) (K, bool) {
	var zero K
	idx := m.IndexOf(key)
	if idx < 0 || idx+1 == len(m.order) {
		return zero, false
	}
	return m.order[idx+1], true
}

// InsertAt returns a new [Map] with entries inserted at position, without replacing anything. A position beyond the
// end appends, a negative one counts from the end. Keys that already exist keep their first position and take the
// value that comes last.
func (m *Map[K, V]) InsertAt(position int, entries ...KeyValue[K, V]) *Map[K, V] {
	current := m.Entries()
	position = clampPosition(position, len(current))
	res := NewMap(current[:position]...)
	for _, e := range entries {
		res.Set(e.Key, e.Value)
	}
	for _, e := range current[position:] {
		res.Set(e.Key, e.Value)
	}
	return res
}

// Copy returns a shallow copy of m.
func (m *Map[K, V]) Copy() *Map[K, V] {
	return NewMap(m.Entries()...)
}

// TraverseValues calls fn for every value in insertion order.
func (m *Map[K, V]) TraverseValues(fn func(value any)) {
	for _, k := range m.order {
		fn(m.values[k])
	}
}
