package arrays

import (
	"slices"
)

// InsertElement returns a new slice with elems inserted at position, without replacing anything.
// A position beyond the end appends, a negative position counts from the end.
func InsertElement[T any](s []T, position int, elems ...T) []T {
	position = clampPosition(position, len(s))
	res := make([]T, 0, len(s)+len(elems))
	res = append(res, s[:position]...)
	res = append(res, elems...)
	return append(res, s[position:]...)
}

// RemoveElementByValue returns a new slice without the first occurrence of value.
func RemoveElementByValue[T comparable](s []T, value T) []T {
	res := slices.Clone(s)
	if idx := slices.Index(res, value); idx >= 0 {
		res = slices.Delete(res, idx, idx+1)
	}
	return res
}

// RemoveMapValue deletes the first entry of m holding value and reports whether one was found.
func RemoveMapValue[K, V comparable](m *Map[K, V], value V) bool {
	for _, e := range m.Entries() {
		if e.Value == value {
			return m.Delete(e.Key)
		}
	}
	return false
}

// MergeValues pairs the values of a and b by index. The shorter slice is padded with nil.
//
//	MergeValues([]any{"a", "b"}, []any{1, 2, 3}) // [[a 1] [b 2] [<nil> 3]]
func MergeValues(a, b []any) [][]any {
	n := max(len(a), len(b))
	res := make([][]any, n)
	for i := range res {
		pair := make([]any, 2)
		if i < len(a) {
			pair[0] = a[i]
		}
		if i < len(b) {
			pair[1] = b[i]
		}
		res[i] = pair
	}
	return res
}

// ApplyCallbackByPath follows path through nested maps and calls fn with the map holding the last key of path.
// False is returned without calling fn when path is empty, a key is missing or an intermediate value is not a map.
func ApplyCallbackByPath(m *Map[string, any], path []string, fn func(parent *Map[string, any], key string)) bool {
	if len(path) == 0 {
		return false
	}
	current := m
	for _, key := range path[:len(path)-1] {
		v, ok := current.Get(key)
		if !ok {
			return false
		}
		if current, ok = v.(*Map[string, any]); !ok || current == nil {
			return false
		}
	}
	last := path[len(path)-1]
	if !current.Has(last) {
		return false
	}
	fn(current, last)
	return true
}

func clampPosition(position, n int) int {
	if position < 0 {
		position += n
		if position < 0 {
			position = 0
		}
	}
	if position > n {
		position = n
	}
	return position
}
