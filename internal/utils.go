package internal

import (
	"fmt"
	"reflect"
	"sort"
)

// BytesHashCode folds data into 31*h + b, starting from 0, with int32 wraparound.
func BytesHashCode(data string) int32 {
	if len(data) == 0 {
		return 0
	}
	var hash int32 = 0
	for i := 0; i < len(data); i++ {
		hash = 31*hash + int32(data[i])
	}
	return hash
}

// SortedMapKeys returns keys of a map value in a deterministic order: numeric keys numerically,
// string keys lexicographically, anything else by its formatted representation.
func SortedMapKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	sort.SliceStable(keys, func(i, j int) bool {
		return lessKey(keys[i], keys[j])
	})
	return keys
}

func lessKey(a, b reflect.Value) bool {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return a.Int() < b.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return a.Uint() < b.Uint()
		case reflect.Float32, reflect.Float64:
			return a.Float() < b.Float()
		case reflect.String:
			return a.String() < b.String()
		case reflect.Bool:
			return !a.Bool() && b.Bool()
		}
	}
	return keyString(a) < keyString(b)
}

func keyString(v reflect.Value) string {
	if !v.IsValid() {
		return "<nil>"
	}
	return fmt.Sprintf("%T:%v", v.Interface(), v.Interface())
}
