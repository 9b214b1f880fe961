package hashcode

import (
	"github.com/source-c/go-commons/internal"
	"reflect"
)

// HashCoder is implemented by values providing their own hash code.
type HashCoder interface {
	HashCode() int32
}

// Traversable is implemented by ordered containers. Their values are folded in the order fn receives them.
type Traversable interface {
	TraverseValues(fn func(value any))
}

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -linecomment -output=kind_string.go
type Kind int

const (
	KindUnsupported Kind = iota // unsupported
	KindNull                    // null
	KindBool                    // bool
	KindFloat                   // float
	KindInt                     // int
	KindString                  // string
	KindObject                  // object
	KindSequence                // sequence
)

// KindOf returns the kind [Builder.Append] would treat value as.
func KindOf(value any) Kind {
	kind, _ := classify(value)
	return kind
}

// classify returns the kind of value and value normalized for that kind: bool, float64, int64, string,
// the object or the sequence itself. Pointers to anything but structs are dereferenced.
func classify(value any) (Kind, any) {
	if value == nil {
		return KindNull, nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return KindNull, nil
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return KindBool, rv.Bool()
	case reflect.Float32, reflect.Float64:
		return KindFloat, rv.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt, rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindInt, int64(rv.Uint())
	case reflect.String:
		return KindString, rv.String()
	}

	if _, ok := value.(HashCoder); ok {
		return KindObject, value
	}
	if _, ok := value.(Traversable); ok {
		return KindSequence, value
	}

	switch rv.Kind() {
	case reflect.Struct:
		return KindObject, value
	case reflect.Pointer:
		if rv.Elem().Kind() == reflect.Struct {
			return KindObject, value
		}
		return classify(rv.Elem().Interface())
	case reflect.Slice, reflect.Array, reflect.Map:
		return KindSequence, value
	}
	return KindUnsupported, value
}

// forEachValue calls fn for every value of a sequence. Map values are visited in ascending key order.
func forEachValue(seq any, fn func(value any)) {
	if t, ok := seq.(Traversable); ok {
		t.TraverseValues(fn)
		return
	}
	rv := reflect.ValueOf(seq)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			fn(rv.Index(i).Interface())
		}
	case reflect.Map:
		for _, key := range internal.SortedMapKeys(rv) {
			fn(rv.MapIndex(key).Interface())
		}
	}
}
