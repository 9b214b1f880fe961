package hashcode

import (
	"reflect"
)

type visitKey struct {
	addr uintptr
	typ  reflect.Type
}

// registry remembers struct levels already folded by one reflective computation, or the sequences currently being folded.
type registry map[visitKey]struct{}

// register adds the level and reports whether it was not registered yet.
func (r registry) register(addr uintptr, typ reflect.Type) bool {
	key := visitKey{addr, typ}
	if _, ok := r[key]; ok {
		return false
	}
	r[key] = struct{}{}
	return true
}

func (r registry) release(addr uintptr, typ reflect.Type) {
	delete(r, visitKey{addr, typ})
}
