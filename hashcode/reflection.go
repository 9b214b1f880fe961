package hashcode

import (
	"github.com/source-c/go-commons"
	"reflect"
	"strings"
	"unsafe"
)

const tagName = "hashcode"

type traversal struct {
	parents  bool
	excluded map[string]struct{}
	upTo     string
}

// ReflectionHashCode builds a hash code from the fields of obj, which must be a struct or a non-nil pointer to one.
//
// Fields are folded in declaration order, unexported fields included. The first embedded struct (or pointer to
// struct) is the parent type: its fields are folded after the fields of obj, then the fields of its own parent and
// so on. Fields tagged `hashcode:"-"` are skipped. A struct reached twice through pointers is folded only once.
func ReflectionHashCode(obj any, opts ...ReflectionOption) (int32, error) {
	if KindOf(obj) == KindNull {
		return 0, commons.NewInvalidArgument("the object to build a hash code for must not be null")
	}
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return 0, commons.NewInvalidArgument("the object to build a hash code for must be a struct")
	}

	cfg := reflectionConfig{
		initial:    DefaultInitial,
		multiplier: DefaultMultiplier,
		traversal:  traversal{parents: true},
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return 0, err
		}
	}
	b, err := NewBuilder(cfg.initial, cfg.multiplier, WithLoggingSink(cfg.sink))
	if err != nil {
		return 0, err
	}
	b.reflectFields(obj, cfg.traversal)
	return b.ToHashCode(), nil
}

// reflectFields folds the fields of obj and, if requested, of its parents into b. The outermost call owns the registry
// of visited levels, nested calls share it.
func (b *Builder) reflectFields(obj any, t traversal) {
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if !rv.CanAddr() {
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		rv = cp
	}
	if b.visited == nil {
		b.visited = make(registry)
		defer func() {
			b.visited = nil
		}()
	}

	log := b.logger()
	level := rv
	for {
		if !b.reflectLevel(level, t) {
			return
		}
		if !t.parents || t.stopsAt(level.Type()) {
			return
		}
		parent, ok := parentOf(level)
		if !ok {
			return
		}
		log.Debugf("traversing parent '%s' of '%s'", parent.Type(), level.Type())
		level = parent
	}
}

// reflectLevel folds the fields declared on level. It returns false if the level was folded before, its parents
// have been or are being folded by that earlier visit.
func (b *Builder) reflectLevel(level reflect.Value, t traversal) bool {
	log := b.logger()
	typ := level.Type()
	if !b.visited.register(level.UnsafeAddr(), typ) {
		log.Debugf("%s is already registered, skipping!", typ)
		return false
	}
	fields := declaredFields(typ, t.excluded)
	log.Debug(func() string {
		names := make([]string, len(fields))
		for i, idx := range fields {
			names[i] = typ.Field(idx).Name
		}
		return typ.String() + " has the following fields: [" + strings.Join(names, ", ") + "]"
	})
	for _, idx := range fields {
		b.Append(exposed(level.Field(idx)).Interface())
	}
	return true
}

func (t traversal) stopsAt(typ reflect.Type) bool {
	return len(t.upTo) != 0 && (typ.Name() == t.upTo || typ.String() == t.upTo)
}

// parentIndex returns the index of the first embedded struct or pointer to struct field, or -1.
func parentIndex(typ reflect.Type) int {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			return i
		}
	}
	return -1
}

// parentOf returns the addressable parent level of level. A nil embedded pointer has no parent.
func parentOf(level reflect.Value) (reflect.Value, bool) {
	idx := parentIndex(level.Type())
	if idx < 0 {
		return reflect.Value{}, false
	}
	parent := exposed(level.Field(idx))
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return reflect.Value{}, false
		}
		parent = parent.Elem()
	}
	return parent, true
}

// declaredFields returns indices of the fields folded on the level of typ.
func declaredFields(typ reflect.Type, excluded map[string]struct{}) []int {
	parent := parentIndex(typ)
	fields := make([]int, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		if i == parent {
			continue
		}
		f := typ.Field(i)
		if f.Tag.Get(tagName) == "-" {
			continue
		}
		if _, ok := excluded[f.Name]; ok {
			continue
		}
		fields = append(fields, i)
	}
	return fields
}

// exposed makes an addressable field readable even if it is unexported.
func exposed(field reflect.Value) reflect.Value {
	if field.CanInterface() {
		return field
	}
	return reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem()
}
