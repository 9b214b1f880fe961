package hashcode

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/source-c/go-commons"
	"github.com/source-c/go-commons/logger"
	"github.com/source-c/go-commons/strutil"
	"math"
	"reflect"
)

const (
	DefaultInitial    int32 = 17
	DefaultMultiplier int32 = 37
)

// Builder accumulates appended values into a hash code. It is not safe for concurrent use.
type Builder struct {
	multiplier int32
	total      int32
	sink       logger.Sink
	visited    registry
	folding    registry
}

// NewBuilder creates a [Builder] starting from initial and multiplying by multiplier on every step.
// Both values must be odd and non zero, otherwise an error matching [commons.ErrInvalidArgument] is returned.
func NewBuilder(initial, multiplier int32, opts ...BuilderOption) (*Builder, error) {
	if err := validateSeeds(initial, multiplier); err != nil {
		return nil, err
	}
	b := &Builder{
		multiplier: multiplier,
		total:      initial,
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// MustNewBuilder is like [NewBuilder] but panics on invalid arguments.
func MustNewBuilder(initial, multiplier int32, opts ...BuilderOption) *Builder {
	b, err := NewBuilder(initial, multiplier, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

func validateSeeds(initial, multiplier int32) error {
	switch {
	case initial == 0:
		return commons.NewInvalidArgument("hash code builder requires a non zero initial value")
	case initial%2 == 0:
		return commons.NewInvalidArgument("hash code builder requires an odd initial value")
	case multiplier == 0:
		return commons.NewInvalidArgument("hash code builder requires a non zero multiplier")
	case multiplier%2 == 0:
		return commons.NewInvalidArgument("hash code builder requires an odd multiplier")
	}
	return nil
}

// ToHashCode returns the current total. The builder stays usable.
func (b *Builder) ToHashCode() int32 {
	return b.total
}

// Append folds value according to its [Kind]. Unsupported values, such as funcs and chans whether nil or not,
// leave the total unchanged.
func (b *Builder) Append(value any) *Builder {
	old := b.total
	kind, v := classify(value)
	switch kind {
	case KindNull:
		b.AppendNull()
	case KindBool:
		b.AppendBool(v.(bool))
	case KindFloat:
		b.AppendFloat(v.(float64))
	case KindInt:
		b.AppendInt(v.(int64))
	case KindString:
		b.AppendString(v.(string))
	case KindObject:
		b.AppendObject(v, true)
	case KindSequence:
		b.foldSequence(v, func(el any) {
			b.Append(el)
		})
	}
	b.logger().Tracef("%d -> %d", old, b.total)
	return b
}

// AppendNull multiplies the total without adding anything.
func (b *Builder) AppendNull() *Builder {
	return b.fold(0)
}

// AppendBool adds 0 for true and 1 for false.
func (b *Builder) AppendBool(value bool) *Builder {
	if value {
		return b.fold(0)
	}
	return b.fold(1)
}

// AppendInt adds value truncated to 32 bits.
func (b *Builder) AppendInt(value int64) *Builder {
	return b.fold(int32(value))
}

// AppendFloat adds the IEEE-754 bits of value narrowed to float32.
func (b *Builder) AppendFloat(value float64) *Builder {
	return b.fold(int32(math.Float32bits(float32(value))))
}

// AppendString adds [strutil.HashCode] of value.
func (b *Builder) AppendString(value string) *Builder {
	return b.fold(strutil.HashCode(value))
}

// AppendObject folds an object. Sequences are folded element by element, objects among the elements go through
// AppendObject again. A [HashCoder] contributes its own hash code. Otherwise the object is either traversed
// reflectively into this builder, after which the resulting total is appended once more, or, when useReflection is
// false, represented by a token unique to the instance. Any other value is passed to [Builder.Append].
func (b *Builder) AppendObject(value any, useReflection bool) *Builder {
	kind, v := classify(value)
	switch kind {
	case KindNull:
		return b.AppendNull()
	case KindSequence:
		b.foldSequence(v, func(el any) {
			if KindOf(el) == KindObject {
				b.AppendObject(el, useReflection)
			} else {
				b.Append(el)
			}
		})
		return b
	case KindObject:
	default:
		return b.Append(value)
	}

	if hc, ok := v.(HashCoder); ok {
		return b.AppendInt(int64(hc.HashCode()))
	}
	if useReflection {
		b.reflectFields(v, traversal{parents: true})
		return b.AppendInt(int64(b.total))
	}
	return b.AppendInt(int64(strutil.HashCode(identity(v))))
}

// foldSequence calls fn for every value of seq. Maps, slices and pointers are reference types and may contain
// themselves: such a sequence is skipped while it is being folded already.
func (b *Builder) foldSequence(seq any, fn func(value any)) {
	rv := reflect.ValueOf(seq)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer:
		if rv.Kind() != reflect.Pointer && rv.Len() == 0 {
			break
		}
		addr, typ := rv.Pointer(), rv.Type()
		if b.folding == nil {
			b.folding = make(registry)
		}
		if !b.folding.register(addr, typ) {
			b.logger().Debugf("%s is already being folded, skipping!", typ)
			return
		}
		defer b.folding.release(addr, typ)
	}
	forEachValue(seq, fn)
}

func (b *Builder) fold(contribution int32) *Builder {
	old := b.total
	b.total = old*b.multiplier + contribution
	b.logger().Tracef("%d = %d * %d + %d", b.total, old, b.multiplier, contribution)
	return b
}

// identity returns a token distinguishing obj from every other instance. Struct values are copies and get a random one.
func identity(obj any) string {
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer {
		return fmt.Sprintf("%s@%#x", rv.Type(), rv.Pointer())
	}
	return uuid.NewString()
}
