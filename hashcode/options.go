package hashcode

import (
	"github.com/source-c/go-commons"
	"github.com/source-c/go-commons/logger"
)

// BuilderOption configures a [Builder] created by [NewBuilder].
type BuilderOption func(b *Builder) error

// WithLoggingSink returns [BuilderOption] that routes trace output of the builder to sink.
// The sink receives messages according to its own level, regardless of [SetDebug]. See also [logger]
func WithLoggingSink(sink logger.Sink) BuilderOption {
	return func(b *Builder) error {
		b.sink = sink
		return nil
	}
}

type reflectionConfig struct {
	initial    int32
	multiplier int32
	sink       logger.Sink
	traversal  traversal
}

// ReflectionOption configures [ReflectionHashCode].
type ReflectionOption func(cfg *reflectionConfig) error

// WithSeeds returns [ReflectionOption] that sets the initial value and the multiplier of the builder.
// Both must be odd and non zero, defaults are [DefaultInitial] and [DefaultMultiplier].
func WithSeeds(initial, multiplier int32) ReflectionOption {
	return func(cfg *reflectionConfig) error {
		if err := validateSeeds(initial, multiplier); err != nil {
			return err
		}
		cfg.initial = initial
		cfg.multiplier = multiplier
		return nil
	}
}

// WithParents returns [ReflectionOption] that sets whether fields of parent types are folded too. It is set to true by default.
func WithParents(include bool) ReflectionOption {
	return func(cfg *reflectionConfig) error {
		cfg.traversal.parents = include
		return nil
	}
}

// WithExcludedFields returns [ReflectionOption] that skips fields with the given names on every level of the hierarchy.
func WithExcludedFields(names ...string) ReflectionOption {
	return func(cfg *reflectionConfig) error {
		if cfg.traversal.excluded == nil {
			cfg.traversal.excluded = make(map[string]struct{}, len(names))
		}
		for _, name := range names {
			cfg.traversal.excluded[name] = struct{}{}
		}
		return nil
	}
}

// WithReflectUpTo returns [ReflectionOption] that stops the traversal of parents once the type named typeName is folded.
// typeName is matched against both the plain and the package qualified type name.
func WithReflectUpTo(typeName string) ReflectionOption {
	return func(cfg *reflectionConfig) error {
		if len(typeName) == 0 {
			return commons.NewInvalidArgument("the type name to reflect up to must not be empty")
		}
		cfg.traversal.upTo = typeName
		return nil
	}
}

// WithReflectionLoggingSink returns [ReflectionOption] that routes trace output to sink, see [WithLoggingSink].
func WithReflectionLoggingSink(sink logger.Sink) ReflectionOption {
	return func(cfg *reflectionConfig) error {
		cfg.sink = sink
		return nil
	}
}
