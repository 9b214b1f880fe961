/*
Package hashcode folds arbitrary values into a 32-bit hash code, the way Java's HashCodeBuilder does.

Every step of the builder computes total = total*multiplier + contribution in int32 arithmetic, so results
wrap around on overflow and are stable across processes and platforms.

# Appending values

	b, err := hashcode.NewBuilder(17, 37)
	if err != nil {
		// initial value and multiplier must be odd and non zero
	}
	hash := b.Append("Dummy").Append(42).Append([]any{true, nil}).ToHashCode()

Values are dispatched by kind: nil, bools, floats, integers and strings have fixed contributions,
slices, arrays, maps and [Traversable] containers are folded element by element, and structs are
traversed field by field. A value implementing [HashCoder] contributes its own hash code.

# Reflective hashing

[ReflectionHashCode] builds a hash from the fields of a struct, including unexported ones. The first
embedded struct is treated as the parent type and is traversed after the struct's own fields:

	type Entity struct {
		ID int
	}

	type User struct {
		Entity
		Name    string
		Session string `hashcode:"-"`
	}

	hash, err := hashcode.ReflectionHashCode(&User{Entity{1}, "joe", "x"}, hashcode.WithExcludedFields("Name"))

Object graphs may contain cycles: a struct already visited during the current computation is skipped.

# Debugging

Every folding step can be traced. Either enable the process-wide stderr trace with [SetDebug], or pass
a custom sink with [WithLoggingSink] or [WithReflectionLoggingSink]. Tracing never changes results.
*/
package hashcode
