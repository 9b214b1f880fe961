// Package commons is a collection of small, stateless helpers that fill common gaps of the standard library.
//
// # Introduction
//
// The library is split into focused packages:
//   - [github.com/source-c/go-commons/hashcode] builds deterministic 32-bit hash codes from arbitrary values.
//   - [github.com/source-c/go-commons/strutil] string helpers: prefix/suffix checks, camelization, excerpts,
//     highlighting, display-width truncation, multibyte replacement and string hashing.
//   - [github.com/source-c/go-commons/arrays] an ordered associative [arrays.Map] and slice helpers.
//   - [github.com/source-c/go-commons/intutil] integer comparison and validation.
//   - [github.com/source-c/go-commons/formatter] human-readable byte sizes, intervals and relative times.
//   - [github.com/source-c/go-commons/logger] the leveled logger used for diagnostic traces.
//
// # Hash codes
//
// A [hashcode.Builder] folds values into a running total with total = total*multiplier + contribution,
// using 32-bit wraparound arithmetic:
//
//	builder, err := hashcode.NewBuilder(17, 37)
//	if err != nil {
//		return err
//	}
//	hash := builder.Append("name").Append(42).Append([]bool{true, false}).ToHashCode()
//
// Structs can be hashed field by field without manual appends:
//
//	hash, err := hashcode.ReflectionHashCode(&person, hashcode.WithExcludedFields("cache"))
//	if err != nil {
//		return err
//	}
//
// Embedded structs are treated as the parent type and hashed after the fields of the embedding struct.
// Cyclic object graphs are supported.
//
// # Errors
//
// Every invalid argument is reported with an error wrapping [ErrInvalidArgument]:
//
//	_, err := hashcode.NewBuilder(2, 37)
//	if errors.Is(err, commons.ErrInvalidArgument) {
//		fmt.Println(err)
//	}
//	>>> hash code builder requires an odd initial value
package commons
