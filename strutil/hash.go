package strutil

import (
	"github.com/cespare/xxhash/v2"
	"github.com/source-c/go-commons/internal"
	"reflect"
)

// HashCode returns the 32-bit polynomial hash (base 31) of the UTF-8 bytes of value.
// Zero is returned for the empty string and for any value that is not a string.
func HashCode(value interface{}) int32 {
	switch s := value.(type) {
	case string:
		return internal.BytesHashCode(s)
	case nil:
		return 0
	}
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.String {
		return 0
	}
	return internal.BytesHashCode(v.String())
}

// Fingerprint returns a 64-bit xxhash of s. Not suitable for cryptographic use.
func Fingerprint(s string) uint64 {
	return xxhash.Sum64String(s)
}
