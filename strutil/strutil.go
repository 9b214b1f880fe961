package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// StartsWith reports whether haystack begins with needle. An empty needle always matches.
func StartsWith(haystack, needle string) bool {
	return strings.HasPrefix(haystack, needle)
}

// EndsWith reports whether haystack ends with needle. An empty needle always matches.
func EndsWith(haystack, needle string) bool {
	return strings.HasSuffix(haystack, needle)
}

// Camelize uppercases the first letter of input and every letter following a rune of separator,
// then removes all occurrences of separator. The first letter is lowercased unless capitalizeFirst is set.
//
//	Camelize("handle_testresult_success", "_", false) // handleTestresultSuccess
func Camelize(input, separator string, capitalizeFirst bool) string {
	if separator == "" {
		separator = "_"
	}
	var b strings.Builder
	b.Grow(len(input))
	upper := true
	for _, r := range input {
		if upper {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		upper = strings.ContainsRune(separator, r)
	}
	result := strings.ReplaceAll(b.String(), separator, "")
	if capitalizeFirst || result == "" {
		return result
	}
	first, size := utf8.DecodeRuneInString(result)
	return string(unicode.ToLower(first)) + result[size:]
}
