package strutil

import (
	"github.com/mattn/go-runewidth"
	"math"
)

// ToEnd passed as length to [SubstrReplace] replaces everything up to the end of the string.
const ToEnd = math.MaxInt

// display widths do not depend on the process locale
var widthCondition = &runewidth.Condition{EastAsianWidth: false}

// Truncate cuts value to at most width display cells, starting at rune offset start. A negative start counts from
// the end. When the string has to be cut, marker is appended and counted into width; a marker that alone is wider
// than width is dropped. Wide (East Asian) runes occupy two cells.
//
//	Truncate("Hello World", 0, 8, "...") // Hello...
func Truncate(value string, start, width int, marker string) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(value)
	start = clampStart(start, len(runes))
	rest := string(runes[start:])
	if widthCondition.StringWidth(marker) > width {
		marker = ""
	}
	return widthCondition.Truncate(rest, width, marker)
}

// Width returns the number of display cells s occupies.
func Width(s string) int {
	return widthCondition.StringWidth(s)
}

// SubstrReplace replaces length runes of s starting at rune offset start with replacement.
// A negative start counts from the end of s; a negative length stops that many runes before the end.
// Use [ToEnd] to replace up to the end of s.
//
//	SubstrReplace("Grüße Welt", "Hallo", 0, 5) // Hallo Welt
func SubstrReplace(s, replacement string, start, length int) string {
	runes := []rune(s)
	n := len(runes)
	start = clampStart(start, n)
	var end int
	switch {
	case length == ToEnd:
		end = n
	case length < 0:
		end = n + length
		if end < start {
			end = start
		}
	default:
		end = n
		if length < n-start {
			end = start + length
		}
	}
	return string(runes[:start]) + replacement + string(runes[end:])
}

func clampStart(start, n int) int {
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if start > n {
		start = n
	}
	return start
}
