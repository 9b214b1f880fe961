package strutil

import (
	"regexp"
	"strings"
)

// Excerpt cuts a window of radius bytes around the first phrase found in text (ASCII case-insensitive).
// Phrases are tried in order. When the window does not reach the start or the end of text, ending replaces
// as many bytes as the phrases are long on that side. If no phrase is found the window starts at the beginning.
// Without phrases there is nothing to keep around, so a cut excerpt is ending alone.
//
//	Excerpt("Lorem ipsum dolor sit amet", []string{"dolor"}, 0, "...") // ...dolor...
func Excerpt(text string, phrases []string, radius int, ending string) string {
	phraseLen := len(strings.Join(phrases, " "))
	if radius < phraseLen {
		radius = phraseLen
	}

	pos := 0
	lowerText := asciiLower(text)
	for _, phrase := range phrases {
		if idx := strings.Index(lowerText, asciiLower(phrase)); idx >= 0 {
			pos = idx
			break
		}
	}

	startPos := 0
	if pos > radius {
		startPos = pos - radius
	}
	textLen := len(text)
	endPos := pos + phraseLen + radius
	if endPos >= textLen {
		endPos = textLen
	}

	excerpt := text[startPos:endPos]
	if startPos != 0 {
		excerpt = replaceHead(excerpt, ending, phraseLen)
	}
	if endPos != textLen {
		excerpt = replaceTail(excerpt, ending, phraseLen)
	}
	return excerpt
}

func replaceHead(s, with string, n int) string {
	if n >= len(s) {
		return with
	}
	return with + s[n:]
}

// replaceTail replaces the last n bytes of s. A zero n counts from the start, so all of s is replaced.
func replaceTail(s, with string, n int) string {
	start := len(s) - n
	if n == 0 || start < 0 {
		start = 0
	}
	return s[:start] + with
}

// asciiLower keeps byte offsets intact, unlike strings.ToLower.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Highlight wraps every word of s containing keyword (case-insensitive) into pre and post.
// Words are maximal runs of Unicode letters around the match.
//
//	Highlight("This is an awesome text!", "awe", "<em>", "</em>") // This is an <em>awesome</em> text!
func Highlight(s, keyword, pre, post string) string {
	if keyword == "" {
		return s
	}
	re := regexp.MustCompile(`(?i)\p{L}*?` + regexp.QuoteMeta(keyword) + `\p{L}*`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		return pre + match + post
	})
}
