package text

import "strings"

// DefaultMaxLength is the line length used by WrapDefault.
const DefaultMaxLength = 60

// lineDelimiters separate segments of the input. Runs of them never produce empty segments.
const lineDelimiters = "\r\n\f"

// WrapDefault wraps s using DefaultMaxLength.
func WrapDefault(s string) string {
	return Wrap(s, DefaultMaxLength)
}

// Wrap breaks s into lines of at most maxLen bytes, splitting at spaces when possible.
// Existing carriage returns, line feeds and form feeds are normalized into single
// newlines, and every emitted line is terminated by a newline.
//
// If maxLen is less than one, or s already fits within maxLen, s is returned as-is,
// including any trailing whitespace. A segment without spaces is never broken, and a
// single word longer than maxLen is emitted whole on its own line.
func Wrap(s string, maxLen int) string {
	if maxLen < 1 || len(s) <= maxLen {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 20)

	for _, segment := range splitSegments(s) {
		if len(segment) <= maxLen || !strings.Contains(segment, " ") {
			b.WriteString(segment)
			b.WriteByte('\n')
			continue
		}

		newSegmenter(&b, maxLen).segment(segment)
	}

	return b.String()
}

// Lines returns the result of Wrap as a slice, one element per line. The final line
// terminator is not represented by an empty trailing element.
func Lines(s string, maxLen int) []string {
	return SplitLines(Wrap(s, maxLen))
}

func splitSegments(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(lineDelimiters, r)
	})
}

// SplitLines splits the output of Wrap into lines, dropping the terminator of the last line.
func SplitLines(wrapped string) []string {
	return strings.Split(strings.TrimSuffix(wrapped, "\n"), "\n")
}
