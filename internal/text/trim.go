package text

// isBlank reports whether c is a space or control character.
func isBlank(c byte) bool {
	return c <= ' '
}

func trimTrailing(s string) string {
	i := len(s)
	for i > 0 && isBlank(s[i-1]) {
		i--
	}
	return s[:i]
}

func trimSpace(s string) string {
	i := 0
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	return trimTrailing(s[i:])
}
