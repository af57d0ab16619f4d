package patch

import "strings"

// AlreadyApplied reports whether content already carries marker, so the op
// can no-op instead of duplicating its edit. Markers are distinctive strings
// the patch itself introduces: a provider component name, an import path, a
// package name inside a config. The check runs verbatim first and then with
// whitespace runs compressed, so a formatter pass between runs does not
// defeat it. An empty marker never matches.
func AlreadyApplied(content, marker string) bool {
	if marker == "" {
		return false
	}
	if strings.Contains(content, marker) {
		return true
	}
	return strings.Contains(compressWhitespace(content), compressWhitespace(marker))
}

// compressWhitespace collapses every run of whitespace to a single space so
// reformatted code still compares equal.
func compressWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteByte(c)
	}
	return b.String()
}
