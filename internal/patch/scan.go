package patch

// scanBalanced returns the offset just past the delimiter that closes the
// opener at src[open]. It tracks (), [], and {} together and skips string
// literals in either quote style plus template literals, so JSX props,
// nested calls, and trailing commas do not throw the count off. Returns -1
// when the region never closes.
func scanBalanced(src string, open int) int {
	depth := 0
	i := open
	for i < len(src) {
		c := src[i]
		switch c {
		case '\'', '"', '`':
			i = skipString(src, i)
			continue
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return -1
}

// skipString returns the offset just past the string literal starting at
// src[start]. Backslash escapes are honored. An unterminated literal
// consumes the rest of the input.
func skipString(src string, start int) int {
	quote := src[start]
	i := start + 1
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		}
		i++
	}
	return len(src)
}

// firstArgSpan returns the trimmed span of the first argument of the call
// whose opening parenthesis is at src[open]. The span ends at the first
// top-level comma or at the closing parenthesis. Returns ok=false when the
// call never closes or the argument list is empty.
func firstArgSpan(src string, open int) (start, end int, ok bool) {
	close := scanBalanced(src, open)
	if close == -1 {
		return 0, 0, false
	}
	argEnd := close - 1
	depth := 0
	i := open
scan:
	for i < argEnd {
		c := src[i]
		switch c {
		case '\'', '"', '`':
			i = skipString(src, i)
			continue
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 1 {
				argEnd = i
				break scan
			}
		}
		i++
	}
	start, end = trimSpan(src, open+1, argEnd)
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// trimSpan shrinks [start,end) past surrounding whitespace so wrapping
// touches the expression itself, not its indentation.
func trimSpan(src string, start, end int) (int, int) {
	for start < end && isSpace(src[start]) {
		start++
	}
	for end > start && isSpace(src[end-1]) {
		end--
	}
	return start, end
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
