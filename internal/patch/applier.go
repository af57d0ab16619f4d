package patch

import "strings"

// InsertAfter splices fragment immediately after the anchor's end offset.
func InsertAfter(src string, a Anchor, fragment string) string {
	return src[:a.End] + fragment + src[a.End:]
}

// Wrap surrounds the anchor's captured inner region with open and close. The
// inner text itself is preserved byte for byte; only text is added around it.
func Wrap(src string, a Anchor, open, close string) string {
	return src[:a.InnerStart] + open + a.Inner(src) + close + src[a.InnerEnd:]
}

// MergeOrInject adds entry to an existing array body or injects the fully
// formed field after an opening brace, depending on how the anchor matched.
// When the entry is already present in the captured body the source is
// returned unchanged and changed=false, which callers surface as an
// already-applied outcome rather than a failure.
func MergeOrInject(src string, a Anchor, entry, field string) (out string, changed bool) {
	switch a.Mode {
	case ModeKeyBody:
		body := a.Inner(src)
		if strings.Contains(body, entry) {
			return src, false
		}
		merged := mergeArrayBody(body, entry)
		return src[:a.InnerStart] + merged + src[a.InnerEnd:], true
	case ModeOpenBrace:
		return src[:a.End] + "\n  " + field + src[a.End:], true
	}
	return src, false
}

// mergeArrayBody appends entry to the body of an array literal, reusing a
// comma separator and dropping any trailing comma so repeated merges stay
// clean: 'x' becomes 'x', 'y' and an empty body becomes just the entry.
func mergeArrayBody(body, entry string) string {
	trimmed := strings.TrimRight(body, " \t\r\n,")
	if strings.TrimSpace(trimmed) == "" {
		return entry
	}
	return trimmed + ", " + entry
}
