package render

import "strings"

// Placeholder delimiters.
const (
	delimOpen  = "{{"
	delimClose = "}}"
)

// Render substitutes every {{dotted.path}} placeholder in content with its
// stringified Context value. The inner expression is trimmed before lookup,
// so {{ project.name }} and {{project.name}} resolve identically.
//
// A placeholder whose path does not resolve is copied through unchanged,
// delimiters and all. That is a contract, not a fallback: templates carry
// framework-native {{expressions}} (Vue interpolation, for one) that must
// survive rendering untouched. An unterminated {{ is likewise copied through.
func Render(content string, ctx Context) string {
	var b strings.Builder
	b.Grow(len(content))

	rest := content
	for {
		open := strings.Index(rest, delimOpen)
		if open < 0 {
			b.WriteString(rest)
			break
		}

		closing := strings.Index(rest[open+len(delimOpen):], delimClose)
		if closing < 0 {
			b.WriteString(rest)
			break
		}

		end := open + len(delimOpen) + closing + len(delimClose)
		inner := rest[open+len(delimOpen) : end-len(delimClose)]

		b.WriteString(rest[:open])

		if value, ok := ctx.Lookup(strings.TrimSpace(inner)); ok {
			b.WriteString(stringify(value))
		} else {
			b.WriteString(rest[open:end])
		}

		rest = rest[end:]
	}

	return b.String()
}
