// Package patch locates structural anchors in JavaScript, TypeScript, and
// Vue source text and rewrites the files in place, idempotently, without
// parsing an AST. Locators are single-pass text scans that tolerate arbitrary
// whitespace, either quote style, and trailing commas. Files with duplicate
// same-named constructs are out of contract: locators never crash on them,
// the first match wins.
package patch

// Mode records which structural form a locator matched, so the applier knows
// how to splice.
type Mode int

const (
	// ModeRegion brackets a matched region; Inner captures the text to wrap
	// or the boundary to insert after.
	ModeRegion Mode = iota

	// ModeKeyBody means a named config key exists; Inner brackets its array
	// body for merging.
	ModeKeyBody

	// ModeOpenBrace means the config key was absent; End sits immediately
	// after the enclosing object's opening brace for fresh-field injection.
	ModeOpenBrace
)

// Anchor is a located structural region within source text: byte offsets of
// the full match plus the captured sub-region the appliers operate on.
// Anchors are recomputed from fresh file content on every patch attempt and
// never persisted — the user may edit files between runs.
type Anchor struct {
	// Start and End bracket the full matched region.
	Start int
	End   int

	// InnerStart and InnerEnd bracket the captured sub-region: the child
	// expression for wrapping, or the array body for merging.
	InnerStart int
	InnerEnd   int

	Mode Mode
}

// Inner returns the captured sub-region of src.
func (a Anchor) Inner(src string) string {
	return src[a.InnerStart:a.InnerEnd]
}
