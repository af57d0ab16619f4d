package patch

import (
	"fmt"
	"regexp"
)

// Locator is the closed set of anchor kinds the patcher understands. Each
// variant walks its fallback tiers in a fixed order and reports ok=false as
// the explicit give-up state; callers must handle that outcome, there is no
// panic path and no implicit default. The unexported method keeps the set
// closed to this package.
type Locator interface {
	// Locate scans content for the anchor. ok=false means every tier was
	// exhausted and the construct is absent.
	Locate(content string) (a Anchor, ok bool)

	// Kind names the variant for logs and warnings.
	Kind() string

	sealed()
}

// ImportBlock anchors the end of the leading import statements. When the
// file has no imports at all the anchor degrades to the start of the file,
// so Locate never gives up; the degenerate anchor is still a success.
type ImportBlock struct{}

var importStmtRe = regexp.MustCompile(`(?m)^[ \t]*import\s+(?:[^;'"]+from\s+)?['"][^'"]+['"];?[ \t]*\r?\n?`)

func (ImportBlock) Locate(content string) (Anchor, bool) {
	locs := importStmtRe.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return Anchor{Mode: ModeRegion}, true
	}
	last := locs[len(locs)-1]
	return Anchor{Start: locs[0][0], End: last[1], Mode: ModeRegion}, true
}

func (ImportBlock) Kind() string { return "import block" }
func (ImportBlock) sealed()      {}

// Container anchors a JSX or template child expression inside a named tag.
// Tiers, in order: the tag directly wrapping the isolated child expression,
// the tag containing the child somewhere among siblings, and finally any
// return statement containing the child. The captured inner region is always
// the child expression itself, so wrapping leaves siblings and indentation
// alone.
type Container struct {
	// Tag is the element name, such as "body". An empty Tag skips the tag
	// tiers entirely and anchors on the return statement alone, for files
	// where the child has no stable parent element.
	Tag string

	// Child is the literal expression to capture, such as "{children}".
	Child string
}

func (c Container) Locate(content string) (Anchor, bool) {
	if c.Tag != "" {
		if a, ok := c.exactWrap(content); ok {
			return a, true
		}
		if a, ok := c.tagContains(content); ok {
			return a, true
		}
	}
	if a, ok := c.returnContains(content); ok {
		return a, true
	}
	return Anchor{}, false
}

// exactWrap matches <Tag ...> Child </Tag> with only whitespace around the
// child.
func (c Container) exactWrap(content string) (Anchor, bool) {
	re := regexp.MustCompile(
		`<` + regexp.QuoteMeta(c.Tag) + `(?:\s[^>]*)?>\s*(` + regexp.QuoteMeta(c.Child) + `)\s*</` + regexp.QuoteMeta(c.Tag) + `>`)
	return anchorFromSubmatch(re, content)
}

// tagContains matches the child anywhere between <Tag> and </Tag>, siblings
// allowed on either side.
func (c Container) tagContains(content string) (Anchor, bool) {
	re := regexp.MustCompile(
		`(?s)<` + regexp.QuoteMeta(c.Tag) + `(?:\s[^>]*)?>.*?(` + regexp.QuoteMeta(c.Child) + `).*?</` + regexp.QuoteMeta(c.Tag) + `>`)
	return anchorFromSubmatch(re, content)
}

// returnContains is the last resort: any return statement whose expression
// mentions the child.
func (c Container) returnContains(content string) (Anchor, bool) {
	re := regexp.MustCompile(`(?s)\breturn\b[^;]*?(` + regexp.QuoteMeta(c.Child) + `)`)
	return anchorFromSubmatch(re, content)
}

func (c Container) Kind() string {
	if c.Tag == "" {
		return "return statement"
	}
	return fmt.Sprintf("<%s> container", c.Tag)
}

func (Container) sealed() {}

// RenderCall anchors an invocation of a named callee, such as render or
// createApp, and captures its first argument for wrapping. The first
// occurrence wins; nested parentheses, JSX props, and string arguments are
// handled by a balanced scan rather than the match pattern.
type RenderCall struct {
	// Callee is the bare function name to find, matched as .Callee( or a
	// standalone Callee(.
	Callee string
}

func (r RenderCall) Locate(content string) (Anchor, bool) {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(r.Callee) + `\s*\(`)
	loc := re.FindStringIndex(content)
	if loc == nil {
		return Anchor{}, false
	}
	open := loc[1] - 1
	end := scanBalanced(content, open)
	if end == -1 {
		return Anchor{}, false
	}
	argStart, argEnd, ok := firstArgSpan(content, open)
	if !ok {
		return Anchor{}, false
	}
	return Anchor{
		Start:      loc[0],
		End:        end,
		InnerStart: argStart,
		InnerEnd:   argEnd,
		Mode:       ModeRegion,
	}, true
}

func (r RenderCall) Kind() string { return r.Callee + "() call" }
func (RenderCall) sealed()        {}

// ConfigKey anchors a named key in a config object literal. When the key
// exists with an array value the anchor captures the array body for merging;
// when it is absent the anchor falls back to just after the enclosing
// object's opening brace so the key can be injected fresh.
type ConfigKey struct {
	// Key is the property name, such as "transpilePackages".
	Key string
}

func (k ConfigKey) Locate(content string) (Anchor, bool) {
	if a, ok := keyArrayBody(content, k.Key); ok {
		return a, true
	}
	return enclosingObjectBrace(content)
}

func (k ConfigKey) Kind() string { return k.Key + " config key" }
func (ConfigKey) sealed()        {}

// PluginList anchors a plugin or similar array-valued field in a build
// config. Same tiers as ConfigKey: capture the existing array body, else
// fall back to the enclosing object's opening brace.
type PluginList struct {
	// Field is the array field name, such as "plugins".
	Field string
}

func (p PluginList) Locate(content string) (Anchor, bool) {
	if a, ok := keyArrayBody(content, p.Field); ok {
		return a, true
	}
	return enclosingObjectBrace(content)
}

func (p PluginList) Kind() string { return p.Field + " list" }
func (PluginList) sealed()        {}

// keyArrayBody finds key: [ ... ] and captures the body between the
// brackets. The key may be bare or quoted; the bracket pairing is resolved
// by a balanced scan so nested arrays and string contents are safe.
func keyArrayBody(content, key string) (Anchor, bool) {
	re := regexp.MustCompile(`['"]?` + regexp.QuoteMeta(key) + `['"]?\s*:\s*\[`)
	loc := re.FindStringIndex(content)
	if loc == nil {
		return Anchor{}, false
	}
	open := loc[1] - 1
	end := scanBalanced(content, open)
	if end == -1 {
		return Anchor{}, false
	}
	return Anchor{
		Start:      loc[0],
		End:        end,
		InnerStart: open + 1,
		InnerEnd:   end - 1,
		Mode:       ModeKeyBody,
	}, true
}

// configRootRe matches the openings that introduce a config object literal
// in the files this tool patches: CommonJS exports, ESM default exports,
// defineConfig calls, and plain const bindings. First match wins.
var configRootRe = regexp.MustCompile(
	`(?:module\.exports\s*=\s*|export\s+default\s+defineConfig\s*\(\s*|export\s+default\s+|(?:const|let|var)\s+\w+(?:\s*:\s*\w+)?\s*=\s*)\{`)

// enclosingObjectBrace anchors just after the opening brace of the config
// object so a fresh field can be injected at the top.
func enclosingObjectBrace(content string) (Anchor, bool) {
	loc := configRootRe.FindStringIndex(content)
	if loc == nil {
		return Anchor{}, false
	}
	return Anchor{Start: loc[0], End: loc[1], Mode: ModeOpenBrace}, true
}

// anchorFromSubmatch turns a regexp with one capture group into an anchor
// whose inner region is that group.
func anchorFromSubmatch(re *regexp.Regexp, content string) (Anchor, bool) {
	m := re.FindStringSubmatchIndex(content)
	if m == nil || m[2] == -1 {
		return Anchor{}, false
	}
	return Anchor{
		Start:      m[0],
		End:        m[1],
		InnerStart: m[2],
		InnerEnd:   m[3],
		Mode:       ModeRegion,
	}, true
}

// compile-time closure of the variant set
var _ = []Locator{ImportBlock{}, Container{}, RenderCall{}, ConfigKey{}, PluginList{}}
