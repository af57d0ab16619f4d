package patch

import "strings"

// InsertImport appends stmt to the file's import block, or to the start of
// the file when there are no imports yet. The statement itself doubles as
// the idempotency marker.
func InsertImport(stmt string) Op {
	stmt = strings.TrimRight(stmt, "\n")
	return Op{
		Name:    "insert import",
		Marker:  stmt,
		Locator: ImportBlock{},
		Transform: func(src string, a Anchor) string {
			fragment := stmt + "\n"
			if a.End > 0 && src[a.End-1] != '\n' {
				fragment = "\n" + fragment
			}
			return InsertAfter(src, a, fragment)
		},
		ManualFix: "add the import manually: " + stmt,
	}
}

// AppendAfterImports inserts an arbitrary statement right after the import
// block, for setup calls that must run before the rest of the module body.
func AppendAfterImports(stmt, marker string) Op {
	stmt = strings.TrimRight(stmt, "\n")
	return Op{
		Name:    "append after imports",
		Marker:  marker,
		Locator: ImportBlock{},
		Transform: func(src string, a Anchor) string {
			fragment := "\n" + stmt + "\n"
			if a.End == 0 {
				fragment = stmt + "\n\n"
			}
			return InsertAfter(src, a, fragment)
		},
		ManualFix: "add after the imports: " + stmt,
	}
}

// WrapChildren wraps the child expression inside the named tag with open and
// close, for layout files where the provider must surround the page tree.
func WrapChildren(tag, child, open, close, marker string) Op {
	return Op{
		Name:    "wrap " + child + " in <" + tag + ">",
		Marker:  marker,
		Locator: Container{Tag: tag, Child: child},
		Transform: func(src string, a Anchor) string {
			return Wrap(src, a, open, close)
		},
		ManualFix: "wrap " + child + " with " + strings.TrimSpace(open) + "..." + strings.TrimSpace(close),
	}
}

// WrapReturned wraps a child expression that has no stable parent element,
// anchoring on the return statement that mentions it.
func WrapReturned(child, open, close, marker string) Op {
	return Op{
		Name:    "wrap returned " + child,
		Marker:  marker,
		Locator: Container{Child: child},
		Transform: func(src string, a Anchor) string {
			return Wrap(src, a, open, close)
		},
		ManualFix: "wrap " + child + " with " + strings.TrimSpace(open) + "..." + strings.TrimSpace(close),
	}
}

// WrapRenderRoot wraps the first argument of a render-style call, for SPA
// entry files where the root element is passed straight to the renderer.
func WrapRenderRoot(callee, open, close, marker string) Op {
	return Op{
		Name:    "wrap " + callee + "() root",
		Marker:  marker,
		Locator: RenderCall{Callee: callee},
		Transform: func(src string, a Anchor) string {
			return Wrap(src, a, open, close)
		},
		ManualFix: "wrap the element passed to " + callee + "() with " + strings.TrimSpace(open) + "..." + strings.TrimSpace(close),
	}
}

// ChainAfterCall inserts fragment immediately after a call expression, for
// builder chains such as createApp(App).use(plugin).
func ChainAfterCall(callee, fragment, marker string) Op {
	return Op{
		Name:    "chain after " + callee + "()",
		Marker:  marker,
		Locator: RenderCall{Callee: callee},
		Transform: func(src string, a Anchor) string {
			return InsertAfter(src, a, fragment)
		},
		ManualFix: "append " + strings.TrimSpace(fragment) + " to the " + callee + "() chain",
	}
}

// MergeConfigList merges entry into the array value of key, or injects field
// as a fresh property when the key is absent. The entry doubles as the
// idempotency marker; the merge itself also skips when the captured body
// already contains it.
func MergeConfigList(key, entry, field string) Op {
	return Op{
		Name:    "merge " + key,
		Marker:  entry,
		Locator: ConfigKey{Key: key},
		Transform: func(src string, a Anchor) string {
			out, _ := MergeOrInject(src, a, entry, field)
			return out
		},
		ManualFix: "add " + entry + " to the " + key + " array",
	}
}

// InjectPluginEntry merges entry into an array-valued plugin field, or
// injects field fresh when the list is absent.
func InjectPluginEntry(listField, entry, field string) Op {
	return Op{
		Name:    "register " + entry + " in " + listField,
		Marker:  entry,
		Locator: PluginList{Field: listField},
		Transform: func(src string, a Anchor) string {
			out, _ := MergeOrInject(src, a, entry, field)
			return out
		},
		ManualFix: "add " + entry + " to the " + listField + " array",
	}
}
