package render

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// RenderFile renders a single on-disk template file to dstPath. Parent
// directories are created as needed; an existing file at dstPath is
// overwritten unconditionally.
func RenderFile(srcPath, dstPath string, ctx Context) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", srcPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dstPath, err)
	}

	if err := os.WriteFile(dstPath, []byte(Render(string(content), ctx)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dstPath, err)
	}

	return nil
}

// RenderTree materializes an on-disk template directory into dstDir. Every
// entry NAME is itself rendered before it is joined into the target path, so
// a template file named Provider.{{ext.component}} lands as Provider.tsx or
// Provider.jsx. Directories are created idempotently; files overwrite any
// existing target unconditionally — incremental edits to pre-existing project
// files belong to the patch package, never to the renderer.
//
// A missing srcDir is an error that aborts the whole operation. A failure
// partway through leaves the already-written files in place; there is no
// transactional guarantee across a tree.
func RenderTree(srcDir, dstDir string, ctx Context) ([]string, error) {
	info, err := os.Stat(srcDir)
	if err != nil {
		return nil, fmt.Errorf("template source %s: %w", srcDir, err)
	}
	if !info.IsDir() {
		name := Render(filepath.Base(srcDir), ctx)
		if err := RenderFile(srcDir, filepath.Join(dstDir, name), ctx); err != nil {
			return nil, err
		}
		return []string{name}, nil
	}

	var created []string
	err = renderDirEntries(srcDir, dstDir, "", ctx, &created)
	return created, err
}

func renderDirEntries(srcDir, dstDir, rel string, ctx Context, created *[]string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("reading template directory %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		name := Render(entry.Name(), ctx)
		srcPath := filepath.Join(srcDir, entry.Name())
		dstPath := filepath.Join(dstDir, name)
		relPath := path.Join(rel, name)

		if entry.IsDir() {
			if err := os.MkdirAll(dstPath, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", dstPath, err)
			}
			if err := renderDirEntries(srcPath, dstPath, relPath, ctx, created); err != nil {
				return err
			}
			continue
		}

		if err := RenderFile(srcPath, dstPath, ctx); err != nil {
			return err
		}
		*created = append(*created, relPath)
	}

	return nil
}

// RenderFS materializes a template tree from an fs.FS (embedded templates
// render through the same engine as on-disk ones). root selects the subtree;
// the returned paths are target-relative with forward slashes.
func RenderFS(fsys fs.FS, root, dstDir string, ctx Context) ([]string, error) {
	if _, err := fs.Stat(fsys, root); err != nil {
		return nil, fmt.Errorf("template source %s: %w", root, err)
	}

	var created []string

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(p, root)
		rel = strings.TrimPrefix(rel, "/")
		if rel == "" {
			return nil
		}

		renderedRel := Render(rel, ctx)
		dstPath := filepath.Join(dstDir, filepath.FromSlash(renderedRel))

		if d.IsDir() {
			return os.MkdirAll(dstPath, 0o755)
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}

		if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", dstPath, err)
		}

		if err := os.WriteFile(dstPath, []byte(Render(string(content), ctx)), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dstPath, err)
		}

		created = append(created, renderedRel)
		return nil
	})

	return created, err
}
