package detect

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/solwire/cli/internal/output"
)

// appRouterPatterns mark a Next.js project on the App Router.
var appRouterPatterns = []string{
	"app/layout.{js,jsx,ts,tsx}",
	"src/app/layout.{js,jsx,ts,tsx}",
}

func hasAppRouter(root string) bool {
	_, ok := FindFirst(root, appRouterPatterns...)
	return ok
}

// FindFirst globs the patterns against root in order and returns the first
// match as an absolute path. Matches within one pattern are sorted so the
// result is stable across platforms.
func FindFirst(root string, patterns ...string) (string, bool) {
	fsys := os.DirFS(root)
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil || len(matches) == 0 {
			continue
		}
		sort.Strings(matches)
		return filepath.Join(root, filepath.FromSlash(matches[0])), true
	}
	return "", false
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

// detectPackageManager reads the lockfiles: pnpm-lock.yaml wins, then
// yarn.lock, then either bun lockfile flavor, defaulting to npm. Workspace
// repos keep the pnpm lockfile at the workspace root, so a pnpm-workspace.yaml
// found in any parent also selects pnpm.
func detectPackageManager(root string, log output.Logger) PackageManager {
	switch {
	case hasFile(root, "pnpm-lock.yaml"):
		return PMPnpm
	case hasFile(root, "yarn.lock"):
		return PMYarn
	case hasFile(root, "bun.lockb"), hasFile(root, "bun.lock"):
		return PMBun
	}
	if ws, ok := findPnpmWorkspace(root); ok {
		log.Debug("pnpm workspace detected", "workspace", ws)
		return PMPnpm
	}
	return PMNpm
}

// pnpmWorkspace is the subset of pnpm-workspace.yaml detection checks.
type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// findPnpmWorkspace walks up from root looking for a pnpm-workspace.yaml
// that actually declares packages. Files that fail to parse are ignored.
func findPnpmWorkspace(root string) (string, bool) {
	dir := root
	for {
		path := filepath.Join(dir, "pnpm-workspace.yaml")
		if data, err := os.ReadFile(path); err == nil {
			var ws pnpmWorkspace
			if err := yaml.Unmarshal(data, &ws); err == nil && len(ws.Packages) > 0 {
				return path, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
