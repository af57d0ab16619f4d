// Package detect inspects a web project directory and reports the facts the
// integrations need: framework, TypeScript, router flavor, source directory,
// and package manager. Detection reads the manifest and probes the
// filesystem; it never executes project code.
package detect

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/solwire/cli/internal/errors"
	"github.com/solwire/cli/internal/output"
)

// Framework is a supported target framework.
type Framework string

const (
	FrameworkReact Framework = "react"
	FrameworkNext  Framework = "nextjs"
	FrameworkVue   Framework = "vue"
)

// ParseFramework maps a user-supplied name to a Framework. Common aliases
// are accepted.
func ParseFramework(s string) (Framework, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "react":
		return FrameworkReact, nil
	case "next", "nextjs", "next.js":
		return FrameworkNext, nil
	case "vue", "vuejs", "nuxt":
		return FrameworkVue, nil
	default:
		return "", errors.NewValidationError(
			"unknown framework: "+s,
			"",
			"framework",
			"Use one of: react, nextjs, vue",
		)
	}
}

// PackageManager is the host package manager the project uses.
type PackageManager string

const (
	PMNpm  PackageManager = "npm"
	PMYarn PackageManager = "yarn"
	PMPnpm PackageManager = "pnpm"
	PMBun  PackageManager = "bun"
)

// ParsePackageManager maps a user-supplied name to a PackageManager.
func ParsePackageManager(s string) (PackageManager, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "npm":
		return PMNpm, nil
	case "yarn":
		return PMYarn, nil
	case "pnpm":
		return PMPnpm, nil
	case "bun":
		return PMBun, nil
	default:
		return "", errors.NewValidationError(
			"unknown package manager: "+s,
			"",
			"package-manager",
			"Use one of: npm, yarn, pnpm, bun",
		)
	}
}

// ProjectInfo is the detection result every integration consumes.
type ProjectInfo struct {
	// Root is the absolute path of the directory holding package.json.
	Root string

	// Name is the manifest name, or the directory base name when unset.
	Name string

	Framework  Framework
	TypeScript bool

	// AppRouter is true for Next.js projects using the app directory.
	AppRouter bool

	// SrcDir is the absolute path of the source directory: Root/src when it
	// exists, otherwise Root.
	SrcDir string

	PackageManager PackageManager

	Dependencies    map[string]string
	DevDependencies map[string]string
}

// HasDependency reports whether name appears in either dependency map.
func (p *ProjectInfo) HasDependency(name string) bool {
	if _, ok := p.Dependencies[name]; ok {
		return true
	}
	_, ok := p.DevDependencies[name]
	return ok
}

// DependencySpec returns the declared version constraint for name from
// either map.
func (p *ProjectInfo) DependencySpec(name string) string {
	if v, ok := p.Dependencies[name]; ok {
		return v
	}
	return p.DevDependencies[name]
}

// Options adjusts detection.
type Options struct {
	// Framework forces the result instead of inferring it from the
	// dependency map. Empty means auto-detect.
	Framework Framework
}

// Detect walks up from dir to the nearest package.json and builds the
// ProjectInfo. A missing manifest or project directory is fatal; so is an
// unrecognizable framework unless Options.Framework overrides it.
func Detect(dir string, opts Options, log output.Logger) (*ProjectInfo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.WrapValidation(err, "resolve project directory")
	}
	if st, err := os.Stat(abs); err != nil || !st.IsDir() {
		return nil, errors.NewNotFoundError(
			"project directory does not exist",
			abs,
			"Pass the path of an existing project, or run solwire from inside one",
		)
	}

	root, manifest, err := findManifest(abs)
	if err != nil {
		return nil, err
	}
	log.Debug("found project manifest", "root", root)

	info := &ProjectInfo{
		Root:            root,
		Name:            manifest.Name,
		Dependencies:    manifest.Dependencies,
		DevDependencies: manifest.DevDependencies,
	}
	if info.Name == "" {
		info.Name = filepath.Base(root)
	}

	info.Framework = opts.Framework
	if info.Framework == "" {
		fw, ok := inferFramework(info)
		if !ok {
			return nil, errors.NewDetectError(
				"none of the supported frameworks appear in the project dependencies",
				filepath.Join(root, "package.json"),
				"Pass --framework react|nextjs|vue to override detection",
			)
		}
		info.Framework = fw
	}

	info.TypeScript = hasFile(root, "tsconfig.json") || info.HasDependency("typescript")
	info.AppRouter = info.Framework == FrameworkNext && hasAppRouter(root)

	info.SrcDir = root
	if st, err := os.Stat(filepath.Join(root, "src")); err == nil && st.IsDir() {
		info.SrcDir = filepath.Join(root, "src")
	}

	info.PackageManager = detectPackageManager(root, log)

	log.Debug("project detected",
		"name", info.Name,
		"framework", info.Framework,
		"typescript", info.TypeScript,
		"appRouter", info.AppRouter,
		"packageManager", info.PackageManager,
	)
	return info, nil
}

// inferFramework picks the framework from the dependency maps with fixed
// priority: next beats react beats vue, since Next.js projects always list
// react as well. Nuxt counts as vue.
func inferFramework(info *ProjectInfo) (Framework, bool) {
	switch {
	case info.HasDependency("next"):
		return FrameworkNext, true
	case info.HasDependency("react"):
		return FrameworkReact, true
	case info.HasDependency("vue"), info.HasDependency("nuxt"):
		return FrameworkVue, true
	}
	return "", false
}

// MajorVersion extracts the leading major version from a manifest constraint
// such as ^3.4.0 or ~2.7.14. Returns -1 when no number can be read.
func MajorVersion(spec string) int {
	s := strings.TrimLeft(spec, "^~=<> v")
	n := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		if n < 0 {
			n = 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
