package templates

import (
	"embed"
	"io/fs"
	"path"

	"github.com/solwire/cli/internal/config"
	"github.com/solwire/cli/internal/errors"
	"github.com/solwire/cli/internal/output"
	"github.com/solwire/cli/internal/render"
)

//go:embed react nextjs vue
var templatesFS embed.FS

// Generator materializes a template set into a project directory.
type Generator struct {
	Log output.Logger
}

func NewGenerator(log output.Logger) *Generator {
	return &Generator{Log: log}
}

// Generate renders the set's base subtree plus every enabled feature subtree
// into targetDir and returns the created file paths, relative to targetDir.
// A missing base subtree aborts; a missing feature subtree is only a warning
// so optional features can ship independently of the core set.
func (g *Generator) Generate(set Set, targetDir string, ctx render.Context, feats config.Features) ([]string, error) {
	base := path.Join(set.Root, "base")
	if _, err := fs.Stat(templatesFS, base); err != nil {
		return nil, errors.WrapNotFound(err, "template tree "+base)
	}

	created, err := render.RenderFS(templatesFS, base, targetDir, ctx)
	if err != nil {
		return nil, err
	}

	for _, feature := range enabledFeatures(feats) {
		root := path.Join(set.Root, "features", feature)
		if _, err := fs.Stat(templatesFS, root); err != nil {
			g.Log.Warn("no templates for feature, skipping",
				"feature", feature, "set", set.Root)
			continue
		}
		files, err := render.RenderFS(templatesFS, root, targetDir, ctx)
		if err != nil {
			return created, err
		}
		created = append(created, files...)
	}
	return created, nil
}

func enabledFeatures(feats config.Features) []string {
	var out []string
	if feats.Airdrop {
		out = append(out, "airdrop")
	}
	return out
}
