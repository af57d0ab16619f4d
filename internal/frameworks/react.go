package frameworks

import (
	"github.com/solwire/cli/internal/detect"
	"github.com/solwire/cli/internal/patch"
	"github.com/solwire/cli/internal/render"
)

// React wires the wallet provider into a Vite-style React SPA: templates
// under the source directory, then the entry file gets the provider import
// and a wrap of the element passed to the root render call.
type React struct{}

func (React) Name() string { return "react" }

func (React) Context(in *Input) render.Context {
	return baseContext(in, "      ")
}

func (r React) Generate(in *Input) ([]string, error) {
	return generateSet(in, r)
}

// reactEntryPatterns are probed in order; the first hit is the entry file.
var reactEntryPatterns = []string{
	"src/main.{tsx,jsx,ts,js}",
	"src/index.{tsx,jsx,ts,js}",
	"main.{tsx,jsx,ts,js}",
	"index.{tsx,jsx,ts,js}",
}

func (r React) Patch(in *Input) ([]*patch.FileResult, error) {
	provider := providerName(in.Config.Variant)

	entry, ok := detect.FindFirst(in.Project.Root, reactEntryPatterns...)
	if !ok {
		in.Log.Warn("no entry file found, provider not wired",
			"searched", "src/main.*, src/index.*",
			"fix", "wrap your root element with <"+provider+">",
		)
		return nil, nil
	}

	ops := []patch.Op{
		patch.InsertImport("import { " + provider + " } from './components/" + provider + "';"),
		patch.WrapRenderRoot("render", "<"+provider+">", "</"+provider+">", "<"+provider+">"),
	}

	fr, err := patch.NewPatcher(in.Log).PatchFile(entry, ops)
	if err != nil {
		return nil, err
	}
	return []*patch.FileResult{fr}, nil
}
