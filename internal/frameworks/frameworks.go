// Package frameworks binds detection, template generation, and source
// patching together, one integration per supported framework. An integration
// knows where its framework keeps the entry files, which templates to render,
// and which patches wire the generated code into the existing sources.
package frameworks

import (
	"github.com/solwire/cli/internal/config"
	"github.com/solwire/cli/internal/detect"
	"github.com/solwire/cli/internal/errors"
	"github.com/solwire/cli/internal/output"
	"github.com/solwire/cli/internal/patch"
	"github.com/solwire/cli/internal/render"
	"github.com/solwire/cli/internal/templates"
)

// Input carries everything an integration run needs.
type Input struct {
	Project *detect.ProjectInfo
	Config  *config.Config
	Log     output.Logger
}

// Integration is one framework's wiring strategy. Generate materializes the
// template set into the project; Patch rewrites the existing entry and config
// files. Both are idempotent: re-running against an already integrated
// project is a sequence of no-ops.
type Integration interface {
	// Name is the framework identifier shown in logs and summaries.
	Name() string

	// Context builds the placeholder data for this project and config.
	Context(in *Input) render.Context

	// Generate renders the template set into the project's source directory
	// and returns the created files relative to it.
	Generate(in *Input) ([]string, error)

	// Patch applies the framework's source patches. A missing patch target
	// or anchor is a warning carried in the results, never an error; errors
	// are reserved for I/O failures.
	Patch(in *Input) ([]*patch.FileResult, error)
}

// ForProject selects the integration for a detected project.
func ForProject(info *detect.ProjectInfo) (Integration, error) {
	switch info.Framework {
	case detect.FrameworkReact:
		return React{}, nil
	case detect.FrameworkNext:
		return Next{}, nil
	case detect.FrameworkVue:
		return Vue{}, nil
	default:
		return nil, errors.NewDetectError(
			"no integration for framework "+string(info.Framework),
			"",
			"Supported frameworks: react, nextjs, vue",
		)
	}
}

// providerName is the component the templates generate for each variant.
func providerName(variant config.Variant) string {
	if variant == config.VariantAppKit {
		return "AppKitProvider"
	}
	return "WalletContextProvider"
}

// generateSet renders the (framework, variant) template set into the
// project's source directory.
func generateSet(in *Input, integ Integration) ([]string, error) {
	set, err := templates.Get(in.Project.Framework, in.Config.Variant)
	if err != nil {
		return nil, err
	}
	gen := templates.NewGenerator(in.Log)
	return gen.Generate(set, in.Project.SrcDir, integ.Context(in), in.Config.Features)
}
