package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/solwire/cli/internal/config"
	"github.com/solwire/cli/internal/envfile"
	"github.com/solwire/cli/internal/output"
	"github.com/solwire/cli/internal/patch"
	"github.com/solwire/cli/internal/pipeline"
)

// runPipeline executes the integration, behind a spinner when the terminal
// is interactive and the log is quiet. Verbose runs log each phase instead.
func runPipeline(ctx context.Context, g *Globals, opts pipeline.Options) (*pipeline.Result, error) {
	ig := pipeline.New(g.Runner, g.Log)

	var res *pipeline.Result
	run := func() error {
		var err error
		res, err = ig.Run(ctx, opts)
		return err
	}

	if output.IsTTY() && !g.Verbose {
		if err := output.RunWithSpinner(ctx, run, output.WithTitle("Wiring Solana wallet support...")); err != nil {
			return nil, err
		}
		return res, nil
	}
	if err := run(); err != nil {
		return nil, err
	}
	return res, nil
}

// printRunSummary renders the post-run report shared by init and update: a
// file tree of what the run touched, the install line, and any manual-fix
// warnings.
func printRunSummary(w io.Writer, res *pipeline.Result, cfg *config.Config) {
	fmt.Fprintln(w)
	fmt.Fprint(w, summaryTree(res))
	fmt.Fprintln(w)

	if len(res.Installed) > 0 {
		fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf(
			"Installed %d packages with %s", len(res.Installed), res.Project.PackageManager)))
	}
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf(
		"Solana wallet support wired for %s (%s, %s)", res.Framework, res.Variant, cfg.Network)))

	for _, warn := range res.Warnings {
		fmt.Fprintln(w, output.FormatWarning(warn.String()))
	}
}

// summaryTree lays out every file the run touched, keyed by project-relative
// path, with a status word as the description.
func summaryTree(res *pipeline.Result) string {
	files := make(map[string]string, len(res.Generated)+len(res.Patched)+2)

	srcRel, err := filepath.Rel(res.Project.Root, res.Project.SrcDir)
	if err != nil {
		srcRel = "."
	}
	for _, name := range res.Generated {
		files[filepath.Join(srcRel, name)] = output.StatusCreated
	}

	for _, fr := range res.Patched {
		rel, err := filepath.Rel(res.Project.Root, fr.Path)
		if err != nil {
			rel = fr.Path
		}
		files[rel] = patchStatus(fr)
	}

	files[config.FileName] = "settings"
	if res.EnvResult != nil && res.EnvResult.Status != envfile.StatusUnchanged {
		files[filepath.Base(res.EnvPath)] = string(res.EnvResult.Status)
	}

	return output.RenderFileTree(res.Project.Name, files)
}

func patchStatus(fr *patch.FileResult) string {
	switch {
	case len(fr.Missed()) > 0:
		return output.StatusSkipped
	case fr.Wrote:
		return output.StatusPatched
	default:
		return output.StatusUnchanged
	}
}
