// Package pipeline orchestrates a full wallet integration run over a target
// project. The phase sequence is fixed: detect, configure, install, generate,
// patch, persist. Fatal errors from any phase return (nil, err); skipped
// patches are collected as warnings in the Result so one stubborn file never
// aborts the run.
package pipeline

import (
	"context"
	"path/filepath"

	"github.com/solwire/cli/internal/config"
	"github.com/solwire/cli/internal/deps"
	"github.com/solwire/cli/internal/detect"
	"github.com/solwire/cli/internal/envfile"
	"github.com/solwire/cli/internal/errors"
	"github.com/solwire/cli/internal/exec"
	"github.com/solwire/cli/internal/frameworks"
	"github.com/solwire/cli/internal/output"
	"github.com/solwire/cli/internal/patch"
)

// Options configures a run.
type Options struct {
	// Dir is the project directory to integrate. Required.
	Dir string

	// Framework forces detection instead of inferring it from package.json.
	// Optional.
	Framework detect.Framework

	// PackageManager overrides the lockfile-based pick. Optional.
	PackageManager detect.PackageManager

	// SkipInstall leaves the package manager untouched; generated code will
	// not resolve until the user installs the catalog packages themselves.
	SkipInstall bool

	// Config is the resolved configuration, from solwire.json merged with
	// flags and prompts. Nil means defaults.
	Config *config.Config
}

// Validate checks that required options are set.
func (o Options) Validate() error {
	if o.Dir == "" {
		return errors.NewValidationError(
			"project directory is required",
			"",
			"dir",
			"Pass a directory argument or run from inside the project",
		)
	}
	return nil
}

// Integrator runs the phase sequence with injected collaborators, so tests
// can stub the package manager and capture the log.
type Integrator struct {
	exec exec.CommandRunner
	log  output.Logger
}

// New creates an Integrator. A nil runner falls back to the real one.
func New(runner exec.CommandRunner, log output.Logger) *Integrator {
	if runner == nil {
		runner = exec.NewRealRunner()
	}
	return &Integrator{exec: runner, log: log}
}

// Result is the outcome of a run.
type Result struct {
	// Project is the detection result the run was built on.
	Project *detect.ProjectInfo

	// Framework is the integration that ran.
	Framework string

	// Variant is the integration flavor that was applied.
	Variant config.Variant

	// Installed lists the packages handed to the package manager. Empty when
	// the install was skipped.
	Installed []deps.Package

	// Generated lists created template files, relative to the source dir.
	Generated []string

	// Patched holds the per-file patch outcomes.
	Patched []*patch.FileResult

	// EnvPath is the env file that was created or extended.
	EnvPath string

	// EnvResult describes what happened to the env file.
	EnvResult *envfile.WriteResult

	// Warnings lists every patch that needs finishing by hand.
	Warnings []PatchWarning
}

// HasWarnings reports whether any patch was skipped.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AppliedPatches counts the ops that changed a file.
func (r *Result) AppliedPatches() int {
	n := 0
	for _, fr := range r.Patched {
		n += fr.Applied()
	}
	return n
}

// Run executes the pipeline and returns results.
//
// Phase sequence:
//  1. DETECT:    detect.Detect() → *detect.ProjectInfo
//  2. CONFIGURE: defaults + validation, integration selection
//  3. INSTALL:   deps.Installer.Install() (skippable), awaited to completion
//  4. GENERATE:  Integration.Generate() → created files
//  5. PATCH:     Integration.Patch() → per-file outcomes, misses → warnings
//  6. PERSIST:   solwire.json + env file, written last so a failed run
//     leaves no settings behind
//
// Fatal errors from any phase return (nil, err). Context cancellation is
// checked after the install, the one long-running external step.
func (ig *Integrator) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Phase 1: DETECT — project facts from the manifest and filesystem.
	info, err := detect.Detect(opts.Dir, detect.Options{Framework: opts.Framework}, ig.log)
	if err != nil {
		return nil, err
	}
	if opts.PackageManager != "" {
		info.PackageManager = opts.PackageManager
	}

	// Phase 2: CONFIGURE — fill defaults and validate before touching disk.
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	integ, err := frameworks.ForProject(info)
	if err != nil {
		return nil, err
	}
	in := &frameworks.Input{Project: info, Config: cfg, Log: ig.log}

	ig.log.Debug("integration selected",
		"framework", integ.Name(),
		"variant", cfg.Variant,
		"packageManager", info.PackageManager,
	)

	// Phase 3: INSTALL — dependencies must land before any generated import
	// can resolve, and before the patch step per the fixed ordering.
	var installed []deps.Package
	if opts.SkipInstall {
		ig.log.Debug("skipping dependency install")
	} else {
		installed = deps.Packages(info.Framework, cfg.Variant, cfg.Features)
		inst := deps.NewInstaller(ig.exec, ig.log)
		if err := inst.Install(ctx, info.PackageManager, info.Root, installed); err != nil {
			return nil, err
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Phase 4: GENERATE — render the template set into the source directory.
	generated, err := integ.Generate(in)
	if err != nil {
		return nil, err
	}

	// Phase 5: PATCH — wire the generated code into the existing sources.
	patched, err := integ.Patch(in)
	if err != nil {
		return nil, err
	}
	warnings := collectPatchWarnings(patched)

	// Phase 6: PERSIST — settings and env defaults, written only after the
	// project itself was successfully touched.
	if err := config.Save(info.Root, cfg); err != nil {
		return nil, err
	}
	envPath := filepath.Join(info.Root, frameworks.EnvFileName(info))
	envRes, err := envfile.Write(envPath, frameworks.EnvEntries(info, cfg))
	if err != nil {
		return nil, err
	}

	// Ensure non-nil slices for consistent consumer behavior.
	if installed == nil {
		installed = make([]deps.Package, 0)
	}
	if generated == nil {
		generated = make([]string, 0)
	}
	if patched == nil {
		patched = make([]*patch.FileResult, 0)
	}
	if warnings == nil {
		warnings = make([]PatchWarning, 0)
	}

	return &Result{
		Project:   info,
		Framework: integ.Name(),
		Variant:   cfg.Variant,
		Installed: installed,
		Generated: generated,
		Patched:   patched,
		EnvPath:   envPath,
		EnvResult: envRes,
		Warnings:  warnings,
	}, nil
}
