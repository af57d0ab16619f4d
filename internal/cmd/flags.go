package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/solwire/cli/internal/config"
	"github.com/solwire/cli/internal/detect"
	serrors "github.com/solwire/cli/internal/errors"
	"github.com/solwire/cli/internal/pipeline"
)

// integrationFlags are shared by init and update, which feed the same
// pipeline. Only flags the user explicitly set are merged onto the config,
// so update leaves persisted values alone unless overridden.
type integrationFlags struct {
	Network        string
	Wallets        []string
	AppKit         bool
	ProjectID      string
	Features       []string
	Framework      string
	PackageManager string
	SkipInstall    bool
	NoInput        bool
}

// addTo registers the shared integration flags on the given cobra command.
func (f *integrationFlags) addTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Network, "network", "",
		"Solana network ("+strings.Join(config.Networks, ", ")+")")
	cmd.Flags().StringSliceVar(&f.Wallets, "wallets", nil,
		"Wallet adapters to pre-register ("+strings.Join(config.KnownWallets, ", ")+")")
	cmd.Flags().BoolVar(&f.AppKit, "appkit", false,
		"Use the Reown AppKit widget instead of the wallet-adapter stack")
	cmd.Flags().StringVar(&f.ProjectID, "project-id", "",
		"Reown AppKit project ID (required with --appkit)")
	cmd.Flags().StringSliceVar(&f.Features, "features", nil,
		"Optional features (airdrop, polyfills)")
	cmd.Flags().StringVar(&f.Framework, "framework", "",
		"Override framework detection (react, nextjs, vue)")
	cmd.Flags().StringVar(&f.PackageManager, "package-manager", "",
		"Override the package manager (npm, yarn, pnpm, bun)")
	cmd.Flags().BoolVar(&f.SkipInstall, "skip-install", false,
		"Skip the dependency install step")
	cmd.Flags().BoolVar(&f.NoInput, "no-input", false,
		"Never prompt; missing choices use defaults")
}

// applyTo merges explicitly set flags onto cfg.
func (f *integrationFlags) applyTo(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("network") {
		cfg.Network = f.Network
	}
	if flags.Changed("wallets") {
		cfg.Wallets = f.Wallets
	}
	if flags.Changed("appkit") {
		if f.AppKit {
			cfg.Variant = config.VariantAppKit
		} else {
			cfg.Variant = config.VariantAdapter
		}
	}
	if flags.Changed("project-id") {
		cfg.AppKit.ProjectID = f.ProjectID
	}
	if flags.Changed("features") {
		feats, err := parseFeatures(f.Features)
		if err != nil {
			return err
		}
		cfg.Features = feats
	}
	return nil
}

// pipelineOptions builds the run options, validating the override flags.
func (f *integrationFlags) pipelineOptions(dir string, cfg *config.Config) (pipeline.Options, error) {
	opts := pipeline.Options{Dir: dir, SkipInstall: f.SkipInstall, Config: cfg}

	if f.Framework != "" {
		fw, err := detect.ParseFramework(f.Framework)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Framework = fw
	}
	if f.PackageManager != "" {
		pm, err := detect.ParsePackageManager(f.PackageManager)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.PackageManager = pm
	}
	return opts, nil
}

// parseFeatures maps --features names onto the config toggles.
func parseFeatures(names []string) (config.Features, error) {
	var feats config.Features
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "airdrop":
			feats.Airdrop = true
		case "polyfills":
			feats.Polyfills = true
		default:
			return config.Features{}, serrors.NewValidationError(
				"unknown feature: "+name,
				"",
				"features",
				"Use any of: airdrop, polyfills",
			)
		}
	}
	return feats, nil
}

// resolveProjectDir returns the project directory from command args,
// defaulting to the current directory. A leading ~ expands to the home
// directory; the pipeline resolves the rest.
func resolveProjectDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	return config.ExpandPath(dir)
}
