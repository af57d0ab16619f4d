package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solwire/cli/internal/config"
	"github.com/solwire/cli/internal/envfile"
	serrors "github.com/solwire/cli/internal/errors"
	"github.com/solwire/cli/internal/output"
	"github.com/solwire/cli/internal/prompt"
)

// NewInitCmd creates the init command.
func NewInitCmd(g *Globals) *cobra.Command {
	f := &integrationFlags{}

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Add Solana wallet support to a project",
		Long: `Detect the project framework, install the wallet dependencies, generate
provider and hook code, and patch the entry files to mount it.

Choices not covered by flags or an existing solwire.json are asked
interactively when the terminal allows it; --no-input (or a pipe)
falls back to the defaults instead.

The run is idempotent. A patch that is already present is skipped, and
an entry file whose anchor cannot be found becomes a warning with
manual instructions instead of an error.

Examples:
  # Integrate the project in the current directory
  solwire init

  # Everything up front, no prompts
  solwire init ./my-dapp --network devnet --wallets phantom,solflare --no-input

  # Use the hosted Reown AppKit widget instead of wallet-adapter
  solwire init --appkit --project-id 3f9a1b2c`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, args, g, f)
		},
	}

	f.addTo(cmd)

	return cmd
}

func runInit(cmd *cobra.Command, args []string, g *Globals, f *integrationFlags) error {
	dir, err := resolveProjectDir(args)
	if err != nil {
		return err
	}

	// Settings resolution order: persisted solwire.json, then flags, then
	// prompts for whatever is still open.
	hadConfig := config.Exists(dir)
	cfg := config.NewLoader(g.Log).Load(dir)
	if err := f.applyTo(cmd, cfg); err != nil {
		return err
	}

	if !f.NoInput && output.IsTTY() {
		if err := promptOpenChoices(cmd, cfg, hadConfig); err != nil {
			if errors.Is(err, serrors.ErrCanceled) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return &serrors.ExitError{Err: err, Code: serrors.ExitCanceled, Printed: true}
			}
			return err
		}
	}

	opts, err := f.pipelineOptions(dir, cfg)
	if err != nil {
		return err
	}

	res, err := runPipeline(cmd.Context(), g, opts)
	if err != nil {
		return err
	}

	printRunSummary(cmd.OutOrStdout(), res, cfg)
	return nil
}

// promptOpenChoices asks for the choices neither flags nor a persisted
// solwire.json settled. Callers guard for TTY and --no-input; any cancel
// returns ErrCanceled.
func promptOpenChoices(cmd *cobra.Command, cfg *config.Config, hadConfig bool) error {
	flags := cmd.Flags()

	if !hadConfig && !flags.Changed("network") {
		network, err := prompt.Select("Select a Solana network", networkOptions())
		if err != nil {
			return err
		}
		cfg.Network = network
	}

	if cfg.Variant != config.VariantAppKit && !hadConfig && !flags.Changed("wallets") {
		wallets, err := prompt.MultiSelect("Select wallet adapters", walletOptions(), cfg.Wallets)
		if err != nil {
			return err
		}
		if len(wallets) > 0 {
			cfg.Wallets = wallets
		}
	}

	// The AppKit project ID has no default; ask whenever it is still missing.
	if cfg.Variant == config.VariantAppKit && cfg.AppKit.ProjectID == "" {
		id, err := prompt.Input("Reown AppKit project ID", "from cloud.reown.com")
		if err != nil {
			return err
		}
		cfg.AppKit.ProjectID = id
	}

	return nil
}

func networkOptions() []prompt.Option {
	opts := make([]prompt.Option, 0, len(config.Networks))
	for _, n := range config.Networks {
		url, _ := envfile.RPCURL(n)
		opts = append(opts, prompt.Option{Value: n, Label: n, Description: url})
	}
	return opts
}

// walletLabels maps wallet identifiers to their display names.
var walletLabels = map[string]string{
	"phantom":  "Phantom",
	"solflare": "Solflare",
	"coinbase": "Coinbase Wallet",
	"ledger":   "Ledger",
}

func walletOptions() []prompt.Option {
	opts := make([]prompt.Option, 0, len(config.KnownWallets))
	for _, w := range config.KnownWallets {
		label := walletLabels[w]
		if label == "" {
			label = w
		}
		opts = append(opts, prompt.Option{Value: w, Label: label})
	}
	return opts
}
