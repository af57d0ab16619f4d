package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solwire/cli/internal/config"
	serrors "github.com/solwire/cli/internal/errors"
)

// NewUpdateCmd creates the update command.
func NewUpdateCmd(g *Globals) *cobra.Command {
	f := &integrationFlags{}

	cmd := &cobra.Command{
		Use:   "update [dir]",
		Short: "Re-apply the integration with changed settings",
		Long: `Re-run the integration from the persisted solwire.json, merged with any
flag overrides. The settings diff is printed before anything is
touched. Patching is idempotent, so re-application only changes what
the new settings require.

Examples:
  # Re-apply after editing solwire.json by hand
  solwire update

  # Switch the project to mainnet
  solwire update --network mainnet-beta

  # Add the airdrop hook to an existing integration
  solwire update --features airdrop`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, args, g, f)
		},
	}

	f.addTo(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string, g *Globals, f *integrationFlags) error {
	dir, err := resolveProjectDir(args)
	if err != nil {
		return err
	}

	if !config.Exists(dir) {
		return serrors.NewNotFoundError(
			"no "+config.FileName+" found in "+dir,
			dir,
			"Run 'solwire init' first; update only re-applies an existing integration",
		)
	}

	current := config.NewLoader(g.Log).Load(dir)
	proposed := current.Clone()
	if err := f.applyTo(cmd, proposed); err != nil {
		return err
	}
	proposed.WithDefaults()

	diff, err := config.Diff(current, proposed)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if diff == "" {
		fmt.Fprintln(w, "Settings unchanged; re-applying the integration.")
	} else {
		fmt.Fprintln(w, "Settings changes:")
		fmt.Fprint(w, diff)
	}

	opts, err := f.pipelineOptions(dir, proposed)
	if err != nil {
		return err
	}

	res, err := runPipeline(cmd.Context(), g, opts)
	if err != nil {
		return err
	}

	printRunSummary(w, res, proposed)
	return nil
}
