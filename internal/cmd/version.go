package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solwire/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show solwire version information.

Displays:
  - solwire version, commit, and build date
  - The Node.js runtime found on PATH, and whether it is new enough`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.FullVersionString(version.Get(), version.DetectNodeBinary()))
			return nil
		},
	}
}
