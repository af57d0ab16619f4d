// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/solwire/cli/internal/exec"
	"github.com/solwire/cli/internal/output"
)

// Globals holds CLI-wide state resolved during PersistentPreRunE. It is
// created once in NewRootCmd and passed explicitly into every sub-command
// constructor; there are no package-level mutable globals, and no global
// logger. Tests construct their own Globals with a Recorder and a stubbed
// runner.
type Globals struct {
	// Log is the logger handed down through every component.
	Log output.Logger

	// Runner executes package manager commands. Nil means the real one.
	Runner exec.CommandRunner

	// Verbose mirrors the --verbose flag.
	Verbose bool
}

// NewRootCmd creates the root command for the solwire CLI.
func NewRootCmd() *cobra.Command {
	g := &Globals{Log: output.NewStderrLogger(false)}

	rootCmd := &cobra.Command{
		Use:   "solwire",
		Short: "Wire Solana wallet support into an existing web project",
		Long: `solwire detects your web project's framework, installs the Solana
wallet dependencies, generates provider and hook code, and patches your
entry files to use it. Supported frameworks: React (Vite/CRA), Next.js
(App and Pages Router), and Vue 2/3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			g.Verbose = verbose
			g.Log = output.NewStderrLogger(verbose)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewInitCmd(g))
	rootCmd.AddCommand(NewUpdateCmd(g))
	rootCmd.AddCommand(NewDetectCmd(g))
	rootCmd.AddCommand(NewNetworksCmd(g))
	rootCmd.AddCommand(NewVersionCmd(g))

	return rootCmd
}
