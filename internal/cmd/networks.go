package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/solwire/cli/internal/config"
	"github.com/solwire/cli/internal/envfile"
	"github.com/solwire/cli/internal/output"
)

// NewNetworksCmd creates the networks command.
func NewNetworksCmd(_ *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the supported Solana networks",
		Long: `List the Solana networks init and update accept for --network,
with the public RPC endpoint each one resolves to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printNetworks(cmd.OutOrStdout())
			return nil
		},
	}
}

func printNetworks(w io.Writer) {
	def := config.Default().Network

	tbl := output.NewTable("NETWORK", "RPC URL", "")
	for _, n := range config.Networks {
		url, _ := envfile.RPCURL(n)
		marker := ""
		if n == def {
			marker = "default"
		}
		tbl.Row(n, url, marker)
	}
	fmt.Fprintln(w, tbl.String())
}
