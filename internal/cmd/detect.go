package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/solwire/cli/internal/detect"
	"github.com/solwire/cli/internal/output"
)

// NewDetectCmd creates the detect command.
func NewDetectCmd(g *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [dir]",
		Short: "Show what solwire detects about a project",
		Long: `Run framework detection only and print the result. Nothing is
installed, generated, or patched.

Examples:
  # Inspect the current directory
  solwire detect

  # Inspect another project
  solwire detect ../my-dapp`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, g)
		},
	}
}

func runDetect(cmd *cobra.Command, args []string, g *Globals) error {
	dir, err := resolveProjectDir(args)
	if err != nil {
		return err
	}

	info, err := detect.Detect(dir, detect.Options{}, g.Log)
	if err != nil {
		return err
	}

	printProjectInfo(cmd.OutOrStdout(), info)
	return nil
}

func printProjectInfo(w io.Writer, info *detect.ProjectInfo) {
	fmt.Fprintln(w, output.StyleSummary.Render(info.Name))

	rows := []struct{ key, value string }{
		{"Framework", string(info.Framework)},
		{"TypeScript", yesNo(info.TypeScript)},
		{"Router", routerName(info)},
		{"Source dir", displayPath(info.Root, info.SrcDir)},
		{"Package manager", string(info.PackageManager)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %-16s %s\n", r.key, output.StyleNoun.Render(r.value))
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// routerName reports the Next.js router flavor; other frameworks have none.
func routerName(info *detect.ProjectInfo) string {
	if info.Framework != detect.FrameworkNext {
		return "-"
	}
	if info.AppRouter {
		return "app"
	}
	return "pages"
}

func displayPath(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return p
	}
	if rel == "." {
		return "./"
	}
	return rel + "/"
}
