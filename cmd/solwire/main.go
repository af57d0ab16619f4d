// Package main is the entry point for the solwire CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/solwire/cli/internal/cmd"
	serrors "github.com/solwire/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Check if the error carries an ExitError with a specific code
		var exitErr *serrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(serrors.ExitCodeFromError(err))
	}
}
