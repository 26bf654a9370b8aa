package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.1"

// versionCommand constructs the 'version' subcommand.
func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the calculator version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "moxon %s\n", version)
		},
	}
}
