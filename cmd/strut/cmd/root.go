// Package cmd implements the strut CLI commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strut",
	Short: "Box-model layout engine inspector",
	Long: `strut computes box-model layout geometry for container trees.

Trees are described in YAML; the calc command runs the engine against a
viewport and prints every node's calculated size and position.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
