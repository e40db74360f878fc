package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"motifscan/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the motifscan version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "motifscan version %s\n", version.Version)
	},
}
