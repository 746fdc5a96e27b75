package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/spiffy/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version",
	Args:  cobra.NoArgs,
	// no configuration needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		for _, line := range version.Get().Lines() {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
