package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the salesmax version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("salesmax", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
