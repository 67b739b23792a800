package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/submittals"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of submittals",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "submittals version %s\n", strings.TrimSpace(submittals.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
