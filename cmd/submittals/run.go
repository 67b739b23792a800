package main

import (
	"github.com/aretw0/submittals/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fill in a submittal interactively",
	Long:  `Starts one wizard session in the terminal. Type "help" at the prompt for commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		noBanner, _ := cmd.Flags().GetBool("no-banner")
		return cli.Execute(cli.RunOptions{Config: cfg, NoBanner: noBanner})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("no-banner", false, "Skip the startup banner")

	// 'run' is the default when no command is provided.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
