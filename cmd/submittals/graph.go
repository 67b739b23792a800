package main

import (
	"fmt"

	"github.com/aretw0/submittals"
	"github.com/aretw0/submittals/pkg/form"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the section flow as a Mermaid diagram",
	Long:  `Outputs a Mermaid diagram (graph TD) of the wizard sections in order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		schema, err := form.New(form.Options{Managers: cfg.Managers})
		if err != nil {
			return err
		}
		engine, err := submittals.New(submittals.WithSchema(schema))
		if err != nil {
			return fmt.Errorf("error initializing engine: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), engine.Diagram())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
