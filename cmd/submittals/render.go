package main

import (
	"fmt"
	"os"
	"time"

	"github.com/aretw0/submittals"
	"github.com/aretw0/submittals/pkg/cover"
	"github.com/aretw0/submittals/pkg/domain"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a cover page without running the wizard",
	Long:  `Renders the submittal cover page from flags. The date uses YYYY-MM-DD.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		date, _ := cmd.Flags().GetString("date")
		logoPath, _ := cmd.Flags().GetString("logo")
		out, _ := cmd.Flags().GetString("out")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if date != "" {
			d, err := time.Parse(domain.DateLayout, date)
			if err != nil {
				return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
			}
			date = d.Format(submittals.CoverDateLayout)
		}

		var logo []byte
		if logoPath != "" {
			data, err := os.ReadFile(logoPath)
			if err != nil {
				return fmt.Errorf("failed to read logo: %w", err)
			}
			logo = data
		}

		doc, err := cover.New(cover.WithTemplateDir(cfg.TemplateDir)).Render(name, date, logo)
		if err != nil {
			return fmt.Errorf("failed to render cover: %w", err)
		}

		if out == "" {
			out = doc.Filename
		}
		if out == "-" {
			_, err := cmd.OutOrStdout().Write(doc.Data)
			return err
		}
		if err := os.WriteFile(out, doc.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", out, len(doc.Data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().String("name", "", "Project name")
	renderCmd.Flags().String("date", "", "Submittal date (YYYY-MM-DD)")
	renderCmd.Flags().String("logo", "", "Path to a PNG, JPEG or GIF logo")
	renderCmd.Flags().StringP("out", "o", "", "Output file, or - for stdout (default "+cover.Filename+")")
}
