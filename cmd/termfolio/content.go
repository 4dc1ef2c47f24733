package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/internal/content"
)

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Export and validate portfolio content",
	}
	cmd.AddCommand(newContentExportCmd())
	cmd.AddCommand(newContentValidateCmd())
	return cmd
}

func newContentExportCmd() *cobra.Command {
	var source sourceFlags
	var formatName string
	var output string
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active portfolio as YAML or TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := content.ParseFormat(formatName)
			if err != nil {
				return err
			}
			cfg, err := source.load()
			if err != nil {
				return err
			}
			repo, _, err := openRepository(cfg.Content)
			if err != nil {
				return err
			}
			portfolio, err := content.Collect(cmd.Context(), repo)
			if err != nil {
				return err
			}
			data, err := content.Encode(portfolio, format)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if !overwrite {
				if _, err := os.Stat(output); err == nil {
					return fmt.Errorf("file already exists: %s", output)
				}
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			pslog.Ctx(cmd.Context()).Info("content exported", "path", output, "format", format)
			return nil
		},
	}
	source.register(cmd)
	cmd.Flags().StringVar(&formatName, "format", string(content.FormatYAML), "output format: yaml or toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&overwrite, "force", false, "overwrite an existing output file")
	return cmd
}

func newContentValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a portfolio content file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			portfolio, err := content.LoadFile(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d projects, %d skill categories, %d achievements, %d links, %d quotes)\n",
				args[0],
				len(portfolio.Projects),
				len(portfolio.SkillCategories),
				len(portfolio.Achievements),
				len(portfolio.SocialLinks),
				len(portfolio.MotivationQuotes),
			)
			return err
		},
	}
}
