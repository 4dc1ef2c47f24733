package main

import (
	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/bootstrap"
)

func newBootstrapCmd() *cobra.Command {
	var outputDir string
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Generate a default config, content file and .env",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := pslog.Ctx(cmd.Context())
			paths, err := bootstrap.WriteBootstrap(outputDir, overwrite)
			if err != nil {
				return err
			}
			logger.Info("bootstrap wrote", "path", paths.ConfigPath, "name", bootstrap.ConfigName)
			logger.Info("bootstrap wrote", "path", paths.ContentPath, "name", bootstrap.ContentName)
			logger.Info("bootstrap wrote", "path", paths.EnvPath, "name", bootstrap.EnvName)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default ~/.termfolio)")
	cmd.Flags().BoolVar(&overwrite, "force", false, "overwrite existing files")
	return cmd
}
