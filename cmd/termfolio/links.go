package main

import (
	"fmt"
	"io"

	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"

	"pkt.systems/termfolio/schema"
)

func newLinksCmd() *cobra.Command {
	var source sourceFlags
	var showQR bool
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Print the social links",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := source.load()
			if err != nil {
				return err
			}
			repo, _, err := openRepository(cfg.Content)
			if err != nil {
				return err
			}
			links, err := repo.SocialLinks(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch social links: %w", err)
			}
			printLinks(cmd.OutOrStdout(), links, showQR)
			return nil
		},
	}
	source.register(cmd)
	cmd.Flags().BoolVar(&showQR, "qr", false, "print a QR code for every link")
	return cmd
}

func printLinks(w io.Writer, links []schema.SocialLink, showQR bool) {
	for i, link := range links {
		if showQR && i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		if link.Username != "" {
			_, _ = fmt.Fprintf(w, "%s: %s (%s)\n", link.Platform, link.URL, link.Username)
		} else {
			_, _ = fmt.Fprintf(w, "%s: %s\n", link.Platform, link.URL)
		}
		if showQR {
			qrterminal.GenerateHalfBlock(link.URL, qrterminal.L, w)
		}
	}
}
