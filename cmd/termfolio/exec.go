package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/internal/format"
	"pkt.systems/termfolio/schema"
)

func newExecCmd() *cobra.Command {
	var source sourceFlags
	var themeName string
	var asJSON bool
	var width int
	cmd := &cobra.Command{
		Use:   "exec [flags] <command> [args...]",
		Short: "Run one terminal command and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := source.load()
			if err != nil {
				return err
			}
			theme, err := resolveTheme(themeName, cfg.ServiceConfig().DefaultTheme)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			svc, err := newReadyService(ctx, cfg, pslog.Ctx(ctx))
			if err != nil {
				return err
			}
			defer svc.Close()
			resp, err := svc.Execute(ctx, schema.ExecRequest{
				Line:  strings.Join(args, " "),
				Theme: theme,
			})
			if err != nil {
				return err
			}
			if width <= 0 {
				width = outputWidth(cmd.OutOrStdout())
			}
			if err := writeExecResult(cmd.OutOrStdout(), resp, asJSON, width); err != nil {
				return err
			}
			return resp.Response.Err()
		},
	}
	// Everything after the first word belongs to the terminal command.
	cmd.Flags().SetInterspersed(false)
	source.register(cmd)
	cmd.Flags().StringVar(&themeName, "theme", "", "theme to run the command under")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the structured response as JSON")
	cmd.Flags().IntVar(&width, "width", 0, "wrap width (defaults to the terminal width)")
	return cmd
}

func writeExecResult(w io.Writer, resp schema.ExecResponse, asJSON bool, width int) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	text := format.Plain(resp.Response, width)
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
