package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"pkt.systems/psi"
	"pkt.systems/pslog"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	args := applyArgv0Alias(os.Args)
	root := newRootCmd()
	root.SetArgs(args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("termfolio command failed")
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "termfolio",
		Short:         "Portfolio terminal over SSH, HTTP and the local shell",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newExecCmd())
	root.AddCommand(newShellCmd())
	root.AddCommand(newLinksCmd())
	root.AddCommand(newContentCmd())
	root.AddCommand(newBootstrapCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// argv0Alias maps symlink names to subcommands, e.g. "portfolio" runs the
// local shell.
func argv0Alias(base string) string {
	switch base {
	case "portfolio", "termfolio-shell":
		return "shell"
	default:
		return ""
	}
}

func applyArgv0Alias(args []string) []string {
	if len(args) == 0 {
		return args
	}
	alias := argv0Alias(filepath.Base(args[0]))
	if alias == "" {
		return args
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, args[0], alias)
	out = append(out, args[1:]...)
	return out
}
