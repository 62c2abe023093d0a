// Command chartlabel renders charts with collision-free value labels.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartlabel/internal/cli"
	clerrors "github.com/matzehuels/chartlabel/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		os.Exit(130)
	default:
		fmt.Fprintln(os.Stderr, "error:", clerrors.UserMessage(err))
		os.Exit(1)
	}
}

func execute(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true

	verbose := root.PersistentFlags().BoolP("verbose", "v", false, "log debug output")
	withVerbose(root, func() {
		if *verbose {
			c.SetLogLevel(cli.LogDebug)
		}
	})
	return root.ExecuteContext(ctx)
}

// withVerbose runs fn ahead of root's own PersistentPreRunE, so the config
// loader already logs at the requested level.
func withVerbose(root *cobra.Command, fn func()) {
	next := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		fn()
		if next == nil {
			return nil
		}
		return next(cmd, args)
	}
}
