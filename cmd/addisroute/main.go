// Package main provides the addisroute CLI entry point.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/addisroute/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	human      bool
	configPath string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &rootOptions{}
	root := newRootCmd(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errNoPath) {
		outputError(stderr, opts.human, err)
	}

	return exitCode(err)
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "addisroute",
		Short: "Route search over Addis Ababa landmarks",
		Long: `addisroute finds routes between Addis Ababa landmarks with
breadth-first, depth-first or greedy best-first search, optionally
avoiding blocked locations.

Searches run in-process or against a remote addisroute service.
All commands output JSON by default; use --human for text.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&opts.human, "human", false, "Use human-readable output instead of JSON")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $"+config.EnvConfig+" or "+config.DefaultFile+")")

	root.AddCommand(
		newSearchCmd(opts),
		newServeCmd(opts),
		newGraphCmd(opts),
		newNearestCmd(opts),
	)

	return root
}

// loadConfig loads the configuration, tagging failures with ExitConfigError.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, withCode(ExitConfigError, err)
	}
	return cfg, nil
}
