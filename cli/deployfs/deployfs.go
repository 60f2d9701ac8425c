package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/deployfs/internal/cli"
)

var (
	configPath string
	verbose    bool
	noColor    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deployfs",
		Short: "Filesystem toolkit for installer and updater workflows",
		Long: `deployfs prepares and deploys application file trees:
- prepare directories with hardened permissions and access-deny markers
- copy and remove trees during upgrades, with logic-file exclusion
- detect hostile deployment targets (network filesystems)`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Set up CLI package variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoColor = &noColor

	// Add subcommands
	cmd.AddCommand(
		cli.NewDeployCmd(),
		cli.NewEnsureCmd(),
		cli.NewCopyCmd(),
		cli.NewRemoveCmd(),
		cli.NewFindCmd(),
		cli.NewProbeCmd(),
		cli.NewResolveCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
