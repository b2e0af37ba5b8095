// Package commands provides CLI command implementations.
package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	logger  = logrus.New()
)

// NewRootCmd creates the root command with all subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "entmon",
		Short: "AIX Ethernet adapter throughput collector",
		Long: `entmon samples per-adapter network counters with entstat and converts
them into bytes/sec and packets/sec rates. libperfstat only reports adapters
that carry an IP address, which leaves Shared Ethernet Adapters on a VIOS
invisible; entstat sees them all.

Commands:
  serve   Run the collector and expose rates on a Prometheus endpoint
  show    Sample once and print a throughput table`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML config file")
	root.AddCommand(
		NewServeCmd(),
		NewShowCmd(),
	)

	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
