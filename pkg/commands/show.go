package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vios-tools/entmon/pkg/collector"
	"github.com/vios-tools/entmon/pkg/config"
	"github.com/vios-tools/entmon/pkg/devices"
	"github.com/vios-tools/entmon/pkg/entstat"
	"github.com/vios-tools/entmon/pkg/output"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	var (
		interval time.Duration
		timing   bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Sample once and print a throughput table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			// Rates need two samples. The threshold is set below the
			// measurement interval so the getters after the sleep trigger
			// exactly one resample per adapter.
			col, err := collector.New(
				devices.Lsdev(cfg.Commands.Lsdev),
				entstat.NewCommand(cfg.Commands.Entstat),
				collector.Options{
					Threshold:     interval.Seconds() / 2,
					SampleTimeout: cfg.Collector.SampleTimeout(),
					Logger:        logger,
				},
			)
			if err != nil {
				return err
			}

			time.Sleep(interval)

			output.RenderTable(os.Stdout, col)
			if timing {
				output.TimingReport(os.Stdout, col)
			}
			return nil
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Second, "measurement interval")
	cmd.Flags().BoolVar(&timing, "timing", false, "print per-adapter sampler timing")

	return cmd
}
