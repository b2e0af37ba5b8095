package commands

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vios-tools/entmon/pkg/collector"
	"github.com/vios-tools/entmon/pkg/config"
	"github.com/vios-tools/entmon/pkg/devices"
	"github.com/vios-tools/entmon/pkg/entstat"
	"github.com/vios-tools/entmon/pkg/export"
	"github.com/vios-tools/entmon/pkg/metrics"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the collector and expose rates on a Prometheus endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			level, _ := logrus.ParseLevel(cfg.Log.Level)
			logger.SetLevel(level)
			logHostBanner(logger)

			col, err := collector.New(
				devices.Lsdev(cfg.Commands.Lsdev),
				entstat.NewCommand(cfg.Commands.Entstat),
				collector.Options{
					Threshold:     cfg.Collector.ThresholdSeconds,
					SampleTimeout: cfg.Collector.SampleTimeout(),
					Logger:        logger,
				},
			)
			if err != nil {
				return err
			}

			defs := metrics.Build(col.Names())
			logger.WithFields(logrus.Fields{
				"adapters": col.Len(),
				"metrics":  len(defs),
			}).Info("Registered adapter metrics")

			reg := prometheus.NewRegistry()
			if err := reg.Register(export.New(col, defs)); err != nil {
				return err
			}

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

			logger.WithField("addr", cfg.Metrics.Addr).Info("Serving metrics")
			return http.ListenAndServe(cfg.Metrics.Addr, mux)
		},
	}
}
