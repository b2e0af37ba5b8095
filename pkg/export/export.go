// Package export exposes collected rates to a Prometheus scrape. Each
// scrape plays the polling host: it walks every registered metric and asks
// the dispatcher for its current value, so the resample threshold governs
// how often entstat actually runs regardless of scrape frequency.
package export

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vios-tools/entmon/pkg/collector"
	"github.com/vios-tools/entmon/pkg/metrics"
)

// Getter is the slice of the collector the exporter needs.
type Getter interface {
	Get(index int, kind collector.Kind) float64
	Enabled(index int) bool
	Len() int
}

// Exporter implements prometheus.Collector over the rate dispatcher.
type Exporter struct {
	getter   Getter
	defs     []metrics.Definition
	rate     *prometheus.Desc
	disabled *prometheus.Desc
}

// New builds an exporter for the given metric definitions.
func New(getter Getter, defs []metrics.Definition) *Exporter {
	return &Exporter{
		getter: getter,
		defs:   defs,
		rate: prometheus.NewDesc(
			"entmon_interface_rate",
			"Per-interface throughput rate; -1 when the interface has been disabled.",
			[]string{"device", "kind", "units"}, nil,
		),
		disabled: prometheus.NewDesc(
			"entmon_interfaces_disabled",
			"Number of interfaces permanently disabled after a sampling timeout.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (e *Exporter) Describe(ch chan<- *prometheus.Desc) {
	ch <- e.rate
	ch <- e.disabled
}

// Collect implements prometheus.Collector.
func (e *Exporter) Collect(ch chan<- prometheus.Metric) {
	for _, def := range e.defs {
		value := e.getter.Get(def.DeviceIndex, def.Kind)
		ch <- prometheus.MustNewConstMetric(e.rate, prometheus.GaugeValue, value,
			def.DeviceName, def.Kind.String(), def.Units)
	}

	var down float64
	for i := 0; i < e.getter.Len(); i++ {
		if !e.getter.Enabled(i) {
			down++
		}
	}
	ch <- prometheus.MustNewConstMetric(e.disabled, prometheus.GaugeValue, down)
}
