// Package metrics builds the per-interface metric registrations exposed to
// the monitoring host.
package metrics

import (
	"fmt"
	"strings"

	"github.com/vios-tools/entmon/pkg/collector"
)

// Group is the metric group every definition belongs to.
const Group = "ibmnet"

// Definition describes one exported metric: a floating-point rate for a
// single interface and counter kind.
type Definition struct {
	// Name joins the interface name and kind, e.g. "ent0_bytes_received".
	Name  string
	Desc  string
	Units string
	// TMax is the maximum reporting interval in seconds.
	TMax  int
	Slope string
	Fmt   string
	Group string

	DeviceIndex int
	DeviceName  string
	Kind        collector.Kind
}

var kindMeta = map[collector.Kind]struct{ desc, units string }{
	collector.BytesReceived:   {"Bytes Received", "bytes/sec"},
	collector.BytesSent:       {"Bytes Sent", "bytes/sec"},
	collector.PacketsReceived: {"Packets Received", "packets/sec"},
	collector.PacketsSent:     {"Packets Sent", "packets/sec"},
}

// Build returns one definition per interface and kind, grouped by kind,
// devices in registration order within each kind.
func Build(names []string) []Definition {
	defs := make([]Definition, 0, len(names)*len(collector.Kinds()))
	for _, kind := range collector.Kinds() {
		meta := kindMeta[kind]
		for i, name := range names {
			defs = append(defs, Definition{
				Name:        fmt.Sprintf("%s_%s", name, kind),
				Desc:        fmt.Sprintf("%s %s", name, meta.desc),
				Units:       meta.units,
				TMax:        60,
				Slope:       "both",
				Fmt:         "%.1f",
				Group:       Group,
				DeviceIndex: i,
				DeviceName:  name,
				Kind:        kind,
			})
		}
	}
	return defs
}

// Resolve maps a combined metric name back to its interface index and kind.
// The device part is everything before the first underscore; adapter names
// never contain one.
func Resolve(name string, names []string) (int, collector.Kind, bool) {
	sep := strings.IndexByte(name, '_')
	if sep < 0 {
		return 0, 0, false
	}
	dev, kindName := name[:sep], name[sep+1:]

	for index, n := range names {
		if n != dev {
			continue
		}
		for _, k := range collector.Kinds() {
			if k.String() == kindName {
				return index, k, true
			}
		}
		return 0, 0, false
	}
	return 0, 0, false
}
