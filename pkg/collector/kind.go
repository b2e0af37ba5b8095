package collector

import "github.com/vios-tools/entmon/pkg/entstat"

// Kind identifies one of the four counters tracked per interface.
type Kind int

const (
	BytesReceived Kind = iota
	BytesSent
	PacketsReceived
	PacketsSent

	numKinds
)

// Kinds returns all counter kinds in registration order.
func Kinds() []Kind {
	return []Kind{BytesReceived, BytesSent, PacketsReceived, PacketsSent}
}

// String returns the metric-name suffix for the kind.
func (k Kind) String() string {
	switch k {
	case BytesReceived:
		return "bytes_received"
	case BytesSent:
		return "bytes_sent"
	case PacketsReceived:
		return "pkts_received"
	case PacketsSent:
		return "pkts_sent"
	}
	return "unknown"
}

// counterValue picks the kind's raw counter out of a snapshot.
func counterValue(c entstat.Counters, k Kind) int64 {
	switch k {
	case BytesReceived:
		return c.BytesReceived
	case BytesSent:
		return c.BytesSent
	case PacketsReceived:
		return c.PacketsReceived
	case PacketsSent:
		return c.PacketsSent
	}
	return entstat.Unavailable
}
