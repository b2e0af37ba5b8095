package entstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutput = `-------------------------------------------------------------
ETHERNET STATISTICS (ent0) :
Device Type: Virtual I/O Ethernet Adapter (l-lan)
Hardware Address: 32:43:8f:71:f2:04

Transmit Statistics:                          Receive Statistics:
--------------------                          -------------------
Packets: 359754                               Packets: 272450
Bytes: 129346063                              Bytes: 41520292
Interrupts: 0                                 Interrupts: 210055
Transmit Errors: 0                            Receive Errors: 0
Packets Dropped: 0                            Packets Dropped: 0
`

func TestParse(t *testing.T) {
	counters, err := Parse([]byte(sampleOutput))
	require.NoError(t, err)

	assert.Equal(t, int64(359754), counters.PacketsSent)
	assert.Equal(t, int64(272450), counters.PacketsReceived)
	assert.Equal(t, int64(129346063), counters.BytesSent)
	assert.Equal(t, int64(41520292), counters.BytesReceived)
}

func TestParseUsesFirstMatchOnly(t *testing.T) {
	// SEA adapters repeat the Packets/Bytes block per backing device; only
	// the leading aggregate block counts.
	out := sampleOutput + `
Packets: 11                                   Packets: 22
Bytes: 33                                     Bytes: 44
`
	counters, err := Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, int64(359754), counters.PacketsSent)
	assert.Equal(t, int64(41520292), counters.BytesReceived)
}

func TestParsePartialOutput(t *testing.T) {
	out := `Transmit Statistics:                          Receive Statistics:
Packets: 100                                  Packets: 200
`
	counters, err := Parse([]byte(out))
	require.NoError(t, err)

	assert.Equal(t, int64(100), counters.PacketsSent)
	assert.Equal(t, int64(200), counters.PacketsReceived)
	assert.Equal(t, Unavailable, counters.BytesSent)
	assert.Equal(t, Unavailable, counters.BytesReceived)
}

func TestParseUnparseableCounter(t *testing.T) {
	out := `Packets: garbage                              Packets: 200
Bytes: 300                                    Bytes: 400
`
	counters, err := Parse([]byte(out))
	require.NoError(t, err)

	assert.Equal(t, Unavailable, counters.PacketsSent)
	assert.Equal(t, int64(200), counters.PacketsReceived)
	assert.Equal(t, int64(300), counters.BytesSent)
}

func TestParseNoUsableOutput(t *testing.T) {
	counters, err := Parse([]byte("entstat: 0909-003 Unable to connect to device ent7.\n"))
	assert.Error(t, err)

	assert.Equal(t, Unavailable, counters.BytesReceived)
	assert.Equal(t, Unavailable, counters.BytesSent)
	assert.Equal(t, Unavailable, counters.PacketsReceived)
	assert.Equal(t, Unavailable, counters.PacketsSent)
}
