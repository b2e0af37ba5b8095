package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vios-tools/entmon/pkg/collector"
)

func TestBuild(t *testing.T) {
	names := []string{"ent0", "ent2"}
	defs := Build(names)
	require.Len(t, defs, 8)

	// Grouped by kind, devices in registration order within each kind.
	assert.Equal(t, "ent0_bytes_received", defs[0].Name)
	assert.Equal(t, "ent2_bytes_received", defs[1].Name)
	assert.Equal(t, "ent0_bytes_sent", defs[2].Name)
	assert.Equal(t, "ent0_pkts_sent", defs[6].Name)

	first := defs[0]
	assert.Equal(t, "ent0 Bytes Received", first.Desc)
	assert.Equal(t, "bytes/sec", first.Units)
	assert.Equal(t, 60, first.TMax)
	assert.Equal(t, "both", first.Slope)
	assert.Equal(t, "%.1f", first.Fmt)
	assert.Equal(t, Group, first.Group)
	assert.Equal(t, 0, first.DeviceIndex)
	assert.Equal(t, collector.BytesReceived, first.Kind)

	pkts := defs[5]
	assert.Equal(t, "ent2_pkts_received", pkts.Name)
	assert.Equal(t, "packets/sec", pkts.Units)
	assert.Equal(t, 1, pkts.DeviceIndex)
}

func TestBuildEmpty(t *testing.T) {
	assert.Empty(t, Build(nil))
}

func TestResolve(t *testing.T) {
	names := []string{"ent0", "ent1"}

	for _, def := range Build(names) {
		index, kind, ok := Resolve(def.Name, names)
		require.True(t, ok, def.Name)
		assert.Equal(t, def.DeviceIndex, index)
		assert.Equal(t, def.Kind, kind)
	}
}

func TestResolveUnknown(t *testing.T) {
	names := []string{"ent0"}

	_, _, ok := Resolve("ent9_bytes_received", names)
	assert.False(t, ok, "unknown device")

	_, _, ok = Resolve("ent0_frames_seen", names)
	assert.False(t, ok, "unknown kind")

	_, _, ok = Resolve("ent0", names)
	assert.False(t, ok, "no separator")
}
