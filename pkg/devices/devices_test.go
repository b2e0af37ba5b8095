package devices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsAvailableEntAdaptersInOrder(t *testing.T) {
	out := `ent2   Available       Shared Ethernet Adapter
ent0   Available       Virtual I/O Ethernet Adapter (l-lan)
ent1   Defined         Virtual I/O Ethernet Adapter (l-lan)
fcs0   Available       FC Adapter
vsa0   Available       LPAR Virtual Serial Adapter
ent3   Available       2-Port 10/100/1000 Base-TX PCI-X Adapter
`
	assert.Equal(t, []string{"ent2", "ent0", "ent3"}, parse([]byte(out)))
}

func TestParseEmptyOutput(t *testing.T) {
	assert.Empty(t, parse(nil))
	assert.Empty(t, parse([]byte("fcs0 Available FC Adapter\n")))
}

func TestStatic(t *testing.T) {
	names, err := Static("ent0", "ent1")()
	require.NoError(t, err)
	assert.Equal(t, []string{"ent0", "ent1"}, names)
}
