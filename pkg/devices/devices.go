// Package devices enumerates the Ethernet adapters available for sampling.
package devices

import (
	"bufio"
	"bytes"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// DefaultLsdevPath is where AIX installs the lsdev binary.
const DefaultLsdevPath = "/usr/sbin/lsdev"

// An Enumerator returns the ordered list of adapter names to collect from.
// The list is read once at startup and never again.
type Enumerator func() ([]string, error)

// Lsdev returns an Enumerator listing ent adapters in state Available via
// "lsdev -Cc adapter". An empty path means DefaultLsdevPath.
func Lsdev(path string) Enumerator {
	if path == "" {
		path = DefaultLsdevPath
	}
	return func() ([]string, error) {
		out, err := exec.Command(path, "-Cc", "adapter").Output()
		if err != nil {
			return nil, errors.Wrap(err, "lsdev -Cc adapter")
		}
		return parse(out), nil
	}
}

// Static returns an Enumerator with a fixed adapter list, for tests and for
// hosts without lsdev.
func Static(names ...string) Enumerator {
	return func() ([]string, error) {
		return names, nil
	}
}

// parse keeps adapters named ent* whose state column reads Available, in
// the order lsdev prints them. lsdev lines look like:
//
//	ent0  Available  Virtual I/O Ethernet Adapter (l-lan)
func parse(out []byte) []string {
	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		if !strings.HasPrefix(fields[0], "ent") || fields[1] != "Available" {
			continue
		}
		names = append(names, fields[0])
	}
	return names
}
