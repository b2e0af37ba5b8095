package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vios-tools/entmon/pkg/collector"
)

// TimingReport prints how long the most recent entstat invocation took per
// adapter. Useful for spotting an adapter drifting towards the sample
// timeout before it gets disabled.
func TimingReport(w io.Writer, c *collector.Collector) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Sampler Timing Report"))
	fmt.Fprintln(w, dimStyle.Render(strings.Repeat("═", 40)))
	fmt.Fprintf(w, "  %s  %s\n",
		headerStyle.Render("ADAPTER            "),
		headerStyle.Render("DURATION    "))
	fmt.Fprintln(w, "  "+dimStyle.Render(strings.Repeat("─", 40)))

	var total time.Duration
	for i, name := range c.Names() {
		d := c.LastSampleDuration(i)
		fmt.Fprintf(w, "  %-20s %v\n", name, d)
		total += d
	}
	fmt.Fprintln(w, "  "+dimStyle.Render(strings.Repeat("─", 40)))
	fmt.Fprintf(w, "  %-20s %v\n",
		lipgloss.NewStyle().Bold(true).Render("TOTAL"), total)
}
