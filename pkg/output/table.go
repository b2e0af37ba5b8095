// Package output renders collected rates for the one-shot CLI view.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vios-tools/entmon/pkg/collector"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	enabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// RenderTable prints one row per interface with its four current rates.
func RenderTable(w io.Writer, c *collector.Collector) {
	fmt.Fprintln(w, titleStyle.Render("Ethernet Adapter Throughput"))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ADAPTER", "BYTES RX/S", "BYTES TX/S", "PKTS RX/S", "PKTS TX/S", "STATE")

	for i, name := range c.Names() {
		if !c.Enabled(i) {
			t.Row(name, "-", "-", "-", "-", disabledStyle.Render("DISABLED"))
			continue
		}
		t.Row(name,
			fmt.Sprintf("%.1f", c.Get(i, collector.BytesReceived)),
			fmt.Sprintf("%.1f", c.Get(i, collector.BytesSent)),
			fmt.Sprintf("%.1f", c.Get(i, collector.PacketsReceived)),
			fmt.Sprintf("%.1f", c.Get(i, collector.PacketsSent)),
			enabledStyle.Render("OK"))
	}

	fmt.Fprintln(w, t)
}
