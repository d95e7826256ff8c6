package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/qec/code"
	"github.com/katalvlaran/qec/protocol"
)

// Styles for the terminal report.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	badStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	gridStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// histogramRows caps the syndrome table at the most frequent entries.
const histogramRows = 12

// renderSummary formats the run header and the aggregate statistics.
func renderSummary(c *code.Code, res *protocol.Result) string {
	rate := okStyle
	if res.SuccessRate < 1 {
		rate = badStyle
	}
	var sb strings.Builder
	fmt.Fprintln(&sb, titleStyle.Render(c.String()))
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("run:"), res.RunID)
	fmt.Fprintf(&sb, "%s %v\n", labelStyle.Render("input:"), res.Input)
	fmt.Fprintf(&sb, "%s %d  %s %d  %s %d\n",
		labelStyle.Render("shots:"), res.Shots,
		labelStyle.Render("successes:"), res.Successes,
		labelStyle.Render("logical errors:"), res.LogicalErrors)
	fmt.Fprintf(&sb, "%s %s", labelStyle.Render("success rate:"), rate.Render(fmt.Sprintf("%.4f", res.SuccessRate)))

	return sb.String()
}

// renderSyndromes formats the per-syndrome histogram, most frequent first,
// with proportional bars.
func renderSyndromes(res *protocol.Result) string {
	keys := make([]string, 0, len(res.Syndromes))
	for k := range res.Syndromes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if res.Syndromes[keys[i]] != res.Syndromes[keys[j]] {
			return res.Syndromes[keys[i]] > res.Syndromes[keys[j]]
		}

		return keys[i] < keys[j]
	})
	if len(keys) > histogramRows {
		keys = keys[:histogramRows]
	}
	top := res.Syndromes[keys[0]]
	var sb strings.Builder
	fmt.Fprintln(&sb, labelStyle.Render("syndrome histogram:"))
	for _, k := range keys {
		n := res.Syndromes[k]
		bar := strings.Repeat("█", 1+24*n/max(top, 1))
		fmt.Fprintf(&sb, "  %s %6d %s\n", valueStyle.Render(k), n, barStyle.Render(bar))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderSketch draws the code layout: a qubit grid for the topological
// codes, the check table for the block codes.
func renderSketch(c *code.Code) string {
	var sb strings.Builder
	fmt.Fprintln(&sb, labelStyle.Render("layout:"))
	switch {
	case c.Layout != nil && !c.Layout.Periodic:
		d := c.Layout.Size
		for r := 0; r < d; r++ {
			row := make([]string, d)
			for col := 0; col < d; col++ {
				row[col] = fmt.Sprintf("%3d", r*d+col)
			}
			fmt.Fprintf(&sb, "  %s\n", gridStyle.Render(strings.Join(row, " ")))
		}
	case c.Layout != nil && c.Layout.Periodic:
		l := c.Layout.Size
		fmt.Fprintf(&sb, "  %s\n", labelStyle.Render("horizontal edges, then vertical edges; rows wrap around"))
		for r := 0; r < l; r++ {
			row := make([]string, l)
			for col := 0; col < l; col++ {
				row[col] = fmt.Sprintf("%3d", r*l+col)
			}
			fmt.Fprintf(&sb, "  %s\n", gridStyle.Render(strings.Join(row, " ")))
		}
		for r := 0; r < l; r++ {
			row := make([]string, l)
			for col := 0; col < l; col++ {
				row[col] = fmt.Sprintf("%3d", l*l+r*l+col)
			}
			fmt.Fprintf(&sb, "  %s\n", gridStyle.Render(strings.Join(row, " ")))
		}
	default:
		for _, chk := range c.Checks {
			fmt.Fprintf(&sb, "  %s %s\n", valueStyle.Render(fmt.Sprintf("%-10s", chk.Name)), gridStyle.Render(chk.Op.String()))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
