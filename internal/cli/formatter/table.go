package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders a simple aligned table with a header separator line.
// Headers are rendered with the Header style. Columns are padded to the
// maximum width found in each column across both headers and rows.
func RenderTable(headers []string, rows [][]string) string {
	return renderTable(headers, rows, false)
}

// RenderPlainTable renders the same layout as RenderTable without styling.
func RenderPlainTable(headers []string, rows [][]string) string {
	return renderTable(headers, rows, true)
}

func renderTable(headers []string, rows [][]string, plain bool) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)

	// Measure visible width so styled cells align.
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	const colGap = 2

	header := StyleHeader.Render
	rule := StyleDim.Render
	ruleChar := "─"
	if plain {
		header = func(s ...string) string { return strings.Join(s, " ") }
		rule = header
		ruleChar = "-"
	}

	var b strings.Builder

	writeRow := func(cells []string, render func(...string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := max(widths[i]-lipgloss.Width(cell), 0)
			if render != nil {
				cell = render(cell)
			}
			b.WriteString(cell)
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, header)

	for i, w := range widths {
		b.WriteString(rule(strings.Repeat(ruleChar, w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row, nil)
	}

	return b.String()
}
