package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultMaxColWidth caps cell width unless overridden.
const DefaultMaxColWidth = 40

// TableOptions control table rendering.
type TableOptions struct {
	// Columns fixes the column set and order. Empty means collect keys
	// across all rows, sorted with id first.
	Columns []string

	// MaxColWidth truncates cell text beyond this many characters.
	// Zero applies DefaultMaxColWidth, negative disables truncation.
	MaxColWidth int
}

// FormatTable renders record rows as a text table. Nested objects and
// lists are shown as short placeholders so one long field cannot blow
// up the layout.
func FormatTable(rows []map[string]any, opts TableOptions) string {
	if len(rows) == 0 {
		return "(empty)"
	}

	cols := opts.Columns
	if len(cols) == 0 {
		cols = collectColumns(rows)
	}
	if len(cols) == 0 {
		return "(no columns)"
	}

	maxWidth := opts.MaxColWidth
	if maxWidth == 0 {
		maxWidth = DefaultMaxColWidth
	}

	body := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = truncate(stringify(row[col]), maxWidth)
		}
		body = append(body, cells)
	}

	styles := DefaultStyles()

	// Column widths from header and cell content, plus cell padding.
	colWidths := make([]int, len(cols))
	for i, col := range cols {
		colWidths[i] = lipgloss.Width(col)
	}
	for _, cells := range body {
		for i, cell := range cells {
			if w := lipgloss.Width(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.Header.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	sepStyle := styles.Muted

	var sb strings.Builder

	for i, col := range cols {
		sb.WriteString(headerStyle.Width(colWidths[i]).Render(col))
		if i < len(cols)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(cols) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)))
	sb.WriteString("\n")

	for _, cells := range body {
		for i, cell := range cells {
			sb.WriteString(rowStyle.Width(colWidths[i]).Render(cell))
			if i < len(cells)-1 {
				sb.WriteString(sepStyle.Render("|"))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// collectColumns gathers row keys across all rows, sorted with id
// hoisted to the front. Decoded JSON objects arrive as maps, so the
// server's field order is gone by the time rows reach the renderer.
func collectColumns(rows []map[string]any) []string {
	var cols []string
	seen := map[string]bool{}
	for _, row := range rows {
		for key := range row {
			if !seen[key] {
				seen[key] = true
				cols = append(cols, key)
			}
		}
	}
	sort.Strings(cols)
	for i, col := range cols {
		if col == "id" {
			copy(cols[1:i+1], cols[:i])
			cols[0] = "id"
			break
		}
	}
	return cols
}

// stringify renders a cell value. Composite values get a short
// placeholder instead of their full serialization.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		return "{...}"
	case []any:
		return fmt.Sprintf("[%d]", len(v))
	default:
		return fmt.Sprint(v)
	}
}

// truncate shortens text to maxWidth runes, marking the cut with an
// ellipsis. Non-positive maxWidth disables truncation.
func truncate(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxWidth {
		return text
	}
	if maxWidth == 1 {
		return "…"
	}
	return string(runes[:maxWidth-1]) + "…"
}
