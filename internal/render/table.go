// Package render turns catalog tables and steps into styled terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/sqlviz/internal/catalog"
)

// EmptySet is rendered in place of a table with no rows, so "no rows" reads
// differently from "not yet computed".
const EmptySet = "Empty set"

// NoTables is rendered for a step that produces no result table at all.
const NoTables = "This step produces no result table."

var (
	tableName   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	borderColor = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	headerCell  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	normalCell  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1)

	highlightCell = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")).Padding(0, 1)
	unmatchedCell = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Padding(0, 1)
	insertedCell  = lipgloss.NewStyle().Foreground(lipgloss.Color("118")).Padding(0, 1)
	updatedCell   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Padding(0, 1)
	changedCell   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")).Padding(0, 1)

	emptySetStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("242"))
)

// Cell returns the display form of one value: the NULL marker for nil,
// otherwise the value's string form.
func Cell(v catalog.Value) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

// Table renders one result table: name, header, body. Empty rows render the
// EmptySet placeholder instead of a bare frame.
func Table(t catalog.Table) string {
	var b strings.Builder
	if t.Name != "" {
		b.WriteString(tableName.Render(t.Name) + "\n")
	}

	if len(t.Rows) == 0 {
		b.WriteString(emptySetStyle.Render(EmptySet))
		return b.String()
	}

	cols := catalog.DeriveColumns(t)

	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		cells := make([]string, len(cols))
		for j, col := range cols {
			cells[j] = Cell(r.Cells[col])
		}
		rows[i] = cells
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderColor).
		Headers(cols...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return rowStyle(t.Rows[row], cols, col)
		})

	b.WriteString(tbl.Render())
	return b.String()
}

func rowStyle(r catalog.Row, cols []string, col int) lipgloss.Style {
	if col >= 0 && col < len(cols) && r.CellUpdated(cols[col]) {
		return changedCell
	}
	switch catalog.Classify(r) {
	case catalog.Highlighted:
		return highlightCell
	case catalog.UnmatchedRow:
		return unmatchedCell
	case catalog.InsertedRow:
		return insertedCell
	case catalog.UpdatedRow:
		return updatedCell
	default:
		return normalCell
	}
}
