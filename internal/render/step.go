package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sqlviz/internal/catalog"
)

var (
	stepBadge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	explStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	queryBox  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("86")).
			Padding(0, 1)
	veil = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// Step renders one walkthrough step: badge, explanation, query, tables.
func Step(index int, s catalog.Step, width int) string {
	var b strings.Builder

	b.WriteString(stepBadge.Render(fmt.Sprintf("Step %d", index+1)) + "\n")

	expl := explStyle
	if width > 0 {
		expl = expl.Width(width)
	}
	b.WriteString(expl.Render(s.Explanation) + "\n\n")
	b.WriteString(queryBox.Render(s.Query) + "\n\n")

	if len(s.Tables) == 0 {
		b.WriteString(emptySetStyle.Render(NoTables) + "\n")
		return b.String()
	}
	for _, t := range s.Tables {
		b.WriteString(Table(t) + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Veiled renders a placeholder of the same height as content, used for
// steps the reveal engine has not marked seen yet. Matching heights keep
// scroll geometry stable as steps reveal.
func Veiled(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = veil.Render(strings.Repeat("░", min(lipgloss.Width(line), 40)))
	}
	return strings.Join(out, "\n")
}
