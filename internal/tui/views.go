package tui

import (
	"fmt"
	"strings"

	"github.com/san-kum/sqlviz/internal/render"
)

func (m *model) View() string {
	switch m.state {
	case stateTopics:
		return m.viewTopics()
	case stateExamples:
		return m.viewExamples()
	case stateSteps:
		return m.viewSteps()
	case stateExplain:
		return m.viewExplain()
	}
	return ""
}

func (m *model) viewTopics() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("s q l v i z") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, topic := range m.cat {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-18s", topic.Name)) + dim.Render(topic.Description) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-18s", topic.Name)) + dimmer.Render(topic.Description) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter open   e ask AI   q quit") + "\n")

	return b.String()
}

func (m *model) viewExamples() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.topic.Name) + "  " + dim.Render(m.topic.Description) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 40)) + "\n\n")

	b.WriteString("      " + dim.Render("syntax   ") + white.Render(m.topic.Syntax) + "\n")
	b.WriteString("      " + dim.Render("use case ") + white.Render(m.topic.UseCase) + "\n\n")

	for i, ex := range m.topic.Examples {
		steps := fmt.Sprintf("%d steps", len(ex.Steps))
		if len(ex.Steps) == 1 {
			steps = "1 step"
		}
		if i == m.exCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-36s", ex.Title)) + dim.Render(steps) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-36s", ex.Title)) + dimmer.Render(steps) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter start   esc back   q quit") + "\n")

	return b.String()
}

func (m *model) viewSteps() string {
	var b strings.Builder

	b.WriteString(" " + cyan.Render(m.topic.Name) + dim.Render(" · "+m.example.Title) +
		dim.Render(fmt.Sprintf("   %d/%d steps seen", m.engine.RevealedCount(), m.engine.Count())) + "\n")
	b.WriteString(dimmer.Render(" "+strings.Repeat("─", m.contentWidth())) + "\n")

	// Compose all steps, veiling the ones the engine has not seen, then
	// window the scrolled slice.
	var lines []string
	for i, content := range m.rendered {
		body := content
		if !m.engine.Revealed(i) {
			body = render.Veiled(content)
		}
		lines = append(lines, strings.Split(body, "\n")...)
		lines = append(lines, "", "")
	}

	start := m.scroll
	if start > len(lines) {
		start = len(lines)
	}
	end := start + m.viewHeight()
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[start:end] {
		b.WriteString(" " + line + "\n")
	}

	b.WriteString(dim.Render(" ↑↓ scroll   space page   g/G ends   e ask AI   esc back") + "\n")
	return b.String()
}

func (m *model) viewExplain() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render("ask the explainer") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 40)) + "\n\n")

	b.WriteString("      " + dim.Render("query ") + magenta.Render(m.input+"▋") + "\n\n")

	switch {
	case m.waiting:
		b.WriteString("      " + dim.Render("waiting for the explanation service...") + "\n")
	case m.errText != "":
		b.WriteString("      " + red.Render(m.errText) + "\n")
	case m.answer != "":
		for _, line := range strings.Split(m.answer, "\n") {
			b.WriteString("      " + line + "\n")
		}
		if m.savedID != "" {
			b.WriteString("\n      " + green.Render("saved to history: "+m.savedID) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      enter send   esc back   ctrl+c quit") + "\n")

	return b.String()
}
