package markup

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	strongStyle = lipgloss.NewStyle().Bold(true)
	emStyle     = lipgloss.NewStyle().Italic(true)
	bulletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

var (
	strongTagRe = regexp.MustCompile(`<strong>(.*?)</strong>`)
	emTagRe     = regexp.MustCompile(`<em>(.*?)</em>`)
	liTagRe     = regexp.MustCompile(`<li>(.*?)</li>`)
)

// RenderTerminal maps the markup emitted by FormatAIResponse onto styled
// terminal text. It only understands this package's own tags.
func RenderTerminal(formatted string, width int) string {
	s := strongTagRe.ReplaceAllStringFunc(formatted, func(m string) string {
		return strongStyle.Render(strongTagRe.FindStringSubmatch(m)[1])
	})
	s = emTagRe.ReplaceAllStringFunc(s, func(m string) string {
		return emStyle.Render(emTagRe.FindStringSubmatch(m)[1])
	})
	s = liTagRe.ReplaceAllStringFunc(s, func(m string) string {
		return bulletStyle.Render("• ") + liTagRe.FindStringSubmatch(m)[1] + "\n"
	})
	s = strings.ReplaceAll(s, "<ul>", "")
	s = strings.ReplaceAll(s, "</ul>", "")
	s = strings.ReplaceAll(s, "<p>", "")
	s = strings.ReplaceAll(s, "</p>", "\n")

	s = strings.TrimRight(s, "\n")
	if width > 0 {
		return lipgloss.NewStyle().Width(width).Render(s)
	}
	return s
}
