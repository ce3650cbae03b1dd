// Package markup converts the explanation service's loose markdown-like
// output into display markup.
//
// The transform is best-effort and lossy: it understands exactly the subset
// the model emits (**bold**, *italic*, "- " list lines, blank-line
// paragraphs) and performs no escaping of anything else. Callers must treat
// the input as trusted.
package markup

import (
	"regexp"
	"strings"
)

var (
	listItemRe = regexp.MustCompile(`(?m)^[-*][ \t]+(.*)$`)
	listJoinRe = regexp.MustCompile(`</ul>\s*<ul>`)

	// Bold must be substituted strictly before italic, or the two asterisk
	// pairs of a **bold** span would each match as an italic delimiter.
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*\n]+)\*`)
)

// FormatAIResponse turns a block of model prose into HTML-ish display
// markup: strong/em emphasis, merged lists, paragraph breaks.
func FormatAIResponse(text string) string {
	s := strings.ReplaceAll(text, "\r\n", "\n")

	s = listItemRe.ReplaceAllString(s, "<ul><li>$1</li></ul>")
	s = listJoinRe.ReplaceAllString(s, "")

	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "<em>$1</em>")

	var blocks []string
	for _, block := range strings.Split(s, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if strings.HasPrefix(block, "<ul>") {
			blocks = append(blocks, block)
			continue
		}
		blocks = append(blocks, "<p>"+block+"</p>")
	}
	return strings.Join(blocks, "\n")
}
