// Package export renders walkthroughs into shareable documents.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/sqlviz/internal/catalog"
)

var rowClassNames = map[catalog.RowClass]string{
	catalog.Highlighted:  "highlight",
	catalog.UnmatchedRow: "unmatched",
	catalog.InsertedRow:  "inserted",
	catalog.UpdatedRow:   "updated",
}

// WalkthroughHTML renders one example as a standalone HTML document with
// the same row/cell classification the terminal renderer uses.
func WalkthroughHTML(topic catalog.Topic, ex catalog.Example) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s — %s</title>
<style>
body { font-family: sans-serif; max-width: 52rem; margin: 2rem auto; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.8rem; }
pre { background: #f4f4f4; padding: 0.6rem; }
tr.highlight td { background: #d8f5d0; font-weight: bold; }
tr.unmatched td { color: #999; }
tr.inserted td { background: #e2f7d8; }
tr.updated td { background: #fdf3cf; }
td.changed { background: #fbe38e; font-weight: bold; }
.empty { font-style: italic; color: #888; }
</style>
</head>
<body>
`, html.EscapeString(topic.Name), html.EscapeString(ex.Title)))

	sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n<h2>%s</h2>\n",
		html.EscapeString(topic.Name), html.EscapeString(ex.Title)))
	sb.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(topic.Description)))

	for i, step := range ex.Steps {
		sb.WriteString(fmt.Sprintf("<h3>Step %d</h3>\n", i+1))
		sb.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(step.Explanation)))
		sb.WriteString(fmt.Sprintf("<pre>%s</pre>\n", html.EscapeString(step.Query)))

		if len(step.Tables) == 0 {
			sb.WriteString("<p class=\"empty\">This step produces no result table.</p>\n")
			continue
		}
		for _, t := range step.Tables {
			writeTable(&sb, t)
		}
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

func writeTable(sb *strings.Builder, t catalog.Table) {
	if t.Name != "" {
		sb.WriteString(fmt.Sprintf("<h4>%s</h4>\n", html.EscapeString(t.Name)))
	}
	if len(t.Rows) == 0 {
		sb.WriteString("<p class=\"empty\">Empty set</p>\n")
		return
	}

	cols := catalog.DeriveColumns(t)

	sb.WriteString("<table>\n<tr>")
	for _, col := range cols {
		sb.WriteString("<th>" + html.EscapeString(col) + "</th>")
	}
	sb.WriteString("</tr>\n")

	for _, r := range t.Rows {
		if class, ok := rowClassNames[catalog.Classify(r)]; ok {
			sb.WriteString(`<tr class="` + class + `">`)
		} else {
			sb.WriteString("<tr>")
		}
		for _, col := range cols {
			cell := "NULL"
			if v := r.Cells[col]; v != nil {
				cell = html.EscapeString(fmt.Sprintf("%v", v))
			}
			if r.CellUpdated(col) {
				sb.WriteString(`<td class="changed">` + cell + "</td>")
			} else {
				sb.WriteString("<td>" + cell + "</td>")
			}
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</table>\n")
}
