package export

import (
	"strings"
	"testing"

	"github.com/san-kum/sqlviz/internal/catalog"
)

func TestWalkthroughHTML(t *testing.T) {
	topic, ok := catalog.Default().ByName("WHERE")
	if !ok {
		t.Fatal("expected WHERE topic")
	}
	got := WalkthroughHTML(topic, topic.Examples[0])

	for _, want := range []string{
		"<title>WHERE — Filter with a numeric value</title>",
		"<h3>Step 1</h3>",
		"<h3>Step 2</h3>",
		`<tr class="highlight">`,
		"<th>OrderID</th>",
		"<td>220</td>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestWalkthroughHTMLNullAndEmpty(t *testing.T) {
	topic := catalog.Topic{Name: "T", Description: "d"}
	ex := catalog.Example{
		Title: "x",
		Steps: []catalog.Step{
			{
				Explanation: "padded",
				Query:       "SELECT 1;",
				Tables: []catalog.Table{
					{
						Name:    "WithNull",
						Columns: []string{"A"},
						Rows:    []catalog.Row{{Cells: map[string]catalog.Value{"A": nil}}},
					},
					{Name: "Bare", Columns: []string{"B"}},
				},
			},
			{Explanation: "no tables", Query: "DROP TABLE t;"},
		},
	}

	got := WalkthroughHTML(topic, ex)
	if !strings.Contains(got, "<td>NULL</td>") {
		t.Error("nil cells should export as NULL")
	}
	if !strings.Contains(got, "Empty set") {
		t.Error("empty tables should export the placeholder")
	}
	if !strings.Contains(got, "This step produces no result table.") {
		t.Error("table-less steps should export the placeholder")
	}
}

func TestWalkthroughHTMLEscapes(t *testing.T) {
	topic := catalog.Topic{Name: "T"}
	ex := catalog.Example{
		Title: "x",
		Steps: []catalog.Step{
			{
				Explanation: "a < b",
				Query:       "SELECT * FROM t WHERE a < b;",
				Tables: []catalog.Table{
					{
						Columns: []string{"A"},
						Rows:    []catalog.Row{{Cells: map[string]catalog.Value{"A": "<script>"}}},
					},
				},
			},
		},
	}

	got := WalkthroughHTML(topic, ex)
	if strings.Contains(got, "<script>") {
		t.Error("cell content must be escaped")
	}
	if !strings.Contains(got, "a &lt; b") {
		t.Error("explanations must be escaped")
	}
}
