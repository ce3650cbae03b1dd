package render

import (
	"strings"
	"testing"

	"github.com/san-kum/sqlviz/internal/catalog"
)

func TestCellNull(t *testing.T) {
	tests := []struct {
		name string
		v    catalog.Value
		want string
	}{
		{"nil", nil, "NULL"},
		{"string", "London", "London"},
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
		{"empty string stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cell(tt.v); got != tt.want {
				t.Errorf("Cell(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestTableRendersHeaderAndRows(t *testing.T) {
	got := Table(catalog.Table{
		Name:    "Orders",
		Columns: []string{"OrderID", "Amount"},
		Rows: []catalog.Row{
			{Cells: map[string]catalog.Value{"OrderID": 101, "Amount": 150}},
			{Cells: map[string]catalog.Value{"OrderID": 102, "Amount": nil}},
		},
	})

	for _, want := range []string{"Orders", "OrderID", "Amount", "101", "150", "NULL"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered table missing %q:\n%s", want, got)
		}
	}
}

func TestTableNullNeverLowercase(t *testing.T) {
	got := Table(catalog.Table{
		Columns: []string{"A"},
		Rows:    []catalog.Row{{Cells: map[string]catalog.Value{"A": nil}}},
	})
	if strings.Contains(got, "null") || strings.Contains(got, "undefined") {
		t.Errorf("nil must render as the NULL marker only:\n%s", got)
	}
	if !strings.Contains(got, "NULL") {
		t.Errorf("nil must render as NULL:\n%s", got)
	}
}

func TestTableEmptySet(t *testing.T) {
	got := Table(catalog.Table{Name: "Products", Columns: []string{"ProductID", "Name"}})
	if !strings.Contains(got, EmptySet) {
		t.Errorf("empty rows should render the placeholder:\n%s", got)
	}
	if strings.Contains(got, "ProductID") {
		t.Errorf("placeholder replaces the empty frame entirely:\n%s", got)
	}
}

func TestTableInfersColumns(t *testing.T) {
	got := Table(catalog.Table{
		Rows: []catalog.Row{
			{Cells: map[string]catalog.Value{"Zeta": 1, "Alpha": 2}},
		},
	})
	// Inferred headers are sorted for determinism.
	alpha := strings.Index(got, "Alpha")
	zeta := strings.Index(got, "Zeta")
	if alpha < 0 || zeta < 0 {
		t.Fatalf("missing inferred headers:\n%s", got)
	}
	if alpha > zeta {
		t.Errorf("inferred headers should be sorted:\n%s", got)
	}
}

func TestStepPlaceholderWithoutTables(t *testing.T) {
	got := Step(0, catalog.Step{
		Explanation: "nothing to show yet",
		Query:       "CREATE TABLE t (x INT);",
	}, 60)

	if !strings.Contains(got, NoTables) {
		t.Errorf("step without tables should render placeholder:\n%s", got)
	}
	if !strings.Contains(got, "Step 1") {
		t.Errorf("step badge missing:\n%s", got)
	}
}

func TestStepRendersAllTables(t *testing.T) {
	got := Step(1, catalog.Step{
		Explanation: "two sources",
		Query:       "SELECT 1;",
		Tables: []catalog.Table{
			{Name: "Left", Columns: []string{"A"}, Rows: []catalog.Row{{Cells: map[string]catalog.Value{"A": 1}}}},
			{Name: "Right", Columns: []string{"B"}, Rows: []catalog.Row{{Cells: map[string]catalog.Value{"B": 2}}}},
		},
	}, 60)

	if !strings.Contains(got, "Step 2") {
		t.Errorf("step index should be one-based in the badge:\n%s", got)
	}
	for _, want := range []string{"Left", "Right"} {
		if !strings.Contains(got, want) {
			t.Errorf("step should render table %q:\n%s", want, got)
		}
	}
}

func TestVeiledPreservesHeight(t *testing.T) {
	content := "line one\nline two\nline three"
	got := Veiled(content)
	if strings.Count(got, "\n") != strings.Count(content, "\n") {
		t.Errorf("veiled placeholder must keep line count: %q", got)
	}
	if strings.Contains(got, "line one") {
		t.Errorf("veiled placeholder must hide content: %q", got)
	}
}
