package catalog

import (
	"testing"
)

func TestDefaultValid(t *testing.T) {
	errs := Validate(Default())
	for _, err := range errs {
		t.Errorf("catalog invariant violated: %v", err)
	}
}

func TestDefaultOrderStable(t *testing.T) {
	a := Default().Names()
	b := Default().Names()

	if len(a) == 0 {
		t.Fatal("expected topics")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("topic order not stable at %d: %s vs %s", i, a[i], b[i])
		}
	}
	if a[0] != "SELECT" {
		t.Errorf("expected SELECT first, got %s", a[0])
	}
}

func TestByName(t *testing.T) {
	c := Default()

	topic, ok := c.ByName("WHERE")
	if !ok {
		t.Fatal("expected WHERE topic")
	}
	if topic.Description == "" || topic.Syntax == "" || topic.UseCase == "" {
		t.Error("topic metadata should be populated")
	}

	if _, ok := c.ByName("HAVING"); ok {
		t.Error("expected miss for unknown topic")
	}
}

func TestWhereNumericWalkthrough(t *testing.T) {
	topic, ok := Default().ByName("WHERE")
	if !ok {
		t.Fatal("expected WHERE topic")
	}

	var ex *Example
	for i := range topic.Examples {
		if topic.Examples[i].Title == "Filter with a numeric value" {
			ex = &topic.Examples[i]
		}
	}
	if ex == nil {
		t.Fatal("expected example 'Filter with a numeric value'")
	}

	if len(ex.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(ex.Steps))
	}

	source := ex.Steps[0].Tables[0]
	if source.Name != "Orders" {
		t.Errorf("step 1 should show Orders, got %s", source.Name)
	}
	if len(source.Rows) != 5 {
		t.Errorf("expected 5 source rows, got %d", len(source.Rows))
	}

	result := ex.Steps[1].Tables[0]
	if result.Name != "Result" {
		t.Errorf("step 2 should show Result, got %s", result.Name)
	}
	wantIDs := []int{101, 103, 104}
	if len(result.Rows) != len(wantIDs) {
		t.Fatalf("expected %d result rows, got %d", len(wantIDs), len(result.Rows))
	}
	for i, r := range result.Rows {
		if got := r.Cells["OrderID"]; got != wantIDs[i] {
			t.Errorf("row %d: expected OrderID %d, got %v", i, wantIDs[i], got)
		}
		if amount, ok := r.Cells["Amount"].(int); !ok || amount <= 100 {
			t.Errorf("row %d: Amount should exceed 100, got %v", i, r.Cells["Amount"])
		}
		if !r.Highlight {
			t.Errorf("row %d: expected highlight flag", i)
		}
	}
}

func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want RowClass
	}{
		{"plain", Row{}, Normal},
		{"highlight", Row{Highlight: true}, Highlighted},
		{"unmatched", Row{Unmatched: true}, UnmatchedRow},
		{"inserted", Row{Inserted: true}, InsertedRow},
		{"updated", Row{Updated: true}, UpdatedRow},
		// Conflicting flags never occur in authored data but resolve by
		// first-match precedence when they do.
		{"highlight beats unmatched", Row{Highlight: true, Unmatched: true}, Highlighted},
		{"highlight beats everything", Row{Highlight: true, Unmatched: true, Inserted: true, Updated: true}, Highlighted},
		{"unmatched beats inserted", Row{Unmatched: true, Inserted: true}, UnmatchedRow},
		{"inserted beats updated", Row{Inserted: true, Updated: true}, InsertedRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.row); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeriveColumns(t *testing.T) {
	declared := Table{
		Columns: []string{"B", "A"},
		Rows:    []Row{row(map[string]Value{"B": 1, "A": 2})},
	}
	got := DeriveColumns(declared)
	if len(got) != 2 || got[0] != "B" || got[1] != "A" {
		t.Errorf("declared columns should pass through unchanged, got %v", got)
	}

	inferred := Table{
		Rows: []Row{row(map[string]Value{"Zeta": 1, "Alpha": 2, "Mid": 3})},
	}
	got = DeriveColumns(inferred)
	want := []string{"Alpha", "Mid", "Zeta"}
	if len(got) != len(want) {
		t.Fatalf("expected %d inferred columns, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("inferred column %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	if cols := DeriveColumns(Table{}); cols != nil {
		t.Errorf("empty table should derive nil columns, got %v", cols)
	}
}

func TestValidateCatchesUndeclaredColumn(t *testing.T) {
	bad := Catalog{
		{
			Name: "BROKEN",
			Examples: []Example{
				{
					Title: "bad rows",
					Steps: []Step{
						{
							Explanation: "x",
							Query:       "SELECT 1;",
							Tables: []Table{
								{
									Name:    "T",
									Columns: []string{"A"},
									Rows:    []Row{row(map[string]Value{"A": 1, "Ghost": 2})},
								},
							},
						},
					},
				},
			},
		},
	}

	errs := Validate(bad)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
}

func TestValidateCatchesEmptyExample(t *testing.T) {
	bad := Catalog{
		{Name: "EMPTY", Examples: []Example{{Title: "no steps"}}},
	}
	if errs := Validate(bad); len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}

	empty := Catalog{{Name: "BARE"}}
	if errs := Validate(empty); len(errs) != 1 {
		t.Fatalf("expected 1 error for topic with no examples, got %d", len(errs))
	}
}

func TestCellUpdated(t *testing.T) {
	r := updated(map[string]Value{"City": "Lyon", "Name": "Bob"}, "City")
	if !r.CellUpdated("City") {
		t.Error("City should be marked updated")
	}
	if r.CellUpdated("Name") {
		t.Error("Name should not be marked updated")
	}
}
