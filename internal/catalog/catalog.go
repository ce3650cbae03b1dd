package catalog

import (
	"fmt"
	"sort"
)

// Value is a single cell value. nil renders as the NULL marker.
type Value any

// Row maps column names to values plus optional presentation flags.
type Row struct {
	Cells map[string]Value

	Highlight    bool
	Unmatched    bool
	Inserted     bool
	Updated      bool
	UpdatedCells []string
}

// RowClass is the resolved visual classification of a row.
type RowClass int

const (
	Normal RowClass = iota
	Highlighted
	UnmatchedRow
	InsertedRow
	UpdatedRow
)

// Classify resolves a row's annotation flags to a single class.
// Precedence is fixed: highlight > unmatched > inserted > updated.
func Classify(r Row) RowClass {
	switch {
	case r.Highlight:
		return Highlighted
	case r.Unmatched:
		return UnmatchedRow
	case r.Inserted:
		return InsertedRow
	case r.Updated:
		return UpdatedRow
	default:
		return Normal
	}
}

// CellUpdated reports whether a single cell carries the updated marker.
func (r Row) CellUpdated(column string) bool {
	for _, c := range r.UpdatedCells {
		if c == column {
			return true
		}
	}
	return false
}

// Table is one named result table inside a step.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Step pairs an explanation and the query text with zero or more result
// tables. A step without tables renders a placeholder.
type Step struct {
	Explanation string
	Query       string
	Tables      []Table
}

type Example struct {
	Title string
	Steps []Step
}

type Topic struct {
	Name        string
	Description string
	Syntax      string
	UseCase     string
	Examples    []Example
}

// Catalog is the ordered topic list. Slice order is menu order.
type Catalog []Topic

// ByName returns the topic with the given name.
func (c Catalog) ByName(name string) (Topic, bool) {
	for _, t := range c {
		if t.Name == name {
			return t, true
		}
	}
	return Topic{}, false
}

// Names returns topic names in menu order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = t.Name
	}
	return names
}

// DeriveColumns returns the table's declared columns, or, when absent, the
// keys of the first row sorted lexicographically. Authored tables always
// declare columns; the fallback only guards authoring slips.
func DeriveColumns(t Table) []string {
	if len(t.Columns) > 0 {
		return t.Columns
	}
	if len(t.Rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(t.Rows[0].Cells))
	for c := range t.Rows[0].Cells {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// Validate checks authoring invariants: every example has at least one step,
// and no row references a column outside its table's declared columns.
func Validate(c Catalog) []error {
	var errs []error
	for _, topic := range c {
		if len(topic.Examples) == 0 {
			errs = append(errs, fmt.Errorf("topic %q: no examples", topic.Name))
		}
		for _, ex := range topic.Examples {
			if len(ex.Steps) == 0 {
				errs = append(errs, fmt.Errorf("topic %q, example %q: no steps", topic.Name, ex.Title))
			}
			for si, step := range ex.Steps {
				for _, tbl := range step.Tables {
					if len(tbl.Columns) == 0 {
						continue
					}
					declared := make(map[string]bool, len(tbl.Columns))
					for _, col := range tbl.Columns {
						declared[col] = true
					}
					for ri, row := range tbl.Rows {
						for col := range row.Cells {
							if !declared[col] {
								errs = append(errs, fmt.Errorf("topic %q, example %q, step %d, table %q, row %d: undeclared column %q",
									topic.Name, ex.Title, si+1, tbl.Name, ri, col))
							}
						}
					}
				}
			}
		}
	}
	return errs
}
