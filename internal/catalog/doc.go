// Package catalog holds the static SQL topic catalog: topics, worked
// examples, and the ordered table-transformation steps the visualizer plays
// back.
//
// The catalog is literal data built once by [Default] and never mutated.
// Rows carry presentation flags (highlight, unmatched, inserted, updated)
// that [Classify] resolves to a single visual class with fixed precedence.
//
// Authoring invariants (every example has steps, rows only reference
// declared columns) are checked by [Validate], not defended at render time.
package catalog
