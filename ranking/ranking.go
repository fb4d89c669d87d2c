package ranking

import (
	"cmp"
	"slices"
)

// Record is one row of a Table: a country and its value for each type column.
// Types absent from Values are missing cells.
type Record struct {
	Country string
	Values  map[string]float64
}

// Value returns the record's value for typeName, and false if the cell is missing.
func (r Record) Value(typeName string) (float64, bool) {
	v, ok := r.Values[typeName]
	return v, ok
}

// Table is an ordered list of records plus the type columns found in its header,
// in header order. Tables are not modified after they are built.
type Table struct {
	Name    string
	Types   []string
	Records []Record
}

// HasType reports whether typeName is one of the table's type columns.
func (t *Table) HasType(typeName string) bool {
	if t == nil {
		return false
	}
	return slices.Contains(t.Types, typeName)
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// TopN returns the n records with the largest value for typeName, largest first.
// Records with equal values keep their table order, and records missing the value
// come after all others. The table itself is left untouched.
func TopN(t *Table, typeName string, n int) ([]Record, error) {
	if !t.HasType(typeName) {
		return nil, &SchemaMismatchError{Column: typeName}
	}
	if n <= 0 || len(t.Records) == 0 {
		return []Record{}, nil
	}

	sorted := slices.Clone(t.Records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		va, okA := a.Value(typeName)
		vb, okB := b.Value(typeName)
		switch {
		case okA && okB:
			return cmp.Compare(vb, va)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})

	return sorted[:min(n, len(sorted))], nil
}
