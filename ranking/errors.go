package ranking

import "fmt"

// MissingColumnError is returned when a table lacks a required column, such as Country.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

// SchemaMismatchError is returned when the selected type is not a column of the table.
type SchemaMismatchError struct {
	Column string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("column %q not found in table", e.Column)
}
