package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/worldmbti/insights/consts"
	"github.com/worldmbti/insights/ranking"
)

var (
	ErrEmptyFile        = errors.New("file is empty")
	ErrEmptyHeader      = errors.New("empty column name")
	ErrDuplicateColumn  = errors.New("duplicate column")
	ErrEmptyCountry     = errors.New("empty country name")
	ErrDuplicateCountry = errors.New("duplicate country")
	ErrNotNumeric       = errors.New("value is not a number")
)

// ParseError reports a problem with a specific line (and optionally column) of a table.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("line %d", e.Line)
	if e.Column != "" {
		msg += fmt.Sprintf(", column %q", e.Column)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" (%q)", e.Value)
	}
	return msg + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadFile reads and parses the table stored at path.
func LoadFile(path string) (*ranking.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	return Parse(f, filepath.Base(path))
}

// Parse reads a delimited table with a Country column and one or more type columns.
// Empty cells are kept as missing values. Non-numeric cells, empty or duplicated
// country names and duplicated header names are rejected with a *ParseError.
// A header without Country fails with *ranking.MissingColumnError.
func Parse(r io.Reader, name string) (*ranking.Table, error) {
	return parseTable(r, name, nil)
}

// ParseFor reads an uploaded table that is only ranked by typeName. The header is
// checked for Country, then for typeName (*ranking.SchemaMismatchError), before any
// row is read. Only typeName cells must be numeric; other columns may hold text and
// are left out of the records' values.
func ParseFor(r io.Reader, name, typeName string) (*ranking.Table, error) {
	return parseTable(r, name, &typeName)
}

// parseTable reads the table; when selected is set only that type column is parsed.
func parseTable(r io.Reader, name string, selected *string) (*ranking.Table, error) {
	data, err := io.ReadAll(newDecodingReader(r))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sniffDelimiter(name, data)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	countryIdx := -1
	columns := make([]string, len(header))
	seenColumns := make(map[string]bool, len(header))
	table := &ranking.Table{Name: name}
	for i, h := range header {
		h = strings.TrimSpace(h)
		columns[i] = h
		if h == "" {
			return nil, &ParseError{Line: 1, Err: ErrEmptyHeader}
		}
		if seenColumns[h] {
			return nil, &ParseError{Line: 1, Column: h, Err: ErrDuplicateColumn}
		}
		seenColumns[h] = true
		if h == consts.CountryColumn {
			countryIdx = i
			continue
		}
		table.Types = append(table.Types, h)
	}
	if countryIdx < 0 {
		return nil, &ranking.MissingColumnError{Column: consts.CountryColumn}
	}
	if selected != nil && !table.HasType(*selected) {
		return nil, &ranking.SchemaMismatchError{Column: *selected}
	}

	seenCountries := make(map[string]int)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		country := strings.TrimSpace(row[countryIdx])
		if country == "" {
			return nil, &ParseError{Line: line, Column: consts.CountryColumn, Err: ErrEmptyCountry}
		}
		if first, ok := seenCountries[country]; ok {
			return nil, &ParseError{Line: line, Column: consts.CountryColumn, Value: country,
				Err: fmt.Errorf("%w, first seen on line %d", ErrDuplicateCountry, first)}
		}
		seenCountries[country] = line

		record := ranking.Record{Country: country, Values: make(map[string]float64, len(table.Types))}
		for i, cell := range row {
			if i == countryIdx || (selected != nil && columns[i] != *selected) {
				continue
			}
			v, ok, err := parseNumeric(cell)
			if err != nil {
				return nil, &ParseError{Line: line, Column: columns[i], Value: cell, Err: err}
			}
			if ok {
				record.Values[columns[i]] = v
			}
		}
		table.Records = append(table.Records, record)
	}
	return table, nil
}

// parseNumeric parses a percentage cell. It accepts surrounding spaces and a trailing
// percent sign, and reports ok=false for an empty cell.
func parseNumeric(s string) (float64, bool, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimSpace(strings.TrimSuffix(raw, "%"))
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, ErrNotNumeric
	}
	return v, true, nil
}
