// Package dashboard turns a table and a type selection into the view rendered by
// the charts. Every call works on its own inputs; nothing is cached between calls.
package dashboard

import (
	"errors"
	"fmt"
	"io"

	"github.com/worldmbti/insights/consts"
	"github.com/worldmbti/insights/dataset"
	"github.com/worldmbti/insights/ranking"
)

// Bar is one ranked country of a chart.
type Bar struct {
	Rank    int     `json:"rank"`
	Country string  `json:"country"`
	Value   float64 `json:"value"`
	Missing bool    `json:"missing,omitempty"`
}

// View is the ranked subset of a table for one type.
type View struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	Type   string `json:"type"`
	N      int    `json:"n"`
	Bars   []Bar  `json:"bars"`
}

// Build ranks t by typeName and keeps the first n records.
func Build(t *ranking.Table, typeName string, n int, title string) (View, error) {
	top, err := ranking.TopN(t, typeName, n)
	if err != nil {
		return View{}, err
	}
	v := View{
		Title: title,
		Type:  typeName,
		N:     n,
		Bars:  make([]Bar, 0, len(top)),
	}
	if t != nil {
		v.Source = t.Name
	}
	for i, r := range top {
		value, ok := r.Value(typeName)
		v.Bars = append(v.Bars, Bar{Rank: i + 1, Country: r.Country, Value: value, Missing: !ok})
	}
	return v, nil
}

// Primary builds the view of the default table.
func Primary(t *ranking.Table, typeName string, n int) (View, error) {
	return Build(t, typeName, n, fmt.Sprintf(consts.ChartTitle, typeName, n))
}

// Upload parses an uploaded table and builds its view for typeName. A table without
// a Country column fails with *ranking.MissingColumnError before the selected type
// is looked up, which fails with *ranking.SchemaMismatchError. Both checks run on
// the header, so bad cells elsewhere in the file never hide them.
func Upload(r io.Reader, name, typeName string, n int) (View, error) {
	t, err := dataset.ParseFor(r, name, typeName)
	if err != nil {
		return View{}, err
	}
	return Build(t, typeName, n, fmt.Sprintf(consts.UploadChartTitle, typeName, n))
}

// Message returns the text shown to the user for an upload error.
func Message(err error) string {
	var mc *ranking.MissingColumnError
	if errors.As(err, &mc) {
		return fmt.Sprintf(consts.MissingColumnMsg, mc.Column)
	}
	var sm *ranking.SchemaMismatchError
	if errors.As(err, &sm) {
		return fmt.Sprintf(consts.MissingColumnMsg, sm.Column)
	}
	return fmt.Sprintf(consts.ParseFailureMsg, err)
}

// DefaultType returns the type preselected for t: requested when it exists, the
// first type column otherwise.
func DefaultType(t *ranking.Table, requested string) string {
	if t.HasType(requested) {
		return requested
	}
	if t == nil || len(t.Types) == 0 {
		return ""
	}
	return t.Types[0]
}
