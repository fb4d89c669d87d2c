package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/worldmbti/insights/consts"
	"github.com/worldmbti/insights/dashboard"
	"github.com/worldmbti/insights/dataset"
	"github.com/worldmbti/insights/ranking"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	barWidth = 30
)

type options struct {
	file     string
	typeName string
	n        int
	all      bool
	format   string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(consts.TealBlues[len(consts.TealBlues)-1]))
)

func run(out io.Writer, o options) error {
	switch o.format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", o.format)
	}
	if o.n < 1 || o.n > consts.MaxTopN {
		return fmt.Errorf("n must be between 1 and %d, got %d", consts.MaxTopN, o.n)
	}

	t, err := dataset.LoadFile(o.file)
	if err != nil {
		return err
	}
	views, err := buildViews(t, o)
	if err != nil {
		return err
	}

	switch o.format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("Source: %s (%d countries, %d types)", t.Name, t.Len(), len(t.Types))))
	for _, v := range views {
		fmt.Fprintln(out)
		printView(out, v)
	}
	return nil
}

// buildViews ranks the selected type, or every type in column order when o.all is set.
func buildViews(t *ranking.Table, o options) ([]dashboard.View, error) {
	types := []string{o.typeName}
	if o.all {
		types = t.Types
	} else if o.typeName == "" {
		types = []string{dashboard.DefaultType(t, "")}
	}

	views := make([]dashboard.View, 0, len(types))
	for _, typeName := range types {
		v, err := dashboard.Primary(t, typeName, o.n)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func printView(out io.Writer, v dashboard.View) {
	fmt.Fprintln(out, headerStyle.Render(v.Title))

	width := 0
	maxValue := 0.0
	for _, b := range v.Bars {
		width = max(width, runewidth.StringWidth(b.Country))
		if !b.Missing {
			maxValue = max(maxValue, b.Value)
		}
	}

	for _, b := range v.Bars {
		country := runewidth.FillRight(b.Country, width)
		if b.Missing {
			fmt.Fprintf(out, "%3d | %s | %s\n", b.Rank, country, mutedStyle.Render("-"))
			continue
		}
		fmt.Fprintf(out, "%3d | %s | %s %.1f\n", b.Rank, country, barStyle.Render(bar(b.Value, maxValue)), b.Value)
	}
}

// bar returns a bar of up to barWidth cells, proportional to value/maxValue.
func bar(value, maxValue float64) string {
	if maxValue <= 0 || value <= 0 {
		return ""
	}
	cells := int(math.Round(value / maxValue * barWidth))
	return strings.Repeat("█", max(cells, 1))
}
