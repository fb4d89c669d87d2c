package charts

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/worldmbti/insights/consts"
	"github.com/worldmbti/insights/dashboard"
	"github.com/worldmbti/insights/ranking"
)

// TableSource provides the current default table.
type TableSource interface {
	Table() *ranking.Table
}

// BuildTopChart creates a horizontal bar chart for a view, largest value on top.
// Each bar is coloured on the teal-blue ramp according to its value.
func BuildTopChart(v dashboard.View) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           consts.ChartWidth,
			Height:          consts.ChartHeight,
			BackgroundColor: consts.ChartBackgroundColor,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      v.Title,
			Subtitle:   v.Source,
			TitleStyle: &opts.TextStyle{Color: consts.ChartTextColor},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: consts.ValueTooltip,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:         fmt.Sprintf(consts.ValueAxisName, v.Type),
			NameLocation: "center",
			NameGap:      30,
			AxisLabel: &opts.AxisLabel{
				Color: consts.ChartTextColor,
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:         consts.CountryAxisName,
			NameLocation: "center",
			NameGap:      120,
			AxisLabel: &opts.AxisLabel{
				Color: consts.ChartTextColor,
			},
		}),
		charts.WithGridOpts(opts.Grid{
			Left:   "160",
			Right:  "40",
			Bottom: "60",
		}),
	)

	// The category axis is drawn bottom-up once reversed, so feed it smallest first.
	n := len(v.Bars)
	labels := make([]string, n)
	data := make([]opts.BarData, n)
	lo, hi := valueRange(v.Bars)
	for i, b := range v.Bars {
		j := n - 1 - i
		labels[j] = b.Country
		data[j] = barData(b, lo, hi)
	}

	bar.SetXAxis(labels).
		AddSeries(v.Type, data).
		XYReversal()

	return bar
}

func barData(b dashboard.Bar, lo, hi float64) opts.BarData {
	if b.Missing {
		return opts.BarData{
			Name:    b.Country,
			Value:   "-",
			Tooltip: &opts.Tooltip{Formatter: consts.MissingTooltip},
		}
	}
	return opts.BarData{
		Name:      b.Country,
		Value:     b.Value,
		ItemStyle: &opts.ItemStyle{Color: rampColor(consts.TealBlues, b.Value, lo, hi)},
	}
}

// valueRange returns the smallest and largest present values.
func valueRange(bars []dashboard.Bar) (lo, hi float64) {
	first := true
	for _, b := range bars {
		if b.Missing {
			continue
		}
		if first {
			lo, hi = b.Value, b.Value
			first = false
			continue
		}
		lo = min(lo, b.Value)
		hi = max(hi, b.Value)
	}
	return lo, hi
}

// ChartsHandler renders the default table's chart as a standalone go-echarts page.
// The type and count come from the "type" and "n" query parameters.
func ChartsHandler(src TableSource, defaultN int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := src.Table()
		if t == nil {
			http.Error(w, "No data available", http.StatusNotFound)
			return
		}
		n, err := ParseN(r.URL.Query().Get("n"), defaultN)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		typeName := dashboard.DefaultType(t, r.URL.Query().Get("type"))
		v, err := dashboard.Primary(t, typeName, n)
		if err != nil {
			log.Printf("Error building chart for %q: %v", typeName, err)
			http.Error(w, "Failed to build chart", http.StatusInternalServerError)
			return
		}

		page := components.NewPage()
		page.PageTitle = consts.PageTitle
		page.AddCharts(BuildTopChart(v))

		w.Header().Set("Content-Type", "text/html")
		_ = page.Render(w)
	}
}

// ParseN reads the requested number of bars, or returns def when s is empty.
func ParseN(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > consts.MaxTopN {
		return 0, fmt.Errorf("n must be a number between 1 and %d", consts.MaxTopN)
	}
	return n, nil
}

// ChartOptions returns the echarts option object of the view's chart.
func ChartOptions(v dashboard.View) map[string]interface{} {
	bar := BuildTopChart(v)
	bar.Validate()
	return bar.JSON()
}

// ExportChartsJSON writes the chart options of every type of t, in column order,
// to charts.json in outputDir.
func ExportChartsJSON(t *ranking.Table, n int, outputDir string) error {
	if t == nil || len(t.Types) == 0 {
		log.Print("No data to export")
		return nil
	}

	chartsData := make([]map[string]interface{}, 0, len(t.Types))
	for _, typeName := range t.Types {
		v, err := dashboard.Primary(t, typeName, n)
		if err != nil {
			return err
		}
		chartsData = append(chartsData, map[string]interface{}{
			"id":      typeName,
			"options": ChartOptions(v),
		})
	}

	output := map[string]interface{}{
		"source":      t.Name,
		"countries":   t.Len(),
		"types":       t.Types,
		"lastUpdated": time.Now().UTC().Format(time.RFC3339),
		"charts":      chartsData,
	}

	jsonData, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, consts.DirPermissions); err != nil {
		return err
	}

	outputPath := filepath.Join(outputDir, consts.ChartsJSONFile)
	if err := writeFileAtomic(outputPath, jsonData); err != nil {
		return err
	}

	log.Printf("Exported charts to %s", outputPath)
	return nil
}

// writeFileAtomic replaces path with data through a temporary file in the same
// directory, so readers see either the old or the new content.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(consts.FilePermissions); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
