package charts

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"io"

	"github.com/worldmbti/insights/consts"
	"github.com/worldmbti/insights/dashboard"
)

//go:embed templates/dashboard.html
var dashboardHTML string

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

// Panel is a chart placed on the dashboard page.
type Panel struct {
	ID      string
	View    dashboard.View
	Options template.JS
}

// NewPanel renders the view's chart options for embedding in the page.
func NewPanel(id string, v dashboard.View) (*Panel, error) {
	b, err := json.Marshal(ChartOptions(v))
	if err != nil {
		return nil, err
	}
	return &Panel{ID: id, View: v, Options: template.JS(b)}, nil
}

// Page is the dashboard: the type selector, the default table's chart and, after
// an upload, either the uploaded table's chart or the reason it was rejected.
type Page struct {
	Types    []string
	Selected string
	N        int
	Primary  *Panel
	Upload   *Panel
	Notice   string
	Error    string
}

type pageData struct {
	Page
	Title       string
	Intro       string
	SelectLabel string
	UploadIntro string
	UploadLabel string
	AssetsHost  string
}

// RenderPage writes the dashboard HTML.
func RenderPage(w io.Writer, p Page) error {
	return dashboardTmpl.Execute(w, pageData{
		Page:        p,
		Title:       consts.PageTitle,
		Intro:       consts.PageIntro,
		SelectLabel: consts.SelectLabel,
		UploadIntro: consts.UploadIntro,
		UploadLabel: consts.UploadLabel,
		AssetsHost:  consts.EChartsAssetsHost,
	})
}
