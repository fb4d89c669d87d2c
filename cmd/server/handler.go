package main

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/worldmbti/insights/charts"
	"github.com/worldmbti/insights/consts"
	"github.com/worldmbti/insights/dashboard"
	"github.com/worldmbti/insights/ranking"
)

// primaryPage builds the dashboard page with the default table's chart for typeName.
func primaryPage(t *ranking.Table, typeName string, n int) (charts.Page, error) {
	page := charts.Page{Types: t.Types, Selected: typeName, N: n}
	v, err := dashboard.Primary(t, typeName, n)
	if err != nil {
		return page, err
	}
	page.Primary, err = charts.NewPanel("primary", v)
	return page, err
}

func renderPage(w http.ResponseWriter, status int, page charts.Page) {
	var buf bytes.Buffer
	if err := charts.RenderPage(&buf, page); err != nil {
		log.Printf("Error rendering page: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func indexHandler(src charts.TableSource, defaultN int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := src.Table()
		if t == nil {
			http.Error(w, "No data available", http.StatusServiceUnavailable)
			return
		}
		n, err := charts.ParseN(r.URL.Query().Get("n"), defaultN)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		page, err := primaryPage(t, dashboard.DefaultType(t, r.URL.Query().Get("type")), n)
		if err != nil {
			log.Printf("Error building dashboard: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		renderPage(w, http.StatusOK, page)
	}
}

// uploadHandler renders the dashboard again with a second chart built from the
// uploaded table. Validation failures are shown on the page; the primary chart
// is always rendered.
func uploadHandler(src charts.TableSource, defaultN int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := src.Table()
		if t == nil {
			http.Error(w, "No data available", http.StatusServiceUnavailable)
			return
		}

		file, header, err := readUpload(w, r)
		if err != nil {
			var mr *malformedRequest
			if errors.As(err, &mr) {
				http.Error(w, mr.msg, mr.status)
			} else {
				log.Printf("Error reading upload: %s", err.Error())
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			}
			return
		}
		defer file.Close()

		n, err := charts.ParseN(r.FormValue("n"), defaultN)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		typeName := dashboard.DefaultType(t, r.FormValue("type"))

		page, err := primaryPage(t, typeName, n)
		if err != nil {
			log.Printf("Error building dashboard: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		v, err := dashboard.Upload(file, header.Filename, typeName, n)
		if err != nil {
			log.Printf("Rejected upload %q: %v", header.Filename, err)
			page.Error = dashboard.Message(err)
			renderPage(w, http.StatusUnprocessableEntity, page)
			return
		}

		page.Upload, err = charts.NewPanel("upload", v)
		if err != nil {
			log.Printf("Error building upload chart: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		page.Notice = consts.UploadSuccess
		renderPage(w, http.StatusOK, page)
	}
}
