package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/worldmbti/insights/charts"
	"github.com/worldmbti/insights/consts"
	"github.com/worldmbti/insights/dashboard"
	"github.com/worldmbti/insights/ranking"
)

type apiError struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Column string `json:"column,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// uploadError maps an upload error to its API body.
func uploadError(err error) apiError {
	var mc *ranking.MissingColumnError
	if errors.As(err, &mc) {
		return apiError{Error: err.Error(), Code: "missing_required_column", Column: mc.Column}
	}
	var sm *ranking.SchemaMismatchError
	if errors.As(err, &sm) {
		return apiError{Error: err.Error(), Code: "schema_mismatch", Column: sm.Column}
	}
	return apiError{Error: err.Error(), Code: "parse_error"}
}

func typesHandler(src charts.TableSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := src.Table()
		if t == nil {
			writeJSON(w, http.StatusServiceUnavailable, apiError{Error: "No data available", Code: "no_data"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"source": t.Name,
			"types":  t.Types,
		})
	}
}

// topHandler returns the default table's top-N for the "type" query parameter.
// Unlike the dashboard page, an unknown type is an error rather than a fallback.
func topHandler(src charts.TableSource, defaultN int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := src.Table()
		if t == nil {
			writeJSON(w, http.StatusServiceUnavailable, apiError{Error: "No data available", Code: "no_data"})
			return
		}
		n, err := charts.ParseN(r.URL.Query().Get("n"), defaultN)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error(), Code: "bad_request"})
			return
		}
		typeName := r.URL.Query().Get("type")
		if typeName == "" {
			typeName = dashboard.DefaultType(t, "")
		}
		v, err := dashboard.Primary(t, typeName, n)
		if err != nil {
			writeJSON(w, http.StatusNotFound, apiError{Error: err.Error(), Code: "schema_mismatch", Column: typeName})
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// uploadTopHandler returns the top-N of an uploaded table for the "type" form field,
// defaulting to the first type of the default table.
func uploadTopHandler(src charts.TableSource, defaultN int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := readUpload(w, r)
		if err != nil {
			var mr *malformedRequest
			if errors.As(err, &mr) {
				writeJSON(w, mr.status, apiError{Error: mr.msg, Code: "bad_request"})
			} else {
				log.Printf("Error reading upload: %s", err.Error())
				writeJSON(w, http.StatusBadRequest, apiError{Error: http.StatusText(http.StatusBadRequest), Code: "bad_request"})
			}
			return
		}
		defer file.Close()

		n, err := charts.ParseN(r.FormValue("n"), defaultN)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error(), Code: "bad_request"})
			return
		}
		typeName := r.FormValue("type")
		if typeName == "" {
			typeName = dashboard.DefaultType(src.Table(), "")
		}

		v, err := dashboard.Upload(file, header.Filename, typeName, n)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, uploadError(err))
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func chartsJSONHandler(chartDataDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(chartDataDir, consts.ChartsJSONFile)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				http.Error(w, "Charts not generated yet", http.StatusNotFound)
				return
			}
			log.Printf("Error reading %s: %v", path, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}
}
