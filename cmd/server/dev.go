//go:build dev

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worldmbti/insights/config"
)

func registerDevRoutes(r chi.Router, cfg *config.Config) {
	// Static files for exported charts
	r.Handle("/chartdata/*", http.StripPrefix("/chartdata/", http.FileServer(http.Dir(cfg.ChartDataDir()))))
}
