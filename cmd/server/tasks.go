package main

import (
	"context"
	"log"

	"github.com/worldmbti/insights/charts"
	"github.com/worldmbti/insights/config"
	"github.com/worldmbti/insights/dataset"
)

func reload(ctx context.Context, cfg *config.Config, store *dataset.Store) func() {
	return func() {
		changed, err := store.Reload()
		if err != nil {
			log.Printf("Error reloading dataset %s: %v", store.Path(), err)
			return
		}
		if changed {
			log.Print("Dataset changed, regenerating charts")
			generateCharts(ctx, cfg, store)()
		}
	}
}

func generateCharts(_ context.Context, cfg *config.Config, src charts.TableSource) func() {
	return func() {
		log.Print("Exporting charts JSON")
		if err := charts.ExportChartsJSON(src.Table(), cfg.TopN, cfg.ChartDataDir()); err != nil {
			log.Printf("Error exporting charts JSON: %v", err)
		}
	}
}
