package main

import (
	"flag"
	"log"

	"github.com/worldmbti/insights/charts"
	"github.com/worldmbti/insights/config"
	"github.com/worldmbti/insights/dataset"
)

func main() {
	cfgFile := flag.String("config", "", "Path to a YAML config file (default: ./mbti-insights.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatal(err)
	}

	t, err := dataset.LoadFile(cfg.DataPath())
	if err != nil {
		log.Fatalf("Error loading dataset: %v", err)
	}

	chartDataDir := cfg.ChartDataDir()
	log.Printf("Generating charts.json in %s", chartDataDir)
	if err := charts.ExportChartsJSON(t, cfg.TopN, chartDataDir); err != nil {
		log.Fatalf("Error exporting charts JSON: %v", err)
	}
	log.Print("Charts JSON generated successfully")
}
