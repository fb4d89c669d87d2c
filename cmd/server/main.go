package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/robfig/cron/v3"
	"github.com/worldmbti/insights/charts"
	"github.com/worldmbti/insights/config"
	"github.com/worldmbti/insights/consts"
	"github.com/worldmbti/insights/dataset"
)

func startTasks(ctx context.Context, cfg *config.Config, store *dataset.Store) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(time.UTC))
	// Pick up edits to the default dataset
	_, err := c.AddFunc(cfg.ReloadCron, reload(ctx, cfg, store))
	if err != nil {
		return nil, err
	}
	// Regenerate charts JSON once a day at 00:05 UTC
	_, err = c.AddFunc(cfg.ExportCron, generateCharts(ctx, cfg, store))
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func newRouter(cfg *config.Config, src charts.TableSource) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/healthz"))

	// Dev-only routes (exported chart data)
	registerDevRoutes(r, cfg)

	r.Get("/", indexHandler(src, cfg.TopN))
	r.Get("/charts", charts.ChartsHandler(src, cfg.TopN))
	r.Get("/api/types", typesHandler(src))
	r.Get("/api/top", topHandler(src, cfg.TopN))

	r.Get("/api/charts", chartsJSONHandler(cfg.ChartDataDir()))

	// Rate-limited upload endpoints
	limiter := httprate.NewRateLimiter(consts.RateLimitRequests, consts.RateLimitWindow, httprate.WithKeyByIP())
	r.With(limiter.Handler).Post("/upload", uploadHandler(src, cfg.TopN))
	r.With(limiter.Handler).Post("/api/top", uploadTopHandler(src, cfg.TopN))

	return r
}

func main() {
	cfgFile := flag.String("config", "", "Path to a YAML config file (default: ./mbti-insights.yaml if present)")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatal(err)
	}

	store := dataset.NewStore(cfg.DataPath())
	if err := store.Load(); err != nil {
		log.Fatal(err)
	}

	if _, err := startTasks(ctx, cfg, store); err != nil {
		log.Fatal(err)
	}
	if cfg.ExportOnRun {
		go generateCharts(ctx, cfg, store)()
	}

	log.Print("Starting MBTI Insights server on :" + cfg.Port)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		ReadHeaderTimeout: consts.ReadHeaderTimeout,
		Handler:           newRouter(cfg, store),
	}
	err = server.ListenAndServe()
	if err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
