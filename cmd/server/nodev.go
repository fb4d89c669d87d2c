//go:build !dev

package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/worldmbti/insights/config"
)

func registerDevRoutes(chi.Router, *config.Config) {}
