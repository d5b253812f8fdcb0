package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/bitfolio/bitfolio/handler/api"
	"github.com/bitfolio/bitfolio/handler/hc"
)

var serverSet = wire.NewSet(
	api.New,
	provideServer,
)

func provideServer(apiHandler *api.Server) *http.Server {
	m := chi.NewMux()
	m.Use(middleware.RealIP)
	m.Use(middleware.Logger)
	m.Use(middleware.Recoverer)
	m.Use(cors.AllowAll().Handler)

	m.Mount("/api", apiHandler.Handler())
	m.Mount("/hc", hc.Handler(version))
	m.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", opt.port),
		Handler: m,
	}
}
