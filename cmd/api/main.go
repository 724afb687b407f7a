package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"stayscout/internal/adapters/exchangerate"
	server "stayscout/internal/adapters/http_server"
	"stayscout/internal/adapters/observability"
	"stayscout/internal/adapters/xotelo"
	"stayscout/internal/app"
	"stayscout/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// upstream clients; a missing credential leaves the search client nil
	// and surfaces as a per-request configuration error
	var hotels *xotelo.Client
	if c, err := xotelo.New(cfg.HotelAPIBase, cfg.HotelAPIHost, cfg.HotelAPIKey, cfg.UpstreamRPS, cfg.UpstreamTimeout); err == nil {
		hotels = c
	} else {
		log.Warn().Err(err).Msg("hotel search client not configured")
	}
	rates := exchangerate.New(cfg.ExchangeBase, cfg.UpstreamTimeout)

	// services; the nil check avoids handing a typed-nil client across the
	// interface boundary
	search := app.NewSearchService(nil)
	if hotels != nil {
		search = app.NewSearchService(hotels)
	}
	convert := app.NewConvertService(rates)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Search: search, Convert: convert})
	srv.MountStatic(cfg.StaticDir)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
