package main

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"stayscout/internal/adapters/observability"
	"stayscout/internal/adapters/xotelo"
	"stayscout/internal/shared"
)

// probe smoke-tests the upstream hotel API with the same client the API
// binary uses: it searches every location given on the command line,
// bounded by a small worker pool, and logs result counts. Intended for
// verifying the RapidAPI credential after a deploy.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	locations := os.Args[1:]
	if len(locations) == 0 {
		locations = []string{"Paris", "New York", "Tokyo"}
	}
	log.Info().Str("base", cfg.HotelAPIBase).Int("locations", len(locations)).Msg("probe starting")

	client, err := xotelo.New(cfg.HotelAPIBase, cfg.HotelAPIHost, cfg.HotelAPIKey, cfg.UpstreamRPS, cfg.UpstreamTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize hotel search client")
	}

	sem := semaphore.NewWeighted(4)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := 0

	for _, loc := range locations {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(location string) {
			defer wg.Done()
			defer sem.Release(1)

			cctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			raw, err := client.Search(cctx, location)
			if err != nil {
				log.Warn().Str("location", location).Err(err).Msg("probe search failed")
				mu.Lock()
				failures++
				mu.Unlock()
				return
			}
			log.Info().Str("location", location).Int("results", len(raw)).Msg("probe search ok")
		}(loc)
	}

	wg.Wait()
	if failures > 0 {
		log.Error().Int("failures", failures).Msg("probe completed with failures")
		os.Exit(1)
	}
	log.Info().Msg("probe completed")
}
