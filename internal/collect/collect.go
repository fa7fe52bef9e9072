package collect

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"joblabel-engine/internal/collect/remoteok"
	"joblabel-engine/internal/collect/remotive"
	"joblabel-engine/internal/collect/types"
	"joblabel-engine/internal/collect/util"
	"joblabel-engine/internal/config"
	"joblabel-engine/internal/domain"
	"joblabel-engine/internal/secrets"
)

// CollectOnce fans out over the enabled sources and returns one batch
// of raw records. Fallback-lane records are only used when the primary
// lane came back empty; a source failing is logged, never fatal.
func CollectOnce(ctx context.Context, cfg config.Config) ([]domain.RawRecord, error) {
	throttle := util.NewThrottle(cfg.Collect.RequestsPerSec, cfg.Collect.Burst)

	var fetchers []types.Fetcher

	if cfg.Collect.Remotive.Enabled {
		token := ""
		if acct := cfg.Collect.Remotive.AuthAccount; acct != "" {
			t, err := secrets.GetSourceToken(acct)
			if err != nil {
				log.Printf("[collect] no token for account %q: %v", acct, err)
			} else {
				token = t
			}
		}
		fetchers = append(fetchers, remotive.New(remotive.Config{
			Search: cfg.Collect.Remotive.Search,
			Token:  token,
		}, throttle))
	}
	if cfg.Collect.RemoteOK.Enabled {
		fetchers = append(fetchers, remoteok.New(remoteok.Config{}, throttle))
	}

	if len(fetchers) == 0 {
		return nil, nil
	}

	timeout := time.Duration(cfg.Collect.TimeoutSeconds) * time.Second

	var g errgroup.Group
	results := make(chan types.Result, len(fetchers))

	for _, f := range fetchers {
		f := f
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			log.Printf("[%s] Running...", f.Name())
			res, err := f.Fetch(fctx)
			if err != nil {
				log.Printf("[collect:%s] error: %v", f.Name(), err)
				return nil // best-effort: don't cancel siblings
			}
			results <- res
			return nil
		})
	}

	_ = g.Wait()
	close(results)

	var all []domain.RawRecord
	for res := range results {
		log.Printf("[collect] got source=%s records=%d", res.Source, len(res.Records))
		all = append(all, res.Records...)
	}

	return chooseLane(all), nil
}

// chooseLane applies the fetch-with-fallback rule: fallback-sourced
// records only count when the primary lane came back empty.
func chooseLane(all []domain.RawRecord) []domain.RawRecord {
	var primary, fallback []domain.RawRecord
	for _, r := range all {
		if r.Source == domain.SourceFallback {
			fallback = append(fallback, r)
		} else {
			primary = append(primary, r)
		}
	}

	if len(primary) > 0 {
		return primary
	}
	if len(fallback) > 0 {
		log.Printf("[collect] primary lane empty; using %d fallback records", len(fallback))
	}
	return fallback
}
