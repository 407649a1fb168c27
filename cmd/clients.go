package main

import (
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/people-search/internal/search"
	"github.com/sells-group/people-search/pkg/coresignal"
	"github.com/sells-group/people-search/pkg/exa"
)

// newSearcher wires vendor clients from config. CoreSignal credentials
// are required; Exa is optional and its absence only disables the web
// fallback.
func newSearcher() (*search.Searcher, error) {
	if cfg.CoreSignal.Key == "" {
		return nil, eris.New("coresignal api key is required (set PEOPLESEARCH_CORESIGNAL_KEY)")
	}

	core := coresignal.NewClient(cfg.CoreSignal.Key,
		coresignal.WithBaseURL(cfg.CoreSignal.BaseURL),
		coresignal.WithTimeout(time.Duration(cfg.CoreSignal.TimeoutSecs)*time.Second),
		coresignal.WithLimiter(rate.NewLimiter(rate.Limit(cfg.CoreSignal.CollectRPS), 1)),
	)

	var web exa.Client
	if cfg.Exa.Key != "" {
		web = exa.NewClient(cfg.Exa.Key,
			exa.WithBaseURL(cfg.Exa.BaseURL),
			exa.WithTimeout(time.Duration(cfg.Exa.TimeoutSecs)*time.Second),
		)
	}

	return search.New(core, web,
		search.WithDefaultLimit(cfg.Search.DefaultLimit),
		search.WithWebResults(cfg.Search.WebResults),
		search.WithCollectWorkers(cfg.Search.CollectWorkers),
	), nil
}
