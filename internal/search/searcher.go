// Package search orchestrates people lookups across vendor APIs: the
// two-phase CoreSignal protocol (search for IDs, collect full records)
// and the single-phase Exa web fallback.
package search

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/people-search/internal/profile"
	"github.com/sells-group/people-search/pkg/coresignal"
	"github.com/sells-group/people-search/pkg/exa"
)

const (
	sourceCoreSignal = "CoreSignal"
	sourceExa        = "Exa"

	defaultLimit          = 10
	defaultWebResults     = 5
	defaultCollectWorkers = 4
)

// Request is one inbound people search.
type Request struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Limit   int    `json:"limit"`
}

// Result is the orchestrator's answer. Unrecovered vendor failures are
// reported in Error/StatusCode instead of propagating; Profiles always
// holds whatever was recovered.
type Result struct {
	Profiles   []profile.Profile `json:"results"`
	Error      string            `json:"error,omitempty"`
	StatusCode int               `json:"status_code,omitempty"`
}

// Failed reports whether the search ended in an unrecovered vendor
// error.
func (r *Result) Failed() bool { return r.Error != "" }

// Option configures a Searcher.
type Option func(*Searcher)

// WithDefaultLimit sets the result limit used when a request gives
// none.
func WithDefaultLimit(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithWebResults sets the fixed result count for web searches.
func WithWebResults(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.webResults = n
		}
	}
}

// WithCollectWorkers bounds the collect fan-out.
func WithCollectWorkers(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithClock overrides the time source used to anchor ongoing
// experience spans.
func WithClock(now func() time.Time) Option {
	return func(s *Searcher) {
		s.now = now
	}
}

// Searcher drives the two vendor protocols. A nil web client simply
// disables the web fallback.
type Searcher struct {
	core       coresignal.Client
	web        exa.Client
	limit      int
	webResults int
	workers    int
	now        func() time.Time
}

// New creates a Searcher over the given vendor clients.
func New(core coresignal.Client, web exa.Client, opts ...Option) *Searcher {
	s := &Searcher{
		core:       core,
		web:        web,
		limit:      defaultLimit,
		webResults: defaultWebResults,
		workers:    defaultCollectWorkers,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchPeople runs the primary vendor's two-phase protocol. A blank
// name short-circuits to an empty result without touching the network.
func (s *Searcher) SearchPeople(ctx context.Context, req Request) *Result {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return &Result{Profiles: []profile.Profile{}}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.limit
	}

	ids, err := s.findEmployeeIDs(ctx, name, strings.TrimSpace(req.Company))
	if err != nil {
		return failedResult(err)
	}
	if len(ids) == 0 {
		return &Result{Profiles: []profile.Profile{}}
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}

	return &Result{Profiles: s.collectProfiles(ctx, ids)}
}

// findEmployeeIDs tries each search payload in priority order until one
// yields matches. Failed attempts are kept so the last error can be
// surfaced when every payload comes up empty-handed.
func (s *Searcher) findEmployeeIDs(ctx context.Context, name, company string) ([]int64, error) {
	payloads := []coresignal.Payload{
		{FullName: name, CompanyName: company},
		{Title: name, CompanyName: company},
	}

	var lastErr error
	for _, payload := range payloads {
		ids, err := s.searchOnce(ctx, payload)
		if err != nil {
			lastErr = err
			zap.L().Warn("employee id search attempt failed", zap.Error(err))
			continue
		}
		if len(ids) > 0 {
			return ids, nil
		}
	}
	return nil, lastErr
}

// searchOnce runs one id search. CoreSignal rejects the company filter
// with 422 on some endpoints; that exact case gets one retry with the
// filter stripped so the caller still sees results.
func (s *Searcher) searchOnce(ctx context.Context, payload coresignal.Payload) ([]int64, error) {
	ids, err := s.core.SearchEmployeeIDs(ctx, payload)
	if err == nil {
		return ids, nil
	}

	var se *coresignal.StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusUnprocessableEntity && payload.HasCompany() {
		return s.core.SearchEmployeeIDs(ctx, payload.WithoutCompany())
	}
	return nil, err
}

// collectProfiles fetches the full record for each ID with a bounded
// fan-out. One slow or failing ID must not take the batch down:
// failures are logged and dropped, and survivors keep the vendor's ID
// order. Partial success is the expected outcome.
func (s *Searcher) collectProfiles(ctx context.Context, ids []int64) []profile.Profile {
	records := make([]profile.Raw, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, id := range ids {
		g.Go(func() error {
			record, err := s.core.CollectEmployee(gctx, id)
			if err != nil {
				zap.L().Warn("employee collect failed",
					zap.Int64("employee_id", id),
					zap.Error(err),
				)
				return nil
			}
			records[i] = record
			return nil
		})
	}
	_ = g.Wait()

	now := s.now()
	profiles := make([]profile.Profile, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		profiles = append(profiles, profile.Normalize(record, sourceCoreSignal, now))
	}
	return profiles
}

// SearchWeb runs the best-effort web fallback. Failures here never
// surface: this vendor only supplements the primary results.
func (s *Searcher) SearchWeb(ctx context.Context, req Request) []profile.Profile {
	name := strings.TrimSpace(req.Name)
	if name == "" || s.web == nil {
		return []profile.Profile{}
	}

	resp, err := s.web.Search(ctx, exa.SearchRequest{
		Query:          buildWebQuery(name, strings.TrimSpace(req.Company)),
		UseAutoprompt:  true,
		NumResults:     s.webResults,
		IncludeDomains: []string{"linkedin.com"},
	})
	if err != nil {
		zap.L().Warn("web profile search failed", zap.Error(err))
		return []profile.Profile{}
	}

	profiles := make([]profile.Profile, 0, len(resp.Results))
	for _, hit := range resp.Results {
		title := strings.TrimSpace(hit.Title)
		headline := title
		if headline == "" {
			headline = "LinkedIn profile"
		}
		profiles = append(profiles, profile.Profile{
			Name:        profile.NameFromTitle(title, name),
			Title:       headline,
			LinkedInURL: strings.TrimSpace(hit.URL),
			Summary:     hit.BestSnippet(),
			Skills:      []string{},
			Education:   []profile.Education{},
			Positions:   []profile.Position{},
			Source:      sourceExa,
		})
	}
	return profiles
}

func buildWebQuery(name, company string) string {
	parts := []string{name}
	if company != "" {
		parts = append(parts, company)
	}
	parts = append(parts, "LinkedIn profile", "site:linkedin.com/in")
	return strings.Join(parts, " ")
}

// failedResult converts an unrecovered vendor error into the structured
// result callers see. Upstream status codes pass through; transport
// failures read as a bad gateway.
func failedResult(err error) *Result {
	res := &Result{
		Profiles:   []profile.Profile{},
		Error:      err.Error(),
		StatusCode: http.StatusBadGateway,
	}
	var se *coresignal.StatusError
	if errors.As(err, &se) {
		res.StatusCode = se.StatusCode
	}
	return res
}
