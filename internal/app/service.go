// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/heavenike02/sdg-showcase-3/internal/adapters/repository"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/profile"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/search"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/summary"
	"github.com/heavenike02/sdg-showcase-3/pkg/logger"
	"github.com/heavenike02/sdg-showcase-3/pkg/metrics"
)

// Default request-facing limits, overridable via options.
const (
	defaultMaxSearchResults = 500
	defaultRelatedLimit     = 5
)

// Service wires the domain logic to the backing store. Every request is
// served synchronously: one fetch, in-memory normalization/filtering/
// aggregation, return. There is no cross-request state and no cache.
type Service struct {
	mu sync.RWMutex

	store            repository.Store
	maxSearchResults int
	relatedLimit     int

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the backing store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxSearchResults caps the record count a search returns.
func WithMaxSearchResults(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSearchResults = n
		}
	}
}

// WithRelatedLimit sets the default related-researcher listing size.
func WithRelatedLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.relatedLimit = n
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxSearchResults: defaultMaxSearchResults,
		relatedLimit:     defaultRelatedLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start finalizes wiring. An unset store falls back to an empty in-memory
// store so development mode works without a database.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewMemory()
		s.logger.Warn(ctx, "no store configured; using empty in-memory store")
	}
	s.started = true
	s.logger.Info(ctx, "showcase service started",
		logger.Int("maxSearchResults", s.maxSearchResults),
		logger.Int("relatedLimit", s.relatedLimit),
	)
	return nil
}

// Stop releases the store if it holds connections.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if closer, ok := s.store.(interface{ Close() }); ok {
		closer.Close()
	}
	s.started = false
	s.logger.Info(context.Background(), "showcase service stopped")
}

// Profile returns the display-ready profile for one researcher.
// repository.ErrNotFound propagates for unknown ids.
func (s *Service) Profile(ctx context.Context, id string) (profile.Profile, error) {
	rec, err := s.fetchByID(ctx, id)
	if err != nil {
		return profile.Profile{}, err
	}
	return profile.Format(rec), nil
}

// Search runs the three-stage filter pipeline over the full population and
// returns matching records in store order, capped at the configured maximum.
func (s *Service) Search(ctx context.Context, p search.Params) ([]model.ResearcherRecord, error) {
	records, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	metrics.RecordSearchRequest(string(p.Filter))

	results := search.Apply(records, p)
	if len(results) > s.maxSearchResults {
		results = results[:s.maxSearchResults]
	}
	s.logger.Debug(ctx, "search completed",
		logger.String("query", p.Query),
		logger.String("filter", string(p.Filter)),
		logger.String("targetId", p.TargetID),
		logger.Int("results", len(results)),
	)
	return results, nil
}

// Summary recomputes the SDG aggregation over the whole population. Results
// are sorted by SDG number for stable presentation.
func (s *Service) Summary(ctx context.Context) ([]summary.SDGSummary, error) {
	records, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	summaries, stats := summary.Summarize(records)
	metrics.RecordSummaryRebuild(float64(time.Since(start).Milliseconds()), stats.Skipped)
	if stats.Skipped > 0 {
		s.logger.Warn(ctx, "summary skipped invalid target entries",
			logger.Int("skipped", stats.Skipped),
			logger.Int("records", stats.Records),
		)
	}
	summary.SortByID(summaries)
	return summaries, nil
}

// Related returns researchers most similar to the given one, ranked by
// shared targets and tags. limit <= 0 selects the configured default.
func (s *Service) Related(ctx context.Context, id string, limit int) ([]model.ResearcherRecord, error) {
	if limit <= 0 {
		limit = s.relatedLimit
	}
	subject, err := s.fetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	records, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return search.Related(subject, records, limit), nil
}

// Count returns the stored researcher count; used by the stats endpoint and
// the background metrics updater.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		metrics.RecordStoreError("count")
		return 0, err
	}
	metrics.UpdateResearcherCount(n)
	return n, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":          s.started,
		"maxSearchResults": s.maxSearchResults,
		"relatedLimit":     s.relatedLimit,
	}
	if s.started {
		if n, err := s.Count(ctx); err == nil {
			stats["researchers"] = n
		}
	}
	return stats
}

func (s *Service) fetchByID(ctx context.Context, id string) (model.ResearcherRecord, error) {
	start := time.Now()
	rec, err := s.store.ByID(ctx, id)
	metrics.RecordStoreQuery("by_id", float64(time.Since(start).Milliseconds()))
	if err != nil {
		if !isNotFound(err) {
			metrics.RecordStoreError("by_id")
			s.logger.Error(ctx, "store fetch failed", logger.String("id", id), logger.Error(err))
		}
		return model.ResearcherRecord{}, err
	}
	return rec, nil
}

func (s *Service) fetchAll(ctx context.Context) ([]model.ResearcherRecord, error) {
	start := time.Now()
	records, err := s.store.All(ctx)
	metrics.RecordStoreQuery("all", float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordStoreError("all")
		s.logger.Error(ctx, "store fetch failed", logger.Error(err))
		return nil, err
	}
	return records, nil
}
