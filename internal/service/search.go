package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"homescout/internal/dataset"
	"homescout/internal/model"
	"homescout/internal/repository"
)

// SearchService runs the full pipeline: filter extraction, normalization,
// query over the joined listing snapshot, materialization, summary.
type SearchService struct {
	store      *dataset.Store
	engine     *QueryEngine
	extractor  *FilterExtractor
	summarizer *Summarizer
	searchLog  *repository.SearchLogRepository // nil when disabled
	maxResults int
	logger     *logrus.Logger
}

// NewSearchService creates a new search service. searchLog may be nil.
func NewSearchService(
	store *dataset.Store,
	engine *QueryEngine,
	extractor *FilterExtractor,
	summarizer *Summarizer,
	searchLog *repository.SearchLogRepository,
	maxResults int,
	logger *logrus.Logger,
) *SearchService {
	return &SearchService{
		store:      store,
		engine:     engine,
		extractor:  extractor,
		summarizer: summarizer,
		searchLog:  searchLog,
		maxResults: maxResults,
		logger:     logger,
	}
}

// Search executes one search request against the current snapshot.
func (s *SearchService) Search(ctx context.Context, query string) (*model.SearchResponse, error) {
	startTime := time.Now()

	snap := s.store.Load()
	if snap == nil {
		return nil, fmt.Errorf("listing data is not loaded")
	}

	filters := s.extractor.Extract(ctx, query)
	normalized := NormalizeFilters(filters)

	matched := s.engine.Query(snap, normalized)
	cards := MaterializeCards(matched, s.maxResults)
	summary := s.summarizer.Summarize(ctx, filters, cards)

	took := time.Since(startTime).Milliseconds()

	s.logger.WithFields(logrus.Fields{
		"query":   query,
		"filters": DescribeFilters(filters),
		"matched": len(matched),
		"cards":   len(cards),
		"took_ms": took,
	}).Info("Search completed")

	if s.searchLog != nil {
		// Fire and forget: analytics must never slow down or fail a request.
		go func() {
			logCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.searchLog.LogSearch(logCtx, query, filters, len(cards), int(took)); err != nil {
				s.logger.WithError(err).Warn("Failed to write search log")
			}
		}()
	}

	return &model.SearchResponse{
		Query:      query,
		Filters:    filters,
		Properties: cards,
		Summary:    summary,
		Took:       took,
	}, nil
}

// Refresh rebuilds the listing snapshot from disk and atomically swaps it in.
// It returns the new listing count.
func (s *SearchService) Refresh() (int, error) {
	snap, err := s.store.Reload()
	if err != nil {
		return 0, err
	}
	s.logger.WithField("listings", snap.Len()).Info("Listing snapshot rebuilt")
	return snap.Len(), nil
}

// DataReady reports whether the joined listing table is available.
func (s *SearchService) DataReady() bool {
	return s.store.Load() != nil
}

// NLUReady reports whether the language model capability is configured.
func (s *SearchService) NLUReady() bool {
	return s.extractor.Enabled()
}

// ListingCount returns the size of the current snapshot, or 0 when no
// snapshot is loaded.
func (s *SearchService) ListingCount() int {
	if snap := s.store.Load(); snap != nil {
		return snap.Len()
	}
	return 0
}
