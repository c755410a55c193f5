package service

import (
	"context"

	"krishi/entities"
)

// SearchResult mirrors the wire contract of the price endpoints:
// {success, count, source, data}.
type SearchResult struct {
	Source  string
	Records []entities.MarketRecord
}

type MarketService interface {
	// ScrapeAll returns the current snapshot keyword-filtered by query
	// (comma-separated keywords, OR semantics, matched across all fields).
	ScrapeAll(ctx context.Context, query string) (SearchResult, error)
	// Search applies the structured filter criteria and sort order.
	Search(ctx context.Context, criteria entities.FilterCriteria) (SearchResult, error)
	// Refresh forces a fetch from upstream, bypassing the cache window.
	Refresh(ctx context.Context) error
}
