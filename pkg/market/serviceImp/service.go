package serviceImp

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"krishi/entities"
	"krishi/pkg/market"
	"krishi/pkg/market/fetcher"
	"krishi/pkg/market/repository"
	svc "krishi/pkg/market/service"
)

type marketService struct {
	fetchers []fetcher.Fetcher // tried in order
	repo     repository.SnapshotRepository
	cacheTTL time.Duration
	timeout  time.Duration
}

func New(repo repository.SnapshotRepository, cacheTTL time.Duration, fetchers ...fetcher.Fetcher) svc.MarketService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Minute
	}
	return &marketService{
		fetchers: fetchers,
		repo:     repo,
		cacheTTL: cacheTTL,
		timeout:  60 * time.Second,
	}
}

func (s *marketService) ScrapeAll(ctx context.Context, query string) (svc.SearchResult, error) {
	source, records, err := s.currentRecords(ctx)
	if err != nil {
		return svc.SearchResult{}, err
	}
	return svc.SearchResult{Source: source, Records: keywordFilter(records, query)}, nil
}

func (s *marketService) Search(ctx context.Context, criteria entities.FilterCriteria) (svc.SearchResult, error) {
	source, records, err := s.currentRecords(ctx)
	if err != nil {
		return svc.SearchResult{}, err
	}
	return svc.SearchResult{Source: source, Records: market.Apply(records, criteria)}, nil
}

func (s *marketService) Refresh(ctx context.Context) error {
	_, _, err := s.fetchAndStore(ctx)
	return err
}

// currentRecords serves the cache while it is inside the validity window,
// refetches when it is not, and falls back to stale cached rows when every
// upstream is down. An empty fresh result is a valid result, not an error.
func (s *marketService) currentRecords(ctx context.Context) (string, []entities.MarketRecord, error) {
	for _, f := range s.fetchers {
		at, err := s.repo.LatestFetch(f.Name())
		if err != nil {
			return "", nil, fmt.Errorf("read cache: %w", err)
		}
		if !at.IsZero() && time.Since(at) < s.cacheTTL {
			snaps, err := s.repo.ListBySource(f.Name())
			if err != nil {
				return "", nil, fmt.Errorf("read cache: %w", err)
			}
			if len(snaps) > 0 {
				return f.Name(), records(snaps), nil
			}
		}
	}

	source, fresh, err := s.fetchAndStore(ctx)
	if err == nil {
		return source, fresh, nil
	}

	// every upstream failed; a stale snapshot beats an error page
	for _, f := range s.fetchers {
		snaps, listErr := s.repo.ListBySource(f.Name())
		if listErr == nil && len(snaps) > 0 {
			log.Printf("[market] upstream failed (%v), serving stale %s cache from %s", err, f.Name(), snaps[0].FetchedAt.Format(time.RFC3339))
			return f.Name(), records(snaps), nil
		}
	}
	return "", nil, err
}

func (s *marketService) fetchAndStore(ctx context.Context) (string, []entities.MarketRecord, error) {
	var lastErr error
	for _, f := range s.fetchers {
		fctx, cancel := context.WithTimeout(ctx, s.timeout)
		raws, err := f.Fetch(fctx, "")
		cancel()
		if err != nil {
			log.Printf("[market] fetch %s: %v", f.Name(), err)
			lastErr = err
			continue
		}
		recs := market.NormalizeAll(raws)
		now := time.Now()
		snaps := make([]entities.PriceSnapshot, 0, len(recs))
		for _, r := range recs {
			snaps = append(snaps, entities.PriceSnapshot{
				Source:     f.Name(),
				Commodity:  r.Commodity,
				State:      r.State,
				District:   r.District,
				Market:     r.Market,
				Variety:    r.Variety,
				MinPrice:   r.MinPrice,
				MaxPrice:   r.MaxPrice,
				ModalPrice: r.ModalPrice,
				FetchedAt:  now,
			})
		}
		if err := s.repo.ReplaceSource(f.Name(), snaps); err != nil {
			return "", nil, fmt.Errorf("store snapshot: %w", err)
		}
		log.Printf("[market] cached %d records from %s", len(recs), f.Name())
		return f.Name(), recs, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no fetchers configured")
	}
	return "", nil, lastErr
}

func records(snaps []entities.PriceSnapshot) []entities.MarketRecord {
	out := make([]entities.MarketRecord, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, s.Record())
	}
	return out
}

// keywordFilter reproduces the service contract of /scrape-all?query=:
// comma-separated keywords OR-ed together, each matched case-insensitively
// against every descriptive field.
func keywordFilter(recs []entities.MarketRecord, query string) []entities.MarketRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return recs
	}
	var keywords []string
	for _, k := range strings.Split(query, ",") {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		return recs
	}
	out := make([]entities.MarketRecord, 0, len(recs))
	for _, r := range recs {
		hay := strings.ToLower(strings.Join([]string{r.Commodity, r.State, r.District, r.Market, r.Variety}, " "))
		for _, k := range keywords {
			if strings.Contains(hay, k) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
