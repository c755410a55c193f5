package serviceImp

import (
	"context"
	"errors"
	"testing"
	"time"

	"krishi/entities"
	"krishi/pkg/market/fetcher"
)

type memRepo struct {
	snaps    map[string][]entities.PriceSnapshot
	replaced int
}

func newMemRepo() *memRepo {
	return &memRepo{snaps: map[string][]entities.PriceSnapshot{}}
}

func (m *memRepo) ReplaceSource(source string, snaps []entities.PriceSnapshot) error {
	m.snaps[source] = snaps
	m.replaced++
	return nil
}

func (m *memRepo) ListBySource(source string) ([]entities.PriceSnapshot, error) {
	return m.snaps[source], nil
}

func (m *memRepo) LatestFetch(source string) (time.Time, error) {
	snaps := m.snaps[source]
	if len(snaps) == 0 {
		return time.Time{}, nil
	}
	return snaps[0].FetchedAt, nil
}

// named wraps Mock so two fetchers in one test are distinguishable.
type named struct {
	fetcher.Mock
	name string
}

func (n *named) Name() string { return n.name }

func row(commodity, state string, modal float64) map[string]any {
	return map[string]any{
		"commodity":   commodity,
		"state":       state,
		"modal_price": modal,
	}
}

func TestScrapeAllFetchesAndCaches(t *testing.T) {
	repo := newMemRepo()
	f := &named{Mock: fetcher.Mock{Rows: []map[string]any{
		row("Wheat", "Punjab", 2100),
		row("Paddy", "Odisha", 1800),
	}}, name: "gov"}
	s := New(repo, 30*time.Minute, f)

	res, err := s.ScrapeAll(context.Background(), "")
	if err != nil {
		t.Fatalf("ScrapeAll: %v", err)
	}
	if res.Source != "gov" {
		t.Errorf("source = %q, want gov", res.Source)
	}
	if len(res.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(res.Records))
	}
	if repo.replaced != 1 {
		t.Errorf("ReplaceSource called %d times, want 1", repo.replaced)
	}

	// second call inside the TTL window must serve the cache, not refetch
	if _, err := s.ScrapeAll(context.Background(), ""); err != nil {
		t.Fatalf("cached ScrapeAll: %v", err)
	}
	if repo.replaced != 1 {
		t.Errorf("cache window ignored: ReplaceSource called %d times", repo.replaced)
	}
}

func TestScrapeAllKeywordQuery(t *testing.T) {
	repo := newMemRepo()
	f := &named{Mock: fetcher.Mock{Rows: []map[string]any{
		row("Wheat", "Punjab", 2100),
		row("Paddy", "Odisha", 1800),
		row("Onion", "Maharashtra", 1200),
	}}, name: "gov"}
	s := New(repo, 30*time.Minute, f)

	res, err := s.ScrapeAll(context.Background(), "wheat, odisha")
	if err != nil {
		t.Fatalf("ScrapeAll: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("got %d records, want 2 (keywords are OR-ed)", len(res.Records))
	}
	for _, r := range res.Records {
		if r.Commodity == "Onion" {
			t.Errorf("Onion matched neither keyword but survived the filter")
		}
	}
}

func TestFallbackToSecondFetcher(t *testing.T) {
	repo := newMemRepo()
	down := &named{Mock: fetcher.Mock{Err: &fetcher.StatusError{Status: 503}}, name: "gov"}
	up := &named{Mock: fetcher.Mock{Rows: []map[string]any{row("Wheat", "Punjab", 2100)}}, name: "scraper"}
	s := New(repo, 30*time.Minute, down, up)

	res, err := s.ScrapeAll(context.Background(), "")
	if err != nil {
		t.Fatalf("ScrapeAll: %v", err)
	}
	if res.Source != "scraper" {
		t.Errorf("source = %q, want scraper", res.Source)
	}
	if len(res.Records) != 1 {
		t.Errorf("got %d records, want 1", len(res.Records))
	}
}

func TestStaleCacheServedWhenUpstreamDown(t *testing.T) {
	repo := newMemRepo()
	repo.snaps["gov"] = []entities.PriceSnapshot{{
		Source:    "gov",
		Commodity: "Wheat",
		State:     "Punjab",
		FetchedAt: time.Now().Add(-2 * time.Hour), // outside any sane TTL
	}}
	f := &named{Mock: fetcher.Mock{Err: fetcher.ErrTimeout}, name: "gov"}
	s := New(repo, 30*time.Minute, f)

	res, err := s.ScrapeAll(context.Background(), "")
	if err != nil {
		t.Fatalf("expected stale fallback, got error: %v", err)
	}
	if len(res.Records) != 1 || res.Records[0].Commodity != "Wheat" {
		t.Fatalf("stale cache not served: %+v", res.Records)
	}
}

func TestErrorSurfacesWhenNoCacheExists(t *testing.T) {
	repo := newMemRepo()
	f := &named{Mock: fetcher.Mock{Err: fetcher.ErrTimeout}, name: "gov"}
	s := New(repo, 30*time.Minute, f)

	_, err := s.ScrapeAll(context.Background(), "")
	if !errors.Is(err, fetcher.ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
}

func TestSearchAppliesCriteriaToCachedRecords(t *testing.T) {
	repo := newMemRepo()
	f := &named{Mock: fetcher.Mock{Rows: []map[string]any{
		row("Wheat", "Punjab", 2100),
		row("Wheat", "Haryana", 2050),
		row("Paddy", "Odisha", 1800),
	}}, name: "gov"}
	s := New(repo, 30*time.Minute, f)

	res, err := s.Search(context.Background(), entities.FilterCriteria{Commodity: "wheat", State: "punjab"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Records) != 1 || res.Records[0].State != "Punjab" {
		t.Fatalf("criteria not ANDed: %+v", res.Records)
	}
}
