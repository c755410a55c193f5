package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const defaultScrapeURL = "https://www.commoditymarketlive.com/mandi-commodities"

// maxScrapeBytes caps how much of the page we are willing to read.
const maxScrapeBytes = 4 << 20

// Scraper reads the commoditymarketlive mandi table as a secondary source
// when the government API has nothing for a query.
type Scraper struct {
	Client *http.Client
	URL    string
}

func NewScraper(pageURL string) *Scraper {
	if pageURL == "" {
		pageURL = defaultScrapeURL
	}
	return &Scraper{
		Client: &http.Client{Timeout: 60 * time.Second},
		URL:    pageURL,
	}
}

func (s *Scraper) Name() string { return "CommodityMarketLive" }

// Fetch scrapes the first price table on the page. Header cells become the
// row keys as-is ("Commodity", "Modal Price", ...); the normalizer's alias
// tables absorb the title casing. The query is matched against whole rows
// since the page has no server-side filter.
func (s *Scraper) Fetch(ctx context.Context, query string) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	limited := io.LimitedReader{R: resp.Body, N: maxScrapeBytes}
	doc, err := goquery.NewDocumentFromReader(&limited)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no price table on page")
	}

	var headers []string
	table.Find("thead th, tr th").Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(th.Text()))
	})
	if len(headers) == 0 {
		return nil, fmt.Errorf("price table has no header row")
	}

	want := strings.ToLower(strings.TrimSpace(query))
	var rows []map[string]any
	table.Find("tbody tr, tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return
		}
		row := make(map[string]any, len(headers))
		cells.Each(func(i int, td *goquery.Selection) {
			if i < len(headers) {
				row[headers[i]] = strings.TrimSpace(td.Text())
			}
		})
		if want != "" && !rowMatches(row, want) {
			return
		}
		rows = append(rows, row)
	})
	return rows, nil
}

func rowMatches(row map[string]any, want string) bool {
	for _, v := range row {
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), want) {
			return true
		}
	}
	return false
}
