package market

import (
	"sort"
	"strings"

	"krishi/entities"
)

// Apply runs the filter stages in fixed order (commodity, state, district,
// variety) and then sorts. Every stage with a non-empty criterion is
// evaluated; the stages compose as a logical AND. The input slice is never
// mutated, and calling Apply twice with the same criteria returns the same
// result.
func Apply(records []entities.MarketRecord, c entities.FilterCriteria) []entities.MarketRecord {
	out := make([]entities.MarketRecord, 0, len(records))
	out = append(out, records...)

	out = filterBy(out, c.Commodity, func(r entities.MarketRecord) string { return r.Commodity })
	out = filterBy(out, c.State, func(r entities.MarketRecord) string { return r.State })
	if d := strings.TrimSpace(c.District); d != "" && d != entities.AllDistricts {
		out = filterBy(out, d, func(r entities.MarketRecord) string { return r.District })
	}
	out = filterBy(out, c.Variety, func(r entities.MarketRecord) string { return r.Variety })

	sortRecords(out, c.SortBy)
	return out
}

// filterBy keeps records whose field contains the wanted text,
// case-insensitively. Upstream naming varies ("Paddy(Dhan)(Common)" vs
// "Paddy"), so substring match, never equality.
func filterBy(records []entities.MarketRecord, want string, field func(entities.MarketRecord) string) []entities.MarketRecord {
	want = strings.ToLower(strings.TrimSpace(want))
	if want == "" {
		return records
	}
	kept := records[:0]
	for _, r := range records {
		if strings.Contains(strings.ToLower(field(r)), want) {
			kept = append(kept, r)
		}
	}
	return kept
}

func sortRecords(records []entities.MarketRecord, by entities.SortOrder) {
	switch by {
	case entities.SortPriceAsc:
		sort.SliceStable(records, func(i, j int) bool { return lessPrice(records[i], records[j], true) })
	case entities.SortPriceDesc:
		sort.SliceStable(records, func(i, j int) bool { return lessPrice(records[i], records[j], false) })
	case entities.SortNameAsc:
		sort.SliceStable(records, func(i, j int) bool { return records[i].Commodity < records[j].Commodity })
	case entities.SortNameDesc:
		sort.SliceStable(records, func(i, j int) bool { return records[i].Commodity > records[j].Commodity })
	}
}

// lessPrice orders by the sort price; records with no price at all sort
// last regardless of direction.
func lessPrice(a, b entities.MarketRecord, asc bool) bool {
	pa, pb := sortPrice(a), sortPrice(b)
	switch {
	case pa == nil && pb == nil:
		return false
	case pa == nil:
		return false
	case pb == nil:
		return true
	}
	if asc {
		return *pa < *pb
	}
	return *pa > *pb
}

// sortPrice is the modal price, falling back to whichever price field the
// record does carry.
func sortPrice(r entities.MarketRecord) *float64 {
	if r.ModalPrice != nil {
		return r.ModalPrice
	}
	if r.MaxPrice != nil {
		return r.MaxPrice
	}
	return r.MinPrice
}
